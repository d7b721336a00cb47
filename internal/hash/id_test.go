package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, ID("heart_rate"), ID("heart_rate"))
	require.NotEqual(t, ID("heart_rate"), ID("power"))
	require.NotZero(t, ID(""))
}
