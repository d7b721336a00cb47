package fitwire

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/crc"
	"github.com/openfit/fitwire/decode"
	"github.com/openfit/fitwire/profile"
	"github.com/openfit/fitwire/section"
)

// sampleFile builds a minimal valid stream: one definition and two record
// messages carrying a heart rate byte.
func sampleFile(t *testing.T) []byte {
	t.Helper()

	def := section.MessageDefinition{
		GlobalMesgNum: profile.MesgNumRecord,
		Fields:        []section.FieldDef{{Num: 3, Size: 1, BaseType: basetype.UInt8}},
	}

	var records []byte
	records = append(records, byte(section.NewDefinitionHeader(0, false)))
	records = append(records, def.Bytes()...)
	records = append(records, byte(section.NewDataHeader(0)), 0x78)
	records = append(records, byte(section.NewDataHeader(0)), 0x7A)

	hdr := section.FileHeader{
		Size:            section.MaxFileHeaderSize,
		ProtocolVersion: 0x20,
		ProfileVersion:  2100,
		DataSize:        uint32(len(records)),
	}

	file := hdr.Bytes()
	file = append(file, records...)
	sum := crc.Checksum(file)

	return append(file, byte(sum), byte(sum>>8))
}

func TestDecode(t *testing.T) {
	type stats struct {
		heartRates []uint8
	}

	ctx := &stats{}
	err := Decode(bytes.NewReader(sampleFile(t)), func(msg *decode.Message, ctx *stats) error {
		hr, ok := msg.Field(3)
		require.True(t, ok)
		ctx.heartRates = append(ctx.heartRates, hr.Uint8())

		return nil
	}, ctx)

	require.NoError(t, err)
	require.Equal(t, []uint8{0x78, 0x7A}, ctx.heartRates)
}

func TestDecodeBytes(t *testing.T) {
	count := 0
	err := DecodeBytes(sampleFile(t), func(msg *decode.Message, _ *struct{}) error {
		count++
		return nil
	}, &struct{}{})

	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Plain file", func(t *testing.T) {
		path := filepath.Join(dir, "activity.fit")
		require.NoError(t, os.WriteFile(path, sampleFile(t), 0o600))

		count := 0
		err := DecodeFile(path, func(msg *decode.Message, _ *struct{}) error {
			count++
			return nil
		}, &struct{}{})

		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("Gzipped file", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(sampleFile(t))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(dir, "activity.fit.gz")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

		count := 0
		err = DecodeFile(path, func(msg *decode.Message, _ *struct{}) error {
			count++
			return nil
		}, &struct{}{})

		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("Missing file", func(t *testing.T) {
		err := DecodeFile(filepath.Join(dir, "nope.fit"), func(msg *decode.Message, _ *struct{}) error {
			return nil
		}, &struct{}{})
		require.Error(t, err)
	})
}

func TestCollect(t *testing.T) {
	msgs, err := Collect(bytes.NewReader(sampleFile(t)))
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, profile.MesgNumRecord, msgs[0].GlobalMesgNum)

	hr, ok := msgs[1].Field(3)
	require.True(t, ok)
	require.Equal(t, uint8(0x7A), hr.Uint8())
}

func TestFieldID(t *testing.T) {
	require.Equal(t, FieldID("hr2"), FieldID("hr2"))
	require.NotEqual(t, FieldID("hr2"), FieldID("hr3"))
}
