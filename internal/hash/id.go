// Package hash provides stable 64-bit identifiers for string keys.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. The developer-field
// registry uses it to index field descriptions by name without retaining a
// second copy of the name as a map key.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
