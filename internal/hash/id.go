// Package hash wraps xxHash64, the fingerprint used for template registries and archive
// payload integrity.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of s.
func ID(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 state.
type Digest = xxhash.Digest

// New returns an empty streaming digest.
func New() *Digest {
	return xxhash.New()
}
