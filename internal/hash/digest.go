// Package hash provides the xxHash64 digests used for CHR fingerprinting.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// New returns a streaming xxHash64 digest. It implements io.Writer, so it
// can be used directly as the sink of an extract pass.
func New() *xxhash.Digest {
	return xxhash.New()
}
