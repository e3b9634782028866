package compress

import "github.com/aemr3/WTFIX/format"

// ZstdCompressor provides Zstandard compression. The implementation is chosen at build
// time, see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type reports format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
