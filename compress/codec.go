package compress

import (
	"fmt"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified. The
	// result may alias data for codecs that do not transform it.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress returns the original payload. Corrupted input fails with an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions and reports its algorithm.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

// Stats summarizes one compression run.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize / OriginalSize, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

// CreateCodec returns a new codec for compressionType. target names the consumer in
// error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Run compresses data with codec and reports the sizes.
func Run(codec Codec, data []byte) ([]byte, Stats, error) {
	packed, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", codec.Type(), err)
	}

	return packed, Stats{
		Algorithm:      codec.Type(),
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(packed)),
	}, nil
}

// sizedDecompressor is implemented by codecs that decompress faster when the output
// size is known.
type sizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// DecompressSize decompresses data that is expected to expand to exactly size bytes.
func DecompressSize(codec Codec, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if sd, ok := codec.(sizedDecompressor); ok {
		out, err = sd.DecompressSize(data, size)
	} else {
		out, err = codec.Decompress(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", codec.Type(), err)
	}
	if len(out) != size {
		return nil, fmt.Errorf("%s decompressed %d bytes, want %d", codec.Type(), len(out), size)
	}

	return out, nil
}
