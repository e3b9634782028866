// Package compress provides the payload codecs used by the archive package.
//
// Four algorithms are available, selected by format.CompressionType:
//
//   - None: the payload is stored as is
//   - Zstd: best ratio, the natural choice for end-of-day message stores
//   - S2: fast with good ratio, suited to stores written on the hot path
//   - LZ4: fastest decompression, for stores that are replayed often
//
// Tag/value text compresses well: tag numbers, "=" and SOH separators and the header
// fields repeat in every frame.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
//
// # Zstd Implementations
//
// By default Zstd uses the pure Go github.com/klauspost/compress/zstd implementation
// with pooled encoders and decoders. Building with the gozstd tag (and cgo enabled)
// switches to the cgo binding github.com/valyala/gozstd. Both produce standard zstd
// frames, so archives written by one can be read by the other.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress
