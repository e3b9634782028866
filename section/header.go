package section

import (
	"fmt"

	"github.com/aemr3/WTFIX/endian"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
)

// Header is the fixed-size section at the start of an archive.
type Header struct {
	// Flag holds magic, version and compression. Offset 0-3.
	Flag Flag
	// FrameCount is the number of frames and index entries. Offset 4-7.
	FrameCount uint32
	// PayloadOffset is the byte offset of the payload, right after the index. Offset 8-11.
	PayloadOffset uint32
	// PayloadSize is the stored, possibly compressed, payload size. Offset 12-15.
	PayloadSize uint32
	// RawSize is the uncompressed payload size. Offset 16-19.
	RawSize uint32
	// Reserved must be zero. Offset 20-23.
	Reserved [4]byte
	// Checksum is the xxHash64 of the uncompressed payload. Offset 24-31.
	Checksum uint64
}

// NewHeader creates a header for frameCount frames. Sizes and checksum are filled in by
// the archive writer.
func NewHeader(compression format.CompressionType, frameCount int) (*Header, error) {
	if frameCount < 0 || uint64(frameCount) > maxFrames {
		return nil, fmt.Errorf("%w: frame count %d out of range", errs.ErrInvalidArchiveHeader, frameCount)
	}

	return &Header{
		Flag:          NewFlag(compression),
		FrameCount:    uint32(frameCount),                                   //nolint: gosec
		PayloadOffset: uint32(IndexOffsetOffset + frameCount*IndexEntrySize), //nolint: gosec
	}, nil
}

const maxFrames = (1<<32 - 1 - HeaderSize) / IndexEntrySize

// Parse parses the header from data, which must be exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", errs.ErrInvalidArchiveHeader, len(data), HeaderSize)
	}

	// Options is always little-endian so the byte order can be read first.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Version = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.FrameCount = engine.Uint32(data[4:8])
	h.PayloadOffset = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	copy(h.Reserved[:], data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	if h.Reserved != [4]byte{} {
		return fmt.Errorf("%w: reserved bytes set", errs.ErrInvalidArchiveHeader)
	}
	if uint64(h.PayloadOffset) != IndexOffsetOffset+uint64(h.FrameCount)*IndexEntrySize {
		return fmt.Errorf("%w: payload offset %d does not follow %d index entries",
			errs.ErrInvalidArchiveHeader, h.PayloadOffset, h.FrameCount)
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}

// AppendBytes appends the serialized header to dst.
func (h *Header) AppendBytes(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Version, h.Flag.Compression)
	dst = engine.AppendUint32(dst, h.FrameCount)
	dst = engine.AppendUint32(dst, h.PayloadOffset)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = append(dst, h.Reserved[:]...)

	return engine.AppendUint64(dst, h.Checksum)
}

// GetEndianEngine returns the byte order selected by the flag.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidArchiveHeader, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
