package section

const (
	// Bit masks for Flag.Options.
	EndiannessMask   = 0x0002 // bit 1: 0 little-endian, 1 big-endian
	ReservedBitsMask = 0x000D // bits 0, 2, 3 must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicArchiveV1Opt identifies a frame archive.
	MagicArchiveV1Opt = 0xF1A0

	// Version is the current archive layout version.
	Version = 1
)

// offset and section sizes in the archive
const (
	HeaderSize        = 32         // fixed header size in bytes
	IndexEntrySize    = 16         // fixed index entry size in bytes
	IndexOffsetOffset = HeaderSize // byte offset where the index section starts
)
