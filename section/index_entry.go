package section

import (
	"fmt"

	"github.com/aemr3/WTFIX/endian"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/internal/hash"
)

// IndexEntry describes one frame in the archive index. It is a fixed 16 bytes.
type IndexEntry struct {
	// SeqNum is the frame's MsgSeqNum, or zero when absent.
	//
	// Offset: 0, Size: 4 bytes
	SeqNum uint32
	// Offset is the frame's byte offset inside the uncompressed payload.
	//
	// Offset: 4, Size: 4 bytes
	Offset uint32
	// Length is the frame size in bytes.
	//
	// Offset: 8, Size: 4 bytes
	Length uint32
	// TypeID is the low 32 bits of the xxHash64 of the frame's MsgType.
	//
	// Offset: 12, Size: 4 bytes
	TypeID uint32
}

// NewIndexEntry creates an entry for a frame of length bytes at offset.
func NewIndexEntry(seqNum int, msgType string, offset, length int) IndexEntry {
	return IndexEntry{
		SeqNum: uint32(seqNum), //nolint: gosec
		Offset: uint32(offset), //nolint: gosec
		Length: uint32(length), //nolint: gosec
		TypeID: TypeID(msgType),
	}
}

// TypeID returns the index identifier of a message type.
func TypeID(msgType string) uint32 {
	return uint32(hash.ID(msgType)) //nolint: gosec
}

// End returns the offset just past the frame.
func (e IndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

// Bytes serializes the entry.
func (e IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	return e.AppendBytes(engine, make([]byte, 0, IndexEntrySize))
}

// AppendBytes appends the serialized entry to dst.
func (e IndexEntry) AppendBytes(engine endian.EndianEngine, dst []byte) []byte {
	dst = engine.AppendUint32(dst, e.SeqNum)
	dst = engine.AppendUint32(dst, e.Offset)
	dst = engine.AppendUint32(dst, e.Length)

	return engine.AppendUint32(dst, e.TypeID)
}

// ParseIndexEntry parses an entry from exactly IndexEntrySize bytes.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) != IndexEntrySize {
		return IndexEntry{}, fmt.Errorf("%w: index entry is %d bytes, want %d",
			errs.ErrArchiveCorrupted, len(data), IndexEntrySize)
	}

	return IndexEntry{
		SeqNum: engine.Uint32(data[0:4]),
		Offset: engine.Uint32(data[4:8]),
		Length: engine.Uint32(data[8:12]),
		TypeID: engine.Uint32(data[12:16]),
	}, nil
}

// ParseIndex parses count consecutive entries from data.
func ParseIndex(data []byte, count int, engine endian.EndianEngine) ([]IndexEntry, error) {
	if len(data) < count*IndexEntrySize {
		return nil, fmt.Errorf("%w: index needs %d bytes, have %d",
			errs.ErrArchiveCorrupted, count*IndexEntrySize, len(data))
	}

	entries := make([]IndexEntry, count)
	for i := range entries {
		off := i * IndexEntrySize
		entry, err := ParseIndexEntry(data[off:off+IndexEntrySize], engine)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}
