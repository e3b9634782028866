package archive

import (
	"bytes"
	"fmt"
	"iter"

	conciter "github.com/sourcegraph/conc/iter"

	"github.com/aemr3/WTFIX/compress"
	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/internal/hash"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/section"
	"github.com/aemr3/WTFIX/wire"
)

// Reader gives random access to the frames of an archive.
type Reader struct {
	header  section.Header
	entries []section.IndexEntry
	payload []byte
	bySeq   map[uint32]int
}

// Open validates data and returns a Reader. With format.CompressionNone the reader
// shares data, which must not be modified while the reader is in use.
//
// Returns:
//   - *Reader: Reader over the archive
//   - error: errs.ErrInvalidArchiveHeader for a bad header, errs.ErrArchiveCorrupted when
//     the sizes, index or payload checksum do not match
func Open(data []byte) (*Reader, error) {
	hdr, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if want := uint64(hdr.PayloadOffset) + uint64(hdr.PayloadSize); uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: archive is %d bytes, header describes %d", errs.ErrArchiveCorrupted, len(data), want)
	}

	engine := hdr.GetEndianEngine()
	entries, err := section.ParseIndex(data[section.IndexOffsetOffset:hdr.PayloadOffset], int(hdr.FrameCount), engine)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(hdr.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	payload, err := compress.DecompressSize(codec, data[hdr.PayloadOffset:], int(hdr.RawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrArchiveCorrupted, err)
	}
	if sum := hash.Sum(payload); sum != hdr.Checksum {
		return nil, fmt.Errorf("%w: payload checksum %016x, header says %016x", errs.ErrArchiveCorrupted, sum, hdr.Checksum)
	}

	r := &Reader{
		header:  hdr,
		entries: entries,
		payload: payload,
		bySeq:   make(map[uint32]int, len(entries)),
	}
	if err := r.indexFrames(); err != nil {
		return nil, err
	}

	return r, nil
}

// indexFrames checks that entries tile the payload and builds the sequence index.
func (r *Reader) indexFrames() error {
	var next uint64
	for i, e := range r.entries {
		if uint64(e.Offset) != next || e.Length == 0 {
			return fmt.Errorf("%w: index entry %d at offset %d, want %d", errs.ErrArchiveCorrupted, i, e.Offset, next)
		}
		next = e.End()

		if _, dup := r.bySeq[e.SeqNum]; e.SeqNum != 0 && !dup {
			r.bySeq[e.SeqNum] = i
		}
	}
	if next != uint64(len(r.payload)) {
		return fmt.Errorf("%w: index covers %d of %d payload bytes", errs.ErrArchiveCorrupted, next, len(r.payload))
	}

	return nil
}

// Len returns the number of frames.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Header returns the parsed archive header.
func (r *Reader) Header() section.Header {
	return r.header
}

// Compression returns the payload codec.
func (r *Reader) Compression() format.CompressionType {
	return r.header.Flag.GetCompression()
}

// Entry returns the index entry of frame i.
func (r *Reader) Entry(i int) (section.IndexEntry, bool) {
	if i < 0 || i >= len(r.entries) {
		return section.IndexEntry{}, false
	}

	return r.entries[i], true
}

// Frame returns frame i. The slice must not be modified.
func (r *Reader) Frame(i int) ([]byte, error) {
	e, ok := r.Entry(i)
	if !ok {
		return nil, fmt.Errorf("%w: %d of %d", errs.ErrFrameOutOfRange, i, len(r.entries))
	}

	return r.frame(e), nil
}

func (r *Reader) frame(e section.IndexEntry) []byte {
	end := e.End()
	return r.payload[e.Offset:end:end]
}

// BySeqNum returns the first frame with MsgSeqNum n.
func (r *Reader) BySeqNum(n int) ([]byte, bool) {
	if n <= 0 || uint64(n) > uint64(^uint32(0)) {
		return nil, false
	}

	i, ok := r.bySeq[uint32(n)]
	if !ok {
		return nil, false
	}

	return r.frame(r.entries[i]), true
}

// All yields every frame with its position.
func (r *Reader) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i, e := range r.entries {
			if !yield(i, r.frame(e)) {
				return
			}
		}
	}
}

// ByType yields the frames whose MsgType is msgType.
func (r *Reader) ByType(msgType string) iter.Seq2[int, []byte] {
	id := section.TypeID(msgType)

	return func(yield func(int, []byte) bool) {
		for i, e := range r.entries {
			if e.TypeID != id {
				continue
			}

			frame := r.frame(e)
			if v, _, _, err := encoding.IndexTag(protocol.TagMsgType, frame); err != nil || !bytes.Equal(v, []byte(msgType)) {
				continue
			}
			if !yield(i, frame) {
				return
			}
		}
	}
}

// Messages decodes every frame with codec in parallel, preserving order. A nil codec
// uses wire defaults.
func (r *Reader) Messages(codec *wire.Codec) ([]message.Message, error) {
	if codec == nil {
		var err error
		if codec, err = wire.NewCodec(); err != nil {
			return nil, err
		}
	}

	return conciter.MapErr(r.entries, func(e *section.IndexEntry) (message.Message, error) {
		return codec.Decode(r.frame(*e))
	})
}
