package archive

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aemr3/WTFIX/compress"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/internal/hash"
	"github.com/aemr3/WTFIX/internal/options"
	"github.com/aemr3/WTFIX/internal/pool"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/section"
	"github.com/aemr3/WTFIX/wire"
)

type writerConfig struct {
	compression format.CompressionType
	codec       *wire.Codec
	bigEndian   bool
	logger      *slog.Logger
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*writerConfig]

// WithCompression sets the payload codec. The default is format.CompressionZstd.
func WithCompression(ct format.CompressionType) WriterOption {
	return options.New(func(c *writerConfig) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, ct)
		}
		c.compression = ct

		return nil
	})
}

// WithCodec sets the codec used to validate added frames and encode added messages.
func WithCodec(codec *wire.Codec) WriterOption {
	return options.NoError(func(c *writerConfig) {
		if codec != nil {
			c.codec = codec
		}
	})
}

// WithBigEndian writes the header and index in big-endian byte order.
func WithBigEndian() WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.bigEndian = true
	})
}

// WithLogger sets the logger that reports sealed archives at debug level.
func WithLogger(logger *slog.Logger) WriterOption {
	return options.NoError(func(c *writerConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// Writer accumulates frames and seals them into an archive.
type Writer struct {
	cfg      writerConfig
	payload  *pool.ByteBuffer
	entries  []section.IndexEntry
	stats    compress.Stats
	finished bool
}

// NewWriter creates a Writer.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := writerConfig{
		compression: format.CompressionZstd,
		logger:      slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.codec == nil {
		var err error
		if cfg.codec, err = wire.NewCodec(); err != nil {
			return nil, err
		}
	}

	return &Writer{cfg: cfg, payload: pool.GetArchiveBuffer()}, nil
}

// Add validates frame and appends a copy of it.
func (w *Writer) Add(frame []byte) error {
	if w.finished {
		return errs.ErrArchiveFinished
	}

	raw, err := w.cfg.codec.DecodeRaw(frame)
	if err != nil {
		return err
	}

	offset := w.payload.Len()
	if err := checkSize(offset, len(frame)); err != nil {
		return err
	}
	_, _ = w.payload.Write(frame)

	w.index(raw, offset, len(frame))

	return nil
}

// AddMessage encodes m and appends the frame.
func (w *Writer) AddMessage(m message.Message) error {
	if w.finished {
		return errs.ErrArchiveFinished
	}

	offset := w.payload.Len()
	out, err := w.cfg.codec.AppendEncode(w.payload.B, m)
	if err != nil {
		return err
	}
	if err := checkSize(offset, len(out)-offset); err != nil {
		w.payload.B = out[:offset]
		return err
	}
	w.payload.B = out

	w.index(m, offset, len(out)-offset)

	return nil
}

func (w *Writer) index(m message.Message, offset, length int) {
	seqNum, _ := m.SeqNum()
	msgType, _ := m.Type()
	w.entries = append(w.entries, section.NewIndexEntry(seqNum, msgType, offset, length))
}

func checkSize(offset, length int) error {
	if uint64(offset)+uint64(length) > math.MaxUint32 {
		return fmt.Errorf("%w: archive payload would exceed %d bytes", errs.ErrValidation, uint64(math.MaxUint32))
	}

	return nil
}

// Len returns the number of frames added so far.
func (w *Writer) Len() int {
	return len(w.entries)
}

// Finish compresses the payload and returns the archive bytes. The writer cannot be used
// afterwards.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrArchiveFinished
	}

	codec, err := compress.GetCodec(w.cfg.compression)
	if err != nil {
		return nil, err
	}

	payload := w.payload.Bytes()
	packed, stats, err := compress.Run(codec, payload)
	if err != nil {
		return nil, err
	}
	if err := checkSize(0, len(packed)); err != nil {
		return nil, err
	}

	hdr, err := section.NewHeader(w.cfg.compression, len(w.entries))
	if err != nil {
		return nil, err
	}
	if w.cfg.bigEndian {
		hdr.Flag.WithBigEndian()
	}
	hdr.PayloadSize = uint32(len(packed)) //nolint: gosec
	hdr.RawSize = uint32(len(payload))    //nolint: gosec
	hdr.Checksum = hash.Sum(payload)

	engine := hdr.GetEndianEngine()
	out := make([]byte, 0, int(hdr.PayloadOffset)+len(packed))
	out = hdr.AppendBytes(out)
	for _, e := range w.entries {
		out = e.AppendBytes(engine, out)
	}
	out = append(out, packed...)

	w.finished = true
	w.stats = stats
	pool.PutArchiveBuffer(w.payload)
	w.payload = nil

	w.cfg.logger.Debug("archive sealed",
		slog.Int("frames", len(w.entries)),
		slog.String("compression", stats.Algorithm.String()),
		slog.Int64("raw_size", stats.OriginalSize),
		slog.Int64("stored_size", stats.CompressedSize),
	)

	return out, nil
}

// Stats returns the compression statistics of a finished archive.
func (w *Writer) Stats() compress.Stats {
	return w.stats
}
