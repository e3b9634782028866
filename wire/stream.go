package wire

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/protocol"
)

var beginPrefix = []byte("8=")

// SplitFrames is a bufio.SplitFunc that yields one frame per token, sized by its
// BodyLength field and bounded by DefaultMaxFrameSize. A frame starts with "8=" at the
// beginning of the input or after an SOH or whitespace; bytes before it are discarded.
func SplitFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return splitFrames(data, atEOF, DefaultMaxFrameSize)
}

// SplitFrames is the package SplitFrames bounded by the codec's maximum frame size.
func (c *Codec) SplitFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return splitFrames(data, atEOF, c.cfg.maxFrameSize)
}

func splitFrames(data []byte, atEOF bool, maxSize int) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	more := func() (int, []byte, error) {
		switch {
		case atEOF:
			return 0, nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrIncompleteFrame, len(data))
		case len(data) >= maxSize:
			return 0, nil, fmt.Errorf("%w: frame exceeds %d bytes", errs.ErrMalformedFrame, maxSize)
		default:
			return 0, nil, nil
		}
	}

	if !bytes.HasPrefix(data, beginPrefix) {
		if len(data) < len(beginPrefix) && !atEOF {
			return 0, nil, nil
		}
		// Parse the next frame in the same call: at EOF the scanner stops after the
		// first call that returns no token.
		if i := nextFrameStart(data); i >= 0 {
			advance, token, err := splitFrames(data[i:], atEOF, maxSize)
			if err != nil {
				return 0, nil, err
			}

			return i + advance, token, nil
		}
		if atEOF {
			return len(data), nil, nil
		}

		return discardable(data), nil, nil
	}

	_, n, ok := leadingField(data, protocol.TagBeginString)
	if !ok {
		return more()
	}

	rest := data[n:]
	lengthValue, m, ok := leadingField(rest, protocol.TagBodyLength)
	if !ok {
		if len(rest) >= 2 && !bytes.HasPrefix(rest, []byte("9=")) {
			return 0, nil, fmt.Errorf("%w: BodyLength (9) must follow BeginString", errs.ErrMalformedFrame)
		}

		return more()
	}

	bodyLength, ok := encoding.ParseUint(lengthValue)
	if !ok {
		return 0, nil, fmt.Errorf("%w: invalid BodyLength %q", errs.ErrMalformedFrame, lengthValue)
	}

	total := n + m + bodyLength + trailerLen
	if total > maxSize {
		return 0, nil, fmt.Errorf("%w: frame of %d bytes exceeds %d", errs.ErrMalformedFrame, total, maxSize)
	}
	if len(data) < total {
		return more()
	}

	return total, data[:total:total], nil
}

// nextFrameStart returns the offset of the first "8=" that follows an SOH or
// whitespace, or -1.
func nextFrameStart(data []byte) int {
	for off := 1; off < len(data); {
		i := bytes.Index(data[off:], beginPrefix)
		if i < 0 {
			return -1
		}
		i += off

		if isFrameSeparator(data[i-1]) {
			return i
		}
		off = i + 1
	}

	return -1
}

// discardable returns how much of data, which holds no frame start, can be dropped
// while keeping a trailing separator or separator and '8' that may begin the next frame.
func discardable(data []byte) int {
	n := len(data)
	switch {
	case isFrameSeparator(data[n-1]):
		return n - 1
	case n >= 2 && data[n-1] == beginPrefix[0] && isFrameSeparator(data[n-2]):
		return n - 2
	default:
		return n
	}
}

func isFrameSeparator(b byte) bool {
	switch b {
	case protocol.SOH, ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// Scanner reads frames from an io.Reader and validates them with a Codec.
// It is not safe for concurrent use.
type Scanner struct {
	codec   *Codec
	sc      *bufio.Scanner
	frame   []byte
	raw     *message.RawMessage
	err     error
	skip    bool
	skipped int
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader, codec *Codec) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, codec.MaxFrameSize())), codec.MaxFrameSize())
	sc.Split(codec.SplitFrames)

	return &Scanner{codec: codec, sc: sc}
}

// SkipInvalid makes Scan step over frames that fail DecodeRaw instead of stopping.
// Skipped frames are counted by Skipped. Stream level errors still stop the scanner.
func (s *Scanner) SkipInvalid() {
	s.skip = true
}

// Scan advances to the next valid frame. It returns false at the end of input or on the
// first error, which Err then reports.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.sc.Scan() {
		frame := s.sc.Bytes()

		raw, err := s.codec.DecodeRaw(frame)
		if err != nil {
			if s.skip {
				s.skipped++
				continue
			}
			s.err = err

			return false
		}

		s.frame = frame
		s.raw = raw

		return true
	}

	if err := s.sc.Err(); err != nil {
		s.err = s.codec.reject(err, nil)
	}
	s.frame, s.raw = nil, nil

	return false
}

// Frame returns the current frame. It is only valid until the next call to Scan.
func (s *Scanner) Frame() []byte {
	return s.frame
}

// Raw returns the current frame's header fields.
func (s *Scanner) Raw() *message.RawMessage {
	return s.raw
}

// Message parses the current frame.
func (s *Scanner) Message() (message.Message, error) {
	if s.raw == nil {
		return nil, fmt.Errorf("%w: no current frame", errs.ErrValidation)
	}

	return s.codec.Parse(s.raw)
}

// Skipped returns the number of invalid frames skipped so far.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first error that stopped the scanner.
func (s *Scanner) Err() error {
	return s.err
}

// Writer encodes messages onto an io.Writer, one frame per call.
// It is not safe for concurrent use.
type Writer struct {
	w     io.Writer
	codec *Codec
	buf   []byte
	count int
}

// NewWriter creates a Writer. Wrap w in a bufio.Writer when frames are small and
// frequent.
func NewWriter(w io.Writer, codec *Codec) *Writer {
	return &Writer{w: w, codec: codec}
}

// Write encodes m and writes the frame.
func (w *Writer) Write(m message.Message) error {
	var err error
	w.buf, err = w.codec.AppendEncode(w.buf[:0], m)
	if err != nil {
		return err
	}

	return w.writeFrame(w.buf)
}

// WriteFrame validates an already encoded frame and writes it unchanged.
func (w *Writer) WriteFrame(frame []byte) error {
	if _, err := w.codec.DecodeRaw(frame); err != nil {
		return err
	}

	return w.writeFrame(frame)
}

func (w *Writer) writeFrame(frame []byte) error {
	if _, err := w.w.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	w.count++

	return nil
}

// Count returns the number of frames written.
func (w *Writer) Count() int {
	return w.count
}
