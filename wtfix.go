// Package wtfix is a wire-format engine for the FIX tag/value protocol: it turns a byte
// stream into structured messages and back, enforcing framing, field ordering, checksum
// and repeating group rules.
//
// # Core Features
//
//   - Scalar value encoding and field lookup directly on encoded buffers
//   - Unique-tag (map-backed) and duplicate-tolerant (list-backed) field sets
//   - Repeating and nested groups validated against a template registry
//   - Raw messages that keep the exact received body next to the parsed header
//   - Frame decoding with BodyLength and CheckSum validation, and frame rendering
//   - Compressed, checksummed archives of encoded frames
//
// # Basic Usage
//
// Building and encoding a message:
//
//	import "github.com/aemr3/WTFIX"
//
//	m, _ := wtfix.NewMessage(
//	    field.MustNew(protocol.TagMsgType, protocol.MsgTypeLogon),
//	    field.MustNew(protocol.TagMsgSeqNum, 1),
//	    field.MustNew(protocol.TagHeartBtInt, 30),
//	)
//	frame, _ := wtfix.Encode(m)
//
// Decoding a frame:
//
//	m, err := wtfix.Decode(frame)
//	if errors.Is(err, errs.ErrChecksumMismatch) {
//	    // corrupted on the wire
//	}
//	fmt.Println(m.Named())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the wire, message and
// archive packages, using the standard group templates. For codec options such as a
// custom template registry, a metrics observer or checksum bypass, use the wire package
// directly.
package wtfix

import (
	"github.com/aemr3/WTFIX/archive"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/template"
	"github.com/aemr3/WTFIX/wire"
)

var defaultCodec = wire.MustNewCodec(wire.WithTemplates(template.Standard()))

// DefaultCodec returns the codec used by Decode and Encode. It expects FIX.4.4 frames
// and assembles the standard group templates.
func DefaultCodec() *wire.Codec {
	return defaultCodec
}

// NewCodec creates a codec with custom options.
//
// Available options:
//   - wire.WithBeginString(s)
//   - wire.WithTemplates(reg)
//   - wire.WithObserver(o)
//   - wire.WithLogger(l)
//   - wire.WithValidateChecksum(true|false)
//   - wire.WithMaxFrameSize(n)
//
// Example:
//
//	codec, err := wtfix.NewCodec(
//	    wire.WithBeginString("FIX.4.2"),
//	    wire.WithObserver(metrics.New("wtfix")),
//	)
func NewCodec(opts ...wire.Option) (*wire.Codec, error) {
	return wire.NewCodec(opts...)
}

// NewMessage creates a message from fields, folding the standard repeating groups. It
// chooses unique-tag storage when the tags allow it and list storage otherwise.
//
// Returns errs.ErrInvalidGroup when a group does not match its template.
func NewMessage(fields ...field.Field) (message.Message, error) {
	return message.NewGenericWithTemplates(template.Standard(), fields...)
}

// Decode validates frame and parses it into a message with the default codec.
//
// Parameters:
//   - frame: One complete encoded frame, from "8=" to the CheckSum field's SOH
//
// Returns:
//   - message.Message: The parsed message
//   - error: An errs.ErrValidation derived error when the frame is rejected
func Decode(frame []byte) (message.Message, error) {
	return defaultCodec.Decode(frame)
}

// DecodeRaw validates frame without parsing its body.
func DecodeRaw(frame []byte) (*message.RawMessage, error) {
	return defaultCodec.DecodeRaw(frame)
}

// Encode renders m as a frame with the default codec. BodyLength and CheckSum are
// always recomputed.
func Encode(m message.Message) ([]byte, error) {
	return defaultCodec.Encode(m)
}

// NewArchiveWriter creates an archive writer that validates frames with the default
// codec. Zstd compression is used unless ct overrides it.
func NewArchiveWriter(ct ...format.CompressionType) (*archive.Writer, error) {
	opts := []archive.WriterOption{archive.WithCodec(defaultCodec)}
	if len(ct) > 0 {
		opts = append(opts, archive.WithCompression(ct[0]))
	}

	return archive.NewWriter(opts...)
}

// OpenArchive validates an encoded archive and returns a reader over its frames.
func OpenArchive(data []byte) (*archive.Reader, error) {
	return archive.Open(data)
}
