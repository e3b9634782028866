// Package wire converts between framed protocol bytes and messages.
//
// A frame is a sequence of "tag=value<SOH>" fields in a fixed layout:
//
//	8=FIX.4.4|9=<body length>|35=<type>|...body...|10=<checksum>|
//
// BodyLength counts the bytes after the BodyLength field up to, but excluding,
// the CheckSum field. CheckSum is the sum of every byte before it, modulo 256, rendered
// as three digits.
//
// # Decoding
//
// Decoding happens in two steps, so callers that only route or store frames can skip the
// cost of parsing every field:
//
//	codec, err := wire.NewCodec(wire.WithTemplates(template.Standard()))
//	raw, err := codec.DecodeRaw(frame) // header fields only, body kept encoded
//	msg, err := codec.Parse(raw)       // every field, groups folded
//
// Decode does both. Structural failures wrap errs.ErrValidation; the specific cause is
// available through errs.ErrMalformedFrame, errs.ErrBodyLengthMismatch and
// errs.ErrChecksumMismatch.
//
// # Encoding
//
// Encode renders a message. BeginString comes from the message, or the codec default when
// absent. BodyLength and CheckSum are always recomputed, MsgType is written first and the
// remaining fields follow in stored order with groups expanded. A RawMessage is written
// with its encoded body unchanged.
//
// # Streams
//
// SplitFrames is a bufio.SplitFunc that cuts a byte stream into frames using BodyLength.
// Bytes between frames are skipped, so a log with one frame per line scans directly:
//
//	sc := wire.NewScanner(file, codec)
//	for sc.Scan() {
//	    fmt.Println(sc.Raw().Name())
//	}
//
// Scanner and Writer wrap it for io.Reader and io.Writer. The package never opens
// connections; transports are the caller's concern.
package wire
