package wire

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/protocol"
)

// trailerLen is the encoded size of "10=NNN<SOH>".
const trailerLen = 3 + encoding.ChecksumLen + 1

// DecodeRaw validates the framing of frame and returns its header fields with the body
// kept encoded.
//
// The frame must start with BeginString(8) followed by BodyLength(9), end with
// CheckSum(10), and contain MsgType(35). BodyLength must match the number of bytes
// between the BodyLength and CheckSum fields, and, unless disabled with
// WithValidateChecksum, CheckSum must match the bytes before it.
//
// Returns:
//   - *message.RawMessage: Header fields and a copy of the encoded body
//   - error: errs.ErrMalformedFrame, errs.ErrBodyLengthMismatch, errs.ErrChecksumMismatch,
//     or errs.ErrValidation when MsgType is missing
func (c *Codec) DecodeRaw(frame []byte) (*message.RawMessage, error) {
	raw, err := c.decodeRaw(frame)
	if err != nil {
		return nil, c.reject(err, frame)
	}

	msgType, _ := raw.Type()
	c.cfg.observer.FrameDecoded(msgType, len(frame))

	return raw, nil
}

func (c *Codec) decodeRaw(frame []byte) (*message.RawMessage, error) {
	beginString, n, ok := leadingField(frame, protocol.TagBeginString)
	if !ok || len(beginString) == 0 {
		return nil, fmt.Errorf("%w: frame must start with BeginString (8)", errs.ErrMalformedFrame)
	}

	lengthValue, m, ok := leadingField(frame[n:], protocol.TagBodyLength)
	if !ok {
		return nil, fmt.Errorf("%w: BodyLength (9) must follow BeginString", errs.ErrMalformedFrame)
	}
	declared, ok := encoding.ParseUint(lengthValue)
	if !ok {
		return nil, fmt.Errorf("%w: invalid BodyLength %q", errs.ErrMalformedFrame, lengthValue)
	}
	bodyStart := n + m

	// Search from the SOH that closes BodyLength so an empty body still anchors.
	csValue, csStart, csEnd, err := encoding.RIndexTag(protocol.TagCheckSum, frame[bodyStart-1:])
	if err != nil {
		return nil, fmt.Errorf("%w: no CheckSum (10)", errs.ErrMalformedFrame)
	}
	if csEnd != len(frame)-bodyStart {
		return nil, fmt.Errorf("%w: CheckSum (10) must be the last field", errs.ErrMalformedFrame)
	}
	csStart += bodyStart - 1

	body := frame[bodyStart:csStart]
	if len(body) != declared {
		return nil, fmt.Errorf("%w: declared %d, actual %d", errs.ErrBodyLengthMismatch, declared, len(body))
	}

	if c.cfg.validateChecksum {
		want, ok := encoding.ParseChecksum(csValue)
		if !ok {
			return nil, fmt.Errorf("%w: invalid CheckSum %q", errs.ErrMalformedFrame, csValue)
		}
		if got := encoding.CalculateChecksum(frame[:csStart]); got != want {
			return nil, fmt.Errorf("%w: declared %s, computed %s",
				errs.ErrChecksumMismatch, csValue, encoding.FormatChecksum(got))
		}
	}

	msgType, _, _, err := encoding.IndexTag(protocol.TagMsgType, body)
	if err != nil || len(msgType) == 0 {
		return nil, fmt.Errorf("%w: no MsgType (35) in frame", errs.ErrValidation)
	}

	seqNum := 0
	if v, _, _, err := encoding.IndexTag(protocol.TagMsgSeqNum, body); err == nil {
		if seqNum, ok = encoding.ParseUint(v); !ok {
			return nil, fmt.Errorf("%w: invalid MsgSeqNum %q", errs.ErrMalformedFrame, v)
		}
	}

	return message.NewRaw(message.RawConfig{
		BeginString: string(beginString),
		BodyLength:  declared,
		MsgType:     string(msgType),
		MsgSeqNum:   seqNum,
		Body:        body,
		CheckSum:    string(csValue),
	}), nil
}

// Parse decodes every body field of raw and builds a message, folding repeating groups
// with the codec's templates. BeginString and BodyLength come first and CheckSum last.
//
// Unique top-level tags give a *message.OptimizedMessage, repeated ones a
// *message.GenericMessage.
func (c *Codec) Parse(raw *message.RawMessage) (message.Message, error) {
	body, err := ParseFields(raw.Body())
	if err != nil {
		return nil, c.reject(err, raw.Body())
	}

	fields := make([]field.Field, 0, len(body)+3)
	fields = append(fields,
		field.Field{Tag: protocol.TagBeginString, Value: raw.BeginString()},
		field.Field{Tag: protocol.TagBodyLength, Value: strconv.Itoa(raw.BodyLength())},
	)
	fields = append(fields, body...)
	fields = append(fields, field.Field{Tag: protocol.TagCheckSum, Value: raw.CheckSum()})

	m, err := message.NewGenericWithTemplates(c.cfg.templates, fields...)
	if err != nil {
		return nil, c.reject(err, raw.Body())
	}

	return m, nil
}

// Decode is DecodeRaw followed by Parse.
func (c *Codec) Decode(frame []byte) (message.Message, error) {
	raw, err := c.DecodeRaw(frame)
	if err != nil {
		return nil, err
	}

	return c.Parse(raw)
}

// ParseFields splits an encoded body into fields. A final field without a terminating
// SOH is accepted.
func ParseFields(body []byte) ([]field.Field, error) {
	fields := make([]field.Field, 0, bytes.Count(body, []byte{protocol.SOH})+1)
	for len(body) > 0 {
		i := bytes.IndexByte(body, protocol.SOH)
		if i < 0 {
			i = len(body) - 1
		}

		f, err := field.Parse(body[:i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		body = body[i+1:]
	}

	return fields, nil
}

// leadingField reads "tag=value<SOH>" from the start of data. n is the number of bytes
// consumed. ok is false when data does not start with the tag or the SOH is missing.
func leadingField(data []byte, tag int) (value []byte, n int, ok bool) {
	var buf [maxTagDigits + 1]byte
	prefix := strconv.AppendInt(buf[:0], int64(tag), 10)
	prefix = append(prefix, protocol.ValueSeparator)

	if !bytes.HasPrefix(data, prefix) {
		return nil, 0, false
	}

	end := bytes.IndexByte(data[len(prefix):], protocol.SOH)
	if end < 0 {
		return nil, 0, false
	}
	end += len(prefix)

	return data[len(prefix):end:end], end + 1, true
}

const maxTagDigits = 20
