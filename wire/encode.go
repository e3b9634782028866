package wire

import (
	"fmt"
	"strconv"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/internal/pool"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/protocol"
)

// Encode renders m as a complete frame.
//
// BodyLength and CheckSum are recomputed and MsgType is written as the first body field.
// Messages without MsgType fail with errs.ErrValidation.
func (c *Codec) Encode(m message.Message) ([]byte, error) {
	return c.AppendEncode(nil, m)
}

// AppendEncode appends the frame for m to dst.
func (c *Codec) AppendEncode(dst []byte, m message.Message) ([]byte, error) {
	msgType, ok := m.Type()
	if !ok {
		return dst, fmt.Errorf("%w: cannot encode a message without MsgType (35)", errs.ErrValidation)
	}

	beginString := m.GetOr(protocol.TagBeginString, "")
	if beginString == "" {
		beginString = c.cfg.beginString
	}

	body := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(body)

	if raw, ok := m.(*message.RawMessage); ok {
		body.B = append(body.B, raw.Body()...)
	} else {
		body.B = appendBody(body.B, m, msgType)
	}

	start := len(dst)
	dst = encoding.AppendField(dst, protocol.TagBeginString, beginString)
	dst = encoding.AppendField(dst, protocol.TagBodyLength, strconv.Itoa(body.Len()))
	dst = append(dst, body.B...)

	sum := encoding.CalculateChecksum(dst[start:])
	dst = strconv.AppendInt(dst, protocol.TagCheckSum, 10)
	dst = append(dst, protocol.ValueSeparator)
	dst = encoding.AppendChecksum(dst, sum)
	dst = append(dst, protocol.SOH)

	c.cfg.observer.FrameEncoded(msgType, len(dst)-start)

	return dst, nil
}

// appendBody writes MsgType followed by every non-framing field of m, groups expanded.
func appendBody(dst []byte, m message.Message, msgType string) []byte {
	dst = encoding.AppendField(dst, protocol.TagMsgType, msgType)

	typeWritten := false
	for _, f := range m.Flatten() {
		if protocol.IsFramingTag(f.Tag) {
			continue
		}
		if f.Tag == protocol.TagMsgType && !typeWritten {
			typeWritten = true
			continue
		}
		dst = f.AppendRaw(dst)
	}

	return dst
}
