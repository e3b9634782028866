package message

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/fieldset"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/protocol"
)

// rawTags is the fixed tag set of a RawMessage, in storage order.
var rawTags = []int{
	protocol.TagBeginString,
	protocol.TagBodyLength,
	protocol.TagMsgType,
	protocol.TagMsgSeqNum,
	protocol.TagCheckSum,
}

// RawConfig describes a RawMessage.
type RawConfig struct {
	// BeginString defaults to protocol.DefaultBeginString.
	BeginString string
	// BodyLength defaults to len(Body) when zero.
	BodyLength int
	// MsgType is omitted when empty.
	MsgType string
	// MsgSeqNum is omitted when zero.
	MsgSeqNum int
	// Body is the encoded message body. It is copied.
	Body []byte
	// CheckSum defaults to the checksum of Body when empty.
	CheckSum string
}

// RawMessage keeps the message body encoded and exposes only the framing header
// fields: BeginString, BodyLength, MsgType, MsgSeqNum and CheckSum.
type RawMessage struct {
	*fieldset.Ordered
	header

	body []byte
}

var _ Message = (*RawMessage)(nil)

// NewRaw creates a RawMessage, computing BodyLength and CheckSum from the body when
// cfg leaves them unset.
func NewRaw(cfg RawConfig) *RawMessage {
	if cfg.BeginString == "" {
		cfg.BeginString = protocol.DefaultBeginString
	}
	if cfg.BodyLength == 0 {
		cfg.BodyLength = len(cfg.Body)
	}
	if cfg.CheckSum == "" {
		cfg.CheckSum = encoding.FormatChecksum(encoding.CalculateChecksum(cfg.Body))
	}

	fields := make([]field.Field, 0, len(rawTags))
	fields = append(fields,
		field.Field{Tag: protocol.TagBeginString, Value: cfg.BeginString},
		field.Field{Tag: protocol.TagBodyLength, Value: strconv.Itoa(cfg.BodyLength)},
	)
	if cfg.MsgType != "" {
		fields = append(fields, field.Field{Tag: protocol.TagMsgType, Value: cfg.MsgType})
	}
	if cfg.MsgSeqNum != 0 {
		fields = append(fields, field.Field{Tag: protocol.TagMsgSeqNum, Value: strconv.Itoa(cfg.MsgSeqNum)})
	}
	fields = append(fields, field.Field{Tag: protocol.TagCheckSum, Value: cfg.CheckSum})

	return newRaw(fieldset.MustNew(fields...), slices.Clone(cfg.Body))
}

func newRaw(fs *fieldset.Ordered, body []byte) *RawMessage {
	m := &RawMessage{Ordered: fs, body: body}
	m.header = header{fs: m}

	return m
}

// Body returns the encoded body. The slice must not be modified.
func (m *RawMessage) Body() []byte {
	return m.body
}

// BeginString returns the protocol version.
func (m *RawMessage) BeginString() string {
	return m.GetOr(protocol.TagBeginString, "")
}

// BodyLength returns the declared body length.
func (m *RawMessage) BodyLength() int {
	n, _ := strconv.Atoi(m.GetOr(protocol.TagBodyLength, ""))
	return n
}

// CheckSum returns the declared checksum text.
func (m *RawMessage) CheckSum() string {
	return m.GetOr(protocol.TagCheckSum, "")
}

// Set replaces one of the header fields. Tags outside the fixed tag set fail with
// errs.ErrValidation.
//
// MsgType and MsgSeqNum are also written into the encoded body, and changing them or
// BeginString recomputes BodyLength and CheckSum as they appear on the wire, so the
// header always describes the frame Encode emits.
func (m *RawMessage) Set(f field.Field) error {
	if !slices.Contains(rawTags, f.Tag) {
		return fmt.Errorf("%w: tag %d cannot be set on a raw message", errs.ErrValidation, f.Tag)
	}

	switch f.Tag {
	case protocol.TagMsgType, protocol.TagMsgSeqNum:
		m.body = patchBody(m.body, f)
	case protocol.TagBeginString:
	default:
		return m.setHeader(f)
	}

	if err := m.setHeader(f); err != nil {
		return err
	}

	return m.reframe()
}

// SetGroup always fails: groups live in the encoded body.
func (m *RawMessage) SetGroup(g *fieldset.Group) error {
	return fmt.Errorf("%w: groups cannot be set on a raw message", errs.ErrValidation)
}

// Storage reports format.StorageRaw.
func (m *RawMessage) Storage() format.Storage {
	return format.StorageRaw
}

// Copy returns a deep copy.
func (m *RawMessage) Copy() Message {
	return m.Clone()
}

// Clone returns a deep copy.
func (m *RawMessage) Clone() *RawMessage {
	return newRaw(m.Ordered.Clone(), slices.Clone(m.body))
}

// Equal reports whether other holds the same header fields and, if it is also a
// RawMessage, the same body.
func (m *RawMessage) Equal(other fieldset.FieldSet) bool {
	if !m.Ordered.Equal(other) {
		return false
	}
	if o, ok := other.(*RawMessage); ok {
		return slices.Equal(m.body, o.body)
	}

	return true
}

func (m *RawMessage) String() string {
	return m.describe(m.Ordered.String()) + ", with byte-encoded content: " + string(m.body)
}

func (m *RawMessage) Named() string {
	return m.describeNamed(m.Ordered.Named()) + ", with byte-encoded content: " + string(m.body)
}

func (m *RawMessage) setHeader(f field.Field) error {
	if !m.Has(f.Tag) {
		return m.insert(f)
	}

	return m.Ordered.Set(f)
}

// reframe derives BodyLength and CheckSum from BeginString and the current body.
func (m *RawMessage) reframe() error {
	length := strconv.Itoa(len(m.body))

	frame := encoding.AppendField(nil, protocol.TagBeginString, m.BeginString())
	frame = encoding.AppendField(frame, protocol.TagBodyLength, length)
	frame = append(frame, m.body...)

	if err := m.setHeader(field.Field{Tag: protocol.TagBodyLength, Value: length}); err != nil {
		return err
	}

	return m.setHeader(field.Field{
		Tag:   protocol.TagCheckSum,
		Value: encoding.FormatChecksum(encoding.CalculateChecksum(frame)),
	})
}

// patchBody replaces the encoded field for f.Tag in body, or inserts it when absent:
// MsgType first and MsgSeqNum right after MsgType.
func patchBody(body []byte, f field.Field) []byte {
	if _, start, end, err := encoding.IndexTag(f.Tag, body); err == nil {
		out := f.AppendRaw(slices.Clip(body[:start]))
		if end < len(body) {
			out = append(out, body[end+1:]...)
		}

		return out
	}

	at := 0
	if f.Tag == protocol.TagMsgSeqNum {
		if _, _, end, err := encoding.IndexTag(protocol.TagMsgType, body); err == nil {
			at = min(end+1, len(body))
		}
	}

	out := make([]byte, 0, len(body)+f.RawLen())
	out = append(out, body[:at]...)
	if at > 0 && out[at-1] != protocol.SOH {
		out = append(out, protocol.SOH)
	}
	out = f.AppendRaw(out)

	return append(out, body[at:]...)
}

// insert adds an absent header field at its position in the fixed tag order.
func (m *RawMessage) insert(f field.Field) error {
	fields := make([]field.Field, 0, len(rawTags))
	for _, tag := range rawTags {
		if tag == f.Tag {
			fields = append(fields, f)
			continue
		}
		if existing, ok := m.Lookup(tag); ok {
			fields = append(fields, existing)
		}
	}

	fs, err := fieldset.New(fields...)
	if err != nil {
		return err
	}
	m.Ordered = fs

	return nil
}
