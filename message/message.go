package message

import (
	"fmt"
	"strconv"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/fieldset"
	"github.com/aemr3/WTFIX/protocol"
)

// Message is a FieldSet with protocol header semantics.
type Message interface {
	fieldset.FieldSet

	// Type returns the MsgType value.
	Type() (string, bool)
	// Name returns the human readable message type, or "Unknown".
	Name() string
	// SeqNum returns the MsgSeqNum value.
	SeqNum() (int, bool)
	// SetSeqNum replaces the MsgSeqNum value.
	SetSeqNum(n int) error
	// SenderID returns the SenderCompID value.
	SenderID() (string, bool)
	// SetSenderID replaces the SenderCompID value.
	SetSenderID(id string) error
	// TargetID returns the TargetCompID value.
	TargetID() (string, bool)
	// SetTargetID replaces the TargetCompID value.
	SetTargetID(id string) error
	// Validate reports errs.ErrValidation when the message has no MsgType.
	Validate() error
	// Copy returns a deep copy.
	Copy() Message
}

// header implements the Message accessors over the message itself, so that storage
// specific rules (such as the fixed tag set of RawMessage) apply to every setter.
type header struct {
	fs fieldset.FieldSet
}

func (h header) Type() (string, bool) {
	return h.fs.Value(protocol.TagMsgType)
}

func (h header) Name() string {
	msgType, ok := h.Type()
	if !ok {
		return protocol.UnknownName
	}

	name, err := protocol.TypeName(msgType)
	if err != nil {
		return protocol.UnknownName
	}

	return name
}

// SeqNum reports false when MsgSeqNum is absent or not an integer.
func (h header) SeqNum() (int, bool) {
	v, ok := h.fs.Value(protocol.TagMsgSeqNum)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}

	return n, true
}

func (h header) SetSeqNum(n int) error {
	return h.fs.Set(field.Field{Tag: protocol.TagMsgSeqNum, Value: strconv.Itoa(n)})
}

func (h header) SenderID() (string, bool) {
	return h.fs.Value(protocol.TagSenderCompID)
}

func (h header) SetSenderID(id string) error {
	return h.fs.Set(field.Field{Tag: protocol.TagSenderCompID, Value: id})
}

func (h header) TargetID() (string, bool) {
	return h.fs.Value(protocol.TagTargetCompID)
}

func (h header) SetTargetID(id string) error {
	return h.fs.Set(field.Field{Tag: protocol.TagTargetCompID, Value: id})
}

func (h header) Validate() error {
	if !h.fs.Has(protocol.TagMsgType) {
		return fmt.Errorf("%w: no MsgType (35) in %s", errs.ErrValidation, h.fs.String())
	}

	return nil
}

// describe renders "type: body".
func (h header) describe(body string) string {
	return h.typeText() + ": " + body
}

// describeNamed renders "Name (type): body".
func (h header) describeNamed(body string) string {
	return h.Name() + " (" + h.typeText() + "): " + body
}

func (h header) typeText() string {
	if t, ok := h.Type(); ok {
		return t
	}

	return encoding.NullValue
}
