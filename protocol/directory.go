// Package protocol holds the protocol-level constants and the read-only lookup tables
// used by the rest of WTFIX: tag number <-> symbolic name, and message type code -> name.
//
// The tables cover the FIX 4.4 fields and message types a session typically touches.
// They are a directory, not a dictionary: nothing in WTFIX validates message content
// against them. Every name lookup in WTFIX goes through the FIX44 tables.
//
// # Lookups
//
//	name, err := protocol.NameFor(35)          // "MsgType"
//	tag, err := protocol.ResolveName("MsgType") // 35
//	kind, err := protocol.TypeName("A")         // "Logon"
//
// Unknown entries fail with errs.ErrUnknownTag or errs.ErrUnknownType.
package protocol

import (
	"fmt"

	"github.com/aemr3/WTFIX/errs"
)

const (
	// SOH is the field separator ("start of header" control byte).
	SOH byte = 0x01
	// ValueSeparator separates a field's tag from its value.
	ValueSeparator byte = '='
	// DefaultBeginString is the protocol version used when none is configured.
	DefaultBeginString = "FIX.4.4"
	// UnknownName is reported for message types missing from the directory.
	UnknownName = "Unknown"
)

// Directory is the lookup contract implemented by the protocol tables.
type Directory interface {
	// NameFor returns the symbolic name of tag.
	NameFor(tag int) (string, error)
	// TagFor returns the tag number of a symbolic name.
	TagFor(name string) (int, error)
	// TypeName returns the human readable name of a message type code.
	TypeName(msgType string) (string, error)
}

// StaticDirectory is an immutable Directory backed by in-memory tables.
// It is safe for concurrent use.
type StaticDirectory struct {
	names map[int]string
	tags  map[string]int
	types map[string]string
}

var _ Directory = (*StaticDirectory)(nil)

// NewStaticDirectory builds a directory from tag and message type tables.
// The tables are copied.
func NewStaticDirectory(tagNames map[int]string, typeNames map[string]string) *StaticDirectory {
	d := &StaticDirectory{
		names: make(map[int]string, len(tagNames)),
		tags:  make(map[string]int, len(tagNames)),
		types: make(map[string]string, len(typeNames)),
	}
	for tag, name := range tagNames {
		d.names[tag] = name
		d.tags[name] = tag
	}
	for code, name := range typeNames {
		d.types[code] = name
	}

	return d
}

// NameFor returns the symbolic name of tag.
func (d *StaticDirectory) NameFor(tag int) (string, error) {
	name, ok := d.names[tag]
	if !ok {
		return "", fmt.Errorf("%w: %d", errs.ErrUnknownTag, tag)
	}

	return name, nil
}

// TagFor returns the tag number of name.
func (d *StaticDirectory) TagFor(name string) (int, error) {
	tag, ok := d.tags[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownTag, name)
	}

	return tag, nil
}

// TypeName returns the human readable name of msgType.
func (d *StaticDirectory) TypeName(msgType string) (string, error) {
	name, ok := d.types[msgType]
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownType, msgType)
	}

	return name, nil
}

// FIX44 is the default directory.
var FIX44 = NewStaticDirectory(tagNames, msgTypeNames)

// NameFor looks tag up in the default directory.
func NameFor(tag int) (string, error) {
	return FIX44.NameFor(tag)
}

// ResolveName returns the tag number for a symbolic name from the default directory.
func ResolveName(name string) (int, error) {
	return FIX44.TagFor(name)
}

// TypeName looks msgType up in the default directory.
func TypeName(msgType string) (string, error) {
	return FIX44.TypeName(msgType)
}

// DisplayName returns the name of tag, or its number when the tag is unknown.
func DisplayName(tag int) string {
	if name, err := FIX44.NameFor(tag); err == nil {
		return name
	}

	return fmt.Sprint(tag)
}

// IsFramingTag reports whether tag is rendered by the frame encoder rather than
// taken from the message body (BeginString, BodyLength, CheckSum).
func IsFramingTag(tag int) bool {
	return tag == TagBeginString || tag == TagBodyLength || tag == TagCheckSum
}
