// Package field defines Field, the unit of every WTFIX message: a tag number paired
// with its on-wire value.
//
// Field is a small comparable value type. Two fields are equal when both their tag and
// value are equal, so == and map keys work as expected and copying is assignment.
//
//	f, err := field.New(protocol.TagMsgType, "A")
//	f.Raw()    // []byte("35=A\x01")
//	f.String() // "(35, A)"
//	f.Named()  // "(MsgType, A)"
//
// Values are stored in their encoded text form. Typed accessors (Int, Float, Decimal,
// Bool, Time) decode on demand and report errs.ErrValidation when the value does not
// parse.
package field

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/protocol"
)

// Field is a single tag/value pair.
type Field struct {
	Tag   int
	Value string
}

// New builds a field, encoding v with encoding.AppendValue.
func New(tag int, v any) (Field, error) {
	if tag <= 0 {
		return Field{}, fmt.Errorf("%w: tag must be positive, got %d", errs.ErrValidation, tag)
	}

	value, err := encoding.EncodeString(v)
	if err != nil {
		return Field{}, fmt.Errorf("tag %d: %w", tag, err)
	}

	return Field{Tag: tag, Value: value}, nil
}

// MustNew is New that panics on error. Intended for literals and tests.
func MustNew(tag int, v any) Field {
	f, err := New(tag, v)
	if err != nil {
		panic(err)
	}

	return f
}

// Parse decodes a single "tag=value" pair. A trailing SOH is accepted.
func Parse(raw []byte) (Field, error) {
	raw = bytes.TrimSuffix(raw, []byte{protocol.SOH})

	sep := bytes.IndexByte(raw, protocol.ValueSeparator)
	if sep < 0 {
		return Field{}, fmt.Errorf("%w: missing separator in %q", errs.ErrMalformedField, raw)
	}

	tag, ok := encoding.ParseTag(raw[:sep])
	if !ok {
		return Field{}, fmt.Errorf("%w: invalid tag %q", errs.ErrMalformedField, raw[:sep])
	}

	value := raw[sep+1:]
	if bytes.IndexByte(value, protocol.SOH) >= 0 {
		return Field{}, fmt.Errorf("%w: value of tag %d contains SOH", errs.ErrMalformedField, tag)
	}

	return Field{Tag: tag, Value: string(value)}, nil
}

// Name returns the symbolic name of the field's tag.
func (f Field) Name() (string, error) {
	return protocol.NameFor(f.Tag)
}

// Bytes returns the value as a new byte slice.
func (f Field) Bytes() []byte {
	return []byte(f.Value)
}

// IsNull reports whether the value is the null placeholder.
func (f Field) IsNull() bool {
	return f.Value == encoding.NullValue
}

// Int parses the value as a decimal integer.
func (f Field) Int() (int, error) {
	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return 0, f.invalid("integer")
	}

	return n, nil
}

// Float parses the value as a float64.
func (f Field) Float() (float64, error) {
	v, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return 0, f.invalid("float")
	}

	return v, nil
}

// Decimal parses the value as an arbitrary precision decimal, the preferred form for
// prices and quantities.
func (f Field) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(f.Value)
	if err != nil {
		return decimal.Zero, f.invalid("decimal")
	}

	return d, nil
}

// Bool parses a FIX boolean ("Y" or "N").
func (f Field) Bool() (bool, error) {
	switch f.Value {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, f.invalid("boolean")
	}
}

// Time parses a UTCTimestamp (with optional fractional seconds) or a UTCDateOnly value.
func (f Field) Time() (time.Time, error) {
	layout := "20060102-15:04:05"
	if len(f.Value) == len(encoding.UTCDateFormat) {
		layout = encoding.UTCDateFormat
	}

	t, err := time.Parse(layout, f.Value)
	if err != nil {
		return time.Time{}, f.invalid("timestamp")
	}

	return t, nil
}

// Raw returns the encoded "tag=value<SOH>" form.
func (f Field) Raw() []byte {
	return f.AppendRaw(make([]byte, 0, f.RawLen()))
}

// AppendRaw appends the encoded form to dst.
func (f Field) AppendRaw(dst []byte) []byte {
	return encoding.AppendField(dst, f.Tag, f.Value)
}

// RawLen returns the length of the encoded form.
func (f Field) RawLen() int {
	return encoding.FieldLen(f.Tag, f.Value)
}

// String renders the field as "(tag, value)".
func (f Field) String() string {
	return "(" + strconv.Itoa(f.Tag) + ", " + f.Value + ")"
}

// Named renders the field as "(Name, value)", falling back to the tag number for tags
// missing from the directory.
func (f Field) Named() string {
	return "(" + protocol.DisplayName(f.Tag) + ", " + f.Value + ")"
}

func (f Field) invalid(kind string) error {
	return fmt.Errorf("%w: tag %d value %q is not a valid %s", errs.ErrValidation, f.Tag, f.Value, kind)
}
