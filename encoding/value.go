package encoding

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aemr3/WTFIX/errs"
)

const (
	// NullValue is the literal placeholder written for absent values.
	NullValue = "None"
	// UTCTimestampFormat is the FIX UTCTimestamp layout with millisecond precision.
	UTCTimestampFormat = "20060102-15:04:05.000"
	// UTCDateFormat is the FIX UTCDateOnly / LocalMktDate layout.
	UTCDateFormat = "20060102"
)

// Encode returns the protocol byte representation of v.
//
// Supported kinds are []byte, string, nil, all integer and float types, bool,
// decimal.Decimal, time.Time and fmt.Stringer. A []byte argument is copied so the
// result never aliases caller memory.
//
// Returns:
//   - []byte: Encoded value
//   - error: errs.ErrEncoding naming the Go type when v is not supported
func Encode(v any) ([]byte, error) {
	if b, ok := v.([]byte); ok {
		out := make([]byte, len(b))
		copy(out, b)

		return out, nil
	}

	return AppendValue(nil, v)
}

// AppendValue appends the protocol representation of v to dst.
func AppendValue(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return append(dst, NullValue...), nil
	case []byte:
		return append(dst, x...), nil
	case string:
		return append(dst, x...), nil
	case int:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int8:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int16:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int32:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int64:
		return strconv.AppendInt(dst, x, 10), nil
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case uint64:
		return strconv.AppendUint(dst, x, 10), nil
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.AppendFloat(dst, x, 'f', -1, 64), nil
	case bool:
		if x {
			return append(dst, 'Y'), nil
		}

		return append(dst, 'N'), nil
	case decimal.Decimal:
		return append(dst, x.String()...), nil
	case time.Time:
		return x.UTC().AppendFormat(dst, UTCTimestampFormat), nil
	case fmt.Stringer:
		return append(dst, x.String()...), nil
	default:
		return dst, fmt.Errorf("%w: %T", errs.ErrEncoding, v)
	}
}

// EncodeString is Encode for callers that want the text form.
func EncodeString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}

	b, err := AppendValue(nil, v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Decode converts encoded bytes to text. Values that are already decoded are returned
// unchanged, and nil decodes to NullValue.
func Decode(v any) any {
	switch x := v.(type) {
	case nil:
		return NullValue
	case []byte:
		return string(x)
	default:
		return v
	}
}
