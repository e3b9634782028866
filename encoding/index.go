package encoding

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/protocol"
)

// maxTagPrefix fits SOH, the largest int64 and '='.
const maxTagPrefix = 1 + 20 + 1

// IndexTag finds the first occurrence of tag in data.
//
// The search is anchored on field boundaries: a match is either at the very start of
// data or immediately after an SOH.
//
// Parameters:
//   - tag: Tag number to look for
//   - data: Encoded buffer
//
// Returns:
//   - value: The field value, a sub-slice of data with its capacity clipped
//   - start: Offset of the first digit of the tag, never the SOH before it. RIndexTag
//     reports the same offset, so data[start:end+1] is the whole field in both directions.
//   - end: Offset of the terminating SOH, or len(data) when the field is unterminated
//   - err: errs.ErrTagNotFound when the tag does not occur
func IndexTag(tag int, data []byte) (value []byte, start, end int, err error) {
	var buf [maxTagPrefix]byte
	needle := appendNeedle(buf[:0], tag)

	switch {
	case bytes.HasPrefix(data, needle[1:]):
		start = 0
	default:
		i := bytes.Index(data, needle)
		if i < 0 {
			return nil, 0, 0, fmt.Errorf("%w: %d", errs.ErrTagNotFound, tag)
		}
		start = i + 1
	}

	value, end = valueAt(data, start+len(needle)-1)

	return value, start, end, nil
}

// RIndexTag finds the last occurrence of tag in data. It has the same contract as
// IndexTag but scans backwards, which avoids walking the whole frame for trailer tags.
func RIndexTag(tag int, data []byte) (value []byte, start, end int, err error) {
	var buf [maxTagPrefix]byte
	needle := appendNeedle(buf[:0], tag)

	i := bytes.LastIndex(data, needle)
	switch {
	case i >= 0:
		start = i + 1
	case bytes.HasPrefix(data, needle[1:]):
		start = 0
	default:
		return nil, 0, 0, fmt.Errorf("%w: %d", errs.ErrTagNotFound, tag)
	}

	value, end = valueAt(data, start+len(needle)-1)

	return value, start, end, nil
}

// appendNeedle appends SOH + "tag=" to dst.
func appendNeedle(dst []byte, tag int) []byte {
	dst = append(dst, protocol.SOH)
	dst = strconv.AppendInt(dst, int64(tag), 10)

	return append(dst, protocol.ValueSeparator)
}

func valueAt(data []byte, valueStart int) ([]byte, int) {
	end := bytes.IndexByte(data[valueStart:], protocol.SOH)
	if end < 0 {
		end = len(data)
	} else {
		end += valueStart
	}

	return data[valueStart:end:end], end
}

// AppendField appends "tag=value<SOH>" to dst.
func AppendField(dst []byte, tag int, value string) []byte {
	dst = strconv.AppendInt(dst, int64(tag), 10)
	dst = append(dst, protocol.ValueSeparator)
	dst = append(dst, value...)

	return append(dst, protocol.SOH)
}

// FieldLen returns the encoded length of "tag=value<SOH>".
func FieldLen(tag int, value string) int {
	return digits(tag) + 1 + len(value) + 1
}

// ParseTag parses the decimal tag number in b. Only ASCII digits are accepted and the
// result must be positive.
func ParseTag(b []byte) (int, bool) {
	if len(b) == 0 || len(b) > 10 {
		return 0, false
	}

	tag := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		tag = tag*10 + int(c-'0')
	}

	return tag, tag > 0
}

// ParseUint parses a non-negative decimal integer value such as BodyLength or a group
// counter.
func ParseUint(b []byte) (int, bool) {
	if len(b) == 0 || len(b) > 18 {
		return 0, false
	}

	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}

	return n, true
}

func digits(n int) int {
	if n < 0 {
		return 1 + digits(-n)
	}

	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}
