// Package encoding is the lowest layer of WTFIX: it converts scalar values to and from
// their on-wire text form, locates tag/value pairs inside an encoded buffer, and
// computes the protocol checksum.
//
// Everything in this package is a pure function over its arguments and is safe for
// concurrent use as long as callers do not share mutable buffers.
//
// # Values
//
// Encode renders a scalar as protocol bytes:
//
//	encoding.Encode("abc")          // []byte("abc")
//	encoding.Encode(123)            // []byte("123")
//	encoding.Encode(1.23)           // []byte("1.23")
//	encoding.Encode(nil)            // []byte("None")
//	encoding.Encode(true)           // []byte("Y")
//
// Byte slices pass through unchanged. Unsupported types fail with errs.ErrEncoding.
// Decode is the best-effort inverse: byte slices become strings and already decoded
// values pass through.
//
// # Tag Index
//
// IndexTag and RIndexTag find a field by tag without parsing the whole buffer. Matches
// are anchored on field boundaries, so searching for tag 9 never matches "19=" or a
// value that happens to contain "9=":
//
//	value, start, end, err := encoding.IndexTag(35, frame)
//
// start is the offset of the first tag digit and end the offset of the terminating SOH,
// so frame[start:end+1] is the complete field. RIndexTag scans from the end and is the
// natural choice for trailer fields such as CheckSum.
//
// # Checksum
//
// CalculateChecksum sums every byte modulo 256. AppendChecksum renders the result as the
// fixed-width, three digit decimal used by the CheckSum(10) field.
package encoding
