// Package errs defines the sentinel errors shared by every WTFIX package.
//
// Errors are raised at the point of detection and wrapped with context using
// fmt.Errorf("%w: ..."), so callers should always test with errors.Is:
//
//	if _, err := fs.Get(protocol.TagMsgType); errors.Is(err, errs.ErrTagNotFound) {
//	    // tag is absent
//	}
//
// Structural failures detected while decoding frames (checksum, body length, malformed
// fields) wrap ErrValidation, so a single errors.Is(err, errs.ErrValidation) check covers
// every frame-level rejection.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTagNotFound is returned when a requested tag is absent from a buffer or FieldSet.
	ErrTagNotFound = errors.New("tag not found")
	// ErrUnknownTag is returned when a symbolic name or tag number has no directory entry.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrUnknownType is returned when a message type code has no registered name.
	ErrUnknownType = errors.New("unknown message type")
	// ErrDuplicateTags is returned when a unique-tag FieldSet is given repeated tags.
	ErrDuplicateTags = errors.New("duplicate tags")
	// ErrInvalidGroup is returned when group instances do not match their template, or
	// when a tag is requested as a group but holds a plain field.
	ErrInvalidGroup = errors.New("invalid group")
	// ErrValidation is returned when a structural precondition fails.
	ErrValidation = errors.New("validation error")
	// ErrEncoding is returned when a value of an unsupported type is encoded.
	ErrEncoding = errors.New("unsupported value type")
)

// Frame level validation failures.
var (
	ErrMalformedFrame     = fmt.Errorf("%w: malformed frame", ErrValidation)
	ErrMalformedField     = fmt.Errorf("%w: malformed field", ErrValidation)
	ErrBodyLengthMismatch = fmt.Errorf("%w: body length mismatch", ErrValidation)
	ErrChecksumMismatch   = fmt.Errorf("%w: checksum mismatch", ErrValidation)
	ErrIncompleteFrame    = fmt.Errorf("%w: incomplete frame", ErrValidation)
)

// Archive errors.
var (
	ErrInvalidArchiveHeader = errors.New("invalid archive header")
	ErrArchiveCorrupted     = errors.New("archive payload corrupted")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrArchiveFinished      = errors.New("archive writer already finished")
	ErrFrameOutOfRange      = errors.New("frame index out of range")
)
