package wire

import (
	"errors"

	"github.com/aemr3/WTFIX/errs"
)

// Observer receives codec events. Implementations must be safe for concurrent use.
type Observer interface {
	// FrameDecoded is called after a frame passed DecodeRaw.
	FrameDecoded(msgType string, size int)
	// FrameEncoded is called after Encode rendered a frame.
	FrameEncoded(msgType string, size int)
	// FrameRejected is called when decoding fails. reason is one of the Reason constants.
	FrameRejected(reason string)
}

// Rejection reasons reported to Observer.FrameRejected.
const (
	ReasonMalformed      = "malformed"
	ReasonBodyLength     = "body_length"
	ReasonChecksum       = "checksum"
	ReasonMissingMsgType = "missing_msg_type"
	ReasonInvalidGroup   = "invalid_group"
	ReasonOther          = "other"
)

// RejectReason classifies a decode error.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrBodyLengthMismatch):
		return ReasonBodyLength
	case errors.Is(err, errs.ErrChecksumMismatch):
		return ReasonChecksum
	case errors.Is(err, errs.ErrMalformedFrame), errors.Is(err, errs.ErrMalformedField),
		errors.Is(err, errs.ErrIncompleteFrame):
		return ReasonMalformed
	case errors.Is(err, errs.ErrInvalidGroup), errors.Is(err, errs.ErrDuplicateTags):
		return ReasonInvalidGroup
	case errors.Is(err, errs.ErrValidation):
		return ReasonMissingMsgType
	default:
		return ReasonOther
	}
}

// NopObserver ignores every event.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) FrameDecoded(string, int) {}
func (NopObserver) FrameEncoded(string, int) {}
func (NopObserver) FrameRejected(string)     {}
