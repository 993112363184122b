package compact

import "errors"

// Sentinel errors for the reader/writer taxonomy. Buffer allocation
// failures are not returned as errors (buffer growth panics instead; see
// buffer.ErrAllocationFailure); these cover the codec-level failure modes.
var (
	// ErrTruncatedInput is returned when a read needed more bytes than
	// remained in the buffer.
	ErrTruncatedInput = errors.New("compact: truncated input")

	// ErrMalformedVarint is returned when a varint ran past its maximum
	// encoded length for the target width, decoded to a value wider than
	// the target width, or ended before its terminating byte.
	ErrMalformedVarint = errors.New("compact: malformed varint")

	// ErrUnknownType is returned by Skip when asked to skip a type code
	// outside the closed enumeration (including TypeUnavailable).
	ErrUnknownType = errors.New("compact: unknown type")

	// ErrTypeMismatch is a caller-level concern: it is not raised by this
	// package's value readers (which decode bytes per their own rules
	// regardless of the field header's declared type), but is exposed
	// here so dispatch code built on top of Reader.ReadFieldHeader has a
	// standard error to return when a field's declared type doesn't
	// match what the caller expected.
	ErrTypeMismatch = errors.New("compact: type mismatch")
)
