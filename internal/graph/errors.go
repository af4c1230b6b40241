package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse indicates no graph payload could be isolated from
	// the model response, or the payload could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidGraph indicates a decoded payload violates the document invariants.
	ErrInvalidGraph = errors.New("invalid graph")
)

// ParseError describes an extraction failure. Wraps ErrMalformedResponse.
type ParseError struct {
	Msg string
	Err error // underlying decode error, if any
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := ErrMalformedResponse.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the class sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}

// Validation failure kinds.
const (
	KindEmpty        = "empty"
	KindDuplicateID  = "duplicate_id"
	KindDanglingEdge = "dangling_edge"
	KindMissingField = "missing_field"
	KindOutOfRange   = "out_of_range"
	KindUnknownGroup = "unknown_group"
	KindUnknownLabel = "unknown_label"
)

// ValidationError describes an invariant violation. Wraps ErrInvalidGraph.
type ValidationError struct {
	Kind string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrInvalidGraph.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidGraph.Error(), e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidGraph }
