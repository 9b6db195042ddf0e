package analytics

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindMissingRange Kind = iota + 1
	KindMalformedRange
	KindInvertedRange
	KindTimeout
	KindUnauthorized
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindMissingRange:
		return "missing_range"
	case KindMalformedRange:
		return "malformed_range"
	case KindInvertedRange:
		return "inverted_range"
	case KindTimeout:
		return "timeout"
	case KindUnauthorized:
		return "unauthorized"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// QueryError is returned by Execute. errors.Is matches the sentinel of the
// same Kind.
type QueryError struct {
	Kind Kind
	Err  error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return "analytics query: " + e.Kind.String()
	}
	return fmt.Sprintf("analytics query: %s: %v", e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	t, ok := target.(*QueryError)
	return ok && t.Err == nil && t.Kind == e.Kind
}

// Validation reports whether the query was rejected before dispatch.
func (e *QueryError) Validation() bool {
	switch e.Kind {
	case KindMissingRange, KindMalformedRange, KindInvertedRange:
		return true
	}
	return false
}

var (
	ErrMissingRange   = &QueryError{Kind: KindMissingRange}
	ErrMalformedRange = &QueryError{Kind: KindMalformedRange}
	ErrInvertedRange  = &QueryError{Kind: KindInvertedRange}
	ErrTimeout        = &QueryError{Kind: KindTimeout}
	ErrUnauthorized   = &QueryError{Kind: KindUnauthorized}
	ErrTransport      = &QueryError{Kind: KindTransport}

	// ErrSuperseded goes to the caller of an outrun query; it never
	// reaches the displayed state.
	ErrSuperseded = errors.New("analytics query superseded by a newer one")
)
