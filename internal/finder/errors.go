package finder

import (
	"errors"
	"fmt"
)

// Kind classifies search failures. Only KindInUse is recoverable, and it
// never escapes the search loop: the prober reports it as available=false
// and the allocator advances to the next candidate.
type Kind int

const (
	KindInUse Kind = iota
	KindExhausted
	KindInvalidInput
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInUse:
		return "in-use"
	case KindExhausted:
		return "exhausted"
	case KindInvalidInput:
		return "invalid-input"
	case KindIO:
		return "io-error"
	default:
		return "unknown"
	}
}

// Error is a terminal search failure tagged with its kind and the candidate
// that triggered it.
type Error struct {
	Kind      Kind
	Candidate string
	Err       error
}

func (e *Error) Error() string {
	if e.Candidate == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Candidate, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the failure kind of an error returned by this package.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
