package app

import (
	"errors"

	"github.com/bamorim/bindpls/internal/finder"
)

var (
	ErrInvalidConfigKey   = errors.New("invalid configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
)

type CodeError struct {
	Code int
	Err  error
}

func (e CodeError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e CodeError) Unwrap() error {
	return e.Err
}

func NewCodeError(code int, err error) error {
	return CodeError{Code: code, Err: err}
}

// wrapSearchErr attaches the CLI exit code matching the search failure
// kind: exhausted 1, invalid input 2, io 3.
func wrapSearchErr(err error) error {
	kind, ok := finder.KindOf(err)
	if !ok {
		return err
	}
	switch kind {
	case finder.KindExhausted:
		return NewCodeError(1, err)
	case finder.KindInvalidInput:
		return NewCodeError(2, err)
	case finder.KindIO:
		return NewCodeError(3, err)
	default:
		return err
	}
}
