package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminated reports a declaration or invocation whose closing
	// delimiter never appears before the end of the input.
	ErrUnterminated = errors.New("unterminated invocation")
	// ErrMalformed reports a declaration or invocation that is closed but
	// does not carry the tokens it needs.
	ErrMalformed = errors.New("malformed invocation")
)

// SyntaxError locates a scanning failure inside an input file.
type SyntaxError struct {
	Path   Path
	Line   int
	Reason string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
