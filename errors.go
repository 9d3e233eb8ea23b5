package conventional

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader    = errors.New("malformed header")
	ErrMissingType        = errors.New("missing type")
	ErrMissingDescription = errors.New("missing description")
	ErrMalformedScope     = errors.New("malformed scope")

	// ErrUnknownType is returned only by parsers built with DenyAdlibType.
	ErrUnknownType = errors.New("unknown type")
)

// ParseError describes why a header was rejected.
// Kind is one of the Err* values above and is matched by errors.Is.
type ParseError struct {
	Kind   error
	Input  string
	Offset int // byte offset into Input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %q", e.Kind, e.Offset, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseErr(kind error, input string, offset int) error {
	return &ParseError{Kind: kind, Input: input, Offset: offset}
}
