package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsondoc/token"
)

var (
	ErrParse = errors.New("parse error")
	// ErrDepth is returned when containers nest deeper than MaxDepth.
	ErrDepth = fmt.Errorf("%w: nesting too deep", ErrParse)
	// ErrTrailing is returned when text follows the top level value.
	ErrTrailing = fmt.Errorf("%w: trailing data", ErrParse)
	// ErrTrailingComma is returned for a ',' directly before ']' or '}'.
	ErrTrailingComma = fmt.Errorf("%w: trailing comma", ErrParse)
	// ErrTopLevel is returned when a document does not start with '{' or '['.
	ErrTopLevel = fmt.Errorf("%w: expected object or array", ErrParse)
)

// Error locates a parse failure in the input. Every Error matches
// ErrParse under errors.Is.
type Error struct {
	Offset int
	Pos    *token.Pos
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}
