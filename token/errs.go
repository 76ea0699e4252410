package token

import (
	"errors"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("number")
	ErrNumberRange       = errors.New("number out of range")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad \\-sequence")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrUnexpected        = errors.New("unexpected")
)
