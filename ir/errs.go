package ir

import (
	"errors"

	"github.com/signadot/jsondoc/ir/kpath"
)

var (
	// ErrBadAccess is returned when an operation requires the other
	// kind of Document, such as an index into an object.
	ErrBadAccess = errors.New("bad json access")
	// ErrBadPath is returned for malformed paths and for indices that
	// would grow an array past MaxIndex.
	ErrBadPath = kpath.ErrBadPath
	// ErrOutOfRange is returned by direct array accessors for indices
	// outside the current length.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned by At for an absent key.
	ErrNotFound = errors.New("not found")
	// ErrType is returned when a Go value has no Value representation.
	ErrType = errors.New("unsupported type")
)

// MaxIndex bounds the array indices Set will grow an array to reach.
const MaxIndex = 1 << 24
