package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different types order as
// Null < Bool < Int64 < Float64 < String < Document.
func Compare(a, b Value) int {
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case Int64Type:
		return cmp.Compare(a.Int64, b.Int64)
	case Float64Type:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case DocType:
		return CompareDocs(a.Doc, b.Doc)
	}
	return 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case Int64Type:
		return 2
	case Float64Type:
		return 3
	case StringType:
		return 4
	case DocType:
		return 5
	}
	return 100
}

// CompareDocs orders documents: arrays before objects, then by
// contents. A nil document compares as an empty object.
func CompareDocs(a, b *Document) int {
	if a == b {
		return 0
	}
	if a == nil {
		a = &Document{}
	}
	if b == nil {
		b = &Document{}
	}
	if a.kind != b.kind {
		if a.kind == ArrayKind {
			return -1
		}
		return 1
	}
	if a.kind == ArrayKind {
		return compareArrays(a, b)
	}
	return compareObjects(a, b)
}

func compareArrays(a, b *Document) int {
	lenA := len(a.values)
	lenB := len(b.values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Document) int {
	lenA := len(a.fields)
	lenB := len(b.fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.fields[i], b.fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
