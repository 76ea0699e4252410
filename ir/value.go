package ir

import (
	"fmt"
	"math"

	"github.com/signadot/jsondoc/token"
)

// Value is a single JSON datum. Type selects which of the payload
// fields is live; the others are zero.
//
// String holds string content as it appeared between the quotes of
// the source text, escape sequences included. Use Decoded for the
// text those escapes denote.
//
// A Value of DocType owns Doc: Clone copies it and the path based
// mutators in this package never share it between two Values.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string
	Doc     *Document
}

func Null() Value {
	return Value{Type: NullType}
}

func FromBool(b bool) Value {
	return Value{Type: BoolType, Bool: b}
}

func FromInt(i int64) Value {
	return Value{Type: Int64Type, Int64: i}
}

func FromFloat(f float64) Value {
	return Value{Type: Float64Type, Float64: f}
}

// FromString returns a string value holding s verbatim. s should
// already be in escaped form; see Escape for converting raw text.
func FromString(s string) Value {
	return Value{Type: StringType, String: s}
}

// FromDoc returns a value holding d. A nil d yields an empty object.
func FromDoc(d *Document) Value {
	if d == nil {
		d = NewObject()
	}
	return Value{Type: DocType, Doc: d}
}

// ValueOf converts a Go scalar, Value or *Document to a Value.
// Documents are not copied.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Null(), nil
		}
		return *v, nil
	case *Document:
		return FromDoc(v), nil
	case bool:
		return FromBool(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return FromInt(int64(v)), nil
	case uint16:
		return FromInt(int64(v)), nil
	case uint32:
		return FromInt(int64(v)), nil
	case uint64:
		return fromUint(v)
	case float32:
		return fromFinite(float64(v))
	case float64:
		return fromFinite(v)
	case string:
		return FromString(Escape(v)), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrType, x)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrType, u)
	}
	return FromInt(int64(u)), nil
}

func fromFinite(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v has no json representation", ErrType, f)
	}
	return FromFloat(f), nil
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	if v.Type == DocType && v.Doc != nil {
		v.Doc = v.Doc.Clone()
	}
	return v
}

// Decoded returns the text denoted by a string value's escape sequences.
func (v Value) Decoded() (string, error) {
	if v.Type != StringType {
		return "", fmt.Errorf("%w: %s is not a string", ErrBadAccess, v.Type)
	}
	return token.Unescape(v.String)
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.Type == NullType
}

// Equal reports whether v and o are structurally equal. Integers and
// floats are distinct even when numerically equal.
func (v Value) Equal(o Value) bool {
	return Compare(v, o) == 0
}

// Escape returns s with the characters JSON requires to be escaped
// replaced by escape sequences, suitable for FromString.
func Escape(s string) string {
	return token.Escape(s)
}
