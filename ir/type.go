package ir

import "fmt"

// Type selects which payload of a Value is live.
type Type int

const (
	NullType Type = iota
	BoolType
	Int64Type
	Float64Type
	StringType
	DocType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		Int64Type:   "Int64",
		Float64Type: "Float64",
		StringType:  "String",
		DocType:     "Document",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Bool":     BoolType,
		"Int64":    Int64Type,
		"Float64":  Float64Type,
		"String":   StringType,
		"Document": DocType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		Int64Type,
		Float64Type,
		StringType,
		DocType,
	}
}

func (t Type) IsLeaf() bool {
	return t != DocType
}

func (t Type) IsNumber() bool {
	return t == Int64Type || t == Float64Type
}

// Kind distinguishes the two shapes of Document.
type Kind int

const (
	ObjectKind Kind = iota
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case ObjectKind:
		return "Object"
	case ArrayKind:
		return "Array"
	default:
		return "<unknown kind>"
	}
}
