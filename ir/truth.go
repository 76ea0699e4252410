package ir

// Truth reports whether v is truthy: non-empty containers and strings,
// non-zero numbers and true.
func Truth(v Value) bool {
	switch v.Type {
	case DocType:
		return v.Doc != nil && v.Doc.Len() != 0
	case StringType:
		return v.String != ""
	case Int64Type:
		return v.Int64 != 0
	case Float64Type:
		return v.Float64 != 0.0
	case BoolType:
		return v.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
