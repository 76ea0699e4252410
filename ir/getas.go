package ir

// Scalar lists the Go types a Value payload can be read as.
type Scalar interface {
	bool | int64 | float64 | string | *Document
}

// As returns the payload of v when v holds a T. Strings are returned
// in escaped form.
func As[T Scalar](v Value) (T, bool) {
	var (
		zero T
		x    any
	)
	switch any(zero).(type) {
	case bool:
		if v.Type != BoolType {
			return zero, false
		}
		x = v.Bool
	case int64:
		if v.Type != Int64Type {
			return zero, false
		}
		x = v.Int64
	case float64:
		if v.Type != Float64Type {
			return zero, false
		}
		x = v.Float64
	case string:
		if v.Type != StringType {
			return zero, false
		}
		x = v.String
	case *Document:
		if v.Type != DocType {
			return zero, false
		}
		x = v.Doc
	}
	return x.(T), true
}

// GetAs looks up path in d and returns its payload when it holds a T.
// A malformed path, a missing value and a value of another type all
// report false.
func GetAs[T Scalar](d *Document, path string) (T, bool) {
	v, ok, err := d.Get(path)
	if err != nil || !ok {
		var zero T
		return zero, false
	}
	return As[T](v)
}

// GetOr is GetAs with a fallback for when GetAs reports false.
func GetOr[T Scalar](d *Document, path string, def T) T {
	if v, ok := GetAs[T](d, path); ok {
		return v
	}
	return def
}
