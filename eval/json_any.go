package eval

import (
	"bytes"
	"cmp"
	"encoding/json"
	"reflect"
	"slices"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// MarshalJSON returns the compact JSON text of doc. Floats keep their
// fraction so they read back as floats.
func MarshalJSON(doc *ir.Document) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToAny converts v to a plain Go value.
func ToAny(v ir.Value) any {
	switch v.Type {
	case ir.DocType:
		return DocToAny(v.Doc)
	case ir.StringType:
		s, err := v.Decoded()
		if err != nil {
			return v.String
		}
		return s
	case ir.Int64Type:
		return v.Int64
	case ir.Float64Type:
		return v.Float64
	case ir.BoolType:
		return v.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// DocToAny converts an object to map[string]any and an array to []any.
func DocToAny(doc *ir.Document) any {
	if doc == nil {
		return map[string]any{}
	}
	if doc.IsArray() {
		res := make([]any, 0, doc.Len())
		for _, v := range doc.Elems() {
			res = append(res, ToAny(v))
		}
		return res
	}
	res := make(map[string]any, doc.Len())
	for k, v := range doc.All() {
		dk, err := ir.FromString(k).Decoded()
		if err != nil {
			dk = k
		}
		res[dk] = ToAny(v)
	}
	return res
}

// FromAny converts a Go value to a Value. Besides the types ToAny
// produces it accepts Values, documents, all integer and float types,
// json.Number, and falls back to a round trip through encoding/json.
func FromAny(x any) (ir.Value, error) {
	switch v := x.(type) {
	case nil:
		return ir.Null(), nil
	case ir.Value:
		return v.Clone(), nil
	case *ir.Document:
		return ir.FromDoc(v.Clone()), nil
	case json.Number:
		return parse.ParseValue([]byte(v))
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case []any:
		vs := make([]ir.Value, len(v))
		for i, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return ir.Value{}, err
			}
			vs[i] = ev
		}
		return ir.FromDoc(ir.FromSlice(vs)), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(v))
		for k, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return ir.Value{}, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.Escape(k), Val: ev})
		}
		return ir.FromDoc(ir.FromKeyVals(kvs)), nil
	}
	if v, err := ir.ValueOf(x); err == nil {
		return v, nil
	}
	if res, ok := fromReflect(reflect.ValueOf(x)); ok {
		return res()
	}
	d, err := json.Marshal(x)
	if err != nil {
		return ir.Value{}, err
	}
	return parse.ParseValue(d)
}

// fromReflect handles slices and string keyed maps of other element
// types, such as the []int and map[string]string expressions produce.
func fromReflect(rv reflect.Value) (func() (ir.Value, error), bool) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		return func() (ir.Value, error) {
			vs := make([]ir.Value, rv.Len())
			for i := range vs {
				ev, err := FromAny(rv.Index(i).Interface())
				if err != nil {
					return ir.Value{}, err
				}
				vs[i] = ev
			}
			return ir.FromDoc(ir.FromSlice(vs)), nil
		}, true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		return func() (ir.Value, error) {
			keys := rv.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int {
				return cmp.Compare(a.String(), b.String())
			})
			kvs := make([]ir.KeyVal, 0, len(keys))
			for _, k := range keys {
				ev, err := FromAny(rv.MapIndex(k).Interface())
				if err != nil {
					return ir.Value{}, err
				}
				kvs = append(kvs, ir.KeyVal{Key: ir.Escape(k.String()), Val: ev})
			}
			return ir.FromDoc(ir.FromKeyVals(kvs)), nil
		}, true
	}
	return nil, false
}

// fromFloat rejects the floats JSON cannot represent.
func fromFloat(f float64) (ir.Value, error) {
	return ir.ValueOf(f)
}
