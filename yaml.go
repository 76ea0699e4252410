package jsondoc

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsondoc/eval"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// FromYAML reads the first YAML document of d. Its top level must be a
// mapping or a sequence.
func FromYAML(d []byte) (*ir.Document, error) {
	var x any
	if err := yaml.Unmarshal(d, &x); err != nil {
		return nil, err
	}
	v, err := eval.FromAny(stringKeys(x))
	if err != nil {
		return nil, err
	}
	if v.Type != ir.DocType {
		return nil, fmt.Errorf("%w: yaml top level is %s", parse.ErrTopLevel, v.Type)
	}
	return v.Doc, nil
}

// stringKeys converts mappings with non-string keys, which JSON cannot
// hold, to mappings keyed by the keys' text.
func stringKeys(x any) any {
	switch y := x.(type) {
	case map[any]any:
		res := make(map[string]any, len(y))
		for k, v := range y {
			res[fmt.Sprint(k)] = stringKeys(v)
		}
		return res
	case map[string]any:
		for k, v := range y {
			y[k] = stringKeys(v)
		}
		return y
	case []any:
		for i, v := range y {
			y[i] = stringKeys(v)
		}
		return y
	default:
		return x
	}
}

// ToYAML returns doc as a YAML document, keeping the key order of doc.
func ToYAML(doc *ir.Document) ([]byte, error) {
	return yaml.Marshal(yamlValue(ir.FromDoc(doc)))
}

func yamlValue(v ir.Value) any {
	if v.Type != ir.DocType {
		return eval.ToAny(v)
	}
	if v.Doc.IsArray() {
		res := make([]any, 0, v.Doc.Len())
		for _, e := range v.Doc.Elems() {
			res = append(res, yamlValue(e))
		}
		return res
	}
	res := make(yaml.MapSlice, 0, v.Doc.Len())
	for k, e := range v.Doc.All() {
		dk, err := ir.FromString(k).Decoded()
		if err != nil {
			dk = k
		}
		res = append(res, yaml.MapItem{Key: dk, Value: yamlValue(e)})
	}
	return res
}
