package jsondoc

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/eval"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/parse"
)

// ApplyPatch applies an RFC 6902 JSON Patch, an array of operation
// objects, to doc and returns the result. doc is not modified.
//
// An add or replace of the whole document, path "", swaps in its value
// directly.
func ApplyPatch(doc, patch *ir.Document) (*ir.Document, error) {
	if !patch.IsArray() {
		return nil, fmt.Errorf("%w: json patch must be an array", ir.ErrBadAccess)
	}
	if debug.Patch() {
		debug.Logf("json patch\n%s\non\n%s\n", patch, doc)
	}
	res := doc
	batch := ir.NewArray()
	for _, op := range patch.Elems() {
		root, ok := rootValue(op)
		if !ok {
			if err := batch.PushBack(op); err != nil {
				return nil, err
			}
			continue
		}
		var err error
		if res, err = applyOps(res, batch); err != nil {
			return nil, err
		}
		batch = ir.NewArray()
		res = root.Clone()
	}
	res, err := applyOps(res, batch)
	if err != nil {
		return nil, err
	}
	if res == doc {
		res = doc.Clone()
	}
	return res, nil
}

// rootValue returns the document of an add or replace op at path "".
func rootValue(op ir.Value) (*ir.Document, bool) {
	if op.Type != ir.DocType || !op.Doc.IsObject() {
		return nil, false
	}
	path, ok := ir.GetAs[string](op.Doc, "path")
	if !ok || path != "" {
		return nil, false
	}
	name, _ := ir.GetAs[string](op.Doc, "op")
	if name != "add" && name != "replace" {
		return nil, false
	}
	v, err := op.Doc.At("value")
	if err != nil || v.Type != ir.DocType {
		return nil, false
	}
	return v.Doc, true
}

func applyOps(doc, ops *ir.Document) (*ir.Document, error) {
	if ops.Len() == 0 {
		return doc, nil
	}
	p, err := eval.MarshalJSON(ops)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, err
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc: object members of
// patch replace those of doc, null members delete, and a patch that is
// not an object replaces doc.
func MergePatch(doc, patch *ir.Document) (*ir.Document, error) {
	if debug.Patch() {
		debug.Logf("merge patch\n%s\non\n%s\n", patch, doc)
	}
	p, err := eval.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// Diff returns the changes turning from into to.
func Diff(from, to *ir.Document) []libdiff.Change {
	return libdiff.Diff(from, to)
}

// DiffPatch returns an RFC 6902 JSON Patch turning from into to.
// Documents of different kinds give a single replace of the root.
func DiffPatch(from, to *ir.Document) (*ir.Document, error) {
	if from.Kind() != to.Kind() {
		return ir.FromSlice([]ir.Value{ir.FromDoc(ir.FromKeyVals([]ir.KeyVal{
			{Key: "op", Val: ir.FromString("replace")},
			{Key: "path", Val: ir.FromString("")},
			{Key: "value", Val: ir.FromDoc(to.Clone())},
		}))}), nil
	}
	return libdiff.ToJSONPatch(libdiff.Diff(from, to))
}
