package libdiff

import (
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"
)

// Diff returns the changes turning from into to. Equal documents give
// no changes.
func Diff(from, to *ir.Document) []Change {
	df := &differ{}
	df.doc(nil, from, to)
	return df.changes
}

// DiffValue is Diff for two values.
func DiffValue(from, to ir.Value) []Change {
	df := &differ{}
	df.value(nil, from, to)
	return df.changes
}

type differ struct {
	changes []Change
}

func (df *differ) add(c Change) {
	df.changes = append(df.changes, c)
}

func (df *differ) value(path *kpath.KPath, from, to ir.Value) {
	if from.Type == ir.DocType && to.Type == ir.DocType {
		df.doc(path, from.Doc, to.Doc)
		return
	}
	if !from.Equal(to) {
		df.add(Change{Op: Replace, Path: path, From: from.Clone(), To: to.Clone()})
	}
}

func (df *differ) doc(path *kpath.KPath, from, to *ir.Document) {
	if from == nil {
		from = ir.NewObject()
	}
	if to == nil {
		to = ir.NewObject()
	}
	switch {
	case from.Kind() != to.Kind():
		df.add(Change{
			Op:   Replace,
			Path: path,
			From: ir.FromDoc(from.Clone()),
			To:   ir.FromDoc(to.Clone()),
		})
	case from.IsObject():
		df.object(path, from, to)
	default:
		df.array(path, from, to)
	}
}

// runeFor numbers the distinct items of a sequence diff, skipping the
// surrogate range which does not survive conversion to a string.
func runeFor(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
