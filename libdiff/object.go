package libdiff

import (
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// object diffs the key sequences of from and to: keys only in from are
// deleted, keys only in to inserted, and the values of common keys
// are diffed in turn.
func (df *differ) object(path *kpath.KPath, from, to *ir.Document) {
	fieldMap := map[string]rune{}
	fromKeys, toKeys := from.Keys(), to.Keys()
	fromVals, toVals := from.Values(), to.Values()
	fromRunes := mapFieldsTo(fieldMap, fromKeys)
	toRunes := mapFieldsTo(fieldMap, toKeys)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				df.add(Change{
					Op:   Delete,
					Path: path.Append(kpath.Field(fromKeys[fi])),
					From: fromVals[fi].Clone(),
				})
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				df.value(path.Append(kpath.Field(fromKeys[fi])), fromVals[fi], toVals[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				df.add(Change{
					Op:   Insert,
					Path: path.Append(kpath.Field(toKeys[ti])),
					To:   toVals[ti].Clone(),
				})
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, f := range keys {
		r, ok := m[f]
		if !ok {
			r = runeFor(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}
