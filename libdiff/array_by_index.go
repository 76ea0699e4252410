package libdiff

import (
	"strconv"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// array diffs the sequences of element summaries of from and to.
//
// A summary is the type of a document or the type and text of a
// scalar, so documents of the same kind line up and are diffed in
// place while scalars line up only when equal. A deletion directly
// followed by an insertion at the same index becomes a replacement.
func (df *differ) array(path *kpath.KPath, from, to *ir.Document) {
	m := map[string]rune{}
	fromVals, toVals := from.Values(), to.Values()
	fromRunes := mapValues(m, fromVals)
	toRunes := mapValues(m, toVals)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	lastDel := -1
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				df.add(Change{
					Op:   Delete,
					Path: path.Append(kpath.Index(ri)),
					From: fromVals[fi].Clone(),
				})
				lastDel = len(df.changes) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range diff.Text {
				df.value(path.Append(kpath.Index(ri)), fromVals[fi], toVals[ti])
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if lastDel != -1 && lastDel == len(df.changes)-1 {
					c := &df.changes[lastDel]
					c.Op = Replace
					c.To = toVals[ti].Clone()
				} else {
					df.add(Change{
						Op:   Insert,
						Path: path.Append(kpath.Index(ri)),
						To:   toVals[ti].Clone(),
					})
				}
				lastDel = -1
				ri++
				ti++
			}
		}
	}
}

func mapValues(m map[string]rune, vals []ir.Value) []rune {
	rs := make([]rune, len(vals))
	for i, v := range vals {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = runeFor(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v ir.Value) string {
	switch v.Type {
	case ir.DocType:
		if v.Doc != nil && v.Doc.IsArray() {
			return "Array"
		}
		return "Object"
	case ir.NullType:
		return v.Type.String()
	case ir.BoolType:
		return v.Type.String() + "-" + strconv.FormatBool(v.Bool)
	case ir.StringType:
		return v.Type.String() + "-" + v.String
	case ir.Int64Type:
		return v.Type.String() + "-" + strconv.FormatInt(v.Int64, 10)
	case ir.Float64Type:
		return v.Type.String() + "-" + strconv.FormatFloat(v.Float64, 'g', -1, 64)
	default:
		panic("type")
	}
}
