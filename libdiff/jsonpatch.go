package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"
)

// ToJSONPatch expresses changes as an RFC 6902 JSON Patch: an array of
// add, remove and replace operations.
func ToJSONPatch(changes []Change) (*ir.Document, error) {
	ops := make([]ir.Value, 0, len(changes))
	for _, c := range changes {
		ptr, err := Pointer(c.Path)
		if err != nil {
			return nil, err
		}
		kvs := []ir.KeyVal{{Key: "path", Val: ir.FromString(ir.Escape(ptr))}}
		switch c.Op {
		case Insert:
			kvs = append(kvs, ir.KeyVal{Key: "op", Val: ir.FromString("add")})
			kvs = append(kvs, ir.KeyVal{Key: "value", Val: c.To.Clone()})
		case Delete:
			kvs = append(kvs, ir.KeyVal{Key: "op", Val: ir.FromString("remove")})
		default:
			kvs = append(kvs, ir.KeyVal{Key: "op", Val: ir.FromString("replace")})
			kvs = append(kvs, ir.KeyVal{Key: "value", Val: c.To.Clone()})
		}
		ops = append(ops, ir.FromDoc(ir.FromKeyVals(kvs)))
	}
	return ir.FromSlice(ops), nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer returns the RFC 6901 JSON Pointer for kp, with keys decoded.
func Pointer(kp *kpath.KPath) (string, error) {
	buf := &strings.Builder{}
	for x := kp; x != nil; x = x.Next {
		buf.WriteByte('/')
		switch {
		case x.Field != nil:
			f, err := ir.FromString(*x.Field).Decoded()
			if err != nil {
				return "", err
			}
			buf.WriteString(pointerEscaper.Replace(f))
		case x.Index != nil:
			buf.WriteString(strconv.Itoa(*x.Index))
		}
	}
	return buf.String(), nil
}
