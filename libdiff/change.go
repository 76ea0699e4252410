package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Change is one step of a diff. From is set for Delete and Replace, To
// for Insert and Replace. A nil Path addresses the whole document.
type Change struct {
	Op   Op
	Path *kpath.KPath
	From ir.Value
	To   ir.Value
}

func (c Change) String() string {
	path := c.Path.String()
	if path == "" {
		path = "."
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", path, valueString(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", path, valueString(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", path, valueString(c.From), valueString(c.To))
	}
}

func valueString(v ir.Value) string {
	buf := &strings.Builder{}
	if err := encode.EncodeValue(v, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return strings.TrimSpace(buf.String())
}
