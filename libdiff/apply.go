package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/jsondoc/ir"
)

var ErrApply = errors.New("cannot apply change")

// Apply returns a copy of doc with changes applied in order. doc itself
// is not modified.
func Apply(doc *ir.Document, changes []Change) (*ir.Document, error) {
	res := doc.Clone()
	for _, c := range changes {
		if c.Path == nil {
			if c.Op != Replace || c.To.Type != ir.DocType {
				return nil, fmt.Errorf("%w: %s at the document root", ErrApply, c.Op)
			}
			res = c.To.Doc.Clone()
			continue
		}
		if err := apply(res, c); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrApply, c, err)
		}
	}
	return res, nil
}

func apply(doc *ir.Document, c Change) error {
	parent, ok := doc.DocAt(c.Path.Parent())
	if !ok {
		return fmt.Errorf("no container at %q", c.Path.Parent())
	}
	last := c.Path.Last()
	if last.IsField() {
		key := *last.Field
		_, err := parent.At(key)
		exists := err == nil
		if errors.Is(err, ir.ErrBadAccess) {
			return err
		}
		switch c.Op {
		case Insert:
			if exists {
				return fmt.Errorf("key %q exists", key)
			}
			return parent.Put(key, c.To)
		case Delete:
			if !exists {
				return fmt.Errorf("key %q missing", key)
			}
			_, err := parent.Remove(key)
			return err
		default:
			if !exists {
				return fmt.Errorf("key %q missing", key)
			}
			return parent.Put(key, c.To)
		}
	}
	i := *last.Index
	switch c.Op {
	case Insert:
		return parent.InsertAt(i, c.To)
	case Delete:
		return parent.RemoveAt(i)
	default:
		p, err := parent.Index(i)
		if err != nil {
			return err
		}
		*p = c.To.Clone()
		return nil
	}
}
