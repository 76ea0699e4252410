package ir

import (
	"fmt"

	"github.com/signadot/jsondoc/ir/kpath"
)

// Get looks up path in d. A path that does not lead to a value, such as
// a key in an array or an index past the end, is reported by ok being
// false with a nil error. Only a malformed path is an error.
//
// The empty path addresses d itself. The returned Value is a copy.
func (d *Document) Get(path string) (v Value, ok bool, err error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return Value{}, false, err
	}
	v, ok = d.GetKPath(kp)
	return v, ok, nil
}

// GetKPath is Get for a compiled path.
func (d *Document) GetKPath(kp *kpath.KPath) (Value, bool) {
	p := d.lookup(kp)
	if p == nil {
		return Value{}, false
	}
	return p.Clone(), true
}

// DocAt returns the document at kp itself rather than a copy, so
// changes made through it change d. It reports false when kp does not
// lead to a document.
func (d *Document) DocAt(kp *kpath.KPath) (*Document, bool) {
	p := d.lookup(kp)
	if p == nil || p.Type != DocType || p.Doc == nil {
		return nil, false
	}
	return p.Doc, true
}

func (d *Document) lookup(kp *kpath.KPath) *Value {
	cur := &Value{Type: DocType, Doc: d}
	for x := kp; x != nil; x = x.Next {
		if cur.Type != DocType || cur.Doc == nil {
			return nil
		}
		doc := cur.Doc
		switch {
		case x.Field != nil:
			if doc.kind != ObjectKind {
				return nil
			}
			i, ok := doc.find(*x.Field)
			if !ok {
				return nil
			}
			cur = &doc.values[i]
		case x.Index != nil:
			if doc.kind != ArrayKind || *x.Index >= len(doc.values) {
				return nil
			}
			cur = &doc.values[*x.Index]
		default:
			return nil
		}
	}
	return cur
}

// Set stores a copy of v at path, creating the containers leading to it.
// A missing intermediate container is created with the kind the next
// path segment asks for, and an array is padded with nulls up to the
// index being set. A scalar in the way is replaced.
//
// Set fails with ErrBadPath for a malformed or empty path or an index
// above MaxIndex, and with ErrBadAccess when an existing container has
// the wrong kind for the segment addressing it. Nothing is changed when
// Set fails.
func (d *Document) Set(path string, v Value) error {
	kp, err := kpath.Parse(path)
	if err != nil {
		return err
	}
	return d.SetKPath(kp, v)
}

// SetKPath is Set for a compiled path.
func (d *Document) SetKPath(kp *kpath.KPath, v Value) error {
	if kp == nil {
		return fmt.Errorf("%w: cannot set the empty path", ErrBadPath)
	}
	if err := d.checkSet(kp); err != nil {
		return err
	}
	d.set(kp, v.Clone())
	return nil
}

// SetAny converts x with ValueOf and stores it at path.
func (d *Document) SetAny(path string, x any) error {
	v, err := ValueOf(x)
	if err != nil {
		return err
	}
	return d.Set(path, v)
}

// checkSet walks the existing part of the path, reporting the error set
// would run into.
func (d *Document) checkSet(kp *kpath.KPath) error {
	for x := kp; x != nil; x = x.Next {
		if x.Index != nil && *x.Index > MaxIndex {
			return fmt.Errorf("%w: index %d exceeds %d", ErrBadPath, *x.Index, MaxIndex)
		}
		if x.Field != nil {
			if err := checkKey(*x.Field); err != nil {
				return err
			}
		}
	}
	doc := d
	for x := kp; x != nil && doc != nil; x = x.Next {
		var next *Value
		switch {
		case x.Field != nil:
			if doc.kind != ObjectKind {
				return fmt.Errorf("%w: cannot set key %q in an array", ErrBadAccess, *x.Field)
			}
			if i, ok := doc.find(*x.Field); ok {
				next = &doc.values[i]
			}
		case x.Index != nil:
			if doc.kind != ArrayKind {
				return fmt.Errorf("%w: cannot set index %d in an object", ErrBadAccess, *x.Index)
			}
			if *x.Index < len(doc.values) {
				next = &doc.values[*x.Index]
			}
		}
		doc = nil
		if next != nil && next.Type == DocType {
			doc = next.Doc
		}
	}
	return nil
}

func (d *Document) set(kp *kpath.KPath, v Value) {
	slot := d.slot(kp)
	if kp.Next == nil {
		*slot = v
		return
	}
	if slot.Type != DocType || slot.Doc == nil {
		*slot = FromDoc(containerFor(kp.Next))
	}
	slot.Doc.set(kp.Next, v)
}

// slot returns the storage for the segment kp, growing d as needed.
func (d *Document) slot(kp *kpath.KPath) *Value {
	if kp.Field != nil {
		return d.entry(*kp.Field)
	}
	i := *kp.Index
	if i >= len(d.values) {
		d.values = append(d.values, make([]Value, i+1-len(d.values))...)
	}
	return &d.values[i]
}

func containerFor(next *kpath.KPath) *Document {
	if next.IsIndex() {
		return NewArray()
	}
	return NewObject()
}

// Delete removes the value at path, reporting whether there was one.
// Deleting an array element shifts the later elements down. Only a
// malformed or empty path is an error.
func (d *Document) Delete(path string) (bool, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return false, err
	}
	if kp == nil {
		return false, fmt.Errorf("%w: cannot delete the empty path", ErrBadPath)
	}
	parent := d.lookup(kp.Parent())
	if parent == nil || parent.Type != DocType || parent.Doc == nil {
		return false, nil
	}
	doc := parent.Doc
	last := kp.Last()
	switch {
	case last.Field != nil:
		if doc.kind != ObjectKind {
			return false, nil
		}
		return doc.Remove(*last.Field)
	default:
		if doc.kind != ArrayKind || *last.Index >= len(doc.values) {
			return false, nil
		}
		return true, doc.RemoveAt(*last.Index)
	}
}
