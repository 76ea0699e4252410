package ir

import (
	"fmt"
	"slices"

	"github.com/signadot/jsondoc/token"
)

// At returns the value of key in an object. It fails with ErrBadAccess
// on an array and ErrNotFound when the key is absent.
func (d *Document) At(key string) (Value, error) {
	if d.kind != ObjectKind {
		return Value{}, fmt.Errorf("%w: key %q in an array", ErrBadAccess, key)
	}
	i, ok := d.find(key)
	if !ok {
		return Value{}, fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	return d.values[i], nil
}

// AtIndex returns element i of an array. It fails with ErrBadAccess on
// an object and ErrOutOfRange when i is not below Len.
func (d *Document) AtIndex(i int) (Value, error) {
	p, err := d.Index(i)
	if err != nil {
		return Value{}, err
	}
	return *p, nil
}

// Entry returns a pointer to the value of key in an object, inserting a
// null value if the key is absent. The pointer is invalidated by the
// next change to the set of keys of d.
//
// key is in escaped form, like the keys the parser produces. A key that
// is not valid escaped JSON string content fails with ErrBadPath.
func (d *Document) Entry(key string) (*Value, error) {
	if d.kind != ObjectKind {
		return nil, fmt.Errorf("%w: key %q in an array", ErrBadAccess, key)
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}
	return d.entry(key), nil
}

// checkKey reports whether key quoted reads back as exactly one string.
func checkKey(key string) error {
	q := `"` + key + `"`
	_, n, err := token.Quoted([]byte(q))
	if err == nil && n != len(q) {
		err = token.ErrUnexpected
	}
	if err != nil {
		return fmt.Errorf("%w: key %q is not escaped json text: %w", ErrBadPath, key, err)
	}
	return nil
}

// Index returns a pointer to element i of an array. The pointer is
// invalidated by the next change to the length of d.
func (d *Document) Index(i int) (*Value, error) {
	if d.kind != ArrayKind {
		return nil, fmt.Errorf("%w: index %d in an object", ErrBadAccess, i)
	}
	if i < 0 || i >= len(d.values) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(d.values))
	}
	return &d.values[i], nil
}

// Put stores a copy of v under key in an object.
func (d *Document) Put(key string, v Value) error {
	p, err := d.Entry(key)
	if err != nil {
		return err
	}
	*p = v.Clone()
	return nil
}

// Remove deletes key from an object, reporting whether it was present.
func (d *Document) Remove(key string) (bool, error) {
	if d.kind != ObjectKind {
		return false, fmt.Errorf("%w: key %q in an array", ErrBadAccess, key)
	}
	i, ok := d.find(key)
	if !ok {
		return false, nil
	}
	d.fields = slices.Delete(d.fields, i, i+1)
	d.values = slices.Delete(d.values, i, i+1)
	return true, nil
}

// RemoveAt deletes element i of an array, shifting later elements down.
func (d *Document) RemoveAt(i int) error {
	if _, err := d.Index(i); err != nil {
		return err
	}
	d.values = slices.Delete(d.values, i, i+1)
	return nil
}

// PushBack appends a copy of v to an array.
func (d *Document) PushBack(v Value) error {
	if d.kind != ArrayKind {
		return fmt.Errorf("%w: PushBack on an object", ErrBadAccess)
	}
	d.values = append(d.values, v.Clone())
	return nil
}

// PopBack removes and returns the last element of an array.
func (d *Document) PopBack() (Value, error) {
	if d.kind != ArrayKind {
		return Value{}, fmt.Errorf("%w: PopBack on an object", ErrBadAccess)
	}
	n := len(d.values)
	if n == 0 {
		return Value{}, fmt.Errorf("%w: PopBack on an empty array", ErrOutOfRange)
	}
	v := d.values[n-1]
	d.values[n-1] = Value{}
	d.values = d.values[:n-1]
	return v, nil
}

// InsertAt inserts a copy of v before element i of an array, shifting
// later elements up. i may equal Len to append.
func (d *Document) InsertAt(i int, v Value) error {
	if d.kind != ArrayKind {
		return fmt.Errorf("%w: insert on an object", ErrBadAccess)
	}
	if i < 0 || i > len(d.values) {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(d.values))
	}
	d.values = slices.Insert(d.values, i, v.Clone())
	return nil
}
