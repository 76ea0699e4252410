package ir

import (
	"cmp"
	"iter"
	"slices"
)

// Document is a JSON object or array.
//
// Object entries are kept sorted by key and keys are unique. Array
// elements are contiguous from index 0.
//
// The zero Document is a valid empty object. A Document is not safe
// for concurrent mutation.
type Document struct {
	kind    Kind
	invalid bool
	fields  []string
	values  []Value
}

// KeyVal is an object entry.
type KeyVal struct {
	Key string
	Val Value
}

// NewObject returns an empty object.
func NewObject() *Document {
	return &Document{kind: ObjectKind}
}

// NewArray returns an empty array.
func NewArray() *Document {
	return &Document{kind: ArrayKind}
}

// Invalid returns an empty object marked invalid, the result of a
// failed parse.
func Invalid() *Document {
	return &Document{kind: ObjectKind, invalid: true}
}

// FromKeyVals returns an object holding kvs. When a key occurs more
// than once the last entry wins. The values are not copied. Keys must
// be in escaped form; unlike Put, they are not checked.
func FromKeyVals(kvs []KeyVal) *Document {
	kvs = slices.Clone(kvs)
	slices.SortStableFunc(kvs, func(a, b KeyVal) int {
		return cmp.Compare(a.Key, b.Key)
	})
	d := &Document{
		kind:   ObjectKind,
		fields: make([]string, 0, len(kvs)),
		values: make([]Value, 0, len(kvs)),
	}
	for i, kv := range kvs {
		if i+1 < len(kvs) && kvs[i+1].Key == kv.Key {
			continue
		}
		d.fields = append(d.fields, kv.Key)
		d.values = append(d.values, kv.Val)
	}
	return d
}

// FromMap returns an object holding the entries of m. The values are
// not copied.
func FromMap(m map[string]Value) *Document {
	d := &Document{
		kind:   ObjectKind,
		fields: make([]string, 0, len(m)),
	}
	for k := range m {
		d.fields = append(d.fields, k)
	}
	slices.Sort(d.fields)
	d.values = make([]Value, len(d.fields))
	for i, k := range d.fields {
		d.values[i] = m[k]
	}
	return d
}

// FromSlice returns an array holding vs. The slice is retained.
func FromSlice(vs []Value) *Document {
	return &Document{kind: ArrayKind, values: vs}
}

// Valid reports whether d is usable, that is it did not come from a
// failed parse.
func (d *Document) Valid() bool {
	return d != nil && !d.invalid
}

func (d *Document) Kind() Kind {
	return d.kind
}

func (d *Document) IsObject() bool {
	return d.kind == ObjectKind
}

func (d *Document) IsArray() bool {
	return d.kind == ArrayKind
}

// Len returns the number of entries or elements in d.
func (d *Document) Len() int {
	return len(d.values)
}

// Keys returns the keys of an object in sorted order, and nil for an array.
func (d *Document) Keys() []string {
	if d.kind != ObjectKind {
		return nil
	}
	return slices.Clone(d.fields)
}

// All iterates over the entries of an object in key order. It yields
// nothing for an array.
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d.kind != ObjectKind {
			return
		}
		for i, f := range d.fields {
			if !yield(f, d.values[i]) {
				return
			}
		}
	}
}

// Elems iterates over the elements of an array. It yields nothing for
// an object.
func (d *Document) Elems() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if d.kind != ArrayKind {
			return
		}
		for i, v := range d.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns the values of d in order: key order for objects.
// The Values are shallow copies.
func (d *Document) Values() []Value {
	return slices.Clone(d.values)
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	res := &Document{
		kind:    d.kind,
		invalid: d.invalid,
		fields:  slices.Clone(d.fields),
	}
	if d.values != nil {
		res.values = make([]Value, len(d.values))
		for i := range d.values {
			res.values[i] = d.values[i].Clone()
		}
	}
	return res
}

// Equal reports whether d and o have the same kind and structurally
// equal contents. Validity is not compared.
func (d *Document) Equal(o *Document) bool {
	return CompareDocs(d, o) == 0
}

func (d *Document) find(key string) (int, bool) {
	return slices.BinarySearch(d.fields, key)
}

// entry returns the slot for key, inserting a null entry if absent.
func (d *Document) entry(key string) *Value {
	i, ok := d.find(key)
	if !ok {
		d.fields = slices.Insert(d.fields, i, key)
		d.values = slices.Insert(d.values, i, Null())
	}
	return &d.values[i]
}
