package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPath is returned for path strings that do not follow the path syntax.
var ErrBadPath = errors.New("bad path")

// KPath is one segment of a compiled path. Exactly one of Field and Index
// is set. Next is nil on the last segment.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

// Field returns a single key segment.
func Field(f string) *KPath {
	return &KPath{Field: &f}
}

// Index returns a single index segment.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// IsField reports whether p addresses an object key.
func (p *KPath) IsField() bool {
	return p != nil && p.Field != nil
}

// IsIndex reports whether p addresses an array element.
func (p *KPath) IsIndex() bool {
	return p != nil && p.Index != nil
}

// String returns the path in the syntax accepted by Parse.
// Parse(p.String()) yields a path equal to p.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(EscapeField(*x.Field))
		case x.Index != nil:
			buf.WriteByte('[')
			buf.WriteString(strconv.Itoa(*x.Index))
			buf.WriteByte(']')
		}
	}
	return buf.String()
}

// SegmentString returns the string form of p alone, ignoring p.Next.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	switch {
	case p.Field != nil:
		return EscapeField(*p.Field)
	case p.Index != nil:
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

// EscapeField escapes the path separators occurring in f.
func EscapeField(f string) string {
	if !strings.ContainsAny(f, `.[]\`) {
		return f
	}
	buf := make([]byte, 0, len(f)+4)
	for i := 0; i < len(f); i++ {
		switch c := f[i]; c {
		case '.', '[', ']', '\\':
			buf = append(buf, '\\', c)
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Len returns the number of segments in p.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the final segment of p.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of p without its last segment. The parent of a
// single segment path is nil.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Parent()
	return res
}

// Append returns a copy of p followed by a copy of q.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q.Clone()
	}
	res := p.copySegment()
	res.Next = p.Next.Append(q)
	return res
}

// Clone returns a deep copy of p.
func (p *KPath) Clone() *KPath {
	if p == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Clone()
	return res
}

func (p *KPath) copySegment() *KPath {
	switch {
	case p.Field != nil:
		return Field(*p.Field)
	case p.Index != nil:
		return Index(*p.Index)
	}
	return &KPath{}
}

// Equal reports whether p and q have the same segments.
func (p *KPath) Equal(q *KPath) bool {
	for p != nil && q != nil {
		switch {
		case p.Field != nil:
			if q.Field == nil || *p.Field != *q.Field {
				return false
			}
		case p.Index != nil:
			if q.Index == nil || *p.Index != *q.Index {
				return false
			}
		}
		p, q = p.Next, q.Next
	}
	return p == nil && q == nil
}

// Split returns the first segment of the path and the remaining path string.
//
//	Split("a.b.c") → ("a", "b.c")
//	Split("[0].b") → ("[0]", "b")
//	Split("a") → ("a", "")
func Split(path string) (string, string, error) {
	kp, err := Parse(path)
	if err != nil {
		return "", "", err
	}
	if kp == nil {
		return "", "", nil
	}
	return kp.SegmentString(), kp.Next.String(), nil
}

// Parse compiles path into a chain of segments. The empty path compiles
// to nil. Any syntax error wraps ErrBadPath.
func Parse(path string) (*KPath, error) {
	if path == "" {
		return nil, nil
	}
	var (
		head, tail *KPath
		i          int
	)
	add := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	for i < len(path) {
		c := path[i]
		switch {
		case c == '[':
			j := strings.IndexByte(path[i+1:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated '[' at %d in %q", ErrBadPath, i, path)
			}
			idx, err := parseIndex(path[i+1 : i+1+j])
			if err != nil {
				return nil, fmt.Errorf("%w at %d in %q", err, i, path)
			}
			add(Index(idx))
			i += j + 2
		case c == ']':
			return nil, fmt.Errorf("%w: unexpected ']' at %d in %q", ErrBadPath, i, path)
		case c == '.':
			if head == nil {
				return nil, fmt.Errorf("%w: empty key at %d in %q", ErrBadPath, i, path)
			}
			i++
			field, n, err := parseField(path[i:])
			if err != nil {
				return nil, fmt.Errorf("%w at %d in %q", err, i, path)
			}
			add(Field(field))
			i += n
		default:
			if head != nil {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d in %q", ErrBadPath, i, path)
			}
			field, n, err := parseField(path[i:])
			if err != nil {
				return nil, fmt.Errorf("%w at %d in %q", err, i, path)
			}
			add(Field(field))
			i += n
		}
	}
	return head, nil
}

// MustParse is like Parse but panics on error.
func MustParse(path string) *KPath {
	kp, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return kp
}

func parseField(d string) (string, int, error) {
	var buf []byte
	i := 0
scan:
	for i < len(d) {
		c := d[i]
		switch c {
		case '.', '[':
			break scan
		case ']':
			return "", 0, fmt.Errorf("%w: unexpected ']'", ErrBadPath)
		case '\\':
			if i+1 == len(d) {
				return "", 0, fmt.Errorf("%w: trailing '\\'", ErrBadPath)
			}
			switch n := d[i+1]; n {
			case '.', '[', ']', '\\':
				buf = append(buf, n)
			default:
				buf = append(buf, c, n)
			}
			i += 2
		default:
			buf = append(buf, c)
			i++
		}
	}
	if len(buf) == 0 {
		return "", 0, fmt.Errorf("%w: empty key", ErrBadPath)
	}
	return string(buf), i, nil
}

func parseIndex(d string) (int, error) {
	if d == "" {
		return 0, fmt.Errorf("%w: empty index", ErrBadPath)
	}
	for i := 0; i < len(d); i++ {
		if d[i] < '0' || d[i] > '9' {
			return 0, fmt.Errorf("%w: index %q is not a non-negative integer", ErrBadPath, d)
		}
	}
	idx, err := strconv.Atoi(d)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q out of range", ErrBadPath, d)
	}
	return idx, nil
}
