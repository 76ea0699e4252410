package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *KPath
	}{
		{name: "empty", input: "", want: nil},
		{name: "key", input: "a", want: Field("a")},
		{
			name:  "keys",
			input: "a.b.c",
			want:  &KPath{Field: ptr("a"), Next: &KPath{Field: ptr("b"), Next: Field("c")}},
		},
		{
			name:  "mixed",
			input: "a.b[2].c",
			want: &KPath{Field: ptr("a"), Next: &KPath{Field: ptr("b"),
				Next: &KPath{Index: ptr(2), Next: Field("c")}}},
		},
		{
			name:  "chained indices",
			input: "data[0][1]",
			want:  &KPath{Field: ptr("data"), Next: &KPath{Index: ptr(0), Next: Index(1)}},
		},
		{name: "leading index", input: "[5]", want: Index(5)},
		{
			name:  "leading index then key",
			input: "[0].name",
			want:  &KPath{Index: ptr(0), Next: Field("name")},
		},
		{name: "escaped brackets", input: `this_key_is_odd\[0\]`, want: Field("this_key_is_odd[0]")},
		{name: "escaped dot", input: `a\.b`, want: Field("a.b")},
		{name: "escaped backslash", input: `a\\b`, want: Field(`a\b`)},
		{name: "other escape kept", input: `a\qb`, want: Field(`a\qb`)},
		{name: "spaces", input: "a key.b", want: &KPath{Field: ptr("a key"), Next: Field("b")}},
		{name: "leading zero index", input: "[007]", want: Index(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"a[",
		"a[0",
		"a[x]",
		"a[-1]",
		"a[]",
		"a[1.5]",
		"a[99999999999999999999999]",
		"a]",
		"a..b",
		".a",
		"a.",
		"a[0]b",
		`a\`,
		"[0]]",
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrBadPath) {
				t.Errorf("Parse(%q) = %v, want ErrBadPath", in, err)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	paths := []*KPath{
		Field("a"),
		&KPath{Field: ptr("a.b"), Next: &KPath{Index: ptr(3), Next: Field("[x]")}},
		&KPath{Index: ptr(0), Next: Index(1)},
		Field(`back\slash`),
		Field(`tail\`),
	}
	for _, p := range paths {
		s := p.String()
		got, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if !got.Equal(p) {
			t.Errorf("Parse(%q) = %q, want %q", s, got, p)
		}
	}
}

func TestParentAppend(t *testing.T) {
	p := MustParse("a.b[2]")
	if got := p.Parent().String(); got != "a.b" {
		t.Errorf("Parent = %q", got)
	}
	if got := p.Last().SegmentString(); got != "[2]" {
		t.Errorf("Last = %q", got)
	}
	if got := p.Append(Field("c")).String(); got != "a.b[2].c" {
		t.Errorf("Append = %q", got)
	}
	if got := p.String(); got != "a.b[2]" {
		t.Errorf("Append modified receiver: %q", got)
	}
	if n := p.Len(); n != 3 {
		t.Errorf("Len = %d", n)
	}
	if Field("a").Parent() != nil {
		t.Errorf("single segment parent should be nil")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct{ in, first, rest string }{
		{"a.b.c", "a", "b.c"},
		{"[0].b", "[0]", "b"},
		{"a", "a", ""},
		{"", "", ""},
		{`a\.b.c`, `a\.b`, "c"},
	}
	for _, tt := range tests {
		first, rest, err := Split(tt.in)
		if err != nil {
			t.Fatalf("Split(%q): %v", tt.in, err)
		}
		if first != tt.first || rest != tt.rest {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.in, first, rest, tt.first, tt.rest)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
