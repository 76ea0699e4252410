package parse

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
	"github.com/tidwall/gjson"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []string{
		`{}`,
		`[]`,
		` { } `,
		"\t[\n]\r\n",
		`[null, true, false]`,
		`[0, -0, 1, -1, 0.5, 0e10, 1E+2, -1.25e-3]`,
		`{"a": 1}`,
		`{"a": {"b": [1, 2, {"c": "d"}]}}`,
		`[[[]]]`,
		`[{}, {"": ""}]`,
		`{"esc": "a\"b\\c"}`,
		`{"u": "\u00e9\ud83d\ude00"}`,
		`{"ctl": "\b\f\n\r\t"}`,
		`{"utf8": "日本語"}`,
		`{"f[0]": [0, 1, 2, "three"]}`,
		`[9223372036854775807, -9223372036854775808]`,
		`[1.7976931348623157e308, 5e-324]`,
	}
	for _, in := range pts {
		t.Run(in, func(t *testing.T) {
			doc, err := Parse([]byte(in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", in, err)
			}
			if !doc.Valid() {
				t.Errorf("Parse(%q) returned an invalid document", in)
			}
			if !gjson.Valid(in) {
				t.Errorf("gjson rejects %q", in)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrTopLevel},
		{in: `   `, e: ErrTopLevel},
		{in: `1`, e: ErrTopLevel},
		{in: `"s"`, e: ErrTopLevel},
		{in: `{}garbage`, e: ErrTrailing},
		{in: `[]garbage`, e: ErrTrailing},
		{in: `{} {}`, e: ErrTrailing},
		{in: `[1,]`, e: ErrTrailingComma},
		{in: `{"a": 1,}`, e: ErrTrailingComma},
		{in: `[,]`, e: token.ErrUnexpected},
		{in: `[1 2]`, e: token.ErrUnexpected},
		{in: `{"a" 1}`, e: token.ErrUnexpected},
		{in: `{a: 1}`, e: token.ErrUnexpected},
		{in: `{"a": }`, e: token.ErrUnexpected},
		{in: `[01]`, e: token.ErrNumberLeadingZero},
		{in: `[-01]`, e: token.ErrNumberLeadingZero},
		{in: `[+1]`, e: token.ErrUnexpected},
		{in: `[1.]`, e: token.ErrNumber},
		{in: `[.5]`, e: token.ErrUnexpected},
		{in: `[1e]`, e: token.ErrNumber},
		{in: `[-]`, e: token.ErrNumber},
		{in: `[9223372036854775808]`, e: token.ErrNumberRange},
		{in: `[-9223372036854775809]`, e: token.ErrNumberRange},
		{in: `[1e400]`, e: token.ErrNumberRange},
		{in: `[nul]`, e: token.ErrLiteral},
		{in: `[nullx]`, e: token.ErrLiteral},
		{in: `[True]`, e: token.ErrUnexpected},
		{in: `["abc]`, e: token.ErrUnterminated},
		{in: `["a\qb"]`, e: token.ErrBadEscape},
		{in: `["a\/b"]`, e: token.ErrBadEscape},
		{in: `["\u12"]`, e: token.ErrBadUnicode},
		{in: "[\"a\nb\"]", e: token.ErrUnicodeControl},
		{in: "[\"\xff\"]", e: token.ErrBadUTF8},
		{in: `[1`, e: token.ErrUnterminated},
		{in: `{"a": 1`, e: token.ErrUnterminated},
		{in: `{`, e: token.ErrUnterminated},
		{in: `[[`, e: token.ErrUnexpected},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			doc, err := Parse([]byte(pt.in))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", pt.in)
			}
			if !errors.Is(err, pt.e) {
				t.Errorf("Parse(%q) = %v, want %v", pt.in, err, pt.e)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not match ErrParse", err)
			}
			if doc == nil || doc.Valid() || doc.Len() != 0 {
				t.Errorf("failed parse should give an empty invalid document")
			}
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": 01\n}"))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %T %v, want *Error", err, err)
	}
	if pe.Offset != 9 {
		t.Errorf("offset = %d, want 9", pe.Offset)
	}
	if line, col := pe.Pos.LineCol(); line != 1 || col != 7 {
		t.Errorf("line, col = %d, %d", line, col)
	}
}

func TestParseDepth(t *testing.T) {
	deep := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	if _, err := Parse([]byte(deep), MaxDepth(50)); err != nil {
		t.Errorf("depth 50 with MaxDepth(50): %v", err)
	}
	if _, err := Parse([]byte(deep), MaxDepth(49)); !errors.Is(err, ErrDepth) {
		t.Errorf("depth 50 with MaxDepth(49): %v", err)
	}
	obj := strings.Repeat(`{"a":`, 3) + "1" + strings.Repeat("}", 3)
	if _, err := Parse([]byte(obj), MaxDepth(2)); !errors.Is(err, ErrDepth) {
		t.Errorf("object depth 3 with MaxDepth(2): %v", err)
	}
}

func TestParseValues(t *testing.T) {
	in := `{
	"int": 42,
	"neg": -7,
	"big": 9223372036854775807,
	"float": 2.5,
	"exp": 1e3,
	"str": "a\nb",
	"t": true,
	"n": null,
	"arr": [1, [2, 3], {"k": "v"}],
	"dup": 1,
	"dup": 2
}`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want ir.Value
	}{
		{"int", ir.FromInt(42)},
		{"neg", ir.FromInt(-7)},
		{"big", ir.FromInt(9223372036854775807)},
		{"float", ir.FromFloat(2.5)},
		{"exp", ir.FromFloat(1000)},
		{"str", ir.FromString(`a\nb`)},
		{"t", ir.FromBool(true)},
		{"n", ir.Null()},
		{"arr[1][1]", ir.FromInt(3)},
		{"arr[2].k", ir.FromString("v")},
		{"dup", ir.FromInt(2)},
	}
	for _, tt := range tests {
		got, ok, err := doc.Get(tt.path)
		if err != nil || !ok {
			t.Errorf("Get(%q) = %v, %v", tt.path, ok, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Get(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
	if diff := doc.Keys(); len(diff) != 10 {
		t.Errorf("keys = %v", diff)
	}
}

// TestAgreesWithGJSON checks decoded values against an independent parser.
func TestAgreesWithGJSON(t *testing.T) {
	in := `{"name": "café \"x\"", "list": [10, -20, 30], "o": {"deep": {"v": 1.5}}, "yes": true}`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	name, _ := ir.GetAs[string](doc, "name")
	dec, err := ir.FromString(name).Decoded()
	if err != nil {
		t.Fatal(err)
	}
	if want := gjson.Get(in, "name").String(); dec != want {
		t.Errorf("name = %q, gjson %q", dec, want)
	}
	for i := range 3 {
		n, _ := ir.GetAs[int64](doc, "list["+strconv.Itoa(i)+"]")
		if want := gjson.Get(in, "list."+strconv.Itoa(i)).Int(); n != want {
			t.Errorf("list[%d] = %d, gjson %d", i, n, want)
		}
	}
	if f, _ := ir.GetAs[float64](doc, "o.deep.v"); f != gjson.Get(in, "o.deep.v").Float() {
		t.Errorf("o.deep.v = %v", f)
	}
	if b, _ := ir.GetAs[bool](doc, "yes"); b != gjson.Get(in, "yes").Bool() {
		t.Errorf("yes = %v", b)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Value
	}{
		{"1", ir.FromInt(1)},
		{" \"s\" ", ir.FromString("s")},
		{"null", ir.Null()},
		{"-2.5", ir.FromFloat(-2.5)},
		{"[1]", ir.FromDoc(ir.FromSlice([]ir.Value{ir.FromInt(1)}))},
	}
	for _, tt := range tests {
		got, err := ParseValue([]byte(tt.in))
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseValue(%q) = %+v", tt.in, got)
		}
	}
	if _, err := ParseValue([]byte("1 2")); !errors.Is(err, ErrTrailing) {
		t.Errorf("ParseValue(1 2): %v", err)
	}
}
