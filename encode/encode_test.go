package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
	"github.com/valyala/fastjson"
)

type encodeTest struct {
	in   string
	out  string
	wire string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{in: `{}`, out: `{}`, wire: `{}`},
		{in: `[]`, out: `[]`, wire: `[]`},
		{
			in:   `[1, 2.5, "s", true, null]`,
			out:  "[\n\t1,\n\t2.5,\n\t\"s\",\n\ttrue,\n\tnull\n]",
			wire: `[1,2.5,"s",true,null]`,
		},
		{
			in:   `{"b": {"c": []}, "a": [{}]}`,
			out:  "{\n\t\"a\": [\n\t\t{}\n\t],\n\t\"b\": {\n\t\t\"c\": []\n\t}\n}",
			wire: `{"a":[{}],"b":{"c":[]}}`,
		},
		{
			in:   `{"esc": "a\"b\n\u00e9"}`,
			out:  "{\n\t\"esc\": \"a\\\"b\\n\\u00e9\"\n}",
			wire: `{"esc":"a\"b\n\u00e9"}`,
		},
		{
			in:   `[1e3, 100.0, -0.5, 1e21, 5e-324]`,
			wire: `[1000.0,100.0,-0.5,1e+21,5e-324]`,
		},
	}
	for _, et := range ets {
		t.Run(et.in, func(t *testing.T) {
			doc, err := parse.Parse([]byte(et.in))
			if err != nil {
				t.Fatal(err)
			}
			if et.out != "" {
				if got := MustString(doc); got != et.out {
					t.Errorf("got\n%s\nwant\n%s", got, et.out)
				}
			}
			if got := MustString(doc, EncodeWire(true)); got != et.wire {
				t.Errorf("wire got %s want %s", got, et.wire)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	doc, err := parse.Parse([]byte(`{"a": [1]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(doc, Indent("  "))
	want := "{\n  \"a\": [\n    1\n  ]\n}"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Errorf("Encode should end with a newline: %q", buf.String())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ins := []string{
		`{"a": {"b": [1, 2, {"c": null}]}, "d": "x\ty", "e": -9223372036854775808}`,
		`[[[]], {}, 0.1, 1.7976931348623157e308, "😀"]`,
		`{"": "", "k\"q": [true, false]}`,
	}
	for _, in := range ins {
		doc, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		for _, opts := range [][]EncodeOption{nil, {EncodeWire(true)}, {Indent("    ")}} {
			s := MustString(doc, opts...)
			if err := fastjson.Validate(s); err != nil {
				t.Errorf("fastjson rejects %q: %v", s, err)
			}
			back, err := parse.Parse([]byte(s))
			if err != nil {
				t.Fatalf("reparse %q: %v", s, err)
			}
			if !back.Equal(doc) {
				t.Errorf("round trip of %s gave %s", in, MustString(back))
			}
		}
	}
}

func TestEncodeAgreesWithFastJSON(t *testing.T) {
	doc, err := parse.Parse([]byte(`{"a": {"b": [1, 2.5, "x\ty", true]}}`))
	if err != nil {
		t.Fatal(err)
	}
	var p fastjson.Parser
	v, err := p.Parse(MustString(doc))
	if err != nil {
		t.Fatal(err)
	}
	if n := v.GetInt("a", "b", "0"); n != 1 {
		t.Errorf("a.b[0] = %d", n)
	}
	if f := v.GetFloat64("a", "b", "1"); f != 2.5 {
		t.Errorf("a.b[1] = %v", f)
	}
	if s := string(v.GetStringBytes("a", "b", "2")); s != "x\ty" {
		t.Errorf("a.b[2] = %q", s)
	}
	if !v.GetBool("a", "b", "3") {
		t.Errorf("a.b[3] is not true")
	}
}

func TestEncodeErrors(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		doc := ir.FromSlice([]ir.Value{ir.FromFloat(f)})
		if err := Encode(doc, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
			t.Errorf("Encode(%v) = %v", f, err)
		}
	}
	for _, s := range []string{`a"b`, "a\nb", `trailing\`, `\q`} {
		doc := ir.FromSlice([]ir.Value{ir.FromString(s)})
		if err := Encode(doc, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
			t.Errorf("Encode(%q) = %v", s, err)
		}
		key := ir.FromKeyVals([]ir.KeyVal{{Key: s, Val: ir.Null()}})
		if err := Encode(key, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
			t.Errorf("Encode(key %q) = %v", s, err)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	doc, err := parse.Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.Int64Type, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.DocType, Attr: FieldColor}:   func(s string, _ ...any) string { return "(" + s + ")" },
		},
	}
	got := MustString(doc, EncodeColors(c), EncodeWire(true))
	if want := `{("a"):<1>}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if NewColors().Get(ir.StringType, ValueColor) == nil {
		t.Errorf("NewColors has no string color")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0:       "0.0",
		1:       "1.0",
		-2:      "-2.0",
		0.1:     "0.1",
		1e6:     "1e+06",
		123456:  "123456.0",
		1.5e-7:  "1.5e-07",
		1 << 53: "9.007199254740992e+15",
	}
	for f, want := range tests {
		got, err := FormatFloat(f)
		if err != nil || got != want {
			t.Errorf("FormatFloat(%v) = %q, %v, want %q", f, got, err, want)
		}
	}
}
