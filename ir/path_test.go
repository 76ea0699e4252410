package ir_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"
	"github.com/signadot/jsondoc/parse"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type pathTest struct {
	Path string
	Doc  string
	Res  string
	Miss bool
}

var pathTests = []pathTest{
	{
		Path: "",
		Doc:  "[1,2,3]",
		Res:  "[\n\t1,\n\t2,\n\t3\n]",
	},
	{
		Path: "f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "2",
	},
	{
		Path: "f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `"three"`,
	},
	{
		Path: `f\[3\][2]`,
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: `a\.b.c`,
		Doc:  `{"a.b": {"c": false}, "a": {"b": {"c": true}}}`,
		Res:  "false",
	},
	{
		Path: "a.b.c",
		Doc:  `{"a.b": {"c": false}, "a": {"b": {"c": true}}}`,
		Res:  "true",
	},
	{
		Path: "x[0][1]",
		Doc:  `{"x": [[1.5, 2.25]]}`,
		Res:  "2.25",
	},
	{
		Path: "x",
		Doc:  `{"x": {"y": []}}`,
		Res:  "{\n\t\"y\": []\n}",
	},
	{
		Path: "n",
		Doc:  `{"n": null}`,
		Res:  "null",
	},
	{
		Path: "missing",
		Doc:  `{"f": 1}`,
		Miss: true,
	},
	{
		Path: "f.g",
		Doc:  `{"f": 1}`,
		Miss: true,
	},
	{
		Path: "[3]",
		Doc:  "[1,2,3]",
		Miss: true,
	},
	{
		Path: "f",
		Doc:  "[1,2,3]",
		Miss: true,
	},
	{
		Path: "[0]",
		Doc:  `{"0": 1}`,
		Miss: true,
	},
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		doc, err := parse.Parse([]byte(pathTest.Doc))
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, ok, err := doc.Get(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if ok == pathTest.Miss {
			t.Errorf("Get(%q) on %s: found %t", pathTest.Path, pathTest.Doc, ok)
			continue
		}
		if !ok {
			continue
		}
		out := strings.TrimSpace(encode.MustValueString(res))
		if out != pathTest.Res {
			t.Errorf("got %q want %q", out, pathTest.Res)
		}
	}
}

// gjsonPath writes kp in gjson's path syntax.
func gjsonPath(kp *kpath.KPath) string {
	parts := []string{}
	for x := kp; x != nil; x = x.Next {
		if x.Index != nil {
			parts = append(parts, strconv.Itoa(*x.Index))
			continue
		}
		buf := &strings.Builder{}
		for _, r := range *x.Field {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				buf.WriteByte('\\')
			}
			buf.WriteRune(r)
		}
		parts = append(parts, buf.String())
	}
	return strings.Join(parts, ".")
}

func TestPathAgreesWithGJSON(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.Path == "" {
			continue
		}
		kp := kpath.MustParse(pathTest.Path)
		doc, err := parse.Parse([]byte(pathTest.Doc))
		if err != nil {
			t.Fatal(err)
		}
		res, ok := doc.GetKPath(kp)
		gres := gjson.Get(pathTest.Doc, gjsonPath(kp))
		if ok != gres.Exists() {
			// gjson reads an index on an object as a key.
			if !ok && kp.Last().IsIndex() {
				continue
			}
			t.Errorf("%q: found %t, gjson %t", pathTest.Path, ok, gres.Exists())
			continue
		}
		if !ok || res.Type == ir.DocType {
			continue
		}
		if got := encode.MustValueString(res, encode.EncodeWire(true)); strings.TrimSpace(got) != gres.Raw {
			t.Errorf("%q: got %s, gjson %s", pathTest.Path, got, gres.Raw)
		}
	}
}

func TestPathSetThenGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.Miss || pathTest.Path == "" {
			continue
		}
		doc, err := parse.Parse([]byte(pathTest.Doc))
		if err != nil {
			t.Fatal(err)
		}
		v := ir.FromString("set")
		if err := doc.Set(pathTest.Path, v); err != nil {
			t.Errorf("Set(%q): %v", pathTest.Path, err)
			continue
		}
		got, ok, err := doc.Get(pathTest.Path)
		if err != nil || !ok || !got.Equal(v) {
			t.Errorf("Get(%q) after Set = %v, %t, %v", pathTest.Path, got, ok, err)
		}
		again, err := parse.Parse([]byte(encode.MustString(doc)))
		if err != nil || !again.Equal(doc) {
			t.Errorf("Set(%q) result does not round trip: %v", pathTest.Path, err)
		}
	}
}

func TestSetAgreesWithSJSON(t *testing.T) {
	tests := []struct {
		Doc, Path, Raw string
	}{
		{`{"a": 1}`, "a", `2`},
		{`{"a": 1}`, "b", `"x"`},
		{`{"a": {"b": [1, 2, 3]}}`, "a.b[1]", `{"k": true}`},
		{`{"a": {}}`, "a.c.d", `null`},
		{`[1, 2]`, "[0]", `[3]`},
		{`{"a.b": 1}`, `a\.b`, `false`},
	}
	for _, tc := range tests {
		doc, err := parse.Parse([]byte(tc.Doc))
		if err != nil {
			t.Fatal(err)
		}
		v, err := parse.ParseValue([]byte(tc.Raw))
		if err != nil {
			t.Fatal(err)
		}
		if err := doc.Set(tc.Path, v); err != nil {
			t.Errorf("Set(%q): %v", tc.Path, err)
			continue
		}
		out, err := sjson.SetRaw(tc.Doc, gjsonPath(kpath.MustParse(tc.Path)), tc.Raw)
		if err != nil {
			t.Fatal(err)
		}
		want, err := parse.Parse([]byte(out))
		if err != nil {
			t.Fatalf("sjson output %s: %v", out, err)
		}
		if !doc.Equal(want) {
			t.Errorf("Set(%q, %s) on %s gave %s, sjson %s", tc.Path, tc.Raw, tc.Doc, encode.MustString(doc), out)
		}
	}
}

func TestDeleteAgreesWithSJSON(t *testing.T) {
	tests := []struct {
		Doc, Path string
	}{
		{`{"a": 1, "b": 2}`, "a"},
		{`{"a": [1, 2, 3]}`, "a[1]"},
		{`{"a": {"b": {"c": 1}}}`, "a.b.c"},
		{`{"a": {"b": {"c": 1}}}`, "a.x"},
	}
	for _, tc := range tests {
		doc, err := parse.Parse([]byte(tc.Doc))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := doc.Delete(tc.Path); err != nil {
			t.Errorf("Delete(%q): %v", tc.Path, err)
			continue
		}
		out, err := sjson.Delete(tc.Doc, gjsonPath(kpath.MustParse(tc.Path)))
		if err != nil {
			t.Fatal(err)
		}
		want, err := parse.Parse([]byte(out))
		if err != nil {
			t.Fatalf("sjson output %s: %v", out, err)
		}
		if !doc.Equal(want) {
			t.Errorf("Delete(%q) on %s gave %s, sjson %s", tc.Path, tc.Doc, encode.MustString(doc), out)
		}
	}
}
