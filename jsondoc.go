package jsondoc

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// Parse parses text as a JSON object or array. It never fails: on a
// syntax error the result is an empty object whose Valid method
// reports false. Use parse.Parse to learn where the text went wrong.
func Parse(text string, opts ...parse.ParseOption) *ir.Document {
	doc, err := parse.Parse([]byte(text), opts...)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", err)
		}
		return ir.Invalid()
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes:\n%s\n", len(text), doc)
	}
	return doc
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(text string, opts ...parse.ParseOption) *ir.Document {
	doc, err := parse.Parse([]byte(text), opts...)
	if err != nil {
		panic(err)
	}
	return doc
}

// String returns the indented text of doc.
func String(doc *ir.Document, opts ...encode.EncodeOption) string {
	return encode.MustString(doc, opts...)
}
