package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/jsondoc/ir"
)

// MustString returns the encoding of doc without the trailing newline.
// It panics if doc cannot be encoded.
func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustValueString is MustString for a single value.
func MustValueString(v ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeValue(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
