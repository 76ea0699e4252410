package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

type EncState struct {
	depth  int
	indent string
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes doc to w followed by a newline.
//
// Strings and keys are written between quotes as they are held, so they
// must be in escaped form; a string that is not valid escaped JSON text
// is an ErrEncoding, as are infinite and NaN floats.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	return EncodeValue(ir.FromDoc(doc), w, opts...)
}

// EncodeValue is Encode for any value.
func EncodeValue(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if err := encode(v, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeSep(w io.Writer, es *EncState, sep string) error {
	return writeString(w, applyColor(es, ir.DocType, SepColor, sep))
}

func encode(v ir.Value, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.DocType:
		if v.Doc == nil || v.Doc.IsObject() {
			return encodeObject(v.Doc, w, es)
		}
		return encodeArray(v.Doc, w, es)
	case ir.StringType:
		return encodeString(v.String, w, es)
	case ir.Int64Type:
		return writeString(w, applyColor(es, v.Type, ValueColor, strconv.FormatInt(v.Int64, 10)))
	case ir.Float64Type:
		return encodeFloat(v.Float64, w, es)
	case ir.BoolType:
		return writeString(w, applyColor(es, v.Type, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.NullType:
		return writeString(w, applyColor(es, v.Type, ValueColor, "null"))
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type)
	}
}

func encodeObject(doc *ir.Document, w io.Writer, es *EncState) error {
	if doc == nil || doc.Len() == 0 {
		return writeSep(w, es, "{}")
	}
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	es.depth++
	i := 0
	for k, v := range doc.All() {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		i++
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, k, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "}")
}

func encodeArray(doc *ir.Document, w io.Writer, es *EncState) error {
	if doc.Len() == 0 {
		return writeSep(w, es, "[]")
	}
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range doc.Elems() {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "]")
}

func writeField(w io.Writer, f string, es *EncState) error {
	q, err := quoteString(f)
	if err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ir.DocType, FieldColor, q)); err != nil {
		return err
	}
	sep := ": "
	if es.wire {
		sep = ":"
	}
	return writeSep(w, es, sep)
}

func encodeString(s string, w io.Writer, es *EncState) error {
	q, err := quoteString(s)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.StringType, ValueColor, q))
}

// quoteString surrounds s with quotes, checking that the result scans as
// exactly one JSON string.
func quoteString(s string) (string, error) {
	q := `"` + s + `"`
	_, n, err := token.Quoted([]byte(q))
	if err != nil || n != len(q) {
		if err == nil {
			err = token.ErrUnexpected
		}
		return "", fmt.Errorf("%w: string %q is not escaped json text: %w", ErrEncoding, s, err)
	}
	return q, nil
}

// FormatFloat returns the shortest text for f that parses back to f.
// The text always has a fraction or an exponent so it is read back as
// a float.
func FormatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: %v has no json representation", ErrEncoding, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func encodeFloat(f float64, w io.Writer, es *EncState) error {
	s, err := FormatFloat(f)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.Float64Type, ValueColor, s))
}
