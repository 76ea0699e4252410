package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

// Parse parses the JSON object or array making up d.
//
// On failure Parse returns an invalid, empty document and an *Error.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	p := newParser(d, opts)
	off := p.skipSpace(0)
	var (
		doc *ir.Document
		n   int
		err error
	)
	switch {
	case off < len(d) && d[off] == '{':
		doc, n, err = p.parseObject(off, 1)
	case off < len(d) && d[off] == '[':
		doc, n, err = p.parseArray(off, 1)
	default:
		err = p.errAt(off, ErrTopLevel)
	}
	if err == nil {
		err = p.end(off + n)
	}
	if err != nil {
		return ir.Invalid(), err
	}
	return doc, nil
}

// ParseValue parses a single JSON value of any type making up d.
func ParseValue(d []byte, opts ...ParseOption) (ir.Value, error) {
	p := newParser(d, opts)
	v, n, err := p.parseValue(0, 0)
	if err == nil {
		err = p.end(n)
	}
	if err != nil {
		return ir.Value{}, err
	}
	return v, nil
}

type parser struct {
	d    []byte
	pd   *token.PosDoc
	opts *parseOpts
}

func newParser(d []byte, opts []ParseOption) *parser {
	return &parser{d: d, pd: token.NewPosDoc(d), opts: newOpts(opts)}
}

func (p *parser) errAt(off int, err error) error {
	off = min(max(off, 0), len(p.d))
	return &Error{Offset: off, Pos: p.pd.Pos(off), Err: err}
}

func (p *parser) skipSpace(off int) int {
	for off < len(p.d) && token.IsSpace(p.d[off]) {
		off++
	}
	return off
}

func (p *parser) end(off int) error {
	off = p.skipSpace(off)
	if off != len(p.d) {
		return p.errAt(off, ErrTrailing)
	}
	return nil
}

func (p *parser) unterminated(off int, what string) error {
	return p.errAt(off, fmt.Errorf("%w %s", token.ErrUnterminated, what))
}

// parseObject parses the object whose '{' is at off. It returns the
// number of bytes consumed through the closing '}'.
func (p *parser) parseObject(off, depth int) (*ir.Document, int, error) {
	if depth > p.opts.maxDepth {
		return nil, 0, p.errAt(off, ErrDepth)
	}
	var kvs []ir.KeyVal
	i := p.skipSpace(off + 1)
	if i < len(p.d) && p.d[i] == '}' {
		return ir.FromKeyVals(nil), i + 1 - off, nil
	}
	for {
		i = p.skipSpace(i)
		if i == len(p.d) {
			return nil, 0, p.unterminated(i, "object")
		}
		switch p.d[i] {
		case '"':
		case '}':
			return nil, 0, p.errAt(i, ErrTrailingComma)
		default:
			return nil, 0, p.errAt(i, fmt.Errorf("%w %q, expected a key", token.ErrUnexpected, p.d[i]))
		}
		key, n, err := token.Quoted(p.d[i:])
		if err != nil {
			return nil, 0, p.errAt(i+n, err)
		}
		i = p.skipSpace(i + n)
		if i == len(p.d) {
			return nil, 0, p.unterminated(i, "object")
		}
		if p.d[i] != ':' {
			return nil, 0, p.errAt(i, fmt.Errorf("%w %q, expected ':'", token.ErrUnexpected, p.d[i]))
		}
		v, n, err := p.parseValue(i+1, depth)
		if err != nil {
			return nil, 0, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
		i = p.skipSpace(i + 1 + n)
		if i == len(p.d) {
			return nil, 0, p.unterminated(i, "object")
		}
		switch p.d[i] {
		case ',':
			i++
		case '}':
			return ir.FromKeyVals(kvs), i + 1 - off, nil
		default:
			return nil, 0, p.errAt(i, fmt.Errorf("%w %q, expected ',' or '}'", token.ErrUnexpected, p.d[i]))
		}
	}
}

// parseArray parses the array whose '[' is at off. It returns the number
// of bytes consumed through the closing ']'.
func (p *parser) parseArray(off, depth int) (*ir.Document, int, error) {
	if depth > p.opts.maxDepth {
		return nil, 0, p.errAt(off, ErrDepth)
	}
	var vs []ir.Value
	i := p.skipSpace(off + 1)
	if i < len(p.d) && p.d[i] == ']' {
		return ir.FromSlice(nil), i + 1 - off, nil
	}
	for {
		i = p.skipSpace(i)
		if i < len(p.d) && p.d[i] == ']' {
			return nil, 0, p.errAt(i, ErrTrailingComma)
		}
		v, n, err := p.parseValue(i, depth)
		if err != nil {
			return nil, 0, err
		}
		vs = append(vs, v)
		i = p.skipSpace(i + n)
		if i == len(p.d) {
			return nil, 0, p.unterminated(i, "array")
		}
		switch p.d[i] {
		case ',':
			i++
		case ']':
			return ir.FromSlice(vs), i + 1 - off, nil
		default:
			return nil, 0, p.errAt(i, fmt.Errorf("%w %q, expected ',' or ']'", token.ErrUnexpected, p.d[i]))
		}
	}
}

// parseValue parses the value following any whitespace at off and returns
// the bytes consumed from off. Containers are parsed at depth+1.
func (p *parser) parseValue(off, depth int) (ir.Value, int, error) {
	i := p.skipSpace(off)
	if i == len(p.d) {
		return ir.Value{}, 0, p.errAt(i, fmt.Errorf("%w end of input, expected a value", token.ErrUnexpected))
	}
	var (
		v   ir.Value
		n   int
		err error
	)
	switch c := p.d[i]; {
	case c == '{':
		var doc *ir.Document
		doc, n, err = p.parseObject(i, depth+1)
		v = ir.FromDoc(doc)
	case c == '[':
		var doc *ir.Document
		doc, n, err = p.parseArray(i, depth+1)
		v = ir.FromDoc(doc)
	case c == '"':
		var s string
		s, n, err = token.Quoted(p.d[i:])
		if err != nil {
			err = p.errAt(i+n, err)
		}
		v = ir.FromString(s)
	case c == '-' || (c >= '0' && c <= '9'):
		v, n, err = p.parseNumber(i)
	case c == 'n' || c == 't' || c == 'f':
		v, n, err = p.parseKeyword(i)
	default:
		err = p.errAt(i, fmt.Errorf("%w %q, expected a value", token.ErrUnexpected, c))
	}
	if err != nil {
		return ir.Value{}, 0, err
	}
	return v, i + n - off, nil
}

func (p *parser) parseKeyword(off int) (ir.Value, int, error) {
	kw, err := token.Keyword(p.d[off:])
	if err != nil {
		return ir.Value{}, 0, p.errAt(off, err)
	}
	switch kw {
	case "true":
		return ir.FromBool(true), len(kw), nil
	case "false":
		return ir.FromBool(false), len(kw), nil
	default:
		return ir.Null(), len(kw), nil
	}
}

// parseNumber converts the number at off. Integers must fit in an int64
// (-9223372036854775808 through 9223372036854775807) and floats must be
// finite float64s.
func (p *parser) parseNumber(off int) (ir.Value, int, error) {
	n, isFloat, err := token.Number(p.d[off:])
	if err != nil {
		return ir.Value{}, 0, p.errAt(off, err)
	}
	text := string(p.d[off : off+n])
	if !isFloat {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return ir.Value{}, 0, p.errAt(off, numErr(text, err))
		}
		return ir.FromInt(i), n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ir.Value{}, 0, p.errAt(off, numErr(text, err))
	}
	return ir.FromFloat(f), n, nil
}

func numErr(text string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %s", token.ErrNumberRange, text)
	}
	return fmt.Errorf("%w: %s", token.ErrNumber, text)
}
