package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quoted scans the double quoted string at the start of d. It returns the
// string content between the quotes and the number of bytes consumed,
// including both quotes.
//
// Escape sequences are checked but kept in their source form: the content
// of "a\nb" is the 4 bytes `a\nb`. Use [Unescape] for the decoded text.
func Quoted(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnexpected
	}
	n, err := bsEscQuoted(d)
	if err != nil {
		return "", n, err
	}
	return string(d[1 : n-1]), n, nil
}

func bsEscQuoted(d []byte) (int, error) {
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		if r == utf8.RuneError && sz <= 1 {
			return start, ErrBadUTF8
		}
		start += sz
		if escaped {
			escaped = false
			switch r {
			case '"', '\\', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if start+4 > n {
					return n, ErrBadUnicode
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
				start += 4
			default:
				return start, ErrBadEscape
			}
			continue
		}
		switch r {
		case '"':
			return start, nil
		case '\\':
			escaped = true
		default:
			if r < 0x20 {
				return start, ErrUnicodeControl
			}
		}
	}
	return n, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// Unescape decodes the escape sequences of string content as returned by
// [Quoted]. Surrogate pairs written as two \u escapes are combined.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') == -1 {
		return s, nil
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", ErrUnterminated
		}
		i += 2
		switch s[i-1] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, err := hexRune(s[i:])
			if err != nil {
				return "", err
			}
			i += 4
			if utf16.IsSurrogate(r) && i+6 <= len(s) && s[i] == '\\' && s[i+1] == 'u' {
				lo, err := hexRune(s[i+2:])
				if dr := utf16.DecodeRune(r, lo); err == nil && dr != utf8.RuneError {
					r = dr
					i += 6
				}
			}
			b.WriteRune(r)
		default:
			return "", ErrBadEscape
		}
	}
	return b.String(), nil
}

func hexRune(s string) (rune, error) {
	if len(s) < 4 {
		return 0, ErrBadUnicode
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, []byte(s[:4])); err != nil {
		return 0, ErrBadUnicode
	}
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

// Escape returns s in the escaped form accepted between the quotes of a
// JSON string. Invalid UTF-8 is replaced by U+FFFD.
func Escape(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			i++
			switch c {
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			case '\b':
				b.WriteString(`\b`)
			case '\f':
				b.WriteString(`\f`)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if c < 0x20 {
					b.WriteString(`\u00`)
					b.WriteByte(hexDigits[c>>4])
					b.WriteByte(hexDigits[c&0xf])
					continue
				}
				b.WriteByte(c)
			}
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz == 1 {
			b.WriteString(`�`)
		} else {
			b.WriteString(s[i : i+sz])
		}
		i += sz
	}
	return b.String()
}

// Quote returns s escaped and surrounded by double quotes.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

const hexDigits = "0123456789abcdef"
