package token

var keywords = [...]string{"null", "true", "false"}

// Keyword returns the literal (null, true or false) at the start of d.
//
// A literal must not run on into a continuation character, so "nullx" and
// "true1" are errors while "null," and "true]" are fine.
func Keyword(d []byte) (string, error) {
	for _, kw := range keywords {
		if !isKeyWordPrefix(d, kw) {
			continue
		}
		if len(d) > len(kw) && isMidLiteral(d[len(kw)]) {
			return "", ErrLiteral
		}
		return kw, nil
	}
	return "", ErrLiteral
}

func isKeyWordPrefix(d []byte, pre string) bool {
	if len(d) < len(pre) {
		return false
	}
	for i := range len(pre) {
		if d[i] != pre[i] {
			return false
		}
	}
	return true
}

func isMidLiteral(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case asciiDigit(c), c == '_', c == '-', c == '+', c == '.':
		return true
	case c >= 0x80:
		return true
	}
	return false
}

// IsSpace reports whether c is JSON insignificant whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
