package token

// Number scans the JSON number at the start of d. It returns the number of
// bytes the number occupies and whether it has a fraction or an exponent.
//
// d must start with '-' or a digit. A leading zero may only be followed by
// '.', 'e', 'E' or the end of the number.
func Number(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + digits, false, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return i + f, false, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return i + e, false, err
	}
	return i + e, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		// e must be followed by an optional sign and 1 or more digits
		return i, ErrNumber
	}
	return n + i, nil
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 7159
		return 1, ErrNumber
	}
	return n + 1, nil
}
