package num

import (
	"fmt"
)

// BigIntFromString parses a decimal string with an optional leading '-'.
func BigIntFromString(s string) (out BigInt, err error) {
	return BigIntFromStringBase(s, 10)
}

// BigIntFromStringBase parses s in the given base, which must be in
// [2, 36). Digits above 9 are the letters a-z, in either case. An empty
// string, a lone '-', or any byte that is not a digit in base is rejected
// with an error wrapping ErrSyntax.
func BigIntFromStringBase(s string, base int) (out BigInt, err error) {
	if !validBase(base) {
		return out, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	if s == "" || s == "-" {
		return out, fmt.Errorf("%w: bigint string %q", ErrSyntax, s)
	}

	// The string is consumed from its least significant end: each digit is
	// scaled by the current place value (1, base, base*base, ...) and added
	// to the magnitude.
	var mag, term nat
	place := nat{1}
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == '-' && i == 0 {
			out.neg = true
			break
		}
		d := digitValue(c)
		if d >= base {
			return BigInt{}, fmt.Errorf("%w: bigint string %q, base %d", ErrSyntax, s, base)
		}
		if d != 0 {
			term = term.mulWord(place, uint32(d))
			mag = mag.add(mag, term)
		}
		if i > 0 {
			place = place.mulWord(place, uint32(base))
		}
	}

	out.digits = mag
	out.normalize()
	return out, nil
}

// Text returns the string representation of b in the given base, which
// must be in [2, 36). Digits above 9 are upper-case letters.
func (b BigInt) Text(base int) (string, error) {
	if !validBase(base) {
		return "", fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return string(b.appendText(nil, base, digitChars)), nil
}

// appendText appends the digits of b in base to buf, using chars as the
// digit alphabet. base must already be validated.
func (b BigInt) appendText(buf []byte, base int, chars string) []byte {
	start := len(buf)

	// Digits come out least significant first; the run is reversed at the
	// end. The loop runs at least once so that zero prints as "0".
	q := nat(nil).set(b.digits)
	for {
		var r uint32
		q, r = q.divWord(q, uint32(base))
		buf = append(buf, chars[r])
		if len(q) == 0 {
			break
		}
	}
	if b.neg {
		buf = append(buf, '-')
	}

	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
