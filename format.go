package num

import (
	"fmt"
	"io"
)

const lowerDigitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// Format implements fmt.Formatter. It accepts the verbs 'b', 'o', 'd', 's',
// 'v', 'x' and 'X', the '+' and '#' flags, and a field width ('-' pads on
// the right, '0' pads with zeros after the sign). '%#v' prints GoString.
func (b BigInt) Format(s fmt.State, c rune) {
	var base int
	var prefix string
	chars := digitChars

	switch c {
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'd', 's':
		base = 10
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, b.GoString())
			return
		}
		base = 10
	case 'x':
		base, prefix, chars = 16, "0x", lowerDigitChars
	case 'X':
		base, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(num.BigInt=%s)", c, b.String())
		return
	}

	digits := b.Abs().appendText(nil, base, chars)

	var sign string
	if b.neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	}
	if !s.Flag('#') {
		prefix = ""
	}

	width, hasWidth := s.Width()

	// With '0', the padding goes between the sign/prefix and the digits.
	// '-' takes precedence, as it does for the built-in integer types.
	var zeros int
	if hasWidth && s.Flag('0') && !s.Flag('-') {
		if n := width - len(sign) - len(prefix) - len(digits); n > 0 {
			zeros = n
		}
	}

	out := make([]byte, 0, len(sign)+len(prefix)+zeros+len(digits))
	out = append(out, sign...)
	out = append(out, prefix...)
	for i := 0; i < zeros; i++ {
		out = append(out, '0')
	}
	out = append(out, digits...)

	if !hasWidth || width <= len(out) {
		s.Write(out)
		return
	}

	pad := make([]byte, width-len(out))
	for i := range pad {
		pad[i] = ' '
	}
	if s.Flag('-') {
		s.Write(out)
		s.Write(pad)
	} else {
		s.Write(pad)
		s.Write(out)
	}
}

// Scan implements fmt.Scanner. It reads an optional '-' followed by the
// digits of the base selected by the verb: 'b' (2), 'o' (8), 'd', 's' or
// 'v' (10), 'x' or 'X' (16).
func (b *BigInt) Scan(state fmt.ScanState, verb rune) error {
	var base int
	switch verb {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		return fmt.Errorf("num: bigint scan verb %%%c not supported", verb)
	}

	tok, err := state.Token(true, func(r rune) bool {
		return r == '-' || (r < 0x80 && digitValue(byte(r)) < base)
	})
	if err != nil {
		return err
	}

	v, err := BigIntFromStringBase(string(tok), base)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b BigInt) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BigInt) UnmarshalText(bts []byte) (err error) {
	v, err := BigIntFromString(string(bts))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalJSON encodes b as a quoted decimal string, so that values beyond
// the range of a float64 survive JSON decoders.
func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or a bare decimal integer.
func (b *BigInt) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: bigint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := BigIntFromString(string(bts))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
