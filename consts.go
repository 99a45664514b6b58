package num

import "errors"

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// wordBits is the width of one digit of a nat. The positional base of
	// every BigInt is 1<<wordBits.
	wordBits = 32
	wordBase = 1 << wordBits
	wordMask = wordBase - 1

	minBase = 2
	maxBase = 36 // exclusive

	intSize = 32 << (^uint(0) >> 63)
)

// digitChars maps a digit value to its character for bases up to 36.
const digitChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrDivisionByZero is returned by every division and modulus operation
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("num: division by zero")

	// ErrInvalidBase is returned when a radix outside [2, 36) is requested.
	ErrInvalidBase = errors.New("num: invalid base")

	// ErrSyntax is wrapped by all string parsing failures.
	ErrSyntax = errors.New("num: invalid syntax")
)

// digitValue returns the numeric value of c, or 255 if c is not a digit in
// any supported base.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 255
}

func validBase(base int) bool {
	return base >= minBase && base < maxBase
}
