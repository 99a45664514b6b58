package num

import "fmt"

// MustBigIntFromString is like BigIntFromString but panics if s cannot be
// parsed. It simplifies safe initialization of global variables holding
// constants.
func MustBigIntFromString(s string) BigInt {
	b, err := BigIntFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustBigIntFromString(%q) failed: %v", s, err))
	}
	return b
}

// MustQuo is like Quo but panics if by is zero.
func (b BigInt) MustQuo(by BigInt) BigInt {
	q, err := b.Quo(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", by, err))
	}
	return q
}

// MustRem is like Rem but panics if by is zero.
func (b BigInt) MustRem(by BigInt) BigInt {
	r, err := b.Rem(by)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", by, err))
	}
	return r
}

// MustQuoRem is like QuoRem but panics if by is zero.
func (b BigInt) MustQuoRem(by BigInt) (q, r BigInt) {
	q, r, err := b.QuoRem(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", by, err))
	}
	return q, r
}

// MustText is like Text but panics if base is out of range.
func (b BigInt) MustText(base int) string {
	s, err := b.Text(base)
	if err != nil {
		panic(fmt.Sprintf("MustText(%d) failed: %v", base, err))
	}
	return s
}
