package num

type RandSource interface {
	Uint64() uint64
}

// RandBigInt generates a random BigInt of up to n digits from an external
// source. The sign is random too, but zero is always non-negative.
func RandBigInt(source RandSource, n int) (out BigInt) {
	if n <= 0 {
		return out
	}
	out.digits = make(nat, n)
	for i := 0; i < n; i += 2 {
		v := source.Uint64()
		out.digits[i] = uint32(v & wordMask)
		if i+1 < n {
			out.digits[i+1] = uint32(v >> wordBits)
		}
	}
	out.neg = source.Uint64()&1 == 1
	out.normalize()
	return out
}

// DifferenceBigInt subtracts the smaller of a and b from the larger.
func DifferenceBigInt(a, b BigInt) BigInt {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerBigInt(a, b BigInt) BigInt {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerBigInt(a, b BigInt) BigInt {
	if b.LessThan(a) {
		return b
	}
	return a
}
