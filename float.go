package num

import (
	"math"
	"math/bits"
)

const (
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64
)

func BigIntFromFloat32(f float32) (out BigInt, inRange bool) {
	return BigIntFromFloat64(float64(f))
}

// BigIntFromFloat64 creates a BigInt from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// NaN and ±Inf have no integer value: out is 0 and inRange is false. Every
// finite float is in range.
func BigIntFromFloat64(f float64) (out BigInt, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	}

	f = math.Trunc(f)
	neg := f < 0
	if neg {
		f = -f
	}

	if f < wrapUint64Float {
		out.digits = out.digits.setUint64(uint64(f))
	} else {
		// Split f into a 53-bit integer mantissa and a power of two, then
		// shift the mantissa up one word-sized chunk at a time.
		frac, exp := math.Frexp(f)
		mant := uint64(math.Ldexp(frac, 53))
		shift := exp - 53

		out.digits = out.digits.setUint64(mant)
		for shift > 0 {
			n := shift
			if n > wordBits-1 {
				n = wordBits - 1
			}
			out.digits = out.digits.mulWord(out.digits, 1<<uint(n))
			shift -= n
		}
	}

	out.neg = neg
	out.normalize()
	return out, true
}

// AsFloat64 returns the nearest float64 to b, or ±Inf if b is too large.
func (b BigInt) AsFloat64() float64 {
	n := len(b.digits)

	var f float64
	if n <= 2 {
		f = float64(b.lo64())
	} else {
		// Take the top 64 significant bits and fold everything below them
		// into a sticky bit, so the single conversion rounds correctly.
		hi := uint64(b.digits[n-1])<<wordBits | uint64(b.digits[n-2])
		lz := uint(bits.LeadingZeros64(hi))
		next := b.digits[n-3]
		top := hi<<lz | uint64(next)>>(wordBits-lz)

		sticky := next<<lz != 0
		for i := 0; !sticky && i < n-3; i++ {
			sticky = b.digits[i] != 0
		}
		if sticky {
			top |= 1
		}
		f = math.Ldexp(float64(top), (n-2)*wordBits-int(lz))
	}

	if b.neg {
		f = -f
	}
	return f
}
