package num

import (
	"fmt"
	"math/big"
)

// BigInt is an arbitrary-precision signed integer. The zero value is 0 and
// is ready to use.
//
// Methods with an Assign suffix mutate the receiver in place and return it;
// every other method leaves its operands untouched and returns a new value.
//
// Digit storage is never written once a BigInt holds it: every mutating
// method builds its result in fresh storage. Plain assignment (x := y) is
// therefore a safe snapshot, as with any other value type.
type BigInt struct {
	digits nat
	neg    bool
}

func BigIntFrom64(v int64) (out BigInt) {
	if v == 0 {
		return out
	}
	var mag uint64
	if v == minInt64 {
		// -minInt64 has no int64 counterpart; build the magnitude from its
		// bit pattern instead of negating.
		mag = 1 << 63
	} else if v < 0 {
		mag = uint64(-v)
	} else {
		mag = uint64(v)
	}
	out.digits = out.digits.setUint64(mag)
	out.neg = v < 0
	return out
}

func BigIntFrom32(v int32) BigInt { return BigIntFrom64(int64(v)) }
func BigIntFrom16(v int16) BigInt { return BigIntFrom64(int64(v)) }
func BigIntFrom8(v int8) BigInt   { return BigIntFrom64(int64(v)) }
func BigIntFromInt(v int) BigInt  { return BigIntFrom64(int64(v)) }

func BigIntFromU64(v uint64) (out BigInt) {
	out.digits = out.digits.setUint64(v)
	return out
}

// BigIntFromBigInt creates a BigInt from a big.Int. The conversion is always
// exact.
func BigIntFromBigInt(v *big.Int) (out BigInt) {
	words := v.Bits()

	switch intSize {
	case 64:
		out.digits = make(nat, 0, len(words)*2)
		for _, w := range words {
			out.digits = append(out.digits, uint32(uint64(w)&wordMask), uint32(uint64(w)>>32))
		}
	case 32:
		out.digits = make(nat, 0, len(words))
		for _, w := range words {
			out.digits = append(out.digits, uint32(w))
		}
	default:
		panic("num: unsupported bit size")
	}

	out.neg = v.Sign() < 0
	out.normalize()
	return out
}

// normalize strips most-significant zero digits and makes sure zero is
// never negative.
func (b *BigInt) normalize() *BigInt {
	b.digits = b.digits.norm()
	if len(b.digits) == 0 {
		b.digits = nil
		b.neg = false
	}
	return b
}

// Copy returns a deep copy of b.
func (b BigInt) Copy() BigInt {
	return BigInt{digits: nat(nil).set(b.digits), neg: b.neg}
}

// Size returns the number of base 1<<32 digits used to store the magnitude.
// Zero has a size of 0.
func (b BigInt) Size() int { return len(b.digits) }

func (b BigInt) IsZero() bool { return len(b.digits) == 0 }

func (b BigInt) IsNeg() bool { return b.neg }

func (b BigInt) Sign() int {
	if len(b.digits) == 0 {
		return 0
	} else if b.neg {
		return -1
	}
	return 1
}

// IntoBigInt copies this BigInt into a big.Int, allowing you to retain and
// recycle memory.
func (b BigInt) IntoBigInt(v *big.Int) {
	var words []big.Word

	switch intSize {
	case 64:
		words = make([]big.Word, (len(b.digits)+1)/2)
		for i, d := range b.digits {
			shift := uint(wordBits * (i % 2))
			words[i/2] |= big.Word(uint64(d) << shift)
		}
	case 32:
		words = make([]big.Word, len(b.digits))
		for i, d := range b.digits {
			words[i] = big.Word(d)
		}
	default:
		panic("num: unsupported bit size")
	}

	v.SetBits(words)
	if b.neg {
		v.Neg(v)
	}
}

// AsBigInt allocates a new big.Int and copies this BigInt into it.
func (b BigInt) AsBigInt() *big.Int {
	v := new(big.Int)
	b.IntoBigInt(v)
	return v
}

func (b BigInt) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(b.AsBigInt())
}

// AsInt64 truncates the BigInt to fit in an int64, keeping the low 64 bits
// of its two's complement form. See IsInt64 if you want to check before you
// convert.
func (b BigInt) AsInt64() int64 {
	v := int64(b.lo64())
	if b.neg {
		return -v
	}
	return v
}

// IsInt64 reports whether b can be represented as an int64.
func (b BigInt) IsInt64() bool {
	if len(b.digits) > 2 {
		return false
	}
	lo := b.lo64()
	if b.neg {
		return lo <= 1<<63
	}
	return lo <= maxInt64
}

// AsUint64 truncates the magnitude of b to its low 64 bits. The sign is
// ignored.
func (b BigInt) AsUint64() uint64 {
	return b.lo64()
}

// IsUint64 reports whether b can be represented as a uint64.
func (b BigInt) IsUint64() bool {
	return !b.neg && len(b.digits) <= 2
}

func (b BigInt) lo64() (v uint64) {
	if len(b.digits) > 0 {
		v = uint64(b.digits[0])
	}
	if len(b.digits) > 1 {
		v |= uint64(b.digits[1]) << wordBits
	}
	return v
}

func (b BigInt) String() string {
	return string(b.appendText(nil, 10, digitChars))
}

// GoString shows the sign and the raw digits, least significant first.
func (b BigInt) GoString() string {
	return fmt.Sprintf("num.BigInt{neg: %v, digits: %#x}", b.neg, []uint32(b.digits))
}
