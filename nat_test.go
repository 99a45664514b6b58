package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func natFromBig(v *big.Int) nat {
	return BigIntFromBigInt(v).digits
}

func bigFromNat(x nat) *big.Int {
	return BigInt{digits: x}.AsBigInt()
}

func TestNatNorm(t *testing.T) {
	for idx, tc := range []struct {
		in, out nat
	}{
		{nil, nat{}},
		{nat{0}, nat{}},
		{nat{0, 0, 0}, nat{}},
		{nat{1, 0}, nat{1}},
		{nat{0, 1, 0, 0}, nat{0, 1}},
		{nat{5}, nat{5}},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(len(tc.out), len(tc.in.norm()))
			for i := range tc.out {
				tt.MustEqual(tc.out[i], tc.in.norm()[i])
			}
		})
	}
}

func TestNatCmp(t *testing.T) {
	for idx, tc := range []struct {
		x, y   nat
		result int
	}{
		{nil, nil, 0},
		{nil, nat{1}, -1},
		{nat{1}, nil, 1},
		{nat{0xFFFFFFFF}, nat{0, 1}, -1},
		{nat{0, 2}, nat{0xFFFFFFFF, 1}, 1},
		{nat{3, 2}, nat{3, 2}, 0},
		{nat{2, 3}, nat{3, 3}, -1},
	} {
		t.Run(fmt.Sprintf("%d/%v<=>%v", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.x.cmp(tc.y))
		})
	}
}

func TestNatAddSubCarry(t *testing.T) {
	tt := assert.WrapTB(t)

	x := nat{0xFFFFFFFF, 0xFFFFFFFF}
	z := nat(nil).add(x, nat{1})
	tt.MustEqual(nat{0, 0, 1}, z)

	z = z.sub(z, nat{1})
	tt.MustEqual(nat{0xFFFFFFFF, 0xFFFFFFFF}, z)

	z = z.sub(z, z)
	tt.MustEqual(0, len(z))
}

func TestNatSubUnderflowPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil, "expected panic")
	}()
	nat(nil).sub(nat{1}, nat{2})
}

func TestNatMulWord(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(nat{0xFFFFFFFE, 1}, nat(nil).mulWord(nat{0xFFFFFFFF}, 2))
	tt.MustEqual(0, len(nat(nil).mulWord(nat{0xFFFFFFFF}, 0)))
	tt.MustEqual(0, len(nat(nil).mulWord(nil, 7)))
}

func TestNatDivWord(t *testing.T) {
	tt := assert.WrapTB(t)
	q, r := nat(nil).divWord(nat{0, 0, 1}, 0xFFFFFFFF)
	tt.MustEqual(nat{1, 1}, q)
	tt.MustEqual(uint32(1), r)

	q, r = nat(nil).divWord(nil, 10)
	tt.MustEqual(0, len(q))
	tt.MustEqual(uint32(0), r)
}

func TestNatShlWord(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(nat{7}, nat(nil).shlWord(7))
	tt.MustEqual(0, len(nat(nil).shlWord(0)))
	tt.MustEqual(nat{0, 1, 2}, nat{1, 2}.shlWord(0))
}

func TestNatMulDivAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 2000; i++ {
		bx := new(big.Int).Abs(randomBig(rng, 400))
		by := new(big.Int).Abs(randomBig(rng, 200))
		x, y := natFromBig(bx), natFromBig(by)

		p := mulAbs(x, y)
		tt.MustEqual(0, new(big.Int).Mul(bx, by).Cmp(bigFromNat(p)), "%s * %s", bx, by)

		if by.Sign() == 0 {
			continue
		}
		q, r := divAbs(x, y)
		bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
		tt.MustEqual(0, bq.Cmp(bigFromNat(q)), "%s / %s", bx, by)
		tt.MustEqual(0, br.Cmp(bigFromNat(r)), "%s %% %s", bx, by)

		// Neither operand may be touched:
		tt.MustEqual(0, bx.Cmp(bigFromNat(x)))
		tt.MustEqual(0, by.Cmp(bigFromNat(y)))
	}
}

// Divisors whose top digit is small force the search to pick quotient
// digits near the top of the digit range.
func TestNatDivAbsSmallLeadingDigit(t *testing.T) {
	tt := assert.WrapTB(t)

	u := nat{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}
	v := nat{0xFFFFFFFF, 1}
	q, r := divAbs(u, v)

	bq, br := new(big.Int).QuoRem(bigFromNat(u), bigFromNat(v), new(big.Int))
	tt.MustEqual(0, bq.Cmp(bigFromNat(q)))
	tt.MustEqual(0, br.Cmp(bigFromNat(r)))
}
