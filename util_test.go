package num

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestRandBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 1000; i++ {
		n := rng.Intn(8)
		b := RandBigInt(rng, n)
		tt.MustOK(checkInvariants(b))
		tt.MustAssert(b.Size() <= n, "size %d > %d", b.Size(), n)
	}

	tt.MustAssert(RandBigInt(rng, 0).IsZero())
}
