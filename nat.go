package num

// nat is an unsigned magnitude: a little-endian sequence of base 1<<32
// digits. A normalized nat has no most-significant zero digit, so zero is
// the empty nat.
//
// Operations of the form z.op(x, y) write their result into z's storage
// when it is large enough and return the (possibly reallocated) result. z
// may alias x or y in add, sub, mulWord and divWord because every digit is
// read before the same index is written. mulAbs and divAbs always stage
// their results in fresh storage.
type nat []uint32

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	// A little headroom saves a reallocation on the next carry.
	return make(nat, n, n+4)
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) setUint64(v uint64) nat {
	z = z[:0]
	for v != 0 {
		z = append(z, uint32(v&wordMask))
		v >>= wordBits
	}
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// cmp compares the magnitudes x and y and returns -1, 0 or 1. Both must be
// normalized, otherwise the length shortcut is wrong.
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}

	z = z.make(m + 1)
	var carry uint64
	for i := 0; i < m; i++ {
		t := uint64(x[i]) + carry
		if i < n {
			t += uint64(y[i])
		}
		z[i] = uint32(t & wordMask)
		carry = t >> wordBits
	}
	z[m] = uint32(carry)
	return z.norm()
}

// sub sets z to x - y. The caller guarantees x >= y.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		panic("num: magnitude underflow")
	}

	z = z.make(m)
	var borrow int64
	for i := 0; i < m; i++ {
		t := int64(x[i]) - borrow
		if i < n {
			t -= int64(y[i])
		}
		if t < 0 {
			t += wordBase
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(t)
	}
	if borrow != 0 {
		panic("num: magnitude underflow")
	}
	return z.norm()
}

func (z nat) mulWord(x nat, y uint32) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z[:0]
	}

	z = z.make(m + 1)
	var carry uint64
	for i := 0; i < m; i++ {
		t := uint64(x[i])*uint64(y) + carry
		z[i] = uint32(t & wordMask)
		carry = t >> wordBits
	}
	z[m] = uint32(carry)
	return z.norm()
}

// divWord sets z to x / y and returns the remainder. y must not be zero.
func (z nat) divWord(x nat, y uint32) (nat, uint32) {
	m := len(x)
	z = z.make(m)
	var r uint64
	for i := m - 1; i >= 0; i-- {
		t := r<<wordBits | uint64(x[i])
		z[i] = uint32(t / uint64(y))
		r = t % uint64(y)
	}
	return z.norm(), uint32(r)
}

// shlWord sets z to z*B + w.
func (z nat) shlWord(w uint32) nat {
	z = append(z, 0)
	copy(z[1:], z)
	z[0] = w
	return z.norm()
}

// mulAbs returns x * y in fresh storage using schoolbook long
// multiplication; neither operand is modified.
func mulAbs(x, y nat) nat {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}

	z := make(nat, m+n)
	for i := 0; i < n; i++ {
		d := uint64(y[i])
		if d == 0 {
			continue
		}

		// (B-1) + (B-1)*(B-1) + (B-1) == B*B - 1, so t never overflows.
		var carry uint64
		for j := 0; j < m; j++ {
			t := uint64(z[i+j]) + uint64(x[j])*d + carry
			z[i+j] = uint32(t & wordMask)
			carry = t >> wordBits
		}
		z[i+m] = uint32(carry)
	}
	return z.norm()
}

// divAbs returns the quotient and remainder of u / v in fresh storage. v
// must not be zero.
//
// Each quotient digit is found by binary search over [0, B): the running
// remainder is always less than v*B, so the largest d with v*d <= r fits in
// one digit, and r and v differ in length by at most one.
func divAbs(u, v nat) (q, r nat) {
	if u.cmp(v) < 0 {
		return nil, nat(nil).set(u)
	}
	if len(v) == 1 {
		var rw uint32
		q, rw = nat(nil).divWord(u, v[0])
		return q, nat(nil).setUint64(uint64(rw))
	}

	q = make(nat, len(u))
	var p nat
	for i := len(u) - 1; i >= 0; i-- {
		r = r.shlWord(u[i])
		if r.cmp(v) < 0 {
			continue
		}

		lo, hi := uint64(1), uint64(wordMask)
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			p = p.mulWord(v, uint32(mid))
			if p.cmp(r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}

		q[i] = uint32(lo)
		p = p.mulWord(v, uint32(lo))
		r = r.sub(r, p)
	}
	return q.norm(), r.norm()
}
