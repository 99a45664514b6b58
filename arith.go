package num

var natOne = nat{1}

func (b BigInt) Add(n BigInt) BigInt {
	out := b.Copy()
	out.AddAssign(n)
	return out
}

func (b *BigInt) AddAssign(n BigInt) *BigInt {
	return b.addSigned(n.digits, n.neg)
}

func (b BigInt) Sub(n BigInt) BigInt {
	out := b.Copy()
	out.SubAssign(n)
	return out
}

// SubAssign is AddAssign with the sign of n inverted.
func (b *BigInt) SubAssign(n BigInt) *BigInt {
	return b.addSigned(n.digits, !n.neg)
}

// addSigned adds (-1)^yneg * y to b. Like every mutating operation, it
// writes the result into fresh storage, so values copied from b by plain
// assignment keep their own digits.
func (b *BigInt) addSigned(y nat, yneg bool) *BigInt {
	if b.neg == yneg {
		b.digits = nat(nil).add(b.digits, y)
	} else if b.digits.cmp(y) >= 0 {
		b.digits = nat(nil).sub(b.digits, y)
	} else {
		b.neg = yneg
		b.digits = nat(nil).sub(y, b.digits)
	}
	return b.normalize()
}

func (b BigInt) Neg() BigInt {
	out := b.Copy()
	return *out.NegAssign()
}

// NegAssign flips the sign of b. Zero stays non-negative.
func (b *BigInt) NegAssign() *BigInt {
	if len(b.digits) != 0 {
		b.neg = !b.neg
	}
	return b
}

func (b BigInt) Abs() BigInt {
	out := b.Copy()
	return *out.AbsAssign()
}

func (b *BigInt) AbsAssign() *BigInt {
	b.neg = false
	return b
}

func (b BigInt) Inc() BigInt {
	out := b.Copy()
	return *out.IncAssign()
}

// IncAssign adds one to b and returns b, like a prefix ++.
func (b *BigInt) IncAssign() *BigInt {
	return b.addSigned(natOne, false)
}

// PostInc adds one to b and returns the value b held before, like a postfix
// ++.
func (b *BigInt) PostInc() BigInt {
	old := b.Copy()
	b.IncAssign()
	return old
}

func (b BigInt) Dec() BigInt {
	out := b.Copy()
	return *out.DecAssign()
}

// DecAssign subtracts one from b and returns b, like a prefix --.
func (b *BigInt) DecAssign() *BigInt {
	return b.addSigned(natOne, true)
}

// PostDec subtracts one from b and returns the value b held before, like a
// postfix --.
func (b *BigInt) PostDec() BigInt {
	old := b.Copy()
	b.DecAssign()
	return old
}

func (b BigInt) Mul(n BigInt) BigInt {
	out := b.Copy()
	return *out.MulAssign(n)
}

// MulAssign sets b to b*n. The product is built in fresh storage, so n may
// be b itself.
func (b *BigInt) MulAssign(n BigInt) *BigInt {
	b.digits = mulAbs(b.digits, n.digits)
	b.neg = b.neg != n.neg
	return b.normalize()
}

func (b BigInt) MulInt32(x int32) BigInt {
	out := b.Copy()
	return *out.MulInt32Assign(x)
}

// MulInt32Assign multiplies b by a single-digit scalar in one pass. A
// negative x flips the sign of b.
func (b *BigInt) MulInt32Assign(x int32) *BigInt {
	mag := uint32(x)
	if x < 0 {
		b.neg = !b.neg
		mag = uint32(-int64(x))
	}
	b.digits = nat(nil).mulWord(b.digits, mag)
	return b.normalize()
}

// QuoRemUint32 divides the magnitude of b by d, keeping the sign of b on
// the quotient. The remainder is the remainder of the magnitude and is
// never negative.
func (b BigInt) QuoRemUint32(d uint32) (q BigInt, r uint32, err error) {
	if d == 0 {
		return q, 0, ErrDivisionByZero
	}
	q = b.Copy()
	r, err = q.QuoRemUint32Assign(d)
	return q, r, err
}

// QuoRemUint32Assign is the in-place form of QuoRemUint32. b is untouched
// if d is zero.
func (b *BigInt) QuoRemUint32Assign(d uint32) (r uint32, err error) {
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	b.digits, r = nat(nil).divWord(b.digits, d)
	b.normalize()
	return r, nil
}

// Quo returns the quotient b/by, truncated toward zero (like Go).
func (b BigInt) Quo(by BigInt) (q BigInt, err error) {
	if by.IsZero() {
		return q, ErrDivisionByZero
	}
	qd, _ := divAbs(b.digits, by.digits)
	q = BigInt{digits: qd, neg: b.neg != by.neg}
	q.normalize()
	return q, nil
}

// QuoAssign sets b to b/by. b is untouched if by is zero.
func (b *BigInt) QuoAssign(by BigInt) (*BigInt, error) {
	q, err := b.Quo(by)
	if err != nil {
		return b, err
	}
	*b = q
	return b, nil
}

// Rem returns the remainder b%by for a non-zero by. Rem implements
// truncated modulus (like Go): the result is b - (b/by)*by, so it takes the
// sign of b unless it is zero.
func (b BigInt) Rem(by BigInt) (r BigInt, err error) {
	_, r, err = b.QuoRem(by)
	return r, err
}

// RemAssign sets b to b%by. b is untouched if by is zero.
func (b *BigInt) RemAssign(by BigInt) (*BigInt, error) {
	r, err := b.Rem(by)
	if err != nil {
		return b, err
	}
	*b = r
	return b, nil
}

// QuoRem returns the quotient q and remainder r for by != 0.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// BigInt does not support big.Int.DivMod()-style Euclidean division.
//
func (b BigInt) QuoRem(by BigInt) (q, r BigInt, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	qd, rd := divAbs(b.digits, by.digits)
	q = BigInt{digits: qd, neg: b.neg != by.neg}
	r = BigInt{digits: rd, neg: b.neg}
	q.normalize()
	r.normalize()
	return q, r, nil
}
