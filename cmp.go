package num

// Cmp compares b to n and returns:
//
//	-1 if b <  n
//	 0 if b == n
//	+1 if b >  n
//
func (b BigInt) Cmp(n BigInt) int {
	if b.neg != n.neg {
		if b.neg {
			return -1
		}
		return 1
	}
	r := b.digits.cmp(n.digits)
	if b.neg {
		r = -r
	}
	return r
}

// CmpAbs compares the absolute values of b and n.
func (b BigInt) CmpAbs(n BigInt) int {
	return b.digits.cmp(n.digits)
}

func (b BigInt) Equal(n BigInt) bool {
	return b.neg == n.neg && b.digits.cmp(n.digits) == 0
}

func (b BigInt) GreaterThan(n BigInt) bool      { return b.Cmp(n) > 0 }
func (b BigInt) GreaterOrEqualTo(n BigInt) bool { return b.Cmp(n) >= 0 }
func (b BigInt) LessThan(n BigInt) bool         { return b.Cmp(n) < 0 }
func (b BigInt) LessOrEqualTo(n BigInt) bool    { return b.Cmp(n) <= 0 }
