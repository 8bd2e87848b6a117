package bfloat16

// Sqrt returns the square root of x, rounded to nearest even.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func (x BFloat16) Sqrt() BFloat16 {
	// special cases
	switch {
	case x.IsZero() || x.IsNaN() || x.IsInf(1):
		return x
	case x&SignMask != 0:
		return uvnan
	}

	// normalize x
	_, exp, frac := unpackNormal(x)
	exp -= bias

	if exp&1 != 0 { // odd exp, double x to make it even
		frac <<= 1
	}
	// exponent of square root
	exp >>= 1

	// generate sqrt(frac) bit by bit
	frac <<= 1
	var q, s uint32 // q = sqrt(frac)
	r := uint32(1 << (shift + 1))
	for r != 0 {
		t := s + r
		if t <= frac {
			s = t + r
			frac -= t
			q += r
		}
		frac <<= 1
		r >>= 1
	}

	// final rounding
	if frac != 0 {
		q += q & 1
	}
	return BFloat16((exp-1+bias)<<shift) + BFloat16(q>>1)
}
