package bfloat16

// IsNaN reports whether x is a NaN.
func (x BFloat16) IsNaN() bool {
	return x&ExponentMask == ExponentMask && x&MantissaMask != 0
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x BFloat16) IsInf(sign int) bool {
	return sign >= 0 && x == uvinf || sign <= 0 && x == uvneginf
}

// Equal reports whether a == b.
// NaN is not equal to anything, and +0 equals -0.
func (a BFloat16) Equal(b BFloat16) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsZero() && b.IsZero() {
		return true
	}
	return a == b
}

// Less reports whether a < b. It is false if either is NaN.
func (a BFloat16) Less(b BFloat16) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	negA := a&SignMask != 0
	negB := b&SignMask != 0
	if negA != negB {
		// -0 < +0 does not hold
		return negA && (a|b)&^SignMask != 0
	}

	// same sign: the bit patterns are ordered by magnitude
	if negA {
		return a > b
	}
	return a < b
}

// Greater reports whether a > b. It is false if either is NaN.
func (a BFloat16) Greater(b BFloat16) bool {
	return b.Less(a)
}

// LessEqual reports whether a <= b. It is false if either is NaN.
func (a BFloat16) LessEqual(b BFloat16) bool {
	return a.Less(b) || a.Equal(b)
}

// GreaterEqual reports whether a >= b. It is false if either is NaN.
func (a BFloat16) GreaterEqual(b BFloat16) bool {
	return b.Less(a) || a.Equal(b)
}

// Compare compares a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if a >  b
//
// a NaN is considered less than any non-NaN, and two NaNs are equal.
func (a BFloat16) Compare(b BFloat16) int {
	aNaN := a.IsNaN()
	bNaN := b.IsNaN()
	if aNaN && bNaN {
		return 0
	}
	if aNaN {
		return -1
	}
	if bNaN {
		return 1
	}

	// map sign-magnitude onto two's complement
	ia := int16(a) ^ ((int16(a) >> 15) & 0x7fff)
	ia += int16(a >> 15)
	ib := int16(b) ^ ((int16(b) >> 15) & 0x7fff)
	ib += int16(b >> 15)
	if ia < ib {
		return -1
	}
	if ia > ib {
		return 1
	}
	return 0
}

// Min returns the smaller of a and b.
// If either is NaN the result is NaN, and Min(+0, -0) is -0.
func Min(a, b BFloat16) BFloat16 {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsZero() && b.IsZero():
		return a | b
	case b.Less(a):
		return b
	}
	return a
}

// Max returns the larger of a and b.
// If either is NaN the result is NaN, and Max(+0, -0) is +0.
func Max(a, b BFloat16) BFloat16 {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsZero() && b.IsZero():
		return a & b
	case a.Less(b):
		return b
	}
	return a
}
