package bfloat16

// guardBand is the widest exponent gap at which the smaller addend can
// still change the larger one.
const guardBand = shift + 1

// Add returns the sum of a and b, truncated toward zero.
// An addend more than guardBand binary orders of magnitude smaller than
// the other has no effect.
//
// Special cases are:
//
//	Add(NaN, y) = NaN
//	Add(x, NaN) = NaN
//	Add(±0, ±0) = +0, or -0 if both are -0
//	Add(±0, y) = y
//	Add(±Inf, y) = ±Inf
//	Add(x, ±Inf) = ±Inf
//
// Inf + -Inf returns the first operand.
func (a BFloat16) Add(b BFloat16) BFloat16 {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsZero() && b.IsZero():
		return a & b
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	case a.IsInf(0):
		return a
	case b.IsInf(0):
		return b
	}

	signA, expA, mantA := unpack(a)
	signB, expB, mantB := unpack(b)

	// Align exponents. The significands are widened by guardBand bits
	// first, so the aligned sum is exact and pack truncates only once.
	mantA <<= guardBand
	mantB <<= guardBand
	exp := expA - guardBand
	switch d := expA - expB; {
	case d > guardBand:
		return a
	case d < -guardBand:
		return b
	case d > 0:
		mantB >>= d
	case d < 0:
		mantA >>= -d
		exp = expB - guardBand
	}

	if signA == signB {
		// pack shifts a carry back into the significand
		return pack(signA, exp, mantA+mantB)
	}

	// subtract the smaller magnitude from the larger one;
	// pack shifts the difference left up to the implicit bit
	var sign BFloat16
	var mant uint32
	switch {
	case mantA > mantB:
		sign, mant = signA, mantA-mantB
	case mantB > mantA:
		sign, mant = signB, mantB-mantA
	default:
		return PositiveZero
	}
	return pack(sign, exp, mant)
}

// Sub returns the difference of a and b. It is a.Add(b.Neg()).
func (a BFloat16) Sub(b BFloat16) BFloat16 {
	return a.Add(b ^ SignMask)
}

// Mul returns the product of a and b, truncated toward zero.
//
// Special cases are:
//
//	Mul(NaN, y) = Mul(x, NaN) = NaN
//	Mul(±0, y) = Mul(x, ±0) = ±0, the sign being the XOR of the signs
//	Mul(±Inf, y) = Mul(x, ±Inf) = ±Inf for nonzero y and x
func (a BFloat16) Mul(b BFloat16) BFloat16 {
	if a.IsNaN() || b.IsNaN() {
		return uvnan
	}
	sign := (a ^ b) & SignMask
	if a.IsZero() || b.IsZero() {
		return sign
	}
	if a.IsInf(0) || b.IsInf(0) {
		return sign | uvinf
	}

	_, expA, mantA := unpackNormal(a)
	_, expB, mantB := unpackNormal(b)

	exp := expA + expB - bias
	mant := mantA * mantB // 1<<14 <= mant < 1<<16
	if mant&(1<<15) != 0 {
		mant >>= shift + 1
		exp++
	} else {
		mant >>= shift
	}
	return pack(sign, exp, mant)
}

// Quo returns the quotient of a and b, truncated toward zero.
//
// Special cases are:
//
//	Quo(NaN, y) = Quo(x, NaN) = NaN
//	Quo(±0, ±0) = NaN
//	Quo(x, ±0) = ±Inf
//	Quo(±0, y) = ±0
//	Quo(±Inf, ±Inf) = NaN
//	Quo(±Inf, y) = ±Inf
//	Quo(x, ±Inf) = ±0
//
// The sign of a signed result is the XOR of the signs of a and b.
func (a BFloat16) Quo(b BFloat16) BFloat16 {
	if a.IsNaN() || b.IsNaN() {
		return uvnan
	}
	sign := (a ^ b) & SignMask
	switch {
	case b.IsZero():
		if a.IsZero() {
			return uvnan
		}
		return sign | uvinf
	case a.IsZero():
		return sign
	case a.IsInf(0):
		if b.IsInf(0) {
			return uvnan
		}
		return sign | uvinf
	case b.IsInf(0):
		return sign
	}

	_, expA, mantA := unpackNormal(a)
	_, expB, mantB := unpackNormal(b)

	// the quotient carries shift+1 fraction bits, one more than a significand
	exp := expA - expB + bias - 1
	mant := (mantA << (shift + 1)) / mantB
	exp, mant = normalize(exp, mant)
	return pack(sign, exp, mant)
}
