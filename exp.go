package bfloat16

import "math"

const (
	MinExponent = 1 - bias        // unbiased exponent of the smallest normal number
	MaxExponent = mask - 1 - bias // unbiased exponent of the largest finite number

	ExponentZero   = -math.MaxInt16 // Exponent of ±0
	ExponentInfNaN = math.MaxInt16  // Exponent of ±Inf and NaN
)

// Exponent returns the unbiased binary exponent of x.
//
// Special cases are:
//
//	Exponent(±0) = ExponentZero
//	Exponent(denormal) = MinExponent
//	Exponent(±Inf) = Exponent(NaN) = ExponentInfNaN
func (x BFloat16) Exponent() int {
	exp := int(x>>shift) & mask
	switch exp {
	case 0:
		if x&MantissaMask != 0 {
			return MinExponent
		}
		return ExponentZero
	case mask:
		return ExponentInfNaN
	}
	return exp - bias
}

// SetExponent returns x with its unbiased exponent replaced by e.
// Results too large for bfloat16 give an infinity of the sign of x.
// Exponents below MinExponent give a denormal number, or a signed zero
// when the significand is shifted out entirely.
// ±0, ±Inf and NaN are returned unchanged.
//
// A denormal x is treated as 0.fraction times 2**e. Its significand is
// normalized first, so the result is infinite only when that product
// is 2**128 or more.
func (x BFloat16) SetExponent(e int) BFloat16 {
	if x.IsZero() || x&ExponentMask == ExponentMask {
		return x
	}
	sign, _, mant := unpack(x)

	// every significand over- or underflows outside this range
	e = max(MinExponent-2*(shift+1), min(e, MaxExponent+shift+1))
	exp, mant := normalize(e+bias, mant)
	return pack(sign, exp, mant)
}

// Ldexp returns x * 2**n, truncated toward zero when the result
// is a denormal number.
// It is x.SetExponent(x.Exponent() + n); a denormal x reports MinExponent,
// so Ldexp overflows only when x * 2**n is 2**128 or more in magnitude.
//
// Special cases are:
//
//	Ldexp(±0, n) = ±0
//	Ldexp(±Inf, n) = ±Inf
//	Ldexp(NaN, n) = NaN
func (x BFloat16) Ldexp(n int) BFloat16 {
	if x.IsZero() || x&ExponentMask == ExponentMask {
		return x
	}
	// every finite value over- or underflows well within this range
	const limit = 2 * (mask + shift)
	n = max(-limit, min(n, limit))
	return x.SetExponent(x.Exponent() + n)
}

// Exp2 returns 2**n.
// It is exact for MinExponent-MantissaBits <= n <= MaxExponent,
// +Inf above that range and +0 below.
func Exp2(n int) BFloat16 {
	return One.SetExponent(n)
}

// Frexp breaks x into a normalized fraction and an integral power of two.
// It returns frac and exp satisfying x == frac × 2**exp,
// with the absolute value of frac in the interval [½, 1).
//
// Special cases are:
//
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func (x BFloat16) Frexp() (frac BFloat16, exp int) {
	if x.IsZero() || x&ExponentMask == ExponentMask {
		return x, 0
	}
	sign, e, mant := unpackNormal(x)
	return pack(sign, bias-1, mant), e - bias + 1
}
