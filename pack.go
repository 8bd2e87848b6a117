package bfloat16

import "math/bits"

// unpack splits x into its sign bit, biased exponent and significand.
// The significand of a normal number carries the implicit bit.
// Denormal numbers report exponent 1, the scale they share with the
// smallest normal number. Infinities and NaNs report exponent 255 and
// the raw fraction.
func unpack(x BFloat16) (sign BFloat16, exp int, mant uint32) {
	sign = x & SignMask
	exp = int(x>>shift) & mask
	mant = uint32(x & MantissaMask)
	switch {
	case exp == mask:
	case exp != 0:
		mant |= implicit
	case mant != 0:
		exp = 1
	}
	return
}

// unpackNormal is like unpack, but denormal significands are shifted up
// to the implicit bit and the exponent may drop below 1.
// x must be finite and nonzero.
func unpackNormal(x BFloat16) (sign BFloat16, exp int, mant uint32) {
	sign, exp, mant = unpack(x)
	if mant < implicit {
		exp, mant = normalize(exp, mant)
	}
	return
}

// normalize shifts mant until its leading one is the implicit bit and
// adjusts exp so that the value is kept. Bits shifted out are dropped.
// mant must not be zero.
func normalize(exp int, mant uint32) (int, uint32) {
	l := bits.Len32(mant)
	if l > shift+1 {
		mant >>= l - (shift + 1)
		exp += l - (shift + 1)
	} else {
		mant <<= shift + 1 - l
		exp -= shift + 1 - l
	}
	return exp, mant
}

// pack builds a bfloat16 value from a sign bit, a biased exponent and a
// significand that may be out of range in either direction.
// Overflow saturates to infinity, underflow to zero.
// A triple unpacked from a NaN packs back to a NaN.
func pack(sign BFloat16, exp int, mant uint32) BFloat16 {
	if exp >= mask && mant != 0 && mant <= MantissaMask {
		return sign | uvnan
	}
	if mant == 0 {
		if exp >= mask {
			return sign | uvinf
		}
		return sign
	}

	exp, mant = normalize(exp, mant)
	if exp >= mask {
		// overflow
		return sign | uvinf
	}
	if exp < 1 {
		// the result is denormal
		n := 1 - exp
		if n > shift {
			// underflow
			return sign
		}
		return sign | BFloat16(mant>>n)
	}
	return sign | BFloat16(exp)<<shift | BFloat16(mant&MantissaMask)
}
