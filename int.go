package bfloat16

import "github.com/shogo82148/int128"

// FromUint128 returns the bfloat16 value nearest to u,
// rounding ties to even. Values of 2**128 - 2**119 and above round to +Inf.
func FromUint128(u int128.Uint128) BFloat16 {
	return fromUint128(0, u)
}

// FromInt64 returns the bfloat16 value nearest to i,
// rounding ties to even.
func FromInt64(i int64) BFloat16 {
	if i < 0 {
		return fromUint128(SignMask, int128.Uint128{L: -uint64(i)})
	}
	return fromUint128(0, int128.Uint128{L: uint64(i)})
}

func fromUint128(sign BFloat16, u int128.Uint128) BFloat16 {
	l := u.Len()
	if l <= shift+1 {
		// exact
		return pack(sign, bias+shift, uint32(u.L))
	}

	// keep the leading shift+1 bits, round the remaining n bits
	n := l - (shift + 1)
	mant := uint32(u.Rsh(uint(n)).L)
	half := u.Rsh(uint(n-1)).L&1 != 0
	sticky := u.TrailingZeros() < n-1
	if half && (sticky || mant&1 != 0) {
		mant++
	}
	return pack(sign, bias+shift+n, mant)
}

// Uint128 returns the integer part of x, truncated toward zero.
// ok is false if x is NaN, an infinity, or less than or equal to -1.
func (x BFloat16) Uint128() (u int128.Uint128, ok bool) {
	if x.IsNaN() || x.IsInf(0) {
		return int128.Uint128{}, false
	}
	if x.IsZero() {
		return int128.Uint128{}, true
	}
	sign, exp, mant := unpack(x)
	n := exp - bias - shift // x = mant * 2**n
	switch {
	case n >= 0:
		u = int128.Uint128{L: uint64(mant)}.Lsh(uint(n))
	case -n < 32:
		u = int128.Uint128{L: uint64(mant >> -n)}
	}
	if sign != 0 && (u.H != 0 || u.L != 0) {
		return int128.Uint128{}, false
	}
	return u, true
}

// Int64 returns the integer part of x, truncated toward zero.
// ok is false if x is NaN, an infinity, or out of the range of int64.
func (x BFloat16) Int64() (i int64, ok bool) {
	u, ok := x.Abs().Uint128()
	if !ok || u.H != 0 {
		return 0, false
	}
	if x&SignMask != 0 {
		if u.L > 1<<63 {
			return 0, false
		}
		return -int64(u.L), true
	}
	if u.L >= 1<<63 {
		return 0, false
	}
	return int64(u.L), true
}
