// convert string to bfloat16

package bfloat16

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Parse converts the string s to a bfloat16 value.
// It accepts the syntax of [strconv.ParseFloat], including hexadecimal
// floating-point numbers, "inf", "infinity" and "nan" in any case.
//
// If s is well-formed and near a valid floating-point number, Parse
// returns the nearest bfloat16 value, rounding ties to even.
// The errors that Parse returns have concrete type *strconv.NumError.
// If s is too large for bfloat16, Parse returns ±Inf and
// err.Err = strconv.ErrRange.
func Parse(s string) (BFloat16, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return roundFloat64(f), rangeError(s)
		}
		return 0, syntaxError(s)
	}
	x, halfway := nearest(f)
	if halfway {
		x = breakTie(s, f)
	}
	if x.IsInf(0) && !math.IsInf(f, 0) {
		return x, rangeError(s)
	}
	return x, nil
}

func syntaxError(s string) *strconv.NumError {
	return &strconv.NumError{Func: "bfloat16.Parse", Num: s, Err: strconv.ErrSyntax}
}

func rangeError(s string) *strconv.NumError {
	return &strconv.NumError{Func: "bfloat16.Parse", Num: s, Err: strconv.ErrRange}
}

// breakTie rounds f, which lies exactly halfway between two bfloat16
// values, toward the side of f that s lies on.
// ParseFloat may have rounded s onto the tie, so only s decides.
func breakTie(s string, f float64) BFloat16 {
	if r, ok := exactValue(s); ok {
		switch r.Cmp(new(big.Rat).SetFloat64(f)) {
		case 1:
			f = math.Nextafter(f, math.Inf(1))
		case -1:
			f = math.Nextafter(f, math.Inf(-1))
		}
	}
	return roundFloat64(f)
}

// exactValue returns the exact value of the decimal or hexadecimal number s.
func exactValue(s string) (*big.Rat, bool) {
	if d, err := decimal.NewFromString(s); err == nil {
		return d.Rat(), true
	}
	// hexadecimal mantissas with a binary exponent
	return new(big.Rat).SetString(s)
}

// roundFloat64 rounds f to the nearest bfloat16 value in one step.
// FromFloat64 rounds through float32 instead, which can round twice.
func roundFloat64(f float64) BFloat16 {
	x, _ := nearest(f)
	return x
}

// nearest is roundFloat64 that also reports whether f was
// exactly halfway between two bfloat16 values.
func nearest(f float64) (x BFloat16, halfway bool) {
	const (
		shift64 = 52
		mask64  = 0x7ff
		bias64  = 1023
	)
	b := math.Float64bits(f)
	sign := BFloat16(b>>48) & SignMask
	exp := int(b>>shift64) & mask64
	frac := b & (1<<shift64 - 1)

	switch exp {
	case mask64:
		if frac != 0 {
			return sign | uvnan, false
		}
		return sign | uvinf, false
	case 0:
		// float64 subnormal numbers are far below the bfloat16 range
		return sign, false
	}

	frac |= 1 << shift64
	exp += bias - bias64

	// bits of frac to drop
	n := shift64 - shift
	if exp < 1 {
		// the result is subnormal
		n += 1 - exp
		exp = 1
	}
	if n > shift64+1 {
		// less than half of the smallest subnormal number
		return sign, false
	}

	mant := frac >> n
	rem := frac & (1<<n - 1)
	half := uint64(1) << (n - 1)
	if rem > half || rem == half && mant&1 != 0 {
		// round to nearest even
		mant++
	}
	return pack(sign, exp, uint32(mant)), rem == half
}
