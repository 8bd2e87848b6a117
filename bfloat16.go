// Package bfloat16 implements the bfloat16 ("brain floating point") format:
// the upper 16 bits of an IEEE 754 binary32 value, with the same 8-bit
// exponent and bias and a 7-bit mantissa.
//
// All arithmetic is done on integers and never delegates to float32.
// Every operation is a pure function of its operands.
package bfloat16

import (
	"math"
)

// BFloat16 is a bfloat16 value stored as its bit pattern.
type BFloat16 uint16

const (
	SignMask     = 0x8000 // sign bit
	ExponentMask = 0x7f80 // biased exponent field
	MantissaMask = 0x007f // fraction field

	ExponentBias = 127
	ExponentBits = 8
	MantissaBits = 7
)

const (
	shift    = MantissaBits
	mask     = 1<<ExponentBits - 1
	bias     = ExponentBias
	implicit = 1 << shift
)

// Special values.
const (
	PositiveInfinity BFloat16 = 0x7f80
	NegativeInfinity BFloat16 = 0xff80
	NaNValue         BFloat16 = 0x7fc0 // canonical quiet NaN
	PositiveZero     BFloat16 = 0x0000
	NegativeZero     BFloat16 = 0x8000

	One             BFloat16 = 0x3f80
	MaxValue        BFloat16 = 0x7f7f // 0x1.fep+127
	SmallestNormal  BFloat16 = 0x0080 // 0x1p-126
	SmallestNonzero BFloat16 = 0x0001 // 0x1p-133
)

const (
	uvnan    = NaNValue
	uvinf    = PositiveInfinity
	uvneginf = NegativeInfinity
)

// FromBits returns the bfloat16 value with the bit pattern b.
func FromBits(b uint16) BFloat16 {
	return BFloat16(b)
}

// Bits returns the bit pattern of x.
func (x BFloat16) Bits() uint16 {
	return uint16(x)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) BFloat16 {
	if sign >= 0 {
		return uvinf
	}
	return uvneginf
}

// NaN returns the canonical quiet NaN.
func NaN() BFloat16 {
	return uvnan
}

// FromFloat32 returns the bfloat16 value nearest to f,
// rounding ties to even.
func FromFloat32(f float32) BFloat16 {
	b := math.Float32bits(f)
	if b&0x7fffffff > 0x7f800000 {
		// NaN. A payload in the low half would carry into infinity below.
		return BFloat16(b>>16)&SignMask | uvnan
	}
	b += 0x7fff + (b>>16)&1 // round to nearest even
	return BFloat16(b >> 16)
}

// FromFloat64 returns the bfloat16 value nearest to f.
// f is rounded to float32 first.
func FromFloat64(f float64) BFloat16 {
	return FromFloat32(float32(f))
}

// Float32 returns the float32 representation of x. It is exact.
func (x BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(x) << 16)
}

// Float64 returns the float64 representation of x. It is exact.
func (x BFloat16) Float64() float64 {
	return float64(x.Float32())
}

// Signbit reports whether x is negative or negative zero.
func (x BFloat16) Signbit() bool {
	return x&SignMask != 0
}

// IsZero reports whether x is +0 or -0.
func (x BFloat16) IsZero() bool {
	return x&^SignMask == 0
}

// Abs returns the absolute value of x.
func (x BFloat16) Abs() BFloat16 {
	return x &^ SignMask
}

// Neg returns -x. Only the sign bit changes, for NaN too.
func (x BFloat16) Neg() BFloat16 {
	return x ^ SignMask
}

// Class is the category of a bfloat16 bit pattern.
type Class int

const (
	ClassZero Class = iota
	ClassDenormal
	ClassNormal
	ClassInf
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassDenormal:
		return "denormal"
	case ClassNormal:
		return "normal"
	case ClassInf:
		return "inf"
	case ClassNaN:
		return "nan"
	}
	return "unknown"
}

// Class returns the category of x. Every bit pattern has exactly one.
func (x BFloat16) Class() Class {
	exp := (x >> shift) & mask
	frac := x & MantissaMask
	switch {
	case exp == 0 && frac == 0:
		return ClassZero
	case exp == 0:
		return ClassDenormal
	case exp == mask && frac == 0:
		return ClassInf
	case exp == mask:
		return ClassNaN
	}
	return ClassNormal
}
