package bfloat16

import "math"

// xorshift32 is a fast deterministic generator for benchmarks and
// randomized tests.
type xorshift32 uint32

func newXorshift32() *xorshift32 {
	x := xorshift32(2463534242)
	return &x
}

func (x *xorshift32) Uint32() uint32 {
	v := *x
	v ^= v << 13
	v ^= v >> 17
	v ^= v << 5
	*x = v
	return uint32(v)
}

func (x *xorshift32) Float32() float32 {
	return math.Float32frombits(x.Uint32())
}

// BFloat16Pair returns two bit patterns taken from one 32-bit draw.
func (x *xorshift32) BFloat16Pair() (BFloat16, BFloat16) {
	v := x.Uint32()
	return BFloat16(v), BFloat16(v >> 16)
}

type xorshift64 uint64

func newXorshift64() *xorshift64 {
	x := xorshift64(88172645463325252)
	return &x
}

func (x *xorshift64) Uint64() uint64 {
	v := *x
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = v
	return uint64(v)
}

func (x *xorshift64) Float64() float64 {
	return math.Float64frombits(x.Uint64())
}
