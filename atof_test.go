package bfloat16

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"testing"
)

// exact returns the exact bfloat16 representation of f.
// it panics if f doesn't have an exact bfloat16 representation.
func exact(f float64) BFloat16 {
	ret := FromFloat64(f)
	if cmp.Compare(ret.Float64(), f) != 0 {
		panic(fmt.Sprintf("%f doesn't have exact bfloat16 representation", f))
	}
	return ret
}

func TestParse(t *testing.T) {
	tests := []struct {
		s string
		x BFloat16
	}{
		{"0", 0},
		{"-0", 0x8000},
		{"+Inf", Inf(1)},
		{"-Inf", Inf(-1)},
		{"+infinity", Inf(1)},
		{"-infinity", Inf(-1)},

		// greater than one
		{"1", exact(1)},
		{"2", exact(2)},
		{"256", exact(256)},
		{"65536", exact(65536)},
		{"3.39e38", MaxValue},

		// 3.395e38 is greater than the maximum finite value but it's ok,
		// because it rounds down to it.
		{"3.395e38", MaxValue},

		// less than one
		{"0.5", exact(0.5)},
		{"0.25", exact(0.25)},
		{"0.1", 0x3dcd},
		{"1.1754943508222875e-38", exact(0x1p-126)},

		// denormal numbers
		{"5.877471754111438e-39", exact(0x1p-127)},
		{"9.183549615799121e-41", exact(0x1p-133)},
		{"1e-45", 0},
		{"-1e-45", 0x8000},
		{"1e-50", 0},

		// test rounding
		{"1.0078125", exact(1.0078125)}, // minimum value greater than one
		{"1.00390625", exact(1)},
		{"1.00390625000001", exact(1.0078125)}, // rounds once, not through float32
		{"1.0117187499999", exact(1.0078125)},
		{"1.01171875", exact(1.015625)},

		// float64 rounds these onto a tie; the digits decide
		{"1.0039062500000001", exact(1.0078125)},
		{"-1.0039062500000001", exact(-1.0078125)},
		{"1.0117187499999999999", exact(1.0078125)},
		{"100390625000000001e-17", exact(1.0078125)},
		{"1.00390625e0", exact(1)},

		// hexadecimal
		{"0x1p0", exact(1)},
		{"0x1.fep+127", MaxValue},
		{"0x1.fefffp+127", MaxValue},  // round down
		{"0x1p-126", exact(0x1p-126)}, // minimum normal
		{"0x1p-133", exact(0x1p-133)}, // minimum denormal greater than zero
		{"0x1p-134", 0},               // tie, rounds to even
		{"0x1.0000000001p-134", 0x0001},
		{"0x1.8p-133", 0x0002},

		// test rounding
		{"0x1.00p0", exact(0x1.00p0)},
		{"0x1.01p0", exact(0x1.00p0)},
		{"0x1.02p0", exact(0x1.02p0)},
		{"0x1.03p0", exact(0x1.04p0)},
		{"0x1.05p0", exact(0x1.04p0)},
		{"0x1.06p0", exact(0x1.06p0)},
		{"0x1.07p0", exact(0x1.08p0)},
		{"0x1.0100000000000000001p0", exact(0x1.02p0)},
		{"0x1.fefffffffffffffffp+127", MaxValue},

		// underscores are allowed only with a base prefix
		{"0x1_0p0", exact(16)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if got != tt.x {
			t.Errorf("%q: expected %04x, got %04x", tt.s, uint16(tt.x), uint16(got))
		}
	}
}

func TestParse_AboveHalfway(t *testing.T) {
	for bits := 0x0000; bits < 0x7f7f; bits++ {
		x := FromBits(uint16(bits))
		next := FromBits(uint16(bits + 1))
		mid := (x.Float64() + next.Float64()) / 2

		// every digit of mid, then one more
		s := new(big.Float).SetFloat64(mid).Text('e', 200)
		i := strings.IndexByte(s, 'e')
		s = s[:i] + "1" + s[i:]

		if got, err := Parse(s); err != nil || got != next {
			t.Errorf("%s: expected %04x, got %04x, %v", s, uint16(next), uint16(got), err)
		}
		if got, err := Parse("-" + s); err != nil || got != next.Neg() {
			t.Errorf("-%s: expected %04x, got %04x, %v", s, uint16(next.Neg()), uint16(got), err)
		}
	}
}

func TestParse_NaN(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "NAN"} {
		got, err := Parse(s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", s, err)
		}
		if !got.IsNaN() {
			t.Errorf("%q: expected NaN, got %04x", s, uint16(got))
		}
	}
}

func TestParse_overflow(t *testing.T) {
	test := []string{
		"3.4e38",
		"3.3962e38",
		"0x1.ffp+127",
		"1e39",
		"1e400",
	}

	for _, tt := range test {
		got, err := Parse(tt)
		if !errors.Is(err, strconv.ErrRange) {
			t.Errorf("%q: expected overflow error, got %v", tt, err)
		}
		if got != uvinf {
			t.Errorf("%q: expected +Inf, got %x", tt, got)
		}
	}

	got, err := Parse("-1e39")
	if !errors.Is(err, strconv.ErrRange) || got != uvneginf {
		t.Errorf("expected -Inf and a range error, got %x, %v", got, err)
	}
}

func TestParse_syntax(t *testing.T) {
	test := []string{
		"",
		"abc",
		"1x",
		"1e",
		"0x",
		"1_000",
		"--1",
	}

	for _, tt := range test {
		_, err := Parse(tt)
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("%q: expected *strconv.NumError, got %v", tt, err)
			continue
		}
		if numErr.Func != "bfloat16.Parse" || numErr.Num != tt || numErr.Err != strconv.ErrSyntax {
			t.Errorf("%q: unexpected error %v", tt, err)
		}
	}
}

func TestRoundFloat64_All(t *testing.T) {
	for bits := 0; bits < 1<<16; bits++ {
		x := FromBits(uint16(bits))
		if x.IsNaN() {
			continue
		}
		if got := roundFloat64(x.Float64()); got != x {
			t.Errorf("%04x: expected %04x, got %04x", bits, bits, uint16(got))
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("3.14")
	}
}
