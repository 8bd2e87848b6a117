// convert bfloat16 to string

package bfloat16

import (
	"bytes"
	"strconv"
)

// String returns the shortest decimal representation of x that parses
// back to x, in the 'g' format.
func (x BFloat16) String() string {
	return x.Text('g', -1)
}

// Text converts x to a string, according to the format fmt and precision
// prec. The formats and precisions are those of [strconv.FormatFloat];
// a negative prec selects the fewest digits that parse back to x.
func (x BFloat16) Text(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 16), fmt, prec))
}

// Append appends the string form of x, as generated by x.Text, to buf
// and returns the extended buffer.
func (x BFloat16) Append(buf []byte, fmt byte, prec int) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "NaN"...)
	case x == uvinf:
		return append(buf, "+Inf"...)
	case x == uvneginf:
		return append(buf, "-Inf"...)
	}

	switch fmt {
	case 'b':
		return x.appendBin(buf)
	case 'x', 'X':
		return x.appendHex(buf, fmt, prec)
	}
	if prec < 0 {
		prec = x.shortest(fmt)
	}
	// x.Float64() is exact, so this rounds only once.
	return strconv.AppendFloat(buf, x.Float64(), fmt, prec, 64)
}

// shortest returns the precision for fmt that yields the fewest
// significant digits which still parse back to x.
func (x BFloat16) shortest(fmt byte) int {
	var buf [32]byte
	f := x.Float64()
	digits, exp10 := 1, 0
	if !x.IsZero() {
		// 4 significant digits always tell bfloat16 values apart
		const maxDigits = 4
		var s []byte
		for ; digits < maxDigits; digits++ {
			s = strconv.AppendFloat(buf[:0], f, 'e', digits-1, 64)
			if y, err := Parse(string(s)); err == nil && y == x {
				break
			}
		}
		s = strconv.AppendFloat(buf[:0], f, 'e', digits-1, 64)
		exp10, _ = strconv.Atoi(string(s[bytes.IndexByte(s, 'e')+1:]))
	}

	switch fmt {
	case 'e', 'E':
		return digits - 1
	case 'f':
		return max(digits-1-exp10, 0)
	case 'g', 'G':
		if exp10 >= digits && exp10 < 6 {
			// an integer below 1e6; print all of its digits
			// rather than an exponent
			return exp10 + 1
		}
	}
	return digits
}

func (x BFloat16) appendBin(buf []byte) []byte {
	if x&SignMask != 0 {
		buf = append(buf, '-')
	}
	exp := int(x>>shift&mask) - bias
	frac := x & MantissaMask

	if exp == -bias {
		exp++
	} else {
		frac |= 1 << shift
	}
	exp -= shift

	switch {
	case frac >= 100:
		buf = append(buf, byte((frac/100)%10)+'0')
		fallthrough
	case frac >= 10:
		buf = append(buf, byte((frac/10)%10)+'0')
		fallthrough
	default:
		buf = append(buf, byte(frac%10)+'0')
	}

	buf = append(buf, 'p')
	if exp >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		exp = -exp
	}
	return appendExp(buf, exp, 1)
}

func (x BFloat16) appendHex(buf []byte, fmt byte, prec int) []byte {
	if x&SignMask != 0 {
		buf = append(buf, '-')
	}
	buf = append(buf, '0', fmt) // 0x or 0X
	if x.IsZero() {
		buf = append(buf, '0')
		if prec >= 1 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, fmt-('x'-'p'))
		buf = append(buf, '+', '0', '0')
		return buf
	}

	// normalize x; the significand is 1.ff with two hex digits of fraction
	_, exp, frac := unpackNormal(x)
	exp -= bias
	frac <<= 1
	digits := 2

	if prec >= 0 && prec < digits {
		// round to nearest even
		n := 4 * (digits - prec)
		frac += (1<<(n-1) - 1) + ((frac >> n) & 1)
		frac >>= n
		if frac >= 2<<(4*prec) {
			exp++
			frac >>= 1
		}
		digits = prec
	} else if prec < 0 {
		// drop trailing zeros
		for digits > 0 && frac&0xf == 0 {
			frac >>= 4
			digits--
		}
	}

	buf = append(buf, '1')
	if digits > 0 || prec > 0 {
		buf = append(buf, '.')
	}
	for i := digits - 1; i >= 0; i-- {
		buf = append(buf, nibble(fmt, uint16(frac>>(4*i))))
	}
	for i := digits; i < prec; i++ {
		buf = append(buf, '0')
	}

	buf = append(buf, fmt-('x'-'p'))
	if exp >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		exp = -exp
	}
	return appendExp(buf, exp, 2)
}

// appendExp appends the decimal exponent exp using at least width digits.
func appendExp(buf []byte, exp, width int) []byte {
	switch {
	case exp >= 100:
		buf = append(buf, byte(exp/100)+'0')
		fallthrough
	case exp >= 10 || width >= 2:
		buf = append(buf, byte((exp/10)%10)+'0')
		fallthrough
	default:
		buf = append(buf, byte(exp%10)+'0')
	}
	return buf
}

func nibble(fmt byte, x uint16) byte {
	x &= 0xf
	if x < 10 {
		return '0' + byte(x)
	}
	return ('A' + byte(x-10)) | (fmt & ('a' - 'A'))
}
