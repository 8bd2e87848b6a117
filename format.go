package bfloat16

import "fmt"

var _ fmt.Formatter = BFloat16(0)

// Format implements [fmt.Formatter].
// It accepts the verbs 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X' and 'v',
// and the flags '+', ' ' and '-' and width.
func (x BFloat16) Format(s fmt.State, verb rune) {
	switch verb {
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bfloat16.BFloat16=%s)", verb, x.String())
		return
	}
	if x.IsNaN() {
		s.Write([]byte("NaN"))
		return
	}

	var prefix []byte
	var data []byte

	// sign
	if x&SignMask != 0 {
		prefix = append(prefix, '-')
		x &^= SignMask
	} else {
		if s.Flag('+') {
			prefix = append(prefix, '+')
		} else if s.Flag(' ') {
			prefix = append(prefix, ' ')
		}
	}

	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}
	switch verb {
	case 'b':
		data = x.appendBin(data)
	case 'e', 'E', 'f', 'g', 'G', 'x', 'X':
		data = x.Append(data, byte(verb), prec)
	case 'F':
		data = x.Append(data, 'f', prec)
	case 'v':
		data = x.Append(data, 'g', -1)
	}
	if x == uvinf {
		data = append(data[:0], "Inf"...)
		if len(prefix) == 0 {
			prefix = append(prefix, '+')
		}
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		n := len(prefix) + len(data)
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			buf[0] = ' '
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
		} else {
			buf[0] = ' '
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}
