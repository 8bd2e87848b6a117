package bfloat16

import (
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

var (
	_ encoding.TextMarshaler   = BFloat16(0)
	_ encoding.TextUnmarshaler = (*BFloat16)(nil)
	_ json.Marshaler           = BFloat16(0)
	_ json.Unmarshaler         = (*BFloat16)(nil)
)

// MarshalText implements [encoding.TextMarshaler].
// The text is x.String().
func (x BFloat16) MarshalText() ([]byte, error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using Parse.
func (x *BFloat16) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON implements [json.Marshaler].
// Finite values are JSON numbers; NaN and infinities, which JSON numbers
// cannot express, are the strings "NaN", "+Inf" and "-Inf".
func (x BFloat16) MarshalJSON() ([]byte, error) {
	if x.IsNaN() || x.IsInf(0) {
		return strconv.AppendQuote(nil, x.String()), nil
	}
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
// It accepts a JSON number or a string holding anything Parse accepts.
// null is a no-op.
func (x *BFloat16) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("bfloat16: empty json")
	}
	switch data[0] {
	case 'n':
		if string(data) == "null" {
			return nil
		}
	case '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("bfloat16: invalid json string %s: %w", data, err)
		}
		return x.UnmarshalText([]byte(s))
	}
	return x.UnmarshalText(data)
}

// LittleEndian decodes a bfloat16 value from the first two bytes of b,
// least significant byte first.
func LittleEndian(b []byte) BFloat16 {
	return BFloat16(binary.LittleEndian.Uint16(b))
}

// PutLittleEndian encodes x into the first two bytes of b,
// least significant byte first.
func PutLittleEndian(b []byte, x BFloat16) {
	binary.LittleEndian.PutUint16(b, uint16(x))
}

// BigEndian decodes a bfloat16 value from the first two bytes of b,
// most significant byte first.
func BigEndian(b []byte) BFloat16 {
	return BFloat16(binary.BigEndian.Uint16(b))
}

// PutBigEndian encodes x into the first two bytes of b,
// most significant byte first.
func PutBigEndian(b []byte, x BFloat16) {
	binary.BigEndian.PutUint16(b, uint16(x))
}
