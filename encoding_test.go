package bfloat16

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalText(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x    BFloat16
		text string
	}{
		{0x0000, "0"},
		{0x8000, "-0"},
		{One, "1"},
		{0x4049, "3.14"},
		{PositiveInfinity, "+Inf"},
		{NegativeInfinity, "-Inf"},
		{NaNValue, "NaN"},
	}
	for _, test := range tests {
		text, err := test.x.MarshalText()
		a.NoError(err)
		a.Equal(test.text, string(text))

		var y BFloat16
		a.NoError(y.UnmarshalText(text))
		if test.x.IsNaN() {
			a.True(y.IsNaN())
		} else {
			a.Equal(test.x, y)
		}
	}

	var y BFloat16
	a.Error(y.UnmarshalText([]byte("one")))
}

func TestJSON(t *testing.T) {
	type weights struct {
		Scale BFloat16   `json:"scale"`
		Bias  *BFloat16  `json:"bias,omitempty"`
		Row   []BFloat16 `json:"row"`
	}

	w := weights{
		Scale: FromFloat64(0.5),
		Row:   []BFloat16{One, NegativeZero, PositiveInfinity, NaNValue, FromFloat64(0.1)},
	}
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scale":0.5,"row":[1,-0,"+Inf","NaN",0.1]}`, string(data))

	var got weights
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, w.Scale, got.Scale)
	assert.Nil(t, got.Bias)
	require.Len(t, got.Row, len(w.Row))
	assert.Equal(t, One, got.Row[0])
	assert.Equal(t, NegativeZero, got.Row[1])
	assert.Equal(t, PositiveInfinity, got.Row[2])
	assert.True(t, got.Row[3].IsNaN())
	assert.Equal(t, FromFloat64(0.1), got.Row[4])
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)

	x := One
	a.NoError(json.Unmarshal([]byte(`null`), &x))
	a.Equal(One, x, "null leaves the value alone")

	a.NoError(json.Unmarshal([]byte(`"-Inf"`), &x))
	a.Equal(NegativeInfinity, x)

	a.NoError(json.Unmarshal([]byte(`"0x1p-133"`), &x))
	a.Equal(SmallestNonzero, x)

	a.NoError(json.Unmarshal([]byte(`2.5e2`), &x))
	a.Equal(FromFloat64(250), x)

	a.Error(json.Unmarshal([]byte(`true`), &x))
	a.Error(json.Unmarshal([]byte(`"abc"`), &x))
	a.Error(x.UnmarshalJSON(nil))
	a.Error(x.UnmarshalJSON([]byte(`"unterminated`)))

	var v struct {
		X BFloat16 `json:"x"`
	}
	err := json.Unmarshal([]byte(`{"x": 1e39}`), &v)
	a.Error(err)
}

func TestByteOrder(t *testing.T) {
	a := assert.New(t)
	x := FromFloat64(-2.5) // 0xc020

	var b [2]byte
	PutLittleEndian(b[:], x)
	a.Equal([2]byte{0x20, 0xc0}, b)
	a.Equal(x, LittleEndian(b[:]))

	PutBigEndian(b[:], x)
	a.Equal([2]byte{0xc0, 0x20}, b)
	a.Equal(x, BigEndian(b[:]))

	// the upper half of a little-endian float32
	f := []byte{0x00, 0x00, 0x80, 0x3f}
	a.Equal(One, LittleEndian(f[2:]))
}
