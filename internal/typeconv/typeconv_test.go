package typeconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Integers(t *testing.T) {
	n, err := Parse[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n64, err := Parse[int64](" -9000000000 ")
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), n64)

	b, err := Parse[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), b)
}

func TestParse_IntegerFailures(t *testing.T) {
	testCases := []struct {
		name string
		run  func() error
	}{
		{"not a number", func() error { _, err := Parse[int]("abc"); return err }},
		{"empty", func() error { _, err := Parse[int](""); return err }},
		{"fraction into int", func() error { _, err := Parse[int]("4.5"); return err }},
		{"overflow int8", func() error { _, err := Parse[int8]("300"); return err }},
		{"negative uint8", func() error { _, err := Parse[uint8]("-1"); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConversion)
		})
	}
}

func TestParse_Floats(t *testing.T) {
	f, err := Parse[float64]("2.5")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)

	f32, err := Parse[float32]("-0.25")
	require.NoError(t, err)
	assert.InDelta(t, float32(-0.25), f32, 1e-6)
}

func TestParse_Bool(t *testing.T) {
	for _, in := range []string{"true", "True", "TRUE"} {
		v, err := Parse[bool](in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}

	v, err := Parse[bool]("false")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = Parse[bool]("nope")
	assert.ErrorIs(t, err, ErrConversion)
}

func TestParse_CharAndString(t *testing.T) {
	c, err := Parse[Char]("x")
	require.NoError(t, err)
	assert.Equal(t, Char('x'), c)
	assert.Equal(t, "x", c.String())

	c, err = Parse[Char]("é")
	require.NoError(t, err)
	assert.Equal(t, Char('é'), c)

	_, err = Parse[Char]("xy")
	assert.ErrorIs(t, err, ErrConversion)

	s, err := Parse[string]("  kept as is ")
	require.NoError(t, err)
	assert.Equal(t, "  kept as is ", s)
}

type color int

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

func (c color) String() string {
	switch c {
	case colorRed:
		return "Red"
	case colorGreen:
		return "Green"
	case colorBlue:
		return "Blue"
	}
	return "unknown"
}

func (color) Values() []color { return []color{colorRed, colorGreen, colorBlue} }

func TestParseEnum(t *testing.T) {
	c, err := ParseEnum[color]("green")
	require.NoError(t, err)
	assert.Equal(t, colorGreen, c)

	c, err = ParseEnum[color](" BLUE ")
	require.NoError(t, err)
	assert.Equal(t, colorBlue, c)

	_, err = ParseEnum[color]("purple")
	assert.ErrorIs(t, err, ErrConversion)

	_, err = ParseEnum[color]("")
	assert.ErrorIs(t, err, ErrConversion)

	assert.Equal(t, []string{"Red", "Green", "Blue"}, Names[color]())
}

func TestParse_CtyNotation(t *testing.T) {
	n, err := Parse[int]("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	b, err := Parse[bool]("1")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Parse[int]("1e-3")
	assert.ErrorIs(t, err, ErrConversion, "exponent forms must still be whole for integers")
}
