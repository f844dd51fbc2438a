package value

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse_Integers(t *testing.T) {
	for _, src := range []any{1, int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1), uint16(1), uint32(1), uint64(1)} {
		d, err := Parse(src)
		require.NoError(t, err, "%T", src)
		require.Equal(t, "1", d.String(), "%T", src)
	}
}

func TestParse_Strings(t *testing.T) {
	d, err := Parse("2.3")
	require.NoError(t, err)
	require.True(t, d.Equal(MustParse("2.3")))
	require.Equal(t, "2.3", d.String())

	d, err = Parse("  5 ")
	require.NoError(t, err)
	require.Equal(t, "5", d.String())
}

func TestParse_StringKeepsAllDigits(t *testing.T) {
	d, err := Parse("12345678901234567890.123456789012345678901")
	require.NoError(t, err)
	require.Equal(t, "12345678901234567890.123456789012345678901", d.String())
}

func TestParse_FloatGoesThroughText(t *testing.T) {
	d, err := Parse(1.2345)
	require.NoError(t, err)
	require.Equal(t, "1.2345", d.String())

	d, err = Parse(9.1234572342342)
	require.NoError(t, err)
	require.True(t, d.Equal(MustParse("9.1234572342342")))
	require.Equal(t, "9.1234572342342", d.String())

	// decimal.NewFromFloat32 would expose float32 widening noise
	d, err = Parse(float32(0.1))
	require.NoError(t, err)
	require.Equal(t, "0.1", d.String())
}

func TestParse_Invalid(t *testing.T) {
	cases := []any{nil, "", "   ", "abc", "1.2.3", math.NaN(), math.Inf(1), math.Inf(-1), []int{1}, (*Decimal)(nil)}
	for _, src := range cases {
		_, err := Parse(src)
		require.ErrorIs(t, err, ErrInvalidValue, "%#v", src)
	}
}

func TestParse_PassesDecimalsThrough(t *testing.T) {
	d, err := Parse(decimal.RequireFromString("4.50"))
	require.NoError(t, err)
	require.Equal(t, "4.5", d.String())

	again, err := Parse(d)
	require.NoError(t, err)
	require.True(t, again.Equal(d))

	ptr, err := Parse(&d)
	require.NoError(t, err)
	require.True(t, ptr.Equal(d))
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { MustParse("nope") })
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank(" \t"))
	require.False(t, IsBlank("0"))
	require.False(t, IsBlank(0))
	require.False(t, IsBlank(nil))
}

func TestIsNil(t *testing.T) {
	var d *Decimal
	var dd *decimal.Decimal
	require.True(t, IsNil(nil))
	require.True(t, IsNil(d))
	require.True(t, IsNil(dd))
	require.False(t, IsNil(0))
	require.False(t, IsNil(""))
	require.False(t, IsNil(&Decimal{}))
}

func TestCompare(t *testing.T) {
	one := MustParse(1)
	two := MustParse("2.0")

	require.Equal(t, -1, one.Cmp(two))
	require.Equal(t, 1, two.Cmp(one))
	require.Equal(t, 0, two.Cmp(MustParse(2)))
	require.True(t, one.LessThan(two))
	require.True(t, two.GreaterThan(one))
	require.True(t, two.Equal(MustParse("2.000")))
}

func TestCmpLiteral(t *testing.T) {
	ten := MustParse(10)

	got, err := ten.CmpLiteral(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	got, err = ten.CmpLiteral(0.00)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	got, err = MustParse(-1).CmpLiteral(decimal.Zero)
	require.NoError(t, err)
	require.Equal(t, -1, got)

	_, err = ten.CmpLiteral("x")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestZeroAndSign(t *testing.T) {
	var zero Decimal
	require.True(t, zero.IsZero())
	require.True(t, Zero().IsZero())
	require.True(t, MustParse("0.000").IsZero())
	require.False(t, One().IsZero())
	require.Equal(t, 0, zero.Sign())
	require.Equal(t, -1, MustParse(-3).Sign())
	require.Equal(t, "3", MustParse(-3).Neg().String())
}

func TestTextMarshaling(t *testing.T) {
	b, err := MustParse("1.50").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1.5", string(b))

	var d Decimal
	require.NoError(t, d.UnmarshalText([]byte("42.01")))
	require.Equal(t, "42.01", d.String())
	require.ErrorIs(t, d.UnmarshalText([]byte("")), ErrInvalidValue)
}

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func TestProperty_FloatParseMatchesShortestText(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := rapid.Float64Range(-1e12, 1e12).Draw(rt, "f")

		fromFloat, err := Parse(f)
		require.NoError(rt, err)

		fromText, err := Parse(decimal.NewFromFloat(f).String())
		require.NoError(rt, err)
		require.True(rt, fromFloat.Equal(fromText), "float %v parsed as %s", f, fromFloat)
	})
}
