package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2/3", "2/3"},
		{" 1/8 ", "0.125"},
		{"0.5/2", "0.25"},
		{"12", "12"},
		{"0.0254", "0.0254"},
		{"10/5", "2"},
		{"-1/3", "-1/3"},
	}
	for _, tt := range tests {
		q, err := ParseRatio(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, q.String(), tt.in)
	}
}

func TestParseRatio_Invalid(t *testing.T) {
	for _, in := range []string{"", "/3", "2/", "two/3", "1/2/3", "1 / x"} {
		_, err := ParseRatio(in)
		require.ErrorIs(t, err, ErrInvalidRatio, in)
	}

	_, err := ParseRatio("1/0")
	require.ErrorIs(t, err, ErrInvalidRatio)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestNewRatio(t *testing.T) {
	q, err := NewRatio(MustParse("0.0254"), MustParse("0.3048"))
	require.NoError(t, err)
	require.Equal(t, "1/12", q.String())

	_, err = NewRatio(One(), Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRatio_ZeroValue(t *testing.T) {
	var q Ratio
	require.True(t, q.IsZero())
	require.Equal(t, "0", q.String())
	require.True(t, q.Equal(Zero().Ratio()))

	_, err := One().Ratio().Quo(q)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRatio_Exact(t *testing.T) {
	d, ok := MustParseRatio("1/8").Exact()
	require.True(t, ok)
	require.Equal(t, "0.125", d.String())
	require.Equal(t, int32(-3), d.Decimal().Exponent())

	d, ok = MustParseRatio("100").Exact()
	require.True(t, ok)
	require.Equal(t, "100", d.String())

	_, ok = MustParseRatio("1/3").Exact()
	require.False(t, ok)
	_, ok = MustParseRatio("7/12").Exact()
	require.False(t, ok)
}

func TestRatio_Decimal(t *testing.T) {
	require.Equal(t, "0.33333", MustParseRatio("1/3").Decimal(5).String())
	require.Equal(t, "0.66667", MustParseRatio("2/3").Decimal(5).String())
	require.Equal(t, "-0.66667", MustParseRatio("-2/3").Decimal(5).String())
	require.Equal(t, "0.125", MustParseRatio("1/8").Decimal(1).String(), "finite expansions ignore precision")
}

func TestRatio_Arithmetic(t *testing.T) {
	third := MustParseRatio("1/3")
	three := MustParse(3).Ratio()

	require.True(t, third.Mul(three).Equal(One().Ratio()))

	q, err := One().Ratio().Quo(three)
	require.NoError(t, err)
	require.True(t, q.Equal(third))

	require.Equal(t, -1, third.Cmp(MustParseRatio("0.3334")))
	require.Equal(t, 1, third.Cmp(MustParseRatio("0.3333")))
	require.Equal(t, -1, MustParseRatio("-1/3").Sign())
}

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func drawDecimal(rt *rapid.T, label string, lo int64) Decimal {
	n := rapid.Int64Range(lo, 1_000_000).Draw(rt, label)
	scale := rapid.IntRange(0, 6).Draw(rt, label+"-scale")
	return Decimal{d: decimal.New(n, int32(-scale))}
}

func TestProperty_MulThenQuoIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := drawDecimal(rt, "x", -1_000_000)
		f := drawDecimal(rt, "f", 1)
		g := drawDecimal(rt, "g", 1)

		factor, err := NewRatio(f, g)
		require.NoError(rt, err)

		back, err := x.Ratio().Mul(factor).Quo(factor)
		require.NoError(rt, err)
		require.True(rt, back.Equal(x.Ratio()))

		d, ok := back.Exact()
		require.True(rt, ok)
		require.True(rt, d.Equal(x), "%s * %s / %s = %s", x, factor, factor, d)
	})
}

func TestProperty_DecimalRoundTripsThroughRatio(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := drawDecimal(rt, "x", -1_000_000)

		require.True(rt, x.Ratio().Decimal(1).Equal(x))

		parsed, err := ParseRatio(x.String())
		require.NoError(rt, err)
		require.True(rt, parsed.Equal(x.Ratio()))
	})
}
