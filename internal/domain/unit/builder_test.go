package unit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuilder(t *testing.T) {
	builder := NewBuilder()
	require.NotNil(t, builder)
	require.NoError(t, builder.Err())
}

func TestBuilder_Build_Success(t *testing.T) {
	reg, err := NewBuilder().
		Base("g", "gram", "grams").
		Unit("kg", "1000 g", "kilogram", "kilograms").
		Unit("t", "1000 kg", "tonne").
		Factor("mg", rat("0.001"), "milligram").
		Build()

	require.NoError(t, err)
	require.True(t, reg.Sealed())
	require.Equal(t, "g", reg.Base().Name())

	tonne, err := reg.Resolve("tonne")
	require.NoError(t, err)
	require.True(t, tonne.Factor().Equal(rat("1000000")), "factor folds through kg into grams")

	mg, err := reg.Resolve("milligram")
	require.NoError(t, err)
	require.Equal(t, "0.001", mg.Factor().String())
}

func TestBuilder_Unit_FractionalAmount(t *testing.T) {
	reg, err := NewBuilder().
		Base("m").
		Unit("in", "0.0254 m").
		Unit("ft", "12 in").
		Build()

	require.NoError(t, err)
	ft, err := reg.Resolve("ft")
	require.NoError(t, err)
	require.Equal(t, "0.3048", ft.Factor().String())
}

func TestBuilder_Unit_FractionDefinition(t *testing.T) {
	reg, err := NewBuilder().
		Base("magic_missile").
		Unit("fireball", "2.5 magic_missile").
		Unit("ember", "2/3 fireball").
		Unit("spark", "1/3 magic_missile").
		Build()

	require.NoError(t, err)
	ember, err := reg.Resolve("ember")
	require.NoError(t, err)
	require.Equal(t, "5/3", ember.Factor().String())

	spark, err := reg.Resolve("spark")
	require.NoError(t, err)
	require.True(t, spark.Factor().Mul(rat("3")).Equal(rat("1")), "1/3 is kept exactly")
}

func TestBuilder_Build_NoBase(t *testing.T) {
	_, err := NewBuilder().Build()

	require.ErrorIs(t, err, ErrNoBaseUnit)
}

func TestBuilder_Unit_UnknownReference(t *testing.T) {
	_, err := NewBuilder().
		Base("g").
		Unit("t", "1000 kg").
		Build()

	require.ErrorIs(t, err, ErrUnknownUnit)
	require.Contains(t, err.Error(), "unit t")
}

func TestBuilder_Unit_MalformedDefinition(t *testing.T) {
	for _, def := range []string{"", "1000", "1000 g extra", "lots g", "1/0 g", "2/ g", "2 / 3 g"} {
		_, err := NewBuilder().Base("g").Unit("kg", def).Build()
		require.ErrorIs(t, err, ErrInvalidDefinition, def)
	}
}

func TestBuilder_KeepsFirstError(t *testing.T) {
	builder := NewBuilder().
		Base("g").
		Base("kg").
		Unit("t", "nope")

	require.ErrorIs(t, builder.Err(), ErrMultipleBase)
	_, err := builder.Build()
	require.ErrorIs(t, err, ErrMultipleBase)
}
