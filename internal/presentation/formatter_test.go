package presentation

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sahidursuman/measured/internal/measurable"
	"github.com/sahidursuman/measured/internal/testutil"
)

var plain = Theme{Highlight: "#54A0FF", Subtle: "#696969", Error: "#FF8787"}

func TestFormatConversion_Text(t *testing.T) {
	var buf bytes.Buffer
	from := testutil.Magic().MustNew(1, "ultima")
	to, err := from.ConvertTo("fire")
	require.NoError(t, err)

	require.NoError(t, NewFormatter(&buf, FormatText, plain).FormatConversion(FromConversion(from, to)))

	require.Equal(t, "1 ultima = 40 fireball\n", buf.String())
}

func TestFormatConversion_JSON(t *testing.T) {
	var buf bytes.Buffer
	from := testutil.Magic().MustNew("2.5", "magic_missiles")
	to, err := from.ConvertTo("fireball")
	require.NoError(t, err)

	require.NoError(t, NewFormatter(&buf, FormatJSON, plain).FormatConversion(FromConversion(from, to)))

	require.JSONEq(t, `{
		"kind": "Magic",
		"from": {"kind": "Magic", "value": "2.5", "unit": "magic_missile"},
		"to": {"kind": "Magic", "value": "1", "unit": "fireball"}
	}`, buf.String())

	require.NoError(t, measurable.Register(testutil.Magic()))
	var got ConversionDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "Magic", got.Kind)
	require.Same(t, testutil.Magic(), got.To.Kind())
	require.Equal(t, "1 fireball", got.To.String())
	require.True(t, got.From.Equal(from))
}

func TestFromComparison(t *testing.T) {
	magic := testutil.Magic()
	tests := []struct {
		left, right string
		result      int
		relation    string
	}{
		{"arcane", "ultima", -1, "<"},
		{"ultima", "arcane", 1, ">"},
		{"fireball", "fire", 0, "="},
	}
	for _, tt := range tests {
		left := magic.MustNew(1, tt.left)
		right := magic.MustNew(1, tt.right)
		result, err := left.Compare(right)
		require.NoError(t, err)

		dto := FromComparison(left, right, result)
		require.Equal(t, tt.result, dto.Result)
		require.Equal(t, tt.relation, dto.Relation)
	}
}

func TestFormatComparison_Text(t *testing.T) {
	var buf bytes.Buffer
	magic := testutil.Magic()
	left := magic.MustNew(4, "fire")
	right := magic.MustNew(1, "arcane")

	require.NoError(t, NewFormatter(&buf, "", plain).FormatComparison(FromComparison(left, right, 0)))

	require.Equal(t, "4 fireball = 1 arcane\n", buf.String())
}

func TestFromKind(t *testing.T) {
	dto, err := FromKind(testutil.Magic(), true)
	require.NoError(t, err)

	require.Equal(t, "Magic", dto.Name)
	require.Equal(t, "magic", dto.Humanized)
	require.Equal(t, "magic_missile", dto.Base)
	require.Equal(t, []UnitDTO{
		{Name: "magic_missile", Aliases: []string{"magic_missiles"}, Factor: "1", Base: true},
		{Name: "fireball", Aliases: []string{"fire", "fireballs"}, Factor: "2.5"},
		{Name: "ice", Aliases: []string{}, Factor: "2"},
		{Name: "arcane", Aliases: []string{}, Factor: "10"},
		{Name: "ultima", Aliases: []string{}, Factor: "100"},
	}, dto.Units)

	bare, err := FromKind(testutil.Magic(), false)
	require.NoError(t, err)
	require.Nil(t, bare.Units)
}

func TestFormatUnits_Text(t *testing.T) {
	var buf bytes.Buffer
	dto, err := FromKind(testutil.Magic(), true)
	require.NoError(t, err)

	require.NoError(t, NewFormatter(&buf, FormatText, plain).FormatUnits(dto, true))

	require.Equal(t, "Magic\n"+
		"  magic_missile  base  (magic_missiles)\n"+
		"  fireball       = 2.5 magic_missile  (fire, fireballs)\n"+
		"  ice            = 2 magic_missile\n"+
		"  arcane         = 10 magic_missile\n"+
		"  ultima         = 100 magic_missile\n", buf.String())
}

func TestFormatKinds_Text(t *testing.T) {
	var buf bytes.Buffer
	kinds := []KindDTO{
		{Name: "Length", Base: "m"},
		{Name: "Magic", Base: "magic_missile"},
	}

	require.NoError(t, NewFormatter(&buf, FormatText, plain).FormatKinds(kinds))

	require.Equal(t, "Length  base m\nMagic   base magic_missile\n", buf.String())
}

func TestFormatNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatText, plain).FormatNames([]string{"a", "b"}))
	require.Equal(t, "a\nb\n", buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter(&buf, FormatJSON, plain).FormatNames(nil))
	require.JSONEq(t, `[]`, buf.String())
}

func TestFormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatText, plain).FormatError(errors.New("boom")))
	require.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter(&buf, FormatJSON, plain).FormatError(errors.New("boom")))
	require.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestFormatAllUnits_JSON(t *testing.T) {
	var buf bytes.Buffer
	dtos, err := FromKinds([]*measurable.Kind{testutil.Magic()}, true)
	require.NoError(t, err)

	require.NoError(t, NewFormatter(&buf, FormatJSON, plain).FormatAllUnits(dtos, false))

	var got []KindDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "magic_missile", got[0].Base)
	require.Len(t, got[0].Units, 5)
}
