package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/zodiac"
)

func fullInput() *Input {
	return &Input{
		Name:      "sample",
		Ascendant: Float(15),
		Planets: map[string]PlanetInput{
			"Sun":     {Longitude: 135},
			"Moon":    {Longitude: 105},
			"Mars":    {Longitude: 285},
			"Mercury": {Longitude: 165},
			"Jupiter": {Longitude: 123},
			"Venus":   {Longitude: 195},
			"Saturn":  {Longitude: 315, Retrograde: true},
			"Rahu":    {Longitude: 75},
			"Ketu":    {Longitude: 255},
		},
	}
}

func TestFromInput(t *testing.T) {
	snap, diags, err := FromInput(fullInput())
	require.NoError(t, err)
	assert.Zero(t, diags.Len())

	assert.Equal(t, "sample", snap.Name())
	assert.Equal(t, zodiac.Aries, snap.AscendantSign())
	assert.Empty(t, snap.Missing())

	// Jupiter at 123° sits in Leo, the 5th house from an Aries lagna.
	jup, ok := snap.Placement(zodiac.Jupiter)
	require.True(t, ok)
	assert.Equal(t, zodiac.Leo, jup.Sign)
	assert.Equal(t, zodiac.House(5), jup.House)

	sat, _ := snap.Placement(zodiac.Saturn)
	assert.True(t, sat.Retrograde)

	leo := snap.InSign(zodiac.Leo)
	require.Len(t, leo, 2)
	assert.Equal(t, zodiac.Sun, leo[0].Planet)
	assert.Equal(t, zodiac.Jupiter, leo[1].Planet)

	assert.Len(t, snap.Occupants(5), 2)
	assert.Len(t, snap.Placements(), zodiac.PlanetCount)
}

func TestFromInputMissingAscendant(t *testing.T) {
	in := fullInput()
	in.Ascendant = nil

	_, _, err := FromInput(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, IsKind(err, KindInvalidInput))

	var ie *InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "ascendant", ie.Field)
}

func TestFromInputNonFinite(t *testing.T) {
	in := fullInput()
	in.Planets["Mars"] = PlanetInput{Longitude: math.NaN()}

	_, _, err := FromInput(in)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "planets.Mars")

	in = fullInput()
	in.Ascendant = Float(math.Inf(1))

	_, _, err = FromInput(in)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromInputIncompleteData(t *testing.T) {
	in := fullInput()
	delete(in.Planets, "Venus")
	delete(in.Planets, "Ketu")

	snap, diags, err := FromInput(in)
	require.NoError(t, err)

	assert.Equal(t, []zodiac.Planet{zodiac.Venus, zodiac.Ketu}, snap.Missing())
	assert.False(t, snap.Has(zodiac.Venus))
	assert.False(t, snap.HasAll(zodiac.Sun, zodiac.Ketu))

	incomplete := diags.WithCode(diagnostic.CodeIncompleteData)
	require.Len(t, incomplete, 2)
	assert.Equal(t, "Venus", incomplete[0].Subject)
	assert.Equal(t, diagnostic.SeverityWarning, incomplete[0].Severity)
	assert.Equal(t, "Ketu", incomplete[1].Subject)
	assert.Equal(t, diagnostic.SeverityInfo, incomplete[1].Severity)
}

func TestFromInputKeyResolution(t *testing.T) {
	in := fullInput()
	delete(in.Planets, "Jupiter")
	delete(in.Planets, "Saturn")
	in.Planets["guru"] = PlanetInput{Longitude: 10}
	in.Planets["Saturnn"] = PlanetInput{Longitude: 20}
	in.Planets["surya"] = PlanetInput{Longitude: 300}

	snap, diags, err := FromInput(in)
	require.NoError(t, err)

	jup, ok := snap.Placement(zodiac.Jupiter)
	require.True(t, ok)
	assert.Equal(t, zodiac.Aries, jup.Sign)

	// "Sun" sorts before "surya", so the canonical key wins.
	sun, _ := snap.Placement(zodiac.Sun)
	assert.Equal(t, zodiac.Leo, sun.Sign)

	unknown := diags.WithCode(diagnostic.CodeUnknownPlanet)
	require.Len(t, unknown, 2)
	assert.Equal(t, "Saturnn", unknown[0].Subject)
	assert.Equal(t, []string{"Saturn"}, unknown[0].Suggestions)
	assert.Equal(t, "Sun", unknown[1].Subject)

	assert.False(t, snap.Has(zodiac.Saturn))
}

func TestFromInputNormalizesLongitudes(t *testing.T) {
	in := fullInput()
	in.Planets["Moon"] = PlanetInput{Longitude: 465}

	snap, diags, err := FromInput(in)
	require.NoError(t, err)

	moon, _ := snap.Placement(zodiac.Moon)
	assert.InDelta(t, 105, moon.Longitude, 1e-9)
	assert.Len(t, diags.WithCode(diagnostic.CodeNormalized), 1)
}

func TestNewSnapshotIsolation(t *testing.T) {
	bodies := map[zodiac.Planet]PlanetInput{zodiac.Sun: {Longitude: 10}}

	snap, err := NewSnapshot(0, bodies)
	require.NoError(t, err)

	bodies[zodiac.Sun] = PlanetInput{Longitude: 200}
	bodies[zodiac.Moon] = PlanetInput{Longitude: 50}

	sign, ok := snap.Sign(zodiac.Sun)
	require.True(t, ok)
	assert.Equal(t, zodiac.Aries, sign)
	assert.False(t, snap.Has(zodiac.Moon))
}

func TestFromInputNil(t *testing.T) {
	_, _, err := FromInput(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
