// Package charttest builds Snapshots for tests in other packages.
package charttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/zodiac"
)

// MidSign is the degree inside a sign every FromSigns placement uses.
const MidSign = 15.0

// FromSigns builds a Snapshot with the ascendant and each listed planet at
// 15° of the given sign. Planets not listed are absent.
func FromSigns(t testing.TB, asc zodiac.Sign, signs map[zodiac.Planet]zodiac.Sign) *chart.Snapshot {
	t.Helper()

	bodies := make(map[zodiac.Planet]chart.PlanetInput, len(signs))
	for p, s := range signs {
		bodies[p] = chart.PlanetInput{Longitude: float64(s)*zodiac.DegreesPerSign + MidSign}
	}

	snap, err := chart.NewSnapshot(float64(asc)*zodiac.DegreesPerSign+MidSign, bodies)
	require.NoError(t, err)

	return snap
}

// Full returns a nine-planet chart with an Aries ascendant:
// Sun Leo, Moon Cancer, Mars Capricorn, Mercury Virgo, Jupiter Sagittarius,
// Venus Libra, Saturn Aquarius, Rahu Gemini, Ketu Sagittarius.
func Full(t testing.TB) *chart.Snapshot {
	t.Helper()

	return FromSigns(t, zodiac.Aries, map[zodiac.Planet]zodiac.Sign{
		zodiac.Sun:     zodiac.Leo,
		zodiac.Moon:    zodiac.Cancer,
		zodiac.Mars:    zodiac.Capricorn,
		zodiac.Mercury: zodiac.Virgo,
		zodiac.Jupiter: zodiac.Sagittarius,
		zodiac.Venus:   zodiac.Libra,
		zodiac.Saturn:  zodiac.Aquarius,
		zodiac.Rahu:    zodiac.Gemini,
		zodiac.Ketu:    zodiac.Sagittarius,
	})
}
