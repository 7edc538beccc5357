package chart

import (
	"fmt"
	"math"

	"chart-interpreter/internal/common"
	"chart-interpreter/internal/zodiac"
)

// padaCount is the number of nakshatra quarters around the zodiac (27 * 4).
const padaCount = zodiac.NakshatraCount * zodiac.PadasPerNakshatra

// Position is a longitude resolved against the sidereal zodiac.
type Position struct {
	// Longitude normalized into [0, 360).
	Longitude float64 `json:"longitude" yaml:"longitude"`
	// Sign is floor(longitude / 30).
	Sign zodiac.Sign `json:"sign" yaml:"sign"`
	// DegreeInSign is longitude mod 30.
	DegreeInSign float64 `json:"degreeInSign" yaml:"degreeInSign"`
	// Nakshatra is floor(longitude / 13.333...), 0..26.
	Nakshatra zodiac.Nakshatra `json:"nakshatra" yaml:"nakshatra"`
	// NakshatraName is the name of Nakshatra.
	NakshatraName string `json:"nakshatraName" yaml:"nakshatraName"`
	// NakshatraLord is the Vimshottari ruler of Nakshatra.
	NakshatraLord zodiac.Planet `json:"nakshatraLord" yaml:"nakshatraLord"`
	// Pada is the quarter of the nakshatra, 1..4.
	Pada int `json:"pada" yaml:"pada"`
}

// Resolve normalizes a longitude into [0, 360) and derives sign, degree in
// sign, nakshatra and pada. Only NaN and ±Inf are rejected.
func Resolve(longitude float64) (Position, error) {
	if !common.IsFinite(longitude) {
		return Position{}, fmt.Errorf("longitude %v cannot be normalized", longitude)
	}

	lon := common.WrapDegrees(longitude)
	sign := zodiac.SignOf(lon)

	// Nakshatra and pada both come from one quarter index so they never
	// disagree at float boundaries: 40° is exactly the start of Rohini.
	quarter := min(int(math.Floor(lon*padaCount/360)), padaCount-1)
	nak := zodiac.Nakshatra(quarter / zodiac.PadasPerNakshatra)

	return Position{
		Longitude:     lon,
		Sign:          sign,
		DegreeInSign:  lon - float64(sign)*zodiac.DegreesPerSign,
		Nakshatra:     nak,
		NakshatraName: nak.String(),
		NakshatraLord: nak.Lord(),
		Pada:          quarter%zodiac.PadasPerNakshatra + 1,
	}, nil
}
