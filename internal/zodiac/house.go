package zodiac

import (
	"strconv"

	"chart-interpreter/internal/common"
)

// House is a bhava number, 1 (lagna) through 12.
type House int

// HouseCount is the number of houses.
const HouseCount = 12

// HouseOf places a sign relative to the ascendant sign:
// ((sign - ascendant + 12) mod 12) + 1.
func HouseOf(sign, ascendant Sign) House {
	return House(common.Mod(int(sign)-int(ascendant), SignCount) + 1)
}

// IsValid reports whether h is within 1..12.
func (h House) IsValid() bool {
	return common.IsInRange(1, int(h), HouseCount)
}

// Nth returns the n-th house counted from h, where h itself is the 1st.
// The 7th from house 1 is house 7; the 3rd from house 11 is house 1.
func (h House) Nth(n int) House {
	return House(common.Mod(int(h)-1+n-1, HouseCount) + 1)
}

// Sign returns the sign occupying h for the given ascendant sign.
func (h House) Sign(ascendant Sign) Sign {
	return ascendant.Add(int(h) - 1)
}

// IsKendra reports whether h is an angular house (1, 4, 7, 10).
func (h House) IsKendra() bool {
	return h == 1 || h == 4 || h == 7 || h == 10
}

// IsTrikona reports whether h is a trinal house (1, 5, 9).
func (h House) IsTrikona() bool {
	return h == 1 || h == 5 || h == 9
}

// IsDusthana reports whether h is a malefic house (6, 8, 12).
func (h House) IsDusthana() bool {
	return h == 6 || h == 8 || h == 12
}

// Ordinal renders 1 as "1st", 2 as "2nd", 11 as "11th".
func (h House) Ordinal() string {
	return Ordinal(int(h))
}

// Ordinal renders an integer with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"

	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// Houses returns 1..12 in ascending order.
func Houses() []House {
	out := make([]House, HouseCount)
	for i := range out {
		out[i] = House(i + 1)
	}

	return out
}
