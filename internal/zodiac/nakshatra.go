package zodiac

import "strconv"

// Nakshatra is a lunar mansion index, 0 (Ashwini) through 26 (Revati).
type Nakshatra int

const (
	// NakshatraCount is the number of lunar mansions.
	NakshatraCount = 27
	// PadasPerNakshatra is the number of quarters in one nakshatra.
	PadasPerNakshatra = 4
)

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// dashaLords is the Vimshottari lord cycle starting at Ashwini.
var dashaLords = [...]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// IsValid reports whether n is within 0..26.
func (n Nakshatra) IsValid() bool {
	return n >= 0 && int(n) < NakshatraCount
}

// String returns the nakshatra name.
func (n Nakshatra) String() string {
	if !n.IsValid() {
		return "Nakshatra(" + strconv.Itoa(int(n)) + ")"
	}

	return nakshatraNames[n]
}

// Lord returns the Vimshottari ruler of n.
func (n Nakshatra) Lord() Planet {
	return dashaLords[int(n)%len(dashaLords)]
}
