package zodiac

// exaltation is indexed by classical planet. Debilitation is the opposite sign.
var exaltation = [ClassicalCount]Sign{
	Sun:     Aries,
	Moon:    Taurus,
	Mars:    Capricorn,
	Mercury: Virgo,
	Jupiter: Cancer,
	Venus:   Pisces,
	Saturn:  Libra,
}

// Dignity flags a planet's standing in the sign it occupies.
// Flags are independent: Mercury in Virgo is both exalted and in its own sign.
type Dignity struct {
	Exalted     bool `json:"exalted" yaml:"exalted"`
	Debilitated bool `json:"debilitated" yaml:"debilitated"`
	OwnSign     bool `json:"ownSign" yaml:"ownSign"`
}

// ExaltationSign returns the exaltation sign of a classical planet.
// ok is false for Rahu and Ketu, which carry no dignity here.
func ExaltationSign(p Planet) (Sign, bool) {
	if !p.IsClassical() {
		return 0, false
	}

	return exaltation[p], true
}

// DebilitationSign returns the sign opposite the exaltation sign.
func DebilitationSign(p Planet) (Sign, bool) {
	s, ok := ExaltationSign(p)
	if !ok {
		return 0, false
	}

	return s.Add(6), true
}

// IsExalted reports whether p is exalted in s.
func IsExalted(p Planet, s Sign) bool {
	ex, ok := ExaltationSign(p)
	return ok && ex == s
}

// IsDebilitated reports whether p is debilitated in s.
func IsDebilitated(p Planet, s Sign) bool {
	deb, ok := DebilitationSign(p)
	return ok && deb == s
}

// IsOwnSign reports whether p rules s.
func IsOwnSign(p Planet, s Sign) bool {
	return p.IsClassical() && s.Lord() == p
}

// DignityOf returns all dignity flags for p placed in s.
func DignityOf(p Planet, s Sign) Dignity {
	return Dignity{
		Exalted:     IsExalted(p, s),
		Debilitated: IsDebilitated(p, s),
		OwnSign:     IsOwnSign(p, s),
	}
}
