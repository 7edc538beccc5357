package zodiac

import (
	"errors"
	"fmt"
	"math"

	"chart-interpreter/internal/common"
	"chart-interpreter/internal/match"
)

//go:generate go tool stringer -type=Sign -output=sign_string.go

// Sign is a zodiac sign index, 0 (Aries) through 11 (Pisces).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	// SignCount is the number of signs in the zodiac.
	SignCount = int(iota)
)

// DegreesPerSign is the width of one sign in degrees.
const DegreesPerSign = 30.0

// ErrUnknownSign is returned by ParseSign for names it cannot resolve.
var ErrUnknownSign = errors.New("unknown sign")

// signLords is the fixed lordship table, indexed by sign.
var signLords = [SignCount]Planet{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// SignOf returns the sign containing a longitude. The longitude is wrapped
// into [0, 360) first, so 365 and -355 both land in Aries.
func SignOf(longitude float64) Sign {
	lon := common.WrapDegrees(longitude)

	return Sign(common.Mod(int(math.Floor(lon/DegreesPerSign)), SignCount))
}

// IsValid reports whether s is within 0..11.
func (s Sign) IsValid() bool {
	return common.IsInRange(0, int(s), SignCount-1)
}

// Add moves n signs forward (n may be negative) with wrap-around.
func (s Sign) Add(n int) Sign {
	return Sign(common.Mod(int(s)+n, SignCount))
}

// CountTo returns the inclusive count from s to other, 1..12.
// A sign counted from itself is 1; the next sign is 2.
func (s Sign) CountTo(other Sign) int {
	return common.Mod(int(other)-int(s), SignCount) + 1
}

// Lord returns the classical planet ruling s.
func (s Sign) Lord() Planet {
	return signLords[common.Mod(int(s), SignCount)]
}

// MarshalText encodes the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSign, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText accepts any spelling ParseSign accepts.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// Signs returns Aries..Pisces in order.
func Signs() []Sign {
	out := make([]Sign, SignCount)
	for i := range out {
		out[i] = Sign(i)
	}

	return out
}

// OwnSigns returns the signs ruled by p, in zodiac order.
// The lunar nodes rule nothing.
func OwnSigns(p Planet) []Sign {
	var out []Sign

	for s, lord := range signLords {
		if lord == p {
			out = append(out, Sign(s))
		}
	}

	return out
}

// ParseSign resolves a sign name case-insensitively.
func ParseSign(s string) (Sign, error) {
	norm := match.NormalizeName(s)

	for _, sign := range Signs() {
		if match.NormalizeName(sign.String()) == norm {
			return sign, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSign, s)
}
