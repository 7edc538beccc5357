package zodiac

import (
	"errors"
	"fmt"

	"chart-interpreter/internal/match"
)

//go:generate go tool stringer -type=Planet -output=planet_string.go

// Planet is a graha. The seven classical planets come first, then the lunar nodes.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu

	// PlanetCount is the total number of grahas, nodes included.
	PlanetCount = int(iota)
)

// ClassicalCount is the number of classical planets (Sun through Saturn).
const ClassicalCount = 7

// ErrUnknownPlanet is returned by ParsePlanet for names it cannot resolve.
var ErrUnknownPlanet = errors.New("unknown planet")

// planetAliases maps normalized Sanskrit and English alternates onto planets.
var planetAliases = map[string]Planet{
	"surya":      Sun,
	"ravi":       Sun,
	"chandra":    Moon,
	"soma":       Moon,
	"mangal":     Mars,
	"kuja":       Mars,
	"budh":       Mercury,
	"budha":      Mercury,
	"guru":       Jupiter,
	"brihaspati": Jupiter,
	"shukra":     Venus,
	"shani":      Saturn,
	"sani":       Saturn,
	"northnode":  Rahu,
	"southnode":  Ketu,
}

// IsValid reports whether p is one of the nine grahas.
func (p Planet) IsValid() bool {
	return p >= Sun && int(p) < PlanetCount
}

// IsClassical reports whether p is one of Sun..Saturn.
func (p Planet) IsClassical() bool {
	return p >= Sun && p <= Saturn
}

// IsNode reports whether p is Rahu or Ketu.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// MarshalText encodes the planet by name so map keys read "Sun", not "0".
func (p Planet) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlanet, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText accepts any spelling ParsePlanet accepts.
func (p *Planet) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// Planets returns all nine grahas in enumeration order.
func Planets() []Planet {
	out := make([]Planet, PlanetCount)
	for i := range out {
		out[i] = Planet(i)
	}

	return out
}

// ClassicalPlanets returns Sun..Saturn in enumeration order.
func ClassicalPlanets() []Planet {
	return Planets()[:ClassicalCount]
}

// PlanetNames returns the canonical names in enumeration order.
func PlanetNames() []string {
	names := make([]string, PlanetCount)
	for i := range names {
		names[i] = Planet(i).String()
	}

	return names
}

// ParsePlanet resolves a planet name case-insensitively. Common Sanskrit
// names (Surya, Guru, Shani, ...) are accepted as aliases.
func ParsePlanet(s string) (Planet, error) {
	norm := match.NormalizeName(s)

	for _, p := range Planets() {
		if match.NormalizeName(p.String()) == norm {
			return p, nil
		}
	}

	if p, ok := planetAliases[norm]; ok {
		return p, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPlanet, s)
}
