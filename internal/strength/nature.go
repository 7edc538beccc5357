package strength

import (
	"slices"

	"chart-interpreter/internal/common"
	"chart-interpreter/internal/zodiac"
)

// Nature is a planet's functional nature for a given ascendant.
type Nature int

const (
	Neutral Nature = iota
	Benefic
	Malefic
)

// String returns a human-readable nature name.
func (n Nature) String() string {
	switch n {
	case Neutral:
		return "neutral"
	case Benefic:
		return "benefic"
	case Malefic:
		return "malefic"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the nature by name.
func (n Nature) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// natureRule is one step of the functional-nature precedence.
type natureRule struct {
	name   string
	houses []zodiac.House
	nature Nature
}

// natureRules are tried in order; the first whose houses intersect the
// planet's lordships decides. A lord of only dusthanas is caught by the
// second rule, so no separate dusthana-only step is needed.
var natureRules = []natureRule{
	{name: "lagna lord", houses: []zodiac.House{1}, nature: Benefic},
	{name: "dusthana lord", houses: []zodiac.House{6, 8, 12}, nature: Malefic},
	{name: "kendra/trikona lord", houses: []zodiac.House{4, 5, 7, 9, 10, 11}, nature: Benefic},
}

// NatureInfo explains how a planet's functional nature was decided.
type NatureInfo struct {
	Planet    zodiac.Planet  `json:"planet" yaml:"planet"`
	Nature    Nature         `json:"nature" yaml:"nature"`
	Lordships []zodiac.House `json:"lordships" yaml:"lordships"`
	Rule      string         `json:"rule" yaml:"rule"`
}

// Lordships returns the houses p rules for the ascendant sign, ascending.
func Lordships(p zodiac.Planet, ascendant zodiac.Sign) []zodiac.House {
	signs := zodiac.OwnSigns(p)

	out := make([]zodiac.House, 0, len(signs))
	for _, s := range signs {
		out = append(out, zodiac.HouseOf(s, ascendant))
	}

	slices.Sort(out)

	return out
}

// Explain resolves p's functional nature and the rule that decided it.
// Rahu and Ketu rule no houses and are always malefic.
func Explain(p zodiac.Planet, ascendant zodiac.Sign) NatureInfo {
	if p.IsNode() {
		return NatureInfo{Planet: p, Nature: Malefic, Lordships: []zodiac.House{}, Rule: "lunar node"}
	}

	lordships := Lordships(p, ascendant)

	for _, rule := range natureRules {
		for _, h := range rule.houses {
			if slices.Contains(lordships, h) {
				return NatureInfo{Planet: p, Nature: rule.nature, Lordships: lordships, Rule: rule.name}
			}
		}
	}

	return NatureInfo{Planet: p, Nature: Neutral, Lordships: lordships, Rule: "no decisive lordship"}
}

// FunctionalNature returns p's functional nature for the ascendant sign.
//
// Precedence: lord of house 1 is benefic; otherwise lord of 6, 8 or 12 is
// malefic; otherwise lord of 4, 5, 7, 9, 10 or 11 is benefic; anything else
// (lord of 2 and/or 3 only) is neutral.
func FunctionalNature(p zodiac.Planet, ascendant zodiac.Sign) Nature {
	return Explain(p, ascendant).Nature
}

// FunctionalNatures explains every planet, in enumeration order.
func FunctionalNatures(ascendant zodiac.Sign) []NatureInfo {
	out := make([]NatureInfo, 0, zodiac.PlanetCount)
	for _, p := range zodiac.Planets() {
		out = append(out, Explain(p, ascendant))
	}

	return out
}
