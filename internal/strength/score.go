package strength

import (
	"fmt"
	"strconv"

	"chart-interpreter/internal/aspect"
	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/zodiac"
)

// Score weights.
const (
	BeneficOccupant    = 2.0
	MaleficOccupant    = -1.0
	ExaltedBonus       = 3.0
	OwnSignBonus       = 2.0
	DebilitatedPenalty = -3.0
	BeneficAspect      = 1.0
	MaleficAspect      = -0.5
	KendraBonus        = 1.0
	TrikonaBonus       = 1.0
	DusthanaPenalty    = -1.0
)

// StrongThreshold is the lowest score rated Strong. Scores below 0 are Weak.
const StrongThreshold = 3.0

// Tier is the strength band of a house score.
type Tier string

const (
	TierStrong Tier = "Strong"
	TierMedium Tier = "Medium"
	TierWeak   Tier = "Weak"
)

// TierFor bands a score: >= 3 Strong, [0, 3) Medium, < 0 Weak.
func TierFor(score float64) Tier {
	switch {
	case score >= StrongThreshold:
		return TierStrong
	case score >= 0:
		return TierMedium
	default:
		return TierWeak
	}
}

// Occupant is a planet placed in a house.
type Occupant struct {
	Planet       zodiac.Planet `json:"planet" yaml:"planet"`
	DegreeInSign float64       `json:"degreeInSign" yaml:"degreeInSign"`
	Retrograde   bool          `json:"retrograde" yaml:"retrograde"`
	Nature       Nature        `json:"nature" yaml:"nature"`

	zodiac.Dignity `yaml:",inline"`
}

// HouseProfile is the scored view of one house.
type HouseProfile struct {
	House     zodiac.House    `json:"house" yaml:"house"`
	Sign      zodiac.Sign     `json:"sign" yaml:"sign"`
	Lord      zodiac.Planet   `json:"lord" yaml:"lord"`
	Occupants []Occupant      `json:"occupants" yaml:"occupants"`
	Aspects   []aspect.Aspect `json:"aspects" yaml:"aspects"`
	Score     float64         `json:"score" yaml:"score"`
	Tier      Tier            `json:"tier" yaml:"tier"`
	Reasons   []string        `json:"reasons" yaml:"reasons"`
}

// Score computes the profiles of houses 1..12 in ascending order.
func Score(snap *chart.Snapshot) []HouseProfile {
	return ScoreWithAspects(snap, aspect.Calculate(snap))
}

// ScoreWithAspects scores houses against a precomputed aspect table.
func ScoreWithAspects(snap *chart.Snapshot, aspects aspect.Table) []HouseProfile {
	asc := snap.AscendantSign()

	natures := make(map[zodiac.Planet]Nature, zodiac.PlanetCount)
	for _, info := range FunctionalNatures(asc) {
		natures[info.Planet] = info.Nature
	}

	profiles := make([]HouseProfile, 0, zodiac.HouseCount)
	for _, h := range zodiac.Houses() {
		profiles = append(profiles, scoreHouse(snap, h, aspects.On(h), natures))
	}

	return profiles
}

// scorer accumulates a house score and its ordered reasons.
type scorer struct {
	score   float64
	reasons []string
}

func (s *scorer) add(delta float64, format string, args ...any) {
	if delta == 0 {
		return
	}

	s.score += delta
	s.reasons = append(s.reasons, fmt.Sprintf(format, args...)+": "+signed(delta))
}

func scoreHouse(
	snap *chart.Snapshot,
	h zodiac.House,
	inbound []aspect.Aspect,
	natures map[zodiac.Planet]Nature,
) HouseProfile {
	sign := h.Sign(snap.AscendantSign())
	placements := snap.Occupants(h)

	occupants := make([]Occupant, 0, len(placements))
	for _, pl := range placements {
		occupants = append(occupants, Occupant{
			Planet:       pl.Planet,
			DegreeInSign: pl.DegreeInSign,
			Retrograde:   pl.Retrograde,
			Nature:       natures[pl.Planet],
			Dignity:      zodiac.DignityOf(pl.Planet, pl.Sign),
		})
	}

	var s scorer

	// 1. occupancy
	for _, occ := range occupants {
		s.add(occupantWeight(occ.Nature), "%s occupies the house (functional %s)", occ.Planet, occ.Nature)
	}

	// 2. dignity
	for _, occ := range occupants {
		switch {
		case occ.Exalted:
			s.add(ExaltedBonus, "%s is exalted in %s", occ.Planet, sign)
		case occ.OwnSign:
			s.add(OwnSignBonus, "%s is in its own sign %s", occ.Planet, sign)
		case occ.Debilitated:
			s.add(DebilitatedPenalty, "%s is debilitated in %s", occ.Planet, sign)
		}
	}

	// 3. aspects
	for _, a := range inbound {
		nature := natures[a.Planet]
		s.add(aspectWeight(nature), "%s aspects from house %d (%s aspect, functional %s)",
			a.Planet, a.From, zodiac.Ordinal(a.Distance), nature)
	}

	// 4. category
	if h.IsKendra() {
		s.add(KendraBonus, "kendra house")
	}

	if h.IsTrikona() {
		s.add(TrikonaBonus, "trikona house")
	}

	if h.IsDusthana() {
		s.add(DusthanaPenalty, "dusthana house")
	}

	if s.reasons == nil {
		s.reasons = []string{}
	}

	if inbound == nil {
		inbound = []aspect.Aspect{}
	}

	return HouseProfile{
		House:     h,
		Sign:      sign,
		Lord:      sign.Lord(),
		Occupants: occupants,
		Aspects:   inbound,
		Score:     s.score,
		Tier:      TierFor(s.score),
		Reasons:   s.reasons,
	}
}

func occupantWeight(n Nature) float64 {
	switch n {
	case Benefic:
		return BeneficOccupant
	case Malefic:
		return MaleficOccupant
	default:
		return 0
	}
}

func aspectWeight(n Nature) float64 {
	switch n {
	case Benefic:
		return BeneficAspect
	case Malefic:
		return MaleficAspect
	default:
		return 0
	}
}

// signed renders 2 as "+2" and -0.5 as "-0.5".
func signed(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		return "+" + s
	}

	return s
}
