package yoga

import (
	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/common"
	"chart-interpreter/internal/zodiac"
)

// Category groups yogas by the area of life they describe.
type Category string

const (
	CategoryRaja         Category = "Raja Yoga"
	CategoryWealth       Category = "Wealth Yoga"
	CategoryIntelligence Category = "Intelligence Yoga"
	CategoryLeadership   Category = "Leadership Yoga"
	CategoryProsperity   Category = "Prosperity Yoga"
	CategoryMahapurusha  Category = "Pancha Mahapurusha Yoga"
	CategoryDosha        Category = "Dosha"
)

// Strength rates how strongly a detected yoga expresses.
type Strength string

const (
	VeryStrong Strength = "Very Strong"
	Strong     Strength = "Strong"
	Medium     Strength = "Medium"
	Negative   Strength = "Negative"
)

// Record is one detected yoga or dosha.
type Record struct {
	Name          string          `json:"name" yaml:"name"`
	Category      Category        `json:"category" yaml:"category"`
	Strength      Strength        `json:"strength" yaml:"strength"`
	Description   string          `json:"description" yaml:"description"`
	Effects       []string        `json:"effects" yaml:"effects"`
	Planets       []zodiac.Planet `json:"planets" yaml:"planets"`
	HousesOrSigns []string        `json:"housesOrSigns" yaml:"housesOrSigns"`
	Remedies      []string        `json:"remedies,omitempty" yaml:"remedies,omitempty"`
}

// Kind tags the shape of a rule's predicate.
type Kind int

const (
	KindConjunction Kind = iota
	KindKendraFromMoon
	KindMahapurusha
	KindCancellation
	KindNodalAxis
	KindLunarIsolation
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConjunction:
		return "conjunction"
	case KindKendraFromMoon:
		return "kendra from moon"
	case KindMahapurusha:
		return "mahapurusha"
	case KindCancellation:
		return "cancellation"
	case KindNodalAxis:
		return "nodal axis"
	case KindLunarIsolation:
		return "lunar isolation"
	default:
		return common.UnknownStr
	}
}

// DetectFunc evaluates one rule. It returns nil when the rule does not fire.
type DetectFunc func(snap *chart.Snapshot) []Record

// Rule is one catalog entry. Requires lists planets that must be present
// for Detect to be meaningful.
type Rule struct {
	Kind     Kind
	Name     string
	Requires []zodiac.Planet
	Detect   DetectFunc
}
