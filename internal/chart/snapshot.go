package chart

import (
	"fmt"
	"sort"

	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/match"
	"chart-interpreter/internal/zodiac"
)

const component = "chart"

// Placement is a planet resolved against the chart.
type Placement struct {
	Planet zodiac.Planet `json:"planet" yaml:"planet"`

	Position `yaml:",inline"`

	Retrograde bool         `json:"retrograde" yaml:"retrograde"`
	House      zodiac.House `json:"house" yaml:"house"`
}

// Snapshot is the immutable, fully resolved chart shared by all components.
// All accessors return copies.
type Snapshot struct {
	name       string
	ascendant  Position
	placements [zodiac.PlanetCount]Placement
	present    [zodiac.PlanetCount]bool
}

// NewSnapshot resolves an ascendant degree and planet positions.
// It fails only on non-finite numbers.
func NewSnapshot(ascendant float64, planets map[zodiac.Planet]PlanetInput) (*Snapshot, error) {
	asc, err := Resolve(ascendant)
	if err != nil {
		return nil, invalid("chart.snapshot", "ascendant", err)
	}

	s := &Snapshot{ascendant: asc}

	for _, p := range zodiac.Planets() {
		body, ok := planets[p]
		if !ok {
			continue
		}

		pos, err := Resolve(body.Longitude)
		if err != nil {
			return nil, invalid("chart.snapshot", "planets."+p.String(), err)
		}

		s.placements[p] = Placement{
			Planet:     p,
			Position:   pos,
			Retrograde: body.Retrograde,
			House:      zodiac.HouseOf(pos.Sign, asc.Sign),
		}
		s.present[p] = true
	}

	return s, nil
}

// FromInput validates a document, resolves its planet keys and builds the
// Snapshot. Ignored keys, wrapped longitudes and missing planets are
// reported in the returned diagnostics.
func FromInput(in *Input) (*Snapshot, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if in == nil {
		return nil, diags, invalid("chart.snapshot", "", fmt.Errorf("no chart document"))
	}

	if err := in.Validate(); err != nil {
		return nil, diags, err
	}

	bodies := make(map[zodiac.Planet]PlanetInput, len(in.Planets))
	claimedBy := make(map[zodiac.Planet]string, len(in.Planets))

	// Sorted keys keep duplicate resolution and diagnostics deterministic.
	keys := make([]string, 0, len(in.Planets))
	for k := range in.Planets {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, key := range keys {
		body := in.Planets[key]

		p, err := zodiac.ParsePlanet(key)
		if err != nil {
			suggestions := match.Suggest(key, zodiac.PlanetNames(), match.DefaultMinSimilarity)
			diags.AddWarningWithSuggestions(diagnostic.CodeUnknownPlanet,
				fmt.Sprintf("ignoring unknown planet key %q", key), component, key, suggestions.Names())

			continue
		}

		if prev, dup := claimedBy[p]; dup {
			diags.AddWarning(diagnostic.CodeUnknownPlanet,
				fmt.Sprintf("ignoring %q: %s already given as %q", key, p, prev), component, p.String())

			continue
		}

		if body.Longitude < 0 || body.Longitude >= 360 {
			diags.AddInfo(diagnostic.CodeNormalized,
				fmt.Sprintf("longitude %v wrapped into [0, 360)", body.Longitude), component, p.String())
		}

		claimedBy[p] = key
		bodies[p] = body
	}

	snap, err := NewSnapshot(*in.Ascendant, bodies)
	if err != nil {
		return nil, diags, err
	}

	snap.name = in.Name

	diags.Merge(snap.MissingDiagnostics())

	return snap, diags, nil
}

// Name returns the optional chart label.
func (s *Snapshot) Name() string {
	return s.name
}

// Ascendant returns the resolved lagna.
func (s *Snapshot) Ascendant() Position {
	return s.ascendant
}

// AscendantSign returns the sign of house 1.
func (s *Snapshot) AscendantSign() zodiac.Sign {
	return s.ascendant.Sign
}

// Has reports whether p was supplied.
func (s *Snapshot) Has(p zodiac.Planet) bool {
	return p.IsValid() && s.present[p]
}

// HasAll reports whether every planet in ps was supplied.
func (s *Snapshot) HasAll(ps ...zodiac.Planet) bool {
	for _, p := range ps {
		if !s.Has(p) {
			return false
		}
	}

	return true
}

// Placement returns p's resolved placement.
func (s *Snapshot) Placement(p zodiac.Planet) (Placement, bool) {
	if !s.Has(p) {
		return Placement{}, false
	}

	return s.placements[p], true
}

// Sign returns the sign p occupies.
func (s *Snapshot) Sign(p zodiac.Planet) (zodiac.Sign, bool) {
	pl, ok := s.Placement(p)
	return pl.Sign, ok
}

// House returns the house p occupies.
func (s *Snapshot) House(p zodiac.Planet) (zodiac.House, bool) {
	pl, ok := s.Placement(p)
	return pl.House, ok
}

// Placements returns every supplied planet in enumeration order.
func (s *Snapshot) Placements() []Placement {
	out := make([]Placement, 0, zodiac.PlanetCount)

	for _, p := range zodiac.Planets() {
		if s.present[p] {
			out = append(out, s.placements[p])
		}
	}

	return out
}

// Occupants returns the planets in house h, in enumeration order.
func (s *Snapshot) Occupants(h zodiac.House) []Placement {
	var out []Placement

	for _, pl := range s.Placements() {
		if pl.House == h {
			out = append(out, pl)
		}
	}

	return out
}

// InSign returns the planets in sign sg, in enumeration order.
func (s *Snapshot) InSign(sg zodiac.Sign) []Placement {
	var out []Placement

	for _, pl := range s.Placements() {
		if pl.Sign == sg {
			out = append(out, pl)
		}
	}

	return out
}

// Missing returns the planets that were not supplied, in enumeration order.
func (s *Snapshot) Missing() []zodiac.Planet {
	var out []zodiac.Planet

	for _, p := range zodiac.Planets() {
		if !s.present[p] {
			out = append(out, p)
		}
	}

	return out
}

// MissingDiagnostics reports each absent planet as incomplete_data: a
// warning for a classical planet, info for a lunar node.
func (s *Snapshot) MissingDiagnostics() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, p := range s.Missing() {
		if p.IsClassical() {
			diags.AddWarning(diagnostic.CodeIncompleteData,
				fmt.Sprintf("%s is missing; its contributions are omitted", p), component, p.String())
		} else {
			diags.AddInfo(diagnostic.CodeIncompleteData,
				fmt.Sprintf("%s is missing; node-dependent checks are skipped", p), component, p.String())
		}
	}

	return diags
}
