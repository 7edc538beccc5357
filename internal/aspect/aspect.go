// Package aspect computes graha drishti: which houses each planet aspects.
//
// Distances count the planet's own house as the 1st, so a planet in house 1
// casting its 7th aspect lands on house 7.
//
//	Sun, Moon, Mercury, Venus  7th
//	Mars                       4th, 7th, 8th
//	Jupiter                    5th, 7th, 9th
//	Saturn                     3rd, 7th, 10th
//	Rahu, Ketu                 3rd, 11th (no 7th)
package aspect

import (
	"slices"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/zodiac"
)

// FullAspect is the 7th-house aspect every classical planet casts.
const FullAspect = 7

var distances = [zodiac.PlanetCount][]int{
	zodiac.Sun:     {FullAspect},
	zodiac.Moon:    {FullAspect},
	zodiac.Mars:    {4, FullAspect, 8},
	zodiac.Mercury: {FullAspect},
	zodiac.Jupiter: {5, FullAspect, 9},
	zodiac.Venus:   {FullAspect},
	zodiac.Saturn:  {3, FullAspect, 10},
	zodiac.Rahu:    {3, 11},
	zodiac.Ketu:    {3, 11},
}

// Aspect is one planet's influence landing on a house.
type Aspect struct {
	Planet   zodiac.Planet `json:"planet" yaml:"planet"`
	Distance int           `json:"distance" yaml:"distance"`
	From     zodiac.House  `json:"from" yaml:"from"`
}

// HouseAspects lists the aspects landing on one house.
type HouseAspects struct {
	House   zodiac.House `json:"house" yaml:"house"`
	Aspects []Aspect     `json:"aspects" yaml:"aspects"`
}

// Table holds HouseAspects for houses 1..12, at index house-1.
type Table []HouseAspects

// Distances returns the aspect distances p casts, ascending.
func Distances(p zodiac.Planet) []int {
	if !p.IsValid() {
		return nil
	}

	return slices.Clone(distances[p])
}

// Targets returns the houses p aspects from house from, in distance order.
func Targets(p zodiac.Planet, from zodiac.House) []zodiac.House {
	ds := Distances(p)

	out := make([]zodiac.House, len(ds))
	for i, d := range ds {
		out[i] = from.Nth(d)
	}

	return out
}

// Calculate builds the aspect table for a chart. Each house lists its
// inbound aspects in planet enumeration order, then by distance.
// Planets missing from the chart cast nothing.
func Calculate(snap *chart.Snapshot) Table {
	table := make(Table, zodiac.HouseCount)
	for i, h := range zodiac.Houses() {
		table[i] = HouseAspects{House: h, Aspects: []Aspect{}}
	}

	for _, pl := range snap.Placements() {
		ds := distances[pl.Planet]

		for i, target := range Targets(pl.Planet, pl.House) {
			table[target-1].Aspects = append(table[target-1].Aspects, Aspect{
				Planet:   pl.Planet,
				Distance: ds[i],
				From:     pl.House,
			})
		}
	}

	return table
}

// On returns the aspects landing on house h.
func (t Table) On(h zodiac.House) []Aspect {
	if !h.IsValid() || int(h) > len(t) {
		return nil
	}

	return t[h-1].Aspects
}

// Aspecting returns the planets aspecting house h, in table order.
func (t Table) Aspecting(h zodiac.House) []zodiac.Planet {
	var out []zodiac.Planet

	for _, a := range t.On(h) {
		out = append(out, a.Planet)
	}

	return out
}
