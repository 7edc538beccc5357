// Package friendship builds the permanent, temporal and five-fold
// relationship matrices between the seven classical planets.
package friendship

import (
	"encoding/json"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/zodiac"
)

// Relation is one cell of a friendship matrix.
type Relation string

const (
	Friend     Relation = "Friend"
	Enemy      Relation = "Enemy"
	Neutral    Relation = "Neutral"
	BestFriend Relation = "BestFriend"
	GreatEnemy Relation = "GreatEnemy"
	Self       Relation = "-"
	Unknown    Relation = "Unknown"
)

const size = zodiac.ClassicalCount

// Matrix holds the relation of row planet A towards column planet B.
type Matrix [size][size]Relation

// At returns the relation of a towards b, or Unknown for a node.
func (m Matrix) At(a, b zodiac.Planet) Relation {
	if !a.IsClassical() || !b.IsClassical() {
		return Unknown
	}

	return m[a][b]
}

// MarshalJSON encodes the matrix as nested objects keyed by planet name.
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.byName())
}

// MarshalYAML encodes the matrix as nested mappings keyed by planet name.
func (m Matrix) MarshalYAML() (any, error) {
	return m.byName(), nil
}

func (m Matrix) byName() map[string]map[string]Relation {
	out := make(map[string]map[string]Relation, size)

	for _, a := range zodiac.ClassicalPlanets() {
		row := make(map[string]Relation, size)
		for _, b := range zodiac.ClassicalPlanets() {
			row[b.String()] = m[a][b]
		}

		out[a.String()] = row
	}

	return out
}

// Matrices are the three views of planetary friendship for one chart.
type Matrices struct {
	Permanent Matrix `json:"permanent" yaml:"permanent"`
	Temporal  Matrix `json:"temporal" yaml:"temporal"`
	FiveFold  Matrix `json:"fiveFold" yaml:"fiveFold"`
}

const (
	fr = Friend
	en = Enemy
	ne = Neutral
	sf = Self
)

// permanent is the naisargika (natural) friendship table.
// Rows and columns: Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn.
var permanent = Matrix{
	{sf, fr, fr, ne, fr, en, en}, // Sun
	{fr, sf, ne, fr, ne, ne, ne}, // Moon
	{fr, fr, sf, en, fr, ne, ne}, // Mars
	{fr, en, ne, sf, ne, fr, ne}, // Mercury
	{fr, fr, fr, en, sf, en, ne}, // Jupiter
	{en, en, ne, fr, ne, sf, fr}, // Venus
	{en, en, en, fr, ne, fr, sf}, // Saturn
}

// Permanent returns the chart-independent friendship table.
func Permanent() Matrix {
	return permanent
}

// temporalFriend holds the inclusive sign counts that make a temporal friend.
var temporalFriend = [zodiac.SignCount + 1]bool{2: true, 3: true, 4: true, 10: true, 11: true, 12: true}

// TemporalRelation is Friend when b sits 2, 3, 4, 10, 11 or 12 signs from a
// (counting a's sign as 1), otherwise Enemy.
func TemporalRelation(a, b zodiac.Sign) Relation {
	if temporalFriend[a.CountTo(b)] {
		return Friend
	}

	return Enemy
}

// fiveFold combines permanent (row) with temporal (column: Friend, Enemy,
// Neutral).
var fiveFold = map[Relation][3]Relation{
	Friend:  {BestFriend, Neutral, Friend},
	Enemy:   {Neutral, GreatEnemy, Enemy},
	Neutral: {Friend, Enemy, Neutral},
}

// Combine derives the five-fold relation from a permanent and a temporal
// relation. Self and Unknown propagate.
func Combine(perm, temp Relation) Relation {
	if perm == Self || temp == Self {
		return Self
	}

	row, ok := fiveFold[perm]
	if !ok {
		return Unknown
	}

	switch temp {
	case Friend:
		return row[0]
	case Enemy:
		return row[1]
	case Neutral:
		return row[2]
	default:
		return Unknown
	}
}

// Build computes all three matrices. Pairs involving an absent planet are
// Unknown in the temporal and five-fold matrices.
func Build(snap *chart.Snapshot) Matrices {
	m := Matrices{Permanent: permanent}

	for _, a := range zodiac.ClassicalPlanets() {
		for _, b := range zodiac.ClassicalPlanets() {
			m.Temporal[a][b] = temporal(snap, a, b)
			m.FiveFold[a][b] = Combine(permanent[a][b], m.Temporal[a][b])
		}
	}

	return m
}

func temporal(snap *chart.Snapshot, a, b zodiac.Planet) Relation {
	if a == b {
		return Self
	}

	sa, okA := snap.Sign(a)
	sb, okB := snap.Sign(b)

	if !okA || !okB {
		return Unknown
	}

	return TemporalRelation(sa, sb)
}

// Count tallies the relations in m, ignoring the diagonal.
func (m Matrix) Count() map[Relation]int {
	out := make(map[Relation]int)

	for a := range size {
		for b := range size {
			if a != b {
				out[m[a][b]]++
			}
		}
	}

	return out
}
