package match

import "sort"

// DefaultMinSimilarity is the lowest score a known name needs to be suggested.
const DefaultMinSimilarity = 0.5

// Suggestion is a known name ranked against an unknown input.
type Suggestion struct {
	Name  string
	Score float64
}

// SuggestionList is sorted by score descending, then by name.
type SuggestionList []Suggestion

// Suggest ranks the known names by normalized similarity to input and
// returns those scoring at least minScore.
func Suggest(input string, known []string, minScore float64) SuggestionList {
	norm := NormalizeName(input)

	var out SuggestionList

	for _, name := range known {
		score := Similarity(norm, NormalizeName(name))
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: name, Score: score})
	}

	sort.Sort(out)

	return out
}

// Best returns the best suggestion, or nil if there are none.
func (s SuggestionList) Best() *Suggestion {
	if len(s) == 0 {
		return nil
	}

	return &s[0]
}

// Names returns the suggested names in rank order.
func (s SuggestionList) Names() []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}

	return names
}

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Name < s[j].Name
}
