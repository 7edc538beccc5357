// Package match provides name normalization, Levenshtein distance calculation
// and "did you mean" suggestions for chart document keys.
//
// Key functions:
//   - NormalizeName: folds planet/sign spellings to a comparable form
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
