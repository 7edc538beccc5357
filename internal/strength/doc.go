// Package strength scores the twelve houses of a chart.
//
// Scoring pipeline, per house, starting at 0:
//  1. Occupants: functional benefic +2, functional malefic (and Rahu/Ketu) -1.
//  2. Occupant dignity: exalted +3, else own sign +2, else debilitated -3.
//  3. Inbound aspects: functional benefic +1, functional malefic (and Rahu/Ketu) -0.5.
//  4. Category: kendra +1, trikona +1 (both for house 1), dusthana -1.
//
// Steps run in that order and every non-zero contribution appends one line
// to the house's reasons, so identical charts produce identical reasons.
//
// Functional nature is resolved per ascendant from the houses each planet
// rules; see FunctionalNature for the precedence.
package strength
