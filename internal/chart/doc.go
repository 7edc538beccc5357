// Package chart turns an upstream chart document into the immutable Snapshot
// every analytic component reads.
//
// The document carries an ascendant degree and a longitude per planet. Those
// longitudes come from an external ephemeris; nothing here computes them.
//
//	ascendant: 15.2
//	planets:
//	  Sun:     {longitude: 123.4}
//	  Moon:    {longitude: 98.0}
//	  Saturn:  {longitude: 301.7, retrograde: true}
//	  Rahu:    {longitude: 64.1}
//
// # Resolution
//
// Each longitude is wrapped into [0, 360) and resolved into sign, degree in
// sign, nakshatra, pada and house (counted from the ascendant sign).
//
// # Failure modes
//
//   - A missing or non-finite ascendant, a non-finite longitude or a malformed
//     document is an InvalidInput error (see IsKind).
//   - A missing planet is not an error. It is recorded as an incomplete_data
//     diagnostic and the components degrade locally.
//   - Keys that are not planet names are ignored with a warning that suggests
//     the closest planet name.
package chart
