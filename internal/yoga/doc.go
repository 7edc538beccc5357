// Package yoga detects classical planetary combinations (yogas) and
// afflictions (doshas) in a chart.
//
// Detection is an ordered catalog of independent rules. Every rule sees the
// same read-only snapshot; a rule that panics is reported and skipped, and
// a rule whose planets are absent does not fire. Records are returned in
// catalog order regardless of how rules are scheduled.
package yoga
