// Package report renders an Interpretation for people and programs.
//
// Formats:
//   - json: indented JSON, byte-identical for identical input
//   - yaml: YAML with the same field names as json
//   - text: a plain-text summary built from text/template
//   - debug: a go-spew dump with sorted map keys
//
// A Section selects part of the interpretation: everything, the house
// table, the yogas, the friendship matrices or the diagnostics.
package report
