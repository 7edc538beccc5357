package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"chart-interpreter/internal/common"
)

// Well-known diagnostic codes.
const (
	CodeIncompleteData = "incomplete_data"
	CodeUnknownPlanet  = "unknown_planet"
	CodeNormalized     = "longitude_normalized"
	CodeRuleSkipped    = "rule_skipped"
	CodeRuleFailed     = "rule_failed"
)

// Diagnostics holds all diagnostic information from one interpretation.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty" yaml:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity" yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code" yaml:"code"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Component names the producer (chart, houses, yogas, friendship).
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
	// Subject identifies what this relates to (a planet, a rule), if anything.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, component, subject string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, component, subject))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, component, subject string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, component, subject))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, component, subject string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, component, subject))
}

// AddWarningWithSuggestions adds a warning carrying "did you mean" hints.
func (d *Diagnostics) AddWarningWithSuggestions(code, message, component, subject string, suggestions []string) {
	diag := newDiagnostic(SeverityWarning, code, message, component, subject)
	diag.Suggestions = suggestions
	d.Warnings = append(d.Warnings, diag)
}

func newDiagnostic(sev Severity, code, message, component, subject string) Diagnostic {
	return Diagnostic{
		Severity:  sev,
		Code:      code,
		Message:   message,
		Component: component,
		Subject:   subject,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// WithCode returns every diagnostic carrying code, errors first.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Component != "" {
		prefix = append(prefix, "["+d.Component+"]")
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
