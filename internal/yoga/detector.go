package yoga

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/match"
	"chart-interpreter/internal/zodiac"
)

const component = "yoga"

var (
	// ErrRuleFailed wraps a panic raised while evaluating a rule.
	ErrRuleFailed = errors.New("yoga rule failed")
	// ErrUnknownRule is returned for an enabled-rule name not in the catalog.
	ErrUnknownRule = errors.New("unknown yoga rule")
)

// Detector evaluates an ordered set of rules.
type Detector struct {
	rules []Rule
}

// Option configures a Detector.
type Option func(*Detector)

// WithRules replaces the catalog. Used to add rules or to test isolation.
func WithRules(rules ...Rule) Option {
	return func(d *Detector) {
		d.rules = rules
	}
}

// NewDetector builds a Detector over the full catalog.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{rules: Catalog()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Enable keeps only the named rules, preserving catalog order. Names are
// matched after normalization, so "gaja-kesari yoga" selects "Gaja Kesari
// Yoga". An empty list keeps every rule.
func (d *Detector) Enable(names []string) error {
	if len(names) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[match.NormalizeName(n)] = true
	}

	known := make([]string, 0, len(d.rules))
	kept := d.rules[:0:0]

	for _, r := range d.rules {
		key := match.NormalizeName(r.Name)
		known = append(known, r.Name)

		if wanted[key] {
			kept = append(kept, r)
			delete(wanted, key)
		}
	}

	if len(wanted) > 0 {
		missing := make([]string, 0, len(wanted))
		for _, n := range names {
			if wanted[match.NormalizeName(n)] {
				missing = append(missing, n)
			}
		}

		hint := ""
		if best := match.Suggest(missing[0], known, match.DefaultMinSimilarity).Best(); best != nil {
			hint = fmt.Sprintf(" (did you mean %q?)", best.Name)
		}

		return fmt.Errorf("%w: %s%s", ErrUnknownRule, strings.Join(missing, ", "), hint)
	}

	d.rules = kept

	return nil
}

// Rules returns the rules the detector evaluates, in order.
func (d *Detector) Rules() []Rule {
	return slices.Clone(d.rules)
}

// Detect evaluates every rule against snap and returns the fired records in
// rule order. Rules missing a required planet are skipped with an info
// diagnostic; a panicking rule yields a warning and the others still run.
func (d *Detector) Detect(snap *chart.Snapshot) ([]Record, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	out := make([]Record, 0)

	for _, rule := range d.rules {
		if missing := absent(snap, rule.Requires); len(missing) > 0 {
			diags.AddInfo(diagnostic.CodeRuleSkipped,
				fmt.Sprintf("not evaluated: %s missing", joinPlanets(missing)), component, rule.Name)

			continue
		}

		records, err := evaluate(rule, snap)
		if err != nil {
			diags.AddWarning(diagnostic.CodeRuleFailed, err.Error(), component, rule.Name)

			continue
		}

		out = append(out, records...)
	}

	return out, diags
}

// evaluate runs a single rule, converting a panic into ErrRuleFailed.
func evaluate(rule Rule, snap *chart.Snapshot) (records []Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("%w: %v", ErrRuleFailed, r)
		}
	}()

	return rule.Detect(snap), nil
}

func absent(snap *chart.Snapshot, required []zodiac.Planet) []zodiac.Planet {
	var out []zodiac.Planet

	for _, p := range required {
		if !snap.Has(p) {
			out = append(out, p)
		}
	}

	return out
}

func joinPlanets(ps []zodiac.Planet) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}

	return strings.Join(names, ", ")
}
