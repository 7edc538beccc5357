// Package interpret composes the analytic components into one
// Interpretation per chart.
//
// Aspects, house strength, yogas and friendship all read the same
// read-only Snapshot and write to their own result slot, so they can run
// concurrently or one after another with identical output.
package interpret

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"chart-interpreter/internal/aspect"
	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/friendship"
	"chart-interpreter/internal/logging"
	"chart-interpreter/internal/metrics"
	"chart-interpreter/internal/strength"
	"chart-interpreter/internal/yoga"
)

// Config controls an Interpreter.
type Config struct {
	// Parallel runs the four analyses as concurrent goroutines.
	Parallel bool
	// EnabledYogas restricts yoga detection to these rule names.
	EnabledYogas []string
}

// DefaultConfig returns the default configuration: parallel, all yogas.
func DefaultConfig() Config {
	return Config{Parallel: true}
}

// Interpretation is the complete reading of one chart.
type Interpretation struct {
	Name              string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Ascendant         chart.Position          `json:"ascendant" yaml:"ascendant"`
	Positions         []chart.Placement       `json:"positions" yaml:"positions"`
	Houses            []strength.HouseProfile `json:"houses" yaml:"houses"`
	Aspects           aspect.Table            `json:"aspects" yaml:"aspects"`
	FunctionalNatures []strength.NatureInfo   `json:"functionalNatures" yaml:"functionalNatures"`
	Yogas             []yoga.Record           `json:"yogas" yaml:"yogas"`
	Friendship        friendship.Matrices     `json:"friendship" yaml:"friendship"`
	Diagnostics       diagnostic.Diagnostics  `json:"diagnostics" yaml:"diagnostics"`
}

// Interpreter runs the analyses. It is safe for concurrent use.
type Interpreter struct {
	cfg      Config
	detector *yoga.Detector
	logger   *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger. The default is logging.L().
func WithLogger(l *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = l
	}
}

// WithDetector replaces the yoga detector. EnabledYogas is not applied to
// a detector supplied this way.
func WithDetector(d *yoga.Detector) Option {
	return func(i *Interpreter) {
		i.detector = d
	}
}

// New builds an Interpreter. It fails if EnabledYogas names an unknown rule.
func New(cfg Config, opts ...Option) (*Interpreter, error) {
	i := &Interpreter{cfg: cfg}
	for _, opt := range opts {
		opt(i)
	}

	if i.logger == nil {
		i.logger = logging.L()
	}

	if i.detector == nil {
		i.detector = yoga.NewDetector()
		if err := i.detector.Enable(cfg.EnabledYogas); err != nil {
			return nil, fmt.Errorf("configure yoga detector: %w", err)
		}
	}

	return i, nil
}

// InterpretInput validates and resolves a chart document, then interprets
// it. Document problems are returned as *chart.InputError.
func (i *Interpreter) InterpretInput(ctx context.Context, in *chart.Input) (*Interpretation, error) {
	snap, diags, err := chart.FromInput(in)
	if err != nil {
		metrics.RecordInterpretation(metrics.StatusInvalidInput)
		return nil, err
	}

	return i.run(ctx, snap, diags)
}

// Interpret analyses a resolved Snapshot.
func (i *Interpreter) Interpret(ctx context.Context, snap *chart.Snapshot) (*Interpretation, error) {
	if snap == nil {
		metrics.RecordInterpretation(metrics.StatusInvalidInput)
		return nil, &chart.InputError{Op: "interpret", Kind: chart.KindInvalidInput, Err: chart.ErrInvalidInput}
	}

	return i.run(ctx, snap, snap.MissingDiagnostics())
}

// results holds one slot per analysis.
type results struct {
	aspects    aspect.Table
	houses     []strength.HouseProfile
	yogas      []yoga.Record
	yogaDiags  diagnostic.Diagnostics
	friendship friendship.Matrices
}

func (i *Interpreter) tasks(snap *chart.Snapshot, r *results) []func() {
	return []func(){
		func() { r.aspects = aspect.Calculate(snap) },
		func() { r.houses = strength.Score(snap) },
		func() { r.yogas, r.yogaDiags = i.detector.Detect(snap) },
		func() { r.friendship = friendship.Build(snap) },
	}
}

func (i *Interpreter) run(ctx context.Context, snap *chart.Snapshot, diags diagnostic.Diagnostics) (*Interpretation, error) {
	if err := ctx.Err(); err != nil {
		metrics.RecordInterpretation(metrics.StatusError)
		return nil, fmt.Errorf("interpret: %w", err)
	}

	id := uuid.NewString()
	start := time.Now()
	mode := "sequential"

	var r results

	if i.cfg.Parallel {
		mode = "parallel"

		g, gCtx := errgroup.WithContext(ctx)
		for _, task := range i.tasks(snap, &r) {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}

				task()

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			metrics.RecordInterpretation(metrics.StatusError)
			return nil, fmt.Errorf("interpret: %w", err)
		}
	} else {
		for _, task := range i.tasks(snap, &r) {
			task()
		}
	}

	diags.Merge(r.yogaDiags)

	out := &Interpretation{
		Name:              snap.Name(),
		Ascendant:         snap.Ascendant(),
		Positions:         snap.Placements(),
		Houses:            r.houses,
		Aspects:           r.aspects,
		FunctionalNatures: strength.FunctionalNatures(snap.AscendantSign()),
		Yogas:             r.yogas,
		Friendship:        r.friendship,
		Diagnostics:       diags,
	}

	elapsed := time.Since(start)
	i.record(out, mode, elapsed)

	i.logger.Debug("interpretation.done",
		"analysis_id", id,
		"mode", mode,
		"yogas", len(out.Yogas),
		"diagnostics", out.Diagnostics.Len(),
		"duration", elapsed,
	)

	return out, nil
}

func (i *Interpreter) record(out *Interpretation, mode string, elapsed time.Duration) {
	metrics.RecordInterpretation(metrics.StatusOK)
	metrics.ObserveDuration(mode, elapsed.Seconds())

	for _, y := range out.Yogas {
		metrics.RecordYoga(y.Name)
	}

	groups := [][]diagnostic.Diagnostic{
		out.Diagnostics.Errors,
		out.Diagnostics.Warnings,
		out.Diagnostics.Infos,
	}

	for _, group := range groups {
		for _, d := range group {
			metrics.RecordDiagnostic(d.Severity.String(), d.Code)
		}
	}
}
