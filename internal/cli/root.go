// Package cli implements the chart-interpreter command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chart-interpreter/internal/config"
	"chart-interpreter/internal/interpret"
	"chart-interpreter/internal/logging"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by subcommands after flag parsing.
type app struct {
	configPath string
	debug      bool

	cfg     *config.Config
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "chart-interpreter",
		Short:        "Interpret Vedic birth charts: house strength, yogas, planetary friendship",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.cleanup != nil {
				return a.cleanup()
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (YAML); CHART_INTERPRETER_* variables override it")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		sectionCmd(a, "interpret", "Full interpretation of a chart", sectionAll),
		sectionCmd(a, "houses", "House strength table", sectionHouses),
		sectionCmd(a, "yogas", "Detected yogas and doshas", sectionYogas),
		sectionCmd(a, "friendship", "Permanent, temporal and five-fold friendship", sectionFriendship),
		checkCmd(a),
		configCmd(a),
		serveCmd(a),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg

	cleanup, err := logging.Setup(logging.Config{
		Dir:    cfg.Log.Dir,
		Output: cmd.ErrOrStderr(),
		Format: cfg.Log.Format,
		Debug:  a.debug || cfg.Log.Debug,
	})
	if err != nil {
		return err
	}

	a.cleanup = cleanup

	if cfg.Log.Dir != "" {
		if err := logging.IsReady(); err != nil {
			return fmt.Errorf("log dir %s: %w", cfg.Log.Dir, err)
		}

		if a.debug {
			fmt.Fprintf(cmd.ErrOrStderr(), "logging to %s\n", logging.Path())
		}
	}

	return nil
}

func (a *app) interpreter() (*interpret.Interpreter, error) {
	return newInterpreter(a.cfg)
}

func newInterpreter(cfg *config.Config) (*interpret.Interpreter, error) {
	return interpret.New(interpret.Config{
		Parallel:     cfg.Interpret.IsParallel(),
		EnabledYogas: cfg.Interpret.EnabledYogas,
	}, interpret.WithLogger(logging.L()))
}
