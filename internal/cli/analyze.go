package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/report"
)

const (
	sectionAll        = report.SectionAll
	sectionHouses     = report.SectionHouses
	sectionYogas      = report.SectionYogas
	sectionFriendship = report.SectionFriendship
)

// outputFlags are shared by every command that renders a report.
type outputFlags struct {
	file   string
	format string
	output string
}

func (o *outputFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&o.file, "file", "f", "", "chart document, YAML or JSON (required)")
	c.Flags().StringVar(&o.format, "format", "", "output format: json, yaml, text or debug (default from config)")
	c.Flags().StringVarP(&o.output, "output", "o", "", "write to this file instead of stdout")

	_ = c.MarkFlagRequired("file")
}

func (o *outputFlags) resolveFormat(a *app) (report.Format, error) {
	name := o.format
	if name == "" {
		name = a.cfg.Output.Format
	}

	return report.ParseFormat(name)
}

// color reports whether a text report goes straight to a terminal.
func (o *outputFlags) color(cmd *cobra.Command, format report.Format) bool {
	return format == report.FormatText && o.output == "" && isTerminal(cmd.OutOrStdout())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (o *outputFlags) write(cmd *cobra.Command, data []byte) error {
	if o.output != "" {
		return report.WriteFile(o.output, data)
	}

	_, err := cmd.OutOrStdout().Write(data)

	return err
}

func sectionCmd(a *app, use, short string, section report.Section) *cobra.Command {
	var o outputFlags

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := o.resolveFormat(a)
			if err != nil {
				return err
			}

			in, err := chart.LoadFile(o.file)
			if err != nil {
				return err
			}

			interp, err := a.interpreter()
			if err != nil {
				return err
			}

			out, err := interp.InterpretInput(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("interpreting %s: %w", o.file, err)
			}

			data, err := report.BytesWith(format, section, out, report.Options{Color: o.color(cmd, format)})
			if err != nil {
				return err
			}

			return o.write(cmd, data)
		},
	}

	o.register(c)

	return c
}
