package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chart-interpreter/internal/chart"
	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/report"
)

func checkCmd(a *app) *cobra.Command {
	var o outputFlags

	c := &cobra.Command{
		Use:   "check",
		Short: "Validate a chart document and list its diagnostics (no interpretation)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := chart.LoadFile(o.file)
			if err != nil {
				return err
			}

			_, diags, err := chart.FromInput(in)
			if err != nil {
				return err
			}

			data, err := renderDiagnostics(o.format, diags)
			if err != nil {
				return err
			}

			return o.write(cmd, data)
		},
	}

	o.register(c)

	return c
}

// renderDiagnostics prints one diagnostic per line, or JSON.
func renderDiagnostics(format string, diags diagnostic.Diagnostics) ([]byte, error) {
	switch report.Format(format) {
	case report.FormatJSON:
		out, err := json.MarshalIndent(diags, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	case "", report.FormatText:
		if diags.Len() == 0 {
			return []byte("OK\n"), nil
		}

		var sb strings.Builder

		for _, group := range []struct {
			label string
			list  []diagnostic.Diagnostic
		}{
			{"error", diags.Errors},
			{"warning", diags.Warnings},
			{"info", diags.Infos},
		} {
			for _, d := range group.list {
				fmt.Fprintf(&sb, "%-7s %s\n", group.label, d)
			}
		}

		return []byte(sb.String()), nil
	default:
		return nil, fmt.Errorf("%w: %q (check supports json and text)", report.ErrUnknownFormat, format)
	}
}
