package cli

import (
	"github.com/spf13/cobra"

	"chart-interpreter/internal/config"
)

func configCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration (file, environment, defaults) as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != "" {
				return config.WriteFile(a.cfg, output)
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return c
}
