package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"chart-interpreter/internal/config"
	"chart-interpreter/internal/logging"
	"chart-interpreter/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interpretation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			if !a.debug {
				gin.SetMode(gin.ReleaseMode)
			}

			interp, err := a.interpreter()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handlers := server.NewHandlers(interp, a.cfg.Server.MaxBodyBytes)

			if watch && a.configPath != "" {
				w, err := config.NewWatcher(a.configPath, logging.L(), func(cfg *config.Config) {
					next, err := newInterpreter(cfg)
					if err != nil {
						logging.L().Warn("config.reload.skipped", "error", err)
						return
					}

					handlers.SetInterpreter(next)
				})
				if err != nil {
					return err
				}

				go w.Run(ctx)
			}

			router := server.NewRouter(handlers,
				server.WithRateLimit(a.cfg.Server.RateLimit, a.cfg.Server.RateBurst))

			return server.Run(ctx, server.Config{
				Addr:              addr,
				ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
			}, router)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	c.Flags().BoolVar(&watch, "watch", true, "reload interpret settings when --config changes")

	return c
}
