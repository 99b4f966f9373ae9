package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/optimode/contactkit/internal/httpapi"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			h := httpapi.NewHandler(a.validator, httpapi.HandlerConfig{
				MaxBatchSize: a.cfg.HTTP.MaxBatchSize,
				Workers:      a.cfg.Validation.BatchWorkers,
				Locales:      a.validator.Catalog(),
				Logger:       a.logger,
			})
			router := httpapi.NewRouter(h, httpapi.RouterConfig{
				MaxRequestBodyBytes: a.cfg.HTTP.MaxRequestBodyBytes,
				RequestTimeout:      a.cfg.HTTP.RequestTimeout,
				Metrics:             a.metrics.HTTPMetrics,
				MetricsHandler:      a.metrics.Handler(),
				Logger:              a.logger,
			})

			ln, err := net.Listen("tcp", a.cfg.HTTP.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", a.cfg.HTTP.Addr, err)
			}
			a.logger.Info("starting contactkit",
				zap.String("tier", a.cfg.Validation.Tier),
				zap.String("cache", a.cfg.Cache.Backend),
			)
			return httpapi.Serve(ctx, ln, router, a.cfg.HTTP.ShutdownTimeout, a.logger)
		},
	}
}
