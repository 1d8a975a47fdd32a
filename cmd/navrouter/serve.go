package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/navkit/router"
	"github.com/navkit/router/internal/logging"
	"github.com/navkit/router/internal/metrics"
	"github.com/navkit/router/internal/server"
)

func serveCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route resolution over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if address != "" {
				cfg.Server.Address = address
			}

			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			r := router.New()
			if err := r.Init(cfg.Routes); err != nil {
				return fmt.Errorf("failed to initialise router: %w", err)
			}

			var opts []server.Option
			if cfg.Metrics.Enabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				opts = append(opts, server.WithMetrics(metrics.New(reg, cfg.Metrics.Namespace), reg))
			}

			srv := server.New(r, logger, cfg.Server, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe(cfg.Server.Address)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")

			if err := srv.Shutdown(); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
				return err
			}

			return <-errCh
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address, overrides the configuration")

	return cmd
}

