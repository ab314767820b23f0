package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/linkshelf/internal/metrics"
	"github.com/mesh-intelligence/linkshelf/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documents read-only over HTTP",
		Long: `Serve exposes /data.json, /files.json, /notifications.json, /api/search?q=,
/healthz and /metrics for the web and mobile viewers. Documents are re-read
every server.reload_interval so edits from other linkshelf commands appear
without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = a.v.GetString(cfgKeyServerAddr)
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics.RegisterCollectors(reg)

			srv := server.New(s, server.Options{
				ReloadInterval: a.v.GetDuration(cfgKeyReloadInterval),
				Registry:       reg,
				Log:            a.log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx, addr, s); err != nil {
				return systemErr("serve: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultServerAddr, "listen address")
	return cmd
}
