package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/server"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var (
		addr        string
		rate        float64
		burst       int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Long: `Starts the HTTP API:

  GET  /api/health    liveness and version
  GET  /api/catalog   reference airports, islands and factors
  GET  /api/factors   active factor table and fallback flag
  POST /api/trip      JSON trip request, JSON/PDF/table summary
  POST /api/ledger    CSV ledger, JSON/CSV/NDJSON/PDF/table report
  GET  /metrics       Prometheus metrics

POST endpoints are rate limited per client IP.`,
		Example: `  isleprint serve
  isleprint serve --addr 127.0.0.1:9000 --rate 5 --burst 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := rt.cfg.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("rate") {
				cfg.Rate = rate
			}
			if cmd.Flags().Changed("burst") {
				cfg.Burst = burst
			}
			checked := *rt.cfg
			checked.Server = cfg
			if err := checked.Validate(); err != nil {
				return err
			}

			srv := server.New(server.Options{
				Config:      cfg,
				Catalog:     rt.catalog,
				Factors:     rt.factors,
				Logger:      logger,
				Traveler:    rt.cfg.Traveler,
				Concurrency: concurrency,
			})
			defer srv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd.PrintErrf("Listening on %s (factors: %s)\n", cfg.Addr, rt.factors.Source)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "requests per second allowed per client IP")
	cmd.Flags().IntVar(&burst, "burst", 0, "burst size per client IP")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "ledger row batches evaluated in parallel")
	return cmd
}
