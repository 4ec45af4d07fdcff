package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordnet/pkg/config"
	"github.com/matzehuels/wordnet/pkg/observability/prom"
	"github.com/matzehuels/wordnet/pkg/server"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve noun queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.Override(config.Overrides{Addr: addr}); err != nil {
				return err
			}

			// Register before loading so the load itself is measured.
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			prom.New(reg).Register()

			wn, err := c.loadLexicon(cmd.Context())
			if err != nil {
				return err
			}

			srv, err := server.New(wn,
				server.WithLogger(loggerFromContext(cmd.Context())),
				server.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
				server.WithParallelism(c.cfg.Outcast.Parallelism),
			)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), c.cfg.Server)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
