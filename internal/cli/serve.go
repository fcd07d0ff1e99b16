package cli

import (
	"time"

	"github.com/billie-coop/showcase/internal/httpapi"
	"github.com/billie-coop/showcase/internal/logging"
	"github.com/billie-coop/showcase/internal/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		addr    string
		latency time.Duration
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the users API backing the user lookup",
		Example: "  showcase serve --addr :4000 --latency 200ms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.APIAddr
			}

			logger, err := logging.Console(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			dir, err := search.LoadDirectory()
			if err != nil {
				return err
			}

			handler := httpapi.NewRouter(dir,
				httpapi.WithLogger(logger),
				httpapi.WithRegistry(prometheus.NewRegistry()),
				httpapi.WithLatency(latency),
			)
			return httpapi.Serve(cmd.Context(), addr, handler, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to api_addr from the config)")
	cmd.Flags().DurationVar(&latency, "latency", 0, "Artificial delay added to every list request")
	return cmd
}
