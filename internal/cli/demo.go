package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/httpapi"
	"github.com/billie-coop/showcase/internal/logging"
	"github.com/billie-coop/showcase/internal/search"
	"github.com/billie-coop/showcase/internal/tui"
	dlg "github.com/billie-coop/showcase/internal/tui/components/dialog"
	"github.com/billie-coop/showcase/internal/tui/events"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// demoFlags are the flags of the demo command
type demoFlags struct {
	api         string
	metricsAddr string
}

func newDemoCmd(opts *options) *cobra.Command {
	var flags demoFlags
	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Open the interactive dialog demo",
		Example: "  showcase demo\n  showcase demo --api http://localhost:4000\n  showcase demo --metrics-addr :9090",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts, flags)
		},
	}
	cmd.Flags().StringVar(&flags.api, "api", "", "Users API base URL for the user lookup (defaults to the built-in directory)")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve dialog metrics on this address while the demo runs")
	return cmd
}

func runDemo(cmd *cobra.Command, opts *options, flags demoFlags) error {
	mgr, cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := styles.DefaultManager().SetTheme(cfg.Theme); err != nil {
		return err
	}

	logPath := cfg.LogFile
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(mgr.Dir(), logPath)
	}
	logger, logFile, err := logging.File(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	searcher, err := newSearcher(flags.api, cfg.PageSize, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	bus := events.NewBus(events.WithBusLogger[*dialog.Request](logger))
	svc := dialog.NewService(bus,
		dialog.WithLogger(logger),
		dialog.WithStrictHost(cfg.StrictHost),
		dialog.WithMetrics(dialog.NewMetrics(reg)),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	stopMetrics := serveMetrics(ctx, flags.metricsAddr, reg, logger)
	defer func() {
		cancel()
		stopMetrics()
		logDialogTotals(reg, logger)
	}()

	logger.Info().Str("config", mgr.Path()).Bool("remote_search", flags.api != "").Msg("starting demo")
	err = tui.Run(ctx, tui.Deps{
		Bus:      bus,
		Service:  svc,
		Searcher: searcher,
		Logger:   logger,
		PageSize: cfg.PageSize,
		Loading: dlg.ProgressProps{
			Duration:    cfg.LoadingDuration(),
			SettleDelay: cfg.SettleDelay(),
			SuccessRate: cfg.LoadingSuccessRate,
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("demo failed")
		return err
	}
	logger.Info().Msg("demo finished")
	return nil
}

func newSearcher(api string, pageSize int, logger zerolog.Logger) (search.Searcher, error) {
	if api != "" {
		return search.NewClient(api, search.WithClientLogger(logger)), nil
	}
	dir, err := search.LoadDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}
	logger.Debug().Int("users", dir.Len()).Int("page_size", pageSize).Msg("using built-in directory")
	return dir, nil
}

// serveMetrics exposes reg on addr until ctx is done. The returned func waits
// for the server to stop. An empty addr serves nothing.
func serveMetrics(ctx context.Context, addr string, reg prometheus.Gatherer, logger zerolog.Logger) func() {
	if addr == "" {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := httpapi.Serve(ctx, addr, httpapi.NewMetricsRouter(reg), logger); err != nil {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	return func() { <-done }
}

// dialogTotals sums every dialog counter in g across its labels, keyed by
// metric name.
func dialogTotals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	totals := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "showcase_dialog_") || !strings.HasSuffix(mf.GetName(), "_total") {
			continue
		}
		for _, m := range mf.GetMetric() {
			totals[mf.GetName()] += m.GetCounter().GetValue()
		}
	}
	return totals, nil
}

func logDialogTotals(g prometheus.Gatherer, logger zerolog.Logger) {
	totals, err := dialogTotals(g)
	if err != nil {
		logger.Warn().Err(err).Msg("dialog totals unavailable")
		return
	}
	logger.Info().
		Float64("opened", totals["showcase_dialog_opened_total"]).
		Float64("resolved", totals["showcase_dialog_resolved_total"]).
		Float64("dropped", totals["showcase_dialog_dropped_total"]).
		Msg("dialog totals")
}
