// Package cli wires the showcase commands together.
package cli

import (
	"context"

	"github.com/billie-coop/showcase/internal/config"
	"github.com/spf13/cobra"
)

// options are shared by every command
type options struct {
	configDir string
	logLevel  string
}

// Execute runs the command line with os.Args
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Without a subcommand it runs the demo.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Promise based dialogs for terminal apps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts, demoFlags{})
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", config.DirName, "Directory holding config.json and logs")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error|off (overrides the config file)")

	root.AddCommand(
		newDemoCmd(opts),
		newServeCmd(opts),
		newMaskCmd(),
		newConfigCmd(opts),
	)
	return root
}

// loadConfig reads the config directory, applying the --log-level override
func loadConfig(opts *options) (*config.Manager, *config.Config, error) {
	mgr := config.NewManager(opts.configDir)
	if err := mgr.Load(); err != nil {
		return nil, nil, err
	}
	cfg := *mgr.Get()
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return mgr, &cfg, nil
}
