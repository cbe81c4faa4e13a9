// Package cli implements the zerrdemo command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zerr-io/zerr"
	"github.com/zerr-io/zerr/internal/config"
	"github.com/zerr-io/zerr/internal/logging"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	// Global flags
	cfgFile string

	// Loaded by the root PersistentPreRunE before any subcommand runs.
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zerrdemo",
	Short: "zerrdemo - Chained-error walkthroughs for the zerr library",
	Long: `zerrdemo exercises chained-error construction, wrapping,
classification and rendering from the command line.

Commands:
  argcheck - validate a single integer argument
  safediv  - divide two integers through a fallible result
  classify - call a flaky fake service and classify its failures

Example:
  zerrdemo argcheck 12
  zerrdemo safediv 10 0
  zerrdemo classify --from -1 --to 5 --seed 42`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return zerr.Wrapf(err, "load config %q", cfgFile)
		}
		logger = logging.New(logging.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (or set ZERRDEMO_* env vars)")

	// Add subcommands
	rootCmd.AddCommand(argcheckCmd)
	rootCmd.AddCommand(safedivCmd)
	rootCmd.AddCommand(classifyCmd)
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
