// Package cli implements the xrffit command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool

	cfg *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xrffit",
		Short: "Fit XRF spectrum models to measured spectra",
		Long: `xrffit fits a model of element emission lines, Compton and elastic
scatter peaks to a measured X-ray fluorescence spectrum, and screens
spectra for element content with a fast non-negative linear pre-fit.

Spectra are CSV files with one counts column, or two columns
(channel, counts). Fit settings come from xrf.yaml (see the config
flag) and ALGOXRF_-prefixed environment variables.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			setupLogger(verbose)

			var err error
			cfg, err = config.Load(cfgFile)

			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default xrf.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newFitCmd())
	rootCmd.AddCommand(newScreenCmd())
	rootCmd.AddCommand(newBackgroundCmd())

	return rootCmd
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
