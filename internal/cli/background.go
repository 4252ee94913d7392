package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/xrf/background"
)

func newBackgroundCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "background <spectrum.csv>",
		Short: "Estimate and export the spectrum continuum",
		Long: `Background runs the configured SNIP estimator over a spectrum and
writes channel, counts, background rows as CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackground(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default stdout)")

	return cmd
}

func runBackground(path, output string) error {
	channels, counts, err := readSpectrum(path)
	if err != nil {
		return err
	}

	bg, err := background.Estimate(counts, background.Config{
		Width:      cfg.Background.Width,
		Iterations: cfg.Background.Iterations,
		Smooth:     cfg.Background.Smooth,
	})
	if err != nil {
		return err
	}

	out := os.Stdout

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()

		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"channel", "counts", "background"}); err != nil {
		return err
	}

	for i := range channels {
		rec := []string{
			strconv.FormatFloat(channels[i], 'g', -1, 64),
			strconv.FormatFloat(counts[i], 'g', -1, 64),
			strconv.FormatFloat(bg[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}
