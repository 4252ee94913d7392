package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/xrf/fit"
)

func newScreenCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "screen <spectrum.csv>",
		Short: "Screen a spectrum for element content with a linear pre-fit",
		Long: `Screen solves a weighted non-negative linear fit of the configured
model components against the spectrum. It is much faster than a full
fit and reports a relative amplitude per component; components below
the threshold are likely absent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(args[0], threshold)
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.01, "amplitudes below this are flagged absent")

	return cmd
}

func runScreen(path string, threshold float64) error {
	p, err := prepare(cfg, path)
	if err != nil {
		return err
	}

	amps, rnorm, err := fit.Screen(p.spec, p.x, p.y)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Component", "Amplitude", "Verdict"})

	for _, a := range amps {
		verdict := "present"
		if a.Scale < threshold {
			verdict = "absent"
		}

		t.AppendRow(table.Row{a.Name, fmt.Sprintf("%.4f", a.Scale), verdict})
	}

	t.Render()

	fmt.Printf("residual norm %.4g\n", rnorm)

	return nil
}
