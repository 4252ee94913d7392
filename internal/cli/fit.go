package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-xrf/xrf/fit"
	"github.com/cwbudde/algo-xrf/xrf/model"
)

// fitReport is the YAML export of a completed fit.
type fitReport struct {
	Spectrum         string             `yaml:"spectrum"`
	Converged        bool               `yaml:"converged"`
	ChiSquare        float64            `yaml:"chi_square"`
	ReducedChiSquare float64            `yaml:"reduced_chi_square"`
	Iterations       int                `yaml:"iterations"`
	Areas            map[string]float64 `yaml:"areas"`
	Parameters       map[string]float64 `yaml:"parameters"`
}

func newFitCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fit <spectrum.csv>",
		Short: "Fit the configured model to a spectrum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the fit report as YAML to this file")

	return cmd
}

func runFit(path, output string) error {
	p, err := prepare(cfg, path)
	if err != nil {
		return err
	}

	res, err := fit.Fit(p.spec, p.x, p.y, p.fitOptions...)
	if err != nil {
		return err
	}

	slog.Info("fit finished",
		"converged", res.Converged,
		"iterations", res.Iterations,
		"chi2", res.ChiSquare,
	)

	areas := make(map[string]float64, len(p.spec.Elements()))

	values := p.spec.Params().Values()
	for _, name := range p.spec.Elements() {
		a, err := p.spec.SumArea(name, values)
		if err != nil {
			return err
		}

		areas[name] = a
	}

	printFitTable(p.spec, res, areas)

	if output == "" {
		return nil
	}

	report := fitReport{
		Spectrum:         path,
		Converged:        res.Converged,
		ChiSquare:        res.ChiSquare,
		ReducedChiSquare: res.ReducedChiSquare,
		Iterations:       res.Iterations,
		Areas:            areas,
		Parameters:       res.Values,
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return err
	}

	return os.WriteFile(output, data, 0o644)
}

func printFitTable(spec *model.Spectrum, res *fit.Result, areas map[string]float64) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Element", "Total Area"})

	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		t.AppendRow(table.Row{name, fmt.Sprintf("%.1f", areas[name])})
	}

	t.Render()

	pt := table.NewWriter()
	pt.SetOutputMirror(os.Stdout)
	pt.SetStyle(table.StyleLight)
	pt.AppendHeader(table.Row{"Parameter", "Value", "Bound"})

	params := spec.Params()
	for _, i := range params.Varying() {
		p := params.At(i)
		pt.AppendRow(table.Row{p.Name, fmt.Sprintf("%.6g", p.Value), p.Bound.String()})
	}

	pt.Render()

	fmt.Println(res.Report())
}
