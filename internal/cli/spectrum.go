package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-xrf/internal/config"
	"github.com/cwbudde/algo-xrf/xrf/background"
	"github.com/cwbudde/algo-xrf/xrf/calib"
	"github.com/cwbudde/algo-xrf/xrf/fit"
	"github.com/cwbudde/algo-xrf/xrf/model"
)

// readSpectrum loads a CSV spectrum: either a single counts column where
// the row index is the channel, or channel,counts pairs. A non-numeric
// first row is treated as a header and skipped.
func readSpectrum(path string) (channels, counts []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.Comment = '#'

	row := 0

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if len(rec) == 0 {
			continue
		}

		first, errFirst := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if errFirst != nil {
			if row == 0 {
				continue // header
			}

			return nil, nil, fmt.Errorf("%s: bad value %q in row %d", path, rec[0], row+1)
		}

		switch len(rec) {
		case 1:
			channels = append(channels, float64(row))
			counts = append(counts, first)
		default:
			second, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: bad value %q in row %d", path, rec[1], row+1)
			}

			channels = append(channels, first)
			counts = append(counts, second)
		}

		row++
	}

	if len(counts) == 0 {
		return nil, nil, fmt.Errorf("%s: no data rows", path)
	}

	return channels, counts, nil
}

// prepared is a spectrum clipped to the fit window with the continuum
// removed, plus the model built from the configuration.
type prepared struct {
	x, y       []float64
	bg         []float64
	spec       *model.Spectrum
	fitOptions []fit.Option
}

// prepare builds the model and the fit-ready data from a spectrum file and
// the loaded configuration.
func prepare(cfg *config.Config, path string) (*prepared, error) {
	channels, counts, err := readSpectrum(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("spectrum loaded", "path", path, "channels", len(channels))

	bg, err := background.Estimate(counts, background.Config{
		Width:      cfg.Background.Width,
		Iterations: cfg.Background.Iterations,
		Smooth:     cfg.Background.Smooth,
	})
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	net := make([]float64, len(counts))
	for i := range counts {
		net[i] = counts[i] - bg[i]
		if net[i] < 0 {
			net[i] = 0
		}
	}

	cal := calib.Energy{
		Offset:    cfg.Calibration.Offset,
		Linear:    cfg.Calibration.Linear,
		Quadratic: cfg.Calibration.Quadratic,
	}

	x, y, err := fit.ClipRange(cal, cfg.EnergyLow, cfg.EnergyHigh, channels, net)
	if err != nil {
		return nil, err
	}

	if len(x) == 0 {
		return nil, fmt.Errorf("no channels in energy window [%g, %g]", cfg.EnergyLow, cfg.EnergyHigh)
	}

	spec, err := model.New(model.Config{
		Elements:       cfg.Elements,
		IncidentEnergy: cfg.IncidentEnergy,
	})
	if err != nil {
		return nil, err
	}

	for _, name := range spec.Skipped() {
		slog.Warn("element skipped", "element", name, "incident_kev", cfg.IncidentEnergy)
	}

	params := spec.Params()
	params.UpdateFrom(map[string]float64{
		model.ParamEOffset:    cfg.Calibration.Offset,
		model.ParamELinear:    cfg.Calibration.Linear,
		model.ParamEQuadratic: cfg.Calibration.Quadratic,
	})
	params.UpdateFrom(cfg.Params)
	params.ApplyProfile(cfg.ModelProfile())

	var opts []fit.Option
	if cfg.Weights == "counting" {
		opts = append(opts, fit.WithCountingWeights())
	}

	if cfg.MaxIterations > 0 {
		opts = append(opts, fit.WithMaxIterations(cfg.MaxIterations))
	}

	return &prepared{x: x, y: y, bg: bg, spec: spec, fitOptions: opts}, nil
}
