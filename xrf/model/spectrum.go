package model

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xrf/xrf/element"
	"github.com/cwbudde/algo-xrf/xrf/lineshape"
)

// Errors returned by model construction and evaluation.
var (
	ErrNoElements       = errors.New("model: no usable elements")
	ErrInvalidIncident  = errors.New("model: incident energy must be > 0")
	ErrLengthMismatch   = errors.New("model: dst and x length mismatch")
	ErrUnknownComponent = errors.New("model: unknown component")
)

// Config describes the spectrum to model.
type Config struct {
	// Elements lists element names: plain symbols for K lines, "_L"/"_M"
	// suffixes for L and M lines ("Fe", "Pb_L", "Au_M"). Unknown names and
	// groups not excited at the incident energy are skipped.
	Elements []string

	// IncidentEnergy is the beam energy in keV.
	IncidentEnergy float64
}

// peak is one emission line bound to slots in the parameter vector.
// Line areas within a group share one area parameter; the fixed branching
// ratio differentiates the siblings.
type peak struct {
	name   string
	line   element.Line
	center float64 // keV
	ratio  float64

	area        int
	deltaCenter int
	deltaSigma  int
	ratioAdjust int // -1: constant 1
}

// group collects the peaks modeled for one requested element name.
type group struct {
	name  string // as requested, e.g. "Pb_L"
	peaks []int  // indices into Spectrum.peaks
	area  int    // shared area parameter
}

// globalIdx caches the parameter indices shared by every component.
type globalIdx struct {
	eOff, eLin, eQuad    int
	fwhmOff, fano        int
	cohE, cohAmp         int
	compAmp, compAngle   int
	compGamma, compFTail int
	compFStep, compCorr  int
	compHiGamma          int
	compHiFTail          int
}

// Spectrum is a composite XRF spectrum model.
type Spectrum struct {
	params  *Params
	gi      globalIdx
	peaks   []peak
	groups  []group
	skipped []string
}

// New builds a spectrum model for the configured elements.
func New(cfg Config) (*Spectrum, error) {
	if cfg.IncidentEnergy <= 0 {
		return nil, ErrInvalidIncident
	}

	s := &Spectrum{params: NewParams()}

	if err := s.addGlobals(cfg.IncidentEnergy); err != nil {
		return nil, err
	}

	for _, name := range cfg.Elements {
		el, grp, ok := element.Parse(name)
		if !ok || !el.Activated(grp, cfg.IncidentEnergy) {
			s.skipped = append(s.skipped, name)
			continue
		}

		if err := s.addElement(name, el, grp); err != nil {
			return nil, err
		}
	}

	if len(s.groups) == 0 {
		return nil, fmt.Errorf("%w (requested %v)", ErrNoElements, cfg.Elements)
	}

	return s, nil
}

func (s *Spectrum) addGlobals(incidentKeV float64) error {
	idx := map[string]*int{
		ParamEOffset:         &s.gi.eOff,
		ParamELinear:         &s.gi.eLin,
		ParamEQuadratic:      &s.gi.eQuad,
		ParamFWHMOffset:      &s.gi.fwhmOff,
		ParamFanoPrime:       &s.gi.fano,
		ParamCoherentE:       &s.gi.cohE,
		ParamCoherentAmp:     &s.gi.cohAmp,
		ParamComptonAmp:      &s.gi.compAmp,
		ParamComptonAngle:    &s.gi.compAngle,
		ParamComptonGamma:    &s.gi.compGamma,
		ParamComptonFTail:    &s.gi.compFTail,
		ParamComptonFStep:    &s.gi.compFStep,
		ParamComptonFWHMCorr: &s.gi.compCorr,
		ParamComptonHiGamma:  &s.gi.compHiGamma,
		ParamComptonHiFTail:  &s.gi.compHiFTail,
	}

	for _, p := range defaultGlobals(incidentKeV) {
		i, err := s.params.Add(p)
		if err != nil {
			return err
		}

		if slot, ok := idx[p.Name]; ok {
			*slot = i
		}
	}

	return nil
}

// addElement creates the peaks and per-line parameters of one line group.
func (s *Spectrum) addElement(name string, el element.Element, grp element.Group) error {
	lines := el.Lines(grp)
	if len(lines) == 0 {
		return nil
	}

	primary := lines[0]

	ap := defaultArea()
	ap.Name = fmt.Sprintf("%s_%s_area", el.Symbol, primary.Line)
	ap.Value = 1e5

	areaIdx, err := s.params.Add(ap)
	if err != nil {
		return err
	}

	g := group{name: name, area: areaIdx}

	var primaryDC, primaryDS int

	for _, li := range lines {
		if li.Ratio <= 0 {
			continue
		}

		pk := peak{
			name:   fmt.Sprintf("%s_%s", el.Symbol, li.Line),
			line:   li.Line,
			center: li.Energy,
			ratio:  li.Ratio,
			area:   areaIdx,
		}

		// Ka2 follows Ka1's position and width corrections; every other
		// line gets its own.
		if li.Line == element.Ka2 {
			pk.deltaCenter = primaryDC
			pk.deltaSigma = primaryDS
		} else {
			dc := defaultDeltaCenter()
			dc.Name = pk.name + "_delta_center"

			pk.deltaCenter, err = s.params.Add(dc)
			if err != nil {
				return err
			}

			ds := defaultDeltaSigma()
			ds.Name = pk.name + "_delta_sigma"

			pk.deltaSigma, err = s.params.Add(ds)
			if err != nil {
				return err
			}
		}

		if li.Line == primary.Line {
			primaryDC, primaryDS = pk.deltaCenter, pk.deltaSigma
			pk.ratioAdjust = -1
		} else if li.Line == element.Ka2 {
			pk.ratioAdjust = -1
		} else {
			ra := defaultRatioAdjust()
			ra.Name = pk.name + "_ratio_adjust"

			pk.ratioAdjust, err = s.params.Add(ra)
			if err != nil {
				return err
			}
		}

		s.peaks = append(s.peaks, pk)
		g.peaks = append(g.peaks, len(s.peaks)-1)
	}

	s.groups = append(s.groups, g)

	return nil
}

// Params returns the model's parameter set.
func (s *Spectrum) Params() *Params { return s.params }

// Skipped returns the requested element names that were dropped because
// they are unknown or not excited at the incident energy.
func (s *Spectrum) Skipped() []string { return s.skipped }

// Elements returns the modeled element names in declaration order.
func (s *Spectrum) Elements() []string {
	out := make([]string, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.name
	}

	return out
}

// energyAxis fills en with the calibrated energies of the channels in x.
func (s *Spectrum) energyAxis(en, x, v []float64) {
	off, lin, quad := v[s.gi.eOff], v[s.gi.eLin], v[s.gi.eQuad]

	for i, ch := range x {
		en[i] = off + ch*lin + ch*ch*quad
	}
}

func (s *Spectrum) response(v []float64) lineshape.Response {
	return lineshape.Response{FWHMOffset: v[s.gi.fwhmOff], FanoPrime: v[s.gi.fano]}
}

func (s *Spectrum) compton(v []float64) lineshape.Compton {
	return lineshape.Compton{
		Amplitude:      v[s.gi.compAmp],
		IncidentEnergy: v[s.gi.cohE],
		Angle:          v[s.gi.compAngle],
		FWHMCorr:       v[s.gi.compCorr],
		FStep:          v[s.gi.compFStep],
		FTail:          v[s.gi.compFTail],
		Gamma:          v[s.gi.compGamma],
		HiFTail:        v[s.gi.compHiFTail],
		HiGamma:        v[s.gi.compHiGamma],
		Response:       s.response(v),
	}
}

func (s *Spectrum) elastic(v []float64) lineshape.Elastic {
	return lineshape.Elastic{
		Amplitude: v[s.gi.cohAmp],
		Energy:    v[s.gi.cohE],
		Response:  s.response(v),
	}
}

// evalPeak accumulates one emission line into dst over the energy axis en.
func (s *Spectrum) evalPeak(dst, en []float64, pk peak, v []float64, resp lineshape.Response) {
	area := v[pk.area] * pk.ratio
	if pk.ratioAdjust >= 0 {
		area *= v[pk.ratioAdjust]
	}

	center := pk.center + v[pk.deltaCenter]

	// The width follows the detector response at the nominal line energy.
	sigma := resp.Sigma(pk.center) + v[pk.deltaSigma]
	if sigma <= 0 || area == 0 {
		return
	}

	for i, e := range en {
		dst[i] += lineshape.GaussianAt(e, area, center, sigma)
	}
}

// Eval fills dst with the model evaluated at the channel positions x
// using the given parameter values.
func (s *Spectrum) Eval(dst, x, v []float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}

	if len(v) != s.params.Len() {
		return ErrValueCount
	}

	en := make([]float64, len(x))
	s.energyAxis(en, x, v)

	tmp := make([]float64, len(x))
	if err := s.compton(v).Eval(dst, en); err != nil {
		return err
	}

	if err := s.elastic(v).Eval(tmp, en); err != nil {
		return err
	}

	vecmath.AddBlockInPlace(dst, tmp)

	resp := s.response(v)
	for _, pk := range s.peaks {
		s.evalPeak(dst, en, pk, v, resp)
	}

	return nil
}

// EvalCurrent evaluates the model with its current parameter values.
func (s *Spectrum) EvalCurrent(dst, x []float64) error {
	return s.Eval(dst, x, s.params.Values())
}

// ComponentNames returns the element groups plus the two scatter
// components, in evaluation order.
func (s *Spectrum) ComponentNames() []string {
	out := make([]string, 0, len(s.groups)+2)
	for _, g := range s.groups {
		out = append(out, g.name)
	}

	return append(out, "compton", "elastic")
}

// EvalComponent fills dst with a single component evaluated at x.
// Component names are element names plus "compton" and "elastic".
func (s *Spectrum) EvalComponent(name string, dst, x, v []float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}

	if len(v) != s.params.Len() {
		return ErrValueCount
	}

	en := make([]float64, len(x))
	s.energyAxis(en, x, v)

	switch name {
	case "compton":
		return s.compton(v).Eval(dst, en)
	case "elastic":
		return s.elastic(v).Eval(dst, en)
	}

	for _, g := range s.groups {
		if g.name != name {
			continue
		}

		for i := range dst {
			dst[i] = 0
		}

		resp := s.response(v)
		for _, pi := range g.peaks {
			s.evalPeak(dst, en, s.peaks[pi], v, resp)
		}

		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownComponent, name)
}

// SumArea returns the total fitted area of an element's line group:
// the shared area parameter scaled by every line's branching ratio and
// ratio adjustment.
func (s *Spectrum) SumArea(name string, v []float64) (float64, error) {
	if len(v) != s.params.Len() {
		return 0, ErrValueCount
	}

	for _, g := range s.groups {
		if g.name != name {
			continue
		}

		sum := 0.0

		for _, pi := range g.peaks {
			pk := s.peaks[pi]

			a := v[pk.area] * pk.ratio
			if pk.ratioAdjust >= 0 {
				a *= v[pk.ratioAdjust]
			}

			sum += a
		}

		return sum, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownComponent, name)
}
