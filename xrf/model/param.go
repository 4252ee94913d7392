package model

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by parameter handling.
var (
	ErrDuplicateParam = errors.New("model: duplicate parameter name")
	ErrUnknownParam   = errors.New("model: unknown parameter")
	ErrValueCount     = errors.New("model: value count mismatch")
)

// Bound selects how a parameter is constrained during fitting.
type Bound int

// Bound policies.
const (
	BoundNone  Bound = iota // vary freely
	BoundFixed              // hold at the current value
	BoundLo                 // vary with a lower limit
	BoundHi                 // vary with an upper limit
	BoundLoHi               // vary within [Min, Max]
)

var boundNames = [...]string{
	BoundNone:  "none",
	BoundFixed: "fixed",
	BoundLo:    "lo",
	BoundHi:    "hi",
	BoundLoHi:  "lohi",
}

// String returns the policy name used in configuration files.
func (b Bound) String() string {
	if b < 0 || int(b) >= len(boundNames) {
		return "unknown"
	}

	return boundNames[b]
}

// ParseBound resolves a policy name.
func ParseBound(s string) (Bound, bool) {
	for i, n := range boundNames {
		if n == s {
			return Bound(i), true
		}
	}

	return 0, false
}

// Profile is a named bundle of per-parameter bound policies used to run
// the same model through different fitting strategies.
type Profile int

// Fitting profiles.
const (
	// ProfileDefault keeps each parameter's built-in policy.
	ProfileDefault Profile = iota

	// ProfileFreeMore additionally frees the detector response and the
	// scatter peak shape.
	ProfileFreeMore

	// ProfileAdjustElement frees per-line position, width, and branching
	// ratio adjustments.
	ProfileAdjustElement

	// ProfileECalibration frees only the energy calibration.
	ProfileECalibration

	// ProfileLinear fixes everything except component amplitudes.
	ProfileLinear
)

var profileNames = [...]string{
	ProfileDefault:       "default",
	ProfileFreeMore:      "free_more",
	ProfileAdjustElement: "adjust_element",
	ProfileECalibration:  "e_calibration",
	ProfileLinear:        "linear",
}

// String returns the profile name used in configuration files.
func (p Profile) String() string {
	if p < 0 || int(p) >= len(profileNames) {
		return "unknown"
	}

	return profileNames[p]
}

// ParseProfile resolves a profile name.
func ParseProfile(s string) (Profile, bool) {
	for i, n := range profileNames {
		if n == s {
			return Profile(i), true
		}
	}

	return 0, false
}

// Param is one named model parameter.
type Param struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
	Bound Bound

	// Profiles optionally overrides the bound policy per profile.
	Profiles map[Profile]Bound

	// def remembers the policy the parameter was declared with, so that
	// switching back to ProfileDefault restores it.
	def Bound
}

// boundFor returns the effective policy under the given profile.
func (p Param) boundFor(profile Profile) Bound {
	if profile == ProfileDefault {
		return p.def
	}

	if b, ok := p.Profiles[profile]; ok {
		return b
	}

	return p.def
}

// Limits returns the box constraints implied by the active policy.
func (p Param) Limits() (lo, hi float64) {
	switch p.Bound {
	case BoundFixed:
		return p.Value, p.Value
	case BoundLo:
		return p.Min, math.Inf(1)
	case BoundHi:
		return math.Inf(-1), p.Max
	case BoundLoHi:
		return p.Min, p.Max
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// Params is an ordered, named parameter set.
type Params struct {
	list  []Param
	index map[string]int
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{index: make(map[string]int)}
}

// Add appends a parameter and returns its index.
func (ps *Params) Add(p Param) (int, error) {
	if _, ok := ps.index[p.Name]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateParam, p.Name)
	}

	p.def = p.Bound
	ps.list = append(ps.list, p)
	ps.index[p.Name] = len(ps.list) - 1

	return len(ps.list) - 1, nil
}

// Len returns the number of parameters.
func (ps *Params) Len() int { return len(ps.list) }

// At returns a pointer to the parameter at index i.
func (ps *Params) At(i int) *Param { return &ps.list[i] }

// Index returns the index of a named parameter.
func (ps *Params) Index(name string) (int, bool) {
	i, ok := ps.index[name]
	return i, ok
}

// Get returns a pointer to a named parameter.
func (ps *Params) Get(name string) (*Param, bool) {
	i, ok := ps.index[name]
	if !ok {
		return nil, false
	}

	return &ps.list[i], true
}

// Names returns the parameter names in declaration order.
func (ps *Params) Names() []string {
	out := make([]string, len(ps.list))
	for i := range ps.list {
		out[i] = ps.list[i].Name
	}

	return out
}

// Values returns a copy of the current parameter values.
func (ps *Params) Values() []float64 {
	out := make([]float64, len(ps.list))
	for i := range ps.list {
		out[i] = ps.list[i].Value
	}

	return out
}

// SetValues overwrites all parameter values.
func (ps *Params) SetValues(values []float64) error {
	if len(values) != len(ps.list) {
		return ErrValueCount
	}

	for i := range ps.list {
		ps.list[i].Value = values[i]
	}

	return nil
}

// UpdateFrom copies values for every matching name, typically from a
// previous fit result. Unknown names are ignored.
func (ps *Params) UpdateFrom(values map[string]float64) {
	for name, v := range values {
		if i, ok := ps.index[name]; ok {
			ps.list[i].Value = v
		}
	}
}

// ApplyProfile switches every parameter's active bound policy to its
// per-profile policy.
func (ps *Params) ApplyProfile(profile Profile) {
	for i := range ps.list {
		ps.list[i].Bound = ps.list[i].boundFor(profile)
	}
}

// Varying returns the indices of parameters the fitter may move.
func (ps *Params) Varying() []int {
	var out []int

	for i := range ps.list {
		if ps.list[i].Bound != BoundFixed {
			out = append(out, i)
		}
	}

	return out
}
