package model

import (
	"errors"
	"fmt"
	"strings"
)

// Property selects which per-line parameters Adjust operates on.
type Property int

const (
	// Position adjusts the line center offsets of a group.
	Position Property = iota
	// Width adjusts the line sigma offsets of a group.
	Width
	// Area adjusts the shared group area.
	Area
	// Ratio adjusts the branching-ratio corrections of the non-primary
	// lines of a group.
	Ratio
)

var propertyNames = [...]string{"position", "width", "area", "ratio"}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}

	return propertyNames[p]
}

// ParseProperty resolves a property by its lower-case name.
func ParseProperty(s string) (Property, bool) {
	for i, n := range propertyNames {
		if n == strings.ToLower(s) {
			return Property(i), true
		}
	}

	return 0, false
}

// ErrUnknownElement reports an Adjust target that is not part of the model.
var ErrUnknownElement = errors.New("model: element not in model")

// Adjust overrides the bound policy of a property across the named element
// groups. It changes the currently effective bounds; a later ApplyProfile
// replaces the override.
func (s *Spectrum) Adjust(elements []string, prop Property, bound Bound) error {
	for _, name := range elements {
		g, ok := s.lookupGroup(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownElement, name)
		}

		switch prop {
		case Area:
			s.params.list[g.area].Bound = bound
		case Position, Width, Ratio:
			s.adjustLines(g, prop, bound)
		default:
			return fmt.Errorf("model: invalid property %d", int(prop))
		}
	}

	return nil
}

func (s *Spectrum) adjustLines(g group, prop Property, bound Bound) {
	for _, pi := range g.peaks {
		pk := s.peaks[pi]

		switch prop {
		case Position:
			s.params.list[pk.deltaCenter].Bound = bound
		case Width:
			s.params.list[pk.deltaSigma].Bound = bound
		case Ratio:
			if pk.ratioAdjust >= 0 {
				s.params.list[pk.ratioAdjust].Bound = bound
			}
		}
	}
}

func (s *Spectrum) lookupGroup(name string) (group, bool) {
	for _, g := range s.groups {
		if g.name == name {
			return g, true
		}
	}

	return group{}, false
}
