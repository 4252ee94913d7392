package element

import (
	"sort"
	"strings"
)

// LineInfo describes one emission line of an element.
type LineInfo struct {
	Line   Line
	Energy float64 // keV
	Ratio  float64 // intensity relative to the strongest line of the group
}

// Element holds the emission line and absorption edge data of one element.
type Element struct {
	Symbol string
	Z      int

	// Shell edges in keV; zero means no tabulated data for that series.
	KEdge  float64
	L3Edge float64
	M5Edge float64

	lines []LineInfo
}

// Lines returns the tabulated lines of the given group, strongest first.
// The returned slice is a copy.
func (e Element) Lines(g Group) []LineInfo {
	out := make([]LineInfo, 0, 4)

	for _, li := range e.lines {
		if li.Line.Group() == g {
			out = append(out, li)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Ratio > out[j].Ratio })

	return out
}

// LineEnergy returns the energy of a specific line, if tabulated.
func (e Element) LineEnergy(l Line) (float64, bool) {
	for _, li := range e.lines {
		if li.Line == l {
			return li.Energy, true
		}
	}

	return 0, false
}

// Edge returns the absorption edge gating the given line group.
func (e Element) Edge(g Group) float64 {
	switch g {
	case GroupK:
		return e.KEdge
	case GroupL:
		return e.L3Edge
	case GroupM:
		return e.M5Edge
	default:
		return 0
	}
}

// Activated reports whether the incident beam energy can excite the group.
// Groups without tabulated data are never activated.
func (e Element) Activated(g Group, incidentKeV float64) bool {
	edge := e.Edge(g)
	if edge <= 0 {
		return false
	}

	return incidentKeV > edge && len(e.Lines(g)) > 0
}

// Get looks up an element by symbol ("Fe"). The lookup is case-sensitive.
func Get(symbol string) (Element, bool) {
	e, ok := table[symbol]
	return e, ok
}

// MustGet is like Get but panics on unknown symbols. Intended for tests
// and static tables.
func MustGet(symbol string) Element {
	e, ok := table[symbol]
	if !ok {
		panic("element: unknown symbol " + symbol)
	}

	return e
}

// Symbols returns all tabulated element symbols in atomic number order.
func Symbols() []string {
	out := make([]string, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}

	sort.Slice(out, func(i, j int) bool { return table[out[i]].Z < table[out[j]].Z })

	return out
}

// Parse splits a model element name into symbol and line group.
// Plain symbols select the K series; the "_L" and "_M" suffixes select
// the L and M series ("Pb_L", "Au_M").
func Parse(name string) (Element, Group, bool) {
	group := GroupK
	sym := name

	switch {
	case strings.HasSuffix(name, "_L"):
		group = GroupL
		sym = strings.TrimSuffix(name, "_L")
	case strings.HasSuffix(name, "_M"):
		group = GroupM
		sym = strings.TrimSuffix(name, "_M")
	}

	e, ok := table[sym]
	if !ok {
		return Element{}, 0, false
	}

	return e, group, true
}

// KSeries lists the element names modeled through their K lines.
func KSeries() []string {
	return filterSeries(GroupK, "")
}

// LSeries lists the element names modeled through their L lines.
func LSeries() []string {
	return filterSeries(GroupL, "_L")
}

// MSeries lists the element names modeled through their M lines.
func MSeries() []string {
	return filterSeries(GroupM, "_M")
}

func filterSeries(g Group, suffix string) []string {
	var out []string

	for _, sym := range Symbols() {
		e := table[sym]
		if e.Edge(g) > 0 && len(e.Lines(g)) > 0 {
			out = append(out, sym+suffix)
		}
	}

	return out
}
