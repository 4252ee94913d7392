// Command xrfinfo prints X-ray emission line energies and branching ratios.
//
// Usage:
//
//	xrfinfo [flags] [element-name ...]
//
// Element names are symbols for K lines plus "_L"/"_M" suffixed forms for
// L and M lines: Fe, Cu, Pb_L, Au_M. Without arguments it prints every
// known line group.
//
// Examples:
//
//	xrfinfo Fe Cu
//	xrfinfo -energy 12 Pb_L
//	xrfinfo -energy 18
//	xrfinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-xrf/xrf/element"
)

func main() {
	energy := flag.Float64("energy", 0, "incident energy in keV; only groups excited at this energy are shown")
	list := flag.Bool("list", false, "list available element names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xrfinfo [flags] [element-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints X-ray emission line energies and branching ratios.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every known line group.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xrfinfo Fe Cu\n")
		fmt.Fprintf(os.Stderr, "  xrfinfo -energy 12 Pb_L\n")
		fmt.Fprintf(os.Stderr, "  xrfinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = allNames()
	}

	printLines(names, *energy)
}

// allNames returns every known line-group name: K symbols plus the
// suffixed L and M forms.
func allNames() []string {
	names := element.KSeries()
	names = append(names, element.LSeries()...)
	names = append(names, element.MSeries()...)

	return names
}

func printList() {
	names := allNames()
	sort.Strings(names)

	for _, n := range names {
		fmt.Println(n)
	}
}

func printLines(names []string, energy float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Element\tZ\tLine\tEnergy [keV]\tRatio\tEdge [keV]\n")
	fmt.Fprintf(tw, "-------\t-\t----\t------------\t-----\t----------\n")

	shown := 0

	for _, name := range names {
		el, grp, ok := element.Parse(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown element %q (use -list to see available)\n", name)
			continue
		}

		if energy > 0 && !el.Activated(grp, energy) {
			continue
		}

		edge := el.Edge(grp)
		for _, li := range el.Lines(grp) {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%.3f\t%.3f\t%.3f\n",
				name, el.Z, li.Line, li.Energy, li.Ratio, edge)
		}

		shown++
	}

	if shown == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching line groups\n")
		os.Exit(1)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
