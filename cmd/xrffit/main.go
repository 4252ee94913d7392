// Command xrffit fits XRF spectrum models to measured spectra.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-xrf/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
