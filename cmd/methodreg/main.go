// Command methodreg lists and selects azimuthal integration methods.
package main

import (
	"fmt"
	"os"

	"github.com/azint/methodreg/internal"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%smethodreg: %v%s\n",
			internal.StderrColor(internal.ColorRed), err, internal.StderrColor(internal.ColorReset))
		os.Exit(1)
	}
}
