// Swatch - labeled colour palette extraction
//
// Swatch clusters an image's pixels into a small colour palette and labels
// the clusters with semantic roles.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
