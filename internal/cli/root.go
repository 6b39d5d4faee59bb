// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Extract labeled colour palettes from images",
		Long: `Swatch extracts a small, labeled colour palette from an image.

Colours are clustered with bounded k-means and classified into semantic
roles (dominant, vibrant, muted, dark-vibrant, light-vibrant) using
saturation and lightness heuristics weighted by population.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// British and American spellings both work for colour flags.
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagSpelling)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// normalizeFlagSpelling maps the British flag spellings onto the canonical
// flag names.
func normalizeFlagSpelling(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "colours" {
		name = "colors"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the logger used by subcommands. --verbose lowers the
// level to Debug; the default only surfaces warnings.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Level:  level,
		Output: os.Stderr,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
