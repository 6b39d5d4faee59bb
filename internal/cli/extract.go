package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
)

type extractOptions struct {
	colors       int
	iterations   int
	seed         int64
	maxDimension int
	format       string
	output       string
	preview      bool
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a labeled colour palette from an image",
		Long: `Extract a labeled colour palette from an image.

The image is downsampled, clustered with bounded k-means, and the resulting
colours are classified into semantic roles. The path may be a local file, a
directory (a random image is picked), or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract the default 8 colour clusters
  swatch extract wallpaper.jpg

  # Reproducible palette with previews and the spectrum strip
  swatch extract --seed 7 --preview wallpaper.png

  # All cluster colours as hex, one per line
  swatch extract -f hex wallpaper.jpg

  # Full palette as JSON, written to a file
  swatch extract -f json -o palette.json wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.colors, "colors", "c", colour.DefaultClusters, "number of colour clusters to extract (1-256)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", colour.DefaultIterations, "number of k-means refinement passes")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for reproducible palettes (0 = time-based)")
	cmd.Flags().IntVar(&opts.maxDimension, "max-dimension", imageutil.DefaultMaxDimension, "downsample so the longer side is at most this many pixels (0 disables)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "roles", "output format (roles, hex, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews and the spectrum strip")

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, imagePath string, opts *extractOptions) error {
	logger := newLogger(cmd)

	if err := imageutil.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	cfg := colour.QuantizerConfig{
		Clusters:   opts.colors,
		Iterations: opts.iterations,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if opts.seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(opts.seed))
	}

	resolved, err := imageutil.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	logger.Debug("loading image", "path", resolved)

	img, err := imageutil.NewSmartLoader().Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	img = imageutil.Downsample(img, opts.maxDimension)
	bounds = img.Bounds()
	logger.Debug("quantising", "width", bounds.Dx(), "height", bounds.Dy(),
		"clusters", opts.colors, "iterations", opts.iterations)

	palette, err := colour.ExtractPalette(imageutil.Pixels(img), cfg)
	if err != nil {
		if errors.Is(err, colour.ErrEmptyPalette) {
			return fmt.Errorf("no palette available: image has no opaque pixels")
		}
		return fmt.Errorf("failed to extract palette: %w", err)
	}
	logger.Debug("palette extracted", "colours", palette.Len())

	output, err := formatPalette(palette, opts.format, opts.preview)
	if err != nil {
		return err
	}

	if opts.output != "" {
		logger.Debug("writing output", "path", opts.output)
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(p *colour.Palette, format string, preview bool) (string, error) {
	switch format {
	case "roles":
		return formatRoles(p, preview), nil
	case "hex":
		return formatHex(p, preview), nil
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: roles, hex, json)", format)
	}
}

// formatRoles renders one line per semantic role, then the full colour list.
func formatRoles(p *colour.Palette, preview bool) string {
	var sb strings.Builder

	for _, role := range p.Roles() {
		if role.Colour == nil {
			fmt.Fprintf(&sb, "%-14s (none)\n", role.Name)
			continue
		}
		if preview {
			fmt.Fprintf(&sb, "%-14s %s %s (population %d)\n",
				role.Name, colour.Preview(role.Colour.RGB, 8), role.Colour.Hex, role.Colour.Population)
		} else {
			fmt.Fprintf(&sb, "%-14s %s (population %d)\n",
				role.Name, role.Colour.Hex, role.Colour.Population)
		}
	}

	fmt.Fprintf(&sb, "\nall colours (%d):\n", p.Len())
	for _, c := range p.AllColors {
		if preview {
			fmt.Fprintf(&sb, "  %s (population %d)\n", colour.FormatWithPreview(c.RGB, 8), c.Population)
		} else {
			fmt.Fprintf(&sb, "  %s (population %d)\n", c.Hex, c.Population)
		}
	}

	if preview {
		sb.WriteByte('\n')
		sb.WriteString(colour.SpectrumStrip(p.AllColors, terminalWidth()))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// formatHex renders every cluster colour as hex, one per line.
func formatHex(p *colour.Palette, preview bool) string {
	var sb strings.Builder
	for _, c := range p.AllColors {
		if preview {
			sb.WriteString(colour.FormatWithPreview(c.RGB, 8))
		} else {
			sb.WriteString(c.Hex)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// terminalWidth returns the stdout width, falling back to 80 columns when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
