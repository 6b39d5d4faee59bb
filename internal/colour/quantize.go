package colour

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

const (
	// DefaultClusters is the default number of clusters to extract.
	DefaultClusters = 8

	// DefaultIterations is the fixed number of refinement passes. The
	// quantiser never checks for convergence: cost stays bounded and
	// predictable at the expense of solution quality.
	DefaultIterations = 5

	// maxClusters caps the cluster count a configuration will accept.
	maxClusters = 256

	// opaqueAlpha is the threshold below which a pixel is invisible to
	// clustering: it contributes to no assignment and no centroid update.
	opaqueAlpha = 128
)

// QuantizerConfig holds configuration for the quantiser.
type QuantizerConfig struct {
	Clusters   int
	Iterations int

	// Rand is the source used for centroid initialisation. A nil source
	// means a time-seeded one; tests inject a fixed seed to get
	// reproducible palettes.
	Rand *rand.Rand
}

// DefaultQuantizerConfig returns the default quantiser configuration.
func DefaultQuantizerConfig() QuantizerConfig {
	return QuantizerConfig{
		Clusters:   DefaultClusters,
		Iterations: DefaultIterations,
	}
}

// Validate validates the quantiser configuration.
func (c QuantizerConfig) Validate() error {
	if c.Clusters < 1 {
		return fmt.Errorf("cluster count must be at least 1, got %d", c.Clusters)
	}
	if c.Clusters > maxClusters {
		return fmt.Errorf("cluster count too large: %d (maximum: %d)", c.Clusters, maxClusters)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iteration count must be at least 1, got %d", c.Iterations)
	}
	return nil
}

// Quantizer reduces an RGBA pixel buffer to a small set of representative
// colours using bounded k-means clustering. Each Quantize call uses its own
// working buffers, so distinct Quantizer values are safe to run concurrently
// on different images.
type Quantizer struct {
	clusters   int
	iterations int
	rng        *rand.Rand
}

// NewQuantizer creates a Quantizer from the given configuration.
func NewQuantizer(cfg QuantizerConfig) *Quantizer {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Quantizer{
		clusters:   cfg.Clusters,
		iterations: cfg.Iterations,
		rng:        rng,
	}
}

// point3 is a point in 3D RGB colour space.
type point3 struct {
	r, g, b float64
}

// sqDist calculates the squared Euclidean distance between two points.
// The square root is skipped: squared distance orders candidates the same
// way and is cheaper.
func (p point3) sqDist(o point3) float64 {
	dr := p.r - o.r
	dg := p.g - o.g
	db := p.b - o.b
	return dr*dr + dg*dg + db*db
}

// Quantize clusters the interleaved R,G,B,A buffer into at most the
// configured number of colours, ranked by descending population.
//
// Centroids are initialised by sampling pixels uniformly at random with
// replacement (duplicates allowed, alpha ignored). Refinement then runs a
// fixed number of passes: each pass assigns every pixel with alpha >= 128 to
// its nearest centroid (ties to the lowest centroid index) and recomputes
// each non-empty cluster's centroid as the mean of its pixels. A cluster
// that ends a pass empty keeps its previous centroid; it is neither reseeded
// nor removed and can stay stranded for the remainder of the run.
//
// Clusters that finish with no assigned pixels are dropped, so the result
// may hold fewer colours than requested, and is empty when the buffer has no
// opaque pixels or the configured cluster count is not positive.
func (q *Quantizer) Quantize(buf []byte) ([]PaletteColor, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("pixel buffer length must be a multiple of 4, got %d", len(buf))
	}

	pixelCount := len(buf) / 4
	if q.clusters <= 0 || pixelCount == 0 {
		return []PaletteColor{}, nil
	}

	centroids := make([]point3, q.clusters)
	for i := range centroids {
		p := q.rng.Intn(pixelCount) * 4
		centroids[i] = point3{
			r: float64(buf[p]),
			g: float64(buf[p+1]),
			b: float64(buf[p+2]),
		}
	}

	// Per-call accumulators, reset every pass.
	sums := make([]point3, q.clusters)
	counts := make([]int, q.clusters)

	for iter := 0; iter < q.iterations; iter++ {
		for i := range sums {
			sums[i] = point3{}
			counts[i] = 0
		}

		for p := 0; p < len(buf); p += 4 {
			if buf[p+3] < opaqueAlpha {
				continue
			}
			px := point3{
				r: float64(buf[p]),
				g: float64(buf[p+1]),
				b: float64(buf[p+2]),
			}

			nearest := 0
			nearestDist := math.MaxFloat64
			for i, c := range centroids {
				if d := px.sqDist(c); d < nearestDist {
					nearestDist = d
					nearest = i
				}
			}

			sums[nearest].r += px.r
			sums[nearest].g += px.g
			sums[nearest].b += px.b
			counts[nearest]++
		}

		for i := range centroids {
			if counts[i] == 0 {
				continue
			}
			n := float64(counts[i])
			centroids[i] = point3{
				r: sums[i].r / n,
				g: sums[i].g / n,
				b: sums[i].b / n,
			}
		}
	}

	colors := make([]PaletteColor, 0, q.clusters)
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		rgb := RGB{
			R: math.Round(c.r),
			G: math.Round(c.g),
			B: math.Round(c.b),
		}
		hsl := rgb.ToHSL()
		colors = append(colors, PaletteColor{
			RGB:        rgb,
			HSL:        hsl,
			Hex:        rgb.Hex(),
			Population: counts[i],
			Score:      float64(counts[i]),
			IsVibrant:  hsl.S > 0.5 && hsl.L > 0.3 && hsl.L < 0.8,
			IsDark:     hsl.L < 0.4,
			IsLight:    hsl.L > 0.7,
		})
	}

	// Stable: equal populations keep centroid order.
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Population > colors[j].Population
	})

	return colors, nil
}
