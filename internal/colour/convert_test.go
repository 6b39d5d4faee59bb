package colour

import (
	"math"
	"math/rand"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "#ff0000",
		},
		{
			name: "green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: "#00ff00",
		},
		{
			name: "blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: "#0000ff",
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: "#ffffff",
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "#000000",
		},
		{
			name: "grey",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: "#808080",
		},
		{
			name: "fractional centroid rounds to nearest",
			rgb:  RGB{R: 127.5, G: 10.4, B: 200.6},
			want: "#800ac9",
		},
		{
			name: "out of range clamps",
			rgb:  RGB{R: -3, G: 256, B: 255.4},
			want: "#00ffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBHexPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		rgb := RGB{
			R: rng.Float64()*300 - 20,
			G: rng.Float64()*300 - 20,
			B: rng.Float64()*300 - 20,
		}
		if got := rgb.Hex(); !pattern.MatchString(got) {
			t.Fatalf("Hex() = %q does not match #[0-9a-f]{6} for %+v", got, rgb)
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: HSL{H: 0, S: 1, L: 0.5},
		},
		{
			name: "green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: HSL{H: 120, S: 1, L: 0.5},
		},
		{
			name: "blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: HSL{H: 240, S: 1, L: 0.5},
		},
		{
			name: "white is achromatic",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: HSL{H: 0, S: 0, L: 1},
		},
		{
			name: "black is achromatic",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: HSL{H: 0, S: 0, L: 0},
		},
		{
			name: "grey is achromatic",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: HSL{H: 0, S: 0, L: 128.0 / 255.0},
		},
		{
			name: "magenta wraps negative hue",
			rgb:  RGB{R: 255, G: 0, B: 255},
			want: HSL{H: 300, S: 1, L: 0.5},
		},
		{
			name: "dark red",
			rgb:  RGB{R: 128, G: 0, B: 0},
			want: HSL{H: 0, S: 1, L: 64.0 / 255.0},
		},
		{
			name: "light desaturated blue",
			rgb:  RGB{R: 200, G: 220, B: 255},
			want: HSL{H: 218.18181818181819, S: 1, L: 455.0 / 510.0},
		},
	}

	const epsilon = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.ToHSL()
			if math.Abs(got.H-tt.want.H) > epsilon ||
				math.Abs(got.S-tt.want.S) > epsilon ||
				math.Abs(got.L-tt.want.L) > epsilon {
				t.Errorf("ToHSL() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestRGBToHSLMatchesColorful cross-checks the conversion against an
// independent implementation.
func TestRGBToHSLMatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	const epsilon = 1e-6
	for i := 0; i < 200; i++ {
		r := float64(rng.Intn(256))
		g := float64(rng.Intn(256))
		b := float64(rng.Intn(256))

		got := RGB{R: r, G: g, B: b}.ToHSL()
		wantH, wantS, wantL := colorful.Color{R: r / 255.0, G: g / 255.0, B: b / 255.0}.Hsl()

		if math.Abs(got.H-wantH) > epsilon ||
			math.Abs(got.S-wantS) > epsilon ||
			math.Abs(got.L-wantL) > epsilon {
			t.Fatalf("ToHSL() = %+v, colorful says h=%v s=%v l=%v for rgb(%v, %v, %v)",
				got, wantH, wantS, wantL, r, g, b)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: 0,
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: 1,
		},
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: 0.2126,
		},
		{
			name: "green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: 0.7152,
		},
		{
			name: "blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: 0.0722,
		},
	}

	const epsilon = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Luminance(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLuminanceRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		rgb := RGB{
			R: float64(rng.Intn(256)),
			G: float64(rng.Intn(256)),
			B: float64(rng.Intn(256)),
		}
		if got := rgb.Luminance(); got < 0 || got > 1 {
			t.Fatalf("Luminance() = %v outside [0, 1] for %+v", got, rgb)
		}
	}
}

// TestLuminanceLinearSegment exercises the piecewise boundary of the sRGB
// gamma expansion.
func TestLuminanceLinearSegment(t *testing.T) {
	// 10/255 ≈ 0.0392 is on the linear side of the 0.03928 cutoff.
	low := RGB{R: 10, G: 10, B: 10}
	want := 10.0 / 255.0 / 12.92
	if got := low.Luminance(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Luminance() = %v, want %v for linear segment", got, want)
	}

	// 11/255 ≈ 0.0431 is on the power-law side.
	high := RGB{R: 11, G: 11, B: 11}
	want = math.Pow((11.0/255.0+0.055)/1.055, 2.4)
	if got := high.Luminance(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Luminance() = %v, want %v for power-law segment", got, want)
	}
}
