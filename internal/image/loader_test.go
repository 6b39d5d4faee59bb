package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-colour PNG and returns its path.
func writeTestPNG(t *testing.T, dir, name string, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "red.png", color.NRGBA{R: 255, A: 255})

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("Load() size = %dx%d, want 4x4", bounds.Dx(), bounds.Dy())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{
			name: "empty path",
			path: "",
		},
		{
			name: "missing file",
			path: filepath.Join(dir, "missing.png"),
		},
		{
			name: "directory",
			path: dir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFileLoader().Load(tt.path); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestFileLoaderRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := NewFileLoader().Load(path); err == nil {
		t.Error("Load() error = nil, want decode error")
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	valid := writeTestPNG(t, dir, "ok.png", color.NRGBA{G: 255, A: 255})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "valid png",
			path:    valid,
			wantErr: false,
		},
		{
			name:    "directory is accepted",
			path:    dir,
			wantErr: false,
		},
		{
			name:    "url is accepted without fetching",
			path:    "https://example.com/wallpaper.jpg",
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.png"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", color.NRGBA{R: 255, A: 255})
	writeTestPNG(t, dir, "b.png", color.NRGBA{B: 255, A: 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("ScanDirectoryForImages() found %d files, want 2", len(files))
	}
}

func TestScanDirectoryForImagesEmpty(t *testing.T) {
	if _, err := ScanDirectoryForImages(t.TempDir()); err == nil {
		t.Error("ScanDirectoryForImages() error = nil, want error for empty directory")
	}
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "only.png", color.NRGBA{R: 255, A: 255})

	resolved, err := ResolveImagePath(dir)
	if err != nil {
		t.Fatalf("ResolveImagePath() error = %v", err)
	}
	if resolved != path {
		t.Errorf("ResolveImagePath() = %s, want %s", resolved, path)
	}

	// Files and URLs pass through untouched.
	if got, _ := ResolveImagePath(path); got != path {
		t.Errorf("ResolveImagePath(file) = %s, want %s", got, path)
	}
	if got, _ := ResolveImagePath("https://example.com/x.png"); got != "https://example.com/x.png" {
		t.Errorf("ResolveImagePath(url) = %s, want pass-through", got)
	}
}
