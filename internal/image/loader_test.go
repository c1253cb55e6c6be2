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
func writeTestPNG(t *testing.T, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer f.Close() //nolint:errcheck

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, color.RGBA{R: 200, G: 40, B: 40, A: 255})

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", img.Bounds())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "empty path", path: func(t *testing.T) string { return "" }},
		{name: "missing file", path: func(t *testing.T) string { return "/nonexistent/image.png" }},
		{name: "directory", path: func(t *testing.T) string { return t.TempDir() }},
		{name: "not an image", path: func(t *testing.T) string {
			p := filepath.Join(t.TempDir(), "junk.png")
			if err := os.WriteFile(p, []byte("not an image"), 0o644); err != nil {
				t.Fatal(err)
			}
			return p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path(t)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
