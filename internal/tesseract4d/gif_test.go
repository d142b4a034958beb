package tesseract4d

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAnimatedGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spin.gif")
	if err := SaveAnimatedGIF(DefaultTheme(), path, 3, 32, 32, 3, 0.05); err != nil {
		t.Fatalf("SaveAnimatedGIF: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("frames = %d, want 3", len(g.Image))
	}
	b := g.Image[0].Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("frame size %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}

func TestSaveAnimatedGIFRejectsBadArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gif")
	if err := SaveAnimatedGIF(DefaultTheme(), path, 0, 32, 32, 3, 0.05); err == nil {
		t.Fatal("zero frames must be rejected")
	}
	theme := DefaultTheme()
	theme.FocalW = 1
	if err := SaveAnimatedGIF(theme, path, 3, 32, 32, 3, 0.05); err == nil {
		t.Fatal("invalid theme must be rejected")
	}
}

func TestImageSurfaceDisc(t *testing.T) {
	s := newImageSurface(16, 16)
	s.Clear(RGB{0, 0, 0})
	s.Disc(8, 8, 3, RGB{1, 1, 1})
	if c := s.img.NRGBAAt(8, 8); c.R != 0xFF {
		t.Fatalf("disc center not painted: %+v", c)
	}
	if c := s.img.NRGBAAt(0, 0); c.R != 0 {
		t.Fatalf("corner painted outside disc: %+v", c)
	}
}

func TestImageSurfaceLineCoversEndpoints(t *testing.T) {
	s := newImageSurface(16, 16)
	s.Clear(RGB{0, 0, 0})
	s.Line(2, 2, 13, 13, 2, RGB{1, 1, 1})
	if c := s.img.NRGBAAt(2, 2); c.R != 0xFF {
		t.Fatalf("start of line not painted: %+v", c)
	}
	if c := s.img.NRGBAAt(13, 13); c.R != 0xFF {
		t.Fatalf("end of line not painted: %+v", c)
	}
	if c := s.img.NRGBAAt(13, 2); c.R != 0 {
		t.Fatalf("off-line pixel painted: %+v", c)
	}
}
