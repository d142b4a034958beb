package tesseract4d

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// imageSurface draws onto a plain NRGBA image so frames can be rendered
// without a window. Strokes are hard-edged; the GIF exporter compensates
// by supersampling and downscaling.
type imageSurface struct {
	img *image.NRGBA
}

func newImageSurface(w, h int) *imageSurface {
	return &imageSurface{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (s *imageSurface) Size() (Real, Real) {
	b := s.img.Bounds()
	return Real(b.Dx()), Real(b.Dy())
}

func (s *imageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Line stamps discs along the segment. Crude, but with 32 short strokes
// per frame at supersampled resolution it is plenty fast.
func (s *imageSurface) Line(x1, y1, x2, y2, width Real, c color.Color) {
	r := width * 0.5
	if r < 0.5 {
		r = 0.5
	}
	steps := int(math.Ceil(math.Hypot(x2-x1, y2-y1)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := Real(i) / Real(steps)
		s.Disc(x1+(x2-x1)*t, y1+(y2-y1)*t, r, c)
	}
}

// Disc fills a circle with a plain scanline pass over its bounding box.
func (s *imageSurface) Disc(x, y, r Real, c color.Color) {
	if r <= 0 {
		return
	}
	px := color.NRGBAModel.Convert(c).(color.NRGBA)
	b := s.img.Bounds()
	minX := imax(int(math.Floor(x-r)), b.Min.X)
	minY := imax(int(math.Floor(y-r)), b.Min.Y)
	maxX := int(math.Ceil(x + r))
	maxY := int(math.Ceil(y + r))
	if maxX > b.Max.X {
		maxX = b.Max.X
	}
	if maxY > b.Max.Y {
		maxY = b.Max.Y
	}
	rr := r * r
	for yy := minY; yy < maxY; yy++ {
		dy := Real(yy) + 0.5 - y
		for xx := minX; xx < maxX; xx++ {
			dx := Real(xx) + 0.5 - x
			if dx*dx+dy*dy <= rr {
				s.img.SetNRGBA(xx, yy, px)
			}
		}
	}
}
