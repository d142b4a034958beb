package tesseract4d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/nfnt/resize"
)

// ssaa is the supersampling factor for offline frames: render at 2x and
// downsample for smoother strokes before GIF quantization.
const ssaa = 2

// SaveAnimatedGIF renders frames of the spinning hypercube headlessly
// and writes them as a looping GIF. dt is the simulated per-frame clock
// step in seconds (the clamp and speed handling of the live loop do not
// apply here); delay is in 100ths of a second per frame.
func SaveAnimatedGIF(theme Theme, path string, frames, w, h, delay int, dt Real) error {
	if frames <= 0 || w <= 0 || h <= 0 {
		return fmt.Errorf("frames and size must be positive; got frames=%d size=%dx%d", frames, w, h)
	}
	if err := theme.validate(); err != nil {
		return err
	}

	hi := newImageSurface(w*ssaa, h*ssaa)
	var scratch [numVertices]Projected

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	// Progress print step (~1%).
	step := imax(1, frames/100)

	phase := Real(0)
	for f := 0; f < frames; f++ {
		if f%step == 0 {
			fmt.Printf("[GIF] %.2f%%\n", Real(f)*100/Real(frames))
		}

		drawFrame(theme, hi, phase, &scratch)
		small := resize.Resize(uint(w), uint(h), hi.img, resize.Bilinear)

		pimg := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), small, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
		phase += dt
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gif.EncodeAll(file, out)
}
