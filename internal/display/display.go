package display

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

// Window hosts a renderer surface in a desktop window. It implements
// ebiten.Game and tesseract4d.Scheduler: at most one frame callback is
// pending at a time and it fires from Update, so everything the
// renderer touches stays on one goroutine.
//
// Drawing happens on an offscreen image sized for the monitor's device
// scale factor; Draw only blits it, which keeps strokes crisp on hidpi
// displays.
type Window struct {
	name    string
	surface *ebitenSurface
	start   time.Time

	nextHandle tesseract4d.Handle
	pending    tesseract4d.Handle
	fn         func(now tesseract4d.Real)
}

// New creates a window-backed surface named name. width and height are
// in logical (pre-scale) pixels. Must be called from the main goroutine
// before Run.
func New(name string, width, height int, title string) *Window {
	scale := ebiten.DeviceScaleFactor()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)
	return &Window{
		name: name,
		surface: &ebitenSurface{
			img: ebiten.NewImage(int(float64(width)*scale), int(float64(height)*scale)),
		},
		start: time.Now(),
	}
}

// Resolve maps the window's surface name to its drawable; other ids
// resolve to nil.
func (w *Window) Resolve(id string) tesseract4d.Surface {
	if id != w.name {
		return nil
	}
	return w.surface
}

// Schedule registers fn to run on the next Update. A newly scheduled
// callback replaces any pending one.
func (w *Window) Schedule(fn func(now tesseract4d.Real)) tesseract4d.Handle {
	w.nextHandle++
	w.pending = w.nextHandle
	w.fn = fn
	return w.pending
}

// Cancel drops the pending callback if h still identifies it.
func (w *Window) Cancel(h tesseract4d.Handle) {
	if h == w.pending {
		w.pending = 0
		w.fn = nil
	}
}

// Run opens the window and blocks until it closes.
func (w *Window) Run() error {
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if w.fn == nil {
		return nil
	}
	fn := w.fn
	w.fn = nil
	w.pending = 0
	fn(tesseract4d.Real(time.Since(w.start).Seconds()))
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.img, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.surface.img.Bounds()
	return b.Dx(), b.Dy()
}

// ebitenSurface adapts an ebiten image to the renderer's Surface.
type ebitenSurface struct {
	img *ebiten.Image
}

func (s *ebitenSurface) Size() (tesseract4d.Real, tesseract4d.Real) {
	b := s.img.Bounds()
	return tesseract4d.Real(b.Dx()), tesseract4d.Real(b.Dy())
}

func (s *ebitenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *ebitenSurface) Line(x1, y1, x2, y2, width tesseract4d.Real, c color.Color) {
	vector.StrokeLine(s.img,
		float32(x1), float32(y1), float32(x2), float32(y2),
		float32(width), c, true)
}

func (s *ebitenSurface) Disc(x, y, r tesseract4d.Real, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}
