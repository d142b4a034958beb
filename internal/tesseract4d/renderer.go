package tesseract4d

import (
	"fmt"
	"image/color"
)

// Surface is the drawable the renderer paints each frame. Coordinates
// are pixels in a top-left-origin space; implementations report their
// size and draw strokes and filled discs.
type Surface interface {
	Size() (w, h Real)
	Clear(c color.Color)
	Line(x1, y1, x2, y2, width Real, c color.Color)
	Disc(x, y, r Real, c color.Color)
}

// Handle identifies one scheduled frame callback.
type Handle int64

// Scheduler delivers frame callbacks at the surface's refresh cadence.
// Schedule runs fn once with the current timestamp in seconds; a frame
// loop reschedules itself from inside the callback. Cancelling an
// unknown or already-fired handle is a no-op.
type Scheduler interface {
	Schedule(fn func(now Real)) Handle
	Cancel(h Handle)
}

// Resolver maps an opaque surface id to a drawable. It returns nil when
// the id is unknown or the surface cannot be drawn on.
type Resolver func(id string) Surface

// Renderer animates a rotating hypercube wireframe on a Surface. Each
// instance owns its surface binding, clock, speed and run handle, so
// independent renderers can animate independent surfaces.
//
// A Renderer is single-threaded by design: ticks run to completion on
// the scheduler's goroutine and Start/Stop/SetSpeed must be called from
// that same goroutine, between ticks.
type Renderer struct {
	theme   Theme
	sched   Scheduler
	resolve Resolver

	// Diag, when set, receives one line per silently ignored lifecycle
	// call. Left nil, failures stay invisible no-ops.
	Diag func(format string, args ...interface{})

	surface Surface
	clk     clock
	speed   Real
	handle  Handle
	running bool

	projected [numVertices]Projected // per-frame scratch
}

// NewRenderer validates the theme and returns a stopped renderer with
// speed 1.
func NewRenderer(theme Theme, sched Scheduler, resolve Resolver) (*Renderer, error) {
	if sched == nil || resolve == nil {
		return nil, fmt.Errorf("scheduler and resolver are required")
	}
	if err := theme.validate(); err != nil {
		return nil, err
	}
	return &Renderer{theme: theme, sched: sched, resolve: resolve, speed: 1}, nil
}

// Start binds the renderer to the surface with the given id and begins
// the frame loop. An unresolvable id is ignored. Any running loop is
// cancelled first and the clock restarts from phase zero.
func (r *Renderer) Start(surfaceID string) {
	s := r.resolve(surfaceID)
	if s == nil {
		r.diag("start: surface %q not resolvable, ignoring", surfaceID)
		return
	}
	if r.running {
		r.sched.Cancel(r.handle)
	}
	r.surface = s
	r.clk.reset()
	r.running = true
	r.handle = r.sched.Schedule(r.tick)
	DebugLog("started on surface %q", surfaceID)
}

// Stop cancels the frame loop and releases the surface binding. A tick
// that was already queued will not draw. Stopping a stopped renderer is
// a no-op.
func (r *Renderer) Stop() {
	if !r.running {
		return
	}
	r.sched.Cancel(r.handle)
	r.running = false
	r.surface = nil
	r.clk.reset()
	DebugLog("stopped")
}

// SetSpeed sets the animation speed multiplier, clamped to [0, MaxSpeed].
// Speed 0 freezes the motion without stopping the loop. Non-finite
// values are ignored and the previous speed is kept.
func (r *Renderer) SetSpeed(v Real) {
	if !isFinite(v) {
		r.diag("setSpeed: non-finite value ignored, keeping %.4g", r.speed)
		return
	}
	if v < 0 {
		v = 0
	}
	if v > MaxSpeed {
		v = MaxSpeed
	}
	r.speed = v
}

// Speed returns the current multiplier.
func (r *Renderer) Speed() Real { return r.speed }

// Running reports whether a frame loop is active.
func (r *Renderer) Running() bool { return r.running }

func (r *Renderer) diag(format string, args ...interface{}) {
	if r.Diag != nil {
		r.Diag(format, args...)
	}
	DebugLog(format, args...)
}

// tick runs one frame to completion and reschedules itself. The running
// check covers a tick that was queued before Stop.
func (r *Renderer) tick(now Real) {
	if !r.running {
		return
	}
	t := r.clk.advance(now, r.speed)
	drawFrame(r.theme, r.surface, t, &r.projected)
	r.handle = r.sched.Schedule(r.tick)
}

// drawFrame runs the whole per-phase pipeline: rotate the 16 base
// vertices by the spin matrix for t, project 4D→3D→2D, depth-sort the
// edges and paint edges then vertices.
func drawFrame(theme Theme, s Surface, t Real, scratch *[numVertices]Projected) {
	w, h := s.Size()
	cx, cy := w*0.5, h*0.5
	scale2D := theme.Scale2DFactor * minReal(w, h)

	R := spinMatrix(theme.Spin, t)
	for i, v := range tesseractVertices {
		p3 := projectTo3D(R.MulPoint(v), theme.FocalW)
		scratch[i] = projectTo2D(p3, theme.FocalZ)
	}

	s.Clear(theme.Background)

	for _, e := range sortEdgesByDepth(tesseractEdges, scratch[:]) {
		d := meanDepth(e, scratch[:])
		clr := theme.FarColor
		if d > 0 {
			clr = theme.NearColor
		}
		width := theme.ThicknessBase + (d+theme.DepthBias)*theme.ThicknessDepthFactor
		if width < 0 {
			width = 0
		}
		a, b := scratch[e.A], scratch[e.B]
		s.Line(
			cx+a.X*scale2D, cy-a.Y*scale2D,
			cx+b.X*scale2D, cy-b.Y*scale2D,
			width, clr,
		)
	}

	// Vertices draw over the edges in generation order; they are small
	// enough that sorting them against each other is not worth it.
	for _, p := range scratch {
		radius := theme.RadiusBase + (p.Depth+theme.DepthBias)*theme.RadiusDepthFactor
		if radius < theme.MinRadius {
			radius = theme.MinRadius
		}
		s.Disc(cx+p.X*scale2D, cy-p.Y*scale2D, radius, theme.VertexColor)
	}
}
