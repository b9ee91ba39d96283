package bloom

import (
	"image/color"
	"strings"
)

// recorder is a Canvas that logs operation names.
type recorder struct {
	ops   []string
	fills []color.Color
}

func (r *recorder) log(op string) { r.ops = append(r.ops, op) }

func (r *recorder) Clear()                                   { r.log("clear") }
func (r *recorder) Save()                                    { r.log("save") }
func (r *recorder) Restore()                                 { r.log("restore") }
func (r *recorder) Translate(x, y float64)                   { r.log("translate") }
func (r *recorder) Rotate(angle float64)                     { r.log("rotate") }
func (r *recorder) BeginPath()                               { r.log("begin") }
func (r *recorder) MoveTo(x, y float64)                      { r.log("move") }
func (r *recorder) QuadraticTo(cx, cy, x, y float64)         { r.log("quad") }
func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) { r.log("cubic") }
func (r *recorder) Ellipse(x, y, rx, ry, rotation float64)   { r.log("ellipse") }
func (r *recorder) Circle(x, y, radius float64)              { r.log("circle") }
func (r *recorder) SetFillColor(c color.Color)               { r.fills = append(r.fills, c) }
func (r *recorder) SetFillGradient(g RadialGradient)         { r.log("gradient") }
func (r *recorder) SetStrokeColor(c color.Color)             {}
func (r *recorder) SetLineWidth(w float64)                   {}
func (r *recorder) SetRoundCap(round bool)                   {}
func (r *recorder) Fill()                                    { r.log("fill") }
func (r *recorder) Stroke()                                  { r.log("stroke") }

func (r *recorder) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.ops = r.ops[:0]
	r.fills = r.fills[:0]
}

func (r *recorder) String() string { return strings.Join(r.ops, ",") }

type fakeSurface struct {
	w, h     int
	canvas   *recorder
	noCanvas bool
	resizes  int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{canvas: &recorder{}}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) SetSize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}

func (s *fakeSurface) Canvas() Canvas {
	if s.noCanvas {
		return nil
	}
	return s.canvas
}

type fakeViewport struct {
	w, h      int
	listeners map[int]func(w, h int)
	next      int
}

func newFakeViewport(w, h int) *fakeViewport {
	return &fakeViewport{w: w, h: h, listeners: map[int]func(w, h int){}}
}

func (v *fakeViewport) Size() (int, int) { return v.w, v.h }

func (v *fakeViewport) OnResize(fn func(w, h int)) func() {
	id := v.next
	v.next++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

func (v *fakeViewport) resize(w, h int) {
	v.w, v.h = w, h
	for _, fn := range v.listeners {
		fn(w, h)
	}
}

// seqRand replays values in order and then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

// never is a Rand whose rolls never spawn a particle.
type never struct{}

func (never) Float64() float64 { return 0 }

// always spawns on every roll inside the window.
type always struct{}

func (always) Float64() float64 { return 0.99 }

// countingScheduler wraps FrameScheduler and counts executed ticks.
type countingScheduler struct {
	*FrameScheduler
	scheduled int
	cancels   int
	fired     int
}

func newCountingScheduler() *countingScheduler {
	return &countingScheduler{FrameScheduler: NewFrameScheduler()}
}

func (s *countingScheduler) ScheduleNext(tick func()) {
	s.scheduled++
	s.FrameScheduler.ScheduleNext(func() {
		s.fired++
		tick()
	})
}

func (s *countingScheduler) Cancel() {
	s.cancels++
	s.FrameScheduler.Cancel()
}

// drain fires ticks until nothing is pending or limit is reached.
func (s *countingScheduler) drain(limit int) int {
	n := 0
	for n < limit && s.Fire() {
		n++
	}
	return n
}
