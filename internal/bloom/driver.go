package bloom

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// ProgressStep is the progress added per tick; a run reaches 1 on tick 200.
const ProgressStep = 0.005

// Driver runs one bloom animation per start signal. It owns the progress
// counter and the particles of the current run and redraws the whole scene
// on every tick.
type Driver struct {
	surface    Surface
	viewport   Viewport
	scheduler  Scheduler
	rng        Rand
	palette    Palette
	onComplete func()

	started bool
	run     *run
}

// run is the state of a single animation, recreated on every Start.
type run struct {
	ticks        int
	progress     float64
	particles    []Particle
	completed    bool
	active       bool
	detachResize func()
}

type Option func(*Driver)

func WithRand(rng Rand) Option {
	return func(d *Driver) { d.rng = rng }
}

func WithPalette(p Palette) Option {
	return func(d *Driver) { d.palette = p }
}

// WithOnComplete sets the notification fired once per run when progress
// first reaches 1.
func WithOnComplete(fn func()) Option {
	return func(d *Driver) { d.onComplete = fn }
}

func NewDriver(surface Surface, viewport Viewport, scheduler Scheduler, opts ...Option) *Driver {
	d := &Driver{
		surface:   surface,
		viewport:  viewport,
		scheduler: scheduler,
		palette:   DefaultPalette(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.scheduler == nil {
		d.scheduler = NewFrameScheduler()
	}
	return d
}

// SetStarted feeds the user start signal. Only a false to true transition
// starts a run; dropping the signal tears the current run down.
func (d *Driver) SetStarted(started bool) {
	if started == d.started {
		return
	}
	d.started = started
	if started {
		d.Start()
		return
	}
	d.Stop()
}

// Start begins a new run. A missing surface or drawing context leaves the
// driver idle.
func (d *Driver) Start() {
	d.Stop()

	if d.surface == nil {
		log.Printf("[Driver] Warning: no surface, bloom not started")
		return
	}
	if d.viewport != nil {
		d.surface.SetSize(d.viewport.Size())
	}
	if d.surface.Canvas() == nil {
		log.Printf("[Driver] Warning: no drawing context, bloom not started")
		return
	}

	r := &run{active: true}
	if d.viewport != nil {
		r.detachResize = d.viewport.OnResize(d.surface.SetSize)
	}
	d.run = r
	d.tick(r)
}

// Stop cancels the pending tick and detaches the resize listener of the
// current run. It is safe to call at any time.
func (d *Driver) Stop() {
	r := d.run
	if r == nil || !r.active {
		return
	}
	d.scheduler.Cancel()
	d.release(r)
}

// Restart tears down the current run and starts a fresh one.
func (d *Driver) Restart() {
	d.Stop()
	d.Start()
}

func (d *Driver) tick(r *run) {
	if d.run != r || !r.active {
		return
	}

	r.ticks++
	r.progress = math.Min(float64(r.ticks)*ProgressStep, 1)
	if r.progress >= 1 && !r.completed {
		r.completed = true
		if d.onComplete != nil {
			d.onComplete()
		}
		// the notification may have stopped or restarted us
		if d.run != r || !r.active {
			return
		}
	}

	w, h := d.surface.Size()
	scene := NewScene(w, h, r.progress, d.palette)
	if p, ok := spawnParticle(d.rng, scene); ok {
		r.particles = append(r.particles, p)
	}
	r.particles = ageParticles(r.particles)

	// A frame without a context is skipped; the next one catches up.
	if c := d.surface.Canvas(); c != nil {
		DrawScene(c, scene, r.particles)
	}

	if r.progress < 1 || len(r.particles) > 0 {
		d.scheduler.ScheduleNext(func() { d.tick(r) })
		return
	}
	d.release(r)
}

func (d *Driver) release(r *run) {
	r.active = false
	if r.detachResize != nil {
		r.detachResize()
		r.detachResize = nil
	}
}

// Running reports whether a run is in flight.
func (d *Driver) Running() bool {
	return d.run != nil && d.run.active
}

// Completed reports whether the latest run reached full bloom.
func (d *Driver) Completed() bool {
	return d.run != nil && d.run.completed
}

func (d *Driver) Progress() float64 {
	if d.run == nil {
		return 0
	}
	return d.run.progress
}

// Particles returns the number of live particles.
func (d *Driver) Particles() int {
	if d.run == nil {
		return 0
	}
	return len(d.run.particles)
}
