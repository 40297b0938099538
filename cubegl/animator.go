package cubegl

import (
	"context"
	"fmt"
	"time"

	"ledcube/hal"
)

// Config controls an animation run. The zero value picks the defaults
// below.
type Config struct {
	// RotationSpeed is the X-axis advance in degrees per frame. The Y and
	// Z axes advance at 7/10 and 1/2 of this speed (integer-truncated).
	// Default 3.
	RotationSpeed int

	// TargetFrameTime is the per-frame budget. Frames that finish early
	// sleep the remainder; slow frames proceed immediately. Default 16ms
	// (~60 Hz).
	TargetFrameTime time.Duration

	// MaxDuration stops the run after this much elapsed time. Zero runs
	// until the context is cancelled.
	MaxDuration time.Duration

	// InitialAngles seeds the per-axis rotation state, in degrees.
	InitialAngles [3]int
}

func (c Config) withDefaults() Config {
	if c.RotationSpeed == 0 {
		c.RotationSpeed = 3
	}
	if c.TargetFrameTime <= 0 {
		c.TargetFrameTime = 16 * time.Millisecond
	}
	return c
}

type runState uint8

const (
	stateRunning runState = iota
	stateStopped
)

// FrameInfo is passed to the overlay hook after each finished frame.
type FrameInfo struct {
	// Frame counts completed frames since the run started.
	Frame uint64
	// FPS is the measured rate, updated every reportInterval.
	FPS float64
}

const reportInterval = 2 * time.Second

// Animator owns the rotation state and drives the render pipeline at a
// fixed frame rate.
//
// A single Run is strictly sequential; nothing else may write the target
// while a run is in progress.
type Animator struct {
	cfg   Config
	trig  *TrigTable
	view  Viewport
	tgt   Target
	clock Clock
	log   hal.Logger

	present func() error
	overlay func(FrameInfo)

	state                  runState
	angleX, angleY, angleZ int
	prev                   PixelSet
	projected              [8]Point2

	frames uint64
	fps    float64
}

// NewAnimator creates an animator drawing into tgt. log may be nil.
func NewAnimator(tgt Target, log hal.Logger, cfg Config) *Animator {
	w, h := tgt.Size()
	return &Animator{
		cfg:   cfg.withDefaults(),
		trig:  defaultTrig,
		view:  NewViewport(w, h),
		tgt:   tgt,
		clock: SystemClock(),
		log:   log,
	}
}

// SetClock replaces the time source used for pacing and elapsed-duration
// checks.
func (a *Animator) SetClock(c Clock) {
	if c != nil {
		a.clock = c
	}
}

// SetTrigTable replaces the shared lookup table.
func (a *Animator) SetTrigTable(t *TrigTable) {
	if t != nil {
		a.trig = t
	}
}

// SetPresent registers fn to flush the framebuffer after each frame (and
// after the final clear). Present errors are ignored; a dropped flush
// shows up as a stale frame, nothing to recover.
func (a *Animator) SetPresent(fn func() error) { a.present = fn }

// SetOverlay registers fn to draw on top of each finished frame, after the
// differential update. Overlay pixels are not tracked by the differ; the
// hook owns its own screen region.
func (a *Animator) SetOverlay(fn func(FrameInfo)) { a.overlay = fn }

// Run drives the animation until ctx is cancelled or MaxDuration elapses.
// Cancellation is the normal way to stop and returns ctx.Err(); the
// framebuffer is fully cleared on every exit path. A later Run starts
// fresh: empty previous-frame state, angles back to InitialAngles.
func (a *Animator) Run(ctx context.Context) error {
	a.state = stateRunning
	a.angleX = wrapDeg(a.cfg.InitialAngles[0])
	a.angleY = wrapDeg(a.cfg.InitialAngles[1])
	a.angleZ = wrapDeg(a.cfg.InitialAngles[2])
	a.prev = NewPixelSet()
	a.frames = 0
	a.fps = 0

	defer func() {
		a.state = stateStopped
		a.tgt.Clear()
		a.flush()
	}()

	a.tgt.Clear()
	a.logf("cube: %dx%d matrix, %d deg/frame, %v budget",
		a.view.Width, a.view.Height, a.cfg.RotationSpeed, a.cfg.TargetFrameTime)

	start := a.clock.Now()
	lastReport := start
	reported := uint64(0)

	for a.state == stateRunning {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := a.clock.Now()
		if a.cfg.MaxDuration > 0 && frameStart.Sub(start) >= a.cfg.MaxDuration {
			return nil
		}

		a.renderFrame()
		a.advance()
		a.frames++

		if a.overlay != nil {
			a.overlay(FrameInfo{Frame: a.frames, FPS: a.fps})
		}
		a.flush()

		now := a.clock.Now()
		if d := now.Sub(lastReport); d >= reportInterval {
			a.fps = float64(a.frames-reported) / d.Seconds()
			a.logf("cube: %.1f fps", a.fps)
			lastReport = now
			reported = a.frames
		}

		if elapsed := now.Sub(frameStart); elapsed < a.cfg.TargetFrameTime {
			a.clock.Sleep(a.cfg.TargetFrameTime - elapsed)
		}
	}
	return nil
}

// renderFrame runs one pass of the pipeline: transform and project all
// vertices, rasterize all edges into a fresh pixel set, then erase what
// the previous frame left behind.
func (a *Animator) renderFrame() {
	curr := NewPixelSet()

	for i, v := range cubeVertices {
		a.projected[i] = a.view.Project(Rotate(v, a.angleX, a.angleY, a.angleZ, a.trig))
	}

	for _, e := range cubeEdges {
		DrawLine(a.tgt, a.projected[e.a], a.projected[e.b], e.group.color(), curr)
	}

	Reconcile(a.tgt, a.prev, curr)
	a.prev = curr
}

func (a *Animator) advance() {
	s := a.cfg.RotationSpeed
	a.angleX = wrapDeg(a.angleX + s)
	a.angleY = wrapDeg(a.angleY + s*7/10)
	a.angleZ = wrapDeg(a.angleZ + s/2)
}

func (a *Animator) flush() {
	if a.present != nil {
		_ = a.present()
	}
}

func (a *Animator) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
