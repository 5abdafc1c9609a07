package gallery

import (
	"github.com/scottkirkwood/gart"
)

// fpsWindow is how many frame times the rate is averaged over.
const fpsWindow = 60

// Phase is where an Animator is in its life.
type Phase int

const (
	Idle Phase = iota
	Animating
)

func (p Phase) String() string {
	if p == Animating {
		return "animating"
	}
	return "idle"
}

// Animator runs one Frame at a time on the caller's timeline. Start moves
// it to Animating, Stop or a finished frame moves it back to Idle.
type Animator struct {
	phase   Phase
	frame   Frame
	started bool
	startMS float64
	lastMS  float64

	frameTimes *gart.AverageQueue
}

// NewAnimator returns an idle animator.
func NewAnimator() *Animator {
	return &Animator{frameTimes: gart.NewAverageQueue(fpsWindow)}
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// Start replaces whatever was running with f. Elapsed time counts from the
// next Tick.
func (a *Animator) Start(f Frame) {
	a.Stop()
	a.frame = f
	a.phase = Animating
}

// Stop drops the running frame. The frame is never called again.
func (a *Animator) Stop() {
	a.phase = Idle
	a.frame = nil
	a.started = false
	for a.frameTimes.Len() > 0 {
		a.frameTimes.Dequeue()
	}
}

// Tick renders the frame for the clock reading nowMS. ok is false when
// there is nothing running. The frame that reports done is still returned,
// after which the animator is idle.
func (a *Animator) Tick(nowMS float64) (out Output, ok bool) {
	if a.phase != Animating {
		return Output{}, false
	}
	if !a.started {
		a.started = true
		a.startMS = nowMS
	} else if d := nowMS - a.lastMS; d > 0 {
		a.frameTimes.Enqueue(d)
	}
	a.lastMS = nowMS

	out, done := a.frame(nowMS - a.startMS)
	if done {
		a.phase = Idle
		a.frame = nil
		a.started = false
	}
	return out, true
}

// FPS returns the recent frame rate, 0 until two frames have been drawn.
func (a *Animator) FPS() float64 {
	avg := a.frameTimes.Average()
	if avg <= 0 {
		return 0
	}
	return 1000 / avg
}
