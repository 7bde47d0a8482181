package stepper

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer is the suspension half of a search.StepSink.
type Pacer interface {
	// Suspend blocks until the search may take its next step.
	// It returns ctx.Err() if ctx ends first.
	Suspend(ctx context.Context) error
}

// PacerFunc adapts a function to Pacer.
type PacerFunc func(ctx context.Context) error

// Suspend calls f(ctx).
func (f PacerFunc) Suspend(ctx context.Context) error { return f(ctx) }

type immediate struct{}

func (immediate) Suspend(ctx context.Context) error { return ctx.Err() }

// Immediate returns a Pacer that never waits.
func Immediate() Pacer { return immediate{} }

// fixed spaces steps with a token bucket of size one refilled every delay.
type fixed struct {
	lim *rate.Limiter
}

// Restarter is implemented by pacers that keep timing state between runs.
// Restart is called before a run begins.
type Restarter interface {
	Restart()
}

// Fixed returns a Pacer that lets one step through every delay. The first
// step of a run waits a full delay, matching an animation timer that fires
// after each step, provided Restart is called when the run begins; otherwise
// a token banked while idle lets it through at once. A delay ≤ 0 yields
// Immediate.
func Fixed(delay time.Duration) Pacer {
	if delay <= 0 {
		return Immediate()
	}
	lim := rate.NewLimiter(rate.Every(delay), 1)
	lim.Allow() // drain the initial token

	return &fixed{lim: lim}
}

func (f *fixed) Suspend(ctx context.Context) error {
	return f.lim.Wait(ctx)
}

// Restart drops any token banked since the last step.
func (f *fixed) Restart() {
	f.lim.Allow()
}

// Manual is a Pacer driven by explicit Resume calls. Resumes issued before
// the search suspends are banked, up to the buffer given to NewManual.
type Manual struct {
	tokens chan struct{}
}

// NewManual returns a Manual pacer that can bank up to buffer resumes.
// A buffer below one is raised to one.
func NewManual(buffer int) *Manual {
	if buffer < 1 {
		buffer = 1
	}

	return &Manual{tokens: make(chan struct{}, buffer)}
}

// Resume releases one suspended step. It reports false if the bank is full.
func (m *Manual) Resume() bool {
	select {
	case m.tokens <- struct{}{}:
		return true
	default:
		return false
	}
}

// ResumeN calls Resume n times and returns how many were accepted.
func (m *Manual) ResumeN(n int) int {
	accepted := 0
	for i := 0; i < n; i++ {
		if !m.Resume() {
			break
		}
		accepted++
	}

	return accepted
}

// Suspend waits for a Resume or for ctx to end.
func (m *Manual) Suspend(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-m.tokens:
		return nil
	}
}
