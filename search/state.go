package search

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrInvalidTransition is returned by Tracker when a transition is not
// allowed from the current state.
var ErrInvalidTransition = errors.New("search: invalid state transition")

// State is the lifecycle position of a run.
//
//	Idle → Running → {Succeeded, Exhausted, Cancelled}
//
// Cancelled is reachable from Running only.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateSucceeded
	StateExhausted
	StateCancelled
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateExhausted:
		return "exhausted"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateExhausted || s == StateCancelled
}

// stateOf maps an Outcome to its terminal State.
func stateOf(o Outcome) State {
	switch o {
	case OutcomeSucceeded:
		return StateSucceeded
	case OutcomeExhausted:
		return StateExhausted
	default:
		return StateCancelled
	}
}

// Tracker follows the state machine of successive runs. A Tracker may be
// reused: a new run may begin from Idle or from any terminal state.
// All methods are safe for concurrent use.
type Tracker struct {
	v atomic.Int32
}

// State returns the current state.
func (t *Tracker) State() State {
	return State(t.v.Load())
}

// begin moves to Running from Idle or a terminal state.
func (t *Tracker) begin() error {
	for {
		cur := State(t.v.Load())
		if cur == StateRunning {
			return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, cur, StateRunning)
		}
		if t.v.CompareAndSwap(int32(cur), int32(StateRunning)) {
			return nil
		}
	}
}

// finish moves from Running to the terminal state matching o.
func (t *Tracker) finish(o Outcome) error {
	next := stateOf(o)
	if !t.v.CompareAndSwap(int32(StateRunning), int32(next)) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, t.State(), next)
	}

	return nil
}

// Reset returns a Tracker in a terminal state to Idle.
// Returns ErrInvalidTransition while a run is in progress.
func (t *Tracker) Reset() error {
	for {
		cur := State(t.v.Load())
		if cur == StateRunning {
			return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, cur, StateIdle)
		}
		if t.v.CompareAndSwap(int32(cur), int32(StateIdle)) {
			return nil
		}
	}
}
