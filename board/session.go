package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/search"
)

// Session runs searches on a Board in the background, one at a time.
//
// Start cancels whatever run is in flight and waits for it to return before
// launching the next one, so a new run never races an old one for the
// board's markers.
type Session struct {
	board  *Board
	parent context.Context
	log    *slog.Logger

	// mu serialises Start and Stop.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	resMu   sync.Mutex
	runID   string
	last    *search.Result
	lastErr error
}

// NewSession returns a Session driving b. Every run's context derives from
// ctx; cancelling ctx stops the current run.
func NewSession(ctx context.Context, b *Board) *Session {
	return &Session{board: b, parent: ctx, log: b.log}
}

// Board returns the driven board.
func (s *Session) Board() *Board { return s.board }

// Start cancels any in-flight run, waits for it, then runs alg in a new
// goroutine. It returns the new run's ID.
func (s *Session) Start(alg search.Algorithm) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ctx, cancel := context.WithCancel(s.parent)
	id := uuid.NewString()
	done := make(chan struct{})
	s.cancel, s.done = cancel, done

	s.resMu.Lock()
	s.runID, s.last, s.lastErr = id, nil, nil
	s.resMu.Unlock()

	log := s.log.With("run_id", id, "algorithm", alg.String())
	log.Info("run started")

	go func() {
		defer close(done)
		defer cancel()

		res, err := s.board.Run(ctx, alg)
		switch {
		case err != nil && res == nil:
			log.Debug("run rejected", "err", err)
		case err != nil:
			log.Info("run cancelled", "settled", len(res.Visited))
		default:
			log.Info("run finished", "outcome", res.Outcome.String(), "settled", len(res.Visited), "cost", res.Cost)
		}

		s.resMu.Lock()
		if s.runID == id {
			s.last, s.lastErr = res, err
		}
		s.resMu.Unlock()
	}()

	return id
}

// Stop cancels the in-flight run, if any, and waits for it to return.
func (s *Session) Stop() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

func (s *Session) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
}

// Wait blocks until the current run returns and reports its result.
// With no run started it returns immediately.
func (s *Session) Wait() (*search.Result, error) {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}

	return s.Last()
}

// Running reports whether a run is in flight.
func (s *Session) Running() bool {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Last returns the result and error of the most recent completed run.
// Both are nil while that run is still in flight.
func (s *Session) Last() (*search.Result, error) {
	s.resMu.Lock()
	defer s.resMu.Unlock()

	return s.last, s.lastErr
}

// RunID returns the ID of the most recently started run.
func (s *Session) RunID() string {
	s.resMu.Lock()
	defer s.resMu.Unlock()

	return s.runID
}

// HandleKey maps a key press to an action, ignoring case:
//
//	a  start A*
//	d  start Dijkstra
//	r  stop and clear markers
//	c  stop and clear the whole board
//
// Returns ErrUnboundKey for any other key.
func (s *Session) HandleKey(key rune) error {
	switch unicode.ToLower(key) {
	case KeyAStar:
		s.Start(search.AlgorithmAStar)
	case KeyDijkstra:
		s.Start(search.AlgorithmDijkstra)
	case KeyReset:
		s.Stop()
		s.board.Reset()
	case KeyClear:
		s.Stop()
		s.board.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnboundKey, key)
	}

	return nil
}
