package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Transitions(t *testing.T) {
	var tr Tracker
	require.NoError(t, tr.begin())
	assert.Equal(t, StateRunning, tr.State())

	// a second run may not begin while one is in flight
	assert.ErrorIs(t, tr.begin(), ErrInvalidTransition)
	assert.ErrorIs(t, tr.Reset(), ErrInvalidTransition)

	require.NoError(t, tr.finish(OutcomeCancelled))
	assert.Equal(t, StateCancelled, tr.State())
	assert.True(t, tr.State().Terminal())

	// Cancelled is reachable from Running only
	assert.ErrorIs(t, tr.finish(OutcomeCancelled), ErrInvalidTransition)

	require.NoError(t, tr.begin())
	require.NoError(t, tr.finish(OutcomeSucceeded))
	assert.Equal(t, StateSucceeded, tr.State())
}

func TestFrontier_FirstInsertedWinsTies(t *testing.T) {
	f := newFrontier(4)
	a, b, c := cellAt(0, 0), cellAt(0, 1), cellAt(1, 0)
	f.push(a)
	f.push(b)
	f.push(c)
	f.push(b) // duplicate ignored
	require.Equal(t, 3, f.Len())

	flat := func(cellKey) int { return 7 }
	assert.Equal(t, 0, f.minIndex(flat))

	f.removeAt(0)
	assert.False(t, f.contains(a))
	assert.Equal(t, b, f.at(f.minIndex(flat)), "order of the remaining cells is preserved")

	byCol := func(k cellKey) int { return -k.Col }
	assert.Equal(t, b, f.at(f.minIndex(byCol)))
}
