package tui

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

func newTestModel(t *testing.T, rows, cols int) (Model, *board.Session) {
	t.Helper()
	b, err := board.New(rows, cols)
	require.NoError(t, err)
	s := board.NewSession(context.Background(), b)
	t.Cleanup(s.Stop)

	return New(s, render.NewTheme(lipgloss.NewRenderer(&bytes.Buffer{})), time.Millisecond), s
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}

	return m
}

func runes(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestModel_CursorClamps(t *testing.T) {
	m, _ := newTestModel(t, 2, 3)

	m = press(t, m, keyUp, runes('h'))
	assert.Equal(t, gridgraph.Cell{}, m.Cursor())

	m = press(t, m, keyDown, keyDown, keyDown, runes('l'), keyRight, keyRight)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 2}, m.Cursor())

	m = press(t, m, runes('k'), runes('h'))
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 1}, m.Cursor())
}

func TestModel_PlaceAndRun(t *testing.T) {
	m, s := newTestModel(t, 3, 3)
	b := s.Board()

	m = press(t, m, keySpace)
	assert.Equal(t, gridgraph.RoleStart, b.Role(gridgraph.Cell{}))
	assert.Contains(t, m.Status(), "next: place end")

	m = press(t, m, keyDown, keyDown, keyRight, keyRight, keyEnter)
	assert.Equal(t, gridgraph.RoleEnd, b.Role(gridgraph.Cell{Row: 2, Col: 2}))

	m = press(t, m, keyUp, keyEnter)
	assert.Equal(t, gridgraph.RoleWall, b.Role(gridgraph.Cell{Row: 1, Col: 2}))

	m = press(t, m, runes('a'))
	res, err := s.Wait()
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeSucceeded, res.Outcome)

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	assert.NotNil(t, cmd, "ticks keep coming")
	assert.Equal(t, "astar: path found, cost 4, 7 cells settled", m.Status())

	view := m.View()
	assert.Equal(t, "S o o\n* o #\n* * E", strings.Join(strings.Split(view, "\n")[:3], "\n"))

	m = press(t, m, runes('r'))
	assert.Equal(t, "markers cleared", m.Status())
	assert.Zero(t, b.View().Count(board.MarkerVisited))
}

func TestModel_UnboundKeyIgnored(t *testing.T) {
	m, _ := newTestModel(t, 2, 2)
	before := m.Status()
	m = press(t, m, runes('z'))
	assert.Equal(t, before, m.Status())
}

func TestModel_RunWithoutEndpoints(t *testing.T) {
	m, s := newTestModel(t, 2, 2)
	m = press(t, m, runes('d'))
	_, err := s.Wait()
	require.ErrorIs(t, err, search.ErrStartUnset)

	next, _ := m.Update(tickMsg(time.Now()))
	assert.Equal(t, search.ErrStartUnset.Error(), next.(Model).Status())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, 2, 2)
	next, cmd := m.Update(runes('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_ScatterWalls(t *testing.T) {
	m, s := newTestModel(t, 6, 6)
	m.rng = rand.New(rand.NewSource(1))

	m = press(t, m, runes('g'))
	walls := len(s.Board().Grid().Walls())
	assert.Positive(t, walls)
	assert.Equal(t, fmt.Sprintf("added %d walls", walls), m.Status())
}
