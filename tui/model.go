// Package tui is the interactive terminal front end: a bubbletea model over
// a board.Session.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// DefaultRefresh is how often the board is redrawn while idle or animating.
const DefaultRefresh = 50 * time.Millisecond

// ScatterDensity is the wall density used by the g key.
const ScatterDensity = 0.3

const help = "arrows/hjkl move · space/enter place · a A* · d Dijkstra · r reset · c clear · g random walls · q quit"

type tickMsg time.Time

// Model implements tea.Model.
type Model struct {
	session *board.Session
	theme   render.Theme
	refresh time.Duration
	rng     *rand.Rand

	cursor   gridgraph.Cell
	status   string
	shown    string // run ID whose outcome is in status
	quitting bool
}

// New returns a model driving s, redrawn every refresh (DefaultRefresh when
// not positive).
func New(s *board.Session, theme render.Theme, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}

	return Model{
		session: s,
		theme:   theme,
		refresh: refresh,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		status:  s.Board().Phase().String(),
	}
}

// Cursor returns the highlighted cell.
func (m Model) Cursor() gridgraph.Cell { return m.cursor }

// Status returns the status line.
func (m Model) Status() string { return m.status }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.refreshStatus()
		return m, m.tick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.session.Board()

	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)

	case "g":
		m.session.Stop()
		n, err := b.Scatter(ScatterDensity, m.rng)
		if err != nil {
			m.status = err.Error()
			break
		}
		m.status = fmt.Sprintf("added %d walls", n)

	case " ", "enter":
		if m.session.Running() {
			m.status = "search running; press r to stop"
			break
		}
		applied, err := b.Click(m.cursor)
		if err != nil {
			m.status = err.Error()
			break
		}
		m.status = fmt.Sprintf("%s at %s · next: %s", applied, m.cursor, b.Phase())

	default:
		if len(msg.Runes) != 1 {
			break
		}
		err := m.session.HandleKey(msg.Runes[0])
		switch {
		case errors.Is(err, board.ErrUnboundKey):
		case err != nil:
			m.status = err.Error()
		default:
			m.status = keyStatus[strings.ToLower(key)]
			m.refreshStatus()
		}
	}

	return m, nil
}

func (m *Model) move(dr, dc int) {
	b := m.session.Board()
	next := gridgraph.Cell{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if next.Row < 0 || next.Row >= b.Rows() || next.Col < 0 || next.Col >= b.Cols() {
		return
	}
	m.cursor = next
}

var keyStatus = map[string]string{
	"r": "markers cleared",
	"c": "board cleared",
}

// refreshStatus reports a run once while it is in flight and once when it
// has finished.
func (m *Model) refreshStatus() {
	if m.session.Running() {
		m.status = "searching…"
		return
	}
	id := m.session.RunID()
	if id == "" || id == m.shown {
		return
	}
	m.shown = id
	res, err := m.session.Last()
	switch {
	case res != nil:
		m.status = render.Summary(res)
	case err != nil:
		m.status = err.Error()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(render.StyledCursor(m.session.Board().View(), m.theme, m.cursor))
	sb.WriteByte('\n')
	sb.WriteString(m.theme.Status.Render(m.status))
	sb.WriteByte('\n')
	sb.WriteString(m.theme.Status.Render(help))
	sb.WriteByte('\n')

	return sb.String()
}

// Run starts an interactive program on s and blocks until the user quits.
func Run(s *board.Session, theme render.Theme, refresh time.Duration, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(s, theme, refresh), opts...).Run()
	s.Stop()

	return err
}
