package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/storage"
)

// memStore is an in-memory ResultStore.
type memStore struct {
	results []storage.Result
	failErr error
}

func (s *memStore) SaveResult(r storage.Result) (int64, error) {
	if s.failErr != nil {
		return 0, s.failErr
	}
	r.ID = int64(len(s.results) + 1)
	r.CreatedAt = time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	s.results = append(s.results, r)
	return r.ID, nil
}

func (s *memStore) RecentResults(limit int) ([]storage.Result, error) {
	out := make([]storage.Result, 0, len(s.results))
	for i := len(s.results) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.results[i])
	}
	return out, nil
}

func (s *memStore) Record() (storage.Record, error) {
	var rec storage.Record
	for _, r := range s.results {
		rec.Played++
		rec.LastPlayed = r.CreatedAt
		if r.Outcome == "won" {
			rec.Won++
		} else {
			rec.Lost++
		}
	}
	return rec, nil
}

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel returns a model whose board is the standard snake with food
// parked at (7,7).
func newTestModel(t *testing.T, store ResultStore) Model {
	t.Helper()
	m := NewModel(Options{
		Config: config.Default(),
		Store:  store,
		Seed:   42,
		Width:  80,
		Height: 24,
	})
	food := snake.C(7, 7)
	b, err := snake.NewFromLayout(zeroSource{},
		[]snake.Cell{snake.C(1, 3), snake.C(1, 2), snake.C(1, 1)}, &food)
	require.NoError(t, err)
	m.board = b
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModelSameSeedSameBoard(t *testing.T) {
	a := NewModel(Options{Config: config.Default(), Seed: 7, Width: 80, Height: 24})
	b := NewModel(Options{Config: config.Default(), Seed: 7, Width: 80, Height: 24})

	assert.Equal(t, a.Board().Snapshot(), b.Board().Snapshot())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestModelOneKeyOneTurn(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "left")
	assert.Equal(t, 1, m.Board().Turn())
	assert.Equal(t, snake.C(0, 3), m.Board().Head())

	// vim and WASD bindings steer too
	m = press(t, m, "j", "d")
	assert.Equal(t, 3, m.Board().Turn())
	assert.Equal(t, snake.C(1, 4), m.Board().Head())
}

func TestModelUnboundKeysIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "x", "z", "r", "esc")
	assert.Equal(t, 0, m.Board().Turn())
	assert.Equal(t, snake.StatePlaying, m.Board().Status())
}

func TestModelSavesResultOnce(t *testing.T) {
	store := &memStore{}
	m := newTestModel(t, store)
	session := m.SessionID()

	m = press(t, m, "left", "left")
	require.Equal(t, snake.StateLost, m.Board().Status())

	// Moves after the end are no-ops and do not save again.
	m = press(t, m, "right", "down")

	require.Len(t, store.results, 1)
	got := store.results[0]
	assert.Equal(t, session, got.SessionID)
	assert.Equal(t, "tui", got.Frontend)
	assert.Equal(t, "lost", got.Outcome)
	assert.Equal(t, "wall", got.Cause)
	assert.Equal(t, 1, got.Turns)
}

func TestModelSaveFailureDoesNotStopGame(t *testing.T) {
	store := &memStore{failErr: errors.New("disk full")}
	m := newTestModel(t, store)

	m = press(t, m, "up")
	assert.Equal(t, snake.StateLost, m.Board().Status())
	assert.Contains(t, m.View(), "You lose!")
}

func TestModelRestart(t *testing.T) {
	store := &memStore{}
	m := newTestModel(t, store)
	first := m.SessionID()

	m = press(t, m, "up")
	require.True(t, m.Board().Lost())

	m = press(t, m, "r")
	assert.Equal(t, snake.StatePlaying, m.Board().Status())
	assert.Equal(t, 0, m.Board().Turn())
	assert.NotEqual(t, first, m.SessionID())

	second := m.SessionID()

	// The new board starts with the head at (1,3), so up runs into the neck.
	m = press(t, m, "up")
	require.Len(t, store.results, 2)
	assert.Equal(t, second, store.results[1].SessionID)
	assert.Equal(t, "body", store.results[1].Cause)

	m = press(t, m, "r", "left", "left")
	require.Len(t, store.results, 3)
	assert.Equal(t, "wall", store.results[2].Cause)
	assert.NotEqual(t, second, store.results[2].SessionID)

	assert.Equal(t, first, store.results[0].SessionID)
	assert.Equal(t, "body", store.results[0].Cause)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())

	_, cmd = m.Update(keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "SNAKE")
	assert.Contains(t, view, "Turn 0  Length 3")
	assert.Contains(t, view, "quit")
	assert.NotContains(t, view, "You lose!")

	m = press(t, m, "left", "left")
	view = m.View()
	assert.Contains(t, view, "Turn 1  Length 3")
	assert.Contains(t, view, "You lose!")
}

func TestModelWindowTooSmall(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	m = next.(Model)
	assert.Contains(t, m.View(), "Window too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(Model)
	assert.Contains(t, m.View(), "SNAKE")
}

func TestModelHistory(t *testing.T) {
	store := &memStore{}
	m := newTestModel(t, store)

	m = press(t, m, "left", "left", "r", "tab")
	view := m.View()
	assert.Contains(t, view, "HISTORY")
	assert.Contains(t, view, "Played 1  Won 0  Lost 1  Last Jan 02 15:04")
	assert.Contains(t, view, "wall")

	// Direction keys scroll the table instead of moving the snake.
	turns := m.Board().Turn()
	m = press(t, m, "down", "up")
	assert.Equal(t, turns, m.Board().Turn())

	m = press(t, m, "esc")
	assert.Contains(t, m.View(), "SNAKE")
}

func TestModelHistoryWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "tab")
	assert.Contains(t, m.View(), "No games recorded yet.")
	assert.NotContains(t, m.View(), "Last")

	m = press(t, m, "tab")
	assert.Contains(t, m.View(), "SNAKE")
}

func TestDrawGameMarksHead(t *testing.T) {
	m := newTestModel(t, nil)
	DrawGame(m.screen, m.Board().Snapshot(), config.Default())

	area := m.screen.Bounds().Centered(boardW, titleH+boardH+hudH)
	headX, headY := area.X+2+1*2, area.Y+titleH+1+3
	cell := m.screen.GetCell(headX, headY)
	assert.Equal(t, 'S', cell.Rune)
	assert.NotEqual(t, m.screen.GetCell(headX, headY-1).Color, cell.Color)
}
