package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/game"
	"github.com/lox/fairplay/internal/moveset"
)

func newTestModel(t *testing.T, computerMove string) Model {
	t.Helper()
	set, err := moveset.New([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)
	com, err := commitment.Commit(computerMove)
	require.NoError(t, err)
	return NewModel(set, computerMove, com, log.New(io.Discard))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestViewShowsTagNotKey(t *testing.T) {
	m := newTestModel(t, "scissors")
	view := m.View()

	assert.Contains(t, view, "HMAC: "+m.com.Tag.String())
	assert.NotContains(t, view, m.com.Key.String())
	assert.NotContains(t, view, "Computer move:")
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, "rock")
	assert.Equal(t, 0, m.cursor)

	m = update(t, m, keyRune('j'))
	m = update(t, m, keyRune('j'))
	assert.Equal(t, 2, m.cursor)

	// Clamped at the last move
	m = update(t, m, keyRune('j'))
	assert.Equal(t, 2, m.cursor)

	m = update(t, m, keyRune('k'))
	assert.Equal(t, 1, m.cursor)
}

func TestSelectResolvesRound(t *testing.T) {
	m := newTestModel(t, "scissors")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // rock vs scissors

	result := m.Result()
	assert.Equal(t, game.Done, result.State)
	assert.Equal(t, "rock", result.PlayerMove)
	assert.Equal(t, "scissors", result.ComputerMove)
	assert.Equal(t, moveset.Win, result.Outcome)

	view := m.View()
	assert.Contains(t, view, "Your move: rock")
	assert.Contains(t, view, "HMAC key: "+m.com.Key.String())
	assert.Contains(t, view, "Computer move: scissors")
	assert.Contains(t, view, "Win!")
}

func TestQuitBeforeSelectionAborts(t *testing.T) {
	m := newTestModel(t, "paper")
	m = update(t, m, keyRune('q'))

	result := m.Result()
	assert.Equal(t, game.Aborted, result.State)
	assert.Empty(t, result.PlayerMove)
}

func TestHelpTogglesResultsTable(t *testing.T) {
	m := newTestModel(t, "rock")
	assert.NotContains(t, m.View(), " User/Computer")

	m = update(t, m, keyRune('?'))
	assert.Contains(t, m.View(), " User/Computer")

	// Toggling the table does not consume the turn
	assert.Equal(t, game.AwaitingPlayerMove, m.Result().State)

	m = update(t, m, keyRune('?'))
	assert.NotContains(t, m.View(), " User/Computer")
}

func TestSelectionAfterHelp(t *testing.T) {
	m := newTestModel(t, "rock")
	m = update(t, m, keyRune('?'))
	m = update(t, m, keyRune('j'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // paper vs rock

	result := m.Result()
	assert.Equal(t, game.Done, result.State)
	assert.Equal(t, moveset.Win, result.Outcome)
}
