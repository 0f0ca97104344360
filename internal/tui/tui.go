// Package tui is an optional Bubble Tea front-end for a round. It drives
// the same commit-reveal core as the line-based controller: the commitment
// happens before the model is shown, and the key stays off screen until a
// move is locked in.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/game"
	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/table"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "results table"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "0", "esc", "ctrl+c"),
		key.WithHelp("q", "exit"),
	),
}

// Model is the Bubble Tea model for one round.
type Model struct {
	set          *moveset.MoveSet
	com          commitment.Commitment
	computerMove string
	logger       *log.Logger

	cursor    int
	showTable bool
	resolved  bool
	result    game.Result
}

// NewModel builds a model over an already-committed computer move. The
// caller commits before constructing the model so nothing selectable can
// influence the computer's choice.
func NewModel(set *moveset.MoveSet, computerMove string, com commitment.Commitment, logger *log.Logger) Model {
	return Model{
		set:          set,
		com:          com,
		computerMove: computerMove,
		logger:       logger.WithPrefix("tui"),
		result:       game.Result{State: game.AwaitingPlayerMove},
	}
}

// Result reports the round outcome once the program has finished.
func (m Model) Result() game.Result {
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		if !m.resolved {
			m.logger.Debug("player exited before choosing")
			m.result = game.Result{State: game.Aborted}
		}
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Select):
		if m.resolved {
			return m, tea.Quit
		}
		playerMove := m.set.Move(m.cursor)
		m.result = game.Result{
			State:        game.Done,
			PlayerMove:   playerMove,
			ComputerMove: m.computerMove,
			Outcome:      m.set.DetermineWinner(playerMove, m.computerMove),
			Commitment:   m.com,
		}
		m.resolved = true
		return m, nil

	case key.Matches(keyMsg, keys.Help):
		m.showTable = !m.showTable
		return m, nil

	case key.Matches(keyMsg, keys.Up):
		if !m.resolved && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, keys.Down):
		if !m.resolved && m.cursor < m.set.Len()-1 {
			m.cursor++
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fairplay"))
	b.WriteString("\n\n")

	if m.resolved {
		m.renderReveal(&b)
	} else {
		m.renderPrompt(&b)
	}

	if m.showTable {
		b.WriteString("\n")
		b.WriteString(table.Build(m.set).Format())
	}

	return b.String()
}

func (m Model) renderPrompt(b *strings.Builder) {
	b.WriteString(tagStyle.Render("HMAC: " + m.com.Tag.String()))
	b.WriteString("\n\n")

	for i, move := range m.set.Moves() {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(fmt.Sprintf("> %d - %s", i+1, move)))
		} else {
			b.WriteString(fmt.Sprintf("  %d - %s", i+1, move))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter choose · ? results table · q exit"))
	b.WriteString("\n")
}

func (m Model) renderReveal(b *strings.Builder) {
	fmt.Fprintf(b, "Your move: %s\n", m.result.PlayerMove)
	fmt.Fprintf(b, "HMAC key: %s\n", m.com.Key.String())
	fmt.Fprintf(b, "Computer move: %s\n", m.result.ComputerMove)
	fmt.Fprintf(b, "HMAC: %s\n", commitment.ComputeTag(m.com.Key, m.result.PlayerMove).String())

	b.WriteString("\n")
	switch m.result.Outcome {
	case moveset.Win:
		b.WriteString(winStyle.Render("Win!"))
	case moveset.Lose:
		b.WriteString(loseStyle.Render("Lose!"))
	default:
		b.WriteString(drawStyle.Render("Draw!"))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("press q to exit"))
	b.WriteString("\n")
}

// Run plays one round through the TUI and returns the result.
func Run(set *moveset.MoveSet, logger *log.Logger) (game.Result, error) {
	computerMove, err := set.Pick()
	if err != nil {
		return game.Result{State: game.Aborted}, err
	}
	com, err := commitment.Commit(computerMove)
	if err != nil {
		return game.Result{State: game.Aborted}, err
	}

	program := tea.NewProgram(NewModel(set, computerMove, com, logger))
	final, err := program.Run()
	if err != nil {
		return game.Result{State: game.Aborted}, fmt.Errorf("run tui: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return game.Result{State: game.Aborted}, fmt.Errorf("unexpected final model %T", final)
	}
	return model.Result(), nil
}
