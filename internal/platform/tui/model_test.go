package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-quiz/internal/balloon/inline"
	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/games/balloons"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := balloons.New(quiz.DefaultBank(), config.DefaultBalloonsConfig(), inline.New())
	if err != nil {
		t.Fatalf("balloons.New failed: %v", err)
	}
	return NewModel(game, core.DefaultConfig(), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelPickAndConfirm(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('1'))
	m = update(t, m, TickMsg{})
	if st := m.game.Quiz(); !st.Answered || st.Score != 1 {
		t.Fatalf("after pick: %+v", st)
	}
	if m.GameState().Score != 1 {
		t.Errorf("GameState().Score = %d", m.GameState().Score)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if st := m.game.Quiz(); st.Answered || st.Index != 1 {
		t.Errorf("after confirm: %+v", st)
	}
}

func TestModelMouseTap(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey('2'))
	m = update(t, m, TickMsg{})

	btn := m.game.View().Feedback.Button.Rect
	m = update(t, m, tea.MouseMsg{X: btn.X + 1, Y: btn.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if m.game.Quiz().Index != 0 {
		t.Fatal("mouse release should not tap")
	}

	m = update(t, m, tea.MouseMsg{X: btn.X + 1, Y: btn.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if m.game.Quiz().Index != 1 {
		t.Errorf("tap on Next did not advance: %+v", m.game.Quiz())
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey('1'))
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen %dx%d", m.screen.Width(), m.screen.Height())
	}
	if st := m.game.Quiz(); !st.Answered || st.Score != 1 {
		t.Errorf("resize lost state: %+v", st)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Question 1/5") {
		t.Error("view is missing the header")
	}
	if !strings.Contains(out, "pick balloon") {
		t.Error("view is missing the help footer")
	}
	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, expected 24", lines)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view after quit should be empty")
	}
}
