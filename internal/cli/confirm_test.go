package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m confirmModel, key string) (confirmModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(confirmModel), cmd
}

func TestConfirmModelKeys(t *testing.T) {
	tests := []struct {
		key      string
		answered bool
		yes      bool
	}{
		{"y", true, true},
		{"Y", true, true},
		{"n", true, false},
		{"esc", true, false},
		{"enter", true, false},
		{"x", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, cmd := press(newConfirmModel("warning"), tt.key)
			if m.answered != tt.answered || m.yes != tt.yes {
				t.Errorf("answered=%v yes=%v, want answered=%v yes=%v", m.answered, m.yes, tt.answered, tt.yes)
			}
			if (cmd != nil) != tt.answered {
				t.Errorf("cmd = %v, want quit only when answered", cmd)
			}
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	m := newConfirmModel(onlineWarning...)
	view := m.View()
	if !strings.Contains(view, "WARNING") || !strings.Contains(view, "(y/n)") {
		t.Errorf("View() = %q, want warning and prompt", view)
	}

	m, _ = press(m, "y")
	if m.View() != "" {
		t.Errorf("View() after answer = %q, want empty", m.View())
	}
}

func TestConfirmSkip(t *testing.T) {
	ok, err := New(io.Discard, LogInfo).confirm(true)
	if err != nil || !ok {
		t.Errorf("confirm(skip) = %v, %v; want true, nil", ok, err)
	}
}
