package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravflip/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space flips", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlip},
		{"up flips", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlip},
		{"w flips", runeKey("w"), core.ActionFlip},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"x does nothing", runeKey("x"), core.ActionNone},
		{"down does nothing", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
	var n int
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 5 {
		t.Errorf("FullHelp has %d bindings, want 5", n)
	}
}
