package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridflight/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNorth},
		{"w", runeKey('w'), core.ActionNorth},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSouth},
		{"s", runeKey('s'), core.ActionSouth},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionEast},
		{"d", runeKey('d'), core.ActionEast},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionWest},
		{"a", runeKey('a'), core.ActionWest},
		{"restart", runeKey('r'), core.ActionRestart},
		{"help", runeKey('?'), core.ActionHelp},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("FullHelp() lists %d bindings, expected 7", total)
	}
}
