package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"n", runeKey('n'), core.ActionNewGame},
		{"l", runeKey('l'), core.ActionLoad},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameMovementIsHeld(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	if frame.Has(core.ActionLeft) {
		t.Error("movement should not be a press")
	}

	km.ApplyHolds(&frame)
	if !frame.Held(core.ActionLeft) {
		t.Fatal("left should be held after a press")
	}

	// Opposite direction cancels the first
	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.ApplyHolds(&frame)
	if frame.Held(core.ActionLeft) || !frame.Held(core.ActionRight) {
		t.Errorf("expected only right held, got %+v", frame.Holds)
	}

	// Hold expires without repeats
	for i := 0; i < holdWindow+1; i++ {
		frame.Clear()
		km.ApplyHolds(&frame)
	}
	if frame.Held(core.ActionRight) {
		t.Error("hold should expire after the window")
	}
}

func TestMapKeyToFramePress(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame)
	if !frame.Has(core.ActionFire) {
		t.Error("space should press fire")
	}
}

func TestMapKeyToFrameFireRepeatsDoNotAutofire(t *testing.T) {
	km := NewKeyMapper()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	// One key repeat per tick while space is held
	presses := 0
	for i := 0; i < 10; i++ {
		frame := core.NewInputFrame()
		km.MapKeyToFrame(space, &frame)
		km.ApplyHolds(&frame)
		if frame.Has(core.ActionFire) {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("held space fired %d times, want 1", presses)
	}

	// Releasing past the hold window allows a fresh press
	for i := 0; i < holdWindow; i++ {
		frame := core.NewInputFrame()
		km.ApplyHolds(&frame)
	}
	frame := core.NewInputFrame()
	km.MapKeyToFrame(space, &frame)
	if !frame.Has(core.ActionFire) {
		t.Error("space after release should fire again")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
