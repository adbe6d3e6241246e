package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/stickwalk/internal/application/system"
)

// holdTicks is how long a key counts as held after its last event.
// Terminals only report presses and auto-repeat, never releases.
const holdTicks = 8

// keyState turns terminal key events into per-tick InputState
type keyState struct {
	left, right, jump int // ticks remaining
	action            bool
}

// Handle records one key event. It returns false when the key asks to quit.
func (k *keyState) Handle(ev *tcell.EventKey) bool {
	return k.press(ev.Key(), ev.Rune())
}

func (k *keyState) press(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		k.left, k.right = holdTicks, 0
	case tcell.KeyRight:
		k.right, k.left = holdTicks, 0
	case tcell.KeyUp:
		k.jump = holdTicks
	case tcell.KeyEnter:
		k.action = true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'a':
			k.left, k.right = holdTicks, 0
		case 'd':
			k.right, k.left = holdTicks, 0
		case 'w', ' ':
			k.jump = holdTicks
		case 'e', 'f':
			k.action = true
		}
	}
	return true
}

// Tick returns the input for this tick and ages the held keys
func (k *keyState) Tick() system.InputState {
	in := system.InputState{
		Left:   k.left > 0,
		Right:  k.right > 0,
		Jump:   k.jump > 0,
		Action: k.action,
	}
	k.left = max(k.left-1, 0)
	k.right = max(k.right-1, 0)
	k.jump = max(k.jump-1, 0)
	k.action = false
	return in
}
