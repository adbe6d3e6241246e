package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the control snapshot for one tick
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Action bool // grab / throw, true only on the tick the key went down
}

// InputSystem reads the keyboard through ebiten
type InputSystem struct {
	left, right, jump []ebiten.Key
	action            []ebiten.Key
}

// NewInputSystem creates an input system with the default bindings
func NewInputSystem() *InputSystem {
	return &InputSystem{
		left:   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		right:  []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		jump:   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW},
		action: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:   anyPressed(s.left),
		Right:  anyPressed(s.right),
		Jump:   anyPressed(s.jump),
		Action: anyJustPressed(s.action),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
