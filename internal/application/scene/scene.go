// Package scene defines the Scene interface for screens driven by the game loop.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the session cleanly
var ErrQuit = errors.New("scene: quit")

// Scene is one screen of the program.
//
// The game loop calls Update once per fixed tick and Draw once per frame.
// Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by one tick.
	// Returns the next scene if a transition is needed, nil to stay.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	OnExit()
}
