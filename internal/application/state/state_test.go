package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplaying, "Replaying"},
		{StateFinished, "Finished"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Advancing(t *testing.T) {
	assert.True(t, StatePlaying.Advancing())
	assert.True(t, StateReplaying.Advancing())
	assert.False(t, StatePaused.Advancing())
	assert.False(t, StateFinished.Advancing())
}
