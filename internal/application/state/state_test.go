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
		{StateMenu, "Menu"},
		{StateFighting, "Fighting"},
		{StatePaused, "Paused"},
		{StateMatchOver, "MatchOver"},
		{StateReplay, "Replay"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StateFighting)
	assert.Equal(t, GameState(2), StatePaused)
	assert.Equal(t, GameState(3), StateMatchOver)
	assert.Equal(t, GameState(4), StateReplay)
}
