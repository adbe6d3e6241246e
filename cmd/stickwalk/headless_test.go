package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stickwalk/internal/application/replay"
	"github.com/younwookim/stickwalk/internal/application/system"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

func loadEmbedded(t *testing.T, world string) *replayFixture {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll(world)
	require.NoError(t, err)
	return &replayFixture{loader: loader, cfg: cfg}
}

func walkRight(n int) []system.InputState {
	inputs := make([]system.InputState, n)
	for i := range inputs {
		inputs[i] = system.InputState{Right: true}
	}
	return inputs
}

func TestRunHeadless_PrintsFinalPose(t *testing.T) {
	fx := loadEmbedded(t, "valley")
	data := replay.CreateTestReplayData(7, "valley", walkRight(120))

	var out bytes.Buffer
	sim, err := runHeadless(fx.cfg, &data, &out)
	require.NoError(t, err)

	assert.Equal(t, 120, sim.World.Tick)
	assert.Greater(t, sim.World.Player().X, 200.0)
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "ticks=120 "), text)
	assert.Contains(t, text, "Hip")
	assert.Contains(t, text, "HandR")
}

func TestRunHeadless_Deterministic(t *testing.T) {
	fx := loadEmbedded(t, "night")
	inputs := walkRight(200)
	inputs[40].Jump = true
	inputs[90].Action = true
	data := replay.CreateTestReplayData(1234, "night", inputs)

	var first, second bytes.Buffer
	_, err := runHeadless(fx.cfg, &data, &first)
	require.NoError(t, err)
	_, err = runHeadless(fx.cfg, &data, &second)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestRunHeadless_EmptyReplay(t *testing.T) {
	fx := loadEmbedded(t, "valley")
	data := replay.CreateTestReplayData(7, "valley", nil)

	_, err := runHeadless(fx.cfg, &data, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewLoader_EmbeddedWorlds(t *testing.T) {
	fx := loadEmbedded(t, "night")
	assert.Equal(t, "night", fx.cfg.World.ID)

	valley, err := fx.loader.LoadWorld("valley")
	require.NoError(t, err)
	assert.Equal(t, 2, valley.Terrain.CollisionLayer)
}

type replayFixture struct {
	loader *config.Loader
	cfg    *config.GameConfig
}
