package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteraction_Targeting(t *testing.T) {
	in := NewInteraction()
	assert.Equal(t, PhaseIdle, in.Phase)
	assert.False(t, in.IsTargeting())

	in = in.WithTarget(3)
	assert.Equal(t, PhaseTargeting, in.Phase)
	assert.Equal(t, PropID(3), in.Target)
	assert.True(t, in.IsTargeting())

	in = in.WithTarget(NoProp)
	assert.Equal(t, PhaseIdle, in.Phase)
	assert.Equal(t, NoProp, in.Target)
}

func TestInteraction_GrabRequiresTarget(t *testing.T) {
	assert.Equal(t, NewInteraction(), NewInteraction().Grab())

	in := NewInteraction().WithTarget(2).Grab()
	assert.Equal(t, PhaseHolding, in.Phase)
	assert.Equal(t, PropID(2), in.Held)
	assert.Equal(t, NoProp, in.Target)
	assert.True(t, in.IsHolding())

	// Holding ignores scans
	assert.Equal(t, in, in.WithTarget(5))
}

func TestInteraction_ThrowTimeline(t *testing.T) {
	in := NewInteraction().WithTarget(1).Grab().StartThrow()
	assert.Equal(t, PhaseThrowing, in.Phase)
	assert.Equal(t, 0, in.ThrowTick)
	assert.Equal(t, in, in.WithTarget(4), "throwing ignores scans")

	released := 0
	for tick := 1; tick <= ThrowEndTick; tick++ {
		in = in.Advance()
		assert.Equal(t, tick, in.ThrowTick)
		assert.Equal(t, PhaseThrowing, in.Phase)
		if in.ShouldRelease() {
			assert.Equal(t, ThrowReleaseTick, tick)
			assert.True(t, in.IsHolding())
			in = in.Release()
			released++
		}
	}
	assert.Equal(t, 1, released)
	assert.False(t, in.IsHolding())

	in = in.Advance()
	assert.Equal(t, PhaseIdle, in.Phase)
	assert.Equal(t, 0, in.ThrowTick)
}

func TestInteraction_StartThrowOnlyWhileHolding(t *testing.T) {
	idle := NewInteraction()
	assert.Equal(t, idle, idle.StartThrow())

	targeting := idle.WithTarget(0)
	assert.Equal(t, targeting, targeting.StartThrow())
	assert.Equal(t, targeting, targeting.Advance())
}

func TestInteraction_Drop(t *testing.T) {
	in := NewInteraction().WithTarget(1).Grab().Drop()
	assert.Equal(t, PhaseIdle, in.Phase)
	assert.False(t, in.IsHolding())

	// A drop mid-throw lets the animation finish
	throwing := NewInteraction().WithTarget(1).Grab().StartThrow().Advance().Drop()
	assert.Equal(t, PhaseThrowing, throwing.Phase)
	assert.False(t, throwing.IsHolding())
	assert.False(t, throwing.ShouldRelease())
}

func TestInteractionPhase_String(t *testing.T) {
	assert.Equal(t, "Idle", PhaseIdle.String())
	assert.Equal(t, "Throwing", PhaseThrowing.String())
	assert.Equal(t, "Unknown", InteractionPhase(9).String())
}
