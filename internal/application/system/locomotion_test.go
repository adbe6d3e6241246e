package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

func newFlatLocomotion() *LocomotionSystem {
	return NewLocomotionSystem(config.Default(), entity.Flat(groundLevel))
}

func TestLocomotionSystem_GroundedMovement(t *testing.T) {
	s := newFlatLocomotion()
	sk := standing(200)

	m := s.Update(sk, InputState{Right: true})

	assert.True(t, sk.Grounded)
	assert.True(t, m.Landed, "first contact counts as a landing")
	assert.InDelta(t, 0.4*0.95, sk.VX, 1e-12)
	assert.InDelta(t, 200+0.4*0.95, sk.X, 1e-12)
	assert.Equal(t, 1.0, sk.Facing)
	assert.Equal(t, groundLevel-75, sk.Y)
	assert.Equal(t, cp.Vector{X: sk.X, Y: sk.Y}, sk.Pos(entity.Hip))
	assert.InDelta(t, sk.X*0.015, sk.Phase, 1e-12)

	m = s.Update(sk, InputState{Left: true})
	assert.False(t, m.Landed)
	assert.Equal(t, -1.0, sk.Facing)
	assert.InDelta(t, (0.38-0.4)*0.95, sk.VX, 1e-12)
}

func TestLocomotionSystem_AirAcceleration(t *testing.T) {
	s := newFlatLocomotion()
	sk := entity.NewSkeleton(200, 100)

	m := s.Update(sk, InputState{Right: true})

	assert.False(t, sk.Grounded)
	assert.False(t, m.Landed)
	assert.InDelta(t, 0.2*0.95, sk.VX, 1e-12)
	assert.Equal(t, 100.0, sk.Pos(entity.Hip).Y, "airborne hip is left to physics")
}

func TestLocomotionSystem_Jump(t *testing.T) {
	s := newFlatLocomotion()
	sk := standing(200)
	s.Update(sk, InputState{})
	require.True(t, sk.Grounded)

	m := s.Update(sk, InputState{Jump: true})

	assert.True(t, m.Jumped)
	assert.False(t, m.Landed)
	assert.False(t, sk.Grounded)
	assert.Equal(t, -8.0, sk.Joint(entity.Hip).Velocity().Y)

	// No double jump while airborne
	sk.Joint(entity.Hip).Pos.Y = 200
	m = s.Update(sk, InputState{Jump: true})
	assert.False(t, m.Jumped)
}

func TestLocomotionSystem_Landing(t *testing.T) {
	s := newFlatLocomotion()
	sk := entity.NewSkeleton(200, 300)
	s.Update(sk, InputState{})
	require.False(t, sk.Grounded)

	sk.Joint(entity.Hip).Pos.Y = 420
	m := s.Update(sk, InputState{})

	assert.True(t, m.Landed)
	assert.True(t, sk.Grounded)
	assert.Equal(t, 425.0, sk.Pos(entity.Hip).Y)
}

func TestLocomotionSystem_FootTargets(t *testing.T) {
	s := newFlatLocomotion()
	sk := standing(0)
	sk.Grounded = true

	left := s.FootTarget(sk, 0)
	right := s.FootTarget(sk, math.Pi)

	// Phase 0: left foot straight under and lifted, right foot planted
	assert.InDelta(t, 0, left.X, 1e-9)
	assert.InDelta(t, groundLevel-2, left.Y, 1e-9)
	assert.InDelta(t, 0, right.X, 1e-9)
	assert.Equal(t, groundLevel, right.Y)

	sk.VX = 4
	assert.InDelta(t, 50+4*3.2, s.Stride(sk), 1e-12)
	assert.InDelta(t, 2+4*1.5, s.Lift(sk), 1e-12)
}

func TestLocomotionSystem_LegIntents(t *testing.T) {
	s := newFlatLocomotion()
	sk := standing(0)

	sk.Grounded = true
	intents := s.LegIntents(sk)
	require.Len(t, intents, 4)
	assert.Equal(t, 0.8, intents[0].(BlendIntent).Strength)
	assert.Equal(t, entity.AnkleR, intents[1].(BlendIntent).Joint)
	assert.InDelta(t, 12, intents[2].(NudgeIntent).DX, 1e-12)

	sk.Grounded = false
	sk.Facing = -1
	intents = s.LegIntents(sk)
	assert.Equal(t, 0.15, intents[0].(BlendIntent).Strength)
	assert.InDelta(t, -15*0.15, intents[3].(NudgeIntent).DX, 1e-12)
}

func TestLocomotionSystem_SwingTargets(t *testing.T) {
	s := newFlatLocomotion()
	sk := standing(0)
	neckY := sk.Pos(entity.Neck).Y

	left, right := s.SwingTargets(sk)

	assert.InDelta(t, 0, left.X, 1e-9)
	assert.InDelta(t, neckY+25+10, left.Y, 1e-9)
	assert.InDelta(t, 0, right.X, 1e-9)
	assert.InDelta(t, neckY+25-10, right.Y, 1e-9)
}

func TestLocomotionSystem_TorsoIntent(t *testing.T) {
	s := newFlatLocomotion()
	sk := standing(30)

	target := s.TorsoTarget(sk)
	assert.Equal(t, cp.Vector{X: 30, Y: 425 - 50}, target)

	in := s.TorsoIntent(target).(BlendIntent)
	assert.Equal(t, entity.Neck, in.Joint)
	assert.Equal(t, 0.25, in.Strength)
}
