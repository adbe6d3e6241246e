package system

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// LocomotionSystem turns control input into body motion and gait targets
type LocomotionSystem struct {
	config *config.GaitConfig
	ground entity.HeightField
}

// NewLocomotionSystem creates a new locomotion system
func NewLocomotionSystem(cfg *config.SimulationConfig, ground entity.HeightField) *LocomotionSystem {
	return &LocomotionSystem{
		config: &cfg.Gait,
		ground: ground,
	}
}

// Motion reports the state transitions of one Update
type Motion struct {
	Jumped bool
	Landed bool
}

// Update applies input to the body anchor and resolves grounded/airborne
func (s *LocomotionSystem) Update(sk *entity.Skeleton, input InputState) Motion {
	var m Motion
	wasGrounded := sk.Grounded
	sk.Grounded = sk.Pos(entity.Hip).Y >= s.ground.Height(sk.X)-s.config.GroundCheckOffset
	m.Landed = sk.Grounded && !wasGrounded

	s.handleMovement(sk, input)

	if input.Jump && sk.Grounded {
		hip := sk.Joint(entity.Hip)
		hip.Prev.Y = hip.Pos.Y + s.config.JumpImpulse
		sk.Grounded = false
		m.Jumped = true
		m.Landed = false
	}

	sk.Phase = sk.X * s.config.PhaseScale

	if sk.Grounded {
		sk.Y = s.ground.Height(sk.X) - s.config.StandHeight
		hip := sk.Joint(entity.Hip)
		hip.Pos = cp.Vector{X: sk.X, Y: sk.Y}
	}
	return m
}

// handleMovement handles horizontal acceleration and drag
func (s *LocomotionSystem) handleMovement(sk *entity.Skeleton, input InputState) {
	accel := s.config.AirAccel
	if sk.Grounded {
		accel = s.config.GroundAccel
	}
	if input.Left {
		sk.VX -= accel
		sk.Facing = -1
	}
	if input.Right {
		sk.VX += accel
		sk.Facing = 1
	}
	sk.VX *= s.config.Drag
	sk.X += sk.VX
}

// Stride returns the foot stride length for the current speed
func (s *LocomotionSystem) Stride(sk *entity.Skeleton) float64 {
	return s.config.StrideBase + sk.Speed()*s.config.StrideSpeed
}

// Lift returns the foot lift height for the current speed
func (s *LocomotionSystem) Lift(sk *entity.Skeleton) float64 {
	return s.config.LiftBase + sk.Speed()*s.config.LiftSpeed
}

// LegStrength returns the ankle blend strength: planted when grounded, loose in the air
func (s *LocomotionSystem) LegStrength(sk *entity.Skeleton) float64 {
	if sk.Grounded {
		return s.config.LegStrength
	}
	return s.config.AirLegStrength
}

// FootTarget returns the ankle target for a leg whose phase is offset by offset
func (s *LocomotionSystem) FootTarget(sk *entity.Skeleton, offset float64) cp.Vector {
	phase := sk.Phase + offset
	x := sk.X + math.Sin(phase)*s.Stride(sk)
	lift := math.Max(0, math.Cos(phase)*s.Lift(sk))
	return cp.Vector{X: x, Y: s.ground.Height(x) - lift}
}

// SwingTargets returns the idle hand targets, swinging against the legs
func (s *LocomotionSystem) SwingTargets(sk *entity.Skeleton) (left, right cp.Vector) {
	stride := s.Stride(sk) * s.config.ArmSwingScale
	neckY := sk.Pos(entity.Neck).Y
	hand := func(phase float64) cp.Vector {
		return cp.Vector{
			X: sk.X - math.Sin(phase)*stride,
			Y: neckY + s.config.ArmDrop + math.Cos(phase)*s.config.ArmSwingLift,
		}
	}
	return hand(sk.Phase), hand(sk.Phase + math.Pi)
}

// TorsoTarget returns the upright neck target
func (s *LocomotionSystem) TorsoTarget(sk *entity.Skeleton) cp.Vector {
	return cp.Vector{X: sk.X, Y: sk.Pos(entity.Hip).Y - s.config.TorsoHeight}
}

// LegIntents returns the ankle pulls and the knee thrust for this tick
func (s *LocomotionSystem) LegIntents(sk *entity.Skeleton) []Intent {
	strength := s.LegStrength(sk)
	thrust := sk.Facing * s.config.KneeThrust * strength
	return []Intent{
		BlendIntent{Joint: entity.AnkleL, Target: s.FootTarget(sk, 0), Strength: strength},
		BlendIntent{Joint: entity.AnkleR, Target: s.FootTarget(sk, math.Pi), Strength: strength},
		NudgeIntent{Joint: entity.KneeL, DX: thrust},
		NudgeIntent{Joint: entity.KneeR, DX: thrust},
	}
}

// TorsoIntent pulls the neck toward target
func (s *LocomotionSystem) TorsoIntent(target cp.Vector) Intent {
	return BlendIntent{Joint: entity.Neck, Target: target, Strength: s.config.TorsoStrength}
}
