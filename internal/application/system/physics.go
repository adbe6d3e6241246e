package system

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// PhysicsSystem integrates points, clamps them to the ground and relaxes bones
type PhysicsSystem struct {
	config *config.PhysicsSettings
	gait   *config.GaitConfig
	ground entity.HeightField
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.SimulationConfig, ground entity.HeightField) *PhysicsSystem {
	return &PhysicsSystem{
		config: &cfg.Physics,
		gait:   &cfg.Gait,
		ground: ground,
	}
}

// Update integrates, clamps and solves one skeleton
func (s *PhysicsSystem) Update(sk *entity.Skeleton) {
	for j := range sk.Points {
		p := &sk.Points[j]
		p.Integrate(s.config.Friction, s.config.Gravity)
		s.clamp(p)
	}
	s.solve(sk)
}

// clamp keeps a point on or above the ground
func (s *PhysicsSystem) clamp(p *entity.PointMass) {
	h := s.ground.Height(p.Pos.X)
	if p.Pos.Y <= h {
		return
	}
	p.Pos.Y = h
	if s.config.ClampPolicy == config.ClampDamped {
		// Reflect the vertical motion so the point bounces off with reduced speed
		p.Prev.Y = h + (h-p.Prev.Y)*s.config.ClampRestitution
	}
}

// solve relaxes every bone a fixed number of times.
// Under-convergence is accepted; the cost per tick stays bounded.
func (s *PhysicsSystem) solve(sk *entity.Skeleton) {
	limit := entity.DistanceLimit{A: entity.Hip, B: entity.Neck, Max: s.config.NeckMaxDistance}
	for i := 0; i < s.config.SolverIterations; i++ {
		sk.Relax()
		if limit.Max > 0 {
			limit.Apply(sk.Points[:])
		}
	}
}

// CorrectPose overrides solver drift of head and neck.
// lookAt points the head at a target; otherwise a grounded skeleton stands upright.
func (s *PhysicsSystem) CorrectPose(sk *entity.Skeleton, lookAt cp.Vector, looking bool) {
	neck := sk.Joint(entity.Neck)
	head := sk.Joint(entity.Head)

	switch {
	case looking:
		angle := lookAt.Sub(neck.Pos).ToAngle()
		head.Pos = neck.Pos.Add(cp.ForAngle(angle).Mult(entity.HeadLength))
	case sk.Grounded && s.gait.HipPoseSnap:
		hip := sk.Pos(entity.Hip)
		neck.Pos = hip.Add(cp.Vector{Y: -s.gait.TorsoHeight})
		head.Pos = hip.Add(cp.Vector{Y: -(s.gait.TorsoHeight + entity.HeadLength)})
	case sk.Grounded:
		head.Pos = neck.Pos.Add(cp.Vector{Y: -entity.HeadLength})
	}
}

// StepProps integrates every free prop against the ground
func (s *PhysicsSystem) StepProps(props []entity.Prop) {
	for i := range props {
		props[i].Step(s.config.Friction, s.config.Gravity, s.ground)
	}
}

// SyncHeld snaps held props to the right hand of their holder.
// The prop takes the hand's Prev as well, so a prop let go of carries the
// hand's last motion and not the whole distance since the grab.
func (s *PhysicsSystem) SyncHeld(skeletons []*entity.Skeleton, props []entity.Prop) {
	for _, sk := range skeletons {
		id := sk.Interaction.Held
		if id == entity.NoProp {
			continue
		}
		hand := sk.Joint(entity.HandR)
		props[id].Pos, props[id].Prev = hand.Pos, hand.Prev
	}
}
