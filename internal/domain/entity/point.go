package entity

import "github.com/jakecoffman/cp/v2"

// PointMass is a Verlet particle. Velocity is never stored; it is always
// Pos - Prev, so anything that edits Pos also edits the next step's velocity.
type PointMass struct {
	Pos  cp.Vector
	Prev cp.Vector
}

// NewPointMass creates a point at rest at (x, y)
func NewPointMass(x, y float64) PointMass {
	p := cp.Vector{X: x, Y: y}
	return PointMass{Pos: p, Prev: p}
}

// Velocity returns the implicit velocity (displacement since last step)
func (p *PointMass) Velocity() cp.Vector {
	return p.Pos.Sub(p.Prev)
}

// SetVelocity rewrites Prev so that the next Integrate replays v
func (p *PointMass) SetVelocity(v cp.Vector) {
	p.Prev = p.Pos.Sub(v)
}

// Teleport moves the point and drops its velocity
func (p *PointMass) Teleport(pos cp.Vector) {
	p.Pos = pos
	p.Prev = pos
}

// Integrate advances one Verlet step.
// friction scales the carried velocity, gravity is added to Y after the move.
func (p *PointMass) Integrate(friction, gravity float64) {
	v := p.Velocity().Mult(friction)
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(v)
	p.Pos.Y += gravity
}

// BlendToward moves the point a fraction of the way to target.
// strength 1 snaps, 0 leaves the point alone. Prev is untouched so the
// pull shows up as velocity on the next Integrate.
func (p *PointMass) BlendToward(target cp.Vector, strength float64) {
	p.Pos = p.Pos.Add(target.Sub(p.Pos).Mult(strength))
}
