package entity

// PropID indexes World.Props
type PropID int

// NoProp marks an empty prop reference
const NoProp PropID = -1

// Prop sizing
const (
	HeavyPropSize   = 60.0
	LightPropMin    = 20.0
	LightPropRange  = 15.0
	PropMassDivisor = 15.0
)

// Prop is a carryable box. IsHeld is only changed by the skeleton that holds it.
type Prop struct {
	PointMass
	Size   float64
	Mass   float64
	IsHeld bool
}

// NewProp creates a prop at rest, deriving mass from size
func NewProp(x, y, size float64) Prop {
	return Prop{
		PointMass: NewPointMass(x, y),
		Size:      size,
		Mass:      size / PropMassDivisor,
	}
}

// PropSize picks a size from two uniform samples in [0,1).
// heavyRoll above heavyThreshold gives the heavy box.
func PropSize(heavyRoll, sizeRoll, heavyThreshold float64) float64 {
	if heavyRoll > heavyThreshold {
		return HeavyPropSize
	}
	return LightPropMin + sizeRoll*LightPropRange
}

// IsHeavy reports whether the prop is drawn as a heavy box
func (p *Prop) IsHeavy() bool {
	return p.Mass > 3
}

// Step integrates a free prop and rests it on the ground.
// Gravity scales with mass. On contact horizontal velocity is halved.
func (p *Prop) Step(friction, gravity float64, ground HeightField) {
	if p.IsHeld {
		return
	}
	p.Integrate(friction, gravity*p.Mass)

	rest := ground.Height(p.Pos.X) - p.Size/2
	if p.Pos.Y > rest {
		p.Pos.Y = rest
		p.Prev.X = p.Pos.X + (p.Prev.X-p.Pos.X)*0.5
	}
}
