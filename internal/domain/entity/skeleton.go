package entity

import "github.com/jakecoffman/cp/v2"

// Skeleton is the walking character: an arena of joints, the bones between
// them, and the scalar gait state that drives the targets.
type Skeleton struct {
	Points [JointCount]PointMass
	Bones  []Bone

	// Body anchor. X advances with VX; Y is the stand height when grounded.
	X, Y     float64
	VX       float64
	Facing   float64 // -1 or 1
	Phase    float64 // gait phase, derived from X
	Grounded bool

	Fatigue     float64
	Interaction Interaction
}

// NewSkeleton creates a skeleton in its rest pose with the hip at (x, y)
func NewSkeleton(x, y float64) *Skeleton {
	s := &Skeleton{
		Bones:       append([]Bone(nil), Topology...),
		X:           x,
		Y:           y,
		Facing:      1,
		Interaction: NewInteraction(),
	}
	for j := range s.Points {
		s.Points[j] = NewPointMass(x, y+jointSpawnOffsetY[j])
	}
	return s
}

// Joint returns a pointer to the joint's point
func (s *Skeleton) Joint(j JointID) *PointMass {
	return &s.Points[j]
}

// Pos returns the joint position
func (s *Skeleton) Pos(j JointID) cp.Vector {
	return s.Points[j].Pos
}

// Speed returns the horizontal speed
func (s *Skeleton) Speed() float64 {
	if s.VX < 0 {
		return -s.VX
	}
	return s.VX
}

// Relax runs one pass over every bone
func (s *Skeleton) Relax() {
	for _, b := range s.Bones {
		b.Resolve(s.Points[:])
	}
}

// Snapshot copies the joint positions, for renderers and tests
func (s *Skeleton) Snapshot() [JointCount]cp.Vector {
	var out [JointCount]cp.Vector
	for j := range s.Points {
		out[j] = s.Points[j].Pos
	}
	return out
}
