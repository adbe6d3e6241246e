package entity

// Bone keeps two joints at a fixed distance
type Bone struct {
	A, B   JointID
	Length float64 // rest length, fixed for the skeleton's lifetime
}

// Resolve runs one relaxation step, splitting the error evenly between
// both ends. Coincident points have no direction to push along and are left alone.
func (b Bone) Resolve(points []PointMass) {
	pa, pb := &points[b.A], &points[b.B]
	d := pb.Pos.Sub(pa.Pos)
	dist := d.Length()
	if dist == 0 {
		return
	}
	half := d.Mult((b.Length - dist) / dist * 0.5)
	pa.Pos = pa.Pos.Sub(half)
	pb.Pos = pb.Pos.Add(half)
}

// DistanceLimit caps the distance from A to B without enforcing a minimum.
// Only B moves; A is treated as the anchor.
type DistanceLimit struct {
	A, B JointID
	Max  float64
}

// Apply pulls B back onto the circle of radius Max around A when stretched
func (l DistanceLimit) Apply(points []PointMass) {
	pa, pb := &points[l.A], &points[l.B]
	d := pb.Pos.Sub(pa.Pos)
	dist := d.Length()
	if dist <= l.Max || dist == 0 {
		return
	}
	pb.Pos = pa.Pos.Add(d.Mult(l.Max / dist))
}
