package entity

import "math"

// TreeBranchCount is the number of branches on every dead tree
const TreeBranchCount = 5

// Branch is one limb of a dead tree
type Branch struct {
	Length float64
	Angle  float64 // radians, -Pi/2 points straight up
}

// Tree is a scenery decoration planted on the collision layer.
// It never takes part in the simulation.
type Tree struct {
	X, Y     float64
	Height   float64
	Branches [TreeBranchCount]Branch
}

// BranchBase returns the trunk point where branch i starts
func (t *Tree) BranchBase(i int) (x, y float64) {
	return t.X, t.Y - t.Height*(0.2+float64(i)*0.15)
}

// BranchTip returns the end point of branch i
func (t *Tree) BranchTip(i int) (x, y float64) {
	bx, by := t.BranchBase(i)
	b := t.Branches[i]
	return bx + math.Cos(b.Angle)*b.Length, by + math.Sin(b.Angle)*b.Length
}
