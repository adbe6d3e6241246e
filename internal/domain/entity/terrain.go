package entity

import "math"

// HeightField maps a world X to the ground Y (screen-down is positive)
type HeightField interface {
	Height(x float64) float64
}

// Terrain shape constants
const (
	envelopeFreq  = 0.0003
	envelopePower = 3.5 // flat valleys, sudden peaks
	mediumFreq    = 0.001
	detailFreq    = 0.004
	detailScale   = 0.3
)

// TerrainLayer is one parallax silhouette of the landscape
type TerrainLayer struct {
	Seed       float64
	Base       float64 // lift of the layer above the screen bottom
	Amplitude  float64
	Speed      float64 // parallax factor, 1 = moves with the camera
	Complexity float64 // 0 gives a flat layer
}

// Height returns the layer's ground Y at world x for a screen of the given height
func (l TerrainLayer) Height(x, screenHeight float64) float64 {
	v := math.Pow(math.Sin(x*envelopeFreq+l.Seed)*0.5+0.5, envelopePower)
	m := math.Sin(x*mediumFreq+l.Seed) * l.Amplitude
	h := math.Sin(x*detailFreq+l.Seed) * (l.Amplitude * detailScale)
	return screenHeight - l.Base - (m+h)*(v*l.Complexity)
}

// Terrain is the ordered stack of layers (far to near).
// Exactly one layer is the collision surface.
type Terrain struct {
	ScreenHeight   float64
	Layers         []TerrainLayer
	CollisionLayer int
}

// NewTerrain creates a terrain whose collision layer is the last (nearest) one
func NewTerrain(screenHeight float64, layers ...TerrainLayer) *Terrain {
	return &Terrain{
		ScreenHeight:   screenHeight,
		Layers:         layers,
		CollisionLayer: len(layers) - 1,
	}
}

// Flat returns a single-layer terrain with the ground at y = level
func Flat(level float64) *Terrain {
	return NewTerrain(level, TerrainLayer{Speed: 1})
}

// Height returns the collision surface height at x
func (t *Terrain) Height(x float64) float64 {
	return t.LayerHeight(t.CollisionLayer, x)
}

// LayerHeight returns the height of layer i at x
func (t *Terrain) LayerHeight(i int, x float64) float64 {
	return t.Layers[i].Height(x, t.ScreenHeight)
}

// Collision returns the collision layer
func (t *Terrain) Collision() TerrainLayer {
	return t.Layers[t.CollisionLayer]
}
