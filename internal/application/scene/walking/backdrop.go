package walking

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// Sampling steps in screen pixels
const (
	layerStep = 15.0
	smokeStep = 30.0
	grassStep = 40.0
)

// Basement silhouettes are drawn for this window of slots around the camera
const (
	basementFirst = -15
	basementLast  = 30
)

// basement is one building silhouette in screen space
type basement struct {
	X, Y     float64 // top-left corner
	W, H     float64 // H is the roof depth; walls run to the screen bottom
	Triangle bool    // gabled roof instead of a window
	Window   bool
}

// basementAt places the silhouette in slot i of a layer seen through the camera.
// Each slot's shape comes from a hash of its world X, so it never changes.
func basementAt(b *config.BasementConfig, speed, camX, camY float64, i int, ground func(float64) float64) basement {
	worldX := math.Floor(camX*speed/b.Spacing+float64(i)) * b.Spacing
	hash := math.Abs(math.Sin(worldX+b.Seed) * 10000)
	h := (200 + math.Mod(hash, 500)) * b.Scale
	return basement{
		X:        worldX - camX*speed,
		Y:        ground(worldX) - h*0.3 - camY*speed,
		W:        (150 + math.Mod(hash, 150)) * b.Scale,
		H:        h,
		Triangle: math.Mod(hash, 10) > 5,
		Window:   math.Mod(hash, 3) > 1,
	}
}

// visible reports whether the basement overlaps a screen of the given width
func (b basement) visible(screenW float64) bool {
	return b.X > -b.W && b.X < screenW
}

// layerOutline samples the top edge of layer i across the screen
func layerOutline(t *entity.Terrain, i int, camX, camY, screenW float64) []cp.Vector {
	speed := t.Layers[i].Speed
	out := make([]cp.Vector, 0, int(screenW/layerStep)+2)
	for x := 0.0; x <= screenW; x += layerStep {
		out = append(out, cp.Vector{X: x, Y: t.LayerHeight(i, x+camX*speed) - camY*speed})
	}
	return out
}

// smokeOutline samples the top edge of one smoke octave at time tm
func smokeOutline(octave int, tm, camY, speed, screenW, screenH float64) []cp.Vector {
	offset := float64(octave) * 50
	out := make([]cp.Vector, 0, int(screenW/smokeStep)+2)
	for x := 0.0; x <= screenW; x += smokeStep {
		noise := math.Sin(x*0.002+tm+offset) * 20
		noise += math.Sin(x*0.005-tm*0.5) * 10
		out = append(out, cp.Vector{X: x, Y: screenH*0.7 + noise - camY*speed})
	}
	return out
}

// hasGrass reports whether a grass tuft grows at worldX
func hasGrass(worldX float64) bool {
	return math.Abs(math.Sin(worldX*0.01)*100) > 99
}
