package walking

import "github.com/charmbracelet/harmonica"

// Camera keeps the player in frame. It frames the body anchor horizontally
// centered and the hip at two thirds of the screen height.
type Camera struct {
	X, Y float64

	vx, vy  float64
	springX harmonica.Spring
	springY harmonica.Spring
	screenW float64
	screenH float64
}

// Camera springs; Y is softer so terrain bumps do not shake the view
const (
	cameraFreqX    = 6.0
	cameraFreqY    = 3.0
	cameraDampingX = 1.0
	cameraDampingY = 1.0
	cameraHipRatio = 1.5
)

// NewCamera creates a camera already framing (x, hipY)
func NewCamera(fps, screenW, screenH int, x, hipY float64) *Camera {
	c := &Camera{
		springX: harmonica.NewSpring(harmonica.FPS(fps), cameraFreqX, cameraDampingX),
		springY: harmonica.NewSpring(harmonica.FPS(fps), cameraFreqY, cameraDampingY),
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
	c.X, c.Y = c.target(x, hipY)
	return c
}

func (c *Camera) target(x, hipY float64) (float64, float64) {
	return x - c.screenW/2, hipY - c.screenH/cameraHipRatio
}

// Follow moves the camera one frame toward framing (x, hipY)
func (c *Camera) Follow(x, hipY float64) {
	tx, ty := c.target(x, hipY)
	c.X, c.vx = c.springX.Update(c.X, c.vx, tx)
	c.Y, c.vy = c.springY.Update(c.Y, c.vy, ty)
}

// Offset returns the screen offset for a layer with the given parallax speed
func (c *Camera) Offset(speed float64) (float64, float64) {
	return c.X * speed, c.Y * speed
}
