package walking

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"

	"github.com/younwookim/stickwalk/internal/application/state"
	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBone      = color.RGBA{255, 255, 255, 255}
	colorOther     = color.RGBA{170, 170, 190, 255}
	colorTree      = color.RGBA{17, 17, 17, 255}
	colorGrass     = color.RGBA{26, 26, 26, 255}
	colorProp      = color.RGBA{26, 26, 26, 255}
	colorHeavyProp = color.RGBA{68, 17, 17, 255}
	colorTargeted  = color.RGBA{255, 255, 255, 255}
	colorFatigueBG = color.RGBA{60, 60, 60, 255}
	colorFatigueFG = color.RGBA{200, 90, 60, 255}
)

// Stroke widths and radii in pixels
const (
	boneWidth   = 10
	headRadius  = 15
	trunkWidth  = 8
	branchWidth = 4
	strokeWidth = 4
	smokeAlpha  = 0.3
	screenDepth = 1000 // walls and terrain extend this far below the screen
)

type layerStyle struct {
	fill     color.RGBA
	stroke   color.RGBA
	stroked  bool
	basement *config.BasementConfig
	building color.RGBA
	window   color.RGBA
}

type smokeStyle struct {
	color color.RGBA
	speed float64
	layer int
}

// painter holds the parsed world palette and scratch buffers for polygons
type painter struct {
	background color.RGBA
	layers     []layerStyle
	smoke      []smokeStyle

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newPainter(cfg *config.WorldConfig) *painter {
	p := &painter{background: config.MustColor(cfg.Background)}
	for _, l := range cfg.Terrain.Layers {
		s := layerStyle{fill: config.MustColor(l.Color), basement: l.Basement}
		if l.Stroke != "" {
			s.stroke, s.stroked = config.MustColor(l.Stroke), true
		}
		if l.Basement != nil {
			s.building = config.MustColor(l.Basement.Color)
			s.window = config.MustColor(l.Basement.Windows)
		}
		p.layers = append(p.layers, s)
	}
	for _, sm := range cfg.Smoke {
		p.smoke = append(p.smoke, smokeStyle{color: config.MustColor(sm.Color), speed: sm.Speed, layer: sm.Layer})
	}
	return p
}

// source returns the 1x1 white texture polygons are filled from
func (p *painter) source() *ebiten.Image {
	if p.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		p.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return p.white
}

func (p *painter) vertex(x, y float64, c color.RGBA, alpha float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255 * alpha,
		ColorG: float32(c.G) / 255 * alpha,
		ColorB: float32(c.B) / 255 * alpha,
		ColorA: float32(c.A) / 255 * alpha,
	}
}

func (p *painter) flush(screen *ebiten.Image) {
	screen.DrawTriangles(p.vertices, p.indices, p.source(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	})
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}

// fillBelow fills the area between an outline and the bottom edge
func (p *painter) fillBelow(screen *ebiten.Image, outline []cp.Vector, bottom float64, c color.RGBA, alpha float32) {
	for i, pt := range outline {
		p.vertices = append(p.vertices,
			p.vertex(pt.X, pt.Y, c, alpha),
			p.vertex(pt.X, bottom, c, alpha))
		if i == 0 {
			continue
		}
		n := uint16(2 * i)
		p.indices = append(p.indices, n-2, n-1, n, n-1, n+1, n)
	}
	p.flush(screen)
}

// fillConvex fills a convex polygon as a triangle fan
func (p *painter) fillConvex(screen *ebiten.Image, pts []cp.Vector, c color.RGBA) {
	for i, pt := range pts {
		p.vertices = append(p.vertices, p.vertex(pt.X, pt.Y, c, 1))
		if i >= 2 {
			p.indices = append(p.indices, 0, uint16(i-1), uint16(i))
		}
	}
	p.flush(screen)
}

func strokeOutline(screen *ebiten.Image, outline []cp.Vector, width float32, c color.Color) {
	for i := 1; i < len(outline); i++ {
		a, b := outline[i-1], outline[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
	}
}

func line(screen *ebiten.Image, a, b cp.Vector, width float32, c color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
}

// Draw renders the scene
func (w *Walking) Draw(screen *ebiten.Image) {
	screen.Fill(w.painter.background)

	for i := range w.sim.World.Terrain.Layers {
		w.drawLayer(screen, i)
		for _, sm := range w.painter.smoke {
			if sm.layer == i {
				w.drawSmoke(screen, sm)
			}
		}
	}

	cam := cp.Vector{X: w.camera.X, Y: w.camera.Y}
	w.drawTrees(screen, cam)
	w.drawProps(screen, cam)
	w.drawSkeletons(screen, cam)
	w.drawUI(screen)

	switch w.state {
	case state.StatePaused:
		w.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateFinished:
		w.drawOverlay(screen, "REPLAY FINISHED\n\nPress R to watch again, Q to quit")
	}
}

func (w *Walking) drawLayer(screen *ebiten.Image, i int) {
	t := w.sim.World.Terrain
	style := w.painter.layers[i]
	l := t.Layers[i]
	camX, camY := w.camera.Offset(1)
	sw, sh := float64(w.screenW), float64(w.screenH)

	if style.basement != nil {
		ground := func(x float64) float64 { return t.LayerHeight(i, x) }
		for slot := basementFirst; slot < basementLast; slot++ {
			b := basementAt(style.basement, l.Speed, camX, camY, slot, ground)
			if b.visible(sw) {
				w.drawBasement(screen, b, style)
			}
		}
	}

	outline := layerOutline(t, i, camX, camY, sw)
	w.painter.fillBelow(screen, outline, sh, style.fill, 1)
	if style.stroked {
		strokeOutline(screen, outline, strokeWidth, style.stroke)
	}

	if l.Speed >= 1 {
		w.drawGrass(screen, camX, camY)
	}
}

func (w *Walking) drawBasement(screen *ebiten.Image, b basement, style layerStyle) {
	bottom := float64(w.screenH) + screenDepth
	if b.Triangle {
		w.painter.fillConvex(screen, []cp.Vector{
			{X: b.X + b.W/2, Y: b.Y},
			{X: b.X + b.W, Y: b.Y + b.H},
			{X: b.X + b.W, Y: bottom},
			{X: b.X, Y: bottom},
			{X: b.X, Y: b.Y + b.H},
		}, style.building)
		return
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(bottom-b.Y), style.building, false)
	if b.Window {
		size := 10 * style.basement.Scale
		vector.DrawFilledRect(screen, float32(b.X+b.W/4), float32(b.Y+30), float32(size), float32(size*1.5), style.window, false)
	}
}

func (w *Walking) drawGrass(screen *ebiten.Image, camX, camY float64) {
	t := w.sim.World.Terrain
	for x := 0.0; x < float64(w.screenW); x += grassStep {
		worldX := x + camX
		if !hasGrass(worldX) {
			continue
		}
		root := cp.Vector{X: x, Y: t.Height(worldX) - camY}
		line(screen, root, root.Add(cp.Vector{X: -5, Y: -15}), 2, colorGrass)
		line(screen, root, root.Add(cp.Vector{X: 5, Y: -12}), 2, colorGrass)
	}
}

func (w *Walking) drawSmoke(screen *ebiten.Image, sm smokeStyle) {
	sw, sh := float64(w.screenW), float64(w.screenH)
	for octave := 0; octave < 3; octave++ {
		outline := smokeOutline(octave, w.smoke, w.camera.Y, sm.speed, sw, sh)
		w.painter.fillBelow(screen, outline, sh, sm.color, smokeAlpha)
	}
}

func (w *Walking) drawTrees(screen *ebiten.Image, cam cp.Vector) {
	for i := range w.sim.World.Trees {
		tr := &w.sim.World.Trees[i]
		base := cp.Vector{X: tr.X, Y: tr.Y}.Sub(cam)
		line(screen, base, base.Add(cp.Vector{Y: -tr.Height}), trunkWidth, colorTree)
		for b := range tr.Branches {
			bx, by := tr.BranchBase(b)
			tx, ty := tr.BranchTip(b)
			line(screen, cp.Vector{X: bx, Y: by}.Sub(cam), cp.Vector{X: tx, Y: ty}.Sub(cam), branchWidth, colorTree)
		}
	}
}

func (w *Walking) drawProps(screen *ebiten.Image, cam cp.Vector) {
	targeted := map[entity.PropID]bool{}
	for _, sk := range w.sim.World.Skeletons {
		if sk.Interaction.IsTargeting() {
			targeted[sk.Interaction.Target] = true
		}
	}

	for i := range w.sim.World.Props {
		pr := &w.sim.World.Props[i]
		c := colorProp
		switch {
		case targeted[entity.PropID(i)]:
			c = colorTargeted
		case pr.IsHeavy():
			c = colorHeavyProp
		}
		x := float32(pr.Pos.X - cam.X - pr.Size/2)
		y := float32(pr.Pos.Y - cam.Y - pr.Size/2)
		s := float32(pr.Size)
		vector.DrawFilledRect(screen, x, y, s, s, c, false)
		vector.StrokeRect(screen, x, y, s, s, 2, colorBone, false)
	}
}

func (w *Walking) drawSkeletons(screen *ebiten.Image, cam cp.Vector) {
	for i, sk := range w.sim.World.Skeletons {
		c := colorBone
		if i > 0 {
			c = colorOther
		}
		for _, b := range sk.Bones {
			a, z := sk.Pos(b.A).Sub(cam), sk.Pos(b.B).Sub(cam)
			line(screen, a, z, boneWidth, c)
			// round caps
			vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), boneWidth/2, c, true)
			vector.DrawFilledCircle(screen, float32(z.X), float32(z.Y), boneWidth/2, c, true)
		}
		head := sk.Pos(entity.Head).Sub(cam)
		vector.DrawFilledCircle(screen, float32(head.X), float32(head.Y), headRadius, c, true)
	}
}

func (w *Walking) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | Shift: Grab/Throw | ESC: Pause | F5: Save | Q: Quit")

	p := w.sim.World.Player()
	if p == nil {
		return
	}

	barX, barY := float32(10), float32(w.screenH-20)
	barW, barH := float32(100), float32(10)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorFatigueBG, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(min(p.Fatigue, 1)), barH, colorFatigueFG, false)

	status := fmt.Sprintf("%s | %s | tick %d", w.state, p.Interaction.Phase, w.sim.World.Tick)
	if w.recorder != nil {
		status += fmt.Sprintf(" | REC %d", w.recorder.FrameCount())
	}
	if w.replayer != nil {
		status += fmt.Sprintf(" | REPLAY %d/%d", w.replayer.CurrentFrame(), w.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, status, 10, w.screenH-38)
}

func (w *Walking) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(w.screenW), float32(w.screenH), color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, text, w.screenW/2-80, w.screenH/2-20)
}
