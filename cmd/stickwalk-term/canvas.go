package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp/v2"
)

// World pixels per terminal cell. Cells are about twice as tall as wide.
const (
	cellW = 12.0
	cellH = 24.0
)

type cell struct {
	r     rune
	style tcell.Style
}

// Canvas is an off-screen grid of cells, copied to the screen in one pass
type Canvas struct {
	W, H  int
	cells []cell

	// world position of the top-left cell
	origin cp.Vector
}

// NewCanvas creates a blank canvas
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize changes the canvas size and clears it
func (c *Canvas) Resize(w, h int) {
	c.W, c.H = max(w, 0), max(h, 0)
	c.cells = make([]cell, c.W*c.H)
	c.Clear()
}

// Clear blanks every cell
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

// CenterOn places the world point at the middle column and two thirds down
func (c *Canvas) CenterOn(p cp.Vector) {
	c.origin = cp.Vector{
		X: p.X - float64(c.W)*cellW/2,
		Y: p.Y - float64(c.H)*cellH/1.5,
	}
}

// Project maps a world point to a cell column and row
func (c *Canvas) Project(p cp.Vector) (int, int) {
	return int(math.Floor((p.X - c.origin.X) / cellW)), int(math.Floor((p.Y - c.origin.Y) / cellH))
}

// WorldX returns the world X at the center of column col
func (c *Canvas) WorldX(col int) float64 {
	return c.origin.X + (float64(col)+0.5)*cellW
}

// Set writes one cell; out-of-range writes are dropped
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.cells[y*c.W+x] = cell{r: r, style: style}
}

// At returns the rune at a cell, or 0 outside the canvas
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return 0
	}
	return c.cells[y*c.W+x].r
}

// Line draws a world-space segment with Bresenham's algorithm
func (c *Canvas) Line(a, b cp.Vector, r rune, style tcell.Style) {
	x0, y0 := c.Project(a)
	x1, y1 := c.Project(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		c.Set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillBelow fills each column from the world height h(x) to the bottom
func (c *Canvas) FillBelow(h func(x float64) float64, top, fill rune, style tcell.Style) {
	for col := 0; col < c.W; col++ {
		_, row := c.Project(cp.Vector{X: c.WorldX(col), Y: h(c.WorldX(col))})
		c.Set(col, row, top, style)
		for y := max(row+1, 0); y < c.H; y++ {
			c.Set(col, y, fill, style)
		}
	}
}

// Text writes a string starting at a cell
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, style)
	}
}

// Flush copies the canvas to the screen
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			cl := c.cells[y*c.W+x]
			screen.SetContent(x, y, cl.r, nil, cl.style)
		}
	}
	screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}
