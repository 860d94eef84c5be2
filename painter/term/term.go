// Package term implements a coarse terminal painter: drawing operations are
// rasterized into a rune grid and rendered with ANSI colors. It exists for
// demos and smoke-testing chart composition without a GUI toolkit.
package term

import (
	"math"
	"strings"

	"github.com/google/goterm/term"

	"github.com/raykavin/kchart/core"
)

type cell struct {
	r     rune
	color core.Color
}

// Painter implements core.Painter on a fixed-size character grid
type Painter struct {
	width  int
	height int
	cells  []cell

	transform    core.Transform
	hasTransform bool
	pen          core.Color
	brush        core.Color
}

// New creates a painter with the given grid size in characters
func New(width, height int) *Painter {
	p := &Painter{width: width, height: height}
	p.clear()
	return p
}

func (p *Painter) clear() {
	p.cells = make([]cell, p.width*p.height)
	for i := range p.cells {
		p.cells[i] = cell{r: ' '}
	}
}

// Bounds returns the drawable area in cell coordinates
func (p *Painter) Bounds() core.Rect {
	return core.NewRect(0, 0, float64(p.width), float64(p.height))
}

// SetWorldTransform implements core.Painter. The terminal has no matrix
// stack, so the transform is applied manually to every coordinate.
func (p *Painter) SetWorldTransform(t core.Transform) {
	p.transform = t
	p.hasTransform = true
}

// ResetWorldTransform implements core.Painter.
func (p *Painter) ResetWorldTransform() {
	p.hasTransform = false
}

// SetPen implements core.Painter.
func (p *Painter) SetPen(c core.Color) { p.pen = c }

// SetBrush implements core.Painter.
func (p *Painter) SetBrush(c core.Color) { p.brush = c }

// SetFont implements core.Painter. Terminal cells have one size.
func (p *Painter) SetFont(core.Font) {}

func (p *Painter) mapPoint(pt core.Point) core.Point {
	if p.hasTransform {
		return p.transform.MapPoint(pt)
	}
	return pt
}

func (p *Painter) set(x, y int, r rune, c core.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.cells[y*p.width+x] = cell{r: r, color: c}
}

// DrawLine implements core.Painter with a Bresenham walk
func (p *Painter) DrawLine(from, to core.Point) {
	if p.pen == core.ColorNone {
		return
	}
	a, b := p.mapPoint(from), p.mapPoint(to)

	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		p.set(x0, y0, '·', p.pen)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect implements core.Painter, drawing only the outline
func (p *Painter) DrawRect(r core.Rect) {
	if p.pen == core.ColorNone {
		return
	}
	mapped := p.mappedRect(r)

	left, top := int(math.Round(mapped.Left())), int(math.Round(mapped.Top()))
	right, bottom := int(math.Round(mapped.Right())), int(math.Round(mapped.Bottom()))

	for x := left; x <= right; x++ {
		p.set(x, top, '-', p.pen)
		p.set(x, bottom, '-', p.pen)
	}
	for y := top; y <= bottom; y++ {
		p.set(left, y, '|', p.pen)
		p.set(right, y, '|', p.pen)
	}
	p.set(left, top, '+', p.pen)
	p.set(right, top, '+', p.pen)
	p.set(left, bottom, '+', p.pen)
	p.set(right, bottom, '+', p.pen)
}

// FillRect implements core.Painter
func (p *Painter) FillRect(r core.Rect) {
	if p.brush == core.ColorNone {
		return
	}
	mapped := p.mappedRect(r)

	left, top := int(math.Round(mapped.Left())), int(math.Round(mapped.Top()))
	right, bottom := int(math.Round(mapped.Right())), int(math.Round(mapped.Bottom()))

	// a filled area narrower than one cell still paints a column
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			p.set(x, y, '█', p.brush)
		}
	}
}

func (p *Painter) mappedRect(r core.Rect) core.Rect {
	if !p.hasTransform {
		return r
	}
	return p.transform.MapRect(r)
}

// DrawText implements core.Painter
func (p *Painter) DrawText(pos core.Point, text string) {
	mapped := p.mapPoint(pos)
	x, y := int(math.Round(mapped.X)), int(math.Round(mapped.Y))
	for i, r := range text {
		p.set(x+i, y, r, p.pen)
	}
}

// BoundingRect implements core.Painter: one cell per rune
func (p *Painter) BoundingRect(text string) core.Rect {
	return core.NewRect(0, 0, float64(len([]rune(text))), 1)
}

// String renders the grid with ANSI colors
func (p *Painter) String() string {
	var sb strings.Builder
	for y := 0; y < p.height; y++ {
		line := p.cells[y*p.width : (y+1)*p.width]
		for _, c := range line {
			sb.WriteString(colorize(string(c.r), c.color))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func colorize(s string, c core.Color) string {
	switch c {
	case "red":
		return term.Redf("%s", s)
	case "green":
		return term.Greenf("%s", s)
	case "blue":
		return term.Bluef("%s", s)
	case "yellow":
		return term.Yellowf("%s", s)
	case "cyan":
		return term.Cyanf("%s", s)
	case "gray", "white":
		return term.Whitef("%s", s)
	default:
		return s
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
