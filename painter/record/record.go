// Package record implements a painter that records drawing operations
// instead of rendering them. It backs the engine tests and any headless
// host that wants to inspect or replay a frame.
package record

import (
	"github.com/raykavin/kchart/core"
)

// Op kinds recorded by the painter
const (
	OpSetTransform   = "set-transform"
	OpResetTransform = "reset-transform"
	OpLine           = "line"
	OpRect           = "rect"
	OpFillRect       = "fill-rect"
	OpText           = "text"
)

// Op is one recorded drawing operation with the painter state at call time
type Op struct {
	Kind  string
	From  core.Point
	To    core.Point
	Rect  core.Rect
	Pos   core.Point
	Text  string
	Pen   core.Color
	Brush core.Color

	// InWorld is true when a world transform was installed
	InWorld bool
}

// Painter implements core.Painter by appending to an op log
type Painter struct {
	Ops []Op

	pen     core.Color
	brush   core.Color
	font    core.Font
	inWorld bool
}

// New creates an empty recording painter
func New() *Painter {
	return &Painter{}
}

// Reset drops all recorded operations
func (p *Painter) Reset() {
	p.Ops = p.Ops[:0]
}

// Count returns how many operations of the given kind were recorded
func (p *Painter) Count(kind string) int {
	n := 0
	for _, op := range p.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// InWorldTransform reports whether a world transform is currently installed
func (p *Painter) InWorldTransform() bool {
	return p.inWorld
}

// SetWorldTransform implements core.Painter.
func (p *Painter) SetWorldTransform(t core.Transform) {
	p.inWorld = true
	p.Ops = append(p.Ops, Op{Kind: OpSetTransform, InWorld: true})
}

// ResetWorldTransform implements core.Painter.
func (p *Painter) ResetWorldTransform() {
	p.inWorld = false
	p.Ops = append(p.Ops, Op{Kind: OpResetTransform})
}

// SetPen implements core.Painter.
func (p *Painter) SetPen(c core.Color) { p.pen = c }

// SetBrush implements core.Painter.
func (p *Painter) SetBrush(c core.Color) { p.brush = c }

// SetFont implements core.Painter.
func (p *Painter) SetFont(f core.Font) { p.font = f }

// DrawLine implements core.Painter.
func (p *Painter) DrawLine(from, to core.Point) {
	p.Ops = append(p.Ops, Op{Kind: OpLine, From: from, To: to, Pen: p.pen, InWorld: p.inWorld})
}

// DrawRect implements core.Painter.
func (p *Painter) DrawRect(r core.Rect) {
	p.Ops = append(p.Ops, Op{Kind: OpRect, Rect: r, Pen: p.pen, Brush: p.brush, InWorld: p.inWorld})
}

// FillRect implements core.Painter.
func (p *Painter) FillRect(r core.Rect) {
	p.Ops = append(p.Ops, Op{Kind: OpFillRect, Rect: r, Brush: p.brush, InWorld: p.inWorld})
}

// DrawText implements core.Painter.
func (p *Painter) DrawText(pos core.Point, text string) {
	p.Ops = append(p.Ops, Op{Kind: OpText, Pos: pos, Text: text, Pen: p.pen, InWorld: p.inWorld})
}

// BoundingRect implements core.Painter with a fixed-pitch estimate so test
// expectations stay deterministic
func (p *Painter) BoundingRect(text string) core.Rect {
	return core.NewRect(0, 0, float64(7*len(text)), 12)
}
