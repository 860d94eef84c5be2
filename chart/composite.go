package chart

import (
	"sync"

	"github.com/samber/lo"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/logger"
)

// PaddingScheme is the padding applied to surfaces stacked in a composite.
// The bottom padding of every surface except the last is collapsed to zero
// so adjacent plot borders don't double up.
type PaddingScheme struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// DefaultPaddingScheme leaves room for Y labels on the left and X labels
// below the bottom surface
var DefaultPaddingScheme = PaddingScheme{Left: 80, Top: 0, Right: 10, Bottom: 20}

// SubChart binds one surface to at most one X and one Y crosshair and owns
// the wiring between pointer movement, crosshair updates and repaints.
type SubChart struct {
	surface    *Surface
	weight     int
	composite  *Composite
	CrossHairX *CrossHairAxis
	CrossHairY *CrossHairAxis
}

// Surface returns the wrapped chart surface
func (w *SubChart) Surface() *Surface { return w.surface }

// Weight returns the relative height weight inside the stack
func (w *SubChart) Weight() int { return w.weight }

// PointerMove feeds a local pixel position into the surface's crosshairs
func (w *SubChart) PointerMove(x, y float64) {
	if w.CrossHairX != nil {
		w.CrossHairX.SetValueByUIPos(x)
	}
	if w.CrossHairY != nil {
		w.CrossHairY.SetValueByUIPos(y)
	}
}

// LinkXTo pushes this sub-chart's X crosshair changes into the target's
func (w *SubChart) LinkXTo(target *SubChart) {
	w.CrossHairX.LinkTo(target.CrossHairX)
}

// LinkYTo pushes this sub-chart's Y crosshair changes into the target's
func (w *SubChart) LinkYTo(target *SubChart) {
	w.CrossHairY.LinkTo(target.CrossHairY)
}

// SetCrossHairVisible toggles both crosshairs at once
func (w *SubChart) SetCrossHairVisible(visible bool) {
	if w.CrossHairX != nil {
		w.CrossHairX.AxisVisible = visible
	}
	if w.CrossHairY != nil {
		w.CrossHairY.AxisVisible = visible
	}
}

func (w *SubChart) attachCrossHair(c *CrossHairAxis) {
	c.SetOnChange(w.composite.Invalidate)
	w.surface.AddAxis(c)
}

// SubChartOption configures the wrapper created by AddChart
type SubChartOption func(*SubChart)

// WithCrossHairX attaches a horizontal crosshair to the sub-chart
func WithCrossHairX(c *CrossHairAxis) SubChartOption {
	return func(w *SubChart) { w.CrossHairX = c }
}

// WithCrossHairY attaches a vertical crosshair to the sub-chart
func WithCrossHairY(c *CrossHairAxis) SubChartOption {
	return func(w *SubChart) { w.CrossHairY = c }
}

// Composite stacks chart surfaces vertically with weighted sizing and
// routes pointer movement to the right surface's crosshairs. It owns the
// repaint scheduling: invalidations set a dirty flag that Tick drains into
// a single repaint request.
type Composite struct {
	log logger.Logger

	spacing float64
	padding PaddingScheme

	subs []*SubChart

	// guards the dirty flag against re-entrant invalidation from within a
	// paint callback; not a concurrency primitive for parallel work
	mu      sync.Mutex
	dirty   bool
	repaint func()
}

// CompositeOption configures a Composite
type CompositeOption func(*Composite)

// WithSpacing sets the vertical gap in pixels between stacked surfaces
func WithSpacing(spacing float64) CompositeOption {
	return func(c *Composite) { c.spacing = spacing }
}

// WithPaddingScheme overrides the padding applied to added surfaces
func WithPaddingScheme(p PaddingScheme) CompositeOption {
	return func(c *Composite) { c.padding = p }
}

// NewComposite creates an empty composite chart
func NewComposite(log logger.Logger, options ...CompositeOption) *Composite {
	c := &Composite{
		log:     log,
		padding: DefaultPaddingScheme,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// AddChart stacks a surface below the existing ones. Adding the same
// surface twice is a no-op returning the existing wrapper. The previous
// last surface loses its bottom padding so plot borders don't double up.
func (c *Composite) AddChart(s *Surface, weight int, options ...SubChartOption) *SubChart {
	if existing, ok := lo.Find(c.subs, func(w *SubChart) bool { return w.surface == s }); ok {
		return existing
	}

	if len(c.subs) > 0 {
		c.subs[len(c.subs)-1].surface.Padding.Bottom = 0
	}
	s.Padding = Padding{
		Left:   c.padding.Left,
		Top:    c.padding.Top,
		Right:  c.padding.Right,
		Bottom: c.padding.Bottom,
	}

	wrapper := &SubChart{surface: s, weight: weight, composite: c}
	for _, option := range options {
		option(wrapper)
	}

	if wrapper.CrossHairX != nil {
		wrapper.attachCrossHair(wrapper.CrossHairX)
	}
	if wrapper.CrossHairY != nil {
		wrapper.attachCrossHair(wrapper.CrossHairY)
	}

	s.SetOnInvalidate(c.Invalidate)
	c.subs = append(c.subs, wrapper)
	c.Invalidate()
	return wrapper
}

// SubCharts returns the stacked wrappers in order
func (c *Composite) SubCharts() []*SubChart { return c.subs }

// Count returns the number of stacked surfaces
func (c *Composite) Count() int { return len(c.subs) }

// Spacing returns the vertical gap between surfaces
func (c *Composite) Spacing() float64 { return c.spacing }

// SetXRange applies the range to every stacked surface
func (c *Composite) SetXRange(begin, end int) {
	for _, w := range c.subs {
		w.surface.SetXRange(begin, end)
	}
}

// ScrollX shifts every stacked surface by delta
func (c *Composite) ScrollX(delta int) {
	for _, w := range c.subs {
		w.surface.ScrollX(delta)
	}
}

// GetXRange returns the range of the first stacked surface
func (c *Composite) GetXRange() (begin, end int) {
	if len(c.subs) == 0 {
		return 0, 0
	}
	return c.subs[0].surface.GetXRange()
}

// OnPointerMove routes a pointer position local to the given surface into
// its crosshairs. Unknown surfaces are ignored.
func (c *Composite) OnPointerMove(s *Surface, x, y float64) {
	if w, ok := lo.Find(c.subs, func(w *SubChart) bool { return w.surface == s }); ok {
		w.PointerMove(x, y)
	}
}

// SetRepaintFunc registers the host callback issued by Tick when the
// composite is dirty
func (c *Composite) SetRepaintFunc(fn func()) {
	c.repaint = fn
}

// Invalidate marks the composite as needing a repaint
func (c *Composite) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = true
}

// Tick issues at most one repaint request if anything invalidated the
// composite since the last tick
func (c *Composite) Tick() {
	c.mu.Lock()
	dirty := c.dirty
	c.dirty = false
	c.mu.Unlock()

	if dirty && c.repaint != nil {
		c.repaint()
	}
}

// Layout splits the bounds vertically between the stacked surfaces
// according to their weights, leaving spacing pixels between them
func (c *Composite) Layout(bounds core.Rect) []core.Rect {
	if len(c.subs) == 0 {
		return nil
	}

	totalWeight := lo.SumBy(c.subs, func(w *SubChart) int { return w.weight })
	if totalWeight <= 0 {
		totalWeight = len(c.subs)
	}

	usable := bounds.Height() - c.spacing*float64(len(c.subs)-1)
	rects := make([]core.Rect, 0, len(c.subs))

	y := bounds.Top()
	for _, w := range c.subs {
		weight := w.weight
		if weight <= 0 {
			weight = 1
		}
		h := usable * float64(weight) / float64(totalWeight)
		rects = append(rects, core.NewRect(bounds.Left(), y, bounds.Width(), h))
		y += h + c.spacing
	}
	return rects
}

// PaintAll lays out and paints every stacked surface into bounds
func (c *Composite) PaintAll(p core.Painter, bounds core.Rect) {
	for i, rect := range c.Layout(bounds) {
		c.subs[i].surface.Paint(p, rect)
	}
}
