package chart

import (
	"github.com/samber/lo"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/logger"
)

// Padding is the pixel gap between the surface bounds and the plot area,
// in left, top, right, bottom order
type Padding struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// DefaultPadding leaves room for labels on every side
var DefaultPadding = Padding{Left: 80, Top: 80, Right: 80, Bottom: 80}

// Surface owns the drawers, axes and visible range of one rectangular plot
// and runs the per-frame prepare/paint sequence.
type Surface struct {
	log logger.Logger

	Padding Padding

	// YScale is the headroom ratio applied to the auto-discovered Y range
	YScale float64

	BackgroundColor core.Color
	BorderColor     core.Color
	BorderVisible   bool

	axes    []core.Axis
	drawers []core.Drawer

	cfg          *core.DrawConfig
	onInvalidate func()
}

// SurfaceOption configures a Surface
type SurfaceOption func(*Surface)

// WithPadding overrides the default padding
func WithPadding(p Padding) SurfaceOption {
	return func(s *Surface) { s.Padding = p }
}

// WithYScale overrides the Y range headroom ratio
func WithYScale(ratio float64) SurfaceOption {
	return func(s *Surface) { s.YScale = ratio }
}

// WithBackground sets the background fill color
func WithBackground(c core.Color) SurfaceOption {
	return func(s *Surface) { s.BackgroundColor = c }
}

// WithXRange sets the initial visible range
func WithXRange(begin, end int) SurfaceOption {
	return func(s *Surface) {
		s.cfg.Begin, s.cfg.End = begin, end
	}
}

// NewSurface creates an empty chart surface
func NewSurface(log logger.Logger, options ...SurfaceOption) *Surface {
	s := &Surface{
		log:           log,
		Padding:       DefaultPadding,
		YScale:        DefaultYScale,
		BorderColor:   "black",
		BorderVisible: true,
		cfg:           &core.DrawConfig{Begin: 0, End: 10, YHigh: 1},
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// AddDrawer registers a data series renderer. Adding the same drawer twice
// is a no-op.
func (s *Surface) AddDrawer(d core.Drawer) {
	if lo.Contains(s.drawers, d) {
		return
	}
	s.drawers = append(s.drawers, d)
	s.invalidate()
}

// AddAxis registers an axis. Adding the same axis twice is a no-op.
func (s *Surface) AddAxis(a core.Axis) {
	if lo.Contains(s.axes, a) {
		return
	}
	s.axes = append(s.axes, a)
	s.invalidate()
}

// AxesX returns the registered horizontal axes in registration order
func (s *Surface) AxesX() []core.Axis {
	return lo.Filter(s.axes, func(a core.Axis, _ int) bool {
		return a.Orientation() == core.Horizontal
	})
}

// AxesY returns the registered vertical axes in registration order
func (s *Surface) AxesY() []core.Axis {
	return lo.Filter(s.axes, func(a core.Axis, _ int) bool {
		return a.Orientation() == core.Vertical
	})
}

// SetXRange sets the visible half-open range [begin, end)
func (s *Surface) SetXRange(begin, end int) {
	s.cfg.Begin, s.cfg.End = begin, end
	s.invalidate()
}

// GetXRange returns the current visible range
func (s *Surface) GetXRange() (begin, end int) {
	return s.cfg.Begin, s.cfg.End
}

// ScrollX shifts the visible range by delta. Clamping is caller policy.
func (s *Surface) ScrollX(delta int) {
	s.cfg.Begin += delta
	s.cfg.End += delta
	s.invalidate()
}

// Config returns the persisted draw config of the last paint pass
func (s *Surface) Config() *core.DrawConfig {
	return s.cfg
}

// SetOnInvalidate registers the observer notified when the surface needs a
// repaint (range change, drawer/axis registration, crosshair movement)
func (s *Surface) SetOnInvalidate(fn func()) {
	s.onInvalidate = fn
}

func (s *Surface) invalidate() {
	if s.onInvalidate != nil {
		s.onInvalidate()
	}
}

// Paint runs one full paint pass into the given bounds.
//
// Order per frame: background clear, axis grids, drawer series (each in
// drawer-space coordinates), axis ticks/labels, plot border. The painter is
// always restored to UI space before returning. The persisted config is
// cloned up front so external range changes mid-frame cannot affect the
// pass, and stored back at the end so coordinate queries between frames see
// up-to-date transforms.
func (s *Surface) Paint(p core.Painter, bounds core.Rect) {
	cfg := s.cfg.Clone()
	s.prepare(cfg, bounds)

	if s.BackgroundColor != core.ColorNone {
		p.SetBrush(s.BackgroundColor)
		p.FillRect(bounds)
	}

	axes := lo.Filter(s.axes, func(a core.Axis, _ int) bool {
		return shouldPaintAxis(a)
	})
	for _, a := range axes {
		a.PrepareDrawAxis(cfg.Clone(), p)
	}

	if cfg.HasShowingData {
		for _, a := range axes {
			if a.GridsVisible() {
				a.PrepareDrawGrids(cfg.Clone(), p)
				a.DrawGrids(cfg.Clone(), p)
			}
		}

		s.paintDrawers(cfg, p)

		for _, a := range axes {
			if a.TicksVisible() {
				a.PrepareDrawTicks(cfg.Clone(), p)
				a.DrawTicks(cfg.Clone(), p)
			}
		}
	}

	s.paintBoxEdge(cfg, p)
	s.cfg = cfg
}

func (s *Surface) paintDrawers(cfg *core.DrawConfig, p core.Painter) {
	painted := false
	for _, d := range s.drawers {
		if !d.HasData() {
			continue
		}
		p.SetWorldTransform(cfg.Cache.DrawerTransform)
		p.SetPen(core.ColorNone)
		d.Draw(cfg.Clone(), p)
		painted = true
	}
	if painted {
		p.ResetWorldTransform()
	}
}

func (s *Surface) paintBoxEdge(cfg *core.DrawConfig, p core.Painter) {
	if !s.BorderVisible || s.BorderColor == core.ColorNone {
		return
	}
	p.SetBrush(core.ColorNone)
	p.SetPen(s.BorderColor)
	p.DrawRect(cfg.Cache.PlotArea)
}

// prepare resolves the frame configuration: range, auto-discovered Y scale
// and the drawer/UI transforms. It is idempotent for unchanged inputs.
func (s *Surface) prepare(cfg *core.DrawConfig, bounds core.Rect) {
	cfg.HasShowingData = cfg.End-cfg.Begin != 0

	if cfg.HasShowingData && len(s.drawers) > 0 {
		prepared := lo.FilterMap(s.drawers, func(d core.Drawer, _ int) (*core.DrawConfig, bool) {
			if !d.HasData() {
				return nil, false
			}
			return d.PrepareDraw(cfg.Clone()), true
		})

		yLow, yHigh := 0.0, 1.0
		if len(prepared) > 0 {
			yLow = lo.MinBy(prepared, func(a, b *core.DrawConfig) bool {
				return a.YLow < b.YLow
			}).YLow
			yHigh = lo.MaxBy(prepared, func(a, b *core.DrawConfig) bool {
				return a.YHigh > b.YHigh
			}).YHigh
		}

		cfg.YLow, cfg.YHigh = ScaleFromMid(yLow, yHigh, s.YScale)
	}

	plotArea := bounds.Adjusted(s.Padding.Left, s.Padding.Top, -s.Padding.Right, -s.Padding.Bottom)
	cfg.Cache = buildDrawingCache(cfg, plotArea, s.log)
}

func shouldPaintAxis(a core.Axis) bool {
	return a.Visible() && (a.GridsVisible() || a.TicksVisible())
}
