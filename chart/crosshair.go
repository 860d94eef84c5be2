package chart

import (
	"math"
	"sync/atomic"

	"github.com/StudioSol/set"

	"github.com/raykavin/kchart/core"
)

var crossHairHandles atomic.Int64

// CrossHairAxis decorates an underlying axis so that it shows a single
// moving grid line and label at the cursor's current drawer-space value.
// Crosshairs on different surfaces can be linked: a value change fans out
// along the link graph to every linked axis whose value actually changes,
// which also terminates propagation when links form a cycle.
type CrossHairAxis struct {
	handle      int64
	orientation core.Orientation
	inner       core.Axis
	innerSource core.TickSource

	AxisVisible bool

	value     float64
	snap      bool
	lastCfg   *core.DrawConfig
	onChange  func()
	targets   *set.LinkedHashSetINT64
	linkedMap map[int64]*CrossHairAxis
}

// NewCrossHair wraps an axis of the given orientation. The tick source is
// the one feeding the inner axis; the crosshair clears it and injects the
// cursor value before every delegated draw.
func NewCrossHair(orientation core.Orientation, inner core.Axis, source core.TickSource) *CrossHairAxis {
	return &CrossHairAxis{
		handle:      crossHairHandles.Add(1),
		orientation: orientation,
		inner:       inner,
		innerSource: source,
		AxisVisible: true,
		targets:     set.NewLinkedHashSetINT64(),
		linkedMap:   make(map[int64]*CrossHairAxis),
	}
}

// NewCrossHairX wraps a horizontal value axis
func NewCrossHairX(inner *ValueAxis) *CrossHairAxis {
	return NewCrossHair(core.Horizontal, inner, inner.Source())
}

// NewCrossHairY wraps a vertical value axis
func NewCrossHairY(inner *ValueAxis) *CrossHairAxis {
	return NewCrossHair(core.Vertical, inner, inner.Source())
}

// NewCrossHairBarX wraps a horizontal bar axis; the cursor value snaps to
// the center of the nearest integer bin
func NewCrossHairBarX(inner *ValueAxis) *CrossHairAxis {
	c := NewCrossHair(core.Horizontal, inner, inner.Source())
	c.snap = true
	return c
}

// Value returns the current cursor position in drawer space
func (c *CrossHairAxis) Value() float64 { return c.value }

// SetOnChange registers the observer notified whenever the value changes,
// typically to request a repaint of the owning chart
func (c *CrossHairAxis) SetOnChange(fn func()) { c.onChange = fn }

// SetValueByUIPos converts a UI pixel position to a drawer-space value and
// applies it. Before the first paint no draw config has been observed and
// the call is ignored.
func (c *CrossHairAxis) SetValueByUIPos(pos float64) {
	if c.lastCfg == nil || c.lastCfg.Cache == nil {
		return
	}
	var value float64
	if c.orientation == core.Horizontal {
		value = c.lastCfg.Cache.UIXToDrawer(pos)
	} else {
		value = c.lastCfg.Cache.UIYToDrawer(pos)
	}
	c.setDrawerValue(value)
}

// SetValue applies a drawer-space value directly
func (c *CrossHairAxis) SetValue(value float64) {
	c.setDrawerValue(value)
}

func (c *CrossHairAxis) setDrawerValue(value float64) {
	if c.snap {
		value = math.Floor(value) + 0.5
	}
	if value == c.value {
		return
	}
	c.value = value
	if c.onChange != nil {
		c.onChange()
	}
	for handle := range c.targets.Iter() {
		c.linkedMap[handle].setDrawerValue(value)
	}
}

// LinkTo registers this axis as a value source for target: every change of
// this axis's value is pushed into target. Linking axes of different
// orientations is a wiring error and panics. Duplicate links are no-ops.
func (c *CrossHairAxis) LinkTo(target *CrossHairAxis) {
	if target.orientation != c.orientation {
		panic(core.ErrOrientationMismatch)
	}
	c.targets.Add(target.handle)
	c.linkedMap[target.handle] = target
}

// Orientation implements core.Axis.
func (c *CrossHairAxis) Orientation() core.Orientation { return c.orientation }

// Visible implements core.Axis.
func (c *CrossHairAxis) Visible() bool { return c.AxisVisible && c.inner.Visible() }

// GridsVisible implements core.Axis.
func (c *CrossHairAxis) GridsVisible() bool { return c.inner.GridsVisible() }

// TicksVisible implements core.Axis.
func (c *CrossHairAxis) TicksVisible() bool { return c.inner.TicksVisible() }

// PrepareDrawAxis implements core.Axis. The config is retained so pointer
// positions can be converted back to drawer space between paints.
func (c *CrossHairAxis) PrepareDrawAxis(cfg *core.DrawConfig, p core.Painter) {
	c.lastCfg = cfg
	c.inner.PrepareDrawAxis(cfg, p)
}

// PrepareDrawGrids implements core.Axis.
func (c *CrossHairAxis) PrepareDrawGrids(cfg *core.DrawConfig, p core.Painter) {
	c.inner.PrepareDrawGrids(cfg, p)
}

// DrawGrids implements core.Axis. The inner tick source is replaced with a
// single mid-aligned entry at the cursor value before delegating.
func (c *CrossHairAxis) DrawGrids(cfg *core.DrawConfig, p core.Painter) {
	c.injectValue()
	c.inner.DrawGrids(cfg, p)
}

// PrepareDrawTicks implements core.Axis.
func (c *CrossHairAxis) PrepareDrawTicks(cfg *core.DrawConfig, p core.Painter) {
	c.inner.PrepareDrawTicks(cfg, p)
}

// DrawTicks implements core.Axis.
func (c *CrossHairAxis) DrawTicks(cfg *core.DrawConfig, p core.Painter) {
	c.injectValue()
	c.inner.DrawTicks(cfg, p)
}

func (c *CrossHairAxis) injectValue() {
	c.innerSource.Clear()
	c.innerSource.AppendByIndex(c.value, core.AlignMid)
}
