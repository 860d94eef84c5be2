// Package chart implements the charting engine: the drawer-space to pixel
// space transform pipeline, axes, crosshairs, chart surfaces and the
// composite chart that stacks them.
package chart

import (
	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/logger"
)

// DefaultYScale is the headroom ratio applied to the auto-discovered Y range
const DefaultYScale = 1.1

// ScaleFromMid widens (or narrows) the range [low, high] about its midpoint
// by the given ratio. The result keeps the same midpoint and has width
// (high-low)*ratio.
func ScaleFromMid(low, high, ratio float64) (float64, float64) {
	mid := (low + high) / 2
	half := (high - low) / 2 * ratio
	return mid - half, mid + half
}

// rectToRect builds the affine map taking the rectangle in onto the
// rectangle out in standard (non-flipped) orientation
func rectToRect(in, out core.Rect) core.Transform {
	rx := out.Width() / in.Width()
	ry := out.Height() / in.Height()

	return core.Translate(-in.Left(), -in.Top()).
		Then(core.Scale(rx, ry)).
		Then(core.Translate(out.Left(), out.Top()))
}

// buildDrawingCache computes the per-frame transforms between drawer space
// and UI space.
//
// The drawer area spans (begin, yLow) with size (end-begin, yHigh-yLow),
// each dimension floored at 1 so the scale never degenerates. The base
// rect-to-rect map is composed with a vertical reflection inside the plot
// band so that increasing drawer Y draws higher on screen.
func buildDrawingCache(cfg *core.DrawConfig, plotArea core.Rect, log logger.Logger) *core.DrawingCache {
	drawerArea := core.NewRect(
		float64(cfg.Begin),
		cfg.YLow,
		max(float64(cfg.End-cfg.Begin), 1),
		max(cfg.YHigh-cfg.YLow, 1),
	)

	transform := rectToRect(drawerArea, plotArea).
		Then(core.Translate(0, -plotArea.Top())).
		Then(core.VFlip(plotArea.Height())).
		Then(core.Translate(0, plotArea.Top()))

	inverse, err := transform.Invert()
	if err != nil {
		// unreachable given the floor-at-1 drawer area guard
		log.WithError(err).Warn("drawer transform not invertible, falling back to identity")
		inverse = core.Identity()
	}

	return &core.DrawingCache{
		DrawerTransform:    transform,
		UITransform:        inverse,
		DrawerArea:         drawerArea,
		PlotArea:           plotArea,
		PlotToDrawerWidth:  drawerArea.Width() / plotArea.Width(),
		PlotToDrawerHeight: drawerArea.Height() / plotArea.Height(),
	}
}
