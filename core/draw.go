package core

// Orientation distinguishes horizontal (X) from vertical (Y) axes
type Orientation int8

const (
	Horizontal Orientation = iota + 1
	Vertical
)

// Alignment controls how a tick label anchors to its tick position
type Alignment int8

const (
	AlignStart Alignment = iota
	AlignMid
	AlignEnd
)

// Color is a named or hex ("#RRGGBB") color
// The empty string means "don't draw"
type Color string

const ColorNone Color = ""

// Font describes the typeface used for tick labels
type Font struct {
	Name string
	Size float64
}

// DrawConfig is the per-frame snapshot of the visible range and its derived
// drawing cache. It is copied before every mutation so a paint pass in
// progress always observes a stable snapshot.
type DrawConfig struct {
	// Begin and End form the half-open drawer-space X range [Begin, End)
	Begin int
	End   int

	// YLow and YHigh are the drawer-space Y range after headroom scaling
	YLow  float64
	YHigh float64

	// HasShowingData is derived from the X range: false when End == Begin
	HasShowingData bool

	Cache *DrawingCache
}

// Clone returns a shallow copy of the config
// The drawing cache is shared: it is immutable once built for a frame
func (c *DrawConfig) Clone() *DrawConfig {
	cp := *c
	return &cp
}

// DrawingCache holds the per-frame derived transforms between drawer space
// and UI space. It is recomputed every frame and never mutated in place.
type DrawingCache struct {
	// DrawerTransform maps drawer space to UI space, Y-flipped so that
	// increasing drawer Y draws higher on screen
	DrawerTransform Transform

	// UITransform is the inverse of DrawerTransform
	UITransform Transform

	// DrawerArea is the logical world rectangle (begin, yLow, end-begin, yHigh-yLow)
	DrawerArea Rect

	// PlotArea is the UI rectangle inside the surface padding
	PlotArea Rect

	// PlotToDrawerWidth converts plot-area pixel widths to drawer widths
	PlotToDrawerWidth float64

	// PlotToDrawerHeight converts plot-area pixel heights to drawer heights
	PlotToDrawerHeight float64
}

// DrawerToUI maps a drawer-space point into UI space
func (c *DrawingCache) DrawerToUI(p Point) Point {
	return c.DrawerTransform.MapPoint(p)
}

// DrawerXToUI maps a drawer-space x value into UI space
func (c *DrawingCache) DrawerXToUI(x float64) float64 {
	return c.DrawerTransform.MapX(x)
}

// DrawerYToUI maps a drawer-space y value into UI space
func (c *DrawingCache) DrawerYToUI(y float64) float64 {
	return c.DrawerTransform.MapY(y)
}

// UIXToDrawer maps a UI-space x pixel position into drawer space
func (c *DrawingCache) UIXToDrawer(x float64) float64 {
	return c.UITransform.MapX(x)
}

// UIYToDrawer maps a UI-space y pixel position into drawer space
func (c *DrawingCache) UIYToDrawer(y float64) float64 {
	return c.UITransform.MapY(y)
}

// UIHeightToDrawer converts a pixel height into a drawer-space height
func (c *DrawingCache) UIHeightToDrawer(h float64) float64 {
	return h / c.PlotArea.Height() * c.DrawerArea.Height()
}

// Painter is the rendering surface the engine draws through.
// Implementations are external: a widget toolkit, an image rasterizer, a
// terminal grid or a recording mock.
type Painter interface {
	// SetWorldTransform installs a transform applied to every subsequent
	// drawing call until ResetWorldTransform
	SetWorldTransform(t Transform)
	ResetWorldTransform()

	SetPen(c Color)
	SetBrush(c Color)
	SetFont(f Font)

	DrawLine(from, to Point)
	DrawRect(r Rect)
	FillRect(r Rect)
	DrawText(pos Point, text string)

	// BoundingRect measures the text with the current font
	BoundingRect(text string) Rect
}

// Drawer renders one data series within a chart surface
type Drawer interface {
	// HasData reports whether the drawer has anything to contribute
	HasData() bool

	// PrepareDraw receives a copy of the frame config and returns it with
	// YLow/YHigh set to the Y range this drawer needs for the visible window
	PrepareDraw(cfg *DrawConfig) *DrawConfig

	// Draw renders in drawer-space coordinates; the painter already has the
	// drawer transform installed
	Draw(cfg *DrawConfig, p Painter)
}

// Axis prepares and draws grid lines and tick labels for one orientation.
//
// Calling sequence per paint pass:
//
//	PrepareDrawAxis
//	PrepareDrawGrids
//	DrawGrids       (if grids visible)
//	PrepareDrawTicks
//	DrawTicks       (if ticks visible)
type Axis interface {
	Orientation() Orientation

	Visible() bool
	GridsVisible() bool
	TicksVisible() bool

	PrepareDrawAxis(cfg *DrawConfig, p Painter)
	PrepareDrawGrids(cfg *DrawConfig, p Painter)
	DrawGrids(cfg *DrawConfig, p Painter)
	PrepareDrawTicks(cfg *DrawConfig, p Painter)
	DrawTicks(cfg *DrawConfig, p Painter)
}

// TickSource is the narrow contract between an axis and whatever decides
// where its ticks fall. Generated sources and crosshair-driven sources
// implement it identically, so no runtime type checks are needed.
type TickSource interface {
	Clear()
	AppendByIndex(value float64, align Alignment)
}
