package core

import (
	"gonum.org/v1/gonum/mat"
)

// Point is a position in either drawer or UI space
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect creates a rectangle from origin and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Width() float64  { return r.W }
func (r Rect) Height() float64 { return r.H }

// Adjusted returns a copy of the rectangle with each side moved by the given deltas
// Positive left/top deltas and negative right/bottom deltas shrink the rectangle
func (r Rect) Adjusted(dLeft, dTop, dRight, dBottom float64) Rect {
	return Rect{
		X: r.X + dLeft,
		Y: r.Y + dTop,
		W: r.W - dLeft + dRight,
		H: r.H - dTop + dBottom,
	}
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Transform is an affine 2D transformation backed by a 3x3 matrix
// The zero value is not usable; construct with Identity, Translate, Scale or VFlip
type Transform struct {
	m *mat.Dense
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// Translate returns a transform moving points by (dx, dy)
func Translate(dx, dy float64) Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	})}
}

// Scale returns a transform scaling points by (sx, sy) about the origin
func Scale(sx, sy float64) Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	})}
}

// VFlip returns a transform mirroring points vertically inside a band of the
// given height, mapping y to height-y
func VFlip(height float64) Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, -1, height,
		0, 0, 1,
	})}
}

// Then composes transforms: the result applies t first, then next
func (t Transform) Then(next Transform) Transform {
	out := mat.NewDense(3, 3, nil)
	out.Mul(next.m, t.m)
	return Transform{m: out}
}

// Invert returns the inverse transform
// Returns ErrSingularTransform when the matrix cannot be inverted
func (t Transform) Invert() (Transform, error) {
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(t.m); err != nil {
		return Identity(), ErrSingularTransform
	}
	return Transform{m: inv}, nil
}

// MapPoint applies the transform to a point
func (t Transform) MapPoint(p Point) Point {
	return Point{
		X: t.m.At(0, 0)*p.X + t.m.At(0, 1)*p.Y + t.m.At(0, 2),
		Y: t.m.At(1, 0)*p.X + t.m.At(1, 1)*p.Y + t.m.At(1, 2),
	}
}

// MapX maps an x coordinate, holding y at zero
func (t Transform) MapX(x float64) float64 {
	return t.MapPoint(Point{X: x}).X
}

// MapY maps a y coordinate, holding x at zero
func (t Transform) MapY(y float64) float64 {
	return t.MapPoint(Point{Y: y}).Y
}

// MapRect maps a rectangle, normalizing the result so width and height stay positive
// even when the transform flips an axis
func (t Transform) MapRect(r Rect) Rect {
	a := t.MapPoint(Point{X: r.Left(), Y: r.Top()})
	b := t.MapPoint(Point{X: r.Right(), Y: r.Bottom()})

	left, right := a.X, b.X
	if left > right {
		left, right = right, left
	}
	top, bottom := a.Y, b.Y
	if top > bottom {
		top, bottom = bottom, top
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}
