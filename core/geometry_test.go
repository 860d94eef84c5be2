package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRect_Accessors(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	require.Equal(t, 10.0, r.Left())
	require.Equal(t, 20.0, r.Top())
	require.Equal(t, 110.0, r.Right())
	require.Equal(t, 70.0, r.Bottom())
	require.Equal(t, 100.0, r.Width())
	require.Equal(t, 50.0, r.Height())
}

func TestRect_Adjusted(t *testing.T) {
	r := NewRect(0, 0, 100, 100).Adjusted(80, 0, -10, -20)
	require.Equal(t, 80.0, r.Left())
	require.Equal(t, 0.0, r.Top())
	require.Equal(t, 90.0, r.Right())
	require.Equal(t, 80.0, r.Bottom())
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	require.True(t, r.Contains(Point{X: 5, Y: 5}))
	require.True(t, r.Contains(Point{X: 0, Y: 0}))
	require.False(t, r.Contains(Point{X: 11, Y: 5}))
	require.False(t, r.Contains(Point{X: 5, Y: -1}))
}

func TestTransform_Identity(t *testing.T) {
	p := Identity().MapPoint(Point{X: 3, Y: 4})
	require.Equal(t, Point{X: 3, Y: 4}, p)
}

func TestTransform_TranslateScale(t *testing.T) {
	tr := Scale(2, 3).Then(Translate(10, 20))
	p := tr.MapPoint(Point{X: 1, Y: 1})
	require.InDelta(t, 12.0, p.X, 1e-9)
	require.InDelta(t, 23.0, p.Y, 1e-9)
}

func TestTransform_VFlip(t *testing.T) {
	tr := VFlip(100)
	require.InDelta(t, 100.0, tr.MapY(0), 1e-9)
	require.InDelta(t, 0.0, tr.MapY(100), 1e-9)
	require.InDelta(t, 70.0, tr.MapY(30), 1e-9)
	// x untouched
	require.InDelta(t, 42.0, tr.MapX(42), 1e-9)
}

func TestTransform_ThenOrder(t *testing.T) {
	// scale then translate is not translate then scale
	a := Scale(2, 2).Then(Translate(10, 0)).MapPoint(Point{X: 1, Y: 0})
	b := Translate(10, 0).Then(Scale(2, 2)).MapPoint(Point{X: 1, Y: 0})
	require.InDelta(t, 12.0, a.X, 1e-9)
	require.InDelta(t, 22.0, b.X, 1e-9)
}

func TestTransform_InvertRoundtrip(t *testing.T) {
	tr := Scale(2.5, -1.5).Then(Translate(-7, 13)).Then(VFlip(480))
	inv, err := tr.Invert()
	require.NoError(t, err)

	orig := Point{X: 12.25, Y: -3.5}
	back := inv.MapPoint(tr.MapPoint(orig))
	require.InDelta(t, orig.X, back.X, 1e-9)
	require.InDelta(t, orig.Y, back.Y, 1e-9)
}

func TestTransform_InvertSingular(t *testing.T) {
	_, err := Scale(0, 1).Invert()
	require.ErrorIs(t, err, ErrSingularTransform)
}

func TestTransform_MapRectNormalizes(t *testing.T) {
	// a flip maps the rect corners upside down; MapRect must still return a
	// rect with positive extents
	r := VFlip(100).MapRect(NewRect(10, 20, 30, 40))
	require.Equal(t, 10.0, r.Left())
	require.Equal(t, 40.0, r.Top())
	require.Equal(t, 30.0, r.Width())
	require.Equal(t, 40.0, r.Height())
}
