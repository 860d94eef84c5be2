package chart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
	"github.com/raykavin/kchart/painter/record"
)

func TestSurface_PrepareMergesDrawerRanges(t *testing.T) {
	s := NewSurface(testLogger(), WithXRange(0, 5))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource(0, 1, 2, 3, 5)))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource(-2, 0, 1, 2, 3)))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource(1, 4, 6, 8, 10)))

	s.Paint(record.New(), core.NewRect(0, 0, 560, 480))

	cfg := s.Config()
	require.True(t, cfg.HasShowingData)

	// union of [0,5], [-2,3], [1,10] is [-2,10], widened by the 1.1 headroom
	require.InDelta(t, -2.6, cfg.YLow, 1e-9)
	require.InDelta(t, 10.6, cfg.YHigh, 1e-9)
}

func TestSurface_EmptyRangeSkipsDataPainting(t *testing.T) {
	s := NewSurface(testLogger(), WithXRange(3, 3))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource(1, 2, 3)))
	s.AddAxis(NewBarAxisX())
	s.AddAxis(NewValueAxis(core.Vertical))

	p := record.New()
	s.Paint(p, core.NewRect(0, 0, 560, 480))

	require.False(t, s.Config().HasShowingData)
	require.Equal(t, 0, p.Count(record.OpLine))
	require.Equal(t, 0, p.Count(record.OpText))
	require.Equal(t, 0, p.Count(record.OpFillRect))

	// the border still paints
	require.Equal(t, 1, p.Count(record.OpRect))
}

func TestSurface_NoDrawerDataDefaultsRange(t *testing.T) {
	s := NewSurface(testLogger(), WithXRange(0, 10))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource()))

	s.Paint(record.New(), core.NewRect(0, 0, 560, 480))

	// empty drawers fall back to the [0,1] range before headroom
	cfg := s.Config()
	require.InDelta(t, -0.05, cfg.YLow, 1e-9)
	require.InDelta(t, 1.05, cfg.YHigh, 1e-9)
}

func TestSurface_PaintOrderAndWorldTransform(t *testing.T) {
	s := NewSurface(testLogger(), WithXRange(0, 3), WithBackground("white"))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource(1, -2, 3)))
	s.AddAxis(NewBarAxisX())

	p := record.New()
	s.Paint(p, core.NewRect(0, 0, 560, 480))

	// drawer fills happen inside the world transform, border outside
	require.Equal(t, 1, p.Count(record.OpSetTransform))
	require.Equal(t, 1, p.Count(record.OpResetTransform))
	require.False(t, p.InWorldTransform())

	fills := 0
	for _, op := range p.Ops {
		if op.Kind == record.OpFillRect && op.InWorld {
			fills++
		}
	}
	require.Equal(t, 3, fills)

	// background first, border last
	require.Equal(t, record.OpFillRect, p.Ops[0].Kind)
	require.False(t, p.Ops[0].InWorld)
	require.Equal(t, record.OpRect, p.Ops[len(p.Ops)-1].Kind)
}

func TestSurface_PaintIdempotent(t *testing.T) {
	s := NewSurface(testLogger(), WithXRange(0, 5))
	s.AddDrawer(drawer.NewBar(drawer.NewFloatSource(1, 2, 3, 4, 5)))
	s.AddAxis(NewValueAxis(core.Vertical))

	bounds := core.NewRect(0, 0, 560, 480)

	p1 := record.New()
	s.Paint(p1, bounds)
	first := s.Config().Clone()

	p2 := record.New()
	s.Paint(p2, bounds)
	second := s.Config()

	require.Equal(t, first.YLow, second.YLow)
	require.Equal(t, first.YHigh, second.YHigh)
	require.Equal(t, len(p1.Ops), len(p2.Ops))
}

func TestSurface_AddDrawerDuplicateNoOp(t *testing.T) {
	s := NewSurface(testLogger())
	b := drawer.NewBar(drawer.NewFloatSource(1))
	s.AddDrawer(b)
	s.AddDrawer(b)

	a := NewBarAxisX()
	s.AddAxis(a)
	s.AddAxis(a)

	require.Len(t, s.AxesX(), 1)
	require.Empty(t, s.AxesY())
}

func TestSurface_ScrollX(t *testing.T) {
	invalidations := 0
	s := NewSurface(testLogger(), WithXRange(0, 10))
	s.SetOnInvalidate(func() { invalidations++ })

	s.ScrollX(5)
	begin, end := s.GetXRange()
	require.Equal(t, 5, begin)
	require.Equal(t, 15, end)
	require.Equal(t, 1, invalidations)

	s.SetXRange(2, 8)
	begin, end = s.GetXRange()
	require.Equal(t, 2, begin)
	require.Equal(t, 8, end)
	require.Equal(t, 2, invalidations)
}
