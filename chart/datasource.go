package chart

import "github.com/raykavin/kchart/core"

// Tick is a single tick position with its label anchoring
type Tick struct {
	Value float64
	Align core.Alignment
}

// TickData is the generated tick source backing a value axis. It implements
// core.TickSource so a crosshair can hijack it and inject a single entry at
// the live cursor position.
type TickData struct {
	ticks []Tick
}

// Clear implements core.TickSource.
func (d *TickData) Clear() {
	d.ticks = d.ticks[:0]
}

// AppendByIndex implements core.TickSource.
func (d *TickData) AppendByIndex(value float64, align core.Alignment) {
	d.ticks = append(d.ticks, Tick{Value: value, Align: align})
}

// Ticks returns the current tick entries
func (d *TickData) Ticks() []Tick {
	return d.ticks
}

// Generate fills the source with count evenly spaced ticks across
// [begin, end). When skipFirst is set the lowest tick is dropped; a vertical
// axis uses this because the bottom tick sits on the plot edge and can never
// be fully printed.
func (d *TickData) Generate(begin, end float64, count int, skipFirst bool) {
	d.Clear()
	if count <= 0 || end <= begin {
		return
	}

	step := (end - begin) / float64(count)
	start := begin
	if skipFirst {
		start += step
	}
	for v := start; v < end; v += step {
		d.AppendByIndex(v, core.AlignStart)
	}
}
