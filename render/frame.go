package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-colony/core"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/engine/status"
)

// Sprite is one positioned entity as seen by the renderer
type Sprite struct {
	Entity   core.Entity
	Row      int
	Col      int
	Rune     rune
	Style    tcell.Style
	Selected bool
}

// Frame is an immutable copy of everything drawn for one tick
type Frame struct {
	Tick     uint64
	Rows     int
	Cols     int
	Sprites  []Sprite
	Passable [][]bool
	Counters map[string]int64
}

// Collect snapshots the world under its update lock so a frame never mixes two ticks
func Collect(w *engine.World) *Frame {
	var f *Frame
	w.RunSafe(func() {
		f = collectLocked(w)
	})
	return f
}

func collectLocked(w *engine.World) *Frame {
	res := w.Resource
	positions := w.Components.Position
	glyphs := w.Components.Glyph
	selectables := w.Components.Selectable

	f := &Frame{
		Tick:     res.Time.Tick,
		Rows:     res.Grid.Rows,
		Cols:     res.Grid.Cols,
		Passable: res.Grid.Snapshot(),
		Counters: make(map[string]int64),
	}

	entities := w.Query().
		With(positions).
		With(glyphs).
		Execute()

	f.Sprites = make([]Sprite, 0, len(entities))
	for _, e := range entities {
		pos, _ := positions.Get(e)
		glyph, _ := glyphs.Get(e)
		sel, _ := selectables.Get(e)
		f.Sprites = append(f.Sprites, Sprite{
			Entity:   e,
			Row:      pos.Row,
			Col:      pos.Col,
			Rune:     glyph.Rune,
			Style:    glyph.Style,
			Selected: sel.Selected,
		})
	}

	for _, sample := range res.Status.IntSnapshot() {
		f.Counters[sample.Key] = sample.Value
	}
	if _, ok := f.Counters[status.EngineTicks]; !ok {
		f.Counters[status.EngineTicks] = int64(res.Time.Tick)
	}
	return f
}
