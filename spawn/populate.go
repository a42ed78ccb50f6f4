package spawn

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/config"
	"github.com/lixenwraith/vi-colony/constant"
	"github.com/lixenwraith/vi-colony/core"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/terrain"
)

// ErrNoRoom is returned when the map has fewer free walkable cells than requested workers
var ErrNoRoom = errors.New("not enough free cells")

var (
	workerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	oreStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
)

// Result lists what Populate created
type Result struct {
	Workers []core.Entity
	Ore     []core.Entity
}

// Populate places one gold ore entity on every gold tile, then the configured number of idle workers
// on random free floor cells, named by cycling through constant.WorkerNames
func Populate(w *engine.World, m *terrain.Map, cfg config.WorkersConfig) (Result, error) {
	var res Result
	occupied := make(map[[2]int]bool)

	for _, cell := range m.Cells(terrain.KindGold) {
		e := placed(w, cell, component.GlyphComponent{Rune: constant.OreRune, Style: oreStyle})
		engine.With(e, w.Components.Ore, component.OreComponent{Kind: component.OreGold, Amount: 1})
		res.Ore = append(res.Ore, e.Build())
		occupied[cell] = true
	}

	free := make([][2]int, 0, m.Rows()*m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			cell := [2]int{r, c}
			if m.Walkable(r, c) && !occupied[cell] {
				free = append(free, cell)
			}
		}
	}
	if len(free) < cfg.Count {
		return res, fmt.Errorf("spawn %d workers: %w (%d available)", cfg.Count, ErrNoRoom, len(free))
	}

	rng := w.Resource.Rand
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	for i := 0; i < cfg.Count; i++ {
		cell := free[i]
		name := constant.WorkerNames[i%len(constant.WorkerNames)]

		eb := placed(w, cell, component.GlyphComponent{Rune: constant.WorkerRune, Style: workerStyle})
		engine.With(eb, w.Components.Selectable, component.SelectableComponent{})
		engine.With(eb, w.Components.Worker, component.WorkerComponent{Task: component.IdleTask()})
		engine.With(eb, w.Components.Actor, component.NewActor(cfg.Speed))
		engine.With(eb, w.Components.Name, component.NameComponent{Name: name})
		e := eb.Build()
		res.Workers = append(res.Workers, e)

		w.Resource.Log.Debug("worker spawned",
			zap.Stringer("entity", e),
			zap.String("name", name),
			zap.Int("row", cell[0]),
			zap.Int("col", cell[1]),
		)
	}
	return res, nil
}

// placed starts an entity with the position and glyph every map entity carries
func placed(w *engine.World, cell [2]int, glyph component.GlyphComponent) *engine.EntityBuilder {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Row: cell[0], Col: cell[1]})
	return engine.With(eb, w.Components.Glyph, glyph)
}
