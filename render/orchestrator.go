package render

import (
	"github.com/gdamore/tcell/v2"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the layer pipeline onto one screen
type Orchestrator struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		layers: make([]layerEntry, 0, 4),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame clears, renders all visible layers, then shows
func (o *Orchestrator) RenderFrame(frame *Frame) {
	o.screen.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(frame, o.screen)
	}

	o.screen.Show()
}

// Resize resyncs the screen after a terminal size change
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}

// NewMapView wires the standard layer stack: terrain, grid overlay, entities, status line
// The grid overlay is returned so input can toggle it
func NewMapView(screen tcell.Screen, tiles Tiles) (*Orchestrator, *GridLayer) {
	o := NewOrchestrator(screen)
	grid := NewGridLayer()

	o.Register(NewTerrainLayer(tiles), PriorityTerrain)
	o.Register(grid, PriorityGrid)
	o.Register(NewEntityLayer(), PriorityEntities)
	o.Register(NewStatusLayer(), PriorityUI)
	return o, grid
}
