package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-colony/core"
)

// EntityLookup resolves an entity drawn at a map cell
type EntityLookup func(row, col int) (core.Entity, bool)

// Translator turns raw terminal events into mailbox posts
// Left drag box-selects, right click activates the entity under the pointer or moves to the cell
type Translator struct {
	mailbox *Mailbox
	lookup  EntityLookup
	rows    int
	cols    int

	dragging  bool
	anchorRow int
	anchorCol int
	lastBtn   tcell.ButtonMask
}

// NewTranslator creates a translator for a rows x cols map drawn at the screen origin
func NewTranslator(mailbox *Mailbox, rows, cols int, lookup EntityLookup) *Translator {
	return &Translator{
		mailbox: mailbox,
		lookup:  lookup,
		rows:    rows,
		cols:    cols,
	}
}

// Translate consumes one terminal event; returns true when the user asked to quit
func (t *Translator) Translate(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(e)
	case *tcell.EventMouse:
		t.handleMouse(e)
	}
	return false
}

func (t *Translator) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return e.Rune() == 'q'
	}
	return false
}

func (t *Translator) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	row, col := t.clamp(y, x)
	buttons := e.Buttons()
	prev := t.lastBtn
	t.lastBtn = buttons

	switch {
	case buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		t.dragging = true
		t.anchorRow, t.anchorCol = row, col

	case buttons&tcell.Button1 == 0 && t.dragging:
		t.dragging = false
		r0, r1 := minMax(t.anchorRow, row)
		c0, c1 := minMax(t.anchorCol, col)
		t.mailbox.Post(BoxSelect(r0, c0, r1-r0, c1-c0))

	case buttons&tcell.Button2 != 0 && prev&tcell.Button2 == 0:
		if t.lookup != nil {
			if target, ok := t.lookup(row, col); ok {
				t.mailbox.Post(Activate(target))
				return
			}
		}
		t.mailbox.Post(MoveTo(row, col))
	}
}

// clamp pins screen coordinates onto the map so every posted coordinate is non-negative and in range
func (t *Translator) clamp(row, col int) (int, int) {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	if t.rows > 0 && row >= t.rows {
		row = t.rows - 1
	}
	if t.cols > 0 && col >= t.cols {
		col = t.cols - 1
	}
	return row, col
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
