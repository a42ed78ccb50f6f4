package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-colony/core"
)

func TestTranslatorDragBoxSelect(t *testing.T) {
	m := NewMailbox()
	tr := NewTranslator(m, 20, 40, nil)

	tr.Translate(tcell.NewEventMouse(10, 8, tcell.Button1, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(12, 9, tcell.Button1, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))

	ev, _ := m.Peek()
	// x is column, y is row; rectangle normalized to its top-left corner
	assert.Equal(t, BoxSelect(5, 6, 3, 4), ev)
}

func TestTranslatorRightClick(t *testing.T) {
	ore := core.NewEntity(2, 1)
	lookup := func(row, col int) (core.Entity, bool) {
		if row == 3 && col == 4 {
			return ore, true
		}
		return 0, false
	}
	m := NewMailbox()
	tr := NewTranslator(m, 20, 40, lookup)

	tr.Translate(tcell.NewEventMouse(4, 3, tcell.Button2, tcell.ModNone))
	ev, _ := m.Peek()
	assert.Equal(t, Activate(ore), ev)

	tr.Translate(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(100, 50, tcell.Button2, tcell.ModNone))
	ev, _ = m.Peek()
	assert.Equal(t, MoveTo(19, 39), ev)
}

func TestTranslatorQuit(t *testing.T) {
	tr := NewTranslator(NewMailbox(), 10, 10, nil)
	assert.True(t, tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, tr.Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.False(t, tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
