package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-colony/core"
)

func TestMailboxLastWriteWins(t *testing.T) {
	m := NewMailbox()
	ev, _ := m.Peek()
	assert.Equal(t, EventEmpty, ev.Kind)

	m.Post(MoveTo(1, 2))
	m.Post(BoxSelect(0, 0, 3, 3))
	ev, _ = m.Peek()
	assert.Equal(t, BoxSelect(0, 0, 3, 3), ev)
}

func TestMailboxClearKeepsNewerPost(t *testing.T) {
	m := NewMailbox()
	m.Post(MoveTo(1, 2))
	_, seq := m.Peek()

	m.Post(Activate(core.NewEntity(3, 1)))
	assert.False(t, m.Clear(seq))
	ev, seq := m.Peek()
	assert.Equal(t, EventActivate, ev.Kind)

	assert.True(t, m.Clear(seq))
	ev, _ = m.Peek()
	assert.Equal(t, Empty(), ev)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "box_select(5,5,2,2)", BoxSelect(5, 5, 2, 2).String())
	assert.Equal(t, "move_to(3,4)", MoveTo(3, 4).String())
	assert.Equal(t, "empty", Empty().String())
}
