package input

import "sync"

// Mailbox is a single-slot, last-write-wins event holder
// Written by the input goroutine, consumed and cleared by systems inside a tick
type Mailbox struct {
	mu  sync.Mutex
	ev  Event
	seq uint64
}

// NewMailbox returns an empty mailbox
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Post replaces whatever the slot holds
func (m *Mailbox) Post(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ev = ev
	m.seq++
}

// Peek returns the current event and its sequence number for a later Clear
func (m *Mailbox) Peek() (Event, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ev, m.seq
}

// Clear resets the slot to Empty only if nothing was posted since Peek returned seq
// Returns false when a newer event is waiting
func (m *Mailbox) Clear(seq uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq != seq {
		return false
	}
	m.ev = Empty()
	return true
}
