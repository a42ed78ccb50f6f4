package event

import (
	"sync/atomic"
)

const (
	// QueueSize is the ring capacity, a power of two so positions wrap by mask
	QueueSize = 1024
	ringMask  = QueueSize - 1
)

// slot holds one event; seq is the claiming position plus one once the event is written
type slot struct {
	seq atomic.Uint64
	ev  GameEvent
}

// Queue carries notifications from systems to the screen goroutine
// Any goroutine may Push, a single goroutine Consumes
// Producers that lap the consumer overwrite the oldest undelivered events
type Queue struct {
	ring [QueueSize]slot
	next atomic.Uint64
	read atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push never blocks
func (q *Queue) Push(ev GameEvent) {
	pos := q.next.Add(1) - 1
	s := &q.ring[pos&ringMask]
	s.seq.Store(0)
	s.ev = ev
	s.seq.Store(pos + 1)
}

// Consume drains the written prefix of pending events, oldest first
// Stops at a slot still being written; the rest is returned by a later call
func (q *Queue) Consume() []GameEvent {
	end := q.next.Load()
	start := q.read.Load()
	if end-start > QueueSize {
		start = end - QueueSize
	}
	if start == end {
		return nil
	}

	out := make([]GameEvent, 0, end-start)
	for pos := start; pos < end; pos++ {
		s := &q.ring[pos&ringMask]
		if s.seq.Load() != pos+1 {
			break
		}
		out = append(out, s.ev)
	}
	q.read.Store(start + uint64(len(out)))

	if len(out) == 0 {
		return nil
	}
	return out
}

// Len is the pending count, capped at QueueSize
func (q *Queue) Len() int {
	read := q.read.Load()
	n := q.next.Load() - read
	if n > QueueSize {
		return QueueSize
	}
	return int(n)
}
