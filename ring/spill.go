// File: ring/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpillRing absorbs producer bursts that exceed the ring capacity by
// parking the overflow in an unbounded FIFO owned by the producer.
// The spill queue is intentionally not thread-safe: only the producer
// goroutine touches it, which is exactly the contract eapache/queue
// is built for. An atomic mirror of its length keeps Len and Spilled
// readable from any goroutine without touching the queue itself.

package ring

import (
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-rb/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*SpillRing[any])(nil)

// SpillRing wraps a SlotRing with a producer-side overflow queue.
// Enqueue never rejects an item; FIFO order is preserved because new
// items go behind any parked overflow.
type SpillRing[T any] struct {
	ring    *SlotRing[T]
	spill   *queue.Queue // producer-owned
	spilled atomic.Int64 // mirrors spill.Length() for cross-goroutine reads
}

// NewSpillRing allocates a spill ring over dim hot slots.
func NewSpillRing[T any](dim uint64) (*SpillRing[T], error) {
	r, err := NewSlotRing[T](dim)
	if err != nil {
		return nil, err
	}
	return &SpillRing[T]{
		ring:  r,
		spill: queue.New(),
	}, nil
}

// Enqueue adds an item, spilling when the hot ring is full. Always
// returns true. Producer-only.
func (s *SpillRing[T]) Enqueue(item T) bool {
	s.flush()
	if s.spill.Length() == 0 && s.ring.Enqueue(item) {
		return true
	}
	s.spill.Add(item)
	s.spilled.Add(1)
	return true
}

// Flush moves parked overflow into the hot ring as far as capacity
// allows. Called implicitly by Enqueue; exposed so a producer can push
// the backlog forward without producing new items. Producer-only.
func (s *SpillRing[T]) Flush() int {
	return s.flush()
}

func (s *SpillRing[T]) flush() int {
	moved := 0
	for s.spill.Length() > 0 {
		head := s.spill.Peek().(T)
		if !s.ring.Enqueue(head) {
			break
		}
		s.spill.Remove()
		s.spilled.Add(-1)
		moved++
	}
	return moved
}

// Dequeue removes and returns the oldest item; ok false if empty.
// Consumer-only. Parked overflow is not visible here until the producer
// flushes it into the hot ring.
func (s *SpillRing[T]) Dequeue() (T, bool) {
	return s.ring.Dequeue()
}

// Len returns hot items plus parked overflow. Advisory under
// concurrency, but safe to call from any goroutine: the parked count
// comes from the atomic mirror, never the queue.
func (s *SpillRing[T]) Len() int {
	return s.ring.Len() + int(s.spilled.Load())
}

// Cap returns the hot ring capacity. Overflow is unbounded.
func (s *SpillRing[T]) Cap() int {
	return s.ring.Cap()
}

// Spilled returns how many items are currently parked. Advisory under
// concurrency; safe from any goroutine.
func (s *SpillRing[T]) Spilled() int {
	return int(s.spilled.Load())
}

// Access exposes the hot ring's index manager for diagnostics.
func (s *SpillRing[T]) Access() api.RingAccess {
	return s.ring.Access()
}
