// File: ring/slotring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlotRing pairs a caller-visible slot array with the lock-free access
// manager. All index arithmetic and full/empty detection live in the
// manager; this type only moves payloads in and out of the slots it owns.

package ring

import (
	"github.com/momentics/hioload-rb/api"
	"github.com/momentics/hioload-rb/internal/access"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*SlotRing[any])(nil)

// SlotRing is a fixed-capacity single-producer/single-consumer ring.
// Capacity may be any value >= 1; no power-of-two restriction.
type SlotRing[T any] struct {
	slots []T
	mgr   *access.Manager
}

// NewSlotRing allocates a ring of dim slots.
func NewSlotRing[T any](dim uint64) (*SlotRing[T], error) {
	mgr, err := access.New(dim)
	if err != nil {
		return nil, err
	}
	return &SlotRing[T]{
		slots: make([]T, dim),
		mgr:   mgr,
	}, nil
}

// Enqueue adds an item; returns false if full. Producer-only.
// The slot is filled before the commit, so a consumer never observes a
// partially published item.
func (r *SlotRing[T]) Enqueue(item T) bool {
	idx, ok := r.mgr.Reserve()
	if !ok {
		return false
	}
	r.slots[idx] = item
	if _, err := r.mgr.Write(); err != nil {
		// Unreachable with a single producer: Reserve just saw space.
		return false
	}
	return true
}

// Dequeue removes and returns the oldest item; ok false if empty.
// Consumer-only.
func (r *SlotRing[T]) Dequeue() (T, bool) {
	var zero T
	idx, ok := r.mgr.Peek()
	if !ok {
		return zero, false
	}
	item := r.slots[idx]
	// Clear before releasing the slot so the reference is dropped while
	// the consumer still owns it.
	r.slots[idx] = zero
	if _, err := r.mgr.Read(); err != nil {
		return zero, false
	}
	return item, true
}

// DiscardAll drops every pending item in one step and returns how many
// were discarded. Consumer-only.
func (r *SlotRing[T]) DiscardAll() uint64 {
	return r.mgr.Drain()
}

// Len returns number of items currently in buffer. Advisory under
// concurrency.
func (r *SlotRing[T]) Len() int {
	return int(r.mgr.Used())
}

// Cap returns fixed buffer capacity.
func (r *SlotRing[T]) Cap() int {
	return int(r.mgr.Dim())
}

// Access exposes the index manager for diagnostics and probes.
func (r *SlotRing[T]) Access() api.RingAccess {
	return r.mgr
}
