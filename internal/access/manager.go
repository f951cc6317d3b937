// File: internal/access/manager.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Manager is the ring buffer access manager: atomic monotonic rd/wr
// counters padded to separate cache lines, wrapped indices derived by
// modulo. Safe for exactly one producer goroutine and one consumer
// goroutine; a second concurrent writer or reader is undefined behavior.

package access

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-rb/api"
)

// Ensure compile-time interface compliance.
var _ api.RingAccess = (*Manager)(nil)

// Manager tracks slot indices for a fixed-capacity circular buffer.
//
// wr counts committed writes and is stored only by the producer; rd
// counts consumed reads and is stored only by the consumer. Both are
// monotonic: the slot index behind a counter value c is c % dim. The
// counters sit on separate cache lines to avoid false sharing between
// the two sides.
type Manager struct {
	wr  atomic.Uint64 // committed writes, producer-owned
	_   cpu.CacheLinePad
	rd  atomic.Uint64 // consumed reads, consumer-owned
	_   cpu.CacheLinePad
	dim uint64 // slot count, immutable after New
}

// New returns a Manager for a buffer of dim slots. A zero-capacity ring
// is meaningless (empty and full could not be told apart), so dim == 0
// yields api.ErrInvalidCapacity.
func New(dim uint64) (*Manager, error) {
	if dim == 0 {
		return nil, api.WrapError(api.ErrCodeInvalidCapacity, api.ErrInvalidCapacity).
			WithContext("dim", dim)
	}
	return &Manager{dim: dim}, nil
}

// Dim returns the fixed slot count.
func (m *Manager) Dim() uint64 {
	return m.dim
}

// Next returns (i + 1) mod dim. Pure; valid for i in [0, dim).
func (m *Manager) Next(i uint64) uint64 {
	return (i + 1) % m.dim
}

// Prev returns (i - 1 + dim) mod dim. Pure; valid for i in [0, dim).
func (m *Manager) Prev(i uint64) uint64 {
	return (i + m.dim - 1) % m.dim
}

// Full reports whether the producer has no free slot to advance into.
// Non-blocking poll; the producer may call this before deciding to Write.
func (m *Manager) Full() bool {
	w := m.wr.Load()
	r := m.rd.Load()
	return w-r >= m.dim
}

// Reserve returns the candidate write index without committing it, and
// false when the buffer is full. Producer-only. Because only the
// producer advances wr, the returned index stays valid until the
// producer's own Write call, which lets callers fill the slot before
// the commit becomes visible to the consumer.
func (m *Manager) Reserve() (uint64, bool) {
	w := m.wr.Load()
	r := m.rd.Load()
	if w-r >= m.dim {
		return 0, false
	}
	return w % m.dim, true
}

// Write commits the candidate slot, advances the write frontier, and
// returns the committed index. Returns api.ErrBufferFull when every
// slot holds unread data; unread data is never overwritten.
// Producer-only.
func (m *Manager) Write() (uint64, error) {
	w := m.wr.Load()
	r := m.rd.Load()
	if w-r >= m.dim {
		return 0, api.ErrBufferFull
	}
	idx := w % m.dim
	// Release point: everything the producer stored into the slot
	// before this line is visible to a consumer that observes w+1.
	m.wr.Store(w + 1)
	return idx, nil
}

// Empty reports whether no committed-but-unread slot exists.
// Non-blocking poll for the consumer.
func (m *Manager) Empty() bool {
	r := m.rd.Load()
	w := m.wr.Load()
	return w == r
}

// Peek returns the next index to consume without releasing the slot,
// and false when the buffer is empty. Consumer-only. The slot is not
// handed back to the producer until the consumer's own Read call, so
// callers may copy the payload out first.
func (m *Manager) Peek() (uint64, bool) {
	r := m.rd.Load()
	w := m.wr.Load()
	if w == r {
		return 0, false
	}
	return r % m.dim, true
}

// Read returns the next index to consume and advances the read
// position, releasing the slot to the producer. Returns
// api.ErrBufferEmpty when nothing is pending. Consumer-only.
func (m *Manager) Read() (uint64, error) {
	r := m.rd.Load()
	w := m.wr.Load()
	if w == r {
		return 0, api.ErrBufferEmpty
	}
	idx := r % m.dim
	m.rd.Store(r + 1)
	return idx, nil
}

// Drain advances the read position to the current write frontier in one
// step, discarding all pending unread slots, and returns how many were
// discarded. Consumer-only.
func (m *Manager) Drain() uint64 {
	r := m.rd.Load()
	w := m.wr.Load()
	if w == r {
		return 0
	}
	m.rd.Store(w)
	return w - r
}

// Used returns the advisory count of unread slots.
//
// rd is loaded before wr: a loaded rd value can never exceed the wr
// value loaded after it, so the difference never underflows. It may
// still overestimate (up to dim plus slots freed meanwhile) when both
// sides are running; callers must treat it as diagnostic only.
func (m *Manager) Used() uint64 {
	r := m.rd.Load()
	w := m.wr.Load()
	return w - r
}

// Free returns the advisory count of writable slots, clamped at zero.
// Same staleness caveat as Used.
func (m *Manager) Free() uint64 {
	u := m.Used()
	if u >= m.dim {
		return 0
	}
	return m.dim - u
}

// Snapshot returns a diagnostic view of the current state. Field values
// come from one rd load and one wr load, so the snapshot is consistent
// only when no side is running concurrently.
func (m *Manager) Snapshot() api.AccessState {
	r := m.rd.Load()
	w := m.wr.Load()
	used := w - r
	free := uint64(0)
	if used < m.dim {
		free = m.dim - used
	}
	st := api.AccessState{
		Dim:     m.dim,
		Rd:      r % m.dim,
		NextIdx: w % m.dim,
		Used:    used,
		Free:    free,
		Written: w > 0,
	}
	if w > 0 {
		st.Wr = (w - 1) % m.dim
	}
	return st
}
