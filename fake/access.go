// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-rb/api"
)

// Ensure compile-time interface compliance.
var _ api.RingAccess = (*RingAccess)(nil)

// RingAccess is a mutex-based stand-in for the lock-free access manager.
// Deterministic under any goroutine pattern, so consumers of the
// api.RingAccess contract (probes, facades, spill rings) can be tested
// without SPSC discipline.
type RingAccess struct {
	mu  sync.Mutex
	dim uint64
	rd  uint64
	wr  uint64
}

// NewRingAccess returns a fake manager of dim slots. dim must be >= 1.
func NewRingAccess(dim uint64) *RingAccess {
	if dim == 0 {
		panic("fake: dim must be at least 1")
	}
	return &RingAccess{dim: dim}
}

func (f *RingAccess) Dim() uint64 { return f.dim }

func (f *RingAccess) Next(i uint64) uint64 { return (i + 1) % f.dim }

func (f *RingAccess) Prev(i uint64) uint64 { return (i + f.dim - 1) % f.dim }

func (f *RingAccess) Full() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wr-f.rd >= f.dim
}

func (f *RingAccess) Reserve() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.wr-f.rd >= f.dim {
		return 0, false
	}
	return f.wr % f.dim, true
}

func (f *RingAccess) Write() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.wr-f.rd >= f.dim {
		return 0, api.ErrBufferFull
	}
	idx := f.wr % f.dim
	f.wr++
	return idx, nil
}

func (f *RingAccess) Empty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wr == f.rd
}

func (f *RingAccess) Peek() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.wr == f.rd {
		return 0, false
	}
	return f.rd % f.dim, true
}

func (f *RingAccess) Read() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.wr == f.rd {
		return 0, api.ErrBufferEmpty
	}
	idx := f.rd % f.dim
	f.rd++
	return idx, nil
}

func (f *RingAccess) Drain() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.wr - f.rd
	f.rd = f.wr
	return n
}

func (f *RingAccess) Used() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wr - f.rd
}

func (f *RingAccess) Free() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dim - (f.wr - f.rd)
}

func (f *RingAccess) Snapshot() api.AccessState {
	f.mu.Lock()
	defer f.mu.Unlock()
	used := f.wr - f.rd
	st := api.AccessState{
		Dim:     f.dim,
		Rd:      f.rd % f.dim,
		NextIdx: f.wr % f.dim,
		Used:    used,
		Free:    f.dim - used,
		Written: f.wr > 0,
	}
	if f.wr > 0 {
		st.Wr = (f.wr - 1) % f.dim
	}
	return st
}
