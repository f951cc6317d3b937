// File: api/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for lock-free ring buffer access management.
//
// A RingAccess implementation tracks read/write positions for a
// fixed-capacity circular buffer shared between exactly one producer
// and one consumer. It never touches the payload slots themselves:
// callers own the backing array and use the returned indices to read
// or write slot data.

package api

// RingAccess manages slot indices for a single-producer/single-consumer
// circular buffer of Dim() slots.
//
// Producer side: Full, Reserve, Write. Consumer side: Empty, Peek, Read,
// Drain. Calling producer operations from more than one goroutine, or
// consumer operations from more than one goroutine, is undefined behavior.
type RingAccess interface {
	// Dim returns the fixed slot count, set at construction.
	Dim() uint64

	// Next returns (i + 1) mod Dim(). Pure, no state mutation.
	Next(i uint64) uint64

	// Prev returns (i - 1 + Dim()) mod Dim(). Pure, no state mutation.
	Prev(i uint64) uint64

	// Full reports whether no free slot remains for the producer.
	Full() bool

	// Reserve returns the candidate write index without committing it,
	// and false when the buffer is full. Producer-only. The usual fill
	// discipline is Reserve, copy payload into the slot, then Write.
	Reserve() (uint64, bool)

	// Write commits the candidate slot and returns its index, or
	// ErrBufferFull. Never overwrites unread data. Producer-only.
	Write() (uint64, error)

	// Empty reports whether no committed-but-unread slot exists.
	Empty() bool

	// Peek returns the next index to consume without releasing it,
	// and false when the buffer is empty. Consumer-only.
	Peek() (uint64, bool)

	// Read returns the next index to consume and advances the read
	// position, or ErrBufferEmpty. Consumer-only.
	Read() (uint64, error)

	// Drain advances the read position to the current write frontier,
	// discarding all pending unread slots, and returns how many were
	// discarded. Consumer-only.
	Drain() uint64

	// Used returns the advisory count of unread slots. May be stale
	// when producer and consumer run concurrently.
	Used() uint64

	// Free returns the advisory count of writable slots. Same staleness
	// caveat as Used.
	Free() uint64

	// Snapshot returns a diagnostic view of the current state.
	Snapshot() AccessState
}

// AccessState is a diagnostic snapshot of ring access state.
//
// Rd, Wr and NextIdx are wrapped slot indices in [0, Dim). Used and Free
// are advisory and may be mutually inconsistent when taken while both
// sides are running; they must never gate correctness decisions.
type AccessState struct {
	Dim     uint64 // Total slot count
	Rd      uint64 // Index of the next slot to consume
	Wr      uint64 // Index of the most recently committed slot
	NextIdx uint64 // Candidate write index
	Used    uint64 // Advisory unread slot count
	Free    uint64 // Advisory writable slot count
	Written bool   // False until the first Write commits (Wr is then meaningless)
}
