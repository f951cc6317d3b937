// Package ring benchmarks for the slot ring hot path.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring_test

import (
	"testing"

	"github.com/momentics/hioload-rb/ring"
)

func BenchmarkSlotRing_EnqueueDequeue(b *testing.B) {
	r, err := ring.NewSlotRing[uint64](1024)
	if err != nil {
		b.Fatalf("NewSlotRing failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Enqueue(uint64(i))
		r.Dequeue()
	}
}

func BenchmarkSlotRing_Transfer(b *testing.B) {
	r, err := ring.NewSlotRing[uint64](1024)
	if err != nil {
		b.Fatalf("NewSlotRing failed: %v", err)
	}
	b.ResetTimer()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 0; n < b.N; {
			if _, ok := r.Dequeue(); ok {
				n++
			}
		}
	}()
	for i := 0; i < b.N; {
		if r.Enqueue(uint64(i)) {
			i++
		}
	}
	<-done
}

func BenchmarkSpillRing_Enqueue(b *testing.B) {
	s, err := ring.NewSpillRing[uint64](1024)
	if err != nil {
		b.Fatalf("NewSpillRing failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Enqueue(uint64(i))
		s.Dequeue()
	}
}
