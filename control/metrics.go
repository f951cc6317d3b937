// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for ring telemetry.
// Rings register their access managers; Collect pulls advisory state
// snapshots into a thread-safe map for export. Snapshots may be stale
// or mutually inconsistent while producer and consumer are running;
// that is acceptable here and only here.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-rb/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	rings   map[string]api.RingAccess
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
		rings:   make(map[string]api.RingAccess),
	}
}

// RegisterRing attaches a named ring access manager for collection.
func (mr *MetricsRegistry) RegisterRing(name string, ra api.RingAccess) {
	mr.mu.Lock()
	mr.rings[name] = ra
	mr.mu.Unlock()
}

// UnregisterRing detaches a ring and removes its collected values.
func (mr *MetricsRegistry) UnregisterRing(name string) {
	mr.mu.Lock()
	delete(mr.rings, name)
	delete(mr.metrics, name+".used")
	delete(mr.metrics, name+".free")
	delete(mr.metrics, name+".dim")
	mr.mu.Unlock()
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Collect snapshots every registered ring into the metrics map.
func (mr *MetricsRegistry) Collect() {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	for name, ra := range mr.rings {
		st := ra.Snapshot()
		mr.metrics[name+".used"] = st.Used
		mr.metrics[name+".free"] = st.Free
		mr.metrics[name+".dim"] = st.Dim
	}
	mr.updated = time.Now()
}

// CollectEvery snapshots all registered rings on a fixed period (see
// ConfigStore.MetricsPeriod) until the returned stop function is
// called. Stop is idempotent.
func (mr *MetricsRegistry) CollectEvery(period time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				mr.Collect()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last mutation or collection.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
