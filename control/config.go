// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and hot-reload propagation.

package control

import (
	"sync"
	"time"
)

// Well-known configuration keys for ring construction and tuning.
const (
	KeyRingCapacity  = "ring.capacity"  // uint64 slot count
	KeySpillEnabled  = "ring.spill"     // bool, producer-side overflow queue
	KeyProducerCPU   = "affinity.prod"  // int, CPU to pin the producer to (-1 disables)
	KeyConsumerCPU   = "affinity.cons"  // int, CPU to pin the consumer to (-1 disables)
	KeyLogLevel      = "log.level"      // string: debug, info, warn, error
	KeyMetricsPeriod = "metrics.period" // time.Duration between collections
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a config store seeded with defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: map[string]any{
			KeyRingCapacity:  uint64(1024),
			KeySpillEnabled:  false,
			KeyProducerCPU:   -1,
			KeyConsumerCPU:   -1,
			KeyLogLevel:      "info",
			KeyMetricsPeriod: time.Second,
		},
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// RingCapacity returns the configured slot count, falling back to the
// default when the stored value has the wrong type.
func (cs *ConfigStore) RingCapacity() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := cs.config[KeyRingCapacity].(uint64); ok && v > 0 {
		return v
	}
	return 1024
}

// SpillEnabled reports whether producers should wrap rings with a spill queue.
func (cs *ConfigStore) SpillEnabled() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, _ := cs.config[KeySpillEnabled].(bool)
	return v
}

// MetricsPeriod returns the interval between periodic metric
// collections, falling back to the default on a missing or invalid
// stored value.
func (cs *ConfigStore) MetricsPeriod() time.Duration {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := cs.config[KeyMetricsPeriod].(time.Duration); ok && v > 0 {
		return v
	}
	return time.Second
}

// SetConfig merges new values and dispatches reload listeners.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		go fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
