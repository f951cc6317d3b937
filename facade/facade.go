// File: facade/facade.go
// Unified facade layer for hioload-rb library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Toolkit struct, which aggregates the core
// components of the hioload-rb library behind a single facade: the
// configuration store, metrics registry, debug probes, and structured
// logger. Rings are constructed through the facade so that every ring
// is registered for telemetry and state dumps without extra wiring at
// the call sites.

package facade

import (
	"log/slog"
	"os"
	"sync"

	"github.com/momentics/hioload-rb/api"
	"github.com/momentics/hioload-rb/control"
	"github.com/momentics/hioload-rb/logging"
	"github.com/momentics/hioload-rb/ring"
)

// Config holds parameters immutable per run. Runtime tuning goes
// through the control.ConfigStore the facade exposes.
type Config struct {
	RingCapacity  uint64 // Slot count for rings built through the facade
	SpillEnabled  bool   // Wrap rings with a producer-side overflow queue
	ProducerCPU   int    // CPU to pin producers to, -1 disables
	ConsumerCPU   int    // CPU to pin consumers to, -1 disables
	EnableMetrics bool   // Register rings with the metrics registry
	EnableDebug   bool   // Register rings with the debug probe registry
	LogLevel      string // debug, info, warn, error
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		RingCapacity:  1024,
		SpillEnabled:  false,
		ProducerCPU:   -1,
		ConsumerCPU:   -1,
		EnableMetrics: true,
		EnableDebug:   true,
		LogLevel:      "info",
	}
}

// Toolkit is the main facade type.
type Toolkit struct {
	config  *Config
	store   *control.ConfigStore
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	log     *slog.Logger

	mu          sync.Mutex
	rings       map[string]api.RingAccess
	stopMetrics func()
}

// New constructs a Toolkit with the given configuration. The control
// store is seeded from cfg so hot-reload consumers observe the same
// initial values as the facade itself.
func New(cfg *Config) (*Toolkit, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.RingCapacity == 0 {
		return nil, api.ErrInvalidCapacity
	}

	tk := &Toolkit{
		config:  cfg,
		store:   control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		probes:  control.NewDebugProbes(),
		log:     logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel)),
		rings:   make(map[string]api.RingAccess),
	}

	tk.store.SetConfig(map[string]any{
		control.KeyRingCapacity: cfg.RingCapacity,
		control.KeySpillEnabled: cfg.SpillEnabled,
		control.KeyProducerCPU:  cfg.ProducerCPU,
		control.KeyConsumerCPU:  cfg.ConsumerCPU,
		control.KeyLogLevel:     cfg.LogLevel,
	})
	if cfg.EnableDebug {
		control.RegisterPlatformProbes(tk.probes)
	}
	return tk, nil
}

// Start launches background facade services. With metrics enabled this
// begins periodic collection of every registered ring at the interval
// held by the config store. Calling Start twice is a no-op.
func (tk *Toolkit) Start() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.stopMetrics != nil {
		return
	}
	if tk.config.EnableMetrics {
		period := tk.store.MetricsPeriod()
		tk.stopMetrics = tk.metrics.CollectEvery(period)
		tk.log.Debug("metrics collector started", "period", period)
	}
}

// Stop halts background services started by Start. Safe to call
// multiple times and without a prior Start.
func (tk *Toolkit) Stop() {
	tk.mu.Lock()
	stop := tk.stopMetrics
	tk.stopMetrics = nil
	tk.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// register wires a ring's access manager into metrics and debug state.
func (tk *Toolkit) register(name string, ra api.RingAccess) {
	tk.mu.Lock()
	tk.rings[name] = ra
	tk.mu.Unlock()

	if tk.config.EnableMetrics {
		tk.metrics.RegisterRing(name, ra)
	}
	if tk.config.EnableDebug {
		tk.probes.RegisterRingProbe("ring."+name, ra)
	}
	tk.log.Debug("ring registered", "name", name, "dim", ra.Dim())
}

// Config returns the immutable construction config.
func (tk *Toolkit) Config() *Config { return tk.config }

// Store returns the dynamic configuration store.
func (tk *Toolkit) Store() *control.ConfigStore { return tk.store }

// Metrics returns the metrics registry.
func (tk *Toolkit) Metrics() *control.MetricsRegistry { return tk.metrics }

// Probes returns the debug probe registry.
func (tk *Toolkit) Probes() *control.DebugProbes { return tk.probes }

// Ring looks up a registered ring's access manager by name.
func (tk *Toolkit) Ring(name string) (api.RingAccess, bool) {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	ra, ok := tk.rings[name]
	return ra, ok
}

// NewRing builds a named SPSC ring through the toolkit, honoring the
// spill setting, and registers it for telemetry. Methods cannot carry
// type parameters, so this is a package function over the toolkit.
func NewRing[T any](tk *Toolkit, name string) (api.Ring[T], error) {
	dim := tk.config.RingCapacity
	if tk.config.SpillEnabled {
		s, err := ring.NewSpillRing[T](dim)
		if err != nil {
			return nil, err
		}
		tk.register(name, s.Access())
		return s, nil
	}
	r, err := ring.NewSlotRing[T](dim)
	if err != nil {
		return nil, err
	}
	tk.register(name, r.Access())
	return r, nil
}
