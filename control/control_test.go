// Package control tests config, metrics, probes, and hot reload.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/momentics/hioload-rb/control"
	"github.com/momentics/hioload-rb/fake"
)

func TestConfigStore_Defaults(t *testing.T) {
	cs := control.NewConfigStore()
	if cs.RingCapacity() != 1024 {
		t.Errorf("expected default capacity 1024, got %d", cs.RingCapacity())
	}
	if cs.SpillEnabled() {
		t.Error("spill should default to disabled")
	}
}

func TestConfigStore_SetAndSnapshot(t *testing.T) {
	cs := control.NewConfigStore()
	cs.SetConfig(map[string]any{
		control.KeyRingCapacity: uint64(64),
		control.KeySpillEnabled: true,
	})
	if cs.RingCapacity() != 64 {
		t.Errorf("expected capacity 64, got %d", cs.RingCapacity())
	}
	if !cs.SpillEnabled() {
		t.Error("expected spill enabled")
	}
	snap := cs.GetSnapshot()
	if snap[control.KeyRingCapacity] != uint64(64) {
		t.Errorf("snapshot missing updated capacity: %+v", snap)
	}
}

func TestConfigStore_BadTypeFallsBack(t *testing.T) {
	cs := control.NewConfigStore()
	cs.SetConfig(map[string]any{control.KeyRingCapacity: "not a number"})
	if cs.RingCapacity() != 1024 {
		t.Errorf("expected fallback capacity 1024, got %d", cs.RingCapacity())
	}
}

func TestConfigStore_MetricsPeriod(t *testing.T) {
	cs := control.NewConfigStore()
	if cs.MetricsPeriod() != time.Second {
		t.Errorf("expected default period 1s, got %v", cs.MetricsPeriod())
	}
	cs.SetConfig(map[string]any{control.KeyMetricsPeriod: 250 * time.Millisecond})
	if cs.MetricsPeriod() != 250*time.Millisecond {
		t.Errorf("expected period 250ms, got %v", cs.MetricsPeriod())
	}
	cs.SetConfig(map[string]any{control.KeyMetricsPeriod: "soon"})
	if cs.MetricsPeriod() != time.Second {
		t.Errorf("expected fallback period 1s, got %v", cs.MetricsPeriod())
	}
}

func TestConfigStore_ReloadListener(t *testing.T) {
	cs := control.NewConfigStore()
	fired := make(chan struct{}, 1)
	cs.OnReload(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	cs.SetConfig(map[string]any{control.KeySpillEnabled: true})
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reload listener never fired")
	}
}

func TestMetricsRegistry_CollectRing(t *testing.T) {
	mr := control.NewMetricsRegistry()
	ra := fake.NewRingAccess(8)
	mr.RegisterRing("ingress", ra)

	for i := 0; i < 3; i++ {
		if _, err := ra.Write(); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	mr.Collect()

	snap := mr.GetSnapshot()
	if snap["ingress.used"] != uint64(3) {
		t.Errorf("expected ingress.used 3, got %v", snap["ingress.used"])
	}
	if snap["ingress.free"] != uint64(5) {
		t.Errorf("expected ingress.free 5, got %v", snap["ingress.free"])
	}
	if snap["ingress.dim"] != uint64(8) {
		t.Errorf("expected ingress.dim 8, got %v", snap["ingress.dim"])
	}

	mr.UnregisterRing("ingress")
	mr.Collect()
	if _, ok := mr.GetSnapshot()["ingress.used"]; ok {
		t.Error("unregistered ring still exported")
	}
}

func TestMetricsRegistry_CollectEvery(t *testing.T) {
	mr := control.NewMetricsRegistry()
	ra := fake.NewRingAccess(8)
	mr.RegisterRing("ingress", ra)
	if _, err := ra.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	stop := mr.CollectEvery(5 * time.Millisecond)
	deadline := time.After(2 * time.Second)
	for {
		if mr.GetSnapshot()["ingress.used"] == uint64(1) {
			break
		}
		select {
		case <-deadline:
			t.Fatal("collector never exported ring metrics")
		case <-time.After(time.Millisecond):
		}
	}

	stop()
	stop() // idempotent
	time.Sleep(15 * time.Millisecond)

	if _, err := ra.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	last := mr.Updated()
	time.Sleep(25 * time.Millisecond)
	if mr.Updated() != last {
		t.Error("collector still running after stop")
	}
}

func TestDebugProbes_RingProbe(t *testing.T) {
	dp := control.NewDebugProbes()
	ra := fake.NewRingAccess(4)
	dp.RegisterRingProbe("ring.state", ra)
	control.RegisterPlatformProbes(dp)

	if _, err := ra.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := dp.DumpState()
	st := ra.Snapshot()
	if out["ring.state"] != st {
		t.Errorf("probe returned %+v, expected %+v", out["ring.state"], st)
	}
	if _, ok := out["platform.cpus"]; !ok {
		t.Error("platform probes not registered")
	}
}

func TestTriggerHotReloadSync(t *testing.T) {
	calls := 0
	control.RegisterReloadHook(func() { calls++ })
	control.TriggerHotReloadSync()
	if calls == 0 {
		t.Error("sync trigger did not invoke hook")
	}
}

func TestConfigWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.conf")
	if err := os.WriteFile(path, []byte("capacity=8\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	fired := make(chan struct{}, 1)
	control.RegisterReloadHook(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cw, err := control.NewConfigWatcher(path, log)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer cw.Close()

	if err := os.WriteFile(path, []byte("capacity=16\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not dispatch reload after file write")
	}
}
