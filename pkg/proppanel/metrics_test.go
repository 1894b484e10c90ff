package proppanel

import (
	"errors"
	"expvar"
	"sync"
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.IncrementStarts()
	m.IncrementStops()
	m.IncrementChanges()
	m.IncrementChanges()
	m.IncrementErrors()
	m.IncrementEventsEmitted()
	m.SetRunning(true)

	snap := m.Snapshot()
	want := MetricsSnapshot{Starts: 1, Stops: 1, Changes: 2, ErrorsTotal: 1, EventsEmitted: 1, Running: true}
	if snap != want {
		t.Errorf("snapshot = %+v, want %+v", snap, want)
	}
}

func TestMetricsRecordReload(t *testing.T) {
	m := NewMetrics()
	m.RecordReload(10*time.Millisecond, nil)
	m.RecordReload(30*time.Millisecond, nil)
	m.RecordReload(time.Second, errors.New("bad"))

	snap := m.Snapshot()
	if snap.ConfigReloads != 2 || snap.ReloadFailures != 1 {
		t.Errorf("reloads = %d, failures = %d", snap.ConfigReloads, snap.ReloadFailures)
	}
	if snap.ReloadLatencyAvg != 20*time.Millisecond {
		t.Errorf("avg latency = %v, want 20ms (failures excluded)", snap.ReloadLatencyAvg)
	}
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		total, count int64
		want         time.Duration
	}{
		{0, 0, 0},
		{100, 0, 0},
		{100, 4, 25},
	}
	for _, tt := range tests {
		if got := safeDivide(tt.total, tt.count); got != tt.want {
			t.Errorf("safeDivide(%d, %d) = %v, want %v", tt.total, tt.count, got, tt.want)
		}
	}
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.IncrementChanges()
				_ = m.Snapshot()
			}
		}()
	}
	wg.Wait()
	if got := m.Snapshot().Changes; got != 1000 {
		t.Errorf("changes = %d, want 1000", got)
	}
}

func TestRegisterExpvar(t *testing.T) {
	m := NewMetrics()
	m.RegisterExpvar("proppanel_test")
	m.RegisterExpvar("proppanel_test")
	m.IncrementStarts()

	v := expvar.Get("proppanel_test_starts_total")
	if v == nil {
		t.Fatal("starts_total not published")
	}
	if v.String() != "1" {
		t.Errorf("starts_total = %s", v.String())
	}
}
