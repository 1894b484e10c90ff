package proppanel

import (
	"expvar"
	"sync/atomic"
	"time"
)

// Metrics counts panel operations. It is safe for concurrent use.
//
// Metrics can be exposed via expvar, which serves them at /debug/vars once
// an HTTP server is running:
//
//	m := proppanel.NewMetrics()
//	m.RegisterExpvar("proppanel")
type Metrics struct {
	starts         atomic.Int64
	stops          atomic.Int64
	configReloads  atomic.Int64
	reloadFailures atomic.Int64
	changes        atomic.Int64
	errorsTotal    atomic.Int64
	eventsEmitted  atomic.Int64

	reloadLatencyNs    atomic.Int64
	reloadLatencyCount atomic.Int64

	running atomic.Bool

	registered atomic.Bool
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RegisterExpvar publishes the metrics under names starting with prefix.
// expvar names are global, so every panel needs its own prefix. Subsequent
// calls are no-ops.
func (m *Metrics) RegisterExpvar(prefix string) {
	if m.registered.Swap(true) {
		return
	}
	publish := func(name string, fn func() any) {
		expvar.Publish(prefix+"_"+name, expvar.Func(fn))
	}

	publish("starts_total", func() any { return m.starts.Load() })
	publish("stops_total", func() any { return m.stops.Load() })
	publish("config_reloads_total", func() any { return m.configReloads.Load() })
	publish("reload_failures_total", func() any { return m.reloadFailures.Load() })
	publish("changes_total", func() any { return m.changes.Load() })
	publish("errors_total", func() any { return m.errorsTotal.Load() })
	publish("events_emitted_total", func() any { return m.eventsEmitted.Load() })
	publish("running", func() any { return m.running.Load() })
	publish("reload_latency_avg_ms", func() any {
		return float64(m.Snapshot().ReloadLatencyAvg) / float64(time.Millisecond)
	})
}

// MetricsSnapshot is a point-in-time copy of all metrics.
type MetricsSnapshot struct {
	Starts         int64
	Stops          int64
	ConfigReloads  int64
	ReloadFailures int64
	Changes        int64
	ErrorsTotal    int64
	EventsEmitted  int64

	Running bool

	ReloadLatencyAvg time.Duration
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Starts:           m.starts.Load(),
		Stops:            m.stops.Load(),
		ConfigReloads:    m.configReloads.Load(),
		ReloadFailures:   m.reloadFailures.Load(),
		Changes:          m.changes.Load(),
		ErrorsTotal:      m.errorsTotal.Load(),
		EventsEmitted:    m.eventsEmitted.Load(),
		Running:          m.running.Load(),
		ReloadLatencyAvg: safeDivide(m.reloadLatencyNs.Load(), m.reloadLatencyCount.Load()),
	}
}

// IncrementStarts records a start operation.
func (m *Metrics) IncrementStarts() { m.starts.Add(1) }

// IncrementStops records a stop operation.
func (m *Metrics) IncrementStops() { m.stops.Add(1) }

// IncrementChanges records an attribute edit.
func (m *Metrics) IncrementChanges() { m.changes.Add(1) }

// IncrementErrors records an error occurrence.
func (m *Metrics) IncrementErrors() { m.errorsTotal.Add(1) }

// IncrementEventsEmitted records an event emission.
func (m *Metrics) IncrementEventsEmitted() { m.eventsEmitted.Add(1) }

// RecordReload records a configuration reload attempt and its duration.
func (m *Metrics) RecordReload(d time.Duration, err error) {
	if err != nil {
		m.reloadFailures.Add(1)
		return
	}
	m.configReloads.Add(1)
	m.reloadLatencyNs.Add(d.Nanoseconds())
	m.reloadLatencyCount.Add(1)
}

// SetRunning updates the running state gauge.
func (m *Metrics) SetRunning(running bool) { m.running.Store(running) }

// safeDivide performs safe division, returning 0 for divide by zero.
func safeDivide(total, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return time.Duration(total / count)
}
