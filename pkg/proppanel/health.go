package proppanel

import (
	"fmt"
	"time"
)

// HealthStatus is the health state of a panel or one of its parts.
type HealthStatus string

const (
	// HealthOK indicates the component is functioning normally.
	HealthOK HealthStatus = "ok"
	// HealthDegraded indicates the panel runs but something failed recently.
	HealthDegraded HealthStatus = "degraded"
	// HealthUnhealthy indicates the panel is not running.
	HealthUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck is a point-in-time health report.
type HealthCheck struct {
	Status     HealthStatus
	Timestamp  time.Time
	Uptime     time.Duration
	Components map[string]ComponentHealth
	Message    string
}

// ComponentHealth is the health of one part of the panel.
type ComponentHealth struct {
	Status  HealthStatus
	Message string
}

// IsHealthy returns true if the overall status is HealthOK.
func (h HealthCheck) IsHealthy() bool { return h.Status == HealthOK }

// Health reports on the panel loop, its window, the config watcher and the
// most recent error.
func (p *panelImpl) Health() HealthCheck {
	now := time.Now()
	running := p.running.Load()

	p.mu.RLock()
	startTime, watcher := p.startTime, p.watcher
	p.mu.RUnlock()

	components := make(map[string]ComponentHealth, 4)
	var uptime time.Duration
	if running {
		uptime = now.Sub(startTime)
		components["panel"] = ComponentHealth{HealthOK, fmt.Sprintf("running, %d changes", p.changes.Load())}
	} else {
		components["panel"] = ComponentHealth{HealthUnhealthy, "not running"}
	}

	switch {
	case p.opts.Headless:
		components["window"] = ComponentHealth{HealthOK, "headless"}
	case running:
		components["window"] = ComponentHealth{HealthOK, "open"}
	default:
		components["window"] = ComponentHealth{HealthUnhealthy, "closed"}
	}

	switch {
	case !p.opts.WatchConfig || p.watchPath == "":
		components["watcher"] = ComponentHealth{HealthOK, "disabled"}
	case watcher != nil:
		components["watcher"] = ComponentHealth{HealthOK, "watching " + p.watchPath}
	case running:
		components["watcher"] = ComponentHealth{HealthDegraded, "not watching"}
	default:
		components["watcher"] = ComponentHealth{HealthUnhealthy, "stopped"}
	}

	lastErr := p.getError()
	if lastErr != nil {
		components["errors"] = ComponentHealth{HealthDegraded, lastErr.Error()}
	} else {
		components["errors"] = ComponentHealth{HealthOK, "no recent errors"}
	}

	status, message := HealthOK, "all components healthy"
	switch {
	case !running:
		status, message = HealthUnhealthy, "panel is not running"
	case lastErr != nil:
		status, message = HealthDegraded, "running with recent errors"
	}

	return HealthCheck{
		Status:     status,
		Timestamp:  now,
		Uptime:     uptime,
		Components: components,
		Message:    message,
	}
}
