package proppanel

import "errors"

// Lifecycle errors.
var (
	// ErrAlreadyRunning is returned by Start on a running panel.
	ErrAlreadyRunning = errors.New("panel already running")
	// ErrNotRunning is returned by ReloadConfig on a stopped panel.
	ErrNotRunning = errors.New("panel not running")
	// ErrNoConfigSource is returned when a reload has nothing to reload from.
	ErrNoConfigSource = errors.New("no config source available")
)
