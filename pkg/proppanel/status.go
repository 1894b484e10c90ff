package proppanel

import "time"

// Status represents the current state of a Panel.
type Status struct {
	// Running indicates if the panel is currently active.
	Running bool
	// StartTime is when the panel was last started (zero if never started).
	StartTime time.Time
	// Changes is the number of attribute edits since the last start.
	Changes uint64
	// LastError is the most recent error encountered (nil if none).
	LastError error
	// ConfigSource describes where the configuration came from.
	ConfigSource string
}

// Change reports an edited attribute: the section title, the attribute
// label and the new value as text.
type Change struct {
	Section string
	Label   string
	Value   string
}

// ErrorHandler is a callback for runtime errors.
// It is called asynchronously; do not block in the handler.
type ErrorHandler func(err error)

// ChangeHandler is a callback for attribute edits. It runs on the window
// goroutine, so it must return quickly.
type ChangeHandler func(c Change)

// EventHandler is a callback for lifecycle events.
// It is called asynchronously; do not block in the handler.
type EventHandler func(event Event)

// Event represents a lifecycle event.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Message   string
}

// EventType enumerates lifecycle event types.
type EventType int

const (
	// EventStarted is emitted when the panel starts successfully.
	EventStarted EventType = iota
	// EventStopped is emitted when the panel stops, including when the user
	// closes the window.
	EventStopped
	// EventConfigReloaded is emitted when the configuration is reloaded.
	EventConfigReloaded
	// EventError is emitted when a recoverable error occurs.
	EventError
)

// String returns a human-readable representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventConfigReloaded:
		return "config_reloaded"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}
