//go:build !linux

package render

// ApplyWindowHints is a no-op outside Linux; the sticky and skip hints are
// X11 window states.
func ApplyWindowHints(sticky, skipTaskbar, skipPager bool) error {
	return nil
}

// CloseWindowHints is a no-op outside Linux.
func CloseWindowHints() {
}
