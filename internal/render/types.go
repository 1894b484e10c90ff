// Package render provides the Ebiten window of a property panel.
package render

import (
	"fmt"

	"github.com/opd-ai/go-proppanel/internal/config"
)

// Config holds the window options of the renderer.
type Config struct {
	// Width is the window width in pixels.
	Width int
	// Height is the window height in pixels.
	Height int
	// Title is the window title.
	Title string
	// X and Y place the window. Negative values leave placement to the
	// window manager.
	X, Y int
	// Undecorated removes the title bar and borders.
	Undecorated bool
	// Floating keeps the window above other windows.
	Floating bool
	// Sticky shows the window on every desktop (X11 only).
	Sticky bool
	// SkipTaskbar hides the window from the taskbar (X11 only).
	SkipTaskbar bool
	// SkipPager hides the window from the pager (X11 only).
	SkipPager bool
}

// DefaultConfig returns a Config with the default window size and title.
func DefaultConfig() Config {
	return ConfigFromWindow(config.DefaultWindowConfig())
}

// ConfigFromWindow converts the window section of a panel configuration.
func ConfigFromWindow(wc config.WindowConfig) Config {
	return Config{
		Width:       wc.Width,
		Height:      wc.Height,
		Title:       wc.Title,
		X:           wc.X,
		Y:           wc.Y,
		Undecorated: wc.HasHint(config.WindowHintUndecorated),
		Floating:    wc.HasHint(config.WindowHintAbove),
		Sticky:      wc.HasHint(config.WindowHintSticky),
		SkipTaskbar: wc.HasHint(config.WindowHintSkipTaskbar),
		SkipPager:   wc.HasHint(config.WindowHintSkipPager),
	}
}

// Validate checks if the Config has valid values.
// Returns an error if Width or Height are not positive.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	return nil
}

// hasX11Hints reports whether any hint needs the X11 applier.
func (c Config) hasX11Hints() bool {
	return c.Sticky || c.SkipTaskbar || c.SkipPager
}
