// Package config provides configuration data structures for go-proppanel.
// A configuration describes the panel window, the attribute rows grouped in
// collapsable sections, gradient overrides and style sheet overrides. It can be
// written in Lua or YAML.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/style"
)

// Config represents the complete go-proppanel configuration.
type Config struct {
	// Window contains window-related configuration options.
	Window WindowConfig
	// Panel describes the attribute rows.
	Panel PanelConfig
	// Gradients maps a gradient name to its stop colors. Entries override
	// presets of the same name or add new ones.
	Gradients map[string][]string
	// Style maps a selector such as "Label::attribute_name" to raw property
	// values, overlaid on the default sheet.
	Style map[string]map[string]any
}

// WindowConfig holds window-related configuration options.
type WindowConfig struct {
	// Title is the window title.
	Title string
	// Width is the window width in pixels.
	Width int
	// Height is the window height in pixels.
	Height int
	// X is the horizontal window position; negative leaves placement to the
	// window manager.
	X int
	// Y is the vertical window position; negative leaves placement to the
	// window manager.
	Y int
	// Hints contains window manager hints.
	Hints []WindowHint
}

// HasHint reports whether h is among the configured hints.
func (wc WindowConfig) HasHint(h WindowHint) bool {
	for _, hint := range wc.Hints {
		if hint == h {
			return true
		}
	}
	return false
}

// PanelConfig holds the panel layout.
type PanelConfig struct {
	// LabelWidth is the width of the attribute label column.
	LabelWidth float64
	// Sections are the collapsable groups, top to bottom.
	Sections []SectionConfig
}

// SectionConfig describes one collapsable group of attribute rows.
type SectionConfig struct {
	Title      string
	Collapsed  bool
	Attributes []AttributeConfig
}

// AttributeKind selects the widget used for an attribute row.
type AttributeKind string

// Attribute kinds.
const (
	// KindSlider is a float slider over a gradient background.
	KindSlider AttributeKind = "slider"
	// KindCheckbox is a boolean toggle.
	KindCheckbox AttributeKind = "checkbox"
	// KindCombo is a drop-down list.
	KindCombo AttributeKind = "combo"
	// KindColor is a three-component color field.
	KindColor AttributeKind = "color"
	// KindVector is a three-component X/Y/Z field.
	KindVector AttributeKind = "vector"
	// KindRadio is a group of mutually exclusive options.
	KindRadio AttributeKind = "radio"
)

var attributeKinds = []AttributeKind{KindSlider, KindCheckbox, KindCombo, KindColor, KindVector, KindRadio}

// ParseAttributeKind parses a string into an AttributeKind.
func ParseAttributeKind(s string) (AttributeKind, error) {
	k := AttributeKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range attributeKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown attribute kind: %s", s)
}

// AttributeConfig describes one attribute row. Which fields apply depends on
// Kind.
type AttributeConfig struct {
	Kind  AttributeKind
	Label string

	// Default, Min and Max apply to sliders.
	Default float64
	Min     float64
	Max     float64
	// Gradient names the slider background gradient.
	Gradient string

	// Checked is the checkbox default.
	Checked bool

	// Options lists combo and radio choices; Selected is the radio default.
	Options  []string
	Selected int

	// Components are the color or vector defaults.
	Components [3]float64

	// Handles names gradients drawn as draggable handle strips under the row.
	Handles []string
}

// WindowHint represents a window manager hint.
type WindowHint int

const (
	// WindowHintUndecorated removes window decorations.
	WindowHintUndecorated WindowHint = iota
	// WindowHintAbove keeps the window above others.
	WindowHintAbove
	// WindowHintSticky makes the window visible on all desktops.
	WindowHintSticky
	// WindowHintSkipTaskbar hides the window from the taskbar.
	WindowHintSkipTaskbar
	// WindowHintSkipPager hides the window from the pager.
	WindowHintSkipPager
)

// String returns the string representation of a WindowHint.
func (wh WindowHint) String() string {
	switch wh {
	case WindowHintUndecorated:
		return "undecorated"
	case WindowHintAbove:
		return "above"
	case WindowHintSticky:
		return "sticky"
	case WindowHintSkipTaskbar:
		return "skip_taskbar"
	case WindowHintSkipPager:
		return "skip_pager"
	default:
		return "unknown"
	}
}

// ParseWindowHint parses a string into a WindowHint.
func ParseWindowHint(s string) (WindowHint, error) {
	switch s {
	case "undecorated":
		return WindowHintUndecorated, nil
	case "above":
		return WindowHintAbove, nil
	case "sticky":
		return WindowHintSticky, nil
	case "skip_taskbar":
		return WindowHintSkipTaskbar, nil
	case "skip_pager":
		return WindowHintSkipPager, nil
	default:
		return WindowHintUndecorated, fmt.Errorf("unknown window hint: %s", s)
	}
}

// parseWindowHints parses a comma-separated hint list.
func parseWindowHints(s string) ([]WindowHint, error) {
	var hints []WindowHint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := ParseWindowHint(part)
		if err != nil {
			return nil, err
		}
		hints = append(hints, h)
	}
	return hints, nil
}

// Validate checks if the Config has valid values using the comprehensive validator.
// It returns the first validation error found, or nil if the config is valid.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// Gradient resolves a gradient by name. Gradients defined in the
// configuration shadow presets.
func (c *Config) Gradient(name string) (gradient.Gradient, error) {
	if stops, ok := c.Gradients[name]; ok {
		g, err := gradient.Parse(style.ParseColor, stops...)
		if err != nil {
			return gradient.Gradient{}, fmt.Errorf("gradient %s: %w", name, err)
		}
		return g, nil
	}
	return gradient.Preset(name)
}

// GradientNames lists presets and configured gradients, sorted.
func (c *Config) GradientNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range gradient.PresetNames() {
		seen[n] = true
		names = append(names, n)
	}
	for n := range c.Gradients {
		if !seen[n] {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// StyleSheet returns the default sheet with the configured overrides applied.
func (c *Config) StyleSheet() (*style.Sheet, error) {
	sheet := style.DefaultSheet()
	selectors := make([]string, 0, len(c.Style))
	for sel := range c.Style {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	for _, sel := range selectors {
		props := make(style.Properties, len(c.Style[sel]))
		for key, raw := range c.Style[sel] {
			v, err := style.ParseValue(key, raw)
			if err != nil {
				return nil, fmt.Errorf("style %s: %w", sel, err)
			}
			props[key] = v
		}
		if err := sheet.SetString(sel, props); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}
