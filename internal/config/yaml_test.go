package config

import (
	"strings"
	"testing"
)

const testYAML = `
window:
  title: Fill Light
  width: 520
  hints: [above, skip_pager]
panel:
  label_width: 100
  sections:
    - title: LIGHT
      attributes:
        - kind: slider
          label: Exposure
          min: -5
          max: 5
        - kind: radio
          label: Units
          options: [W, lm]
          selected: 1
        - kind: color
          label: Tint
          handles: [color, tint]
gradients:
  heat: ["#000", "#f00"]
style:
  "Label::attribute_name":
    color: "#ffffff"
    font_size: 15
`

func TestYAMLConfigParserParse(t *testing.T) {
	cfg, err := NewYAMLConfigParser().Parse([]byte(testYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Window.Title != "Fill Light" || cfg.Window.Width != 520 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Height != DefaultHeight {
		t.Errorf("absent height not defaulted: %d", cfg.Window.Height)
	}
	if !cfg.Window.HasHint(WindowHintAbove) || !cfg.Window.HasHint(WindowHintSkipPager) {
		t.Errorf("hints = %v", cfg.Window.Hints)
	}
	if cfg.Panel.LabelWidth != 100 {
		t.Errorf("label width = %v", cfg.Panel.LabelWidth)
	}

	if len(cfg.Panel.Sections) != 1 || len(cfg.Panel.Sections[0].Attributes) != 3 {
		t.Fatalf("sections = %+v", cfg.Panel.Sections)
	}
	attrs := cfg.Panel.Sections[0].Attributes
	if attrs[0].Min != -5 || attrs[0].Max != 5 || attrs[0].Default != -5 {
		t.Errorf("slider = %+v", attrs[0])
	}
	if attrs[1].Selected != 1 {
		t.Errorf("radio selected = %d", attrs[1].Selected)
	}
	if attrs[2].Components != [3]float64{1, 1, 1} {
		t.Errorf("color default components = %v", attrs[2].Components)
	}

	if len(cfg.Gradients["heat"]) != 2 {
		t.Errorf("gradients = %v", cfg.Gradients)
	}
	if cfg.Style["Label::attribute_name"]["font_size"] != 15 {
		t.Errorf("style = %v", cfg.Style)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("parsed config invalid: %v", err)
	}
}

func TestYAMLConfigParserHintString(t *testing.T) {
	cfg, err := NewYAMLConfigParser().Parse([]byte("window:\n  hints: above, sticky\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Window.Hints) != 2 || cfg.Window.Hints[1] != WindowHintSticky {
		t.Errorf("hints = %v", cfg.Window.Hints)
	}
}

func TestYAMLConfigParserEmpty(t *testing.T) {
	cfg, err := NewYAMLConfigParser().Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Panel.Sections) != len(DefaultConfig().Panel.Sections) {
		t.Error("empty document lost the default sections")
	}
}

func TestYAMLConfigParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed", "window: [", "YAML"},
		{"bad hint", "window:\n  hints: [floating]\n", "window.hints"},
		{"bad kind", "panel:\n  sections:\n    - attributes:\n        - kind: dial\n", "unknown attribute kind"},
		{"wrong type", "window:\n  width: wide\n", "YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLConfigParser().Parse([]byte(tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
