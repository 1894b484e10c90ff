package config

import (
	"testing"

	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/style"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != DefaultWidth {
		t.Errorf("expected window width %d, got %d", DefaultWidth, cfg.Window.Width)
	}
	if cfg.Window.Height != DefaultHeight {
		t.Errorf("expected window height %d, got %d", DefaultHeight, cfg.Window.Height)
	}
	if cfg.Window.Title != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, cfg.Window.Title)
	}
	if cfg.Panel.LabelWidth != DefaultLabelWidth {
		t.Errorf("expected label width %v, got %v", DefaultLabelWidth, cfg.Panel.LabelWidth)
	}
	if len(cfg.Panel.Sections) != 3 {
		t.Fatalf("expected 3 default sections, got %d", len(cfg.Panel.Sections))
	}

	if err := ValidateConfigStrict(&cfg); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestDefaultConfigCoversEveryKind(t *testing.T) {
	cfg := DefaultConfig()
	seen := make(map[AttributeKind]bool)
	for _, sec := range cfg.Panel.Sections {
		for _, attr := range sec.Attributes {
			seen[attr.Kind] = true
		}
	}
	for _, k := range attributeKinds {
		if !seen[k] {
			t.Errorf("default panel has no %s attribute", k)
		}
	}
}

func TestDefaultConfigIsFresh(t *testing.T) {
	a := DefaultConfig()
	a.Panel.Sections[0].Title = "changed"
	b := DefaultConfig()
	if b.Panel.Sections[0].Title == "changed" {
		t.Error("DefaultConfig shares section slices between calls")
	}
}

func TestParseAttributeKind(t *testing.T) {
	tests := []struct {
		input   string
		want    AttributeKind
		wantErr bool
	}{
		{"slider", KindSlider, false},
		{" Checkbox ", KindCheckbox, false},
		{"COMBO", KindCombo, false},
		{"color", KindColor, false},
		{"vector", KindVector, false},
		{"radio", KindRadio, false},
		{"knob", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAttributeKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAttributeKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAttributeKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWindowHintString(t *testing.T) {
	tests := []struct {
		hint WindowHint
		want string
	}{
		{WindowHintUndecorated, "undecorated"},
		{WindowHintAbove, "above"},
		{WindowHintSticky, "sticky"},
		{WindowHintSkipTaskbar, "skip_taskbar"},
		{WindowHintSkipPager, "skip_pager"},
		{WindowHint(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.hint.String(); got != tt.want {
			t.Errorf("WindowHint(%d).String() = %q, want %q", tt.hint, got, tt.want)
		}
		if tt.want == "unknown" {
			continue
		}
		parsed, err := ParseWindowHint(tt.want)
		if err != nil || parsed != tt.hint {
			t.Errorf("ParseWindowHint(%q) = %v, %v", tt.want, parsed, err)
		}
	}
	if _, err := ParseWindowHint("below"); err == nil {
		t.Error("expected error for unsupported hint")
	}
}

func TestParseWindowHints(t *testing.T) {
	hints, err := parseWindowHints("above, skip_taskbar,,skip_pager")
	if err != nil {
		t.Fatalf("parseWindowHints: %v", err)
	}
	want := []WindowHint{WindowHintAbove, WindowHintSkipTaskbar, WindowHintSkipPager}
	if len(hints) != len(want) {
		t.Fatalf("got %v, want %v", hints, want)
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Errorf("hint %d = %v, want %v", i, hints[i], want[i])
		}
	}

	wc := WindowConfig{Hints: hints}
	if !wc.HasHint(WindowHintAbove) || wc.HasHint(WindowHintSticky) {
		t.Error("HasHint mismatch")
	}

	if _, err := parseWindowHints("above,floating"); err == nil {
		t.Error("expected error for unknown hint")
	}
}

func TestConfigGradient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gradients = map[string][]string{
		"heat":   {"#000000", "#ff0000"},
		"button": {"white"},
		"broken": {"#000000", "nope"},
	}

	heat, err := cfg.Gradient("heat")
	if err != nil {
		t.Fatalf("Gradient(heat): %v", err)
	}
	if heat.Len() != 2 || heat.Last() != gradient.Pack(255, 0, 0, 255) {
		t.Errorf("heat = %v", heat)
	}

	button, err := cfg.Gradient("button")
	if err != nil || button.Len() != 1 {
		t.Errorf("configured gradient does not shadow preset: %v, %v", button, err)
	}

	if _, err := cfg.Gradient("temperature"); err != nil {
		t.Errorf("preset lookup failed: %v", err)
	}
	if _, err := cfg.Gradient("broken"); err == nil {
		t.Error("expected error for unparsable stop")
	}
	if _, err := cfg.Gradient("missing"); err == nil {
		t.Error("expected error for unknown gradient")
	}

	names := cfg.GradientNames()
	if len(names) != len(gradient.PresetNames())+2 {
		t.Errorf("GradientNames() = %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("GradientNames not sorted: %v", names)
		}
	}
}

func TestConfigStyleSheet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = map[string]map[string]any{
		"Label::attribute_name": {"color": "#ffffff", "font_size": 18},
	}
	sheet, err := cfg.StyleSheet()
	if err != nil {
		t.Fatalf("StyleSheet: %v", err)
	}
	props := sheet.Resolve("Label", "attribute_name", "")
	if c, ok := props.Color("color"); !ok || c != gradient.Pack(255, 255, 255, 255) {
		t.Errorf("color = %v, %v", c, ok)
	}
	if f := props.FloatOr("font_size", 0); f != 18 {
		t.Errorf("font_size = %v", f)
	}
	if style.DefaultSheet().Len() > sheet.Len() {
		t.Error("overrides dropped default rules")
	}

	cfg.Style = map[string]map[string]any{"::bad": {"color": "#fff"}}
	if _, err := cfg.StyleSheet(); err == nil {
		t.Error("expected error for malformed selector")
	}
	cfg.Style = map[string]map[string]any{"Label": {"color": "not-a-color"}}
	if _, err := cfg.StyleSheet(); err == nil {
		t.Error("expected error for malformed color")
	}
}
