//go:build integration

// Package integration provides end-to-end tests for the property panel.
// They run the parse, build, layout and interaction pipeline headless, so
// they need no display.
package integration

import (
	"bytes"
	"image/png"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/opd-ai/go-proppanel/internal/config"
	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/panel"
	"github.com/opd-ai/go-proppanel/internal/widget"
	"github.com/opd-ai/go-proppanel/pkg/proppanel"
)

// getTestConfigsDir returns the path to the test configs directory.
// It calls t.Fatal if runtime.Caller fails.
func getTestConfigsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed to get current file path")
	}
	return filepath.Join(filepath.Dir(file), "..", "configs")
}

func buildPanel(t *testing.T, name string) (*config.Config, *panel.Panel) {
	t.Helper()
	parser, err := config.NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	defer parser.Close()

	cfg, err := parser.ParseFile(filepath.Join(getTestConfigsDir(t), name))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	p, err := panel.Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.Layout(float64(cfg.Window.Width))
	return cfg, p
}

// TestExampleConfigs parses every example and checks the built panel.
func TestExampleConfigs(t *testing.T) {
	tests := []struct {
		file     string
		title    string
		sections int
		labels   []string
	}{
		{"key_light.lua", "Key Light", 2, []string{"Temperature", "Intensity", "Tint", "Cast Shadows", "Type", "Falloff", "Position"}},
		{"fill_light.yaml", "Fill Light", 1, []string{"Exposure", "Color", "Units"}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, p := buildPanel(t, tt.file)
			if cfg.Window.Title != tt.title {
				t.Errorf("title = %q, want %q", cfg.Window.Title, tt.title)
			}
			if len(p.Sections) != tt.sections {
				t.Fatalf("sections = %d, want %d", len(p.Sections), tt.sections)
			}
			for _, label := range tt.labels {
				if p.Find(label) == nil {
					t.Errorf("attribute %q missing", label)
				}
			}
			if _, err := cfg.StyleSheet(); err != nil {
				t.Errorf("StyleSheet failed: %v", err)
			}
			for _, name := range cfg.GradientNames() {
				if _, err := cfg.Gradient(name); err != nil {
					t.Errorf("gradient %s: %v", name, err)
				}
			}
		})
	}
}

// TestCollapsedSectionHidesRows checks that only the header of a collapsed
// section is laid out until it is expanded.
func TestCollapsedSectionHidesRows(t *testing.T) {
	cfg, p := buildPanel(t, "key_light.lua")

	if p.Find("Falloff").Value() != "Quadratic" {
		t.Errorf("1-based Lua selection = %q, want Quadratic", p.Find("Falloff").Value())
	}
	for _, r := range p.Rows() {
		if r.Section.Header.Label == "SHAPE" && r.Kind != panel.RowHeader {
			t.Fatalf("row %q of collapsed section laid out", r.Label)
		}
	}

	header := p.Sections[1].Header
	before := p.Height()
	p.Press(header.Bounds.X+4, header.Bounds.Y+header.Bounds.H/2, widget.MouseLeft)
	p.Layout(float64(cfg.Window.Width))
	if p.Height() <= before {
		t.Errorf("expanding SHAPE did not grow the panel: %v -> %v", before, p.Height())
	}
}

// TestHandleDragPipeline drags the tint handle across its strip and checks
// the color field follows the gradient.
func TestHandleDragPipeline(t *testing.T) {
	_, p := buildPanel(t, "key_light.lua")

	var changes []panel.Change
	p.OnChange(func(c panel.Change) { changes = append(changes, c) })

	var handle *panel.Row
	for _, r := range p.Rows() {
		if r.Kind == panel.RowHandle && r.Owner == p.Find("Tint") {
			handle = r
		}
	}
	if handle == nil {
		t.Fatal("tint handle row not laid out")
	}

	y := handle.Bounds.Y + handle.Bounds.H/2
	p.Press(handle.WidgetBounds.X+1, y, widget.MouseLeft)
	p.DragTo(handle.WidgetBounds.X+handle.WidgetBounds.W+50, y)
	p.Release()

	last := gradient.MustPreset(gradient.PresetTint).Last()
	r, g, b, _ := gradient.Unpack(last)
	want := [3]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255}
	if got := p.Find("Tint").Color.Values(); got != want {
		t.Errorf("tint = %v, want %v", got, want)
	}
	if len(changes) == 0 {
		t.Error("drag produced no changes")
	}
}

// TestPublicAPIPipeline drives the embedding API headless.
func TestPublicAPIPipeline(t *testing.T) {
	path := filepath.Join(getTestConfigsDir(t), "fill_light.yaml")
	p, err := proppanel.New(path, &proppanel.Options{Headless: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer p.Stop()

	if err := p.SetValue("Exposure", "2.5"); err != nil {
		t.Errorf("SetValue failed: %v", err)
	}
	if err := p.ReloadConfig(); err != nil {
		t.Errorf("ReloadConfig failed: %v", err)
	}
	for _, v := range p.Values() {
		if v.Label == "Exposure" && v.Value != "0" {
			t.Errorf("reload kept edited Exposure %q", v.Value)
		}
		if v.Label == "Units" && v.Value != "lm" {
			t.Errorf("0-based YAML selection = %q, want lm", v.Value)
		}
	}

	var buf bytes.Buffer
	if err := p.ExportGradient(&buf, "dusk", 128, 8); err != nil {
		t.Fatalf("ExportGradient failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}
