package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const testLua = `
-- panel.config = in a comment on its own does not count
panel.config = {
    title = 'From Lua',
    width = 300,
}
`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"lua", testLua, FormatLua},
		{"indented lua", "  panel.config={}", FormatLua},
		{"yaml", testYAML, FormatYAML},
		{"yaml comment", "# panel.config = {}\nwindow:\n  width: 1\n", FormatYAML},
		{"empty", "", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat([]byte(tt.content)); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParserParse(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.Parse([]byte(testLua))
	if err != nil {
		t.Fatalf("Parse(lua) failed: %v", err)
	}
	if cfg.Window.Title != "From Lua" || cfg.Window.Width != 300 {
		t.Errorf("lua window = %+v", cfg.Window)
	}

	cfg, err = p.Parse([]byte(testYAML))
	if err != nil {
		t.Fatalf("Parse(yaml) failed: %v", err)
	}
	if cfg.Window.Title != "Fill Light" {
		t.Errorf("yaml title = %q", cfg.Window.Title)
	}
}

func TestParserParseFile(t *testing.T) {
	p := newTestParser(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "panel.lua")
	if err := os.WriteFile(path, []byte(testLua), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if cfg.Window.Title != "From Lua" {
		t.Errorf("title = %q", cfg.Window.Title)
	}

	if _, err := p.ParseFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParserParseFromFS(t *testing.T) {
	p := newTestParser(t)
	fsys := fstest.MapFS{
		"panels/light.yaml": {Data: []byte(testYAML)},
	}

	cfg, err := p.ParseFromFS(fsys, "panels/light.yaml")
	if err != nil {
		t.Fatalf("ParseFromFS failed: %v", err)
	}
	if cfg.Window.Width != 520 {
		t.Errorf("width = %d", cfg.Window.Width)
	}

	if _, err := p.ParseFromFS(fsys, "panels/none.yaml"); err == nil {
		t.Error("expected error for missing FS entry")
	}
}

func TestParserParseReader(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name      string
		content   string
		format    string
		wantTitle string
		wantErr   bool
	}{
		{"lua", testLua, FormatLua, "From Lua", false},
		{"yaml", testYAML, FormatYAML, "Fill Light", false},
		{"yml alias", testYAML, "yml", "Fill Light", false},
		{"auto", testLua, "", "From Lua", false},
		{"unknown", testYAML, "toml", "", true},
		{"lua parsed as yaml", testLua, FormatYAML, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := p.ParseReader(strings.NewReader(tt.content), tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReader error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Window.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", cfg.Window.Title, tt.wantTitle)
			}
		})
	}
}
