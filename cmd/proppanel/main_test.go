package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-v"}, &out, &errOut); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("output = %q", out.String())
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"defaults", nil, false},
		{"export", []string{"-export", "grey", "-o", "g.png", "-width", "32", "-height", "4"}, false},
		{"zero width", []string{"-width", "0"}, true},
		{"stray argument", []string{"light.yaml"}, true},
		{"unknown flag", []string{"-fullscreen"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, &bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Errorf("parseFlags(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestList(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-list"}, &out, &errOut); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}
	for _, name := range []string{"temperature", "grey", "tint"} {
		if !strings.Contains(out.String(), name+"\n") {
			t.Errorf("list missing %s: %q", name, out.String())
		}
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temperature.png")
	var out, errOut bytes.Buffer
	code := run([]string{"-export", "temperature", "-o", path, "-width", "40", "-height", "3"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
}

func TestExportUnknownGradient(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-export", "nope"}, &out, &errOut); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
}

func TestConfigFileNotFound(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-c", "/nonexistent/light.yaml", "-list"}, &out, &errOut); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestBadLogLevel(t *testing.T) {
	if code := run([]string{"-log-level", "loud"}, &bytes.Buffer{}, &bytes.Buffer{}); code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
}

func TestProfiling(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")
	mem := filepath.Join(dir, "mem.prof")

	p, err := startProfiling(cpu, mem)
	if err != nil {
		t.Fatalf("startProfiling: %v", err)
	}
	if err := p.stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	for _, path := range []string{cpu, mem} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", path, err)
		}
	}
	if err := p.stop(); err != nil {
		t.Errorf("second stop = %v", err)
	}

	if _, err := startProfiling(filepath.Join(dir, "missing", "cpu.prof"), ""); err == nil {
		t.Error("expected error creating profile in missing directory")
	}
}
