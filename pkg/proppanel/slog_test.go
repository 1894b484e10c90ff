package proppanel

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tests := []struct {
		name string
		log  func()
		want []string
	}{
		{"debug", func() { adapter.Debug("debug message", "key", "value") }, []string{"level=DEBUG", "debug message", "key=value"}},
		{"info", func() { adapter.Info("info message", "count", 42) }, []string{"level=INFO", "count=42"}},
		{"warn", func() { adapter.Warn("warn message") }, []string{"level=WARN", "warn message"}},
		{"error", func() { adapter.Error("error message", "err", "failed") }, []string{"level=ERROR", "err=failed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil))).With("panel", "key")
	adapter.Info("started")
	if !strings.Contains(buf.String(), "panel=key") {
		t.Errorf("With() attribute missing: %s", buf.String())
	}
}

func TestNewSlogAdapterNil(t *testing.T) {
	if NewSlogAdapter(nil) == nil {
		t.Fatal("NewSlogAdapter(nil) returned nil")
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := TextLogger(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("shown", "section", "LIGHT")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(buf.String(), "section=LIGHT") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	TextLogger(&buf, slog.LevelDebug).Debug("traced")
	if !strings.Contains(buf.String(), "source=") {
		t.Errorf("debug logger has no source: %q", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	JSONLogger(&buf, slog.LevelWarn).Warn("careful", "label", "Tint")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "careful" || rec["label"] != "Tint" || rec["level"] != "WARN" {
		t.Errorf("record = %v", rec)
	}
}

func TestNilWriterLoggers(t *testing.T) {
	if TextLogger(nil, slog.LevelInfo) == nil || JSONLogger(nil, slog.LevelInfo) == nil {
		t.Error("nil writer produced nil logger")
	}
	if DefaultLogger() == nil {
		t.Error("DefaultLogger returned nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger()
	logger.Debug("x")
	logger.Info("x", "k", 1)
	logger.Warn("x")
	logger.Error("x")

	if (Options{}).logger() == nil {
		t.Error("zero Options gave nil logger")
	}
}
