package config

import "testing"

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_PROPPANEL_VAR", "test_value")
	t.Setenv("TEST_PROPPANEL_HOST", "studio")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no variables", "plain text", "plain text"},
		{"braced", "prefix ${TEST_PROPPANEL_VAR} suffix", "prefix test_value suffix"},
		{"simple", "prefix $TEST_PROPPANEL_VAR suffix", "prefix test_value suffix"},
		{"unset becomes empty", "a${UNSET_PROPPANEL_12345}b", "ab"},
		{"unset with default", "${UNSET_PROPPANEL_12345:-fallback}", "fallback"},
		{"set ignores default", "${TEST_PROPPANEL_HOST:-fallback}", "studio"},
		{"empty default", "${UNSET_PROPPANEL_12345:-}", ""},
		{"multiple", "$TEST_PROPPANEL_HOST/${TEST_PROPPANEL_VAR}", "studio/test_value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.expected {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExpandEnvConfig(t *testing.T) {
	t.Setenv("TEST_PROPPANEL_LIGHT", "Key Light")

	cfg := DefaultConfig()
	cfg.Window.Title = "${TEST_PROPPANEL_LIGHT} properties"
	cfg.Panel.Sections[1].Title = "$TEST_PROPPANEL_LIGHT"
	cfg.Panel.Sections[1].Attributes[0].Label = "${TEST_PROPPANEL_LIGHT} type"

	ExpandEnvConfig(&cfg)
	if cfg.Window.Title != "Key Light properties" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Panel.Sections[1].Title != "Key Light" {
		t.Errorf("section title = %q", cfg.Panel.Sections[1].Title)
	}
	if cfg.Panel.Sections[1].Attributes[0].Label != "Key Light type" {
		t.Errorf("label = %q", cfg.Panel.Sections[1].Attributes[0].Label)
	}

	ExpandEnvConfig(nil)
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvWidth:  "640",
		EnvHeight: " 480 ",
		EnvTitle:  "Overridden",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := ApplyEnvOverrides(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnvOverrides: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 || cfg.Window.Title != "Overridden" {
		t.Errorf("window = %+v", cfg.Window)
	}

	env[EnvWidth] = "wide"
	if err := ApplyEnvOverrides(&cfg, lookup); err == nil {
		t.Error("expected error for non-numeric width")
	}
}

func TestApplyEnvOverridesUnset(t *testing.T) {
	cfg := DefaultConfig()
	none := func(string) (string, bool) { return "", false }
	if err := ApplyEnvOverrides(&cfg, none); err != nil {
		t.Fatal(err)
	}
	def := DefaultWindowConfig()
	if cfg.Window.Width != def.Width || cfg.Window.Height != def.Height || cfg.Window.Title != def.Title {
		t.Errorf("window changed without overrides: %+v", cfg.Window)
	}
}
