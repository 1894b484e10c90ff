// Package config provides configuration parsing for go-proppanel.
// This file implements environment variable expansion and overrides.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Environment variables that override the window configuration.
const (
	EnvWidth  = "PROPPANEL_WIDTH"
	EnvHeight = "PROPPANEL_HEIGHT"
	EnvTitle  = "PROPPANEL_TITLE"
)

// envVarPattern matches environment variable references in configuration values.
// Supports formats:
//   - ${VAR_NAME} - standard shell-like format
//   - ${VAR_NAME:-default} - with default value if unset or empty
//   - $VAR_NAME - simple format (word characters only)
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// ExpandEnv expands environment variable references in a string.
// It supports the following formats:
//   - ${VAR_NAME} - replaced with value of VAR_NAME
//   - ${VAR_NAME:-default} - replaced with VAR_NAME's value, or "default" if unset/empty
//   - $VAR_NAME - replaced with value of VAR_NAME (simple format)
//
// Unknown or unset variables without defaults are replaced with empty string.
func ExpandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "${") && strings.HasSuffix(match, "}") {
			inner := match[2 : len(match)-1]

			if idx := strings.Index(inner, ":-"); idx >= 0 {
				if val := os.Getenv(inner[:idx]); val != "" {
					return val
				}
				return inner[idx+2:]
			}
			return os.Getenv(inner)
		}

		return os.Getenv(match[1:])
	})
}

// ExpandEnvConfig expands environment variables in the window title, section
// titles and attribute labels. It modifies the Config in place.
func ExpandEnvConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Window.Title = ExpandEnv(cfg.Window.Title)
	for si := range cfg.Panel.Sections {
		sec := &cfg.Panel.Sections[si]
		sec.Title = ExpandEnv(sec.Title)
		for ai := range sec.Attributes {
			sec.Attributes[ai].Label = ExpandEnv(sec.Attributes[ai].Label)
		}
	}
}

// ApplyEnvOverrides replaces window settings with the PROPPANEL_* variables
// that are set. lookup is typically os.LookupEnv.
func ApplyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ints := []struct {
		name   string
		target *int
	}{
		{EnvWidth, &cfg.Window.Width},
		{EnvHeight, &cfg.Window.Height},
	}
	for _, iv := range ints {
		raw, ok := lookup(iv.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", iv.name, raw, err)
		}
		*iv.target = n
	}

	if title, ok := lookup(EnvTitle); ok && title != "" {
		cfg.Window.Title = title
	}
	return nil
}
