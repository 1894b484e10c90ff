// Package config provides configuration parsing for go-proppanel.
// This file implements the YAML configuration parser.

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors the YAML layout. Pointer fields distinguish "absent"
// from zero so that absent values keep their defaults.
type yamlDocument struct {
	Window struct {
		Title  *string   `yaml:"title"`
		Width  *int      `yaml:"width"`
		Height *int      `yaml:"height"`
		X      *int      `yaml:"x"`
		Y      *int      `yaml:"y"`
		Hints  yamlHints `yaml:"hints"`
	} `yaml:"window"`
	Panel struct {
		LabelWidth *float64      `yaml:"label_width"`
		Sections   []sectionSpec `yaml:"sections"`
	} `yaml:"panel"`
	Gradients map[string][]string       `yaml:"gradients"`
	Style     map[string]map[string]any `yaml:"style"`
}

// yamlHints accepts either a list of hint names or a comma-separated string.
type yamlHints []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *yamlHints) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*h = yamlHints{s}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*h = list
	return nil
}

// YAMLConfigParser parses YAML panel configurations.
type YAMLConfigParser struct{}

// NewYAMLConfigParser creates a YAMLConfigParser.
func NewYAMLConfigParser() *YAMLConfigParser {
	return &YAMLConfigParser{}
}

// Parse parses a YAML configuration from content bytes. Values absent from
// the document keep their defaults; a sections list replaces the default
// sections entirely.
func (p *YAMLConfigParser) Parse(content []byte) (*Config, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	cfg := DefaultConfig()
	w := &doc.Window
	if w.Title != nil {
		cfg.Window.Title = *w.Title
	}
	if w.Width != nil {
		cfg.Window.Width = *w.Width
	}
	if w.Height != nil {
		cfg.Window.Height = *w.Height
	}
	if w.X != nil {
		cfg.Window.X = *w.X
	}
	if w.Y != nil {
		cfg.Window.Y = *w.Y
	}
	for _, entry := range w.Hints {
		hints, err := parseWindowHints(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid window.hints: %w", err)
		}
		cfg.Window.Hints = append(cfg.Window.Hints, hints...)
	}

	if doc.Panel.LabelWidth != nil {
		cfg.Panel.LabelWidth = *doc.Panel.LabelWidth
	}
	if doc.Panel.Sections != nil {
		cfg.Panel.Sections = nil
		for _, ss := range doc.Panel.Sections {
			sec, err := ss.build()
			if err != nil {
				return nil, err
			}
			cfg.Panel.Sections = append(cfg.Panel.Sections, sec)
		}
	}

	cfg.Gradients = doc.Gradients
	cfg.Style = doc.Style
	return &cfg, nil
}
