// Package config provides configuration parsing for go-proppanel.
// This file implements the unified parser that auto-detects the configuration format.

package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
)

// Supported configuration formats.
const (
	FormatLua  = "lua"
	FormatYAML = "yaml"
)

// Parser provides a unified interface for parsing panel configuration files.
// It automatically detects whether a file is a Lua script or a YAML document.
type Parser struct {
	yamlParser *YAMLConfigParser
	luaParser  *LuaConfigParser
}

// NewParser creates a new Parser that can handle both Lua and YAML configurations.
func NewParser() (*Parser, error) {
	luaParser, err := NewLuaConfigParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua parser: %w", err)
	}

	return &Parser{
		yamlParser: NewYAMLConfigParser(),
		luaParser:  luaParser,
	}, nil
}

// ParseFile reads and parses a configuration file, auto-detecting the format.
// Returns a Config on success or an error if parsing fails.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return p.Parse(content)
}

// Parse parses configuration content, auto-detecting the format.
// It uses the presence of a "panel.config = " assignment to detect Lua.
func (p *Parser) Parse(content []byte) (*Config, error) {
	if isLuaConfig(content) {
		return p.luaParser.Parse(content)
	}
	return p.yamlParser.Parse(content)
}

// luaConfigPattern matches "panel.config" followed by optional whitespace and "="
// at the start of a line, so a YAML comment mentioning it does not count.
var luaConfigPattern = regexp.MustCompile(`(?m)^\s*panel\.config\s*=`)

// isLuaConfig determines if the content is a Lua configuration.
func isLuaConfig(content []byte) bool {
	return luaConfigPattern.Match(content)
}

// DetectFormat returns FormatLua or FormatYAML for content.
func DetectFormat(content []byte) string {
	if isLuaConfig(content) {
		return FormatLua
	}
	return FormatYAML
}

// ParseFromFS reads and parses a configuration file from an embedded filesystem.
// It auto-detects the format based on content.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Config, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS %s: %w", path, err)
	}

	return p.Parse(content)
}

// ParseReader parses configuration from an io.Reader.
// The format parameter must be "lua", "yaml" or "" to auto-detect.
func (p *Parser) ParseReader(r io.Reader, format string) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch format {
	case FormatLua:
		return p.luaParser.Parse(content)
	case FormatYAML, "yml":
		return p.yamlParser.Parse(content)
	case "":
		return p.Parse(content)
	default:
		return nil, fmt.Errorf("unknown format: %s (expected 'lua' or 'yaml')", format)
	}
}

// Close releases resources associated with the parser.
func (p *Parser) Close() error {
	if p.luaParser != nil {
		return p.luaParser.Close()
	}
	return nil
}
