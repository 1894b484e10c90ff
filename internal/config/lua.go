// Package config provides configuration parsing for go-proppanel.
// This file implements the Lua configuration parser.

package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// LuaConfigParser parses Lua configuration scripts. The script fills the
// panel.config, panel.sections, panel.gradients and panel.style tables, which
// are read back once it has run.
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaConfigParser creates a new LuaConfigParser with a fresh Lua runtime.
func NewLuaConfigParser() (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard)
}

// NewLuaConfigParserWithOutput creates a LuaConfigParser whose print output
// goes to stdout.
func NewLuaConfigParserWithOutput(stdout io.Writer) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaConfigParser{
		runtime: runtime,
		cleanup: cleanup,
	}, nil
}

// Parse executes a Lua configuration and extracts the panel tables. A script
// that exceeds the CPU or memory limit returns an error.
func (p *LuaConfigParser) Parse(content []byte) (cfg *Config, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// golua enforces hard limits by panicking out of the running chunk
	defer func() {
		if r := recover(); r != nil {
			cfg, err = nil, fmt.Errorf("lua resource limit: %v", r)
		}
	}()

	p.initPanelGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	// Execute with resource limits
	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024, // 50 MB
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	thread := p.runtime.MainThread()
	if _, err := rt.Call1(thread, rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute Lua configuration: %w", err)
	}

	return p.extractConfig()
}

// initPanelGlobal resets the panel global table before each run.
func (p *LuaConfigParser) initPanelGlobal() {
	panel := rt.NewTable()
	for _, key := range []string{"config", "gradients", "style"} {
		panel.Set(rt.StringValue(key), rt.TableValue(rt.NewTable()))
	}
	p.runtime.GlobalEnv().Set(rt.StringValue("panel"), rt.TableValue(panel))
}

// extractConfig extracts configuration values from the panel global table.
func (p *LuaConfigParser) extractConfig() (*Config, error) {
	cfg := DefaultConfig()

	panelVal := p.runtime.GlobalEnv().Get(rt.StringValue("panel"))
	if panelVal == rt.NilValue {
		return &cfg, nil
	}
	panel, ok := panelVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("panel is not a table")
	}

	if t, ok := panel.Get(rt.StringValue("config")).TryTable(); ok {
		if err := extractConfigTable(&cfg, t); err != nil {
			return nil, err
		}
	}

	if sectionsVal := panel.Get(rt.StringValue("sections")); sectionsVal != rt.NilValue {
		t, ok := sectionsVal.TryTable()
		if !ok {
			return nil, fmt.Errorf("panel.sections is not a table")
		}
		sections, err := extractSections(t)
		if err != nil {
			return nil, err
		}
		cfg.Panel.Sections = sections
	}

	if t, ok := panel.Get(rt.StringValue("gradients")).TryTable(); ok {
		gradients, err := extractGradients(t)
		if err != nil {
			return nil, err
		}
		cfg.Gradients = gradients
	}

	if t, ok := panel.Get(rt.StringValue("style")).TryTable(); ok {
		st, err := extractStyle(t)
		if err != nil {
			return nil, err
		}
		cfg.Style = st
	}

	return &cfg, nil
}

// extractConfigTable extracts window and panel settings from panel.config.
func extractConfigTable(cfg *Config, table *rt.Table) error {
	if val := getTableString(table, "title"); val != nil {
		cfg.Window.Title = *val
	}
	if val := getTableInt(table, "width"); val != nil {
		cfg.Window.Width = *val
	}
	if val := getTableInt(table, "height"); val != nil {
		cfg.Window.Height = *val
	}
	if val := getTableInt(table, "x"); val != nil {
		cfg.Window.X = *val
	}
	if val := getTableInt(table, "y"); val != nil {
		cfg.Window.Y = *val
	}
	if val := getTableFloat(table, "label_width"); val != nil {
		cfg.Panel.LabelWidth = *val
	}

	// Hints are a comma-separated string or an array of names.
	if val := getTableString(table, "hints"); val != nil {
		hints, err := parseWindowHints(*val)
		if err != nil {
			return fmt.Errorf("invalid hints: %w", err)
		}
		cfg.Window.Hints = hints
	} else if names := getTableStrings(table, "hints"); names != nil {
		for _, name := range names {
			h, err := ParseWindowHint(name)
			if err != nil {
				return fmt.Errorf("invalid hints: %w", err)
			}
			cfg.Window.Hints = append(cfg.Window.Hints, h)
		}
	}
	return nil
}

func extractSections(table *rt.Table) ([]SectionConfig, error) {
	var sections []SectionConfig
	var err error
	forEachArray(table, func(i int, v rt.Value) bool {
		t, ok := v.TryTable()
		if !ok {
			err = fmt.Errorf("panel.sections[%d] is not a table", i)
			return false
		}
		spec := sectionSpec{}
		if s := getTableString(t, "title"); s != nil {
			spec.Title = *s
		}
		if b := getTableBool(t, "collapsed"); b != nil {
			spec.Collapsed = *b
		}
		if attrs, ok := t.Get(rt.StringValue("attributes")).TryTable(); ok {
			forEachArray(attrs, func(j int, av rt.Value) bool {
				at, ok := av.TryTable()
				if !ok {
					err = fmt.Errorf("panel.sections[%d].attributes[%d] is not a table", i, j)
					return false
				}
				spec.Attributes = append(spec.Attributes, attributeSpecFromTable(at))
				return true
			})
			if err != nil {
				return false
			}
		}
		var sec SectionConfig
		sec, err = spec.build()
		if err != nil {
			return false
		}
		sections = append(sections, sec)
		return true
	})
	return sections, err
}

func attributeSpecFromTable(t *rt.Table) attributeSpec {
	spec := attributeSpec{
		Default:    getTableFloat(t, "default"),
		Min:        getTableFloat(t, "min"),
		Max:        getTableFloat(t, "max"),
		Options:    getTableStrings(t, "options"),
		Handles:    getTableStrings(t, "handles"),
		Components: getTableFloats(t, "components"),
	}
	if s := getTableString(t, "kind"); s != nil {
		spec.Kind = *s
	}
	if s := getTableString(t, "label"); s != nil {
		spec.Label = *s
	}
	if s := getTableString(t, "gradient"); s != nil {
		spec.Gradient = *s
	}
	if b := getTableBool(t, "checked"); b != nil {
		spec.Checked = *b
	}
	// Lua arrays are 1-based.
	if n := getTableInt(t, "selected"); n != nil {
		spec.Selected = *n - 1
	}
	return spec
}

func extractGradients(table *rt.Table) (map[string][]string, error) {
	gradients := make(map[string][]string)
	var err error
	forEachPair(table, func(key string, v rt.Value) bool {
		t, ok := v.TryTable()
		if !ok {
			err = fmt.Errorf("panel.gradients.%s is not a table", key)
			return false
		}
		gradients[key] = arrayStrings(t)
		return true
	})
	return gradients, err
}

func extractStyle(table *rt.Table) (map[string]map[string]any, error) {
	st := make(map[string]map[string]any)
	var err error
	forEachPair(table, func(selector string, v rt.Value) bool {
		t, ok := v.TryTable()
		if !ok {
			err = fmt.Errorf("panel.style[%q] is not a table", selector)
			return false
		}
		props := make(map[string]any)
		forEachPair(t, func(key string, pv rt.Value) bool {
			props[key] = luaScalar(pv)
			return true
		})
		st[selector] = props
		return true
	})
	return st, err
}

// luaScalar converts a Lua scalar to its Go counterpart. Other values become
// nil and are rejected by style value parsing.
func luaScalar(v rt.Value) any {
	if n, ok := v.TryInt(); ok {
		return n
	}
	if f, ok := v.TryFloat(); ok {
		return f
	}
	if s, ok := v.TryString(); ok {
		return s
	}
	if b, ok := v.TryBool(); ok {
		return b
	}
	return nil
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// forEachArray calls fn for t[1], t[2], ... until the first nil or until fn
// returns false. The index passed to fn is 0-based.
func forEachArray(t *rt.Table, fn func(i int, v rt.Value) bool) {
	for i := int64(1); ; i++ {
		v := t.Get(rt.IntValue(i))
		if v == rt.NilValue || !fn(int(i-1), v) {
			return
		}
	}
}

// forEachPair calls fn for every string-keyed entry of t.
func forEachPair(t *rt.Table, fn func(key string, v rt.Value) bool) {
	k := rt.NilValue
	for {
		next, v, ok := t.Next(k)
		if !ok || next == rt.NilValue {
			return
		}
		k = next
		key, isString := next.TryString()
		if !isString {
			continue
		}
		if !fn(key, v) {
			return
		}
	}
}

func arrayStrings(t *rt.Table) []string {
	var out []string
	forEachArray(t, func(_ int, v rt.Value) bool {
		if s, ok := v.TryString(); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}

// getTableBool retrieves a boolean value from a Lua table.
// Returns nil if the key doesn't exist or is not a boolean.
func getTableBool(table *rt.Table, key string) *bool {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if b, ok := val.TryBool(); ok {
		return &b
	}

	// Handle string "true"/"false" for compatibility
	if s, ok := val.TryString(); ok {
		b := s == "true" || s == "yes" || s == "1"
		return &b
	}

	return nil
}

// getTableString retrieves a string value from a Lua table.
// Returns nil if the key doesn't exist or is not a string.
func getTableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if s, ok := val.TryString(); ok {
		return &s
	}

	return nil
}

// getTableStrings retrieves an array of strings from a Lua table.
// Returns nil if the key doesn't exist or is not a table.
func getTableStrings(table *rt.Table, key string) []string {
	t, ok := table.Get(rt.StringValue(key)).TryTable()
	if !ok {
		return nil
	}
	return arrayStrings(t)
}

// getTableFloats retrieves an array of numbers from a Lua table.
func getTableFloats(table *rt.Table, key string) []float64 {
	t, ok := table.Get(rt.StringValue(key)).TryTable()
	if !ok {
		return nil
	}
	var out []float64
	forEachArray(t, func(_ int, v rt.Value) bool {
		if f, ok := v.TryFloat(); ok {
			out = append(out, f)
		} else if n, ok := v.TryInt(); ok {
			out = append(out, float64(n))
		}
		return true
	})
	return out
}

// getTableFloat retrieves a float64 value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryFloat(); ok {
		return &n
	}

	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}

	return nil
}

// getTableInt retrieves an int value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryInt(); ok {
		i := int(n)
		return &i
	}

	// Try float conversion (truncate)
	if f, ok := val.TryFloat(); ok {
		i := int(f)
		return &i
	}

	return nil
}
