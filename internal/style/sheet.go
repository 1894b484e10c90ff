package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/opd-ai/go-proppanel/internal/gradient"
)

// ErrInvalidSelector is returned for selectors that are not of the form
// Kind, Kind::name or Kind::name:state.
var ErrInvalidSelector = errors.New("invalid style selector")

// Selector addresses a set of widgets: every widget of Kind, optionally
// narrowed to a style name and an interaction state such as "hovered".
type Selector struct {
	Kind  string
	Name  string
	State string
}

// ParseSelector parses "Kind", "Kind::name" or "Kind::name:state".
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("%w: empty", ErrInvalidSelector)
	}

	kind, rest, hasName := strings.Cut(s, "::")
	sel := Selector{Kind: kind}
	if hasName {
		name, state, hasState := strings.Cut(rest, ":")
		if name == "" || (hasState && state == "") {
			return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
		}
		sel.Name = name
		sel.State = state
	}
	if sel.Kind == "" || strings.ContainsAny(sel.Kind, ": ") || strings.ContainsAny(sel.Name+sel.State, ": ") {
		return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
	return sel, nil
}

// MustParseSelector is ParseSelector for literals.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// String formats the selector back into its textual form.
func (s Selector) String() string {
	switch {
	case s.Name == "":
		return s.Kind
	case s.State == "":
		return s.Kind + "::" + s.Name
	default:
		return s.Kind + "::" + s.Name + ":" + s.State
	}
}

// specificity orders selectors from broadest to narrowest.
func (s Selector) specificity() int {
	n := 0
	if s.Name != "" {
		n++
	}
	if s.State != "" {
		n++
	}
	return n
}

// ValueKind tags the type held in a Value.
type ValueKind int

const (
	// KindNumber is a float property such as border_radius.
	KindNumber ValueKind = iota
	// KindColor is a packed color property.
	KindColor
	// KindString is free text, e.g. an image url or alignment name.
	KindString
)

// Value is a single style property value.
type Value struct {
	Kind  ValueKind
	Num   float64
	Color gradient.Color
	Str   string
}

// Num returns a numeric Value.
func Num(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Col returns a color Value.
func Col(c gradient.Color) Value { return Value{Kind: KindColor, Color: c} }

// Str returns a string Value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// ParseValue converts a raw config value into a Value. Properties whose name
// ends in "color" are parsed as colors, from either a color string or a packed
// integer.
func ParseValue(property string, raw any) (Value, error) {
	isColor := strings.HasSuffix(property, "color")
	switch v := raw.(type) {
	case string:
		if isColor {
			c, err := ParseColor(v)
			if err != nil {
				return Value{}, fmt.Errorf("property %s: %w", property, err)
			}
			return Col(c), nil
		}
		return Str(v), nil
	case int:
		return numberValue(isColor, float64(v), uint32(v)), nil
	case int64:
		return numberValue(isColor, float64(v), uint32(v)), nil
	case float64:
		return numberValue(isColor, v, uint32(v)), nil
	case bool:
		if v {
			return Num(1), nil
		}
		return Num(0), nil
	default:
		return Value{}, fmt.Errorf("property %s: unsupported value type %T", property, raw)
	}
}

func numberValue(isColor bool, f float64, packed uint32) Value {
	if isColor {
		return Col(gradient.Color(packed))
	}
	return Num(f)
}

// Properties is a set of named style values.
type Properties map[string]Value

// Color returns a color property.
func (p Properties) Color(key string) (gradient.Color, bool) {
	v, ok := p[key]
	if !ok || v.Kind != KindColor {
		return 0, false
	}
	return v.Color, true
}

// ColorOr returns a color property or fallback.
func (p Properties) ColorOr(key string, fallback gradient.Color) gradient.Color {
	if c, ok := p.Color(key); ok {
		return c
	}
	return fallback
}

// Float returns a numeric property.
func (p Properties) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok || v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// FloatOr returns a numeric property or fallback.
func (p Properties) FloatOr(key string, fallback float64) float64 {
	if f, ok := p.Float(key); ok {
		return f
	}
	return fallback
}

// Text returns a string property.
func (p Properties) Text(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Sheet maps selectors to property sets. A Sheet is handed to the widgets that
// use it; there is no package-level style state.
type Sheet struct {
	rules map[Selector]Properties
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{rules: make(map[Selector]Properties)}
}

// Set merges props into the rule for sel.
func (s *Sheet) Set(sel Selector, props Properties) {
	rule, ok := s.rules[sel]
	if !ok {
		rule = make(Properties, len(props))
		s.rules[sel] = rule
	}
	for k, v := range props {
		rule[k] = v
	}
}

// SetString parses selector text and merges props into its rule.
func (s *Sheet) SetString(selector string, props Properties) error {
	sel, err := ParseSelector(selector)
	if err != nil {
		return err
	}
	s.Set(sel, props)
	return nil
}

// Rule returns a copy of the properties stored for exactly sel.
func (s *Sheet) Rule(sel Selector) (Properties, bool) {
	rule, ok := s.rules[sel]
	if !ok {
		return nil, false
	}
	out := make(Properties, len(rule))
	for k, v := range rule {
		out[k] = v
	}
	return out, true
}

// Len returns the number of rules.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// Selectors returns all selectors, broadest first and then alphabetically.
func (s *Sheet) Selectors() []Selector {
	out := make([]Selector, 0, len(s.rules))
	for sel := range s.rules {
		out = append(out, sel)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].specificity(), out[j].specificity()
		if si != sj {
			return si < sj
		}
		return out[i].String() < out[j].String()
	})
	return out
}

// Merge overlays other onto s. Properties in other win.
func (s *Sheet) Merge(other *Sheet) {
	if other == nil {
		return
	}
	for sel, props := range other.rules {
		s.Set(sel, props)
	}
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	out := NewSheet()
	out.Merge(s)
	return out
}

// Resolve computes the properties for a widget of kind with the given style
// name in state. Rules cascade from Kind to Kind::name to Kind::name:state,
// narrower rules overriding broader ones property by property.
func (s *Sheet) Resolve(kind, name, state string) Properties {
	out := make(Properties)
	chain := []Selector{{Kind: kind}}
	if name != "" {
		chain = append(chain, Selector{Kind: kind, Name: name})
		if state != "" {
			chain = append(chain, Selector{Kind: kind, Name: name, State: state})
		}
	}
	for _, sel := range chain {
		for k, v := range s.rules[sel] {
			out[k] = v
		}
	}
	return out
}
