package config

import "fmt"

// attributeSpec is an attribute row as written in a configuration file, before
// defaults are applied. Both the Lua and the YAML parser fill one.
type attributeSpec struct {
	Kind       string    `yaml:"kind"`
	Label      string    `yaml:"label"`
	Default    *float64  `yaml:"default"`
	Min        *float64  `yaml:"min"`
	Max        *float64  `yaml:"max"`
	Gradient   string    `yaml:"gradient"`
	Checked    bool      `yaml:"checked"`
	Options    []string  `yaml:"options"`
	Selected   int       `yaml:"selected"`
	Components []float64 `yaml:"components"`
	Handles    []string  `yaml:"handles"`
}

// sectionSpec is a section as written in a configuration file.
type sectionSpec struct {
	Title      string          `yaml:"title"`
	Collapsed  bool            `yaml:"collapsed"`
	Attributes []attributeSpec `yaml:"attributes"`
}

func (s sectionSpec) build() (SectionConfig, error) {
	sec := SectionConfig{Title: s.Title, Collapsed: s.Collapsed}
	for i, as := range s.Attributes {
		attr, err := as.build()
		if err != nil {
			return SectionConfig{}, fmt.Errorf("section %q attribute %d: %w", s.Title, i, err)
		}
		sec.Attributes = append(sec.Attributes, attr)
	}
	return sec, nil
}

// build applies defaults: sliders span [0, 1] over the button gradient and
// start at their minimum; color fields start white and vectors at the origin.
func (s attributeSpec) build() (AttributeConfig, error) {
	kind, err := ParseAttributeKind(s.Kind)
	if err != nil {
		return AttributeConfig{}, err
	}

	attr := AttributeConfig{
		Kind:     kind,
		Label:    s.Label,
		Gradient: s.Gradient,
		Checked:  s.Checked,
		Options:  s.Options,
		Selected: s.Selected,
		Handles:  s.Handles,
	}

	if kind == KindSlider {
		attr.Min, attr.Max = 0, 1
		if s.Min != nil {
			attr.Min = *s.Min
		}
		if s.Max != nil {
			attr.Max = *s.Max
		}
		attr.Default = attr.Min
		if s.Default != nil {
			attr.Default = *s.Default
		}
		if attr.Gradient == "" {
			attr.Gradient = DefaultSliderGradient
		}
	}

	switch len(s.Components) {
	case 0:
		if kind == KindColor {
			attr.Components = [3]float64{1, 1, 1}
		}
	case 3:
		copy(attr.Components[:], s.Components)
	default:
		return AttributeConfig{}, fmt.Errorf("%q: want 3 components, got %d", s.Label, len(s.Components))
	}
	return attr, nil
}
