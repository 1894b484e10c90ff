package config

import "github.com/opd-ai/go-proppanel/internal/gradient"

// Default values for configuration options.
const (
	// DefaultTitle is the default window title.
	DefaultTitle = "Property Panel"
	// DefaultWidth is the default window width in pixels.
	DefaultWidth = 450
	// DefaultHeight is the default window height in pixels.
	DefaultHeight = 900
	// DefaultLabelWidth is the default width of the label column.
	DefaultLabelWidth = 120
	// DefaultSliderGradient is the background of sliders that name none.
	DefaultSliderGradient = gradient.PresetButton
)

// DefaultConfig returns a Config describing the stock light properties panel.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			X:      -1,
			Y:      -1,
		},
		Panel: PanelConfig{
			LabelWidth: DefaultLabelWidth,
			Sections:   defaultSections(),
		},
	}
}

// DefaultWindowConfig returns a WindowConfig with default values.
func DefaultWindowConfig() WindowConfig {
	return DefaultConfig().Window
}

func slider(label string, def, minVal, maxVal float64) AttributeConfig {
	return AttributeConfig{Kind: KindSlider, Label: label, Default: def, Min: minVal, Max: maxVal, Gradient: DefaultSliderGradient}
}

func defaultSections() []SectionConfig {
	temperature := slider("Color Temperature", 6500, 1000, 10000)
	temperature.Handles = []string{gradient.PresetTemperature}

	return []SectionConfig{
		{
			Title: "TRANSFORMS",
			Attributes: []AttributeConfig{
				{Kind: KindVector, Label: "Position"},
				{Kind: KindVector, Label: "Rotation"},
				{Kind: KindVector, Label: "Scale", Components: [3]float64{1, 1, 1}},
			},
		},
		{
			Title: "LIGHT PROPERTIES",
			Attributes: []AttributeConfig{
				{Kind: KindCombo, Label: "Type", Options: []string{"Sphere Light", "Disk Light", "Rect Light"}},
				{
					Kind:       KindColor,
					Label:      "Color",
					Components: [3]float64{1, 1, 1},
					Handles:    []string{gradient.PresetColor, gradient.PresetTint, gradient.PresetGrey},
				},
				temperature,
				slider("Diffuse Multiplier", 0, 0, 1),
				slider("Exposure", 0, 0, 1),
				slider("Intensity", 3000, 0, 6000),
				{Kind: KindCheckbox, Label: "Normalize Power"},
				{Kind: KindCombo, Label: "Purpose", Options: []string{"Default", "Customized"}},
				slider("Radius", 0, 0, 1),
				slider("Specular Multiplier", 0, 0, 1),
				{Kind: KindCheckbox, Label: "Treat As Point", Checked: true},
			},
		},
		{
			Title:     "SHAPING",
			Collapsed: true,
			Attributes: []AttributeConfig{
				slider("Cone Angle", 0, 0, 1),
				slider("Cone Softness", 0, 0, 1),
				slider("Focus", 0, 0, 1),
				{Kind: KindRadio, Label: "Falloff", Options: []string{"Inverse Square", "Linear", "None"}},
				{
					Kind:       KindColor,
					Label:      "Focus Tint",
					Components: [3]float64{1, 1, 1},
					Handles:    []string{gradient.PresetColor, gradient.PresetTint, gradient.PresetGrey},
				},
			},
		},
	}
}
