package widget

import (
	"math"
	"strconv"
	"strings"

	"github.com/opd-ai/go-proppanel/internal/gradient"
)

// ColorField edits three float components in [0, 1], either as a color (R, G, B
// with a color swatch) or as a plain vector (X, Y, Z). Each component sits on
// its own channel gradient.
type ColorField struct {
	BaseFrame
	Label       string
	Defaults    [3]float64
	ColorPicker bool
	Channels    [3]*GradientImage
	Indicator   *Indicator

	components [3]*FloatModel
}

// NewColorField creates a field holding defaults. colorPicker selects the R/G/B
// presentation with a swatch over the X/Y/Z one.
func NewColorField(label string, defaults [3]float64, colorPicker bool) *ColorField {
	cf := &ColorField{
		BaseFrame:   NewBaseFrame(0, 22),
		Label:       label,
		Defaults:    defaults,
		ColorPicker: colorPicker,
		Indicator:   NewIndicator(),
	}
	for i, name := range []string{gradient.PresetChannelRed, gradient.PresetChannelGreen, gradient.PresetChannelBlue} {
		cf.Channels[i] = NewGradientImage(gradient.MustPreset(name), 22, "button_background_gradient")
		cf.components[i] = NewValueModel(clamp(defaults[i], 0, 1))
		cf.components[i].Subscribe(func(float64) { cf.Indicator.Set(cf.Changed()) })
	}
	cf.Indicator.OnRestore(cf.RestoreDefault)
	return cf
}

// ComponentLabels returns the per-component captions.
func (cf *ColorField) ComponentLabels() [3]string {
	if cf.ColorPicker {
		return [3]string{"R", "G", "B"}
	}
	return [3]string{"X", "Y", "Z"}
}

// Component returns the model of component i.
func (cf *ColorField) Component(i int) *FloatModel { return cf.components[i] }

// Values returns the three components.
func (cf *ColorField) Values() [3]float64 {
	return [3]float64{cf.components[0].Value(), cf.components[1].Value(), cf.components[2].Value()}
}

// SetComponent stores v, clamped to [0, 1], in component i.
func (cf *ColorField) SetComponent(i int, v float64) {
	cf.components[i].SetValue(clamp(v, 0, 1))
}

// Changed reports whether any component differs from its default.
func (cf *ColorField) Changed() bool {
	for i, m := range cf.components {
		if m.Value() != cf.Defaults[i] {
			return true
		}
	}
	return false
}

// RestoreDefault puts every component back to its default.
func (cf *ColorField) RestoreDefault() {
	for i, m := range cf.components {
		m.SetValue(cf.Defaults[i])
	}
}

// Swatch returns the components as an opaque packed color.
func (cf *ColorField) Swatch() gradient.Color {
	v := cf.Values()
	return gradient.Pack(unitToByte(v[0]), unitToByte(v[1]), unitToByte(v[2]), 255)
}

func unitToByte(f float64) uint8 {
	return uint8(clamp(f, 0, 1)*255 + 0.5)
}

// Text renders the components as "r, g, b" using FormatComponent.
func (cf *ColorField) Text() string {
	v := cf.Values()
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = FormatComponent(f)
	}
	return strings.Join(parts, ", ")
}

// SetText parses comma separated components typed by the user. Components
// that fail to parse are skipped and keep their previous value; extra
// components are ignored.
func (cf *ColorField) SetText(s string) {
	for i, part := range strings.Split(s, ",") {
		if i >= len(cf.components) {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			// usually mid-typing; the next edit will complete the number
			continue
		}
		cf.SetComponent(i, v)
	}
}

// FormatComponent renders a component rounded to three decimals without
// trailing zeros, a trailing dot, or a single leading zero: 0.25 is ".25",
// 1.0 is "1" and 0 is "".
func FormatComponent(f float64) string {
	rounded := math.Round(f*1000) / 1000
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	return strings.TrimPrefix(s, "0")
}
