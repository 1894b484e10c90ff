package widget

import (
	"fmt"

	"github.com/opd-ai/go-proppanel/internal/gradient"
)

// GradientImage is a gradient-filled background strip: the gradient plus the
// raster handed to the renderer. The raster is built once and replaced only
// when the gradient is.
type GradientImage struct {
	BaseFrame
	Name     string
	gradient gradient.Gradient
	raster   *gradient.Raster
}

// NewGradientImage builds the raster for g. name is the style name used to
// look up border radius and similar properties.
func NewGradientImage(g gradient.Gradient, height float64, name string) *GradientImage {
	return &GradientImage{
		BaseFrame: NewBaseFrame(0, height),
		Name:      name,
		gradient:  g,
		raster:    gradient.BuildRaster(g),
	}
}

// Gradient returns the displayed gradient.
func (gi *GradientImage) Gradient() gradient.Gradient { return gi.gradient }

// Raster returns the cached raster.
func (gi *GradientImage) Raster() *gradient.Raster { return gi.raster }

// SetGradient swaps in a new gradient and rebuilds the raster. An identical
// gradient keeps the existing raster.
func (gi *GradientImage) SetGradient(g gradient.Gradient) {
	if g.Equal(gi.gradient) {
		return
	}
	gi.gradient = g
	gi.raster = gradient.BuildRaster(g)
}

// FloatSlider is a labelled float slider drawn over a gradient background,
// with a changed/default indicator and restore-to-default on click.
type FloatSlider struct {
	BaseFrame
	Label      string
	Min        float64
	Max        float64
	Default    float64
	Background *GradientImage
	Indicator  *Indicator

	model *FloatModel
}

// NewFloatSlider creates a slider over [minVal, maxVal] holding def.
// It returns an error if the range is empty or def lies outside it.
func NewFloatSlider(label string, def, minVal, maxVal float64, background gradient.Gradient) (*FloatSlider, error) {
	if !(maxVal > minVal) {
		return nil, fmt.Errorf("slider %q: invalid range [%v, %v]", label, minVal, maxVal)
	}
	if def < minVal || def > maxVal {
		return nil, fmt.Errorf("slider %q: default %v outside [%v, %v]", label, def, minVal, maxVal)
	}

	s := &FloatSlider{
		BaseFrame:  NewBaseFrame(0, 22),
		Label:      label,
		Min:        minVal,
		Max:        maxVal,
		Default:    def,
		Background: NewGradientImage(background, 22, "button_background_gradient"),
		Indicator:  NewIndicator(),
		model:      NewValueModel(def),
	}
	s.model.Subscribe(func(v float64) {
		s.Indicator.Set(v != s.Default)
	})
	s.Indicator.OnRestore(s.RestoreDefault)
	return s, nil
}

// Model returns the slider's value model.
func (s *FloatSlider) Model() *FloatModel { return s.model }

// Value returns the current value.
func (s *FloatSlider) Value() float64 { return s.model.Value() }

// SetValue stores v clamped to [Min, Max].
func (s *FloatSlider) SetValue(v float64) {
	s.model.SetValue(clamp(v, s.Min, s.Max))
}

// Fraction returns the value's position in [0, 1].
func (s *FloatSlider) Fraction() float64 {
	return (s.model.Value() - s.Min) / (s.Max - s.Min)
}

// SetFraction sets the value from a position along the track.
func (s *FloatSlider) SetFraction(f float64) {
	s.SetValue(s.Min + clamp(f, 0, 1)*(s.Max-s.Min))
}

// RestoreDefault puts the default value back.
func (s *FloatSlider) RestoreDefault() {
	s.model.SetValue(s.Default)
}

// SliderHandle is a circular handle dragged along a gradient strip. The handle
// is filled with the gradient color under its current offset.
type SliderHandle struct {
	BaseFrame
	Strip      *GradientImage
	HandleSize float64

	offset   float64
	fill     gradient.Color
	onChange func(gradient.Color)
}

// DefaultHandleSize is the diameter of a slider handle.
const DefaultHandleSize = 15

// NewSliderHandle creates a handle over g on a track of trackWidth. Before the
// first drag the handle is filled with the first stop.
func NewSliderHandle(g gradient.Gradient, trackWidth float64) *SliderHandle {
	strip := NewGradientImage(g, 8, "gradient_slider")
	strip.SetSize(trackWidth, strip.Height())
	return &SliderHandle{
		BaseFrame:  NewBaseFrame(trackWidth, DefaultHandleSize),
		Strip:      strip,
		HandleSize: DefaultHandleSize,
		fill:       g.First(),
	}
}

// MaxOffset is the furthest the handle can travel: the track width minus the
// handle width.
func (h *SliderHandle) MaxOffset() float64 {
	return h.Width() - h.HandleSize
}

// Offset returns the handle position after clamping.
func (h *SliderHandle) Offset() float64 { return h.offset }

// Fill returns the handle's current color.
func (h *SliderHandle) Fill() gradient.Color { return h.fill }

// Gradient returns the gradient under the handle.
func (h *SliderHandle) Gradient() gradient.Gradient { return h.Strip.Gradient() }

// OnColorChanged registers fn to receive the fill after every drag.
func (h *SliderHandle) OnColorChanged(fn func(gradient.Color)) { h.onChange = fn }

// Drag moves the handle to offset, clamped into [0, MaxOffset], and refills it
// from the gradient. It returns the new fill.
func (h *SliderHandle) Drag(offset float64) gradient.Color {
	maxOffset := h.MaxOffset()
	if maxOffset <= 0 {
		// Track no wider than the handle: nothing to slide along.
		h.offset = 0
		h.fill = h.Gradient().First()
	} else {
		h.offset = clamp(offset, 0, maxOffset)
		h.fill = gradient.MapValueToColor(h.offset, maxOffset, h.Gradient())
	}
	if h.onChange != nil {
		h.onChange(h.fill)
	}
	return h.fill
}

// SetGradient replaces the gradient and recolors the handle at its current
// offset.
func (h *SliderHandle) SetGradient(g gradient.Gradient) {
	h.Strip.SetGradient(g)
	h.Drag(h.offset)
}

// SetSize resizes the track and re-clamps the handle.
func (h *SliderHandle) SetSize(width, height float64) {
	h.BaseFrame.SetSize(width, height)
	h.Strip.SetSize(width, h.Strip.Height())
	h.Drag(h.offset)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
