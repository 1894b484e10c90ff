// Package widget provides headless models for property-panel widgets: value
// models with change subscriptions, sliders with gradient-colored handles, and
// the changed/default indicators that track whether a value differs from its
// default.
//
// Everything in this package runs on the UI thread; none of the types are safe
// for concurrent use.
package widget

// MouseButton identifies a pointer button.
type MouseButton int

const (
	// MouseLeft is the primary button.
	MouseLeft MouseButton = iota
	// MouseRight is the secondary button.
	MouseRight
	// MouseMiddle is the wheel button.
	MouseMiddle
)

// MousePressedFn is invoked with the press position relative to the frame.
type MousePressedFn func(x, y float64, button MouseButton)

// Frame is the surface every compound widget exposes. Compound widgets embed a
// BaseFrame, so these members forward to the frame that hosts them.
type Frame interface {
	Width() float64
	Height() float64
	SetSize(width, height float64)
	Visible() bool
	SetVisible(visible bool)
	SetMousePressedFn(fn MousePressedFn)
	// Press delivers a mouse press to the frame. Hidden frames ignore it.
	Press(x, y float64, button MouseButton) bool
}

// BaseFrame is the default Frame implementation.
type BaseFrame struct {
	width   float64
	height  float64
	hidden  bool
	pressed MousePressedFn
}

// NewBaseFrame returns a visible frame of the given size.
func NewBaseFrame(width, height float64) BaseFrame {
	return BaseFrame{width: width, height: height}
}

// Width returns the frame width.
func (f *BaseFrame) Width() float64 { return f.width }

// Height returns the frame height.
func (f *BaseFrame) Height() float64 { return f.height }

// SetSize resizes the frame. Negative sizes are stored as zero.
func (f *BaseFrame) SetSize(width, height float64) {
	f.width = max(width, 0)
	f.height = max(height, 0)
}

// Visible reports whether the frame is shown.
func (f *BaseFrame) Visible() bool { return !f.hidden }

// SetVisible shows or hides the frame.
func (f *BaseFrame) SetVisible(visible bool) { f.hidden = !visible }

// SetMousePressedFn replaces the press callback; nil removes it.
func (f *BaseFrame) SetMousePressedFn(fn MousePressedFn) { f.pressed = fn }

// Press invokes the press callback. It reports whether a callback ran.
func (f *BaseFrame) Press(x, y float64, button MouseButton) bool {
	if f.hidden || f.pressed == nil {
		return false
	}
	f.pressed(x, y, button)
	return true
}

var _ Frame = (*BaseFrame)(nil)
