package widget

// Indicator is the pair of rectangles shown at the end of an attribute row: a
// large "changed" rectangle while the value differs from its default and a small
// "default" dot otherwise. Exactly one of the two is visible.
type Indicator struct {
	Changed BaseFrame
	Default BaseFrame
}

// Indicator rectangle sizes.
const (
	ChangedSize = 15
	DefaultSize = 5
)

// NewIndicator returns an indicator in the default state.
func NewIndicator() *Indicator {
	ind := &Indicator{
		Changed: NewBaseFrame(ChangedSize, ChangedSize),
		Default: NewBaseFrame(DefaultSize, DefaultSize),
	}
	ind.Set(false)
	return ind
}

// Set switches the visible rectangle.
func (ind *Indicator) Set(changed bool) {
	ind.Changed.SetVisible(changed)
	ind.Default.SetVisible(!changed)
}

// IsChanged reports whether the changed rectangle is showing.
func (ind *Indicator) IsChanged() bool {
	return ind.Changed.Visible()
}

// OnRestore makes a press on the changed rectangle call restore.
func (ind *Indicator) OnRestore(restore func()) {
	ind.Changed.SetMousePressedFn(func(float64, float64, MouseButton) {
		restore()
	})
}

// PressChanged delivers a press to the changed rectangle.
func (ind *Indicator) PressChanged() bool {
	return ind.Changed.Press(0, 0, MouseLeft)
}
