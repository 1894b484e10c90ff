package widget

// CollapsableFrame is a titled section whose body can be folded away.
type CollapsableFrame struct {
	BaseFrame
	Title string

	collapsed *BoolModel
}

// HeaderHeight is the height of a section header.
const HeaderHeight = 29

// NewCollapsableFrame creates a section, initially collapsed or not.
func NewCollapsableFrame(title string, collapsed bool) *CollapsableFrame {
	cf := &CollapsableFrame{
		BaseFrame: NewBaseFrame(0, HeaderHeight),
		Title:     title,
		collapsed: NewValueModel(collapsed),
	}
	cf.SetMousePressedFn(func(float64, float64, MouseButton) { cf.Toggle() })
	return cf
}

// Collapsed reports whether the body is hidden.
func (cf *CollapsableFrame) Collapsed() bool { return cf.collapsed.Value() }

// SetCollapsed folds or unfolds the body.
func (cf *CollapsableFrame) SetCollapsed(c bool) { cf.collapsed.SetValue(c) }

// Toggle flips the collapsed state.
func (cf *CollapsableFrame) Toggle() { cf.collapsed.SetValue(!cf.collapsed.Value()) }

// OnCollapsedChanged subscribes to collapse changes.
func (cf *CollapsableFrame) OnCollapsedChanged(fn func(collapsed bool)) (cancel func()) {
	return cf.collapsed.Subscribe(fn)
}

// HeaderImage returns the arrow image for the header. The names follow the
// icon set: a collapsed section shows the "opened" arrow, inviting a click to
// open it.
func (cf *CollapsableFrame) HeaderImage() string {
	if cf.Collapsed() {
		return ImageCollapsableOpened
	}
	return ImageCollapsableClosed
}
