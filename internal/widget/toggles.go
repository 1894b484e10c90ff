package widget

// Image names used by toggle widgets; the renderer draws each name differently.
const (
	ImageChecked           = "checked"
	ImageUnchecked         = "unchecked"
	ImageRadioOn           = "radio_on"
	ImageRadioOff          = "radio_off"
	ImageCollapsableOpened = "collapsable_opened"
	ImageCollapsableClosed = "collapsable_closed"
)

// Checkbox is a boolean attribute row.
type Checkbox struct {
	BaseFrame
	Label     string
	Default   bool
	Indicator *Indicator

	model *BoolModel
}

// NewCheckbox creates a checkbox holding def.
func NewCheckbox(label string, def bool) *Checkbox {
	c := &Checkbox{
		BaseFrame: NewBaseFrame(18, 18),
		Label:     label,
		Default:   def,
		Indicator: NewIndicator(),
		model:     NewValueModel(def),
	}
	c.model.Subscribe(func(v bool) {
		c.Indicator.Set(v != c.Default)
	})
	c.SetMousePressedFn(func(float64, float64, MouseButton) { c.Toggle() })
	c.Indicator.OnRestore(c.RestoreDefault)
	return c
}

// Model returns the checkbox model.
func (c *Checkbox) Model() *BoolModel { return c.model }

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return c.model.Value() }

// Toggle flips the state.
func (c *Checkbox) Toggle() { c.model.SetValue(!c.model.Value()) }

// RestoreDefault puts the default state back.
func (c *Checkbox) RestoreDefault() { c.model.SetValue(c.Default) }

// ImageName returns the image drawn for the current state.
func (c *Checkbox) ImageName() string {
	if c.Checked() {
		return ImageChecked
	}
	return ImageUnchecked
}

// ComboBox is a drop-down attribute row. The first option is the default.
type ComboBox struct {
	BaseFrame
	Label     string
	Options   []string
	Indicator *Indicator

	model *IntModel
}

// NewComboBox creates a combo box with the first option selected.
func NewComboBox(label string, options ...string) *ComboBox {
	opts := make([]string, len(options))
	copy(opts, options)
	cb := &ComboBox{
		BaseFrame: NewBaseFrame(0, 35),
		Label:     label,
		Options:   opts,
		Indicator: NewIndicator(),
		model:     NewValueModel(0),
	}
	cb.model.Subscribe(func(i int) {
		cb.Indicator.Set(i != 0)
	})
	cb.Indicator.OnRestore(cb.RestoreDefault)
	return cb
}

// Model returns the selected-index model.
func (cb *ComboBox) Model() *IntModel { return cb.model }

// Selected returns the selected index.
func (cb *ComboBox) Selected() int { return cb.model.Value() }

// SelectedText returns the selected option, or "" when there are none.
func (cb *ComboBox) SelectedText() string {
	i := cb.model.Value()
	if i < 0 || i >= len(cb.Options) {
		return ""
	}
	return cb.Options[i]
}

// Select picks option i. Out-of-range indexes are ignored.
func (cb *ComboBox) Select(i int) {
	if i < 0 || i >= len(cb.Options) {
		return
	}
	cb.model.SetValue(i)
}

// Next selects the following option, wrapping around.
func (cb *ComboBox) Next() {
	if len(cb.Options) == 0 {
		return
	}
	cb.Select((cb.Selected() + 1) % len(cb.Options))
}

// RestoreDefault selects the first option.
func (cb *ComboBox) RestoreDefault() { cb.model.SetValue(0) }

// RadioCollection is a titled group of mutually exclusive options.
type RadioCollection struct {
	BaseFrame
	GroupName string
	Labels    []string
	Default   int

	model  *IntModel
	images []string
}

// NewRadioCollection creates a group with def selected.
func NewRadioCollection(group string, labels []string, def int) *RadioCollection {
	rc := &RadioCollection{
		BaseFrame: NewBaseFrame(0, float64(len(labels))*16),
		GroupName: group,
		Labels:    append([]string(nil), labels...),
		Default:   def,
		model:     NewValueModel(def),
		images:    make([]string, len(labels)),
	}
	rc.refresh(def)
	rc.model.Subscribe(rc.refresh)
	return rc
}

func (rc *RadioCollection) refresh(selected int) {
	for i := range rc.images {
		if i == selected {
			rc.images[i] = ImageRadioOn
		} else {
			rc.images[i] = ImageRadioOff
		}
	}
}

// Model returns the selected-index model.
func (rc *RadioCollection) Model() *IntModel { return rc.model }

// Selected returns the selected index.
func (rc *RadioCollection) Selected() int { return rc.model.Value() }

// Select picks option i. Out-of-range indexes are ignored.
func (rc *RadioCollection) Select(i int) {
	if i < 0 || i >= len(rc.Labels) {
		return
	}
	rc.model.SetValue(i)
}

// ImageName returns the image drawn for option i.
func (rc *RadioCollection) ImageName(i int) string {
	return rc.images[i]
}
