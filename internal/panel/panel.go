// Package panel builds a property panel from a configuration and handles its
// layout, hit-testing and pointer/keyboard dispatch. It has no graphics
// dependency: the render package draws what Rows reports and feeds input back
// through Press, DragTo, Release and the text editing methods.
package panel

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/opd-ai/go-proppanel/internal/config"
	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/style"
	"github.com/opd-ai/go-proppanel/internal/widget"
)

// RowKind identifies what a row holds.
type RowKind int

// Row kinds.
const (
	RowHeader RowKind = iota
	RowSlider
	RowCheckbox
	RowCombo
	RowColor
	RowVector
	RowRadio
	RowHandle
)

// String returns the name of the row kind.
func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowSlider:
		return "slider"
	case RowCheckbox:
		return "checkbox"
	case RowCombo:
		return "combo"
	case RowColor:
		return "color"
	case RowVector:
		return "vector"
	case RowRadio:
		return "radio"
	case RowHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in panel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Row is one laid-out line of the panel. Exactly one of the widget fields is
// set, matching Kind.
type Row struct {
	Kind    RowKind
	Label   string
	Section *Section

	Header   *widget.CollapsableFrame
	Slider   *widget.FloatSlider
	Checkbox *widget.Checkbox
	Combo    *widget.ComboBox
	Color    *widget.ColorField
	Radio    *widget.RadioCollection
	Handle   *widget.SliderHandle

	// Owner is the attribute row a handle row belongs to.
	Owner *Row

	// Bounds, LabelBounds, WidgetBounds and IndicatorBounds are valid after
	// Layout.
	Bounds          Rect
	LabelBounds     Rect
	WidgetBounds    Rect
	IndicatorBounds Rect
}

// Indicator returns the row's changed/default indicator, or nil for rows
// without one.
func (r *Row) Indicator() *widget.Indicator {
	switch {
	case r.Slider != nil:
		return r.Slider.Indicator
	case r.Checkbox != nil:
		return r.Checkbox.Indicator
	case r.Combo != nil:
		return r.Combo.Indicator
	case r.Color != nil:
		return r.Color.Indicator
	}
	return nil
}

// Value renders the row's current value as text.
func (r *Row) Value() string {
	switch r.Kind {
	case RowSlider:
		return strconv.FormatFloat(r.Slider.Value(), 'f', -1, 64)
	case RowCheckbox:
		return strconv.FormatBool(r.Checkbox.Checked())
	case RowCombo:
		return r.Combo.SelectedText()
	case RowColor, RowVector:
		return r.Color.Text()
	case RowRadio:
		return r.Radio.Labels[r.Radio.Selected()]
	case RowHandle:
		return r.Handle.Fill().String()
	case RowHeader:
		return strconv.FormatBool(r.Header.Collapsed())
	}
	return ""
}

// SetValue parses s the way Value renders it and applies it. Sliders clamp
// to their range; combo boxes and radio collections take an option label.
func (r *Row) SetValue(s string) error {
	switch r.Kind {
	case RowSlider:
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Label, err)
		}
		r.Slider.SetValue(v)
	case RowCheckbox:
		v, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s: %w", r.Label, err)
		}
		r.Checkbox.Model().SetValue(v)
	case RowCombo:
		i := slices.Index(r.Combo.Options, s)
		if i < 0 {
			return fmt.Errorf("%s: no option %q", r.Label, s)
		}
		r.Combo.Select(i)
	case RowColor, RowVector:
		r.Color.SetText(s)
	case RowRadio:
		i := slices.Index(r.Radio.Labels, s)
		if i < 0 {
			return fmt.Errorf("%s: no option %q", r.Label, s)
		}
		r.Radio.Select(i)
	default:
		return fmt.Errorf("%s: %s rows have no settable value", r.Label, r.Kind)
	}
	return nil
}

// Section is a collapsable group of rows.
type Section struct {
	Header *Row
	Rows   []*Row
}

// Change reports an edited attribute.
type Change struct {
	Section string
	Label   string
	Value   string
}

// Panel is a built property panel.
type Panel struct {
	Sections   []*Section
	LabelWidth float64
	Sheet      *style.Sheet

	width    float64
	height   float64
	visible  []*Row
	drag     *Row
	focus    *Row
	edit     []rune
	onChange func(Change)
}

// Layout metrics.
const (
	Margin          = 8
	RowSpacing      = style.AttrSpacing + 3
	IndicatorColumn = widget.ChangedSize + style.AttrHSpacing
	RadioLineHeight = 16
	minRowHeight    = 20
)

// Build creates the panel widgets described by cfg. Gradients are resolved
// through cfg, so configured gradients shadow presets.
func Build(cfg *config.Config) (*Panel, error) {
	sheet, err := cfg.StyleSheet()
	if err != nil {
		return nil, err
	}
	p := &Panel{LabelWidth: cfg.Panel.LabelWidth, Sheet: sheet}

	for _, sc := range cfg.Panel.Sections {
		sec := &Section{}
		header := widget.NewCollapsableFrame(sc.Title, sc.Collapsed)
		sec.Header = &Row{Kind: RowHeader, Label: sc.Title, Section: sec, Header: header}
		header.OnCollapsedChanged(func(bool) {
			p.relayout()
			p.emit(sec.Header)
		})

		for _, ac := range sc.Attributes {
			rows, err := p.buildAttribute(cfg, sec, ac)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", sc.Title, err)
			}
			sec.Rows = append(sec.Rows, rows...)
		}
		p.Sections = append(p.Sections, sec)
	}
	return p, nil
}

func (p *Panel) buildAttribute(cfg *config.Config, sec *Section, ac config.AttributeConfig) ([]*Row, error) {
	row := &Row{Label: ac.Label, Section: sec}

	switch ac.Kind {
	case config.KindSlider:
		name := ac.Gradient
		if name == "" {
			name = config.DefaultSliderGradient
		}
		bg, err := cfg.Gradient(name)
		if err != nil {
			return nil, err
		}
		s, err := widget.NewFloatSlider(ac.Label, ac.Default, ac.Min, ac.Max, bg)
		if err != nil {
			return nil, err
		}
		row.Kind, row.Slider = RowSlider, s
		s.Model().Subscribe(func(float64) { p.emit(row) })
	case config.KindCheckbox:
		row.Kind, row.Checkbox = RowCheckbox, widget.NewCheckbox(ac.Label, ac.Checked)
		row.Checkbox.Model().Subscribe(func(bool) { p.emit(row) })
	case config.KindCombo:
		if len(ac.Options) == 0 {
			return nil, fmt.Errorf("combo %q has no options", ac.Label)
		}
		row.Kind, row.Combo = RowCombo, widget.NewComboBox(ac.Label, ac.Options...)
		row.Combo.Model().Subscribe(func(int) { p.emit(row) })
	case config.KindColor, config.KindVector:
		picker := ac.Kind == config.KindColor
		row.Kind = RowVector
		if picker {
			row.Kind = RowColor
		}
		row.Color = widget.NewColorField(ac.Label, ac.Components, picker)
		for i := range 3 {
			row.Color.Component(i).Subscribe(func(float64) { p.emit(row) })
		}
	case config.KindRadio:
		if ac.Selected < 0 || ac.Selected >= len(ac.Options) {
			return nil, fmt.Errorf("radio %q: selection %d outside %d options", ac.Label, ac.Selected, len(ac.Options))
		}
		row.Kind, row.Radio = RowRadio, widget.NewRadioCollection(ac.Label, ac.Options, ac.Selected)
		row.Radio.Model().Subscribe(func(int) { p.emit(row) })
	default:
		return nil, fmt.Errorf("attribute %q: unknown kind %q", ac.Label, ac.Kind)
	}

	rows := []*Row{row}
	for _, name := range ac.Handles {
		g, err := cfg.Gradient(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, p.newHandleRow(sec, row, name, g))
	}
	return rows, nil
}

// newHandleRow creates a gradient handle strip under owner. Dragging it
// feeds the owner: a color field takes the handle color, a slider takes the
// handle position. Re-clamping during layout leaves the owner alone.
func (p *Panel) newHandleRow(sec *Section, owner *Row, name string, g gradient.Gradient) *Row {
	h := widget.NewSliderHandle(g, 0)
	row := &Row{Kind: RowHandle, Label: name, Section: sec, Handle: h, Owner: owner}
	h.OnColorChanged(func(c gradient.Color) {
		if p.drag != row {
			return
		}
		p.emit(row)
		switch {
		case owner.Color != nil:
			r, gr, b, _ := gradient.Unpack(c)
			owner.Color.SetComponent(0, float64(r)/255)
			owner.Color.SetComponent(1, float64(gr)/255)
			owner.Color.SetComponent(2, float64(b)/255)
		case owner.Slider != nil && h.MaxOffset() > 0:
			owner.Slider.SetFraction(h.Offset() / h.MaxOffset())
		}
	})
	return row
}

// OnChange registers fn to receive every attribute edit.
func (p *Panel) OnChange(fn func(Change)) { p.onChange = fn }

func (p *Panel) emit(row *Row) {
	if p.onChange == nil {
		return
	}
	sec := ""
	if row.Section != nil && row.Section.Header != nil {
		sec = row.Section.Header.Label
	}
	p.onChange(Change{Section: sec, Label: row.Label, Value: row.Value()})
}

// Find returns the first attribute row with the given label.
func (p *Panel) Find(label string) *Row {
	for _, sec := range p.Sections {
		for _, r := range sec.Rows {
			if r.Kind != RowHandle && r.Label == label {
				return r
			}
		}
	}
	return nil
}

// RestoreDefaults puts every attribute back to its default.
func (p *Panel) RestoreDefaults() {
	for _, sec := range p.Sections {
		for _, r := range sec.Rows {
			switch {
			case r.Slider != nil:
				r.Slider.RestoreDefault()
			case r.Checkbox != nil:
				r.Checkbox.RestoreDefault()
			case r.Combo != nil:
				r.Combo.RestoreDefault()
			case r.Color != nil:
				r.Color.RestoreDefault()
			case r.Radio != nil:
				r.Radio.Select(r.Radio.Default)
			}
		}
	}
}
