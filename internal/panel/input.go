package panel

import (
	"unicode"

	"github.com/opd-ai/go-proppanel/internal/widget"
)

// Target is the part of a row under the pointer.
type Target int

// Hit targets.
const (
	TargetNone Target = iota
	TargetHeader
	TargetLabel
	TargetWidget
	TargetIndicator
)

// Hit is the result of a hit test.
type Hit struct {
	Row    *Row
	Target Target
}

// HitTest finds the row and row part at a point.
func (p *Panel) HitTest(x, y float64) Hit {
	for _, r := range p.visible {
		if !r.Bounds.Contains(x, y) {
			continue
		}
		switch {
		case r.Kind == RowHeader:
			return Hit{Row: r, Target: TargetHeader}
		case r.IndicatorBounds.Contains(x, y):
			return Hit{Row: r, Target: TargetIndicator}
		case r.WidgetBounds.Contains(x, y):
			return Hit{Row: r, Target: TargetWidget}
		case r.LabelBounds.Contains(x, y):
			return Hit{Row: r, Target: TargetLabel}
		}
		return Hit{Row: r}
	}
	return Hit{}
}

// Press delivers a pointer press and reports whether it did anything.
// Pressing a slider or handle starts a drag that lasts until Release.
func (p *Panel) Press(x, y float64, button widget.MouseButton) bool {
	hit := p.HitTest(x, y)
	if p.focus != nil && hit.Row != p.focus {
		p.Commit()
	}
	if hit.Row == nil {
		return false
	}
	r := hit.Row

	switch hit.Target {
	case TargetHeader:
		return r.Header.Press(x-r.Bounds.X, y-r.Bounds.Y, button)
	case TargetIndicator:
		ind := r.Indicator()
		if ind == nil || !ind.IsChanged() {
			return false
		}
		return ind.PressChanged()
	case TargetWidget:
		return p.pressWidget(r, x, y, button)
	}
	return false
}

func (p *Panel) pressWidget(r *Row, x, y float64, button widget.MouseButton) bool {
	wb := r.WidgetBounds
	switch r.Kind {
	case RowSlider:
		p.drag = r
		p.dragTo(r, x)
		return true
	case RowHandle:
		p.drag = r
		p.dragTo(r, x)
		return true
	case RowCheckbox:
		return r.Checkbox.Press(x-wb.X, y-wb.Y, button)
	case RowCombo:
		if button == widget.MouseRight {
			n := len(r.Combo.Options)
			r.Combo.Select((r.Combo.Selected() + n - 1) % n)
		} else {
			r.Combo.Next()
		}
		return true
	case RowRadio:
		r.Radio.Select(int((y - wb.Y) / RadioLineHeight))
		return true
	case RowColor, RowVector:
		p.focus = r
		p.edit = []rune(r.Color.Text())
		return true
	}
	return false
}

// DragTo continues an active drag.
func (p *Panel) DragTo(x, _ float64) {
	if p.drag != nil {
		p.dragTo(p.drag, x)
	}
}

func (p *Panel) dragTo(r *Row, x float64) {
	wb := r.WidgetBounds
	switch r.Kind {
	case RowSlider:
		if wb.W > 0 {
			r.Slider.SetFraction((x - wb.X) / wb.W)
		}
	case RowHandle:
		// the pointer grabs the handle by its center
		r.Handle.Drag(x - wb.X - r.Handle.HandleSize/2)
	}
}

// Release ends an active drag.
func (p *Panel) Release() { p.drag = nil }

// Dragging returns the row being dragged, or nil.
func (p *Panel) Dragging() *Row { return p.drag }

// Focused returns the color or vector row being edited, or nil.
func (p *Panel) Focused() *Row { return p.focus }

// EditText returns the text being typed into the focused row.
func (p *Panel) EditText() string { return string(p.edit) }

// Type appends typed characters to the edit buffer. Control characters are
// dropped.
func (p *Panel) Type(rs ...rune) {
	if p.focus == nil {
		return
	}
	for _, r := range rs {
		if unicode.IsPrint(r) {
			p.edit = append(p.edit, r)
		}
	}
}

// Backspace removes the last typed character.
func (p *Panel) Backspace() {
	if p.focus != nil && len(p.edit) > 0 {
		p.edit = p.edit[:len(p.edit)-1]
	}
}

// Commit applies the edit buffer to the focused row and ends editing.
// Components that do not parse keep their value.
func (p *Panel) Commit() {
	if p.focus == nil {
		return
	}
	r, text := p.focus, string(p.edit)
	p.Cancel()
	r.Color.SetText(text)
}

// Cancel ends editing without applying the buffer.
func (p *Panel) Cancel() {
	p.focus = nil
	p.edit = nil
}
