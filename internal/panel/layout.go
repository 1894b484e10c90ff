package panel

import (
	"math"

	"github.com/opd-ai/go-proppanel/internal/style"
	"github.com/opd-ai/go-proppanel/internal/widget"
)

// Layout positions every visible row for a panel width and returns the total
// content height. Rows of collapsed sections are skipped.
func (p *Panel) Layout(width float64) float64 {
	p.width = width
	p.visible = nil

	y := float64(Margin)
	for _, sec := range p.Sections {
		y = p.place(sec.Header, y)
		if sec.Header.Header.Collapsed() {
			y += style.GroupSpacing
			continue
		}
		for _, r := range sec.Rows {
			y = p.place(r, y)
		}
		y += style.GroupSpacing
	}
	p.height = y + Margin
	return p.height
}

func (p *Panel) relayout() {
	if p.width > 0 {
		p.Layout(p.width)
	}
}

// Width returns the width passed to the last Layout.
func (p *Panel) Width() float64 { return p.width }

// Height returns the content height computed by the last Layout.
func (p *Panel) Height() float64 { return p.height }

// Rows returns the visible rows, top to bottom.
func (p *Panel) Rows() []*Row { return p.visible }

func (p *Panel) place(r *Row, y float64) float64 {
	inner := math.Max(p.width-2*Margin, 0)
	h := rowHeight(r)
	r.Bounds = Rect{X: Margin, Y: y, W: inner, H: h}

	if r.Kind == RowHeader {
		r.LabelBounds = r.Bounds
		r.WidgetBounds = r.Bounds
		r.IndicatorBounds = Rect{}
		r.Header.SetSize(inner, h)
		p.visible = append(p.visible, r)
		return y + h + RowSpacing
	}

	labelW := math.Min(p.LabelWidth, inner)
	widgetX := Margin + labelW + style.AttrHSpacing
	widgetW := math.Max(Margin+inner-IndicatorColumn-widgetX, 0)

	r.LabelBounds = Rect{X: Margin, Y: y, W: labelW, H: h}
	r.WidgetBounds = Rect{X: widgetX, Y: y, W: widgetW, H: h}
	r.IndicatorBounds = Rect{}
	if r.Indicator() != nil {
		size := float64(widget.ChangedSize)
		r.IndicatorBounds = Rect{
			X: Margin + inner - size,
			Y: y + (h-size)/2,
			W: size,
			H: size,
		}
	}

	switch r.Kind {
	case RowSlider:
		r.Slider.SetSize(widgetW, h)
		r.Slider.Background.SetSize(widgetW, r.Slider.Background.Height())
	case RowCheckbox:
		// the checkbox keeps its icon size
	case RowCombo:
		r.Combo.SetSize(widgetW, h)
	case RowColor, RowVector:
		r.Color.SetSize(widgetW, h)
		for _, ch := range r.Color.Channels {
			ch.SetSize(widgetW/3, ch.Height())
		}
	case RowRadio:
		r.Radio.SetSize(widgetW, h)
	case RowHandle:
		r.Handle.SetSize(widgetW, r.Handle.Height())
	}

	p.visible = append(p.visible, r)
	return y + h + RowSpacing
}

func rowHeight(r *Row) float64 {
	var h float64
	switch r.Kind {
	case RowHeader:
		h = widget.HeaderHeight
	case RowSlider:
		h = r.Slider.Height()
	case RowCheckbox:
		h = r.Checkbox.Height()
	case RowCombo:
		h = 22
	case RowColor, RowVector:
		h = r.Color.Height()
	case RowRadio:
		h = float64(len(r.Radio.Labels)) * RadioLineHeight
	case RowHandle:
		return r.Handle.Height()
	}
	return math.Max(h, minRowHeight)
}
