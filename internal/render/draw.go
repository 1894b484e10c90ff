package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/panel"
	"github.com/opd-ai/go-proppanel/internal/widget"
)

// rasterCache holds one GPU image per gradient raster. Rasters are replaced,
// never mutated, so the pointer identifies the pixels.
type rasterCache struct {
	images map[*gradient.Raster]*ebiten.Image
	seen   map[*gradient.Raster]bool
}

func newRasterCache() *rasterCache {
	return &rasterCache{
		images: make(map[*gradient.Raster]*ebiten.Image),
		seen:   make(map[*gradient.Raster]bool),
	}
}

func (rc *rasterCache) image(r *gradient.Raster) *ebiten.Image {
	rc.seen[r] = true
	img, ok := rc.images[r]
	if !ok {
		img = ebiten.NewImageFromImage(r.Image())
		rc.images[r] = img
	}
	return img
}

// sweep releases images whose raster was not drawn since the last sweep.
func (rc *rasterCache) sweep() {
	for r, img := range rc.images {
		if !rc.seen[r] {
			img.Deallocate()
			delete(rc.images, r)
		}
	}
	clear(rc.seen)
}

// drawer draws panel rows onto a screen shifted up by scroll pixels.
type drawer struct {
	screen *ebiten.Image
	theme  Theme
	text   *TextRenderer
	cache  *rasterCache
	scroll float64
	hover  *panel.Row
	focus  *panel.Row
	edit   string
}

func (d *drawer) rect(r panel.Rect) panel.Rect {
	r.Y -= d.scroll
	return r
}

func (d *drawer) fill(r panel.Rect, clr color.Color) {
	r = d.rect(r)
	vector.DrawFilledRect(d.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// gradientStrip stretches a raster over r.
func (d *drawer) gradientStrip(raster *gradient.Raster, r panel.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	r = d.rect(r)
	img := d.cache.image(raster)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(r.W/float64(raster.Width()), r.H/float64(raster.Height()))
	op.GeoM.Translate(r.X, r.Y)
	d.screen.DrawImage(img, op)
}

func (d *drawer) label(s string, r panel.Rect, alignment string, clr color.RGBA) {
	d.text.DrawAligned(d.screen, s, d.rect(r), alignment, clr)
}

func (d *drawer) row(r *panel.Row) {
	if r.Kind == panel.RowHeader {
		d.header(r)
		return
	}

	if r.Kind != panel.RowHandle {
		clr := d.theme.LabelText
		if r == d.hover {
			clr = d.theme.LabelHovered
		}
		d.label(r.Label, r.LabelBounds, d.theme.LabelAlign, clr)
	}

	wb := r.WidgetBounds
	switch r.Kind {
	case panel.RowSlider:
		d.slider(r.Slider, wb)
	case panel.RowCheckbox:
		d.checkbox(r.Checkbox, wb)
	case panel.RowCombo:
		d.fill(wb, d.theme.ComboBackground)
		d.label(r.Combo.SelectedText()+"  ▾", insetX(wb, 6), "left_center", d.theme.ComboText)
	case panel.RowColor, panel.RowVector:
		d.colorField(r, wb)
	case panel.RowRadio:
		d.radio(r.Radio, wb)
	case panel.RowHandle:
		d.handle(r.Handle, wb)
	}

	if ind := r.Indicator(); ind != nil {
		d.indicator(ind, r.IndicatorBounds)
	}
}

func (d *drawer) header(r *panel.Row) {
	b := r.Bounds
	midY := float32(b.Y - d.scroll + b.H/2)
	vector.StrokeLine(d.screen, float32(b.X), midY, float32(b.X+b.W), midY, 1, d.theme.Line, false)

	icon := panel.Rect{X: b.X + 4, Y: b.Y + b.H/2 - 5, W: 10, H: 10}
	d.disclosure(r.Header.HeaderImage(), icon)

	title := panel.Rect{X: b.X + 22, Y: b.Y, W: b.W - 22, H: b.H}
	w, _ := d.text.MeasureText(r.Label)
	d.fill(panel.Rect{X: title.X - 4, Y: b.Y + b.H/2 - 1, W: w + 12, H: 2}, d.theme.Background)
	d.text.DrawHeader(d.screen, r.Label, d.rect(title), d.theme.HeaderText)
}

// disclosure draws the triangle of a collapsable header. The opened image
// points down.
func (d *drawer) disclosure(name string, r panel.Rect) {
	r = d.rect(r)
	var path vector.Path
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if name == widget.ImageCollapsableOpened {
		path.MoveTo(x, y+h*0.25)
		path.LineTo(x+w, y+h*0.25)
		path.LineTo(x+w/2, y+h*0.85)
	} else {
		path.MoveTo(x+w*0.25, y)
		path.LineTo(x+w*0.85, y+h/2)
		path.LineTo(x+w*0.25, y+h)
	}
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	clr := d.theme.HeaderImageColor
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	d.screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (d *drawer) slider(s *widget.FloatSlider, wb panel.Rect) {
	d.fill(wb, d.theme.SliderBackground)
	d.gradientStrip(s.Background.Raster(), wb)

	// the filled part of the track is darkened by the slider color
	filled := wb
	filled.W = wb.W * s.Fraction()
	shade := d.theme.SliderFill
	shade.A = 0x80
	d.fill(filled, shade)

	d.label(widget.FormatComponent(s.Value()), insetX(wb, 6), "left_center", d.theme.FieldText)
}

func (d *drawer) checkbox(c *widget.Checkbox, wb panel.Rect) {
	box := panel.Rect{X: wb.X, Y: wb.Y + (wb.H-c.Height())/2, W: c.Width(), H: c.Height()}
	d.fill(box, d.theme.FieldBackground)
	if c.ImageName() == widget.ImageChecked {
		d.fill(insetAll(box, 4), d.theme.Changed)
	}
}

func (d *drawer) colorField(r *panel.Row, wb panel.Rect) {
	cf := r.Color
	third := wb.W / 3
	labels := cf.ComponentLabels()
	editing := r == d.focus

	if cf.ColorPicker {
		swatch := panel.Rect{X: wb.X, Y: wb.Y + 2, W: 4, H: wb.H - 4}
		d.fill(swatch, cf.Swatch().RGBA())
	}
	for i := range 3 {
		cell := panel.Rect{X: wb.X + float64(i)*third + 6, Y: wb.Y, W: third - 8, H: wb.H}
		d.fill(cell, d.theme.FieldBackground)
		if cf.ColorPicker {
			strip := panel.Rect{X: cell.X, Y: cell.Y + cell.H - 3, W: cell.W, H: 3}
			d.gradientStrip(cf.Channels[i].Raster(), strip)
		}
		d.label(labels[i], insetX(cell, 4), "left_center", d.theme.ChannelText[i])
		if !editing {
			d.label(widget.FormatComponent(cf.Values()[i]), insetX(cell, 4), "right_center", d.theme.FieldText)
		}
	}
	if editing {
		edit := panel.Rect{X: wb.X + 6, Y: wb.Y, W: wb.W - 8, H: wb.H}
		d.fill(edit, d.theme.FieldBackground)
		d.label(d.edit+"|", insetX(edit, 4), "left_center", d.theme.LabelHovered)
	}
}

func (d *drawer) radio(rc *widget.RadioCollection, wb panel.Rect) {
	for i, label := range rc.Labels {
		line := panel.Rect{X: wb.X, Y: wb.Y + float64(i)*panel.RadioLineHeight, W: wb.W, H: panel.RadioLineHeight}
		r := d.rect(line)
		cx, cy := float32(r.X+6), float32(r.Y+r.H/2)
		vector.StrokeCircle(d.screen, cx, cy, 5, 1, d.theme.LabelText, true)
		if rc.ImageName(i) == widget.ImageRadioOn {
			vector.DrawFilledCircle(d.screen, cx, cy, 3, d.theme.Changed, true)
		}
		d.label(label, panel.Rect{X: line.X + 18, Y: line.Y, W: line.W - 18, H: line.H}, "left_center", d.theme.LabelText)
	}
}

func (d *drawer) handle(h *widget.SliderHandle, wb panel.Rect) {
	stripH := h.Strip.Height()
	strip := panel.Rect{X: wb.X, Y: wb.Y + (wb.H-stripH)/2, W: wb.W, H: stripH}
	d.gradientStrip(h.Strip.Raster(), strip)

	r := d.rect(wb)
	radius := float32(h.HandleSize / 2)
	cx := float32(r.X+h.Offset()) + radius
	cy := float32(r.Y + r.H/2)
	vector.DrawFilledCircle(d.screen, cx, cy, radius, h.Fill().RGBA(), true)
	vector.StrokeCircle(d.screen, cx, cy, radius, float32(d.theme.HandleBorderWidth), d.theme.HandleBorder, true)
}

func (d *drawer) indicator(ind *widget.Indicator, r panel.Rect) {
	if ind.IsChanged() {
		d.fill(r, d.theme.Changed)
		return
	}
	d.fill(insetAll(r, 5), d.theme.Default)
}

func insetX(r panel.Rect, dx float64) panel.Rect {
	r.X += dx
	r.W -= 2 * dx
	return r
}

func insetAll(r panel.Rect, d float64) panel.Rect {
	return panel.Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

var white *ebiten.Image

// whitePixel returns the source image for solid triangles.
func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(3, 3)
		white.Fill(color.White)
	}
	return white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
