package render

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-proppanel/internal/panel"
)

// defaultFontSize is the default font size in points.
const defaultFontSize = 14.0

// lineSpacing is the line height multiplier used when measuring.
const lineSpacing = 1.2

// TextRenderer draws labels with the Go fonts.
type TextRenderer struct {
	regular  *text.GoTextFaceSource
	bold     *text.GoTextFaceSource
	fontSize float64
	mu       sync.RWMutex
}

// NewTextRenderer creates a TextRenderer with the embedded Go fonts.
func NewTextRenderer() *TextRenderer {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// This should never fail with the embedded font
		panic("failed to load embedded font: " + err.Error())
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic("failed to load embedded font: " + err.Error())
	}
	return &TextRenderer{regular: regular, bold: bold, fontSize: defaultFontSize}
}

// SetFontSize sets the font size for text rendering.
func (tr *TextRenderer) SetFontSize(size float64) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if size > 0 {
		tr.fontSize = size
	}
}

// FontSize returns the current font size.
func (tr *TextRenderer) FontSize() float64 {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.fontSize
}

func (tr *TextRenderer) face(bold bool) *text.GoTextFace {
	src := tr.regular
	if bold {
		src = tr.bold
	}
	return &text.GoTextFace{Source: src, Size: tr.fontSize}
}

// DrawText renders text with its top-left corner at x, y.
func (tr *TextRenderer) DrawText(screen *ebiten.Image, s string, x, y float64, clr color.RGBA) {
	tr.draw(screen, s, x, y, clr, false)
}

func (tr *TextRenderer) draw(screen *ebiten.Image, s string, x, y float64, clr color.RGBA, bold bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, tr.face(bold), op)
}

// DrawAligned renders text inside box using an alignment name.
func (tr *TextRenderer) DrawAligned(screen *ebiten.Image, s string, box panel.Rect, alignment string, clr color.RGBA) {
	w, h := tr.MeasureText(s)
	x, y := Align(alignment, box, w, h)
	tr.DrawText(screen, s, x, y, clr)
}

// DrawHeader renders a section title in bold, vertically centered in box.
func (tr *TextRenderer) DrawHeader(screen *ebiten.Image, s string, box panel.Rect, clr color.RGBA) {
	tr.mu.RLock()
	w, h := text.Measure(s, tr.face(true), tr.fontSize*lineSpacing)
	tr.mu.RUnlock()
	x, y := Align("left_center", box, w, h)
	tr.draw(screen, s, x, y, clr, true)
}

// MeasureText returns the width and height of the given text string.
func (tr *TextRenderer) MeasureText(s string) (width, height float64) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return text.Measure(s, tr.face(false), tr.fontSize*lineSpacing)
}
