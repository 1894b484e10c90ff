package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-proppanel/internal/panel"
	"github.com/opd-ai/go-proppanel/internal/widget"
)

// scrollStep is the number of pixels scrolled per wheel notch.
const scrollStep = 24

// InputState is the pointer and keyboard input of one tick, in window
// coordinates.
type InputState struct {
	X, Y     float64
	Pressed  bool
	Button   widget.MouseButton
	Held     bool
	Released bool
	WheelY   float64

	Chars     []rune
	Enter     bool
	Escape    bool
	Backspace bool
}

// readInput polls Ebiten for the current tick.
func readInput() InputState {
	cx, cy := ebiten.CursorPosition()
	in := InputState{X: float64(cx), Y: float64(cy)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.Pressed, in.Button = true, widget.MouseLeft
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		in.Pressed, in.Button = true, widget.MouseRight
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		in.Pressed, in.Button = true, widget.MouseMiddle
	}
	in.Held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, in.WheelY = ebiten.Wheel()

	in.Chars = ebiten.AppendInputChars(nil)
	in.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	in.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		repeating(ebiten.KeyBackspace)
	return in
}

// repeating reports key auto-repeat after the key has been held briefly.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d > 30 && d%4 == 0
}

// applyInput feeds one tick of input to p, which is scrolled by scroll
// pixels. It returns the new scroll offset.
func applyInput(p *panel.Panel, in InputState, scroll, viewHeight float64) float64 {
	if in.WheelY != 0 {
		scroll = clampScroll(scroll-in.WheelY*scrollStep, p.Height(), viewHeight)
	}
	x, y := in.X, in.Y+scroll

	if in.Pressed {
		p.Press(x, y, in.Button)
	}
	if p.Dragging() != nil {
		if in.Held {
			p.DragTo(x, y)
		}
		if in.Released || !in.Held {
			p.Release()
		}
	}

	if p.Focused() != nil {
		p.Type(in.Chars...)
		if in.Backspace {
			p.Backspace()
		}
		switch {
		case in.Enter:
			p.Commit()
		case in.Escape:
			p.Cancel()
		}
	}
	// collapsing a section can leave the view past the end
	return clampScroll(scroll, p.Height(), viewHeight)
}

// clampScroll keeps the scroll offset within the scrollable content.
func clampScroll(scroll, contentHeight, viewHeight float64) float64 {
	maxScroll := math.Max(contentHeight-viewHeight, 0)
	return math.Min(math.Max(scroll, 0), maxScroll)
}

// hoveredRow returns the attribute row whose label is under the pointer.
func hoveredRow(p *panel.Panel, x, y float64) *panel.Row {
	hit := p.HitTest(x, y)
	if hit.Target == panel.TargetLabel {
		return hit.Row
	}
	return nil
}
