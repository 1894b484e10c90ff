package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-proppanel/internal/panel"
)

// ErrPanelClosed is returned when the window loop is terminated via context
// cancellation.
var ErrPanelClosed = errors.New("panel closed")

// ErrorHandler is a function type for handling errors raised by the window
// loop.
type ErrorHandler func(err error)

// DefaultErrorHandler writes errors to stderr.
func DefaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "render error: %v\n", err)
}

// Game implements ebiten.Game for a property panel. Configuration and panel
// can be swapped from other goroutines while the loop runs.
type Game struct {
	config       Config
	pendingWin   bool
	hintsDone    bool
	panel        *panel.Panel
	theme        Theme
	text         *TextRenderer
	cache        *rasterCache
	errorHandler ErrorHandler
	onChange     func(panel.Change)

	scroll  float64
	viewW   int
	viewH   int
	hover   *panel.Row
	mu      sync.Mutex
	running bool
	ctx     context.Context
}

// NewGame creates a Game drawing p in a window described by cfg.
func NewGame(cfg Config, p *panel.Panel) *Game {
	g := &Game{
		config:       cfg,
		text:         NewTextRenderer(),
		cache:        newRasterCache(),
		errorHandler: DefaultErrorHandler,
		viewW:        cfg.Width,
		viewH:        cfg.Height,
	}
	g.setPanel(p)
	return g
}

// SetErrorHandler sets a custom error handler.
// If nil is passed, errors will be silently ignored.
func (g *Game) SetErrorHandler(handler ErrorHandler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errorHandler = handler
}

// SetContext sets a context for the game loop. When the context is cancelled,
// the game loop will terminate gracefully.
func (g *Game) SetContext(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctx = ctx
}

// OnChange registers fn to receive attribute edits of the current and every
// later panel.
func (g *Game) OnChange(fn func(panel.Change)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onChange = fn
	if g.panel != nil {
		g.panel.OnChange(fn)
	}
}

// Panel returns the panel being drawn.
func (g *Game) Panel() *panel.Panel {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.panel
}

// SetPanel replaces the panel being drawn, for example after a
// configuration reload.
func (g *Game) SetPanel(p *panel.Panel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setPanel(p)
}

func (g *Game) setPanel(p *panel.Panel) {
	g.panel = p
	g.hover = nil
	if p == nil {
		return
	}
	g.theme = NewTheme(p.Sheet)
	g.text.SetFontSize(g.theme.FontSize)
	p.OnChange(g.onChange)
	p.Layout(float64(g.viewW))
	g.scroll = clampScroll(g.scroll, p.Height(), float64(g.viewH))
}

// Config returns the current configuration.
func (g *Game) Config() Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config
}

// SetConfig updates the window configuration in-place. Size, title and
// decoration changes are applied on the next tick.
func (g *Game) SetConfig(cfg Config) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.config = cfg
	g.pendingWin = true
}

// Update implements ebiten.Game.Update.
func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctx != nil {
		select {
		case <-g.ctx.Done():
			return ErrPanelClosed
		default:
		}
	}

	if g.pendingWin {
		applyWindowConfig(g.config)
		g.pendingWin = false
		g.hintsDone = false
	}
	if !g.hintsDone {
		// hints need the native window, which exists once the loop ticks
		g.hintsDone = true
		if g.config.hasX11Hints() {
			if err := ApplyWindowHints(g.config.Sticky, g.config.SkipTaskbar, g.config.SkipPager); err != nil {
				g.reportError(fmt.Errorf("window hints: %w", err))
			}
		}
	}

	if g.panel == nil {
		return nil
	}
	in := readInput()
	g.scroll = applyInput(g.panel, in, g.scroll, float64(g.viewH))
	g.hover = hoveredRow(g.panel, in.X, in.Y+g.scroll)
	return nil
}

func (g *Game) reportError(err error) {
	if g.errorHandler != nil {
		g.errorHandler(err)
	}
}

// Draw implements ebiten.Game.Draw.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	screen.Fill(g.theme.Background)
	if g.panel == nil {
		return
	}

	d := &drawer{
		screen: screen,
		theme:  g.theme,
		text:   g.text,
		cache:  g.cache,
		scroll: g.scroll,
		hover:  g.hover,
		focus:  g.panel.Focused(),
		edit:   g.panel.EditText(),
	}
	viewH := float64(g.viewH)
	for _, r := range g.panel.Rows() {
		if r.Bounds.Y+r.Bounds.H < g.scroll || r.Bounds.Y > g.scroll+viewH {
			continue
		}
		d.row(r)
	}
	g.cache.sweep()
}

// Layout implements ebiten.Game.Layout. The panel follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.config.Width, g.config.Height
	}
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		if g.panel != nil {
			g.panel.Layout(float64(outsideWidth))
			g.scroll = clampScroll(g.scroll, g.panel.Height(), float64(outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten game loop.
// This function blocks until the window is closed or the context ends.
func (g *Game) Run() error {
	g.mu.Lock()
	cfg := g.config
	g.pendingWin = false
	g.running = true
	g.mu.Unlock()

	applyWindowConfig(cfg)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)

	g.mu.Lock()
	g.running = false
	g.mu.Unlock()
	CloseWindowHints()

	return err
}

// IsRunning returns whether the game loop is currently running.
func (g *Game) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func applyWindowConfig(cfg Config) {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowDecorated(!cfg.Undecorated)
	ebiten.SetWindowFloating(cfg.Floating)
	if cfg.X >= 0 && cfg.Y >= 0 {
		ebiten.SetWindowPosition(cfg.X, cfg.Y)
	}
}

// Do runs fn on the panel under the game lock, so callers on other
// goroutines do not race the window loop.
func (g *Game) Do(fn func(p *panel.Panel)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.panel != nil {
		fn(g.panel)
	}
}
