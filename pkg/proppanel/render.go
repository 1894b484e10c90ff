//go:build !noebiten

package proppanel

import (
	"context"
	"errors"

	"github.com/opd-ai/go-proppanel/internal/config"
	"github.com/opd-ai/go-proppanel/internal/panel"
	"github.com/opd-ai/go-proppanel/internal/render"
)

// gameWindow runs a panel in an Ebiten window.
type gameWindow struct {
	game  *render.Game
	title string
}

func newWindow(ctx context.Context, cfg *config.Config, pn *panel.Panel, opts Options, onChange func(panel.Change), onError func(error)) window {
	w := &gameWindow{title: opts.WindowTitle}
	w.game = render.NewGame(w.renderConfig(cfg), pn)
	w.game.SetContext(ctx)
	w.game.SetErrorHandler(onError)
	w.game.OnChange(onChange)
	return w
}

func (w *gameWindow) renderConfig(cfg *config.Config) render.Config {
	rc := render.ConfigFromWindow(cfg.Window)
	if w.title != "" {
		rc.Title = w.title
	}
	return rc
}

func (w *gameWindow) run() error {
	err := w.game.Run()
	// cancellation is how Stop ends the loop
	if errors.Is(err, render.ErrPanelClosed) {
		return nil
	}
	return err
}

func (w *gameWindow) setPanel(pn *panel.Panel, cfg *config.Config) {
	w.game.SetConfig(w.renderConfig(cfg))
	w.game.SetPanel(pn)
}

func (w *gameWindow) do(fn func(pn *panel.Panel)) {
	w.game.Do(fn)
}
