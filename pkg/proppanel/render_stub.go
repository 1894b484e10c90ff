//go:build noebiten

package proppanel

import (
	"context"

	"github.com/opd-ai/go-proppanel/internal/config"
	"github.com/opd-ai/go-proppanel/internal/panel"
)

// newWindow returns nil in noebiten builds, so every panel runs headless.
func newWindow(context.Context, *config.Config, *panel.Panel, Options, func(panel.Change), func(error)) window {
	return nil
}
