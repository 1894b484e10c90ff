package proppanel

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/opd-ai/go-proppanel/internal/config"
	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/panel"
)

// Configuration format constants for use with NewFromReader.
const (
	// FormatLua indicates a Lua script assigning panel.config.
	FormatLua = config.FormatLua
	// FormatYAML indicates a YAML document.
	FormatYAML = config.FormatYAML
	// FormatAuto detects the format from the content.
	FormatAuto = ""
)

// Panel is an embedded property panel with lifecycle control.
// It is safe for concurrent use from multiple goroutines.
type Panel interface {
	// Start opens the panel window (or, headless, just marks the panel
	// running) and returns immediately.
	// Returns ErrAlreadyRunning if the panel is running.
	Start() error

	// Stop closes the window and waits for the loop to finish.
	// Safe to call multiple times; subsequent calls are no-ops.
	Stop() error

	// ReloadConfig rebuilds the panel from its configuration source while
	// the window stays open. On error the previous panel remains active.
	ReloadConfig() error

	// IsRunning returns true if the panel is currently running.
	IsRunning() bool

	// Status returns detailed status information about the panel.
	Status() Status

	// Health reports on the panel and its parts.
	Health() HealthCheck

	// Values returns the current value of every attribute, in panel order.
	Values() []Change

	// SetValue sets the attribute named label from text in the form Values
	// reports. The change handler fires as it does for an edit in the window.
	SetValue(label, value string) error

	// RestoreDefaults puts every attribute back to its default.
	RestoreDefaults()

	// Gradients lists the gradient names the configuration can use.
	Gradients() []string

	// ExportGradient writes the named gradient as a width x height PNG.
	ExportGradient(w io.Writer, name string, width, height int) error

	// SetErrorHandler registers a callback for runtime errors. Panics in
	// the handler are recovered.
	SetErrorHandler(handler ErrorHandler)

	// SetEventHandler registers a callback for lifecycle events.
	SetEventHandler(handler EventHandler)

	// SetChangeHandler registers a callback for attribute edits.
	SetChangeHandler(handler ChangeHandler)

	// Metrics returns the metrics collector for this panel.
	Metrics() *Metrics
}

// New creates a Panel from a Lua or YAML configuration file on disk.
// The panel is built but not started; call Start to open it.
//
// Example:
//
//	p, err := proppanel.New("/home/user/.config/proppanel/light.yaml", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Stop()
//	if err := p.Start(); err != nil {
//		log.Fatal(err)
//	}
func New(configPath string, opts *Options) (Panel, error) {
	return newPanel(configPath, configPath, opts, func(p *config.Parser) (*config.Config, error) {
		return p.ParseFile(configPath)
	})
}

// NewFromFS creates a Panel using configuration from a filesystem such as
// an embed.FS.
func NewFromFS(fsys fs.FS, configPath string, opts *Options) (Panel, error) {
	return newPanel("embedded:"+configPath, "", opts, func(p *config.Parser) (*config.Config, error) {
		return p.ParseFromFS(fsys, configPath)
	})
}

// NewFromReader creates a Panel from configuration content. format is
// FormatLua, FormatYAML or FormatAuto. The content is read once and kept
// for ReloadConfig.
func NewFromReader(r io.Reader, format string, opts *Options) (Panel, error) {
	switch format {
	case FormatLua, FormatYAML, FormatAuto:
	default:
		return nil, fmt.Errorf("invalid format: %s (expected '%s' or '%s')", format, FormatLua, FormatYAML)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return newPanel("reader", "", opts, func(p *config.Parser) (*config.Config, error) {
		return p.ParseReader(bytes.NewReader(content), format)
	})
}

// NewDefault creates the stock light properties panel.
func NewDefault(opts *Options) (Panel, error) {
	return newPanel("default", "", opts, func(*config.Parser) (*config.Config, error) {
		cfg := config.DefaultConfig()
		return &cfg, nil
	})
}

// RenderGradientPNG writes a preset gradient as a width x height PNG.
func RenderGradientPNG(w io.Writer, name string, width, height int) error {
	g, err := gradient.Preset(name)
	if err != nil {
		return err
	}
	return gradient.BuildRaster(g).WritePNG(w, width, height)
}

// PresetNames lists the built-in gradient names.
func PresetNames() []string {
	return gradient.PresetNames()
}

type configLoader func(*config.Parser) (*config.Config, error)

func newPanel(source, watchPath string, opts *Options, loader configLoader) (Panel, error) {
	if opts == nil {
		defaultOpts := DefaultOptions()
		opts = &defaultOpts
	}
	cfg, pn, err := load(loader)
	if err != nil {
		return nil, err
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	p := &panelImpl{
		opts:      *opts,
		source:    source,
		watchPath: watchPath,
		loader:    loader,
		cfg:       cfg,
		panel:     pn,
		metrics:   metrics,
		log:       opts.logger(),
	}
	pn.OnChange(p.onPanelChange)
	return p, nil
}

// load parses, applies environment overrides, validates and builds.
func load(loader configLoader) (*config.Config, *panel.Panel, error) {
	parser, err := config.NewParser()
	if err != nil {
		return nil, nil, fmt.Errorf("parser init: %w", err)
	}
	defer parser.Close()

	cfg, err := loader(parser)
	if err != nil {
		return nil, nil, fmt.Errorf("parse config: %w", err)
	}
	config.ExpandEnvConfig(cfg)
	if err := config.ApplyEnvOverrides(cfg, nil); err != nil {
		return nil, nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	pn, err := panel.Build(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build panel: %w", err)
	}
	pn.Layout(float64(cfg.Window.Width))
	return cfg, pn, nil
}
