package proppanel

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-proppanel/internal/config"
	"github.com/opd-ai/go-proppanel/internal/gradient"
	"github.com/opd-ai/go-proppanel/internal/panel"
)

// window is a running GUI loop. Every access to the panel it draws goes
// through do, which runs on the loop's lock.
type window interface {
	// run blocks until the window closes or the context ends.
	run() error
	setPanel(pn *panel.Panel, cfg *config.Config)
	do(fn func(pn *panel.Panel))
}

// panelImpl is the private implementation of the Panel interface.
type panelImpl struct {
	opts      Options
	source    string
	watchPath string
	loader    configLoader

	cfg   *config.Config
	panel *panel.Panel
	win   window

	metrics *Metrics
	log     Logger
	watcher *configWatcher

	running   atomic.Bool
	startTime time.Time
	changes   atomic.Uint64
	lastError atomic.Value

	errorHandler  ErrorHandler
	eventHandler  EventHandler
	changeHandler ChangeHandler

	// panelMu serializes headless panel access; a window has its own lock
	panelMu sync.Mutex

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Verify interface implementation at compile time.
var _ Panel = (*panelImpl)(nil)

// Start opens the panel.
func (p *panelImpl) Start() error {
	p.mu.Lock()

	if p.running.Load() {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.win = nil
	if !p.opts.Headless {
		p.win = newWindow(p.ctx, p.cfg, p.panel, p.opts, p.onPanelChange, p.notifyError)
	}

	if p.opts.WatchConfig && p.watchPath != "" {
		// ReloadConfig notifies its own failures
		reload := func() { _ = p.ReloadConfig() }
		w, err := newConfigWatcher(p.watchPath, p.opts.WatchDebounce, reload, p.notifyError)
		if err != nil {
			p.cancel()
			p.mu.Unlock()
			return fmt.Errorf("watch config: %w", err)
		}
		p.watcher = w
		w.Start()
	}

	p.running.Store(true)
	p.startTime = time.Now()
	p.changes.Store(0)
	p.metrics.IncrementStarts()
	p.metrics.SetRunning(true)

	ctx, cancel, win := p.ctx, p.cancel, p.win
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.running.Store(false)
		defer p.metrics.SetRunning(false)

		if win == nil {
			<-ctx.Done()
		} else {
			if err := win.run(); err != nil {
				p.notifyError(fmt.Errorf("window loop: %w", err))
			}
			// the user may have closed the window
			cancel()
		}
		p.stopWatcher()
		p.log.Info("panel stopped", "source", p.source)
		p.emitEvent(EventStopped, "Panel stopped")
	}()

	// Release lock before emitting event to avoid deadlock
	p.mu.Unlock()

	p.log.Info("panel started", "source", p.source, "headless", win == nil)
	p.emitEvent(EventStarted, "Panel started")
	return nil
}

// Stop closes the panel and waits for its loop.
func (p *panelImpl) Stop() error {
	if !p.running.Load() {
		return nil
	}

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timeout := p.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	select {
	case <-done:
		p.metrics.IncrementStops()
		return nil
	case <-time.After(timeout):
		err := fmt.Errorf("shutdown timeout after %v: window loop did not stop", timeout)
		p.notifyError(err)
		return err
	}
}

func (p *panelImpl) stopWatcher() {
	p.mu.Lock()
	w := p.watcher
	p.watcher = nil
	p.mu.Unlock()
	if w != nil {
		w.Stop()
	}
}

// ReloadConfig rebuilds the panel from its source.
func (p *panelImpl) ReloadConfig() error {
	if !p.running.Load() {
		return ErrNotRunning
	}
	if p.loader == nil {
		return ErrNoConfigSource
	}

	start := time.Now()
	cfg, pn, err := load(p.loader)
	p.metrics.RecordReload(time.Since(start), err)
	if err != nil {
		err = fmt.Errorf("config reload failed: %w", err)
		p.notifyError(err)
		return err
	}
	pn.OnChange(p.onPanelChange)

	p.mu.Lock()
	p.cfg = cfg
	p.panel = pn
	win := p.win
	p.mu.Unlock()

	if win != nil {
		win.setPanel(pn, cfg)
	}

	p.log.Info("config reloaded", "source", p.source, "sections", len(cfg.Panel.Sections))
	p.emitEvent(EventConfigReloaded, "Configuration reloaded in-place")
	return nil
}

// IsRunning returns true if the panel is currently running.
func (p *panelImpl) IsRunning() bool {
	return p.running.Load()
}

// Status returns detailed status information about the panel.
func (p *panelImpl) Status() Status {
	p.mu.RLock()
	startTime := p.startTime
	p.mu.RUnlock()

	return Status{
		Running:      p.running.Load(),
		StartTime:    startTime,
		Changes:      p.changes.Load(),
		LastError:    p.getError(),
		ConfigSource: p.source,
	}
}

// withPanel runs fn on the current panel, on the window lock when a window
// is open.
func (p *panelImpl) withPanel(fn func(pn *panel.Panel)) {
	p.mu.RLock()
	win, pn := p.win, p.panel
	p.mu.RUnlock()

	if win != nil && p.running.Load() {
		win.do(fn)
		return
	}
	p.panelMu.Lock()
	defer p.panelMu.Unlock()
	fn(pn)
}

// Values returns the current value of every attribute.
func (p *panelImpl) Values() []Change {
	var out []Change
	p.withPanel(func(pn *panel.Panel) {
		for _, sec := range pn.Sections {
			for _, r := range sec.Rows {
				if r.Kind == panel.RowHandle {
					continue
				}
				out = append(out, Change{Section: sec.Header.Label, Label: r.Label, Value: r.Value()})
			}
		}
	})
	return out
}

// SetValue sets one attribute by label.
func (p *panelImpl) SetValue(label, value string) error {
	var err error
	p.withPanel(func(pn *panel.Panel) {
		r := pn.Find(label)
		if r == nil || r.Kind == panel.RowHeader || r.Kind == panel.RowHandle {
			err = fmt.Errorf("no attribute %q", label)
			return
		}
		err = r.SetValue(value)
	})
	return err
}

// RestoreDefaults puts every attribute back to its default.
func (p *panelImpl) RestoreDefaults() {
	p.withPanel(func(pn *panel.Panel) { pn.RestoreDefaults() })
}

// Gradients lists the gradient names the configuration can use.
func (p *panelImpl) Gradients() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.GradientNames()
}

// ExportGradient writes the named gradient as a PNG.
func (p *panelImpl) ExportGradient(w io.Writer, name string, width, height int) error {
	p.mu.RLock()
	g, err := p.cfg.Gradient(name)
	p.mu.RUnlock()
	if err != nil {
		return err
	}
	return gradient.BuildRaster(g).WritePNG(w, width, height)
}

// SetErrorHandler registers a callback for runtime errors.
func (p *panelImpl) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorHandler = handler
}

// SetEventHandler registers a callback for lifecycle events.
func (p *panelImpl) SetEventHandler(handler EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.eventHandler = handler
}

// SetChangeHandler registers a callback for attribute edits.
func (p *panelImpl) SetChangeHandler(handler ChangeHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changeHandler = handler
}

// Metrics returns the metrics collector for this panel.
func (p *panelImpl) Metrics() *Metrics {
	return p.metrics
}

// onPanelChange forwards a panel edit. It runs with the panel locked, so it
// must not call back into the panel.
func (p *panelImpl) onPanelChange(c panel.Change) {
	p.changes.Add(1)
	p.metrics.IncrementChanges()
	p.log.Debug("attribute changed", "section", c.Section, "label", c.Label, "value", c.Value)

	p.mu.RLock()
	handler := p.changeHandler
	p.mu.RUnlock()
	if handler != nil {
		handler(Change{Section: c.Section, Label: c.Label, Value: c.Value})
	}
}

func (p *panelImpl) getError() error {
	if v := p.lastError.Load(); v != nil {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// notifyError stores an error and invokes the error handler if registered.
func (p *panelImpl) notifyError(err error) {
	p.lastError.Store(err)
	p.metrics.IncrementErrors()
	p.log.Error("panel error", "error", err)

	p.mu.RLock()
	handler := p.errorHandler
	p.mu.RUnlock()

	if handler != nil {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					p.log.Error("error handler panicked", "panic", r, "original_error", err)
				}
			}()
			handler(err)
		}()
	}

	p.emitEvent(EventError, err.Error())
}

// emitEvent sends an event to the event handler if configured.
func (p *panelImpl) emitEvent(eventType EventType, message string) {
	p.metrics.IncrementEventsEmitted()

	p.mu.RLock()
	handler := p.eventHandler
	p.mu.RUnlock()

	if handler == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("event handler panicked", "panic", r, "event", eventType.String())
			}
		}()
		handler(Event{Type: eventType, Timestamp: time.Now(), Message: message})
	}()
}
