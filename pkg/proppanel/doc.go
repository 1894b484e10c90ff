// Package proppanel provides the public API for embedding a property panel:
// gradient sliders, color fields, check boxes, combo boxes and collapsable
// sections described by a Lua or YAML file and drawn in an Ebiten window.
//
// # Basic Usage
//
//	p, err := proppanel.New("/path/to/panel.yaml", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Stop()
//
//	p.SetChangeHandler(func(c proppanel.Change) {
//		log.Printf("%s / %s = %s", c.Section, c.Label, c.Value)
//	})
//	if err := p.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration Sources
//
//   - Disk file: Use [New] to load from a filesystem path
//   - Embedded FS: Use [NewFromFS] to load from an [io/fs.FS]
//   - io.Reader: Use [NewFromReader] for generated configurations
//   - Built-in: Use [NewDefault] for the stock light properties panel
//
// # Hot Reload
//
// [Panel.ReloadConfig] rebuilds the panel from its source while the window
// stays open. With [Options.WatchConfig] set, edits to a configuration file
// on disk trigger the reload automatically.
//
// # Headless Mode
//
// With [Options.Headless] the panel is built and validated but no window is
// opened. This is what tests and the gradient export use.
package proppanel
