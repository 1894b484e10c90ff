// Package main runs a gradient property panel in its own window, or exports
// gradients as PNG images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-proppanel/pkg/proppanel"
)

// Version is the current version of proppanel.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath string
	version    bool
	export     string
	output     string
	width      int
	height     int
	list       bool
	watch      bool
	headless   bool
	logLevel   string
	cpuProfile string
	memProfile string
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("proppanel", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{}
	fs.StringVar(&f.configPath, "c", "", "Path to configuration file (Lua or YAML); built-in panel when empty")
	fs.BoolVar(&f.version, "v", false, "Print version and exit")
	fs.StringVar(&f.export, "export", "", "Write the named gradient as PNG and exit")
	fs.StringVar(&f.output, "o", "", "Output file for -export (default stdout)")
	fs.IntVar(&f.width, "width", 256, "Width of the exported image")
	fs.IntVar(&f.height, "height", 16, "Height of the exported image")
	fs.BoolVar(&f.list, "list", false, "List gradient names and exit")
	fs.BoolVar(&f.watch, "watch", false, "Reload the panel when the configuration file changes")
	fs.BoolVar(&f.headless, "headless", false, "Run without a window")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&f.cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	fs.StringVar(&f.memProfile, "memprofile", "", "Write memory profile to file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if f.width <= 0 || f.height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", f.width, f.height)
	}
	return f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if f.version {
		fmt.Fprintf(stdout, "proppanel version %s\n", Version)
		return 0
	}

	level, err := proppanel.ParseLevel(f.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	opts := proppanel.DefaultOptions()
	opts.Logger = proppanel.TextLogger(stderr, level)
	opts.Headless = f.headless || f.export != "" || f.list
	opts.WatchConfig = f.watch

	p, err := newPanel(f.configPath, &opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading panel: %v\n", err)
		return 1
	}

	switch {
	case f.list:
		for _, name := range p.Gradients() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	case f.export != "":
		return runExport(p, f, stdout, stderr)
	}

	prof, err := startProfiling(f.cpuProfile, f.memProfile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start profiling: %v\n", err)
		return 1
	}
	defer func() {
		if err := prof.stop(); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to stop profiling: %v\n", err)
		}
	}()

	return serve(p, stdout, stderr)
}

// newPanel loads path, or the built-in panel when path is empty.
func newPanel(path string, opts *proppanel.Options) (proppanel.Panel, error) {
	if path == "" {
		return proppanel.NewDefault(opts)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("accessing configuration file %s: %w", path, err)
	}
	return proppanel.New(path, opts)
}

// runExport writes the -export gradient to -o, or stdout.
func runExport(p proppanel.Panel, f *cliFlags, stdout, stderr io.Writer) int {
	w := stdout
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating %s: %v\n", f.output, err)
			return 1
		}
		defer file.Close()
		w = file
	}
	if err := p.ExportGradient(w, f.export, f.width, f.height); err != nil {
		fmt.Fprintf(stderr, "Error exporting %s: %v\n", f.export, err)
		return 1
	}
	return 0
}

// serve runs the panel until a termination signal or until its window is
// closed. SIGHUP reloads the configuration.
func serve(p proppanel.Panel, stdout, stderr io.Writer) int {
	p.SetErrorHandler(func(err error) {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	})

	stopped := make(chan struct{})
	p.SetEventHandler(func(e proppanel.Event) {
		fmt.Fprintf(stdout, "[%s] %s: %s\n", e.Timestamp.Format("15:04:05"), e.Type, e.Message)
		if e.Type == proppanel.EventStopped {
			close(stopped)
		}
	})
	p.SetChangeHandler(func(c proppanel.Change) {
		fmt.Fprintf(stdout, "%s/%s = %s\n", c.Section, c.Label, c.Value)
	})

	if err := p.Start(); err != nil {
		fmt.Fprintf(stderr, "Failed to start: %v\n", err)
		return 1
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-stopped:
			return 0
		case sig := <-sigCh:
			if sig == syscall.SIGHUP {
				fmt.Fprintln(stdout, "Received SIGHUP, reloading configuration...")
				if err := p.ReloadConfig(); err != nil {
					fmt.Fprintf(stderr, "Reload failed: %v\n", err)
				}
				continue
			}
			fmt.Fprintln(stdout, "Shutting down...")
			if err := p.Stop(); err != nil {
				fmt.Fprintf(stderr, "Stop error: %v\n", err)
				return 1
			}
			return 0
		}
	}
}
