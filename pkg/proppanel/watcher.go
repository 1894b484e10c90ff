package proppanel

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the default debounce interval for file watch events.
const DefaultWatchDebounce = 500 * time.Millisecond

// configWatcher reloads a panel when its configuration file changes. Saves
// that leave the content as it was do not trigger a reload.
type configWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onReload func()
	onError  func(error)

	last []byte

	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// newConfigWatcher watches path. onReload runs after debounce of quiet
// following a change and reports its own failures; onError receives only
// errors from the file watch itself.
func newConfigWatcher(path string, debounce time.Duration, onReload func(), onError func(error)) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// editors that save by rename replace the inode, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	last, _ := os.ReadFile(path)
	return &configWatcher{
		watcher:   watcher,
		path:      path,
		debounce:  debounce,
		onReload:  onReload,
		onError:   onError,
		last:      last,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching for file changes in a goroutine.
func (cw *configWatcher) Start() {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.running {
		return
	}
	cw.running = true
	go cw.loop()
}

// Stop stops the watcher and waits for its goroutine to exit.
func (cw *configWatcher) Stop() {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		return
	}
	cw.running = false
	cw.mu.Unlock()

	close(cw.stopCh)
	<-cw.stoppedCh
}

// matches reports whether an event path names the watched file.
func (cw *configWatcher) matches(name string) bool {
	if filepath.Base(name) != filepath.Base(cw.path) {
		return false
	}
	a, errA := filepath.Abs(name)
	b, errB := filepath.Abs(cw.path)
	return errA != nil || errB != nil || a == b
}

// changed reads the file and reports whether its content differs from the
// last reload. A missing file (mid-rename) counts as unchanged.
func (cw *configWatcher) changed() bool {
	content, err := os.ReadFile(cw.path)
	if err != nil || bytes.Equal(content, cw.last) {
		return false
	}
	cw.last = content
	return true
}

func (cw *configWatcher) loop() {
	defer close(cw.stoppedCh)
	defer cw.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-cw.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !cw.matches(event.Name) || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(cw.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if cw.changed() && cw.onReload != nil {
				cw.onReload()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			if cw.onError != nil {
				cw.onError(err)
			}
		}
	}
}
