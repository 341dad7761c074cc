package watcher

import (
	"sync"
	"time"

	"github.com/assetstamp/stamp/internal/core/domain"
)

// Debouncer coalesces rapid file system events into one batched callback.
// Editors tend to emit several events per save; without coalescing every
// save would trigger multiple re-stamps of the same unit.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[domain.InternedString]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[domain.InternedString]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the debounce window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[domain.NewInternedString(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	paths := d.drainLocked()
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback(paths)
	}
}

// Flush synchronously delivers all pending paths. Used on shutdown so the
// last batch of changes is not lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// The timer already fired; let that delivery run instead.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	paths := d.drainLocked()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

func (d *Debouncer) drainLocked() []string {
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.String())
	}
	d.pending = make(map[domain.InternedString]struct{})
	return paths
}
