package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"
)

// Library registers handles and resolves them from a filesystem
// Handles registered after Load starts are resolved by the next Load
type Library struct {
	fsys fs.FS

	mu    sync.Mutex
	items []Loadable

	loaded atomic.Int32
	failed atomic.Int32
}

// NewLibrary creates a library over fsys, nil leaves every handle unresolved
func NewLibrary(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// Register adds a handle for loading, nil library is a no-op so callers need not check
func (l *Library) Register(item Loadable) {
	if l == nil || item == nil {
		return
	}
	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()
}

// Image registers and returns a new image handle
func (l *Library) Image(path string, glyphs ...rune) *Image {
	img := NewImage(path, glyphs...)
	l.Register(img.Handle)
	return img
}

// Load resolves every pending handle with up to workers concurrent reads
// Missing files are counted and logged, the returned error joins all failures
func (l *Library) Load(ctx context.Context, workers int) error {
	if l == nil || l.fsys == nil {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	l.mu.Lock()
	pending := make([]Loadable, 0, len(l.items))
	for _, it := range l.items {
		if !it.Ready() {
			pending = append(pending, it)
		}
	}
	l.mu.Unlock()

	jobs := make(chan Loadable)
	var (
		wg     sync.WaitGroup
		errMu  sync.Mutex
		errAll []error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := range jobs {
				if err := l.loadOne(it); err != nil {
					l.failed.Add(1)
					errMu.Lock()
					errAll = append(errAll, err)
					errMu.Unlock()
					continue
				}
				l.loaded.Add(1)
			}
		}()
	}

feed:
	for _, it := range pending {
		select {
		case jobs <- it:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errAll...); err != nil {
		log.Printf("[asset] %d of %d failed: %v", len(errAll), len(pending), err)
		return err
	}
	return ctx.Err()
}

func (l *Library) loadOne(it Loadable) error {
	f, err := l.fsys.Open(it.Path())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, it.Path())
	}
	defer f.Close()
	return it.Decode(f)
}

// Progress returns resolved, failed and registered counts
func (l *Library) Progress() (loaded, failed, total int) {
	l.mu.Lock()
	total = len(l.items)
	l.mu.Unlock()
	return int(l.loaded.Load()), int(l.failed.Load()), total
}
