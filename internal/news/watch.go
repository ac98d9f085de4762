package news

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watcher re-runs a split whenever the changelog file changes.
// It uses fsnotify for efficient file change detection.
type Watcher struct {
	ChangelogPath string
	Splitter      *Splitter
	Debounce      time.Duration

	// OnRun is called after each triggered split with its result. A split
	// that fails (for example a half-typed header saved from an editor)
	// does not stop the watch; the error is reported and watching resumes.
	OnRun func(*Summary, error)
}

// NewWatcher creates a Watcher that re-splits changelogPath into splitter's
// output directory on every change, coalescing bursts of events within the
// debounce window.
func NewWatcher(changelogPath string, splitter *Splitter, debounce time.Duration) *Watcher {
	return &Watcher{
		ChangelogPath: changelogPath,
		Splitter:      splitter,
		Debounce:      debounce,
	}
}

// Watch blocks until the context is cancelled, re-running the split whenever
// the changelog file is written, created, or renamed. The parent directory is
// watched rather than the file itself, because editors commonly replace the
// file on save and that drops a watch registered on the file.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.ChangelogPath)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.collectEvents(ctx, fw, changes) })
	g.Go(func() error { return w.runLoop(ctx, changes) })

	return g.Wait()
}

// collectEvents filters watcher events down to changes of the changelog file
// and signals them on the changes channel without blocking.
func (w *Watcher) collectEvents(ctx context.Context, fw *fsnotify.Watcher, changes chan<- struct{}) error {
	target := filepath.Clean(w.ChangelogPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				select {
				case changes <- struct{}{}:
				default:
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching changelog: %w", err)
		}
	}
}

// runLoop waits out the debounce window after a change signal, drains any
// coalesced signals, and runs the split.
func (w *Watcher) runLoop(ctx context.Context, changes chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
		}

		if w.Debounce > 0 {
			timer := time.NewTimer(w.Debounce)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}

	drain:
		for {
			select {
			case <-changes:
			default:
				break drain
			}
		}

		summary, err := w.Splitter.SplitFile(w.ChangelogPath)
		if w.OnRun != nil {
			w.OnRun(summary, err)
		}
	}
}
