package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/linkcheck/internal/linkcheck"
)

// WatchCmd re-runs link validation whenever markdown files change under the root.
type WatchCmd struct {
	Root   string `arg:"" optional:"" default:"." help:"Root directory to watch"`
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

// Run executes the watch command. It performs an initial pass, then reprints
// the report after each debounced burst of markdown changes, until SIGINT or
// SIGTERM.
func (wc *WatchCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	absRoot, err := filepath.Abs(wc.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	if st, statErr := os.Stat(absRoot); statErr != nil || !st.IsDir() {
		return fmt.Errorf("root not found or not a directory: %s", absRoot)
	}

	formatter := linkcheck.NewFormatter(wc.Format)
	runPass := func() {
		result, err := runCheck(root.Config, absRoot)
		if err != nil {
			slog.Error("validation pass failed", "error", err)
			return
		}
		if err := formatter.Format(os.Stdout, result); err != nil {
			slog.Error("formatting output failed", "error", err)
		}
	}

	runPass()

	watcher, err := setupFileWatcher(absRoot)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	recheckReq, trigger := setupRecheckDebouncer()
	slog.Info("watching for markdown changes", "root", absRoot)

	for {
		select {
		case <-sigctx.Done():
			slog.Info("shutting down watcher")
			return nil
		case <-recheckReq:
			runPass()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

// setupFileWatcher creates and configures the filesystem watcher.
func setupFileWatcher(absRoot string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := addDirsRecursive(watcher, absRoot); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// setupRecheckDebouncer creates the recheck channel and trigger function.
// Bursts of filesystem events within the debounce window coalesce into one
// validation pass.
func setupRecheckDebouncer() (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	recheckReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(300*time.Millisecond, func() {
			select {
			case recheckReq <- struct{}{}:
			default:
			}
		})
	}

	return recheckReq, trigger
}

// handleFileEvent processes a filesystem event and triggers a recheck if needed.
func handleFileEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
			trigger()
			return
		}
	}
	// Any markdown change can invalidate the report, and so can creating or
	// removing a file another document links to.
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("watch add failed", "dir", path, "error", err)
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rechecks.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// Hidden files
	if strings.HasPrefix(base, ".") {
		return true
	}

	// Editor temp/swap files
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	if base == "Thumbs.db" {
		return true
	}

	return false
}
