// Package assets serves the static files either from the binary or from disk
// and tracks a content version used to bust browser caches.
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Assets is a read-only static file tree.
type Assets struct {
	fs      afero.Fs
	mu      sync.RWMutex
	version string
}

// FromEmbed serves the "static" directory of embedded.
func FromEmbed(embedded fs.FS) (*Assets, error) {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded static dir: %w", err)
	}
	return newAssets(afero.FromIOFS{FS: sub})
}

// FromDisk serves dir from the local filesystem.
func FromDisk(dir string) (*Assets, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s is not a directory", dir)
	}
	return newAssets(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
}

// FromFs wraps an arbitrary afero filesystem. Tests use it with a MemMapFs.
func FromFs(fsys afero.Fs) (*Assets, error) {
	return newAssets(fsys)
}

func newAssets(fsys afero.Fs) (*Assets, error) {
	a := &Assets{fs: fsys}
	if err := a.Refresh(); err != nil {
		return nil, err
	}
	return a, nil
}

// FS exposes the tree as an io/fs filesystem for the HTTP layer.
func (a *Assets) FS() fs.FS {
	return afero.NewIOFS(a.fs)
}

// Version is a short digest of every file's name and content.
func (a *Assets) Version() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.version
}

// Refresh recomputes Version.
func (a *Assets) Refresh() error {
	var names []string
	err := afero.Walk(a.fs, ".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk static assets: %w", err)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		data, err := afero.ReadFile(a.fs, name)
		if err != nil {
			return fmt.Errorf("failed to read static asset %s: %w", name, err)
		}
		h.Write([]byte(name))
		h.Write(data)
	}

	a.mu.Lock()
	a.version = hex.EncodeToString(h.Sum(nil))[:12]
	a.mu.Unlock()
	return nil
}

// Watch refreshes the version whenever a file under dir changes, until ctx
// is canceled. Only meaningful for FromDisk assets.
func (a *Assets) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create asset watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if err := a.Refresh(); err != nil {
					slog.Warn("failed to refresh asset version", "error", err)
					continue
				}
				slog.Info("static assets changed", "file", ev.Name, "version", a.Version())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("asset watcher error", "error", err)
			}
		}
	}()
	return nil
}
