// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package watch re-runs a function whenever one of a set of files changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/z5labs/minfold/internal/slogfield"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Config
type Config struct {
	// Paths are the files to watch. Their parent directories are watched
	// so files replaced by editors are still noticed.
	Paths []string

	// Debounce is how long to wait after the last change before calling
	// the change handler.
	Debounce time.Duration

	Log *slog.Logger
}

// Files calls onChange every time one of cfg.Paths is written or created,
// until ctx is cancelled. Errors returned by onChange are logged and do
// not stop watching.
func Files(ctx context.Context, cfg Config, onChange func(context.Context) error) error {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	watched := make(map[string]struct{}, len(cfg.Paths))
	dirs := make(map[string]struct{})
	for _, p := range cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for dir := range dirs {
		err := w.Add(dir)
		if err != nil {
			w.Close()
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return w.Close()
	})
	g.Go(func() error {
		for err := range w.Errors {
			log.WarnContext(gctx, "file watcher reported an error", slogfield.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var fire <-chan time.Time
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, ok := watched[filepath.Clean(ev.Name)]; !ok {
					continue
				}
				log.DebugContext(gctx, "watched file changed", slogfield.String("path", ev.Name))
				fire = time.After(cfg.Debounce)
			case <-fire:
				fire = nil
				err := onChange(gctx)
				if err != nil {
					log.ErrorContext(gctx, "failed to handle file change", slogfield.Error(err))
				}
			}
		}
	})
	return g.Wait()
}
