// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/z5labs/minfold/internal/otelslog"

	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	t.Run("will call onChange", func(t *testing.T) {
		t.Run("if a watched file is written", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "numbers.txt")
			require.NoError(t, os.WriteFile(path, []byte("1 2 3"), 0o644))

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			changed := make(chan struct{}, 1)
			done := make(chan error, 1)
			go func() {
				done <- Files(ctx, Config{
					Paths:    []string{path},
					Debounce: 10 * time.Millisecond,
					Log:      otelslog.Discard(),
				}, func(ctx context.Context) error {
					select {
					case changed <- struct{}{}:
					default:
					}
					return errors.New("handler errors are only logged")
				})
			}()

			// the watcher may not be registered yet, so keep writing
			ticker := time.NewTicker(50 * time.Millisecond)
			defer ticker.Stop()
		loop:
			for {
				select {
				case <-ctx.Done():
					t.Fatal("timed out waiting for change notification")
				case <-changed:
					break loop
				case <-ticker.C:
					require.NoError(t, os.WriteFile(path, []byte("3 2 1"), 0o644))
				}
			}

			cancel()
			require.NoError(t, <-done)
		})
	})

	t.Run("will ignore", func(t *testing.T) {
		t.Run("if an unwatched file in the same directory is written", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "numbers.txt")
			other := filepath.Join(dir, "other.txt")
			require.NoError(t, os.WriteFile(path, []byte("1"), 0o644))

			ctx, cancel := context.WithCancel(context.Background())

			called := make(chan struct{}, 1)
			done := make(chan error, 1)
			go func() {
				done <- Files(ctx, Config{
					Paths:    []string{path},
					Debounce: time.Millisecond,
					Log:      otelslog.Discard(),
				}, func(ctx context.Context) error {
					called <- struct{}{}
					return nil
				})
			}()

			for i := 0; i < 5; i++ {
				require.NoError(t, os.WriteFile(other, []byte("2"), 0o644))
				time.Sleep(20 * time.Millisecond)
			}

			cancel()
			require.NoError(t, <-done)
			require.Empty(t, called)
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the parent directory does not exist", func(t *testing.T) {
			err := Files(context.Background(), Config{
				Paths: []string{filepath.Join(t.TempDir(), "missing", "numbers.txt")},
			}, func(context.Context) error { return nil })
			require.Error(t, err)
		})
	})
}
