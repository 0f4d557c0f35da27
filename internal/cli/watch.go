// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events one save produces.
const reloadDelay = 200 * time.Millisecond

// watchFile calls onChange after path is written or replaced, at most
// once per burst of events. The directory is watched so editors that
// save through a rename are seen too. It returns once the watcher is
// running; the watch stops when ctx is done.
func watchFile(ctx context.Context, path string, log *slog.Logger, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	go func() {
		defer w.Close()

		var pending *time.Timer
		defer func() {
			if pending != nil {
				pending.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}

				log.Debug("media file changed", "path", target, "op", ev.Op.String())
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(reloadDelay, onChange)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watching media file", "error", err)
			}
		}
	}()

	return nil
}
