package request

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/sealsel/sealsel/pkg/seal"
)

// Watch monitors path for changes and calls onChange with the newly loaded
// request each time the file is saved. It runs until ctx is cancelled.
//
// If a reload fails (e.g., invalid YAML or a zero bore), the error is logged
// and onChange is not called.
func Watch(ctx context.Context, path string, onChange func(seal.Request)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	slog.Info("request: watching for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// Atomic saves show up as Create on the directory watch.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			req, err := Load(target)
			if err != nil {
				slog.Error("request: reload failed, keeping previous request",
					"path", target, "err", err)
				continue
			}

			slog.Info("request: reloaded", "path", target)
			onChange(req)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("request: watcher error", "err", err)
		}
	}
}
