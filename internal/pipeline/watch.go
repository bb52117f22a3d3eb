package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/backmassage/pathprune/internal/config"
	"github.com/backmassage/pathprune/internal/logging"
)

// ErrNoConfigFile is returned by Watch when there is no file to watch.
var ErrNoConfigFile = errors.New("watch needs a config file (--config)")

// Reloader returns the current configuration. Watch calls it once up front
// and again after every change to the config file.
type Reloader func() (*config.Config, error)

// Watch rewrites paths and writes the report to out, then does it again
// each time file changes, until ctx is cancelled. The parent directory is
// watched rather than the file so editors that replace the file on save
// are still seen. A config that fails to reload is logged and skipped.
func Watch(ctx context.Context, log *logging.Logger, file string, reload Reloader, paths []string, out io.Writer) error {
	if file == "" {
		return ErrNoConfigFile
	}
	target := filepath.Clean(file)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	run := func() error {
		cfg, err := reload()
		if err != nil {
			log.Warn("Config not applied: %v", err)
			return nil
		}
		res, err := Process(ctx, cfg, log, paths)
		if err != nil {
			return err
		}
		if err := WriteReport(out, cfg.Format, res.Entries, paletteFor(cfg, out)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logSummary(log, &res.Stats)
		return nil
	}

	if err := run(); err != nil {
		return err
	}
	log.Info("Watching %s (Ctrl+C to stop)", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Info("Config changed, re-running")
			if err := run(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher: %v", err)
		}
	}
}
