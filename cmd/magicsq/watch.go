// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/magicsq/config"
	"github.com/katalvlaran/magicsq/logging"
)

// debounce coalesces the burst of events an editor save produces.
const debounce = 200 * time.Millisecond

var errNothingToWatch = errors.New("watch: set --config or --grid-file")

// watch analyzes once, then again after every change to the config or grid
// file, until ctx is cancelled. A failed re-run is logged, not returned.
func watch(ctx context.Context, cmd *cobra.Command, o *rootOptions, cfg *config.Config, log *logging.Logger) error {
	targets := watchTargets(o.configPath, cfg.GridFile)
	if len(targets) == 0 {
		return errNothingToWatch
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	// Directories are watched so that rename-on-save editors keep working.
	dirs := make(map[string]struct{}, len(targets))
	for t := range targets {
		dirs[filepath.Dir(t)] = struct{}{}
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	out := cmd.OutOrStdout()
	if _, err := analyzeOnce(ctx, cfg, log, out, o.pretty); err != nil {
		log.Error(ctx, "analysis failed", zap.Error(err))
	}
	log.Info(ctx, "watching for changes", zap.Int("files", len(targets)))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, "watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !has(targets, filepath.Clean(ev.Name)) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug(ctx, "change detected", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, "watcher error", zap.Error(err))
		case <-timer.C:
			next, err := o.loadConfig(cmd)
			if err != nil {
				log.Error(ctx, "reload failed", zap.Error(err))
				continue
			}
			// A grid file named only in the reloaded config is picked up too.
			if p := next.GridFile; p != "" {
				p = filepath.Clean(p)
				targets[p] = struct{}{}
				if d := filepath.Dir(p); !has(dirs, d) && w.Add(d) == nil {
					dirs[d] = struct{}{}
				}
			}
			if _, err := analyzeOnce(ctx, next, log, out, o.pretty); err != nil {
				log.Error(ctx, "analysis failed", zap.Error(err))
			}
		}
	}
}

func watchTargets(paths ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		out[filepath.Clean(p)] = struct{}{}
	}

	return out
}

func has(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}
