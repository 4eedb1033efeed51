package config

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/linskybing/exam-hub/internal/domain/exam"
	"go.uber.org/zap"
)

const reloadDelay = 200 * time.Millisecond

// WatchFile reloads the hub config whenever a YAML or CSV file changes in the hub config
// directory or in one of the active course directories. A failed reload is logged and the
// previous snapshot stays in place.
func WatchFile(ctx context.Context, path string, loader *Loader, state *State, log *zap.SugaredLogger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for _, dir := range watchDirs(path, state.Current()) {
		if err := w.Add(dir); err != nil {
			log.Warnw("cannot watch directory", "dir", dir, "error", err)
		}
	}

	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevant(ev) {
					continue
				}
				time.Sleep(reloadDelay)
				cfg, err := loader.Load(path)
				if err != nil {
					log.Warnw("reload failed, keeping previous config", "error", err)
					continue
				}
				state.ApplyNewConfig(cfg)
				for _, dir := range watchDirs(path, cfg) {
					_ = w.Add(dir)
				}
				log.Infow("config reloaded", "trigger", ev.Name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warnw("watch error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml", ".csv":
		return true
	}
	return false
}

func watchDirs(path string, cfg *exam.ServerConfig) []string {
	dirs := []string{filepath.Dir(path)}
	if cfg == nil || cfg.NbGrader.ExamCourseDir == "" {
		return dirs
	}
	courseRoot := filepath.Join(filepath.Dir(path), cfg.NbGrader.ExamCourseDir)
	seen := map[string]bool{}
	for _, c := range cfg.NbGrader.Courses {
		dir := filepath.Join(courseRoot, c.Name)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
