package figplot

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot/source"
)

// debounceDelay collapses the burst of events an editor save produces.
var debounceDelay = 300 * time.Millisecond

// Watch renders once, then renders again whenever the configuration document
// or the data file changes, until ctx is done. Each run is reported to
// onResult; a failed run does not stop watching. The clipboard source is
// never watched.
func Watch(ctx context.Context, opts Options, onResult func(*Result, error)) error {
	logger := log.WithComponent("watch")
	delay := debounceDelay

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	w := &fileSet{watcher: watcher, dirs: make(map[string]bool), files: make(map[string]bool)}

	run := func() {
		res, err := Render(opts)
		onResult(res, err)

		paths := []string{opts.ConfigFile()}
		if res != nil && res.Config != nil && res.Config.DataFile != source.Clipboard {
			paths = append(paths, res.Config.DataFile)
		}
		for _, p := range paths {
			if err := w.add(p); err != nil {
				logger.Warn().Err(err).Str("path", p).Msg("cannot watch file")
			}
		}
	}
	run()

	debounce := time.NewTimer(delay)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("file changed")
				debounce.Reset(delay)
			}

		case <-debounce.C:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watcher error")
		}
	}
}

// fileSet watches the parent directories of a set of files, so files that
// editors replace by renaming keep being noticed.
type fileSet struct {
	watcher *fsnotify.Watcher
	dirs    map[string]bool
	files   map[string]bool
}

func (s *fileSet) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	s.files[abs] = true

	dir := filepath.Dir(abs)
	if s.dirs[dir] {
		return nil
	}
	if err := s.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	s.dirs[dir] = true
	return nil
}
