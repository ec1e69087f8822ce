package binary

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/todozi/tdz-gateway/internal/logging"
)

// pathWatcher drops the executor's resolved-path cache when the binary
// behind it is replaced or removed, so an upgraded or uninstalled tdz
// does not keep being invoked through a stale cache entry.
type pathWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	stopCh  chan struct{}
}

// watchPath watches the candidate's parent directory and calls
// invalidate when the candidate itself changes. Watching the directory
// instead of the file catches atomic rename-over installs.
func watchPath(path string, invalidate func()) (*pathWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &pathWatcher{
		watcher: fw,
		path:    path,
		stopCh:  make(chan struct{}),
	}
	go w.run(invalidate)
	return w, nil
}

func (w *pathWatcher) run(invalidate func()) {
	log := logging.Component("executor")

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename|fsnotify.Chmod) != 0 {
				log.Info().Str("path", w.path).Str("op", ev.Op.String()).Msg("resolved tdz binary changed, re-probing on next invocation")
				invalidate()
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("binary watcher error")
		}
	}
}

// close stops the watcher. It must not block: invalidation can arrive
// from the watch goroutine itself, which ends up back here through the
// executor's forget path.
func (w *pathWatcher) close() error {
	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}
	return w.watcher.Close()
}
