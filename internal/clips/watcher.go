package clips

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/acm19/clippics/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// watchSettle is how long a file must go without events before it is
// reported. A single capture produces one Create and several Write events.
const watchSettle = 300 * time.Millisecond

// Watch reports images added to dir until ctx is cancelled. A created or
// rewritten file is sent to found once it has settled. The channel is closed
// when Watch returns.
func Watch(ctx context.Context, dir string, found chan<- ImageInfo) error {
	defer close(found)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("Watching clipboard directory", "dir", dir)

	done := make(chan struct{})
	defer close(done)

	settled := make(chan string)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range pending {
			timer.Stop()
		}
	}()

	lister := &imageLister{extensions: NewExtensions()}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !lister.isCandidate(filepath.Base(event.Name)) {
				continue
			}
			logger.Debug("Clipboard entry changed", "path", event.Name, "op", event.Op.String())

			// A timer that already fired is on its way through settled and
			// reports the file then.
			if timer, ok := pending[event.Name]; ok {
				if timer.Stop() {
					timer.Reset(watchSettle)
				}
				continue
			}
			name := event.Name
			pending[name] = time.AfterFunc(watchSettle, func() {
				select {
				case settled <- name:
				case <-done:
				}
			})
		case name := <-settled:
			delete(pending, name)
			select {
			case found <- GetImageInfo(name):
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "dir", dir, "error", err)
		}
	}
}
