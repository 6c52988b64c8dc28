package config

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads a config file whenever it changes on disk.
// Only the latest successfully parsed file is kept in Updates.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	Updates chan *File
	Errors  chan error
	done    chan struct{}
	once    sync.Once
	err     error
}

// Watch starts watching path until ctx is done or Close is called.
// The parent directory is watched so editors that replace the file are seen.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve config path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	w := &Watcher{
		path:    abs,
		fs:      fsw,
		Updates: make(chan *File, 1),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Close stops the watcher
func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.done)
		w.err = w.fs.Close()
	})
	return w.err
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case <-w.done:
			return
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			f, err := LoadFile(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.publish(f)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// publish replaces any unread update
func (w *Watcher) publish(f *File) {
	select {
	case w.Updates <- f:
		return
	default:
	}
	select {
	case <-w.Updates:
	default:
	}
	w.Updates <- f
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
		// Error buffer full, drop
	}
}
