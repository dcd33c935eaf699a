package loader

import (
	"os"

	"github.com/fsnotify/fsnotify"
)

// watcher recompiles a single changed file's Document in place within reg,
// directly adapted from the teacher's Bundle.recompiler (bundle.go,
// deleted once ported) to the modern fsnotify API (Add/Events/Errors
// instead of the old code.google.com/p/go.exp/fsnotify's Watch/Event/
// Error) and to recompiling one file at a time instead of the whole
// bundle, since the Registry already holds every file independently.
type watcher struct {
	fsw  *fsnotify.Watcher
	reg  *Registry
	done chan struct{}
}

func newWatcher(reg *Registry, files []string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := fsw.Add(f); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return &watcher{fsw: fsw, reg: reg, done: make(chan struct{})}, nil
}

func (w *watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		case <-w.done:
			return
		}
	}
}

func (w *watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	data, err := os.ReadFile(ev.Name)
	if err != nil {
		Logger.Println(err)
		return
	}
	w.reg.set(ev.Name, data)
	if err := w.reg.ErrFilePos(ev.Name); err != nil {
		Logger.Println(err)
		return
	}
	Logger.Printf("recompiled %s", ev.Name)
}

func (w *watcher) close() error {
	close(w.done)
	return w.fsw.Close()
}
