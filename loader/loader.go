package loader

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// Bundle collects the set of files to compile into a Registry, following
// the teacher's Bundle (bundle.go, deleted once ported): a builder that
// accumulates template/document sources and, optionally, watches them for
// changes. Unlike the teacher's Bundle, Compile here never stops at the
// first bad file — every file's parse error is collected and returned
// together via go.uber.org/multierr, and every file that could be read
// still gets an entry in the resulting Registry (even one whose Document
// carries a sticky parse error), so one broken file never hides the rest.
type Bundle struct {
	files   []string
	watch   bool
	watcher *watcher
	err     error
}

// NewBundle returns an empty Bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// WatchFiles enables fsnotify-backed recompilation of the bundle's files.
// It must be called before Compile.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	b.watch = watch
	return b
}

// AddDir adds every *.tml file found under root, including subdirectories.
func (b *Bundle) AddDir(root string) *Bundle {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".tml") {
			return nil
		}
		b.AddFile(path)
		return nil
	})
	if err != nil {
		b.err = multierr.Append(b.err, err)
	}
	return b
}

// AddFile adds a single file to the bundle.
func (b *Bundle) AddFile(path string) *Bundle {
	b.files = append(b.files, path)
	return b
}

// Compile reads and parses every file in the bundle into a Registry. It
// returns the Registry (populated with every file that could be read,
// parse successes and failures alike) along with a combined error built
// from every file's read or parse failure, or nil if all files parsed
// cleanly. A file that cannot be read gets no Registry entry. If AddDir
// failed to walk a directory, Compile returns a nil Registry and that
// error without reading any file. If WatchFiles was
// enabled, Compile also starts a background watch that recompiles
// individual files into the same Registry as they change on disk.
func (b *Bundle) Compile() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	reg := NewRegistry()
	var combined error
	for _, path := range b.files {
		data, err := os.ReadFile(path)
		if err != nil {
			combined = multierr.Append(combined, err)
			continue
		}
		reg.set(path, data)
		if err := reg.ErrFilePos(path); err != nil {
			combined = multierr.Append(combined, err)
		}
	}

	if b.watch {
		w, err := newWatcher(reg, b.files)
		if err != nil {
			combined = multierr.Append(combined, err)
		} else {
			b.watcher = w
			go w.run()
		}
	}

	return reg, combined
}

// Close stops the bundle's file watch, if one was started. It is a no-op
// if WatchFiles was never enabled.
func (b *Bundle) Close() error {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.close()
}
