// Package loader aggregates TML documents loaded from disk into a named
// Registry, optionally keeping them up to date as their files change.
package loader

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/judnich/tml"
)

// Logger is used to print compile and recompile diagnostics when using
// WatchFiles, following the teacher's package-level prefixed logger
// convention rather than a structured framework — this package stays
// dependency-light, matching the core tml package.
var Logger = log.New(os.Stderr, "[tml] ", 0)

// Registry provides named access to a collection of parsed TML documents,
// generalizing the teacher's template.Registry from a flat list of
// Soy templates to a name -> Document map.
type Registry struct {
	mu      sync.RWMutex
	docs    map[string]*tml.Document
	sources map[string][]byte
	order   []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		docs:    make(map[string]*tml.Document),
		sources: make(map[string][]byte),
	}
}

// set parses src and stores the resulting Document under name, replacing
// any existing entry. It always stores a Document, even a failed parse's
// partial one, so a bad file doesn't hide the others.
func (r *Registry) set(name string, src []byte) {
	own := append([]byte(nil), src...)
	doc := tml.ParseInPlace(own)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[name]; !exists {
		r.order = append(r.order, name)
	}
	r.docs[name] = doc
	r.sources[name] = src
}

// Document returns the parsed document for name, and whether it exists.
func (r *Registry) Document(name string) (*tml.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[name]
	return d, ok
}

// Names returns the registered document names in the order they were
// first added.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// LineCol computes the 1-based line and column of a byte offset within
// name's original source, for positional error reporting. Grounded on
// the teacher's Registry.LineNumber/ColNumber (template/registry.go).
func (r *Registry) LineCol(name string, offset int) (line, col int) {
	r.mu.RLock()
	src, ok := r.sources[name]
	r.mu.RUnlock()
	if !ok {
		Logger.Println("document not found:", name)
		return 0, 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	prefix := string(src[:offset])
	line = 1 + strings.Count(prefix, "\n")
	if idx := strings.LastIndex(prefix, "\n"); idx >= 0 {
		col = offset - idx
	} else {
		col = offset + 1
	}
	return line, col
}

// ErrFilePos wraps name's parse error, if any, as an errortypes.ErrFilePos
// carrying the document's filename alongside its line/col/offset.
func (r *Registry) ErrFilePos(name string) error {
	doc, ok := r.Document(name)
	if !ok || doc.Err() == nil {
		return nil
	}
	pe, ok := doc.Err().(*tml.ParseError)
	if !ok {
		return doc.Err()
	}
	r.mu.RLock()
	src := r.sources[name]
	r.mu.RUnlock()
	return pe.AsErrFilePos(name, src)
}
