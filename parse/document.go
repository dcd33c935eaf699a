// Package parse implements the TML tokenizer, arena writer, recursive
// descent parser, and the cursor/printer/matcher operations over a parsed
// document.
package parse

// Document owns a parsed tree's arena and reports the sticky
// first-error-wins failure, if any, spec.md §7 requires. A Document with
// a non-nil Err still has a usable (possibly partial) Root: the parser
// always returns whatever tree it had built up to the failure point.
type Document struct {
	a    *arena
	root int
	err  *ParseError
}

// ParseText parses a copy of src, leaving src untouched. Use ParseInPlace
// to avoid the copy when src is not needed afterward.
func ParseText(src string) *Document {
	return ParseInPlace([]byte(src))
}

// ParseInPlace parses data, which the tokenizer may mutate in place while
// collapsing escape sequences (spec.md §4.1). Callers that still need the
// original bytes afterward must pass a copy.
func ParseInPlace(data []byte) *Document {
	a, root, err := parseDocument(data)
	d := &Document{a: a, root: root}
	if err != nil {
		d.err = err.(*ParseError)
	}
	if a != nil {
		a.shrinkToFit()
	}
	return d
}

// hasRoot reports whether the parse got far enough to write a root node
// (false only for spec.md's EmptyInput and MissingOpen cases).
func (d *Document) hasRoot() bool {
	return d.a != nil && d.root >= 0
}

// Err returns the document's sticky parse error, or nil if parsing
// succeeded. The concrete type is *ParseError; use errors.As to recover
// its Kind and Offset.
func (d *Document) Err() error {
	if d.err == nil {
		return nil
	}
	return d.err
}

// Root returns a cursor to the document's root list, or the null cursor
// if parsing never got far enough to write one (spec.md's EmptyInput and
// MissingOpen cases).
func (d *Document) Root() Cursor {
	if !d.hasRoot() {
		return Cursor{}
	}
	return Cursor{a: d.a, offset: d.root}
}

// Size returns the number of bytes the document's arena occupies.
func (d *Document) Size() int {
	if d.a == nil {
		return 0
	}
	return d.a.len()
}
