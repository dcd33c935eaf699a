package parse

import "fmt"

// parser turns a token stream into an arena tree. Error handling follows
// the teacher's tree.recover/errorf/unexpected idiom: a failure panics
// with a *ParseError, and the top-level entry point recovers it. Only the
// first error ever recorded survives, matching spec.md §7's sticky
// first-error-wins model.
type parser struct {
	toks stream
	a    *arena
	err  *ParseError
}

// parseErrorPanic lets errorf unwind the recursive descent via panic while
// still being distinguishable from a genuine runtime panic in recover.
type parseErrorPanic struct{ err *ParseError }

// errorf records the first parse failure and unwinds the recursive
// descent via panic/recover. Since parseDocument recovers exactly once at
// the top, only the first errorf call in a given parse is ever reachable
// — that is what makes the document's error sticky.
func (p *parser) errorf(kind ErrorKind, offset int, format string, args ...interface{}) {
	p.err = &ParseError{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
	panic(parseErrorPanic{p.err})
}

func (p *parser) recover(errp *error) {
	if r := recover(); r != nil {
		pe, ok := r.(parseErrorPanic)
		if !ok {
			panic(r)
		}
		*errp = pe.err
	}
}

// parseDocument parses the full contents of data (which it may mutate in
// place, per the tokenizer's escape collapsing) and returns the resulting
// arena and root offset, or a sticky *ParseError.
func parseDocument(data []byte) (a *arena, root int, err error) {
	p := &parser{toks: open(data), a: newArena(len(data) + 16)}
	a = p.a
	root = -1
	defer p.recover(&err)

	first := p.toks.pop()
	if first.kind == tokenEOF {
		p.errorf(ErrEmptyInput, first.offset, "document is empty")
	}
	if first.kind != tokenOpen {
		p.errorf(ErrMissingOpen, first.offset, "document must begin with '['")
	}

	rootOffset, werr := p.a.writeFull(nil)
	if werr != nil {
		p.errorf(ErrOutOfMemory, first.offset, "%s", werr)
	}
	root = rootOffset

	firstChild, closeTok := p.parseChildren()
	if firstChild != -1 {
		p.a.patchFirstChild(rootOffset, firstChild)
	}
	if closeTok.kind != tokenClose {
		p.errorf(ErrUnterminated, first.offset, "unterminated list starting here")
	}

	trailing := p.toks.pop()
	if trailing.kind != tokenEOF {
		p.errorf(ErrTrailingContent, trailing.offset, "unexpected content after the document's closing ']'")
	}

	return p.a, rootOffset, nil
}

// parseChildren consumes tokens belonging to the list currently open,
// handling nested lists and divider rewrites, until it sees a CLOSE or
// EOF token (which it returns, letting the caller decide whether that was
// expected). It returns the arena offset of the resulting first child, or
// -1 for an empty list.
func (p *parser) parseChildren() (firstChild int, terminator token) {
	var items []int

	for {
		tok := p.toks.pop()

		switch tok.kind {
		case tokenItem:
			items = append(items, p.writeLeaf(tok))

		case tokenOpen:
			items = append(items, p.parseList(tok))

		case tokenDivider:
			items = p.rewriteDivider(items, tok)

		case tokenClose, tokenEOF:
			return p.linkSiblings(items), tok

		default:
			p.errorf(ErrUnterminated, tok.offset, "unexpected token")
		}
	}
}

// parseList parses one nested "[ ... ]" starting just after its OPEN
// token, which open already consumed, and returns the offset of the full
// node written for it.
func (p *parser) parseList(open token) int {
	offset, err := p.a.writeFull(nil)
	if err != nil {
		p.errorf(ErrOutOfMemory, open.offset, "%s", err)
	}
	firstChild, terminator := p.parseChildren()
	if firstChild != -1 {
		p.a.patchFirstChild(offset, firstChild)
	}
	if terminator.kind != tokenClose {
		p.errorf(ErrUnterminated, open.offset, "unterminated list starting here")
	}
	return offset
}

// writeLeaf writes an item's value as a packed node when it fits a
// one-byte sibling gap, or a full (childless) node otherwise, per
// spec.md §4.2's "leaves >= 255 bytes use a full node" rule.
func (p *parser) writeLeaf(tok token) int {
	var offset int
	var err error
	if len(tok.value) <= maxPackedValue {
		offset, err = p.a.writePacked(tok.value)
	} else {
		offset, err = p.a.writeFull(tok.value)
	}
	if err != nil {
		p.errorf(ErrOutOfMemory, tok.offset, "%s", err)
	}
	return offset
}

// rewriteDivider implements the one-pass divider rewrite: everything
// written at this level so far becomes the children of a single new
// full node, which replaces them as the (sole, so far) item in the
// running list. Grounded on tml_parser.c's divider handling: a forward
// graph edit, never a buffer rewrite.
func (p *parser) rewriteDivider(items []int, tok token) []int {
	group, err := p.a.writeFull(nil)
	if err != nil {
		p.errorf(ErrOutOfMemory, tok.offset, "%s", err)
	}
	if first := p.linkSiblings(items); first != -1 {
		p.a.patchFirstChild(group, first)
	}
	return []int{group}
}

// linkSiblings patches the next-sibling link of each offset in items to
// point at the one after it, the last to "none", and returns items[0] (or
// -1 if items is empty).
func (p *parser) linkSiblings(items []int) int {
	if len(items) == 0 {
		return -1
	}
	for i := 0; i < len(items)-1; i++ {
		p.a.patchNextSibling(items[i], items[i+1])
	}
	p.a.patchNextSibling(items[len(items)-1], 0)
	return items[0]
}
