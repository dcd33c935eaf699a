package parse

// Cursor is a by-value view into a parsed document: an arena reference
// plus an offset. The zero Cursor is the null cursor; every navigation
// method on it is total and returns another null cursor rather than
// panicking, per spec.md §4.4.
type Cursor struct {
	a      *arena
	offset int
}

// IsNull reports whether c refers to no node.
func (c Cursor) IsNull() bool {
	return c.a == nil
}

// Value returns the node's raw bytes, or nil for the null cursor. The
// slice aliases the document's arena and must not be retained past the
// document's lifetime if the caller later mutates it.
func (c Cursor) Value() []byte {
	if c.a == nil {
		return nil
	}
	return c.a.nodeValue(c.offset)
}

// String returns the node's value as a string, or "" for the null cursor.
func (c Cursor) String() string {
	return string(c.Value())
}

// FirstChild returns a cursor to c's first child, or the null cursor if c
// is null or has no children.
func (c Cursor) FirstChild() Cursor {
	if c.a == nil {
		return Cursor{}
	}
	off := c.a.firstChild(c.offset)
	if off == -1 {
		return Cursor{}
	}
	return Cursor{c.a, off}
}

// NextSibling returns a cursor to c's next sibling, or the null cursor if
// c is null or is the last child.
func (c Cursor) NextSibling() Cursor {
	if c.a == nil {
		return Cursor{}
	}
	off := c.a.nextSibling(c.offset)
	if off == -1 {
		return Cursor{}
	}
	return Cursor{c.a, off}
}

// Equal reports whether c and other refer to the same node of the same
// document.
func (c Cursor) Equal(other Cursor) bool {
	return c.a == other.a && c.offset == other.offset
}

// Child returns the i'th child of c (0-based), or the null cursor if
// there are fewer than i+1 children.
func (c Cursor) Child(i int) Cursor {
	cur := c.FirstChild()
	for ; i > 0 && !cur.IsNull(); i-- {
		cur = cur.NextSibling()
	}
	return cur
}

// isLeaf reports whether c is a value-bearing leaf rather than a list.
// A packed node is always a leaf. A full node is a leaf only when it has
// no children and a non-empty value (a string >= 255 bytes, the one case
// that forces a leaf into the full-node encoding); a childless full node
// with an empty value is an empty list, not a leaf, since every list node
// is written with a nil value.
func (c Cursor) isLeaf() bool {
	if !c.a.isFull(c.offset) {
		return true
	}
	if c.a.firstChild(c.offset) != -1 {
		return false
	}
	return len(c.a.nodeValue(c.offset)) > 0
}

// IsLeaf reports whether c holds a value directly rather than a list of
// children. The null cursor is not a leaf.
func (c Cursor) IsLeaf() bool {
	if c.a == nil {
		return false
	}
	return c.isLeaf()
}

// NumChildren counts c's children by walking sibling links.
func (c Cursor) NumChildren() int {
	n := 0
	for cur := c.FirstChild(); !cur.IsNull(); cur = cur.NextSibling() {
		n++
	}
	return n
}
