package parse

import "bytes"

// Matches reports whether c structurally matches pattern, where pattern
// is itself a parsed document subtree that may contain the wildcard
// escapes from spec.md §4.1: a leaf holding WildOne matches any single
// node in that position, a leaf holding WildAny matches the remainder of
// a child sequence unconditionally (any pattern siblings after it are
// never consulted). Grounded on tml_parser.c's tml_compare_nodes and
// check_wildcard.
func (c Cursor) Matches(pattern Cursor) bool {
	return compareNodes(c, pattern)
}

func compareNodes(node, pattern Cursor) bool {
	if pattern.IsNull() {
		return node.IsNull()
	}
	if node.IsNull() {
		return false
	}

	if pattern.isLeaf() {
		pv := pattern.Value()
		if isWildcard(pv) {
			return true
		}
		if !node.isLeaf() {
			return false
		}
		return bytes.Equal(node.Value(), pv)
	}

	if node.isLeaf() {
		return false
	}
	return compareChildren(node.FirstChild(), pattern.FirstChild())
}

// compareChildren walks two child sequences side by side. A WILD_ANY
// pattern leaf ends the comparison successfully regardless of position or
// what remains on either side; a WILD_ONE pattern leaf consumes exactly
// one node on each side without comparing its contents.
func compareChildren(node, pattern Cursor) bool {
	for {
		if pattern.isWildAnyLeaf() {
			return true
		}
		if pattern.IsNull() {
			return node.IsNull()
		}
		if node.IsNull() {
			return false
		}
		if !compareNodes(node, pattern) {
			return false
		}
		node = node.NextSibling()
		pattern = pattern.NextSibling()
	}
}

func (c Cursor) isWildAnyLeaf() bool {
	if c.IsNull() || !c.isLeaf() {
		return false
	}
	v := c.Value()
	return len(v) == 1 && v[0] == WildAny
}

func isWildcard(v []byte) bool {
	return len(v) == 1 && (v[0] == WildOne || v[0] == WildAny)
}

// FindFirstChild returns the first child of c that matches pattern, or
// the null cursor if none does. Grounded on tml_find_first_child.
func (c Cursor) FindFirstChild(pattern Cursor) Cursor {
	for child := c.FirstChild(); !child.IsNull(); child = child.NextSibling() {
		if compareNodes(child, pattern) {
			return child
		}
	}
	return Cursor{}
}

// FindNextSibling returns the first of c's following siblings that
// matches pattern, or the null cursor if none does. Grounded on
// tml_find_next_sibling.
func (c Cursor) FindNextSibling(pattern Cursor) Cursor {
	for sib := c.NextSibling(); !sib.IsNull(); sib = sib.NextSibling() {
		if compareNodes(sib, pattern) {
			return sib
		}
	}
	return Cursor{}
}
