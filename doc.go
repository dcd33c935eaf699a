/*
Package tml parses TML, a compact bracketed tree markup language, into an
in-memory tree and provides operations to navigate, compare, and print it.

A TML document is a single bracketed list of items, where an item is
either a bare word or another bracketed list:

	[recipe [name Pancakes] [serves 4] [step mix] [step cook] [step eat]]

The vertical bar regroups the items written so far at the current nesting
level under one new child, one level deep:

	[a b | c d]   =>   [[a b] c d]

Parsing is single-pass and in-place: ParseInPlace tokenizes and writes the
tree into a byte arena while collapsing backslash escapes
(\n \r \t \s \? \* and a literal passthrough for any other escaped byte)
directly in the caller's buffer, with no suspension points and no separate
AST allocation per node. A parse either succeeds or fails with a single,
sticky error — the first problem encountered, never a list of them.

Basic usage

	doc := tml.ParseText(`[recipe [name Pancakes] [serves 4]]`)
	if err := doc.Err(); err != nil {
	    log.Fatal(err)
	}
	name := doc.Root().FindFirstChild(tml.ParseText(`[name \*]`).Root()).Child(1)
	fmt.Println(name) // Pancakes

Cursor is a small by-value type (an arena reference plus an offset); the
null Cursor is returned by any navigation that has nowhere to go, and every
Cursor method is safe to call on it. Comparisons and searches accept
wildcard patterns built the same way real documents are: \? matches
exactly one sibling, \* matches the remainder of a sibling list regardless
of what follows it in the pattern.

Package parse (github.com/judnich/tml/parse) holds all of the above;
this package re-exports the pieces applications need so most callers never
import parse directly. Package loader adds directory/registry loading and
optional live recompilation on file change. Package xmltml converts
between TML and XML, and cmd/tmlconvert is a CLI built on both.
*/
package tml
