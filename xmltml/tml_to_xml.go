package xmltml

import (
	"io"
	"strings"
	"sync"

	"github.com/judnich/tml"
)

// elementPattern matches "[name attr1 attr2 | content...]", exactly the
// shape FromXML produces and tml-convert.c's tml_to_xml hardcodes as
// element_markup_pattern ("[ \? \* | \* ]"): a name plus zero or more
// attributes grouped before the divider, content as bare siblings after
// it.
var (
	elementPatternOnce sync.Once
	elementPattern     tml.Cursor
)

func getElementPattern() tml.Cursor {
	elementPatternOnce.Do(func() {
		elementPattern = tml.ParseText(`[\? \* | \*]`).Root()
	})
	return elementPattern
}

// ToXML renders doc as XML onto w. Grounded on tml-convert.c's
// tml_to_xml/write_xml_node/write_xml_attrib.
func ToXML(doc *tml.Document, w io.Writer) error {
	if err := doc.Err(); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<!-- XML converted from TML -->")
	writeXMLNode(&b, doc.Root(), 0)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeXMLNode(b *strings.Builder, node tml.Cursor, indent int) {
	if node.IsNull() {
		return
	}
	if node.IsLeaf() {
		b.WriteString(escapeXMLText(node.String()))
		return
	}
	if node.Matches(getElementPattern()) {
		writeXMLElement(b, node, indent)
		return
	}
	// Doesn't match the recognized element shape: recurse into its
	// children rather than failing the whole conversion.
	for child := node.FirstChild(); !child.IsNull(); child = child.NextSibling() {
		writeXMLNode(b, child, indent)
		b.WriteByte(' ')
	}
}

func writeXMLElement(b *strings.Builder, node tml.Cursor, indent int) {
	group := node.Child(0)
	name := group.Child(0)

	writeIndent(b, indent)
	b.WriteByte('<')
	b.WriteString(escapeXMLText(name.String()))

	for attr := group.Child(1); !attr.IsNull(); attr = attr.NextSibling() {
		b.WriteByte(' ')
		writeXMLAttrib(b, attr)
	}

	content := node.Child(1)
	if content.IsNull() {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	multiLine := false
	for c := content; !c.IsNull(); c = c.NextSibling() {
		if !c.IsLeaf() {
			multiLine = true
		}
	}
	for c := content; !c.IsNull(); c = c.NextSibling() {
		writeXMLNode(b, c, indent+1)
		b.WriteByte(' ')
	}

	if multiLine {
		writeIndent(b, indent)
	}
	b.WriteString("</")
	b.WriteString(escapeXMLText(name.String()))
	b.WriteByte('>')
}

// writeXMLAttrib writes one "[attrname attrvalue]" node as name="value".
// Grounded on write_xml_attrib. Only the first item after the attribute
// name becomes the value: a leaf is written as its raw text, a list is
// flattened with Print (which keeps TML's escapes); any further items
// are not written.
func writeXMLAttrib(b *strings.Builder, attr tml.Cursor) {
	name := attr.Child(0)
	b.WriteString(escapeXMLText(name.String()))
	b.WriteString(`="`)

	value := name.NextSibling()
	if value.IsNull() || value.IsLeaf() {
		b.WriteString(escapeXMLText(value.String()))
		b.WriteByte('"')
		return
	}
	var buf [4096]byte
	n, fit := value.Print(buf[:], tml.PrintOpts{Bracketed: false})
	if !fit {
		big := make([]byte, n+1)
		n, _ = value.Print(big, tml.PrintOpts{Bracketed: false})
		b.WriteString(escapeXMLText(string(big[:n])))
	} else {
		b.WriteString(escapeXMLText(string(buf[:n])))
	}
	b.WriteByte('"')
}
