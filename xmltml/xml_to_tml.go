package xmltml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/judnich/tml"
)

// FromXML decodes the XML document read from r and re-renders it as TML,
// returning the parsed result as a *tml.Document. Grounded on
// tml-convert.c's xml_to_tml/write_tml_node: each element becomes
// "[name attr1 attr2 | content...]" — name and attributes grouped before
// the divider, content following it as bare siblings, exactly the shape
// tml_to_xml's element_markup_pattern later recognizes. Non-UTF-8 input
// is transcoded first via charsetReader.
func FromXML(r io.Reader) (*tml.Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var b strings.Builder
	b.WriteString("|| TML converted from XML\n")

	if err := copyElement(dec, &b); err != nil {
		return nil, fmt.Errorf("xmltml: decoding XML: %w", err)
	}

	doc := tml.ParseText(b.String())
	if err := doc.Err(); err != nil {
		return nil, fmt.Errorf("xmltml: converted TML failed to parse (this is a bug in FromXML): %w", err)
	}
	return doc, nil
}

// copyElement reads tokens up to and including the document's first
// (root) element and writes its TML rendering to b.
func copyElement(dec *xml.Decoder, b *strings.Builder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return writeElement(dec, b, start, 0)
		}
	}
}

func writeIndent(b *strings.Builder, indent int) {
	b.WriteByte('\n')
	for i := 0; i < indent; i++ {
		b.WriteByte('\t')
	}
}

// writeElement writes one element, having already consumed its
// StartElement token, through to its matching EndElement.
func writeElement(dec *xml.Decoder, b *strings.Builder, start xml.StartElement, indent int) error {
	writeIndent(b, indent)
	b.WriteByte('[')
	b.WriteString(escapeTML(start.Name.Local, EscapeTrimmed))

	for _, attr := range start.Attr {
		b.WriteString(" [")
		b.WriteString(escapeTML(attr.Name.Local, EscapeTrimmed))
		b.WriteByte(' ')
		b.WriteString(escapeTML(attr.Value, EscapeVerbatim))
		b.WriteByte(']')
	}

	b.WriteString(" |")

	childCount := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if childCount == 0 {
				b.WriteByte(' ')
			}
			childCount++
			if err := writeElement(dec, b, t, indent+1); err != nil {
				return err
			}
		case xml.CharData:
			text := escapeTML(string(t), EscapeTrimmed)
			if text != "" {
				if childCount == 0 {
					b.WriteByte(' ')
				}
				childCount++
				b.WriteString(text)
			}
		case xml.EndElement:
			if childCount > 1 {
				writeIndent(b, indent)
			}
			b.WriteString("] ")
			return nil
		}
	}
}
