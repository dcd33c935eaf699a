// Package xmltml converts between TML and XML, grounded on
// tools/tml-convert/tml-convert.c: an XML element becomes a TML list of
// the shape "[name attr1 attr2 | content...]", name and attributes
// grouped before the divider and content following as bare siblings —
// the same shape tml-convert hardcodes as its element_markup_pattern and
// this package's ToXML recognizes via the matcher.
package xmltml
