package xmltml

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// legacyCharsets maps the declared-encoding names FromXML is willing to
// transcode to UTF-8 before handing the stream to encoding/xml, which
// only understands UTF-8, UTF-16, and US-ASCII natively. Grounded on the
// teacher's golang.org/x/text dependency (previously exercised only by
// soymsg/pomsg's language-tag matching, which does not survive into this
// repo — see DESIGN.md).
var legacyCharsets = map[string]encoding.Encoding{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// charsetReader is installed as xml.Decoder.CharsetReader so FromXML can
// accept legacy-encoded XML documents, not just UTF-8 ones.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, ok := legacyCharsets[normalizeCharset(charset)]
	if !ok {
		return nil, fmt.Errorf("xmltml: unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

func normalizeCharset(charset string) string {
	out := make([]byte, 0, len(charset))
	for i := 0; i < len(charset); i++ {
		c := charset[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
