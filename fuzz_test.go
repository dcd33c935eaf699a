package tml_test

import (
	"testing"

	"github.com/judnich/tml"
)

// FuzzParse feeds arbitrary bytes through the real parse entry point and
// asserts it never panics, regardless of the document's validity. This
// replaces the package's old go-fuzz style `func Fuzz(data []byte) int`
// entry point with the native testing.F corpus.
func FuzzParse(f *testing.F) {
	seeds := []string{
		`[a b c]`,
		`[a [b c] d]`,
		`[a b | c d]`,
		`[]`,
		`[\n \t \s \? \*]`,
		`[unterminated`,
		`no open bracket`,
		``,
		`[a] trailing`,
		`[` + string(make([]byte, 300)) + `]`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		doc := tml.ParseInPlace(append([]byte(nil), data...))
		if doc.Err() == nil {
			// A successful parse must still be safely walkable and
			// printable without panicking.
			var buf [256]byte
			doc.Root().Print(buf[:], tml.PrintOpts{Bracketed: true})
			walk(doc.Root())
		}
	})
}

func walk(c tml.Cursor) {
	for child := c.FirstChild(); !child.IsNull(); child = child.NextSibling() {
		walk(child)
	}
}
