package tml

import (
	"os"

	"github.com/judnich/tml/parse"
)

// Document, Cursor, ParseError, and ErrorKind are re-exported from package
// parse so that callers working only at this package's level never need
// a second import.
type (
	Document   = parse.Document
	Cursor     = parse.Cursor
	ParseError = parse.ParseError
	ErrorKind  = parse.ErrorKind
	PrintOpts  = parse.PrintOpts
)

const (
	ErrEmptyInput      = parse.ErrEmptyInput
	ErrMissingOpen     = parse.ErrMissingOpen
	ErrTrailingContent = parse.ErrTrailingContent
	ErrUnterminated    = parse.ErrUnterminated
	ErrOutOfMemory     = parse.ErrOutOfMemory
)

// ParseText parses a copy of src.
func ParseText(src string) *Document {
	return parse.ParseText(src)
}

// ParseInPlace parses data, which may be mutated in place by escape
// collapsing. Pass a copy if the caller still needs the original bytes.
func ParseInPlace(data []byte) *Document {
	return parse.ParseInPlace(data)
}

// ParseFile reads path and parses its contents. The file's bytes are not
// retained beyond the parse; the returned Document owns its own arena.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.ParseInPlace(data), nil
}
