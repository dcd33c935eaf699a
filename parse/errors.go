package parse

import (
	"fmt"

	"github.com/judnich/tml/errortypes"
)

// ErrorKind enumerates the sticky, first-error-wins failure modes a parse
// can record.
type ErrorKind int

const (
	// ErrNone means the document parsed without error.
	ErrNone ErrorKind = iota
	// ErrEmptyInput means the source contained no tokens at all.
	ErrEmptyInput
	// ErrMissingOpen means the source didn't begin with '['.
	ErrMissingOpen
	// ErrTrailingContent means content followed the document's closing ']'.
	ErrTrailingContent
	// ErrUnterminated means a '[' was never matched by a ']'.
	ErrUnterminated
	// ErrOutOfMemory means the arena could not grow to hold the document.
	ErrOutOfMemory
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrEmptyInput:
		return "empty input"
	case ErrMissingOpen:
		return "missing open bracket"
	case ErrTrailingContent:
		return "trailing content"
	case ErrUnterminated:
		return "unterminated list"
	case ErrOutOfMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}

// ParseError is the error a Document carries when parsing failed. It is
// sticky: only the first error encountered during a parse is ever
// recorded, later failures downstream of it are suppressed.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tml: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
}

var _ error = (*ParseError)(nil)

// LineCol computes the 1-based line and column of e.Offset within src, the
// original source buffer the error was produced from.
func (e *ParseError) LineCol(src []byte) (line, col int) {
	line, col = 1, 1
	limit := e.Offset
	if limit > len(src) {
		limit = len(src)
	}
	for _, b := range src[:limit] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// AsErrFilePos adapts a ParseError plus its originating source buffer into
// an errortypes.ErrFilePos, for callers that want the generic interface
// rather than TML's concrete error kind.
func (e *ParseError) AsErrFilePos(file string, src []byte) errortypes.ErrFilePos {
	line, col := e.LineCol(src)
	return errortypes.NewErrFilePosf(file, line, col, e.Offset, "%s", e.msg).(errortypes.ErrFilePos)
}
