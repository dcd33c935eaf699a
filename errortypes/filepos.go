// Package errortypes carries small typed errors that remember where in a
// source they occurred, so callers that want positional detail can recover
// it with a type assertion instead of parsing an error string.
package errortypes

import "fmt"

// ErrFilePos extends the error interface with the file position where the
// error occurred. Offset is the byte offset into the source the error
// refers to; File is empty for errors over an in-memory buffer with no
// associated path.
type ErrFilePos interface {
	error
	File() string
	Line() int
	Col() int
	Offset() int
}

// NewErrFilePosf creates an error conforming to the ErrFilePos interface.
func NewErrFilePosf(file string, line, col, offset int, format string, args ...interface{}) error {
	return &errFilePos{
		error:  fmt.Errorf(format, args...),
		file:   file,
		line:   line,
		col:    col,
		offset: offset,
	}
}

// IsErrFilePos reports whether the root cause of err is an ErrFilePos.
// Wrapped errors are unwrapped via the Cause() method.
func IsErrFilePos(err error) bool {
	if err == nil {
		return false
	}
	err = rootCause(err)

	_, isErrFilePos := err.(ErrFilePos)
	return isErrFilePos
}

// ToErrFilePos converts err to an ErrFilePos if possible, or returns nil.
// If IsErrFilePos returns true, this will not return nil.
func ToErrFilePos(err error) ErrFilePos {
	if err == nil {
		return nil
	}
	err = rootCause(err)
	if out, isErrFilePos := err.(ErrFilePos); isErrFilePos {
		return out
	}
	return nil
}

func rootCause(err error) error {
	type causer interface {
		Cause() error
	}

	for {
		if e, ok := err.(causer); ok {
			err = e.Cause()
		} else {
			return err
		}
	}
}

var _ ErrFilePos = &errFilePos{}

type errFilePos struct {
	error
	file   string
	line   int
	col    int
	offset int
}

func (e *errFilePos) File() string { return e.file }
func (e *errFilePos) Line() int    { return e.line }
func (e *errFilePos) Col() int     { return e.col }
func (e *errFilePos) Offset() int  { return e.offset }
