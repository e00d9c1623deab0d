package ir

import (
	"errors"
	"fmt"
)

var (
	ErrWrongType  = errors.New("wrong node type")
	ErrNoKey      = errors.New("no such key")
	ErrIndexRange = errors.New("index out of range")
	ErrPathType   = errors.New("path element must be a string or an int")
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	IOError ErrorKind = iota
	SyntaxError
	ReferenceError
	TypeError
)

func (k ErrorKind) String() string {
	s, ok := map[ErrorKind]string{
		IOError:        "IOError",
		SyntaxError:    "SyntaxError",
		ReferenceError: "ReferenceError",
		TypeError:      "TypeError",
	}[k]
	if ok {
		return s
	}
	return "<unknown error kind>"
}

// Error is the single error type reported by parsing and by node
// queries. Err carries the cause and is matched with errors.Is.
type Error struct {
	Kind ErrorKind
	Line int
	Err  error
}

func NewError(kind ErrorKind, line int, err error) *Error {
	return &Error{Kind: kind, Line: line, Err: err}
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err if it is or wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
