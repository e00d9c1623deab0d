package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrUnicodeControl = errors.New("unicode control")
	ErrBadIndent      = errors.New("bad indentation")
	ErrTabIndent      = errors.New("tab in indentation")
	ErrBadMarker      = errors.New("bad document marker")
	ErrBlockScalar    = errors.New("malformed block scalar")
	ErrFlow           = errors.New("malformed flow collection")
	ErrProperty       = errors.New("malformed node property")
	ErrUnexpected     = errors.New("unexpected content")
	ErrPeekNegative   = errors.New("negative peek length")

	// ErrFlowOpen reports input ending inside a flow collection, which
	// callers may resolve by supplying more lines.
	ErrFlowOpen = fmt.Errorf("%w: unclosed brackets", ErrFlow)

	// ErrQuoteOpen reports input ending inside a quoted scalar.
	ErrQuoteOpen = fmt.Errorf("%w: open quoted scalar", ErrUnterminated)
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrUnexpected, what), p)
}

func UnexpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpected, what), p)
}

func IndentErr(indent int, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected indentation %d", ErrBadIndent, indent), p)
}
