package token

import (
	"github.com/signadot/kyaml/debug"
)

// Tokenizer classifies the lines of a LineSource. Peek skips blank and
// comment lines, which carry no structure, but leaves the classified line
// itself in the source, so the source position always reflects what the
// parser actually consumed.
type Tokenizer struct {
	src    *LineSource
	peeked *Line
	blanks int
}

func NewTokenizer(src *LineSource) *Tokenizer {
	return &Tokenizer{src: src}
}

// Peek returns the next structural line without consuming it. It returns
// io.EOF at the end of the input.
func (t *Tokenizer) Peek() (*Line, error) {
	if t.peeked != nil {
		return t.peeked, nil
	}
	t.blanks = 0
	for {
		text, err := t.src.PeekLine()
		if err != nil {
			return nil, err
		}
		l, err := Classify(text, t.src.LineNumber()+1)
		if err != nil {
			return nil, err
		}
		if debug.Tokens() {
			debug.Logf("line %d %s indent=%d %q\n", l.Num, l.Kind, l.Indent, l.Text)
		}
		switch l.Kind {
		case LineBlank:
			t.blanks++
		case LineComment:
		default:
			t.peeked = l
			return l, nil
		}
		if _, err := t.src.ReadLine(); err != nil {
			return nil, err
		}
	}
}

// Next consumes and returns the next structural line.
func (t *Tokenizer) Next() (*Line, error) {
	l, err := t.Peek()
	if err != nil {
		return nil, err
	}
	if _, err := t.src.ReadLine(); err != nil {
		return nil, err
	}
	t.peeked = nil
	return l, nil
}

// Blanks returns the number of blank lines Peek skipped before the
// current line.
func (t *Tokenizer) Blanks() int {
	return t.blanks
}

// RawPeek returns the next physical line unclassified and unconsumed.
func (t *Tokenizer) RawPeek() (string, error) {
	return t.src.PeekLine()
}

// RawNext consumes the next physical line.
func (t *Tokenizer) RawNext() (string, error) {
	t.peeked = nil
	return t.src.ReadLine()
}

// LineNumber returns the number of lines consumed so far.
func (t *Tokenizer) LineNumber() int {
	return t.src.LineNumber()
}

// Reset drops any peeked line, used after the source was advanced
// without the tokenizer.
func (t *Tokenizer) Reset() {
	t.peeked = nil
	t.blanks = 0
}
