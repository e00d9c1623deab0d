package token

import (
	"errors"
	"fmt"
	"strings"
)

// Tokenize splits inline node content into tokens. at is the position of
// src[0]. src is normally the remainder of one line; a flow collection or
// quoted scalar continued over several lines is passed with its lines
// joined by '\n'.
func Tokenize(src string, at Pos) ([]Token, error) {
	tz := &tokenizer{
		src:  src,
		line: at.Line,
		col0: at.Col,
		ctx:  at.Context,
	}
	return tz.run()
}

type tokenizer struct {
	src   string
	i     int
	depth int

	line      int
	lineStart int
	col0      int
	ctx       string

	toks []Token
}

func (tz *tokenizer) run() ([]Token, error) {
	for {
		tz.skipSpace()
		if tz.i >= len(tz.src) {
			if tz.depth > 0 {
				return nil, NewTokenizeErr(ErrFlowOpen, tz.pos())
			}
			return tz.toks, nil
		}
		p := tz.pos()
		c := tz.src[tz.i]
		switch {
		case c == '#':
			end := tz.lineEnd()
			tz.emit(TComment, p, tz.src[tz.i:end])
			tz.i = end
		case c == '!':
			tz.emit(TTag, p, tz.word())
		case c == '&', c == '*':
			tz.i++
			name := tz.word()
			if name == "" {
				return nil, NewTokenizeErr(fmt.Errorf("%w: empty name after %q", ErrProperty, c), p)
			}
			if c == '&' {
				tz.emit(TAnchor, p, name)
			} else {
				tz.emit(TAlias, p, name)
			}
		case c == '"', c == '\'':
			s, n, err := Unquote(tz.src[tz.i:])
			if errors.Is(err, ErrUnterminated) {
				return nil, NewTokenizeErr(ErrQuoteOpen, p)
			}
			if err != nil {
				return nil, NewTokenizeErr(err, p)
			}
			if c == '"' {
				tz.emit(TDouble, p, s)
			} else {
				tz.emit(TSingle, p, s)
			}
			tz.advance(n)
		case c == '[', c == '{':
			tz.depth++
			tz.i++
			if c == '[' {
				tz.emit(TLSquare, p, "[")
			} else {
				tz.emit(TLCurl, p, "{")
			}
		case c == ']', c == '}':
			if tz.depth == 0 {
				return nil, NewTokenizeErr(fmt.Errorf("%w: unexpected %q", ErrFlow, c), p)
			}
			tz.depth--
			tz.i++
			if c == ']' {
				tz.emit(TRSquare, p, "]")
			} else {
				tz.emit(TRCurl, p, "}")
			}
		case c == ',' && tz.depth > 0:
			tz.i++
			tz.emit(TComma, p, ",")
		case c == ':' && tz.depth > 0 && (tz.colonAt(tz.i) || tz.afterQuoted()):
			tz.i++
			tz.emit(TColon, p, ":")
		case (c == '|' || c == '>') && tz.depth == 0:
			tz.emit(TBlock, p, tz.word())
		default:
			tz.emit(TPlain, p, tz.plain())
		}
	}
}

func (tz *tokenizer) emit(t TokenType, p Pos, text string) {
	tz.toks = append(tz.toks, Token{Type: t, Pos: p, Text: text})
}

func (tz *tokenizer) pos() Pos {
	col := tz.i - tz.lineStart
	ctx := ""
	if tz.lineStart == 0 {
		col += tz.col0
		ctx = tz.ctx
	}
	return Pos{Line: tz.line, Col: col, Context: ctx}
}

// advance moves past n bytes which may contain line breaks.
func (tz *tokenizer) advance(n int) {
	end := tz.i + n
	for ; tz.i < end; tz.i++ {
		if tz.src[tz.i] == '\n' {
			tz.line++
			tz.lineStart = tz.i + 1
		}
	}
}

func (tz *tokenizer) skipSpace() {
	for tz.i < len(tz.src) {
		switch tz.src[tz.i] {
		case ' ', '\t':
			tz.i++
		case '\n':
			tz.i++
			tz.line++
			tz.lineStart = tz.i
		default:
			return
		}
	}
}

func (tz *tokenizer) lineEnd() int {
	if j := strings.IndexByte(tz.src[tz.i:], '\n'); j >= 0 {
		return tz.i + j
	}
	return len(tz.src)
}

// word reads up to the next blank, or flow indicator inside a flow
// collection.
func (tz *tokenizer) word() string {
	start := tz.i
	for tz.i < len(tz.src) {
		c := tz.src[tz.i]
		if c == ' ' || c == '\t' || c == '\n' {
			break
		}
		if tz.depth > 0 && isFlowIndicator(c) {
			break
		}
		tz.i++
	}
	return tz.src[start:tz.i]
}

func (tz *tokenizer) plain() string {
	start := tz.i
	j := tz.i
loop:
	for j < len(tz.src) {
		c := tz.src[j]
		switch {
		case c == '\n':
			break loop
		case c == '#' && j > start && isBlank(tz.src[j-1]):
			break loop
		case tz.depth > 0 && isFlowIndicator(c):
			break loop
		case tz.depth > 0 && c == ':' && tz.colonAt(j):
			break loop
		}
		j++
	}
	if j == start {
		j++
	}
	tz.i = j
	return strings.TrimRight(tz.src[start:j], " \t")
}

// colonAt reports whether the ':' at i is a mapping value indicator.
func (tz *tokenizer) colonAt(i int) bool {
	if i+1 == len(tz.src) {
		return true
	}
	c := tz.src[i+1]
	return c == ' ' || c == '\t' || c == '\n' || isFlowIndicator(c)
}

func (tz *tokenizer) afterQuoted() bool {
	n := len(tz.toks)
	return n > 0 && (tz.toks[n-1].Type == TSingle || tz.toks[n-1].Type == TDouble)
}

func isFlowIndicator(c byte) bool {
	switch c {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}
