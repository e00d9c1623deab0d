package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/resolve"
	"github.com/signadot/kyaml/token"
)

// inline parses the node written on line l from column col. Flow
// collections may continue on following lines, plain scalars may continue
// on more indented lines, and properties alone leave the node to the
// following lines.
func (p *Parser) inline(l *token.Line, col, parent int, seqAtParent bool, pr props) (*ir.Node, error) {
	toks, err := p.tokenize(l, col)
	if err != nil {
		return nil, err
	}
	commented := len(toks) > 0 && toks[len(toks)-1].Type == token.TComment
	toks = dropComments(toks)
	i := 0
	pr, err = properties(toks, &i, pr)
	if err != nil {
		return nil, err
	}
	if i == len(toks) {
		return p.block(parent, seqAtParent, pr)
	}
	if i > 0 {
		if err := keyProperties(l, col); err != nil {
			return nil, err
		}
	}
	t := &toks[i]
	switch t.Type {
	case token.TAlias:
		if i+1 != len(toks) {
			return nil, token.UnexpectedErr(toks[i+1].Text, toks[i+1].Pos)
		}
		return p.alias(t, pr)
	case token.TBlock:
		if i+1 != len(toks) {
			return nil, token.UnexpectedErr(toks[i+1].Text, toks[i+1].Pos)
		}
		n, err := p.blockScalar(t, parent)
		if err != nil {
			return nil, err
		}
		return p.finish(n, pr)
	case token.TLSquare, token.TLCurl:
		n, err := p.flowNode(toks, &i, pr)
		if err != nil {
			return nil, err
		}
		if i != len(toks) {
			return nil, token.UnexpectedErr(toks[i].Text, toks[i].Pos)
		}
		return n, nil
	case token.TPlain, token.TSingle, token.TDouble:
		if i+1 != len(toks) {
			return nil, token.UnexpectedErr(toks[i+1].Text, toks[i+1].Pos)
		}
		text := t.Text
		if t.Type == token.TPlain {
			if j := blockIndicator(text); j >= 0 {
				at := t.Pos
				at.Col += j
				return nil, token.UnexpectedErr(text[j:], at)
			}
		}
		if t.Type == token.TPlain && !commented {
			text, err = p.continuation(text, parent)
			if err != nil {
				return nil, err
			}
		}
		return p.finish(ir.FromText(text, styleOf(t.Type)).WithLine(l.Num), pr)
	}
	return nil, token.UnexpectedErr(t.Text, t.Pos)
}

// tokenize tokenizes line l from col, reading further lines while a flow
// collection or a quoted scalar is open. A document marker ends the search.
func (p *Parser) tokenize(l *token.Line, col int) ([]token.Token, error) {
	text := l.Text[col:]
	toks, err := token.Tokenize(text, l.Pos(col))
	for errors.Is(err, token.ErrFlowOpen) || errors.Is(err, token.ErrQuoteOpen) {
		more, rerr := p.tz.RawPeek()
		if rerr == io.EOF || token.IsDocStart(more) || token.IsDocEnd(more) {
			return nil, err
		}
		if rerr != nil {
			return nil, p.ioErr(rerr)
		}
		if _, rerr := p.tz.RawNext(); rerr != nil {
			return nil, p.ioErr(rerr)
		}
		text += "\n" + more
		toks, err = token.Tokenize(text, l.Pos(col))
	}
	return toks, err
}

// blockIndicator returns the offset of a "- " entry indicator starting a
// plain value or of a ": " value indicator inside it, or -1.
func blockIndicator(text string) int {
	if text == "-" || strings.HasPrefix(text, "- ") || strings.HasPrefix(text, "-\t") {
		return 0
	}
	for j := 0; j < len(text); j++ {
		if text[j] == ':' && (j+1 == len(text) || text[j+1] == ' ' || text[j+1] == '\t') {
			return j
		}
	}
	return -1
}

func dropComments(toks []token.Token) []token.Token {
	res := toks[:0]
	for _, t := range toks {
		if t.Type != token.TComment {
			res = append(res, t)
		}
	}
	return res
}

func styleOf(t token.TokenType) resolve.Style {
	switch t {
	case token.TSingle:
		return resolve.SingleQuoted
	case token.TDouble:
		return resolve.DoubleQuoted
	}
	return resolve.Plain
}

// keyProperties reports ErrKeyTag when the content of line l from col is
// a mapping entry whose key is preceded by properties.
func keyProperties(l *token.Line, col int) error {
	toks, err := token.Tokenize(l.Text[col:], l.Pos(col))
	if err != nil {
		return nil
	}
	i := 0
	for i < len(toks) && toks[i].IsProperty() {
		i++
	}
	if i == 0 || i == len(toks) || toks[i].Pos.Line != l.Num {
		return nil
	}
	sub, err := l.Sub(toks[i].Pos.Col)
	if err != nil || sub.Kind != token.LineMapEntry {
		return nil
	}
	return token.NewTokenizeErr(fmt.Errorf("%w: %s", ErrKeyTag, sub.Key), toks[0].Pos)
}

// continuation extends a plain scalar with the following lines indented
// more than parent. Lines are joined by a space; blank lines in between
// become line breaks.
func (p *Parser) continuation(text string, parent int) (string, error) {
	for {
		l, err := p.peek()
		if err == io.EOF {
			return text, nil
		}
		if err != nil {
			return "", err
		}
		if l.Kind != token.LineScalar || l.Indent <= parent {
			return text, nil
		}
		blanks := p.tz.Blanks()
		if _, err := p.next(); err != nil {
			return "", err
		}
		if blanks > 0 {
			text += strings.Repeat("\n", blanks)
		} else {
			text += " "
		}
		body, commented := cutComment(l.Rest)
		text += body
		if commented {
			return text, nil
		}
	}
}

func cutComment(s string) (string, bool) {
	for i := 1; i < len(s); i++ {
		if s[i] == '#' && (s[i-1] == ' ' || s[i-1] == '\t') {
			return strings.TrimRight(s[:i], " \t"), true
		}
	}
	return strings.TrimRight(s, " \t"), false
}

type blockHeader struct {
	folded bool
	chomp  resolve.Chomp
	indent int
}

// parseHeader parses a block scalar header such as "|", ">-" or "|2+".
func parseHeader(h string) (blockHeader, error) {
	bh := blockHeader{folded: h[0] == '>'}
	chomped := false
	for _, c := range []byte(h[1:]) {
		switch {
		case (c == '-' || c == '+') && !chomped:
			bh.chomp = resolve.ChompOf(c)
			chomped = true
		case c >= '1' && c <= '9' && bh.indent == 0:
			bh.indent = int(c - '0')
		default:
			return bh, fmt.Errorf("%w: header %q", token.ErrBlockScalar, h)
		}
	}
	return bh, nil
}

// blockScalar collects the content of a block scalar: every following
// line that is blank or indented more than parent. The content
// indentation is given by the header, or else is the least indentation
// of the content lines; lines indented less than that keep their text.
func (p *Parser) blockScalar(t *token.Token, parent int) (*ir.Node, error) {
	bh, err := parseHeader(t.Text)
	if err != nil {
		return nil, token.NewTokenizeErr(err, t.Pos)
	}
	var lines []string
	var indents []int
	least := -1
	for {
		text, err := p.tz.RawPeek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, p.ioErr(err)
		}
		ind := leadingSpaces(text)
		if strings.TrimLeft(text[ind:], " \t") == "" {
			lines = append(lines, "")
			indents = append(indents, -1)
		} else {
			if ind <= parent || (ind == 0 && (token.IsDocStart(text) || token.IsDocEnd(text))) {
				break
			}
			lines = append(lines, text)
			indents = append(indents, ind)
			if least == -1 || ind < least {
				least = ind
			}
		}
		if _, err := p.tz.RawNext(); err != nil {
			return nil, p.ioErr(err)
		}
	}
	base := max(least, 0)
	if bh.indent > 0 {
		base = max(parent, 0) + bh.indent
	}
	for i, ln := range lines {
		if indents[i] == -1 {
			continue
		}
		lines[i] = ln[min(indents[i], base):]
	}
	style := resolve.Literal
	text := resolve.LiteralBlock(lines, bh.chomp)
	if bh.folded {
		style = resolve.Folded
		text = resolve.FoldedBlock(lines, bh.chomp)
	}
	return ir.FromText(text, style).WithLine(t.Pos.Line), nil
}

func leadingSpaces(s string) int {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}
