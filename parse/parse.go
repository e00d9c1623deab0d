package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/signadot/kyaml/debug"
	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/token"
)

// Parse parses the first document of d. It returns nil for input without
// a document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	src := token.NewLineSource(bytes.NewReader(d))
	doc, err := NewParser(token.NewTokenizer(src), opts...).Document()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Node, nil
}

// Parser builds one node tree per call to Document from the lines of a
// Tokenizer.
type Parser struct {
	tz      *token.Tokenizer
	base    []ParseOption
	opts    *parseOpts
	indents token.IndentStack
	anchors *Anchors

	// pending is the remainder of a "- " line holding a compact
	// collection, reclassified as a line of its own.
	pending *token.Line
}

func NewParser(tz *token.Tokenizer, opts ...ParseOption) *Parser {
	return &Parser{
		tz:      tz,
		base:    opts,
		opts:    newOpts(opts),
		anchors: NewAnchors(),
	}
}

// Document parses the next document. opts apply to this call on top of
// the options the parser was created with. At the end of the input it
// returns io.EOF; other failures are *ir.Error.
func (p *Parser) Document(opts ...ParseOption) (*ir.Document, error) {
	p.opts = newOpts(append(slices.Clone(p.base), opts...))
	p.anchors.Reset()
	p.indents.Reset()
	p.pending = nil
	doc, err := p.document()
	if err != nil {
		return nil, p.wrap(err)
	}
	return doc, nil
}

func (p *Parser) document() (*ir.Document, error) {
	l, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := l.Num
	directives := false
	for l.Kind == token.LineDirective {
		if _, err := p.next(); err != nil {
			return nil, err
		}
		directives = true
		l, err = p.peek()
		if err == io.EOF {
			return nil, token.NewTokenizeErr(fmt.Errorf("%w: directives without a document", token.ErrBadMarker), token.Pos{Line: p.tz.LineNumber()})
		}
		if err != nil {
			return nil, err
		}
	}
	if directives && l.Kind != token.LineDocStart {
		return nil, token.NewTokenizeErr(fmt.Errorf("%w: expected --- after directives", token.ErrBadMarker), l.Pos(l.Indent))
	}
	var root *ir.Node
	switch l.Kind {
	case token.LineDocStart:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if l.Rest != "" && l.Rest[0] != '#' {
			root, err = p.inline(l, l.RestCol, -1, false, props{})
		} else {
			root, err = p.block(-1, false, props{})
		}
	case token.LineDocEnd:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		root, err = p.empty(props{}, l.Num)
		if err != nil {
			return nil, err
		}
		return &ir.Document{Node: root, StartLine: start, EndLine: p.tz.LineNumber()}, nil
	default:
		root, err = p.block(-1, false, props{})
	}
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return &ir.Document{Node: root, StartLine: start, EndLine: p.tz.LineNumber()}, nil
}

// end consumes a "..." terminating the document. A following "---" or
// directive is left for the next document.
func (p *Parser) end() error {
	l, err := p.peek()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	switch l.Kind {
	case token.LineDocEnd:
		_, err := p.next()
		return err
	case token.LineDocStart, token.LineDirective:
		return nil
	}
	return token.UnexpectedErr(l.Text[l.Indent:], l.Pos(l.Indent))
}

// block parses the node starting on the next line. The node must be
// indented more than parent, except that a sequence may sit at the
// indentation of its parent mapping key when seqAtParent is set. pr holds
// properties written before the node.
func (p *Parser) block(parent int, seqAtParent bool, pr props) (*ir.Node, error) {
	l, err := p.peek()
	if err == io.EOF {
		return p.empty(pr, p.tz.LineNumber())
	}
	if err != nil {
		return nil, err
	}
	if !opens(l, parent, seqAtParent) {
		return p.empty(pr, p.tz.LineNumber())
	}
	if debug.Parse() {
		debug.Logf("parse %s line %d indent %d parent %d\n", l.Kind, l.Num, l.Indent, parent)
	}
	var n *ir.Node
	switch l.Kind {
	case token.LineSeqItem:
		n, err = p.sequence(l.Indent)
	case token.LineMapEntry:
		n, err = p.mapping(l.Indent)
	case token.LineScalar:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return p.inline(l, l.Indent, parent, seqAtParent, pr)
	default:
		return nil, token.UnexpectedErr(l.Text[l.Indent:], l.Pos(l.Indent))
	}
	if err != nil {
		return nil, err
	}
	return p.finish(n, pr)
}

func opens(l *token.Line, parent int, seqAtParent bool) bool {
	if l.IsMarker() {
		return false
	}
	if l.Indent > parent {
		return true
	}
	return seqAtParent && l.Kind == token.LineSeqItem && l.Indent == parent
}

func (p *Parser) sequence(indent int) (*ir.Node, error) {
	seq := ir.FromSlice(nil)
	p.indents.Push(indent, token.SequenceContext)
	closeAt, at := -1, token.Pos{}
	for {
		l, err := p.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if l.IsMarker() || l.Kind == token.LineDirective {
			break
		}
		if l.Indent < indent || (l.Indent == indent && l.Kind != token.LineSeqItem) {
			closeAt, at = l.Indent, l.Pos(l.Indent)
			break
		}
		if l.Indent > indent {
			return nil, token.IndentErr(l.Indent, l.Pos(l.Indent))
		}
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if seq.Line == 0 {
			seq.Line = l.Num
		}
		item, err := p.entry(l, indent, false)
		if err != nil {
			return nil, err
		}
		seq.Values = append(seq.Values, item)
	}
	return seq, p.indents.Close(closeAt, at)
}

func (p *Parser) mapping(indent int) (*ir.Node, error) {
	m := ir.FromMap(nil, nil)
	seen := map[string]int{}
	p.indents.Push(indent, token.MappingContext)
	closeAt, at := -1, token.Pos{}
	for {
		l, err := p.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if l.IsMarker() || l.Kind == token.LineDirective {
			break
		}
		if l.Indent < indent {
			closeAt, at = l.Indent, l.Pos(l.Indent)
			break
		}
		if l.Indent > indent {
			return nil, token.IndentErr(l.Indent, l.Pos(l.Indent))
		}
		if l.Kind != token.LineMapEntry {
			if err := keyProperties(l, l.Indent); err != nil {
				return nil, err
			}
			return nil, token.ExpectedErr("mapping entry", l.Pos(l.Indent))
		}
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if m.Line == 0 {
			m.Line = l.Num
		}
		v, err := p.entry(l, indent, true)
		if err != nil {
			return nil, err
		}
		if err := p.addKey(m, seen, l.Key, v, l.Pos(l.Indent)); err != nil {
			return nil, err
		}
	}
	return m, p.indents.Close(closeAt, at)
}

// entry parses what follows the indicator of a sequence item or mapping
// entry line l of a collection at indent.
func (p *Parser) entry(l *token.Line, indent int, isMapping bool) (*ir.Node, error) {
	if l.Rest == "" || l.Rest[0] == '#' {
		return p.block(indent, isMapping, props{})
	}
	if !isMapping {
		sub, err := l.Sub(l.RestCol)
		if err != nil {
			return nil, err
		}
		if sub.IsStructural() {
			p.pending = sub
			return p.block(indent, false, props{})
		}
	}
	return p.inline(l, l.RestCol, indent, isMapping, props{})
}

func (p *Parser) addKey(m *ir.Node, seen map[string]int, key string, v *ir.Node, at token.Pos) error {
	if i, ok := seen[key]; ok {
		if p.opts.keys == KeysLastWins {
			m.Values[i] = v
			return nil
		}
		return token.NewTokenizeErr(fmt.Errorf("%w: %q", ErrDuplicateKey, key), at)
	}
	seen[key] = len(m.Keys)
	m.Keys = append(m.Keys, key)
	m.Values = append(m.Values, v)
	return nil
}

// props are the node properties collected before a node's content.
type props struct {
	tag    string
	anchor string
	pos    token.Pos
}

func (pr props) any() bool {
	return pr.tag != "" || pr.anchor != ""
}

func properties(toks []token.Token, i *int, pr props) (props, error) {
	for *i < len(toks) && toks[*i].IsProperty() {
		t := &toks[*i]
		switch t.Type {
		case token.TTag:
			if pr.tag != "" {
				return pr, token.NewTokenizeErr(fmt.Errorf("%w: second tag %s", token.ErrProperty, t.Text), t.Pos)
			}
			pr.tag = t.Text
		case token.TAnchor:
			if pr.anchor != "" {
				return pr, token.NewTokenizeErr(fmt.Errorf("%w: second anchor &%s", token.ErrProperty, t.Text), t.Pos)
			}
			pr.anchor = t.Text
		}
		pr.pos = t.Pos
		*i++
	}
	return pr, nil
}

// finish applies properties to a completed node, resolves leaves in eager
// mode and registers the anchor.
func (p *Parser) finish(n *ir.Node, pr props) (*ir.Node, error) {
	if pr.tag != "" {
		n.Tag = pr.tag
	}
	if n.Type == ir.LeafType && !p.opts.deferred {
		v, err := n.ResolveNow()
		if debug.Resolve() {
			debug.Logf("resolve line %d %v: %s %v\n", n.Line, n, v.Kind, err)
		}
	}
	if pr.anchor != "" {
		n.Anchor = pr.anchor
		if err := p.anchors.Register(pr.anchor, n); err != nil {
			return nil, token.NewTokenizeErr(err, pr.pos)
		}
	}
	return n, nil
}

func (p *Parser) empty(pr props, line int) (*ir.Node, error) {
	return p.finish(ir.Null().WithLine(line), pr)
}

func (p *Parser) alias(t *token.Token, pr props) (*ir.Node, error) {
	if pr.any() {
		return nil, token.NewTokenizeErr(fmt.Errorf("%w: *%s", ErrAliasProperties, t.Text), t.Pos)
	}
	n, err := p.anchors.Resolve(t.Text)
	if err != nil {
		return nil, token.NewTokenizeErr(err, t.Pos)
	}
	return n, nil
}

func (p *Parser) peek() (*token.Line, error) {
	if p.pending != nil {
		return p.pending, nil
	}
	l, err := p.tz.Peek()
	if err != nil {
		return nil, p.ioErr(err)
	}
	return l, nil
}

func (p *Parser) next() (*token.Line, error) {
	if p.pending != nil {
		l := p.pending
		p.pending = nil
		return l, nil
	}
	l, err := p.tz.Next()
	if err != nil {
		return nil, p.ioErr(err)
	}
	return l, nil
}

// ioErr marks errors of the underlying reader. io.EOF and tokenizer
// errors pass through.
func (p *Parser) ioErr(err error) error {
	if err == io.EOF {
		return err
	}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return err
	}
	return ir.NewError(ir.IOError, p.tz.LineNumber()+1, err)
}

func (p *Parser) wrap(err error) error {
	if err == io.EOF {
		return err
	}
	var e *ir.Error
	if errors.As(err, &e) {
		return err
	}
	line := p.tz.LineNumber()
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		line = te.Pos.Line
	}
	kind := ir.SyntaxError
	switch {
	case errors.Is(err, ErrUndefinedAlias), errors.Is(err, ErrDuplicateAnchor), errors.Is(err, ErrAliasProperties):
		kind = ir.ReferenceError
	}
	return ir.NewError(kind, line, err)
}
