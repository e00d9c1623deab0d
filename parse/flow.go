package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/token"
)

// flowNode parses one node of a flow collection starting at toks[*i] and
// leaves *i after it.
func (p *Parser) flowNode(toks []token.Token, i *int, pr props) (*ir.Node, error) {
	pr, err := properties(toks, i, pr)
	if err != nil {
		return nil, err
	}
	if *i == len(toks) {
		return nil, flowEnd(toks)
	}
	t := &toks[*i]
	switch t.Type {
	case token.TComma, token.TRSquare, token.TRCurl, token.TColon:
		return p.empty(pr, t.Pos.Line)
	case token.TAlias:
		*i++
		return p.alias(t, pr)
	case token.TLSquare:
		n, err := p.flowSeq(toks, i)
		if err != nil {
			return nil, err
		}
		return p.finish(n, pr)
	case token.TLCurl:
		n, err := p.flowMap(toks, i)
		if err != nil {
			return nil, err
		}
		return p.finish(n, pr)
	case token.TPlain:
		return p.finish(ir.FromText(flowPlain(toks, i), styleOf(t.Type)).WithLine(t.Pos.Line), pr)
	case token.TSingle, token.TDouble:
		*i++
		return p.finish(ir.FromText(t.Text, styleOf(t.Type)).WithLine(t.Pos.Line), pr)
	}
	return nil, token.UnexpectedErr(t.Text, t.Pos)
}

// flowPlain joins the plain tokens of a scalar continued over several
// lines.
func flowPlain(toks []token.Token, i *int) string {
	var parts []string
	for *i < len(toks) && toks[*i].Type == token.TPlain {
		parts = append(parts, toks[*i].Text)
		*i++
	}
	return strings.Join(parts, " ")
}

func flowEnd(toks []token.Token) error {
	var at token.Pos
	if len(toks) > 0 {
		at = toks[len(toks)-1].Pos
	}
	return token.NewTokenizeErr(token.ErrFlowOpen, at)
}

func (p *Parser) flowSeq(toks []token.Token, i *int) (*ir.Node, error) {
	seq := ir.FromSlice(nil).WithLine(toks[*i].Pos.Line)
	*i++
	for {
		if *i == len(toks) {
			return nil, flowEnd(toks)
		}
		t := &toks[*i]
		switch t.Type {
		case token.TRSquare:
			*i++
			return seq, nil
		case token.TComma, token.TColon:
			return nil, token.NewTokenizeErr(fmt.Errorf("%w: unexpected %q in sequence", token.ErrFlow, t.Text), t.Pos)
		}
		v, err := p.flowNode(toks, i, props{})
		if err != nil {
			return nil, err
		}
		seq.Values = append(seq.Values, v)
		if err := flowSep(toks, i, token.TRSquare); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) flowMap(toks []token.Token, i *int) (*ir.Node, error) {
	m := ir.FromMap(nil, nil).WithLine(toks[*i].Pos.Line)
	seen := map[string]int{}
	*i++
	for {
		if *i == len(toks) {
			return nil, flowEnd(toks)
		}
		t := &toks[*i]
		switch {
		case t.Type == token.TRCurl:
			*i++
			return m, nil
		case t.IsProperty():
			return nil, token.NewTokenizeErr(fmt.Errorf("%w: %s", ErrKeyTag, t.Text), t.Pos)
		case !t.IsScalar():
			return nil, token.ExpectedErr("mapping key", t.Pos)
		}
		key := t.Text
		if t.Type == token.TPlain {
			key = flowPlain(toks, i)
		} else {
			*i++
		}
		var v *ir.Node
		var err error
		if *i < len(toks) && toks[*i].Type == token.TColon {
			*i++
			v, err = p.flowNode(toks, i, props{})
		} else {
			v, err = p.empty(props{}, t.Pos.Line)
		}
		if err != nil {
			return nil, err
		}
		if err := p.addKey(m, seen, key, v, t.Pos); err != nil {
			return nil, err
		}
		if err := flowSep(toks, i, token.TRCurl); err != nil {
			return nil, err
		}
	}
}

// flowSep consumes the comma after an entry, or checks that the
// collection closes with end.
func flowSep(toks []token.Token, i *int, end token.TokenType) error {
	if *i == len(toks) {
		return flowEnd(toks)
	}
	t := &toks[*i]
	switch t.Type {
	case token.TComma:
		*i++
		return nil
	case end:
		return nil
	}
	return token.NewTokenizeErr(fmt.Errorf("%w: expected ',' got %q", token.ErrFlow, t.Text), t.Pos)
}
