package kyaml

import (
	"io"

	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/parse"
	"github.com/signadot/kyaml/token"
)

// Parser reads the documents of a stream one at a time.
type Parser struct {
	src *token.LineSource
	tz  *token.Tokenizer
	p   *parse.Parser
}

// NewParser creates a Parser reading from r. opts apply to every document;
// options passed to Parse are applied on top of them.
func NewParser(r io.Reader, opts ...parse.ParseOption) *Parser {
	src := token.NewLineSource(r)
	tz := token.NewTokenizer(src)
	return &Parser{
		src: src,
		tz:  tz,
		p:   parse.NewParser(tz, opts...),
	}
}

// Parse parses the next document. It returns io.EOF when the stream holds
// no further documents. After a failure, reported as *ir.Error, the stream
// is skipped up to the next "---" line so that the following call parses
// the next document.
func (p *Parser) Parse(opts ...parse.ParseOption) (*ir.Document, error) {
	start := p.src.LineNumber()
	doc, err := p.p.Document(opts...)
	if err == nil || err == io.EOF {
		return doc, err
	}
	p.resync(start)
	return nil, err
}

func (p *Parser) resync(start int) {
	for {
		text, err := p.src.PeekLine()
		if err != nil {
			break
		}
		if token.IsDocStart(text) && p.src.LineNumber() > start {
			break
		}
		if _, err := p.src.ReadLine(); err != nil {
			break
		}
	}
	p.tz.Reset()
}

// LineNumber returns the number of lines consumed so far.
func (p *Parser) LineNumber() int {
	return p.src.LineNumber()
}

// Peek returns up to n bytes of the input following the last consumed
// line, without consuming them.
func (p *Parser) Peek(n int) (string, error) {
	return p.src.Peek(n)
}

// ParseAll parses every document of r, stopping at the first failure.
func ParseAll(r io.Reader, opts ...parse.ParseOption) ([]*ir.Document, error) {
	p := NewParser(r, opts...)
	var docs []*ir.Document
	for {
		doc, err := p.Parse()
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return docs, err
		}
		docs = append(docs, doc)
	}
}
