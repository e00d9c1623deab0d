package token

// Context is the kind of block collection open at an indentation level.
type Context int

const (
	MappingContext Context = iota
	SequenceContext
)

func (c Context) String() string {
	if c == MappingContext {
		return "mapping"
	}
	return "sequence"
}

type level struct {
	indent int
	ctx    Context
}

// IndentStack tracks the indentation levels of the open block
// collections, innermost last.
type IndentStack struct {
	levels []level
}

func (s *IndentStack) Push(indent int, ctx Context) {
	s.levels = append(s.levels, level{indent: indent, ctx: ctx})
}

// Top returns the innermost open level. The document level is -1.
func (s *IndentStack) Top() (int, Context) {
	if len(s.levels) == 0 {
		return -1, MappingContext
	}
	l := s.levels[len(s.levels)-1]
	return l.indent, l.ctx
}

func (s *IndentStack) Depth() int {
	return len(s.levels)
}

// Close pops the innermost level because a line at indent ended it. A line
// indented strictly between the enclosing level and the closed one lines
// up with no open collection and is reported as ErrBadIndent.
func (s *IndentStack) Close(indent int, p Pos) error {
	n := len(s.levels)
	if n == 0 {
		return nil
	}
	closed := s.levels[n-1]
	s.levels = s.levels[:n-1]
	outer, _ := s.Top()
	if indent > outer && indent < closed.indent {
		return IndentErr(indent, p)
	}
	return nil
}

// Reset drops all levels.
func (s *IndentStack) Reset() {
	s.levels = s.levels[:0]
}
