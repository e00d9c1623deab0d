package token

import (
	"fmt"
	"strconv"
)

// Pos is a position in a stream. Line is 1-based, Col is 0-based.
type Pos struct {
	Line int
	Col  int
	// Context is the source line the position refers to, if known.
	Context string
}

func (p Pos) String() string {
	if p.Context == "" {
		return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
	}
	lo := max(0, p.Col-5)
	hi := min(p.Col+5, len(p.Context))
	if lo > hi {
		lo = hi
	}
	sample := strconv.Quote(p.Context[lo:hi])
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` (line=%d, col=%d)", sample, p.Line, p.Col)
}
