package resolve

import "strings"

// Chomp controls the final line breaks of a block scalar.
type Chomp int

const (
	Clip Chomp = iota
	Strip
	Keep
)

// ChompOf maps a block header chomping indicator to a Chomp.
func ChompOf(c byte) Chomp {
	switch c {
	case '-':
		return Strip
	case '+':
		return Keep
	}
	return Clip
}

// LiteralBlock joins the content lines of a literal block scalar. lines
// have the block indentation removed and blank lines are empty.
func LiteralBlock(lines []string, chomp Chomp) string {
	body, trailing := splitTrailing(lines)
	return chompBlock(strings.Join(body, "\n"), len(body) > 0, trailing, chomp)
}

// FoldedBlock joins the content lines of a folded block scalar: adjacent
// lines are joined by a space and each blank line becomes a line break.
func FoldedBlock(lines []string, chomp Chomp) string {
	body, trailing := splitTrailing(lines)
	var b strings.Builder
	blanks := 0
	first := true
	for _, ln := range body {
		if ln == "" {
			blanks++
			continue
		}
		switch {
		case blanks > 0:
			b.WriteString(strings.Repeat("\n", blanks))
		case !first:
			b.WriteByte(' ')
		}
		b.WriteString(ln)
		blanks = 0
		first = false
	}
	return chompBlock(b.String(), len(body) > 0, trailing, chomp)
}

func splitTrailing(lines []string) ([]string, int) {
	n := len(lines)
	for n > 0 && lines[n-1] == "" {
		n--
	}
	return lines[:n], len(lines) - n
}

func chompBlock(s string, content bool, trailing int, chomp Chomp) string {
	switch chomp {
	case Strip:
		return s
	case Keep:
		if content {
			s += "\n"
		}
		return s + strings.Repeat("\n", trailing)
	}
	if content {
		s += "\n"
	}
	return s
}
