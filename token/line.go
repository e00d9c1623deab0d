package token

import "strings"

type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineDirective
	LineDocStart
	LineDocEnd
	LineSeqItem
	LineMapEntry
	LineScalar
)

func (k LineKind) String() string {
	return map[LineKind]string{
		LineBlank:     "LineBlank",
		LineComment:   "LineComment",
		LineDirective: "LineDirective",
		LineDocStart:  "LineDocStart",
		LineDocEnd:    "LineDocEnd",
		LineSeqItem:   "LineSeqItem",
		LineMapEntry:  "LineMapEntry",
		LineScalar:    "LineScalar",
	}[k]
}

// Line is a classified physical line.
type Line struct {
	Kind   LineKind
	Num    int
	Indent int
	Text   string

	// Key is the decoded key of a LineMapEntry.
	Key string
	// Rest is what follows the line indicator ("- ", "key:", "---") and
	// starts at column RestCol. For a LineScalar it is the whole body.
	Rest    string
	RestCol int
}

// Classify determines the indentation and kind of a line. num is the
// 1-based line number used for positions.
func Classify(text string, num int) (*Line, error) {
	l := &Line{Num: num, Text: text}
	i := 0
	tabs := false
	for i < len(text) && isBlank(text[i]) {
		if text[i] == '\t' {
			tabs = true
		}
		i++
	}
	body := text[i:]
	switch {
	case body == "":
		l.Kind = LineBlank
		return l, nil
	case body[0] == '#':
		l.Kind = LineComment
		l.Indent = i
		return l, nil
	}
	if tabs {
		return nil, NewTokenizeErr(ErrTabIndent, l.Pos(i))
	}
	l.Indent = i
	if i == 0 {
		switch {
		case body[0] == '%':
			l.Kind = LineDirective
			l.Rest = body
			return l, nil
		case marker(body, "---"):
			l.Kind = LineDocStart
			l.setRest(3)
			return l, nil
		case marker(body, "..."):
			l.Kind = LineDocEnd
			l.setRest(3)
			if l.Rest != "" && l.Rest[0] != '#' {
				return nil, NewTokenizeErr(ErrBadMarker, l.Pos(l.RestCol))
			}
			return l, nil
		}
	}
	if body[0] == '-' && (len(body) == 1 || isBlank(body[1])) {
		l.Kind = LineSeqItem
		l.setRest(i + 1)
		return l, nil
	}
	if key, n, ok := mapKey(body); ok {
		l.Kind = LineMapEntry
		l.Key = key
		l.setRest(i + n)
		return l, nil
	}
	l.Kind = LineScalar
	l.Rest = body
	l.RestCol = i
	return l, nil
}

// Sub classifies the remainder of the line from column col as if it were
// a line of its own indented by col. It is used for compact collections
// such as "- key: value" and "- - item".
func (l *Line) Sub(col int) (*Line, error) {
	return Classify(strings.Repeat(" ", col)+l.Text[col:], l.Num)
}

// Pos returns the position of column col of the line.
func (l *Line) Pos(col int) Pos {
	return Pos{Line: l.Num, Col: col, Context: l.Text}
}

func (l *Line) IsMarker() bool {
	return l.Kind == LineDocStart || l.Kind == LineDocEnd
}

// IsStructural reports whether the line opens a collection entry.
func (l *Line) IsStructural() bool {
	return l.Kind == LineSeqItem || l.Kind == LineMapEntry
}

func (l *Line) setRest(col int) {
	for col < len(l.Text) && isBlank(l.Text[col]) {
		col++
	}
	l.RestCol = col
	l.Rest = l.Text[col:]
}

// IsDocStart reports whether text is a "---" document start line.
func IsDocStart(text string) bool {
	return marker(text, "---")
}

// IsDocEnd reports whether text is a "..." document end line.
func IsDocEnd(text string) bool {
	return marker(text, "...")
}

func marker(body, m string) bool {
	return strings.HasPrefix(body, m) && (len(body) == len(m) || isBlank(body[len(m)]))
}

// mapKey recognizes a "key:" prefix of body, returning the decoded key and
// the offset just past the colon.
func mapKey(body string) (string, int, bool) {
	switch body[0] {
	case '"', '\'':
		key, n, err := Unquote(body)
		if err != nil {
			return "", 0, false
		}
		j := n
		for j < len(body) && body[j] == ' ' {
			j++
		}
		if j < len(body) && body[j] == ':' && (j+1 == len(body) || isBlank(body[j+1])) {
			return key, j + 1, true
		}
		return "", 0, false
	case '[', ']', '{', '}', ',', '!', '&', '*', '|', '>', '#', '%', '@', '`':
		return "", 0, false
	case '?', ':', '-':
		if len(body) == 1 || isBlank(body[1]) {
			return "", 0, false
		}
	}
	for j := 0; j < len(body); j++ {
		switch body[j] {
		case ':':
			if j+1 == len(body) || isBlank(body[j+1]) {
				return strings.TrimRight(body[:j], " \t"), j + 1, true
			}
		case '#':
			if isBlank(body[j-1]) {
				return "", 0, false
			}
		}
	}
	return "", 0, false
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
