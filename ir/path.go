package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPathSyntax = errors.New("bad path")

type StepKind int

const (
	FieldStep StepKind = iota
	IndexStep
	AllStep     // [*]
	DescendStep // ..
)

type Step struct {
	Kind  StepKind
	Field string
	Index int
}

// Path is a parsed path such as "$.a.b[0]", "$.items[*].name" or
// "$..name". Field names containing path syntax are written quoted:
// "$.'a.b'".
type Path []Step

func (p Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for i, s := range p {
		switch s.Kind {
		case FieldStep:
			if i == 0 || p[i-1].Kind != DescendStep {
				b.WriteByte('.')
			}
			b.WriteString(PathString(s.Field))
		case IndexStep:
			fmt.Fprintf(b, "[%d]", s.Index)
		case AllStep:
			b.WriteString("[*]")
		case DescendStep:
			b.WriteString("..")
		}
	}
	return b.String()
}

func pathErr(p, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrPathSyntax, p, fmt.Sprintf(format, args...))
}

func ParsePath(p string) (Path, error) {
	if !strings.HasPrefix(p, "$") {
		return nil, pathErr(p, "should start with '$'")
	}
	var res Path
	rest := p[1:]
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, ".."):
			rest = rest[2:]
			if rest == "" || rest[0] == '.' {
				return nil, pathErr(p, "expected field or index after '..'")
			}
			res = append(res, Step{Kind: DescendStep})
			if rest[0] != '[' {
				rest = "." + rest
			}
		case rest[0] == '.':
			field, n, err := pathField(rest[1:])
			if err != nil {
				return nil, pathErr(p, "%v", err)
			}
			res = append(res, Step{Kind: FieldStep, Field: field})
			rest = rest[1+n:]
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, pathErr(p, "unclosed '['")
			}
			if rest[1:end] == "*" {
				res = append(res, Step{Kind: AllStep})
			} else {
				i, err := strconv.ParseUint(rest[1:end], 10, 31)
				if err != nil {
					return nil, pathErr(p, "bad index %q", rest[1:end])
				}
				res = append(res, Step{Kind: IndexStep, Index: int(i)})
			}
			rest = rest[end+1:]
		default:
			return nil, pathErr(p, "expected '.' or '[' at %q", rest)
		}
	}
	return res, nil
}

// pathField reads a bare or quoted field at the start of d, returning it
// and the number of bytes read.
func pathField(d string) (string, int, error) {
	if !strings.HasPrefix(d, "'") {
		n := strings.IndexAny(d, ".[")
		if n == -1 {
			n = len(d)
		}
		if n == 0 {
			return "", 0, errors.New("empty field")
		}
		return d[:n], n, nil
	}
	b := &strings.Builder{}
	for i := 1; i < len(d); i++ {
		switch {
		case d[i] == '\\' && i+1 < len(d):
			i++
			b.WriteByte(d[i])
		case d[i] == '\'':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(d[i])
		}
	}
	return "", 0, errors.New("unterminated quoted field")
}

// PathString quotes a field for use in a path when needed.
func PathString(f string) string {
	if f != "" && !strings.ContainsAny(f, `'.*$[]\`) {
		return f
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(f) + "'"
}

// GetPath returns the node at path, or nil when a field along the path is
// missing. Paths with "[*]" or ".." select several nodes and are
// rejected; use ListPath for them.
func (y *Node) GetPath(path string) (*Node, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for _, s := range steps {
		switch s.Kind {
		case IndexStep:
			if res.Type != SequenceType {
				return nil, res.wrongType(SequenceType)
			}
			if s.Index >= len(res.Values) {
				return nil, res.typeErr(fmt.Errorf("%w: %d (len %d)", ErrIndexRange, s.Index, len(res.Values)))
			}
			res = res.Values[s.Index]
		case FieldStep:
			if res.Type != MappingType {
				return nil, res.wrongType(MappingType)
			}
			i := res.KeyIndex(s.Field)
			if i == -1 {
				return nil, nil
			}
			res = res.Values[i]
		default:
			return nil, pathErr(path, "selects several nodes")
		}
	}
	return res, nil
}

// ListPath appends to dst every node matching path.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.match(dst, steps), nil
}

func (y *Node) match(dst []*Node, steps Path) []*Node {
	if len(steps) == 0 {
		return append(dst, y)
	}
	s, rest := steps[0], steps[1:]
	switch s.Kind {
	case DescendStep:
		_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
			if !isPost {
				dst = n.match(dst, rest)
			}
			return !isPost && !n.Type.IsLeaf(), nil
		})
	case FieldStep:
		if y.Type != MappingType {
			break
		}
		for i, k := range y.Keys {
			if k == s.Field {
				dst = y.Values[i].match(dst, rest)
			}
		}
	case IndexStep:
		if y.Type == SequenceType && s.Index < len(y.Values) {
			dst = y.Values[s.Index].match(dst, rest)
		}
	case AllStep:
		if y.Type != SequenceType {
			break
		}
		for _, v := range y.Values {
			dst = v.match(dst, rest)
		}
	}
	return dst
}
