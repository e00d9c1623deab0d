package ir

import (
	"slices"

	"github.com/signadot/kyaml/resolve"
)

// Node is a mapping, a sequence or a leaf. Keys[i] names Values[i] in a
// mapping; a sequence uses Values only; a leaf holds Text.
type Node struct {
	Type   Type
	Tag    string
	Anchor string
	Line   int

	Keys   []string
	Values []*Node

	Text  string
	Style resolve.Style

	eager bool
	value resolve.Value
	err   error
}

func FromText(text string, style resolve.Style) *Node {
	return &Node{Type: LeafType, Text: text, Style: style}
}

func FromMap(keys []string, values []*Node) *Node {
	return &Node{Type: MappingType, Keys: keys, Values: values}
}

func FromSlice(values []*Node) *Node {
	return &Node{Type: SequenceType, Values: values}
}

// Null returns an empty plain leaf.
func Null() *Node {
	return FromText("", resolve.Plain)
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

func (y *Node) WithAnchor(name string) *Node {
	y.Anchor = name
	return y
}

func (y *Node) WithLine(line int) *Node {
	y.Line = line
	return y
}

// ResolveNow computes and stores the typed value of a leaf. Stored values
// and errors are returned by the accessors from then on.
func (y *Node) ResolveNow() (resolve.Value, error) {
	if y.Type != LeafType {
		return resolve.Value{}, nil
	}
	y.value, y.err = resolve.Resolve(y.Tag, y.Text, y.Style)
	y.eager = true
	return y.value, y.err
}

// Eager reports whether the leaf was resolved at parse time.
func (y *Node) Eager() bool {
	return y.eager
}

// Properties returns the explicit tag and "&anchor" written on the node,
// sorted.
func (y *Node) Properties() []string {
	var res []string
	if y.Tag != "" {
		res = append(res, y.Tag)
	}
	if y.Anchor != "" {
		res = append(res, "&"+y.Anchor)
	}
	slices.Sort(res)
	return res
}

// KeyIndex returns the index of key in a mapping, or -1.
func (y *Node) KeyIndex(key string) int {
	if y.Type != MappingType {
		return -1
	}
	return slices.Index(y.Keys, key)
}

// Visit calls f on y and, when f returns true, on its children, then calls
// f again after the children with isPost set. Nodes shared through
// aliases are visited once per reference.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Document is the root of one parsed document with the lines it spans.
type Document struct {
	*Node
	StartLine int
	EndLine   int
}
