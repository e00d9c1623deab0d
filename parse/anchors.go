package parse

import (
	"fmt"

	"github.com/signadot/kyaml/ir"
)

// Anchors maps the anchor names of one document to their nodes.
type Anchors struct {
	m map[string]*ir.Node
}

func NewAnchors() *Anchors {
	return &Anchors{m: map[string]*ir.Node{}}
}

func (a *Anchors) Register(name string, n *ir.Node) error {
	if _, ok := a.m[name]; ok {
		return fmt.Errorf("%w: &%s", ErrDuplicateAnchor, name)
	}
	a.m[name] = n
	return nil
}

// Resolve returns the node anchored as name. The node is shared, not
// copied.
func (a *Anchors) Resolve(name string) (*ir.Node, error) {
	n, ok := a.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: *%s", ErrUndefinedAlias, name)
	}
	return n, nil
}

func (a *Anchors) Len() int {
	return len(a.m)
}

func (a *Anchors) Reset() {
	clear(a.m)
}
