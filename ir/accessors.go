package ir

import (
	"fmt"

	"github.com/signadot/kyaml/resolve"
)

func (y *Node) typeErr(err error) *Error {
	return NewError(TypeError, y.Line, err)
}

func (y *Node) wrongType(want Type) *Error {
	return y.typeErr(fmt.Errorf("%w: %s is not a %s", ErrWrongType, y.Type, want))
}

// Len returns the number of entries of a mapping or sequence, and 0 for a
// leaf.
func (y *Node) Len() int {
	if y.Type == LeafType {
		return 0
	}
	return len(y.Values)
}

// Get returns the value for key in a mapping.
func (y *Node) Get(key string) (*Node, error) {
	if y.Type != MappingType {
		return nil, y.wrongType(MappingType)
	}
	i := y.KeyIndex(key)
	if i == -1 {
		return nil, y.typeErr(fmt.Errorf("%w: %q", ErrNoKey, key))
	}
	return y.Values[i], nil
}

// Index returns the i'th item of a sequence.
func (y *Node) Index(i int) (*Node, error) {
	if y.Type != SequenceType {
		return nil, y.wrongType(SequenceType)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, y.typeErr(fmt.Errorf("%w: %d (len %d)", ErrIndexRange, i, len(y.Values)))
	}
	return y.Values[i], nil
}

// Lookup follows path from y, where each element is a string key or an
// int index.
func (y *Node) Lookup(path ...any) (*Node, error) {
	res := y
	for _, p := range path {
		var err error
		switch x := p.(type) {
		case string:
			res, err = res.Get(x)
		case int:
			res, err = res.Index(x)
		default:
			return nil, res.typeErr(fmt.Errorf("%w: %T", ErrPathType, p))
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Has reports whether Lookup(path...) succeeds.
func (y *Node) Has(path ...any) bool {
	_, err := y.Lookup(path...)
	return err == nil
}

// Value returns the raw text of a leaf.
func (y *Node) Value() (string, error) {
	if y.Type != LeafType {
		return "", y.wrongType(LeafType)
	}
	return y.Text, nil
}

// Resolved returns the typed value of a leaf: the value stored at parse
// time, or one computed from the tag and text.
func (y *Node) Resolved() (resolve.Value, error) {
	if y.Type != LeafType {
		return resolve.Value{}, y.wrongType(LeafType)
	}
	v, err := y.value, y.err
	if !y.eager {
		v, err = resolve.Resolve(y.Tag, y.Text, y.Style)
	}
	if err != nil {
		return resolve.Value{}, y.typeErr(err)
	}
	return v, nil
}

func (y *Node) as(want resolve.Kind) (resolve.Value, error) {
	if y.Type != LeafType {
		return resolve.Value{}, y.wrongType(LeafType)
	}
	if _, ok := resolve.StandardKind(y.Tag); ok {
		v, err := y.Resolved()
		if err != nil {
			return v, err
		}
		v, err = resolve.Convert(v, want, y.Text)
		if err != nil {
			return v, y.typeErr(err)
		}
		return v, nil
	}
	v, err := resolve.Coerce(want, y.Text, y.Style)
	if err != nil {
		return v, y.typeErr(err)
	}
	return v, nil
}

func (y *Node) AsBool() (bool, error) {
	v, err := y.as(resolve.Bool)
	return v.Bool, err
}

func (y *Node) AsInt() (int64, error) {
	v, err := y.as(resolve.Int)
	return v.Int, err
}

func (y *Node) AsFloat() (float64, error) {
	v, err := y.as(resolve.Float)
	return v.Float, err
}

func (y *Node) AsString() (string, error) {
	v, err := y.as(resolve.String)
	return v.Str, err
}

func (y *Node) AsBinary() ([]byte, error) {
	v, err := y.as(resolve.Binary)
	return v.Bytes, err
}

// AsNull succeeds when the leaf is null.
func (y *Node) AsNull() error {
	_, err := y.as(resolve.Null)
	return err
}

// Interface converts the tree to Go values: map[string]any, []any and
// the typed value of each leaf. Leaves not resolved at parse time yield
// their raw text.
func (y *Node) Interface() (any, error) {
	switch y.Type {
	case MappingType:
		res := make(map[string]any, len(y.Keys))
		for i, k := range y.Keys {
			v, err := y.Values[i].Interface()
			if err != nil {
				return nil, err
			}
			res[k] = v
		}
		return res, nil
	case SequenceType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			v, err := yv.Interface()
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	}
	if !y.eager {
		return y.Text, nil
	}
	v, err := y.Resolved()
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}
