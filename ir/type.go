package ir

import "fmt"

type Type int

const (
	LeafType Type = iota
	MappingType
	SequenceType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LeafType:     "Leaf",
		MappingType:  "Mapping",
		SequenceType: "Sequence",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Leaf":     LeafType,
		"Mapping":  MappingType,
		"Sequence": SequenceType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LeafType,
		MappingType,
		SequenceType,
	}
}

func (t Type) IsLeaf() bool {
	return t == LeafType
}
