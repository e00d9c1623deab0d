package resolve

import "fmt"

// Kind is the kind of a resolved scalar.
type Kind int

const (
	Unresolved Kind = iota
	Null
	Bool
	Int
	Float
	String
	Binary
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Unresolved: "unresolved",
		Null:       "null",
		Bool:       "bool",
		Int:        "int",
		Float:      "float",
		String:     "string",
		Binary:     "binary",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"unresolved": Unresolved,
		"null":       Null,
		"bool":       Bool,
		"int":        Int,
		"float":      Float,
		"string":     String,
		"binary":     Binary,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Style is the presentation style a scalar was written in.
type Style int

const (
	Plain Style = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

func (s Style) String() string {
	return map[Style]string{
		Plain:        "plain",
		SingleQuoted: "single-quoted",
		DoubleQuoted: "double-quoted",
		Literal:      "literal",
		Folded:       "folded",
	}[s]
}

// Value is a typed scalar. Only the field selected by Kind is meaningful;
// Str holds the text for String and Unresolved.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Bytes []byte
}

// Interface returns the Go value: nil, bool, int64, float64, string or
// []byte. Unresolved values yield their text.
func (v Value) Interface() any {
	switch v.Kind {
	case Null:
		return nil
	case Bool:
		return v.Bool
	case Int:
		return v.Int
	case Float:
		return v.Float
	case Binary:
		return v.Bytes
	default:
		return v.Str
	}
}
