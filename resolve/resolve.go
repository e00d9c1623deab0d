package resolve

import (
	"fmt"
	"regexp"
)

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	conv    convFunc
}

// implicitRules are tried in order against plain scalars. A rule whose
// pattern matches but whose conversion fails does not apply.
var implicitRules = []rule{
	{Null, regexp.MustCompile(`^$`), toNull},
	{Bool, regexp.MustCompile(`^(?i:true|yes|on|false|no|off)$`), toBool},
	{Int, regexp.MustCompile(`^[-+]?(0[bB][01_]+|0[oO][0-7_]+|0[xX][0-9a-fA-F_]+|[0-9][0-9_]*)$`), toInt},
	{Float, regexp.MustCompile(`^([-+]?([0-9][0-9_]*)?\.[0-9_]*([eE][-+]?[0-9]+)?|[-+]?\.(?i:inf)|\.(?i:nan))$`), toFloat},
}

var explicitRules = map[string]convFunc{
	TagNull:   toNull,
	TagBool:   toBool,
	TagInt:    toInt,
	TagFloat:  toFloat,
	TagStr:    toStr,
	TagBinary: toBinary,
	"!":       toStr,
}

var kindRules = map[Kind]convFunc{
	Bool:   toBool,
	Int:    toInt,
	Float:  toFloat,
	String: toStr,
	Binary: toBinary,
}

// Implicit resolves an untagged scalar. Quoted and block scalars are
// always strings; plain scalars go through the implicit rules and are
// strings when none applies.
func Implicit(text string, style Style) Value {
	if style != Plain {
		return Value{Kind: String, Str: text}
	}
	for i := range implicitRules {
		r := &implicitRules[i]
		if !r.pattern.MatchString(text) {
			continue
		}
		if v, err := r.conv(text); err == nil {
			return v
		}
	}
	return Value{Kind: String, Str: text}
}

// Explicit resolves a scalar under tag. A tag which is not standard
// yields an Unresolved value holding the text.
func Explicit(tag, text string) (Value, error) {
	conv, ok := explicitRules[NormalizeTag(tag)]
	if !ok {
		return Value{Kind: Unresolved, Str: text}, nil
	}
	return conv(text)
}

// Resolve resolves a scalar by its tag if it has one and implicitly
// otherwise.
func Resolve(tag, text string, style Style) (Value, error) {
	if tag == "" {
		return Implicit(text, style), nil
	}
	return Explicit(tag, text)
}

// Coerce reads text as kind want, applying that kind's explicit rule.
// Null is only accepted for text which implicitly resolves to null.
func Coerce(want Kind, text string, style Style) (Value, error) {
	if want == Null {
		if v := Implicit(text, style); v.Kind == Null {
			return v, nil
		}
		return Value{}, fmt.Errorf("%w: %q is not null", ErrConvert, text)
	}
	conv, ok := kindRules[want]
	if !ok {
		return Value{}, fmt.Errorf("%w: to %s", ErrConvert, want)
	}
	return conv(text)
}

// Convert reads the resolved value v as kind want. The same kind is
// returned as is, ints widen to floats and anything reads as its text
// for String.
func Convert(v Value, want Kind, text string) (Value, error) {
	switch {
	case v.Kind == want:
		return v, nil
	case want == String:
		return Value{Kind: String, Str: text}, nil
	case want == Float && v.Kind == Int:
		return Value{Kind: Float, Float: float64(v.Int)}, nil
	}
	return Value{}, fmt.Errorf("%w: %s to %s", ErrConvert, v.Kind, want)
}
