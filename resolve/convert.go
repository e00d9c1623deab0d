package resolve

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type convFunc func(text string) (Value, error)

func toNull(string) (Value, error) {
	return Value{Kind: Null}, nil
}

func toStr(text string) (Value, error) {
	return Value{Kind: String, Str: text}, nil
}

func toBool(text string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "yes", "on":
		return Value{Kind: Bool, Bool: true}, nil
	case "false", "no", "off":
		return Value{Kind: Bool}, nil
	}
	return Value{}, fmt.Errorf("%w: %q", ErrBool, text)
}

func toInt(text string) (Value, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInt, text)
	}
	return Value{Kind: Int, Int: i}, nil
}

func toFloat(text string) (Value, error) {
	s := strings.TrimSpace(text)
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return Value{Kind: Float, Float: math.Inf(1)}, nil
	case "-.inf":
		return Value{Kind: Float, Float: math.Inf(-1)}, nil
	case ".nan":
		return Value{Kind: Float, Float: math.NaN()}, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrFloat, text)
	}
	return Value{Kind: Float, Float: f}, nil
}

func toBinary(text string) (Value, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrBinary, err)
	}
	return Value{Kind: Binary, Bytes: d}, nil
}
