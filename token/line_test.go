package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	type result struct {
		Kind   LineKind
		Indent int
		Key    string
		Rest   string
	}
	tests := []struct {
		in   string
		want result
	}{
		{"", result{Kind: LineBlank}},
		{"   ", result{Kind: LineBlank}},
		{"  # note", result{Kind: LineComment, Indent: 2}},
		{"%YAML 1.2", result{Kind: LineDirective, Rest: "%YAML 1.2"}},
		{"---", result{Kind: LineDocStart}},
		{"--- !!str x", result{Kind: LineDocStart, Rest: "!!str x"}},
		{"...", result{Kind: LineDocEnd}},
		{"... # end", result{Kind: LineDocEnd, Rest: "# end"}},
		{"- a", result{Kind: LineSeqItem, Rest: "a"}},
		{"  -", result{Kind: LineSeqItem, Indent: 2}},
		{"-1", result{Kind: LineScalar, Rest: "-1"}},
		{"key: value", result{Kind: LineMapEntry, Key: "key", Rest: "value"}},
		{"key :  value", result{Kind: LineMapEntry, Key: "key", Rest: "value"}},
		{"  k:", result{Kind: LineMapEntry, Indent: 2, Key: "k"}},
		{`"a: b": c`, result{Kind: LineMapEntry, Key: "a: b", Rest: "c"}},
		{`'it''s': c`, result{Kind: LineMapEntry, Key: "it's", Rest: "c"}},
		{"http://example.com", result{Kind: LineScalar, Rest: "http://example.com"}},
		{"a #b: c", result{Kind: LineScalar, Rest: "a #b: c"}},
		{"{ key : value }", result{Kind: LineScalar, Rest: "{ key : value }"}},
		{"!tag key: v", result{Kind: LineScalar, Rest: "!tag key: v"}},
		{" ---", result{Kind: LineScalar, Indent: 1, Rest: "---"}},
		{"?a: 1", result{Kind: LineMapEntry, Key: "?a", Rest: "1"}},
		{":a: 1", result{Kind: LineMapEntry, Key: ":a", Rest: "1"}},
		{"-a: 1", result{Kind: LineMapEntry, Key: "-a", Rest: "1"}},
		{"? a: 1", result{Kind: LineScalar, Rest: "? a: 1"}},
	}
	for _, tc := range tests {
		l, err := Classify(tc.in, 1)
		if err != nil {
			t.Errorf("Classify(%q): %v", tc.in, err)
			continue
		}
		got := result{Kind: l.Kind, Indent: l.Indent, Key: l.Key, Rest: l.Rest}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Classify(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"\tkey: v", ErrTabIndent},
		{" \t- a", ErrTabIndent},
		{"... more", ErrBadMarker},
	}
	for _, tc := range tests {
		_, err := Classify(tc.in, 3)
		if !errors.Is(err, tc.err) {
			t.Errorf("Classify(%q): got %v, want %v", tc.in, err, tc.err)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) || te.Pos.Line != 3 {
			t.Errorf("Classify(%q): missing position in %v", tc.in, err)
		}
	}
}

func TestLineSub(t *testing.T) {
	l, err := Classify("- key: v", 1)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := l.Sub(l.RestCol)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Kind != LineMapEntry || sub.Indent != 2 || sub.Key != "key" || sub.Rest != "v" {
		t.Errorf("unexpected sub line %+v", sub)
	}
}
