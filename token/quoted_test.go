package token

import (
	"errors"
	"testing"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
		n    int
	}{
		{`'plain'`, "plain", 7},
		{`'it''s' rest`, "it's", 7},
		{`"a\tb"`, "a\tb", 6},
		{"\"blah\tblah\\tblah\"", "blah\tblah\tblah", 17},
		{`"\x41é\U0001F600"`, "Aé😀", 18},
		{`"q\"q"`, `q"q`, 6},
		{`"\/\\"`, `/\`, 6},
		{`""`, "", 2},
		{`"trail "`, "trail ", 8},
		{"\"first \\\n  second\"", "first second", 18},
		{"\"first\n  second\"", "first second", 16},
		{"\"a  \n\n  b\"", "a\nb", 10},
		{"\"a\\\n\n b\"", "a\nb", 8},
		{"'one\n two'", "one two", 10},
	}
	for _, tc := range tests {
		got, n, err := Unquote(tc.in)
		if err != nil {
			t.Errorf("Unquote(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want || n != tc.n {
			t.Errorf("Unquote(%q) = %q, %d; want %q, %d", tc.in, got, n, tc.want, tc.n)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`"open`, ErrUnterminated},
		{`'open`, ErrUnterminated},
		{"\"line\n", ErrUnterminated},
		{`"\q"`, ErrBadEscape},
		{`"\x4"`, ErrBadUnicode},
		{"\"a\x01\"", ErrUnicodeControl},
	}
	for _, tc := range tests {
		_, _, err := Unquote(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("Unquote(%q): got %v, want %v", tc.in, err, tc.err)
		}
	}
}
