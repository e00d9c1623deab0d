package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Errorf("%s: %v", f, err)
		}
		if g != f {
			t.Errorf("got %s, want %s", g, f)
		}
	}
	if f, err := ParseFormat("j"); err != nil || !f.IsJSON() {
		t.Errorf("ParseFormat(j) = %s, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(yaml): %v", err)
	}
}
