package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/kyaml/dump"
	"github.com/signadot/kyaml/format"
	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/resolve"
	"github.com/signadot/kyaml/token"
)

type parseTest struct {
	in  string
	out string
}

func raw(t *testing.T, in string, opts ...ParseOption) string {
	t.Helper()
	node, err := Parse([]byte(in), opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	if node == nil {
		t.Fatalf("parse %q: no document", in)
	}
	return dump.MustString(node, dump.DumpFormat(format.JSONFormat), dump.DumpRaw(true))
}

func runTests(t *testing.T, pts []parseTest) {
	t.Helper()
	for _, pt := range pts {
		if got := raw(t, pt.in); got != pt.out {
			t.Errorf("parse %q:\n got %s\nwant %s", pt.in, got, pt.out)
		}
	}
}

func TestParseBlock(t *testing.T) {
	runTests(t, []parseTest{
		{in: "hello", out: `"hello"`},
		{in: "a: 1\nb: 2\n", out: `{"a":"1","b":"2"}`},
		{in: "a:\n  b:\n    c: d\ne: f\n", out: `{"a":{"b":{"c":"d"}},"e":"f"}`},
		{in: "key:\n- a\n- b\n", out: `{"key":["a","b"]}`},
		{in: "key:\n  - a\n  - b\nnext: c\n", out: `{"key":["a","b"],"next":"c"}`},
		{in: "- a\n- b: c\n  d: e\n- - x\n  - y\n", out: `["a",{"b":"c","d":"e"},["x","y"]]`},
		{in: "a:\nb: 2\n", out: `{"a":"","b":"2"}`},
		{in: "- \n- x\n", out: `["","x"]`},
		{in: "# head\na: 1 # trailing\n\n# between\nb: 2\n", out: `{"a":"1","b":"2"}`},
		{in: "\"quoted key\": v\n'single': w\n", out: `{"quoted key":"v","single":"w"}`},
		{in: "a: \"x\\ty\"\nb: 'it''s'\n", out: `{"a":"x\ty","b":"it's"}`},
		{in: "a: http://example.com/x#y\n", out: `{"a":"http://example.com/x#y"}`},
		{in: "a: one\n  two\n\n  three\nb: x\n", out: `{"a":"one two\nthree","b":"x"}`},
		{in: "- one\n  two # done\n", out: `["one two"]`},
		{in: "a: \"first \\\n  second\"\n", out: `{"a":"first second"}`},
		{in: "a: \"first\n  second\"\nb: c\n", out: `{"a":"first second","b":"c"}`},
		{in: "- 'one\n\n  two'\n- x\n", out: `["one\ntwo","x"]`},
		{in: "a: [\"x\n  y\", z]\n", out: `{"a":["x y","z"]}`},
		{in: "?a: 1\n:b: 2\n-c: 3\n", out: `{"?a":"1",":b":"2","-c":"3"}`},
		{in: "a: b:c\n", out: `{"a":"b:c"}`},
	})
}

func TestParseBlockScalars(t *testing.T) {
	runTests(t, []parseTest{
		{in: "a: |\n  x\n  y\nb: 1\n", out: `{"a":"x\ny\n","b":"1"}`},
		{in: "a: |-\n  x\n\n", out: `{"a":"x"}`},
		{in: "a: |+\n  x\n\nb: 1\n", out: `{"a":"x\n\n","b":"1"}`},
		{in: "a: >\n  x\n  y\n\n  z\n", out: `{"a":"x y\nz\n"}`},
		{in: "a: >-\n  This should\n  only have\n  spaces.\n", out: `{"a":"This should only have spaces."}`},
		{in: "a: |2\n    x\n  y\n", out: `{"a":"  x\ny\n"}`},
		{in: "a: |\n    x\n  y\n", out: `{"a":"  x\ny\n"}`},
		{in: "- |\n  x\n- y\n", out: `["x\n","y"]`},
		{in: "|\nline\n  indented\nless indented\n", out: `"line\n  indented\nless indented\n"`},
		{in: ">\nline\n\tindented\nless indented\n", out: `"line \tindented less indented\n"`},
		{in: "--- |\n  text\n...\n", out: `"text\n"`},
		{in: "a: |\n  # not a comment\n", out: `{"a":"# not a comment\n"}`},
	})
}

func TestParseFlow(t *testing.T) {
	runTests(t, []parseTest{
		{in: "[ one, two ]", out: `["one","two"]`},
		{in: "{ key : value }", out: `{"key":"value"}`},
		{in: "[ [one, two] ]", out: `[["one","two"]]`},
		{in: "{ key : [value1, value2]}", out: `{"key":["value1","value2"]}`},
		{in: "[]", out: `[]`},
		{in: "{}", out: `{}`},
		{in: "[a, b,]", out: `["a","b"]`},
		{in: "[a b, \"c, d\"]", out: `["a b","c, d"]`},
		{in: "{a, b: c, d: }", out: `{"a":"","b":"c","d":""}`},
		{in: "{\"a\":b}", out: `{"a":"b"}`},
		{in: "[a:b]", out: `["a:b"]`},
		{in: "a: [1,\n  2, # two\n  3]\nb: c\n", out: `{"a":["1","2","3"],"b":"c"}`},
		{in: "a: {x: [1, {y: z}]}\n", out: `{"a":{"x":["1",{"y":"z"}]}}`},
		{in: "- [a]\n- {b: c}\n", out: `[["a"],{"b":"c"}]`},
	})
}

func TestParseDocuments(t *testing.T) {
	runTests(t, []parseTest{
		{in: "--- foo\n", out: `"foo"`},
		{in: "---\na: 1\n--- \nb: 2\n", out: `{"a":"1"}`},
		{in: "%YAML 1.2\n---", out: `""`},
		{in: "#empty\n...", out: `""`},
		{in: "%YAML 1.2\n---\n# with directive\nsequence:\n  - item 1\n  - item 2\n\n", out: `{"sequence":["item 1","item 2"]}`},
		{in: "%BLAH\n---\nsequence:\n  - item 1\n", out: `{"sequence":["item 1"]}`},
		{in: "a: 1\n...\n", out: `{"a":"1"}`},
	})
	node, err := Parse(nil)
	if err != nil || node != nil {
		t.Errorf("empty input: got %v, %v", node, err)
	}
}

func TestParseProperties(t *testing.T) {
	pts := []parseTest{
		{in: "a: !!int 1\nb: &x [1]\nc: *x\n", out: "{a: !!int 1, b: &x [1], c: &x [1]}"},
		{in: "--- !tag\na: b\n", out: "!tag {a: b}"},
		{in: "a: !custom\n  b: c\n", out: "{a: !custom {b: c}}"},
		{in: "a: &anchor\n  - x\nb: *anchor\n", out: "{a: &anchor [x], b: &anchor [x]}"},
		{in: "[!t a, &n b, *n]", out: "[!t a, &n b, &n b]"},
		{in: "a: !<tag:yaml.org,2002:str> 1\n", out: "{a: !<tag:yaml.org,2002:str> 1}"},
		{in: "a: !!str\n", out: "{a: !!str }"},
	}
	for _, pt := range pts {
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("parse %q: %v", pt.in, err)
			continue
		}
		if got := dump.MustString(node, dump.DumpProperties(true)); got != pt.out {
			t.Errorf("parse %q:\n got %s\nwant %s", pt.in, got, pt.out)
		}
	}
}

func TestOzDocument(t *testing.T) {
	node, err := Parse([]byte(ozDoc))
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		path []any
		want string
	}{
		{[]any{"receipt"}, "Oz-Ware Purchase Invoice"},
		{[]any{"date"}, "2012-08-06"},
		{[]any{"customer", "given"}, "Dorothy"},
		{[]any{"customer", "family"}, "Gale"},
		{[]any{"items", 1, "descrip"}, `High Heeled "Ruby" Slippers`},
		{[]any{"bill-to", "street"}, "123 Tornado Alley\nSuite 16\n"},
		{[]any{"ship-to", "city"}, "East Centerville"},
		{[]any{"specialDelivery"}, "Follow the Yellow Brick Road to the Emerald City. Pay no attention to the man behind the curtain.\n"},
	}
	for _, c := range checks {
		n, err := node.Lookup(c.path...)
		if err != nil {
			t.Errorf("%v: %v", c.path, err)
			continue
		}
		if got, _ := n.Value(); got != c.want {
			t.Errorf("%v: got %q, want %q", c.path, got, c.want)
		}
	}
	price, _ := node.Lookup("items", 0, "price")
	if f, err := price.AsFloat(); err != nil || f != 1.47 {
		t.Errorf("price: %v %v", f, err)
	}
	bill, _ := node.Get("bill-to")
	ship, _ := node.Get("ship-to")
	if bill != ship {
		t.Errorf("alias is not the anchored node")
	}
}

func TestParseErrors(t *testing.T) {
	type errTest struct {
		in   string
		err  error
		kind ir.ErrorKind
		line int
	}
	ets := []errTest{
		{"a: 1\n  b: 2\n", token.ErrBadIndent, ir.SyntaxError, 2},
		{"a:\n    b: 1\n  c: 2\n", token.ErrBadIndent, ir.SyntaxError, 3},
		{"- a\n  - b\n", token.ErrBadIndent, ir.SyntaxError, 2},
		{"a:\n\tb: 1\n", token.ErrTabIndent, ir.SyntaxError, 2},
		{"a: 1\na: 2\n", ErrDuplicateKey, ir.SyntaxError, 2},
		{"{a: 1, a: 2}", ErrDuplicateKey, ir.SyntaxError, 1},
		{"a: *x\n", ErrUndefinedAlias, ir.ReferenceError, 1},
		{"a: &x 1\nb: &x 2\n", ErrDuplicateAnchor, ir.ReferenceError, 2},
		{"a: &x 1\nb: !t *x\n", ErrAliasProperties, ir.ReferenceError, 2},
		{"a: &x [*x]\n", ErrUndefinedAlias, ir.ReferenceError, 1},
		{"!t a: b\n", ErrKeyTag, ir.SyntaxError, 1},
		{"x:\n  &k a: b\n", ErrKeyTag, ir.SyntaxError, 2},
		{"{!t a: b}", ErrKeyTag, ir.SyntaxError, 1},
		{"a: |x\n", token.ErrBlockScalar, ir.SyntaxError, 1},
		{"a: |--\n", token.ErrBlockScalar, ir.SyntaxError, 1},
		{"a: \"open\n", token.ErrUnterminated, ir.SyntaxError, 1},
		{"a: \"\\q\"\n", token.ErrBadEscape, ir.SyntaxError, 1},
		{"a: \"open\n---\nb: 1\n", token.ErrUnterminated, ir.SyntaxError, 1},
		{"a: b: c\n", token.ErrUnexpected, ir.SyntaxError, 1},
		{"x: - a\n", token.ErrUnexpected, ir.SyntaxError, 1},
		{"- a:\n  b: c: d\n", token.ErrUnexpected, ir.SyntaxError, 2},
		{"a: [1, 2\n", token.ErrFlow, ir.SyntaxError, 1},
		{"a: [1 2] x\n", token.ErrUnexpected, ir.SyntaxError, 1},
		{"[a, , b]", token.ErrFlow, ir.SyntaxError, 1},
		{"%YAML 1.2\na: 1\n", token.ErrBadMarker, ir.SyntaxError, 2},
		{"a: 1\n- b\n", token.ErrUnexpected, ir.SyntaxError, 2},
		{"[a]\nb\n", token.ErrUnexpected, ir.SyntaxError, 2},
		{"a: !t !u b\n", token.ErrProperty, ir.SyntaxError, 1},
	}
	for _, et := range ets {
		_, err := Parse([]byte(et.in))
		if !errors.Is(err, et.err) {
			t.Errorf("parse %q: got %v, want %v", et.in, err, et.err)
			continue
		}
		var e *ir.Error
		if !errors.As(err, &e) {
			t.Errorf("parse %q: %T is not *ir.Error", et.in, err)
			continue
		}
		if e.Kind != et.kind || e.Line != et.line {
			t.Errorf("parse %q: got %s line %d, want %s line %d", et.in, e.Kind, e.Line, et.kind, et.line)
		}
	}
}

func TestDuplicateKeys(t *testing.T) {
	got := raw(t, "a: 1\nb: 2\na: 3\n", DuplicateKeys(KeysLastWins))
	if want := `{"a":"3","b":"2"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	k, err := ParseKeyPolicy("last")
	if err != nil || k != KeysLastWins {
		t.Errorf("ParseKeyPolicy(last) = %v, %v", k, err)
	}
	if _, err := ParseKeyPolicy("first"); err == nil {
		t.Errorf("ParseKeyPolicy(first) succeeded")
	}
}

func TestEagerAndDeferred(t *testing.T) {
	in := "n: !!int abc\nb: Yes\ns: !!str No\nf: !!float 0.123\n"
	eager, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	n, _ := eager.Get("n")
	if !n.Eager() {
		t.Errorf("leaf not resolved at parse time")
	}
	if v, _ := n.Value(); v != "abc" {
		t.Errorf("Value() = %q", v)
	}
	_, err = n.AsInt()
	if !errors.Is(err, resolve.ErrInt) {
		t.Errorf("AsInt: got %v", err)
	}
	if k, _ := ir.KindOf(err); k != ir.TypeError {
		t.Errorf("AsInt error kind %s", k)
	}
	if _, err := eager.Interface(); !errors.Is(err, resolve.ErrInt) {
		t.Errorf("Interface: got %v", err)
	}

	deferred, err := Parse([]byte(in), ImplicitConversion(false))
	if err != nil {
		t.Fatal(err)
	}
	got, err := deferred.Interface()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"n": "abc", "b": "Yes", "s": "No", "f": "0.123"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("deferred (-want +got):\n%s", diff)
	}
	b, _ := deferred.Get("b")
	if v, err := b.AsBool(); err != nil || !v {
		t.Errorf("AsBool: %v %v", v, err)
	}
	s, _ := deferred.Get("s")
	if _, err := s.AsBool(); err == nil {
		t.Errorf("!!str No converted to bool")
	}
	f, _ := deferred.Get("f")
	if v, _ := f.Value(); v != "0.123" {
		t.Errorf("Value() = %q", v)
	}
}

func TestParserDocuments(t *testing.T) {
	in := "a: 1\n---\n- x\n...\n--- z\n"
	p := NewParser(token.NewTokenizer(token.NewLineSource(strings.NewReader(in))))
	var got []string
	for {
		doc, err := p.Document()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, dump.MustString(doc.Node))
	}
	if diff := cmp.Diff([]string{"{a: 1}", "[x]", "z"}, got); diff != "" {
		t.Errorf("documents (-want +got):\n%s", diff)
	}
}

func TestAnchorsResetPerDocument(t *testing.T) {
	in := "a: &x 1\n---\nb: *x\n"
	p := NewParser(token.NewTokenizer(token.NewLineSource(strings.NewReader(in))))
	if _, err := p.Document(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Document(); !errors.Is(err, ErrUndefinedAlias) {
		t.Errorf("alias across documents: got %v", err)
	}
}

const ozDoc = `---
receipt:     Oz-Ware Purchase Invoice
date:        2012-08-06
customer:
    given:   Dorothy
    family:  Gale

items:
    - part_no:   A4786
      descrip:   Water Bucket (Filled)
      price:     1.47
      quantity:  4

    - part_no:   E1628
      descrip:   High Heeled "Ruby" Slippers
      size:      8
      price:     100.27
      quantity:  1

bill-to:  &id001
    street: |
            123 Tornado Alley
            Suite 16
    city:   East Centerville
    state:  KS

ship-to:  *id001

specialDelivery:  >
    Follow the Yellow Brick
    Road to the Emerald City.
    Pay no attention to the
    man behind the curtain.
...
`
