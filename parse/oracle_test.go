package parse

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

// Documents whose leaves are all strings to both parsers, so the trees
// can be compared without agreeing on a schema.
var oracleDocs = []string{
	"receipt: Oz-Ware Purchase Invoice\ncustomer:\n  given: Dorothy\n  family: Gale\n",
	"items:\n- part: bucket\n  descrip: Water Bucket\n- part: slippers\n  descrip: Ruby Slippers\n",
	"key:\n  - value1\n  - value2\nother: x\n",
	"- - a\n  - b\n- c\n",
	"street: |\n  123 Tornado Alley\n  Suite 16\ncity: East Centerville\n",
	"special: >\n  Follow the Yellow Brick\n  Road to the Emerald City.\n",
	"strip: |-\n  text\nkeep: |+\n  text\n\nnext: x\n",
	"flow: [one, two, {k: v}]\nmap: {a: b, c: [d]}\n",
	"quoted: \"tab\\there\"\nsingle: 'it''s'\n",
	"a: one\n  two\nb: three\n",
	"base: &b\n  name: x\nref: *b\n",
	"# comment\nname: value # trailing\n\nlast: word\n",
}

func TestOracle(t *testing.T) {
	for _, doc := range oracleDocs {
		var want any
		if err := yaml.Unmarshal([]byte(doc), &want); err != nil {
			t.Fatalf("oracle %q: %v", doc, err)
		}
		node, err := Parse([]byte(doc), ImplicitConversion(false))
		if err != nil {
			t.Errorf("parse %q: %v", doc, err)
			continue
		}
		got, err := node.Interface()
		if err != nil {
			t.Errorf("interface %q: %v", doc, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q (-oracle +kyaml):\n%s", doc, diff)
		}
	}
}
