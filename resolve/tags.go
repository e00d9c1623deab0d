package resolve

import "strings"

// The standard tags, in shorthand form.
const (
	TagNull   = "!!null"
	TagBool   = "!!bool"
	TagInt    = "!!int"
	TagFloat  = "!!float"
	TagStr    = "!!str"
	TagBinary = "!!binary"

	yamlPrefix = "tag:yaml.org,2002:"
)

// NormalizeTag maps the verbatim form "!<tag:yaml.org,2002:int>" of a
// standard tag to its shorthand "!!int". Other tags are returned as is.
func NormalizeTag(tag string) string {
	if strings.HasPrefix(tag, "!<") && strings.HasSuffix(tag, ">") {
		inner := tag[2 : len(tag)-1]
		if strings.HasPrefix(inner, yamlPrefix) {
			return "!!" + inner[len(yamlPrefix):]
		}
	}
	return tag
}

// StandardKind returns the kind a standard tag resolves to.
func StandardKind(tag string) (Kind, bool) {
	k, ok := map[string]Kind{
		TagNull:   Null,
		TagBool:   Bool,
		TagInt:    Int,
		TagFloat:  Float,
		TagStr:    String,
		TagBinary: Binary,
	}[NormalizeTag(tag)]
	return k, ok
}
