// Package dump prints node trees for diagnostics.
//
// The text form follows the layout of mappings and sequences in flow
// style, "{a: 1, b: [x, y]}", with each leaf printed as its text. It is
// not YAML: strings are not quoted. The JSON form prints typed values.
// Either form can be colored by leaf kind with NewColors.
package dump
