// Package resolve turns scalar text into typed values.
//
// Untagged plain scalars resolve through an ordered table of implicit
// rules (null, bool, int, float) and default to strings. Tagged scalars
// resolve through the rule of their standard tag; other tags leave the
// value unresolved. The package also assembles block scalar content
// according to its style and chomping.
package resolve
