// Package ir provides the node tree produced by the parser.
//
// # Node Structure
//
// A Node is a recursive tagged union. Its Type selects which fields are
// meaningful:
//
//   - MappingType: Keys and Values, in source order, with unique keys
//   - SequenceType: Values
//   - LeafType: Text, the scalar content after quote, escape and block
//     processing, and Style, how it was written
//
// Every node may carry an explicit Tag and an Anchor. Nodes referenced
// through an alias are shared: the alias is the anchored *Node itself.
//
// # Typed Access
//
// Leaves are typed through package resolve. Trees built in eager mode
// carry the typed value computed at parse time; otherwise the accessors
// compute it on demand. Nothing is cached lazily, so a tree may be read
// from several goroutines.
//
// # Errors
//
// Parsing and queries report failures as *Error, whose Kind is one of
// IOError, SyntaxError, ReferenceError or TypeError.
package ir
