// Package format names the output formats of the dump printer.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//
// A Format implements encoding.TextMarshaler and encoding.TextUnmarshaler
// so it can be used directly as a command line option value.
package format
