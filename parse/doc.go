// Package parse parses kyaml text into IR nodes.
//
// # Usage
//
//	// Parse the first document
//	node, err := parse.Parse([]byte("name: alice\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Leave typing to the accessors
//	node, err := parse.Parse(data, parse.ImplicitConversion(false))
//
//	// Let repeated mapping keys overwrite earlier ones
//	node, err := parse.Parse(data, parse.DuplicateKeys(parse.KeysLastWins))
//
// A [Parser] reads one document per call to [Parser.Document] from a
// token.Tokenizer, leaving the tokenizer at the start of the next
// document.
//
// # Related Packages
//
//   - github.com/signadot/kyaml/ir - node tree
//   - github.com/signadot/kyaml/token - line classification and tokens
//   - github.com/signadot/kyaml/resolve - scalar typing
package parse
