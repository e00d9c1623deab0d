// Package kyaml parses streams of YAML-like documents into typed node
// trees.
//
// # Usage
//
//	p := kyaml.NewParser(r)
//	for {
//	    doc, err := p.Parse()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    street, err := doc.Lookup("bill-to", "street")
//	    ...
//	}
//
// Each call to [Parser.Parse] consumes exactly one document. Between calls,
// [Parser.LineNumber] and [Parser.Peek] report where the stream stands.
//
// Leaves are typed at parse time by default. Passing
// parse.ImplicitConversion(false) leaves typing to the accessors of
// ir.Node, which then apply the same rules on demand.
//
// # Related Packages
//
//   - github.com/signadot/kyaml/ir - node tree and typed accessors
//   - github.com/signadot/kyaml/parse - document parser and options
//   - github.com/signadot/kyaml/resolve - scalar typing rules
//   - github.com/signadot/kyaml/dump - diagnostic printer
package kyaml
