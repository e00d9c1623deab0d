// Package token provides the line-oriented front end of the parser.
//
// [LineSource] buffers an io.Reader and hands it out line by line with a
// bounded, non-consuming [LineSource.Peek]. [Classify] determines the
// indentation and structural kind of a line, [Tokenizer] feeds classified
// lines to the parser, and [Tokenize] splits inline content (properties,
// aliases, scalars, flow collections) into tokens. [IndentStack] tracks the
// indentation of open block collections.
package token
