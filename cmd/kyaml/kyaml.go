package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/kyaml"
	"github.com/signadot/kyaml/ir"
)

func kyamlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// docFunc is called for each document of an input, or with the error of
// a document that failed to parse.
type docFunc func(name string, doc *ir.Document, err error) error

// eachDoc parses the documents of each file, or of in when there are no
// files. "-" names in as well. Unless f returns an error itself, a parse
// failure is passed to f and parsing continues with the next document.
func eachDoc(cfg *MainConfig, in io.Reader, files []string, f docFunc) error {
	if len(files) == 0 {
		return readerDocs(cfg, "-", in, f)
	}
	for _, file := range files {
		if file == "-" {
			if err := readerDocs(cfg, file, in, f); err != nil {
				return err
			}
			continue
		}
		if err := fileDocs(cfg, file, f); err != nil {
			return err
		}
	}
	return nil
}

func fileDocs(cfg *MainConfig, file string, f docFunc) error {
	r, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer r.Close()
	return readerDocs(cfg, file, r, f)
}

func readerDocs(cfg *MainConfig, name string, r io.Reader, f docFunc) error {
	p := kyaml.NewParser(r, cfg.parseOpts()...)
	for {
		doc, err := p.Parse()
		if err == io.EOF {
			return nil
		}
		if kind, ok := ir.KindOf(err); ok && kind == ir.IOError {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		if err := f(name, doc, err); err != nil {
			return err
		}
	}
}

// allDocs fails on the first document that does not parse.
func allDocs(f func(name string, doc *ir.Document) error) docFunc {
	return func(name string, doc *ir.Document, err error) error {
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		return f(name, doc)
	}
}
