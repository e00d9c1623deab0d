package main

import (
	"fmt"
	"io"

	"github.com/signadot/kyaml/dump"
	"github.com/signadot/kyaml/ir"

	"github.com/scott-cotton/cli"
)

func dumpCmd(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	opts := cfg.dumpOpts(w)
	i := 0
	return eachDoc(cfg.MainConfig, cc.In, args, allDocs(func(name string, doc *ir.Document) error {
		if cfg.Sep && i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		i++
		if err := dump.Dump(doc.Node, w, opts...); err != nil {
			return fmt.Errorf("error printing %s line %d: %w", name, doc.StartLine, err)
		}
		return nil
	}))
}
