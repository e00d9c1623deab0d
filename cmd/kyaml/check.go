package main

import (
	"fmt"

	"github.com/signadot/kyaml/ir"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, failed := 0, 0
	err = eachDoc(cfg.MainConfig, cc.In, args, func(name string, doc *ir.Document, err error) error {
		docs++
		if err == nil {
			return nil
		}
		failed++
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: %v\n", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%d documents, %d failed\n", docs, failed)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
