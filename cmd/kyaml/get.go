package main

import (
	"fmt"

	"github.com/signadot/kyaml/dump"
	"github.com/signadot/kyaml/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	w := cc.Out
	opts := cfg.dumpOpts(w)
	return eachDoc(cfg.MainConfig, cc.In, args[1:], allDocs(func(name string, doc *ir.Document) error {
		res, err := doc.ListPath(nil, path)
		if err != nil {
			return fmt.Errorf("error executing get on %s: %w", name, err)
		}
		for _, node := range res {
			if err := dump.Dump(node, w, opts...); err != nil {
				return fmt.Errorf("error printing result: %w", err)
			}
		}
		return nil
	}))
}
