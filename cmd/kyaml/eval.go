package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/kyaml/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	return eachDoc(cfg.MainConfig, cc.In, args[1:], allDocs(func(name string, doc *ir.Document) error {
		res, err := evalDoc(src, doc)
		if err != nil {
			return fmt.Errorf("error evaluating %s line %d: %w", name, doc.StartLine, err)
		}
		d, err := json.Marshal(res)
		if err != nil {
			_, err = fmt.Fprintf(cc.Out, "%v\n", res)
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}))
}

// evalDoc runs the expression src with the document bound to doc.
func evalDoc(src string, doc *ir.Document) (any, error) {
	v, err := doc.Interface()
	if err != nil {
		return nil, err
	}
	env := map[string]any{
		"doc":  v,
		"line": doc.StartLine,
	}
	prg, err := expr.Compile(src, exprOpts(doc.Node, env)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

func exprOpts(root *ir.Node, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("path", func(params ...any) (any, error) {
			node, err := root.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if node == nil {
				return nil, nil
			}
			return node.Interface()
		},
			new(func(string) any)),
	}
}
