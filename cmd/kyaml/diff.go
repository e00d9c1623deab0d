package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/kyaml/dump"
	"github.com/signadot/kyaml/ir"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, to := args[0], args[1]
	if cfg.Reverse {
		from, to = to, from
	}
	a, err := dumpAll(cfg.MainConfig, cc.In, from)
	if err != nil {
		return err
	}
	b, err := dumpAll(cfg.MainConfig, cc.In, to)
	if err != nil {
		return err
	}
	d, differs := diffText(a, b, cfg.colors(cc.Out))
	if !differs {
		return nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// dumpAll prints the documents of file without colors, separated by
// "---" lines.
func dumpAll(cfg *MainConfig, in io.Reader, file string) (string, error) {
	plain := *cfg
	plain.Color = false
	opts := plain.dumpOpts(io.Discard)
	buf := bytes.NewBuffer(nil)
	i := 0
	err := eachDoc(cfg, in, []string{file}, allDocs(func(name string, doc *ir.Document) error {
		if i > 0 {
			buf.WriteString("---\n")
		}
		i++
		return dump.Dump(doc.Node, buf, opts...)
	}))
	return buf.String(), err
}

// diffText returns a line diff of a and b and whether they differ. Lines
// are prefixed with "-", "+" or " ", unless pretty selects colored inline
// output.
func diffText(a, b string, pretty bool) (string, bool) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	differs := false
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			differs = true
			break
		}
	}
	if !differs {
		return "", false
	}
	if pretty {
		return dmp.DiffPrettyText(diffs), true
	}
	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String(), true
}
