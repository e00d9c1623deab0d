package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/kyaml/dump"
	"github.com/signadot/kyaml/format"
	"github.com/signadot/kyaml/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='print with color'"`
	Raw      bool `cli:"name=raw desc='print leaves as their source text'"`
	Props    bool `cli:"name=p aliases=props desc='print tags and anchors'"`
	Deferred bool `cli:"name=defer desc='do not type leaves while parsing'"`
	Gops     bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	OutFormat *format.Format
	Keys      parse.KeyPolicy

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) dupFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		k, err := parse.ParseKeyPolicy(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Keys = k
		return k, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ImplicitConversion(!cfg.Deferred),
		parse.DuplicateKeys(cfg.Keys),
	}
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.DumpOption {
	fmat := format.TextFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []dump.DumpOption{
		dump.DumpFormat(fmat),
		dump.DumpRaw(cfg.Raw),
		dump.DumpProperties(cfg.Props),
	}
	if cfg.colors(w) {
		res = append(res, dump.DumpColors(dump.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: as requested by -color
// when given, otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig
	Sep  bool `cli:"name=sep desc='print --- between documents'"`
	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}
