package dump

import "github.com/signadot/kyaml/format"

type DumpOption func(*DumpState)

func DumpFormat(f format.Format) DumpOption {
	return func(ds *DumpState) { ds.format = f }
}

// DumpProperties prefixes nodes with their tag and anchor in text output.
func DumpProperties(v bool) DumpOption {
	return func(ds *DumpState) { ds.props = v }
}

// DumpRaw prints leaves as their raw text instead of their typed value.
func DumpRaw(v bool) DumpOption {
	return func(ds *DumpState) { ds.raw = v }
}

func DumpColors(c *Colors) DumpOption {
	return func(ds *DumpState) { ds.Color = c.Color }
}

// FormatFromOpts extracts the format from dump options.
func FormatFromOpts(opts ...DumpOption) format.Format {
	ds := &DumpState{}
	for _, opt := range opts {
		opt(ds)
	}
	return ds.format
}
