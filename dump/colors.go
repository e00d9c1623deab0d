package dump

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/kyaml/resolve"
)

type Colorable struct {
	Kind resolve.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var kinds = []resolve.Kind{
	resolve.Unresolved,
	resolve.Null,
	resolve.Bool,
	resolve.Int,
	resolve.Float,
	resolve.String,
	resolve.Binary,
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range kinds {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = resolve.Int
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = resolve.Float
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = resolve.Null
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = resolve.Bool
	colors.Map[able] = color.CyanString

	able.Kind = resolve.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = resolve.Binary
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Kind = resolve.Unresolved
	colors.Map[able] = color.BlueString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k resolve.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k resolve.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
