package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Tokens  bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("KYAML_DEBUG_PARSE")
	d.Tokens = boolEnv("KYAML_DEBUG_TOKENS")
	d.Resolve = boolEnv("KYAML_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Tokens() bool {
	return d.Tokens
}
func Resolve() bool {
	return d.Resolve
}
