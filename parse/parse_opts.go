package parse

import "fmt"

// KeyPolicy selects what happens when a mapping repeats a key.
type KeyPolicy int

const (
	KeysError KeyPolicy = iota
	KeysLastWins
)

func ParseKeyPolicy(v string) (KeyPolicy, error) {
	k, ok := map[string]KeyPolicy{
		"error": KeysError,
		"last":  KeysLastWins,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unknown duplicate key policy %q", v)
	}
	return k, nil
}

func (k KeyPolicy) String() string {
	if k == KeysLastWins {
		return "last"
	}
	return "error"
}

type parseOpts struct {
	deferred bool
	keys     KeyPolicy
}

type ParseOption func(*parseOpts)

// ImplicitConversion selects eager typing of leaves at parse time (the
// default) or deferred typing by the accessors.
func ImplicitConversion(v bool) ParseOption {
	return func(o *parseOpts) { o.deferred = !v }
}

func DuplicateKeys(k KeyPolicy) ParseOption {
	return func(o *parseOpts) { o.keys = k }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}
