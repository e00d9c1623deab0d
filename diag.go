package kyaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/token"
)

// ErrDiagnostic marks errors raised through Throw.
var ErrDiagnostic = errors.New("diagnostic")

// Throw returns the error a binding layer raises for msg. It carries no
// line and exercises the same error path as parse failures.
func Throw(msg string) error {
	return ir.NewError(ir.SyntaxError, 0, fmt.Errorf("%w: %s", ErrDiagnostic, msg))
}

// ReadLine reads one line from r with its line terminator removed. Reader
// failures are reported as IOError.
func ReadLine(r io.Reader) (string, error) {
	src := token.NewLineSource(r)
	l, err := src.ReadLine()
	if err == io.EOF {
		return "", err
	}
	if err != nil {
		return "", ir.NewError(ir.IOError, 1, err)
	}
	return l, nil
}
