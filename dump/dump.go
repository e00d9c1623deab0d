package dump

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/kyaml/format"
	"github.com/signadot/kyaml/ir"
	"github.com/signadot/kyaml/resolve"
)

var ErrDumping = errors.New("dump error")

type DumpState struct {
	format format.Format
	props  bool
	raw    bool

	Color func(resolve.Kind, ColorAttr, string) string
}

// Dump writes node followed by a newline. The text form is
// "{key: value, ...}" for mappings and "[a, b]" for sequences with leaves
// as their text; the JSON form prints typed leaf values unless DumpRaw
// is set.
func Dump(node *ir.Node, w io.Writer, opts ...DumpOption) error {
	ds := &DumpState{}
	for _, opt := range opts {
		opt(ds)
	}
	buf := bytes.NewBuffer(nil)
	var err error
	if ds.format.IsJSON() {
		err = dumpJSON(node, buf, ds)
	} else {
		err = dumpText(node, buf, ds)
	}
	if err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// MustString returns the dump of node without the final newline, panicking
// on error.
func MustString(node *ir.Node, opts ...DumpOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func (ds *DumpState) color(k resolve.Kind, a ColorAttr, s string) string {
	if ds.Color == nil {
		return s
	}
	return ds.Color(k, a, s)
}

func (ds *DumpState) kind(y *ir.Node) resolve.Kind {
	if ds.raw {
		return resolve.String
	}
	v, err := y.Resolved()
	if err != nil {
		return resolve.Unresolved
	}
	return v.Kind
}

func dumpText(y *ir.Node, buf *bytes.Buffer, ds *DumpState) error {
	if ds.props {
		for _, p := range y.Properties() {
			buf.WriteString(ds.color(resolve.Unresolved, TagColor, p))
			buf.WriteByte(' ')
		}
	}
	switch y.Type {
	case ir.MappingType:
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "{"))
		for i, k := range y.Keys {
			if i > 0 {
				buf.WriteString(ds.color(resolve.Unresolved, SepColor, ", "))
			}
			buf.WriteString(ds.color(resolve.String, KeyColor, k))
			buf.WriteString(ds.color(resolve.Unresolved, SepColor, ": "))
			if err := dumpText(y.Values[i], buf, ds); err != nil {
				return err
			}
		}
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "}"))
	case ir.SequenceType:
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "["))
		for i, yv := range y.Values {
			if i > 0 {
				buf.WriteString(ds.color(resolve.Unresolved, SepColor, ", "))
			}
			if err := dumpText(yv, buf, ds); err != nil {
				return err
			}
		}
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "]"))
	case ir.LeafType:
		buf.WriteString(ds.color(ds.kind(y), ValueColor, y.Text))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrDumping, y.Type)
	}
	return nil
}

func dumpJSON(y *ir.Node, buf *bytes.Buffer, ds *DumpState) error {
	if ds.props && len(y.Properties()) != 0 {
		return fmt.Errorf("%w: cannot dump properties in %s", ErrDumping, ds.format)
	}
	switch y.Type {
	case ir.MappingType:
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "{"))
		for i, k := range y.Keys {
			if i > 0 {
				buf.WriteString(ds.color(resolve.Unresolved, SepColor, ","))
			}
			d, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.WriteString(ds.color(resolve.String, KeyColor, string(d)))
			buf.WriteString(ds.color(resolve.Unresolved, SepColor, ":"))
			if err := dumpJSON(y.Values[i], buf, ds); err != nil {
				return err
			}
		}
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "}"))
	case ir.SequenceType:
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "["))
		for i, yv := range y.Values {
			if i > 0 {
				buf.WriteString(ds.color(resolve.Unresolved, SepColor, ","))
			}
			if err := dumpJSON(yv, buf, ds); err != nil {
				return err
			}
		}
		buf.WriteString(ds.color(resolve.Unresolved, SepColor, "]"))
	case ir.LeafType:
		d, k, err := jsonLeaf(y, ds)
		if err != nil {
			return err
		}
		buf.WriteString(ds.color(k, ValueColor, string(d)))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrDumping, y.Type)
	}
	return nil
}

func jsonLeaf(y *ir.Node, ds *DumpState) ([]byte, resolve.Kind, error) {
	if ds.raw {
		d, err := json.Marshal(y.Text)
		return d, resolve.String, err
	}
	v, err := y.Resolved()
	if err != nil {
		return nil, 0, err
	}
	d, err := json.Marshal(v.Interface())
	if err != nil && v.Kind == resolve.Float {
		// NaN and infinities have no JSON number form.
		d, err = json.Marshal(y.Text)
	}
	return d, v.Kind, err
}
