package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/kyaml/resolve"
)

func sample() *Node {
	shared := FromText("1", resolve.Plain).WithAnchor("id001")
	return FromMap(
		[]string{"a", "list", "ref", "b.c"},
		[]*Node{
			shared,
			FromSlice([]*Node{
				FromText("x", resolve.Plain),
				FromMap([]string{"name"}, []*Node{FromText("n", resolve.DoubleQuoted)}),
			}),
			shared,
			FromText("No", resolve.Plain).WithTag(resolve.TagStr),
		},
	)
}

func TestProperties(t *testing.T) {
	n := FromText("x", resolve.Plain).WithTag("!unspecified").WithAnchor("a")
	if diff := cmp.Diff([]string{"!unspecified", "&a"}, n.Properties()); diff != "" {
		t.Errorf("properties (-want +got):\n%s", diff)
	}
	if got := FromText("true", resolve.Plain).Properties(); len(got) != 0 {
		t.Errorf("implicit outcome in properties: %v", got)
	}
}

func TestLookup(t *testing.T) {
	root := sample()
	n, err := root.Lookup("list", 1, "name")
	if err != nil {
		t.Fatal(err)
	}
	if n.Text != "n" {
		t.Errorf("got %q", n.Text)
	}
	a, _ := root.Get("a")
	ref, _ := root.Get("ref")
	if a != ref {
		t.Errorf("alias is not the anchored node")
	}
	if root.Has("missing") {
		t.Errorf("Has(missing)")
	}
	if !root.Has("list", 0) {
		t.Errorf("!Has(list, 0)")
	}
}

func TestLookupErrors(t *testing.T) {
	root := sample()
	tests := []struct {
		path []any
		err  error
	}{
		{[]any{"missing"}, ErrNoKey},
		{[]any{0}, ErrWrongType},
		{[]any{"list", 5}, ErrIndexRange},
		{[]any{"a", "x"}, ErrWrongType},
		{[]any{1.5}, ErrPathType},
	}
	for _, tc := range tests {
		_, err := root.Lookup(tc.path...)
		if !errors.Is(err, tc.err) {
			t.Errorf("Lookup(%v): got %v, want %v", tc.path, err, tc.err)
		}
		if k, ok := KindOf(err); !ok || k != TypeError {
			t.Errorf("Lookup(%v): kind %v", tc.path, k)
		}
	}
}

func TestAccessors(t *testing.T) {
	no := FromText("No", resolve.Plain)
	if b, err := no.AsBool(); err != nil || b {
		t.Errorf("AsBool(No) = %v, %v", b, err)
	}
	str := FromText("No", resolve.Plain).WithTag(resolve.TagStr)
	if s, err := str.AsString(); err != nil || s != "No" {
		t.Errorf("AsString(!!str No) = %q, %v", s, err)
	}
	if _, err := str.AsBool(); !errors.Is(err, resolve.ErrConvert) {
		t.Errorf("AsBool(!!str No): %v", err)
	}
	f := FromText("0.123", resolve.Plain)
	for i := 0; i < 3; i++ {
		if v, err := f.AsFloat(); err != nil || v != 0.123 {
			t.Errorf("AsFloat #%d = %v, %v", i, v, err)
		}
	}
	i := FromText("7", resolve.Plain).WithTag(resolve.TagInt)
	if v, err := i.AsFloat(); err != nil || v != 7 {
		t.Errorf("AsFloat(!!int 7) = %v, %v", v, err)
	}
	bin := FromText("c29tZSBiaW5hcnk=", resolve.Plain).WithTag("!custom")
	if v, err := bin.AsBinary(); err != nil || string(v) != "some binary" {
		t.Errorf("AsBinary = %q, %v", v, err)
	}
	if err := Null().AsNull(); err != nil {
		t.Errorf("AsNull(empty): %v", err)
	}
	if err := FromText("null", resolve.Plain).AsNull(); err == nil {
		t.Errorf("AsNull(null) succeeded")
	}
	if _, err := FromSlice(nil).AsInt(); !errors.Is(err, ErrWrongType) {
		t.Errorf("AsInt(sequence): %v", err)
	}
}

func TestEagerErrors(t *testing.T) {
	n := FromText("abc", resolve.Plain).WithTag(resolve.TagInt).WithLine(3)
	if _, err := n.ResolveNow(); !errors.Is(err, resolve.ErrInt) {
		t.Fatalf("ResolveNow: %v", err)
	}
	v, err := n.Value()
	if err != nil || v != "abc" {
		t.Errorf("Value() = %q, %v", v, err)
	}
	_, err = n.AsInt()
	var e *Error
	if !errors.As(err, &e) || e.Kind != TypeError || e.Line != 3 {
		t.Fatalf("AsInt: %v", err)
	}
	if e.Error() != `TypeError: line 3: invalid int: "abc"` {
		t.Errorf("message %q", e.Error())
	}
	if _, err := n.Interface(); !errors.Is(err, resolve.ErrInt) {
		t.Errorf("Interface: %v", err)
	}
}

func TestInterface(t *testing.T) {
	root := FromMap([]string{"a", "b"}, []*Node{
		FromText("1", resolve.Plain),
		FromSlice([]*Node{FromText("true", resolve.Plain), FromText("", resolve.Plain)}),
	})
	raw, err := root.Interface()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"a": "1", "b": []any{"true", ""}}, raw); diff != "" {
		t.Errorf("deferred (-want +got):\n%s", diff)
	}
	root.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			y.ResolveNow()
		}
		return true, nil
	})
	typed, err := root.Interface()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"a": int64(1), "b": []any{true, nil}}, typed); diff != "" {
		t.Errorf("eager (-want +got):\n%s", diff)
	}
}
