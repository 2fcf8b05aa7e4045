package parse

import (
	"testing"

	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
)

func TestJSONOrder(t *testing.T) {
	n, err := JSON([]byte(`{"zebra": 1, "apple": 2, "mango": {"b": true, "a": null}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zebra", "apple", "mango"}
	if len(n.Keys) != len(want) {
		t.Fatalf("got keys %v, want %v", n.Keys, want)
	}
	for i := range want {
		if n.Keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, n.Keys[i], want[i])
		}
	}
	inner := n.Get("mango")
	if inner == nil || inner.Type != ir.ObjectType {
		t.Fatalf("mango = %v", inner)
	}
	if inner.Keys[0] != "b" || inner.Keys[1] != "a" {
		t.Errorf("nested keys = %v", inner.Keys)
	}
}

func TestJSONValues(t *testing.T) {
	n, err := JSON([]byte(`{"s": "x", "i": 42, "f": 1.5, "b": false, "n": null, "l": [1, "two"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Get("s"); got.Type != ir.StringType || got.String != "x" {
		t.Errorf("s = %v", got)
	}
	if got := n.Get("i"); got.Type != ir.NumberType || got.Int64 == nil || *got.Int64 != 42 {
		t.Errorf("i = %v", got)
	}
	if got := n.Get("f"); got.Type != ir.NumberType || got.Float64 == nil || *got.Float64 != 1.5 {
		t.Errorf("f = %v", got)
	}
	if got := n.Get("b"); got.Type != ir.BoolType || got.Bool {
		t.Errorf("b = %v", got)
	}
	if got := n.Get("n"); got.Type != ir.NullType {
		t.Errorf("n = %v", got)
	}
	l := n.Get("l")
	if l.Type != ir.ArrayType || l.Len() != 2 {
		t.Fatalf("l = %v", l)
	}
	if l.Index(1).String != "two" {
		t.Errorf("l[1] = %v", l.Index(1))
	}
}

func TestJSONErrors(t *testing.T) {
	for _, bad := range []string{
		``,
		`{`,
		`{"a": 1} trailing`,
		`{"a": }`,
	} {
		if _, err := JSON([]byte(bad)); err == nil {
			t.Errorf("JSON(%q): no error", bad)
		}
	}
}

func TestYAMLOrder(t *testing.T) {
	n, err := YAML([]byte("zebra: 1\napple: 2\nmango:\n  b: true\n  a: null\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i := range want {
		if n.Keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, n.Keys[i], want[i])
		}
	}
	inner := n.Get("mango")
	if inner.Keys[0] != "b" || inner.Keys[1] != "a" {
		t.Errorf("nested keys = %v", inner.Keys)
	}
	if inner.Get("a").Type != ir.NullType {
		t.Errorf("a = %v", inner.Get("a"))
	}
}

func TestYAMLScalars(t *testing.T) {
	n, err := YAML([]byte("i: 42\nneg: -7\nf: 2.5\nt: true\ns: plain\nq: \"quoted\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Get("i"); got.Type != ir.NumberType || got.Int64 == nil || *got.Int64 != 42 {
		t.Errorf("i = %v", got)
	}
	if got := n.Get("neg"); got.Int64 == nil || *got.Int64 != -7 {
		t.Errorf("neg = %v", got)
	}
	if got := n.Get("f"); got.Float64 == nil || *got.Float64 != 2.5 {
		t.Errorf("f = %v", got)
	}
	if got := n.Get("t"); got.Type != ir.BoolType || !got.Bool {
		t.Errorf("t = %v", got)
	}
	if got := n.Get("s"); got.Type != ir.StringType || got.String != "plain" {
		t.Errorf("s = %v", got)
	}
	if got := n.Get("q"); got.String != "quoted" {
		t.Errorf("q = %v", got)
	}
}

func TestYAMLAnchors(t *testing.T) {
	n, err := YAML([]byte("base: &b\n  x: 1\nother: *b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n.Get("base"), n.Get("other")) {
		t.Errorf("alias did not expand: %v vs %v", n.Get("base"), n.Get("other"))
	}
}

func TestBytesDispatch(t *testing.T) {
	if _, err := Bytes([]byte(`{"a": 1}`), format.JSONFormat); err != nil {
		t.Errorf("json: %v", err)
	}
	if _, err := Bytes([]byte("a: 1\n"), format.YAMLFormat); err != nil {
		t.Errorf("yaml: %v", err)
	}
	if _, err := File("doc.txt", []byte("x")); err == nil {
		t.Errorf("File(doc.txt): no error")
	}
	n, err := File("doc.json", []byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("File(doc.json): %v", err)
	}
	if n.Get("a") == nil {
		t.Errorf("File(doc.json) lost value")
	}
}
