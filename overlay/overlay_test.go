package overlay

import (
	"errors"
	"testing"

	"github.com/signadot/specref/format"
	"github.com/signadot/specref/load"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

func TestParseRejectsNonMapping(t *testing.T) {
	if _, err := Parse([]byte("- 1\n- 2\n"), format.YAMLFormat); err == nil {
		t.Error("sequence overlay parsed")
	}
	if _, err := Parse([]byte("a.yaml: 42\n"), format.YAMLFormat); err == nil {
		t.Error("scalar patch body parsed")
	}
}

func TestParseRejectsBadOps(t *testing.T) {
	src := "a.yaml:\n- op: teleport\n  path: /x\n"
	if _, err := Parse([]byte(src), format.YAMLFormat); err == nil {
		t.Error("unknown operation parsed")
	}
}

func TestOperationPatch(t *testing.T) {
	o, err := Parse([]byte(
		"a.yaml:\n"+
			"- op: replace\n"+
			"  path: /kind\n"+
			"  value: patched\n"+
			"- op: add\n"+
			"  path: /extra\n"+
			"  value: 7\n"),
		format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	g := registry.New(NewLoader(load.NewMap(map[string]string{
		"a.yaml": "kind: original\n",
	}), o))
	f, err := g.Get(ref.Root("a.yaml").Child("kind"))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := f.AsString(); s != "patched" {
		t.Errorf("got %q, want %q", s, "patched")
	}
	f, err = g.Get(ref.Root("a.yaml").Child("extra"))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := f.AsInt(); n != 7 {
		t.Errorf("got %d, want 7", n)
	}
}

func TestMergePatch(t *testing.T) {
	o, err := Parse([]byte("a.yaml:\n  b: 2\n  c: null\n"), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	g := registry.New(NewLoader(load.NewMap(map[string]string{
		"a.yaml": "a: 1\nb: 1\nc: 1\n",
	}), o))
	root, err := g.Get(ref.Root("a.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if f, err := root.Find("c"); err != nil || f != nil {
		t.Errorf("merge-null key still present: %v, %v", f, err)
	}
	b, err := root.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := b.AsInt(); n != 2 {
		t.Errorf("got %d, want 2", n)
	}
	a, err := root.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := a.AsInt(); n != 1 {
		t.Errorf("got %d, want 1", n)
	}
}

func TestUnpatchedDocPassesThrough(t *testing.T) {
	o, err := Parse([]byte("other.yaml:\n  x: 1\n"), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	g := registry.New(NewLoader(load.NewMap(map[string]string{
		"a.yaml": "kind: untouched\n",
	}), o))
	f, err := g.Get(ref.Root("a.yaml").Child("kind"))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := f.AsString(); s != "untouched" {
		t.Errorf("got %q", s)
	}
}

func TestPatchKeyNormalized(t *testing.T) {
	o, err := Parse([]byte("./a.yaml:\n  x: 2\n"), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !o.Has("a.yaml") {
		t.Error("normalized lookup misses ./a.yaml patch")
	}
	g := registry.New(NewLoader(load.NewMap(map[string]string{
		"a.yaml": "x: 1\n",
	}), o))
	f, err := g.Get(ref.Root("a.yaml").Child("x"))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := f.AsInt(); n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}

func TestPatchIndirectionTarget(t *testing.T) {
	o, err := Parse([]byte(
		"b.yaml:\n"+
			"- op: replace\n"+
			"  path: /bar\n"+
			"  value: 99\n"),
		format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	g := registry.New(NewLoader(load.NewMap(map[string]string{
		"a.yaml": "$ref: 'b.yaml#/bar'\n",
		"b.yaml": "bar: 1\n",
	}), o))
	f, err := g.Get(ref.Root("a.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := f.AsInt(); n != 99 {
		t.Errorf("got %d, want 99", n)
	}
}

func TestApplyFailureIsLoadError(t *testing.T) {
	o, err := Parse([]byte(
		"a.yaml:\n"+
			"- op: replace\n"+
			"  path: /missing\n"+
			"  value: 1\n"),
		format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	g := registry.New(NewLoader(load.NewMap(map[string]string{
		"a.yaml": "x: 1\n",
	}), o))
	_, err = g.Get(ref.Root("a.yaml"))
	var le *load.Error
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want load.Error", err)
	}
}
