package inspect

import (
	"errors"
	"testing"

	"github.com/signadot/specref/load"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

func TestEdgesInDocumentOrder(t *testing.T) {
	g := registry.New(load.NewMap(map[string]string{
		"a.yaml": "first:\n  $ref: '#/target'\nnested:\n  deep:\n    $ref: 'b.yaml#/x'\nlist:\n- $ref: '#/target'\ntarget: ok\n",
		"b.yaml": "x: 1\n",
	}))
	edges, err := Edges(g, "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}
	root := ref.Root("a.yaml")
	wantSources := []ref.Reference{
		root.Child("first"),
		root.Child("nested", "deep"),
		root.Child("list", "0"),
	}
	for i, want := range wantSources {
		if edges[i].Source != want {
			t.Errorf("edge %d source %s, want %s", i, edges[i].Source, want)
		}
		if edges[i].Broken() {
			t.Errorf("edge %d broken: %v", i, edges[i].Err)
		}
	}
	if edges[0].Resolved != root.Child("target") {
		t.Errorf("edge 0 resolved to %s", edges[0].Resolved)
	}
	if edges[1].Target != ref.Root("b.yaml").Child("x") {
		t.Errorf("edge 1 target %s", edges[1].Target)
	}
}

func TestEdgesSkipSiblingsAndBelow(t *testing.T) {
	g := registry.New(load.NewMap(map[string]string{
		"a.yaml": "link:\n  $ref: '#/x'\n  note:\n    $ref: '#/x'\nx: 1\n",
	}))
	edges, err := Edges(g, "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
}

func TestBrokenEdges(t *testing.T) {
	g := registry.New(load.NewMap(map[string]string{
		"a.yaml": "dangling:\n  $ref: '#/nope'\nbadref:\n  $ref: '#/%zz'\nloop:\n  $ref: '#/loop'\n",
	}))
	edges, err := Edges(g, "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}
	var nf *registry.NotFoundError
	if !errors.As(edges[0].Err, &nf) {
		t.Errorf("dangling edge err %v, want NotFoundError", edges[0].Err)
	}
	if edges[1].Err == nil {
		t.Error("malformed target string resolved")
	}
	var ce *registry.CycleError
	if !errors.As(edges[2].Err, &ce) {
		t.Errorf("loop edge err %v, want CycleError", edges[2].Err)
	}
}

func TestWalkTransitive(t *testing.T) {
	g := registry.New(load.NewMap(map[string]string{
		"a.yaml": "x:\n  $ref: 'b.yaml#/y'\n",
		"b.yaml": "y:\n  $ref: 'c.yaml#/z'\n",
		"c.yaml": "z: 1\n",
	}))
	gr, err := Walk(g, "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(gr.Docs) != 3 {
		t.Fatalf("got docs %v, want 3", gr.Docs)
	}
	want := []string{"a.yaml", "b.yaml", "c.yaml"}
	for i := range want {
		if gr.Docs[i] != want[i] {
			t.Fatalf("got docs %v, want %v", gr.Docs, want)
		}
	}
	if len(gr.Edges) != 2 {
		t.Errorf("got %d edges, want 2", len(gr.Edges))
	}
	if len(gr.Broken()) != 0 {
		t.Errorf("broken edges: %v", gr.Broken())
	}
}

func TestWalkReportsBroken(t *testing.T) {
	g := registry.New(load.NewMap(map[string]string{
		"a.yaml": "ok:\n  $ref: '#/x'\nbad:\n  $ref: 'missing.yaml#/y'\nx: 1\n",
	}))
	gr, err := Walk(g, "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	broken := gr.Broken()
	if len(broken) != 1 {
		t.Fatalf("got %d broken edges, want 1", len(broken))
	}
	if broken[0].Source != ref.Root("a.yaml").Child("bad") {
		t.Errorf("broken edge at %s", broken[0].Source)
	}
}

func TestWalkMissingRootFails(t *testing.T) {
	g := registry.New(load.NewMap(map[string]string{}))
	if _, err := Walk(g, "missing.yaml"); err == nil {
		t.Error("walk of missing root succeeded")
	}
}
