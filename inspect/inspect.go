// Package inspect enumerates the indirection edges of a document
// graph. It walks parsed documents without following indirection,
// records every indirection mapping as an Edge, and separately
// resolves each edge through the registry so callers can tell intact
// references from broken ones.
package inspect

import (
	"strconv"

	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

// Edge is one indirection mapping. Source is where the mapping sits,
// Raw the target string as written, Target its parsed form, and
// Resolved the end of the chain starting at Source. Err holds the
// parse or resolution failure; Target and Resolved are only
// meaningful when the respective step succeeded.
type Edge struct {
	Source   ref.Reference
	Raw      string
	Target   ref.Reference
	Resolved ref.Reference
	Err      error
}

// Broken reports whether the edge does not resolve.
func (e Edge) Broken() bool { return e.Err != nil }

// Edges scans the document at path and resolves every indirection
// mapping in it, in document order.
func Edges(g *registry.Registry, path string) ([]Edge, error) {
	n, err := g.Document(path)
	if err != nil {
		return nil, err
	}
	var edges []Edge
	collect(ref.Root(path), n, &edges)
	for i := range edges {
		e := &edges[i]
		e.Target, e.Err = e.Source.Resolve(e.Raw)
		if e.Err != nil {
			continue
		}
		f, err := g.Get(e.Source)
		if err != nil {
			e.Err = err
			continue
		}
		e.Resolved = f.Ref()
	}
	return edges, nil
}

// collect walks n without following indirection. An indirection
// mapping is recorded and not descended into: its siblings are
// unreachable and its target belongs to the resolution step.
func collect(r ref.Reference, n *ir.Node, out *[]Edge) {
	if raw, ok := registry.RefTarget(n); ok {
		*out = append(*out, Edge{Source: r, Raw: raw})
		return
	}
	switch n.Type {
	case ir.ObjectType:
		for i, k := range n.Keys {
			collect(r.Child(k), n.Values[i], out)
		}
	case ir.ArrayType:
		for i, v := range n.Values {
			collect(r.Child(strconv.Itoa(i)), v, out)
		}
	}
}

// Graph is the transitive closure of documents reachable from a set
// of roots, with every edge found along the way.
type Graph struct {
	Docs  []string
	Edges []Edge
}

// Broken returns the edges that do not resolve.
func (g *Graph) Broken() []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Broken() {
			out = append(out, e)
		}
	}
	return out
}

// Walk scans roots and every document their edges lead to,
// transitively. Roots must load; documents discovered through edges
// that fail to load are skipped, since the discovering edge already
// carries the error. Docs lists documents in first-seen order.
func Walk(g *registry.Registry, roots ...string) (*Graph, error) {
	gr := &Graph{}
	seen := map[string]struct{}{}
	rootSet := map[string]struct{}{}
	var queue []string
	push := func(doc string) {
		if _, ok := seen[doc]; ok {
			return
		}
		seen[doc] = struct{}{}
		queue = append(queue, doc)
	}
	for _, r := range roots {
		doc := ref.Root(r).Document()
		rootSet[doc] = struct{}{}
		push(doc)
	}
	for i := 0; i < len(queue); i++ {
		doc := queue[i]
		edges, err := Edges(g, doc)
		if err != nil {
			if _, isRoot := rootSet[doc]; isRoot {
				return nil, err
			}
			continue
		}
		gr.Docs = append(gr.Docs, doc)
		for _, e := range edges {
			gr.Edges = append(gr.Edges, e)
			if e.Err == nil {
				push(e.Target.Document())
				push(e.Resolved.Document())
			}
		}
	}
	return gr, nil
}
