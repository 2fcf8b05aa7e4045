// Package bundle collapses a document graph into one self-contained
// document. References whose chains terminate outside the root
// document are replaced by an inline copy of their resolved value;
// references terminating inside the root document are rewritten to
// local "#/..." form, so multi-hop chains collapse to one hop.
package bundle

import (
	"strconv"

	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

// Build bundles the document at root. The result shares no structure
// with registry-cached documents. Dangling references fail with the
// resolution error; mutually inlining structures fail with a
// *registry.CycleError.
func Build(g *registry.Registry, root string) (*ir.Node, error) {
	rootDoc := ref.Root(root).Document()
	n, err := g.Document(rootDoc)
	if err != nil {
		return nil, err
	}
	b := &bundler{g: g, rootDoc: rootDoc, active: map[ref.Reference]bool{}}
	return b.walk(ref.Root(rootDoc), n)
}

type bundler struct {
	g       *registry.Registry
	rootDoc string
	active  map[ref.Reference]bool
	chain   []ref.Reference
}

func (b *bundler) walk(r ref.Reference, n *ir.Node) (*ir.Node, error) {
	if _, ok := registry.RefTarget(n); ok {
		return b.edge(r)
	}
	switch n.Type {
	case ir.ObjectType:
		out := ir.Object()
		for i, k := range n.Keys {
			c, err := b.walk(r.Child(k), n.Values[i])
			if err != nil {
				return nil, err
			}
			out.Set(k, c)
		}
		return out, nil
	case ir.ArrayType:
		out := &ir.Node{Type: ir.ArrayType}
		for i, v := range n.Values {
			c, err := b.walk(r.Child(strconv.Itoa(i)), v)
			if err != nil {
				return nil, err
			}
			out.Append(c)
		}
		return out, nil
	default:
		return n.Clone(), nil
	}
}

// edge transforms the indirection mapping at r. A chain ending in the
// root document becomes a local reference, except at the bundle root
// itself, where a local rewrite would discard the surrounding
// document; everything else is inlined.
func (b *bundler) edge(r ref.Reference) (*ir.Node, error) {
	f, err := b.g.Get(r)
	if err != nil {
		return nil, err
	}
	t := f.Ref()
	if t.Document() == b.rootDoc && r != ref.Root(b.rootDoc) {
		return ir.Object().Set(ref.Key, ir.FromString(localForm(t))), nil
	}
	if b.active[t] {
		chain := make([]ref.Reference, len(b.chain))
		copy(chain, b.chain)
		return nil, &registry.CycleError{Ref: t, Chain: chain}
	}
	b.active[t] = true
	b.chain = append(b.chain, t)
	out, err := b.walk(t, f.Node())
	b.chain = b.chain[:len(b.chain)-1]
	delete(b.active, t)
	return out, err
}

func localForm(t ref.Reference) string {
	if t.IsRoot() {
		return "#"
	}
	return "#/" + t.Pointer()
}
