// Package registry resolves references across a graph of parsed
// documents. A Registry loads documents on demand through a
// load.Loader, memoizes them by normalized path, and follows
// indirection mappings until it reaches a concrete value. Lookups hand
// back Fragments, which pair the resolved value with the coordinate it
// lives at.
package registry

import (
	"strconv"

	"github.com/signadot/specref/debug"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/load"
	"github.com/signadot/specref/ref"
)

// DefaultMaxDepth bounds indirection chains when no explicit bound is
// configured.
const DefaultMaxDepth = 100

// Registry caches parsed documents and resolves references against
// them. It is not safe for concurrent use.
type Registry struct {
	loader   load.Loader
	docs     map[string]*ir.Node
	maxDepth int
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxDepth sets the maximum number of indirection hops a single
// resolution may take.
func WithMaxDepth(n int) Option {
	return func(g *Registry) {
		g.maxDepth = n
	}
}

// New returns a Registry backed by loader with an empty document
// cache.
func New(loader load.Loader, opts ...Option) *Registry {
	g := &Registry{
		loader:   loader,
		docs:     map[string]*ir.Node{},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Document returns the parsed document at path, loading it through the
// loader on first use. The cache key is the normalized form of path,
// so spellings like "./a.yaml" and "a.yaml" share one entry.
func (g *Registry) Document(path string) (*ir.Node, error) {
	key := ref.Root(path).Document()
	if n, ok := g.docs[key]; ok {
		return n, nil
	}
	n, err := g.loader.Load(key)
	if err != nil {
		return nil, err
	}
	g.docs[key] = n
	return n, nil
}

// Get resolves r to a Fragment, following indirection. A missing
// coordinate is an error here; use Find when absence is an expected
// outcome.
func (g *Registry) Get(r ref.Reference) (*Fragment, error) {
	f, err := g.Find(r)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &NotFoundError{Ref: r}
	}
	return f, nil
}

// Find resolves r to a Fragment, following indirection. It returns
// (nil, nil) when the coordinate, or any coordinate reached along the
// indirection chain, does not exist.
func (g *Registry) Find(r ref.Reference) (*Fragment, error) {
	fr, n, ok, err := g.resolve(r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &Fragment{ref: fr, node: n, reg: g}, nil
}

// resolve follows indirection from r until it reaches a value that is
// not an indirection mapping. It returns the final coordinate and
// value. Revisiting a coordinate on the active chain is a CycleError;
// chains longer than maxDepth are a DepthError.
func (g *Registry) resolve(r ref.Reference) (ref.Reference, *ir.Node, bool, error) {
	var (
		seen  map[ref.Reference]struct{}
		chain []ref.Reference
	)
	for depth := 0; ; depth++ {
		if depth > g.maxDepth {
			return r, nil, false, &DepthError{Ref: r, Limit: g.maxDepth}
		}
		if seen != nil {
			if _, dup := seen[r]; dup {
				return r, nil, false, &CycleError{Ref: r, Chain: chain}
			}
		}
		n, next, hop, ok, err := g.step(r)
		if err != nil {
			return r, nil, false, err
		}
		if !hop {
			return r, n, ok, nil
		}
		if debug.Resolve() {
			debug.Logf("resolve: %s -> %s\n", r, next)
		}
		if seen == nil {
			seen = map[ref.Reference]struct{}{}
		}
		seen[r] = struct{}{}
		chain = append(chain, r)
		r = next
	}
}

// step walks r's segments down from its document root without entering
// indirection targets. Landing on an indirection mapping stops the
// walk and reports a hop: to the target when the walk is finished, or
// to the target extended with the remaining segments otherwise. This
// is what makes sibling keys of an indirection mapping unreachable.
// Absent keys and out-of-range indices report ok=false; descending
// into a scalar or indexing a sequence with a non-integer is a
// NavigationError.
func (g *Registry) step(r ref.Reference) (n *ir.Node, next ref.Reference, hop, ok bool, err error) {
	cur, err := g.Document(r.Document())
	if err != nil {
		return nil, next, false, false, err
	}
	segs := r.Segments()
	for i, seg := range segs {
		if target, isRef := RefTarget(cur); isRef {
			base, err := r.Resolve(target)
			if err != nil {
				return nil, next, false, false, err
			}
			return nil, base.Child(segs[i:]...), true, false, nil
		}
		switch cur.Type {
		case ir.ObjectType:
			child := cur.Get(seg)
			if child == nil {
				return nil, next, false, false, nil
			}
			cur = child
		case ir.ArrayType:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 {
				return nil, next, false, false, &NavigationError{
					Ref:     r,
					Segment: seg,
					Kind:    cur.Type,
					Message: "sequence index must be a non-negative integer",
				}
			}
			if idx >= cur.Len() {
				return nil, next, false, false, nil
			}
			cur = cur.Index(idx)
		default:
			return nil, next, false, false, &NavigationError{Ref: r, Segment: seg, Kind: cur.Type}
		}
	}
	if target, isRef := RefTarget(cur); isRef {
		base, err := r.Resolve(target)
		if err != nil {
			return nil, next, false, false, err
		}
		return nil, base, true, false, nil
	}
	return cur, next, false, true, nil
}

// RefTarget returns the indirection target of n. A node is an
// indirection mapping when it is an object whose ref.Key entry holds a
// string; any sibling keys are ignored. A non-string value under
// ref.Key makes the mapping an ordinary value.
func RefTarget(n *ir.Node) (string, bool) {
	if n == nil || n.Type != ir.ObjectType {
		return "", false
	}
	v := n.Get(ref.Key)
	if v == nil || v.Type != ir.StringType {
		return "", false
	}
	return v.String, true
}
