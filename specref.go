package specref

import (
	"github.com/signadot/specref/load"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

// Open returns a registry over the documents under dir.
func Open(dir string, opts ...registry.Option) *registry.Registry {
	return registry.New(load.NewDir(dir), opts...)
}

// Files returns a registry over an in-memory path to document-text
// mapping.
func Files(docs map[string]string, opts ...registry.Option) *registry.Registry {
	return registry.New(load.NewMap(docs), opts...)
}

// Resolve parses s as "<path>#<pointer>" and resolves it through g.
func Resolve(g *registry.Registry, s string) (*registry.Fragment, error) {
	r, err := ref.Parse(s)
	if err != nil {
		return nil, err
	}
	return g.Get(r)
}
