package overlay

import (
	"fmt"

	"github.com/signadot/specref/debug"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/load"
)

// Loader decorates an inner loader with an Overlay. Registries built
// on a Loader see patched documents; cache memoization upstream means
// each patch runs at most once per document.
type Loader struct {
	inner   load.Loader
	overlay *Overlay
}

// NewLoader returns a Loader applying o over inner.
func NewLoader(inner load.Loader, o *Overlay) *Loader {
	return &Loader{inner: inner, overlay: o}
}

func (l *Loader) Load(path string) (*ir.Node, error) {
	n, err := l.inner.Load(path)
	if err != nil {
		return nil, err
	}
	patched, applied, err := l.overlay.Apply(path, n)
	if err != nil {
		return nil, &load.Error{Path: path, Err: fmt.Errorf("overlay: %w", err)}
	}
	if applied && debug.Load() {
		debug.Logf("overlay: patched %s\n", path)
	}
	return patched, nil
}
