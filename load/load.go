// Package load reads root documents into ir nodes. Loaders select a
// parser by file extension and never cache; caching belongs to the
// registry.
package load

import (
	"fmt"

	"github.com/signadot/specref/ir"
)

type Loader interface {
	Load(path string) (*ir.Node, error)
}

// Error reports an unreadable, unparsable, or unsupported document.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("load %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
