package load

import (
	"io/fs"

	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/parse"
)

// Map serves documents from a preloaded path-to-text mapping. Lookups
// use the raw path as given; there is no filesystem involvement.
type Map struct {
	docs map[string]string
}

func NewMap(docs map[string]string) *Map {
	return &Map{docs: docs}
}

func (l *Map) Load(p string) (*ir.Node, error) {
	fmat, err := format.FromPath(p)
	if err != nil {
		return nil, &Error{Path: p, Err: err}
	}
	text, ok := l.docs[p]
	if !ok {
		return nil, &Error{Path: p, Err: fs.ErrNotExist}
	}
	n, err := parse.Bytes([]byte(text), fmat)
	if err != nil {
		return nil, &Error{Path: p, Err: err}
	}
	return n, nil
}
