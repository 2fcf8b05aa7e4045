package load

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/signadot/specref/debug"
	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/parse"
)

// Dir loads documents from the filesystem below a fixed base directory.
// Paths are percent-decoded before opening, so reference strings may
// carry URI-escaped names.
type Dir struct {
	base string
}

func NewDir(base string) *Dir {
	return &Dir{base: base}
}

func (l *Dir) Load(p string) (*ir.Node, error) {
	dec, err := url.PathUnescape(p)
	if err != nil {
		return nil, &Error{Path: p, Err: err}
	}
	fmat, err := format.FromPath(dec)
	if err != nil {
		return nil, &Error{Path: p, Err: err}
	}
	full := filepath.Join(l.base, filepath.FromSlash(dec))
	if debug.Load() {
		debug.Logf("load: reading %s\n", full)
	}
	d, err := os.ReadFile(full)
	if err != nil {
		return nil, &Error{Path: p, Err: err}
	}
	n, err := parse.Bytes(d, fmat)
	if err != nil {
		return nil, &Error{Path: p, Err: err}
	}
	return n, nil
}
