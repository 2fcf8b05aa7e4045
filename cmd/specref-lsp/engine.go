package main

import (
	"net/url"
	"os"

	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/load"
	"github.com/signadot/specref/parse"
	"github.com/signadot/specref/registry"
)

// bufferLoader serves open editor buffers and falls back to disk, so
// resolution sees unsaved edits. Document paths are absolute paths
// with the leading slash dropped, which makes relative references
// between files resolve with the same rules the library uses
// elsewhere.
type bufferLoader struct {
	disk load.Loader
	docs *documentStore
}

func (l *bufferLoader) Load(path string) (*ir.Node, error) {
	dec, err := url.PathUnescape(path)
	if err != nil {
		dec = path
	}
	if d := l.docs.byPath(dec); d != nil {
		f, err := format.FromPath(dec)
		if err != nil {
			return nil, &load.Error{Path: path, Err: err}
		}
		n, err := parse.Bytes([]byte(d.text), f)
		if err != nil {
			return nil, &load.Error{Path: path, Err: err}
		}
		return n, nil
	}
	return l.disk.Load(path)
}

// registry builds a fresh resolver over the current buffer state.
// Buffers change between requests, so nothing is carried over.
func (s *Server) registry() *registry.Registry {
	return registry.New(&bufferLoader{disk: load.NewDir("/"), docs: s.docs})
}

// textOf returns the current text of the document at path: the open
// buffer when there is one, the file on disk otherwise.
func (s *Server) textOf(path string) (string, error) {
	if d := s.docs.byPath(path); d != nil {
		return d.text, nil
	}
	b, err := os.ReadFile("/" + path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
