package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/signadot/specref/debug"
	"github.com/signadot/specref/ref"
)

// document is one open editor buffer. path is the registry document
// path of the buffer's file, uri the editor's identifier for it.
type document struct {
	uri  string
	path string
	text string
}

type documentStore struct {
	docs map[string]*document
}

func (ds *documentStore) open(uri protocol.DocumentURI, text string) *document {
	d := &document{
		uri:  string(uri),
		path: docPath(uri),
		text: text,
	}
	ds.docs[string(uri)] = d
	return d
}

func (ds *documentStore) get(uri string) *document {
	return ds.docs[uri]
}

// byPath finds an open buffer by registry document path.
func (ds *documentStore) byPath(path string) *document {
	for _, d := range ds.docs {
		if d.path == path {
			return d
		}
	}
	return nil
}

// docPath maps a file URI to the document path resolution uses: the
// absolute filesystem path, normalized with the leading slash dropped.
func docPath(u protocol.DocumentURI) string {
	return ref.Root(u.Filename()).Document()
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	d := s.docs.open(params.TextDocument.URI, params.TextDocument.Text)
	if debug.LSP() {
		debug.Logf("lsp: open %s as %s\n", d.uri, d.path)
	}
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		d = s.docs.open(params.TextDocument.URI, "")
	}
	// sync is full, so the last change carries the whole buffer
	for _, change := range params.ContentChanges {
		d.text = change.Text
	}
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(s.docs.docs, string(params.TextDocument.URI))
	return nil
}
