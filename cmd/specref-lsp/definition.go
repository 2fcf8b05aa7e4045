package main

import (
	"context"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/signadot/specref/debug"
	"github.com/signadot/specref/ref"
)

func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	x, err := indexText(doc.text)
	if err != nil {
		return nil, nil
	}
	segs, _, ok := x.refAt(int(params.Position.Line)+1, int(params.Position.Character)+1)
	if !ok {
		return nil, nil
	}

	source := ref.Root(doc.path).Child(segs...)
	f, err := s.registry().Get(source)
	if err != nil {
		if debug.LSP() {
			debug.Logf("lsp: definition %s: %v\n", source, err)
		}
		return nil, nil
	}

	loc, ok := s.locate(f.Ref())
	if !ok {
		return nil, nil
	}
	return []protocol.Location{loc}, nil
}

// locate maps a resolved coordinate back to a range in its document's
// source text.
func (s *Server) locate(target ref.Reference) (protocol.Location, bool) {
	text, err := s.textOf(target.Document())
	if err != nil {
		return protocol.Location{}, false
	}
	x, err := indexText(text)
	if err != nil {
		return protocol.Location{}, false
	}
	tok := x.tokenFor(target.Segments())
	if tok == nil || tok.Position == nil {
		return protocol.Location{}, false
	}
	line := uint32(tok.Position.Line - 1)
	col := uint32(tok.Position.Column - 1)
	return protocol.Location{
		URI: uri.File("/" + target.Document()),
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + uint32(len(tok.Value))},
		},
	}, true
}
