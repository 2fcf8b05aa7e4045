package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/specref/debug"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	x, err := indexText(doc.text)
	if err != nil {
		return nil, nil
	}
	segs, ok := x.at(int(params.Position.Line)+1, int(params.Position.Character)+1)
	if !ok {
		return nil, nil
	}
	// hovering the indirection key describes the mapping it belongs to
	if len(segs) > 0 && segs[len(segs)-1] == ref.Key {
		segs = segs[:len(segs)-1]
	}

	at := ref.Root(doc.path).Child(segs...)
	f, err := s.registry().Get(at)
	if err != nil {
		if debug.LSP() {
			debug.Logf("lsp: hover %s: %v\n", at, err)
		}
		return nil, nil
	}

	hoverText := buildHoverText(at, f)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(at ref.Reference, f *registry.Fragment) string {
	var parts []string

	// Type information
	typeInfo := getTypeInfo(f.Node())
	if typeInfo != "" {
		parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo))
	}

	// Where indirection landed, when it moved at all
	if f.Ref() != at {
		parts = append(parts, fmt.Sprintf("**Resolves to:** `%s`", f.Ref()))
	}

	// Value information
	valueInfo := getValueInfo(f.Node())
	if valueInfo != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", valueInfo))
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "\n\n")
}

func getTypeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "float"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func getValueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		if node.Bool {
			return "`true`"
		}
		return "`false`"
	case ir.NumberType:
		if node.Number != "" {
			return fmt.Sprintf("`%s`", node.Number)
		}
	case ir.StringType:
		if node.String != "" {
			val := node.String
			if len(val) > 50 {
				val = val[:50] + "..."
			}
			return fmt.Sprintf("`%s`", val)
		}
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Keys))
	}
	return ""
}
