package main

import (
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/specref/ref"
)

// docIndex maps positions in a document's source text to segment
// paths, via the yaml AST. JSON parses as flow-style yaml, so one
// index serves both formats.
type docIndex struct {
	entries []posEntry
}

type posEntry struct {
	segs  []string
	node  ast.Node
	isKey bool
}

func indexText(text string) (*docIndex, error) {
	f, err := parser.ParseBytes([]byte(text), 0)
	if err != nil {
		return nil, err
	}
	x := &docIndex{}
	if len(f.Docs) > 0 && f.Docs[0].Body != nil {
		x.walk(f.Docs[0].Body, nil)
	}
	return x, nil
}

func (x *docIndex) walk(n ast.Node, segs []string) {
	switch v := n.(type) {
	case *ast.MappingNode:
		x.record(n, segs, false)
		for _, mv := range v.Values {
			x.pair(mv, segs)
		}
	case *ast.MappingValueNode:
		// a single-pair mapping parses to the pair itself
		x.record(n, segs, false)
		x.pair(v, segs)
	case *ast.SequenceNode:
		x.record(n, segs, false)
		for i, e := range v.Values {
			x.walk(e, child(segs, strconv.Itoa(i)))
		}
	case *ast.AnchorNode:
		x.walk(v.Value, segs)
	case *ast.TagNode:
		x.walk(v.Value, segs)
	default:
		x.record(n, segs, false)
	}
}

func (x *docIndex) pair(mv *ast.MappingValueNode, segs []string) {
	if mv.Key == nil {
		return
	}
	cs := child(segs, mv.Key.GetToken().Value)
	x.record(mv.Key, cs, true)
	if mv.Value != nil {
		x.walk(mv.Value, cs)
	}
}

func (x *docIndex) record(n ast.Node, segs []string, isKey bool) {
	if n == nil || n.GetToken() == nil {
		return
	}
	x.entries = append(x.entries, posEntry{segs: segs, node: n, isKey: isKey})
}

func child(segs []string, s string) []string {
	cs := make([]string, len(segs)+1)
	copy(cs, segs)
	cs[len(segs)] = s
	return cs
}

// at returns the segment path under the given position, line and col
// 1-based. Entries are recorded parents first, so the last match is
// the most specific one.
func (x *docIndex) at(line, col int) ([]string, bool) {
	var (
		found bool
		segs  []string
	)
	for _, e := range x.entries {
		p := e.node.GetToken().Position
		if p == nil || p.Line != line {
			continue
		}
		start := p.Column
		// token values drop quotes, allow for them
		end := start + len(e.node.GetToken().Value) + 2
		if col < start || col >= end {
			continue
		}
		segs = e.segs
		found = true
	}
	return segs, found
}

// refAt reports the indirection mapping under the position: the
// segment path of the mapping holding the indirection key, and the
// raw target string.
func (x *docIndex) refAt(line, col int) ([]string, string, bool) {
	segs, ok := x.at(line, col)
	if !ok || len(segs) == 0 || segs[len(segs)-1] != ref.Key {
		return nil, "", false
	}
	raw, ok := x.stringAt(segs)
	if !ok {
		return nil, "", false
	}
	return segs[:len(segs)-1], raw, true
}

func (x *docIndex) stringAt(segs []string) (string, bool) {
	for _, e := range x.entries {
		if e.isKey || !eqSegs(e.segs, segs) {
			continue
		}
		switch v := e.node.(type) {
		case *ast.StringNode:
			return v.Value, true
		case *ast.LiteralNode:
			if v.Value != nil {
				return v.Value.Value, true
			}
		}
	}
	return "", false
}

// tokenFor returns a position token for the value at segs, preferring
// the key of a mapping entry.
func (x *docIndex) tokenFor(segs []string) *token.Token {
	var fallback *token.Token
	for _, e := range x.entries {
		if !eqSegs(e.segs, segs) {
			continue
		}
		if e.isKey {
			return e.node.GetToken()
		}
		if fallback == nil {
			fallback = e.node.GetToken()
		}
	}
	return fallback
}

func eqSegs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
