// Package overlay patches documents between loading and resolution.
// An Overlay maps document paths to patches; its Loader decorates any
// load.Loader and applies the matching patch each time a document is
// first loaded. Patches in sequence form are RFC 6902 operation lists,
// patches in mapping form are RFC 7386 merge patches.
package overlay

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/specref/encode"
	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/parse"
	"github.com/signadot/specref/ref"
)

// Overlay is a set of per-document patches keyed by normalized
// document path.
type Overlay struct {
	patches map[string]patch
}

type patchKind int

const (
	opsPatch patchKind = iota
	mergePatch
)

type patch struct {
	kind patchKind
	raw  []byte
	ops  jsonpatch.Patch
}

// Parse reads an overlay document: a mapping from document path to
// patch body. A sequence body is decoded as an operation list up
// front, so malformed operations fail here rather than at apply time.
func Parse(d []byte, f format.Format) (*Overlay, error) {
	n, err := parse.Bytes(d, f)
	if err != nil {
		return nil, err
	}
	if n.Type != ir.ObjectType {
		return nil, fmt.Errorf("overlay: expected a mapping of document path to patch, got %s", n.Type)
	}
	o := &Overlay{patches: map[string]patch{}}
	for i, k := range n.Keys {
		body := n.Values[i]
		raw, err := encode.Bytes(body, encode.EncodeFormat(format.JSONFormat), encode.Compact())
		if err != nil {
			return nil, fmt.Errorf("overlay %q: %w", k, err)
		}
		p := patch{raw: raw}
		switch body.Type {
		case ir.ArrayType:
			p.kind = opsPatch
			p.ops, err = jsonpatch.DecodePatch(raw)
			if err != nil {
				return nil, fmt.Errorf("overlay %q: %w", k, err)
			}
			for _, op := range p.ops {
				switch op.Kind() {
				case "add", "remove", "replace", "move", "copy", "test":
				default:
					return nil, fmt.Errorf("overlay %q: unknown operation %q", k, op.Kind())
				}
			}
		case ir.ObjectType:
			p.kind = mergePatch
		default:
			return nil, fmt.Errorf("overlay %q: patch must be a sequence of operations or a merge mapping, got %s", k, body.Type)
		}
		o.patches[ref.Root(k).Document()] = p
	}
	return o, nil
}

// File reads an overlay from path, picking the format from the file
// extension.
func File(path string) (*Overlay, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, f)
}

// Len returns the number of patched documents.
func (o *Overlay) Len() int { return len(o.patches) }

// Has reports whether a patch exists for path.
func (o *Overlay) Has(path string) bool {
	_, ok := o.patches[ref.Root(path).Document()]
	return ok
}

// Apply patches n if a patch exists for path, reporting whether one
// applied. The document round-trips through its JSON encoding, so key
// order of objects rebuilt by a merge patch follows the patch engine,
// not the source document.
func (o *Overlay) Apply(path string, n *ir.Node) (*ir.Node, bool, error) {
	p, ok := o.patches[ref.Root(path).Document()]
	if !ok {
		return n, false, nil
	}
	d, err := encode.Bytes(n, encode.EncodeFormat(format.JSONFormat), encode.Compact())
	if err != nil {
		return nil, false, err
	}
	var out []byte
	switch p.kind {
	case opsPatch:
		out, err = p.ops.Apply(d)
	case mergePatch:
		out, err = jsonpatch.MergePatch(d, p.raw)
	}
	if err != nil {
		return nil, false, err
	}
	patched, err := parse.JSON(out)
	if err != nil {
		return nil, false, err
	}
	return patched, true, nil
}
