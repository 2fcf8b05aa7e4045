// Package ref defines the coordinate system for locations inside a
// document graph: a document path plus an ordered segment path. A
// Reference identifies a location, never a value; two references are the
// same entity iff document and segments are equal, regardless of what
// currently lives there.
package ref

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Key is the reserved indirection key. A mapping whose Key entry is a
// string redirects resolution to the coordinate that string names; any
// sibling keys are ignored.
const Key = "$ref"

// Reference is an immutable, comparable coordinate. The zero value is
// the root of the empty document path. Derivation methods return new
// values; a Reference is usable as a map key, which is what
// deduplication structures rely on.
type Reference struct {
	doc string
	ptr string
}

// Root returns the document-root coordinate for doc. The path is
// normalized (cleaned, leading slash dropped) with the same rules
// Resolve uses, so cache keys built from either agree.
func Root(doc string) Reference {
	return Reference{doc: normDoc(doc)}
}

// Parse reads an absolute reference string of the form
// "<path>#<pointer>". It is Resolve against the empty coordinate, for
// CLI and server entry points.
func Parse(s string) (Reference, error) {
	return Reference{}.Resolve(s)
}

func (r Reference) Document() string { return r.doc }

func (r Reference) IsRoot() bool { return r.ptr == "" }

// Pointer returns the canonical escaped segment path without a leading
// slash; empty at the document root.
func (r Reference) Pointer() string { return r.ptr }

// Segments returns the decoded segment path.
func (r Reference) Segments() []string {
	if r.ptr == "" {
		return nil
	}
	parts := strings.Split(r.ptr, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		s, err := url.PathUnescape(p)
		if err != nil {
			// canonical pointers are escaped by Child; keep raw on
			// the off chance one was built by hand
			s = p
		}
		segs = append(segs, s)
	}
	return segs
}

// Child appends segments. Empty segments are no-ops.
func (r Reference) Child(segs ...string) Reference {
	ptr := r.ptr
	for _, s := range segs {
		if s == "" {
			continue
		}
		es := url.PathEscape(s)
		if ptr == "" {
			ptr = es
		} else {
			ptr = ptr + "/" + es
		}
	}
	return Reference{doc: r.doc, ptr: ptr}
}

// Parent drops the last segment. The second result is false at the
// document root, which has no parent.
func (r Reference) Parent() (Reference, bool) {
	if r.ptr == "" {
		return Reference{}, false
	}
	i := strings.LastIndexByte(r.ptr, '/')
	if i < 0 {
		return Reference{doc: r.doc}, true
	}
	return Reference{doc: r.doc, ptr: r.ptr[:i]}, true
}

// Resolve parses s as "<path>#<pointer>" against r. Both halves are
// optional: an empty path keeps r's document, a missing pointer means
// the document root. Relative paths resolve against r's document path
// with URI rules; a leading slash is rooted at the loader base. Pointer
// segments are split on "/", empties dropped, and percent-decoded.
func (r Reference) Resolve(s string) (Reference, error) {
	pathPart, frag, _ := strings.Cut(s, "#")
	doc := r.doc
	if pathPart != "" {
		doc = resolveDoc(r.doc, pathPart)
	}
	res := Reference{doc: doc}
	for _, raw := range strings.Split(frag, "/") {
		if raw == "" {
			continue
		}
		seg, err := url.PathUnescape(raw)
		if err != nil {
			return Reference{}, fmt.Errorf("reference %q: %w", s, err)
		}
		res = res.Child(seg)
	}
	return res, nil
}

// IsAncestorOf reports whether o lives strictly below r in the same
// document.
func (r Reference) IsAncestorOf(o Reference) bool {
	if r.doc != o.doc || len(o.ptr) <= len(r.ptr) {
		return false
	}
	if r.ptr == "" {
		return true
	}
	return strings.HasPrefix(o.ptr, r.ptr) && o.ptr[len(r.ptr)] == '/'
}

// String renders "<documentPath>#<seg>/<seg>/..." for diagnostics; the
// bare document path at the root.
func (r Reference) String() string {
	if r.ptr == "" {
		return r.doc
	}
	return r.doc + "#" + r.ptr
}

func normDoc(p string) string {
	if p == "" {
		return ""
	}
	abs := strings.HasPrefix(p, "/")
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	if abs {
		p = strings.TrimPrefix(p, "/")
		if p == "" {
			return ""
		}
	}
	return p
}

func resolveDoc(base, p string) string {
	if strings.HasPrefix(p, "/") {
		return normDoc(p)
	}
	return normDoc(path.Join(path.Dir(base), p))
}
