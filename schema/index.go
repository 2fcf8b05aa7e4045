package schema

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/signadot/specref/ref"
)

// Index assigns names to the object schemas reachable from a set of
// roots. Schemas are deduplicated by Reference identity, so a target
// shared through several reference paths is named once. Names come
// from the schema title when present, otherwise from the position the
// schema was first seen at; collisions pick up the parent name and
// then a numeric suffix. Given a fixed insertion order the naming is
// deterministic.
type Index struct {
	names   map[ref.Reference]string
	order   []ref.Reference
	taken   map[string]bool
	visited map[ref.Reference]bool
}

func NewIndex() *Index {
	return &Index{
		names:   map[ref.Reference]string{},
		taken:   map[string]bool{},
		visited: map[ref.Reference]bool{},
	}
}

// Add walks s and everything reachable through property, item, and
// additionalProperties edges, naming each object schema. hint names
// the position of s itself, for roots without a title.
func (x *Index) Add(s *Schema, hint string) error {
	return x.add(s, hint, "")
}

// Name returns the allocated name for the schema at r.
func (x *Index) Name(r ref.Reference) (string, bool) {
	n, ok := x.names[r]
	return n, ok
}

// Refs returns the named references in allocation order.
func (x *Index) Refs() []ref.Reference {
	out := make([]ref.Reference, len(x.order))
	copy(out, x.order)
	return out
}

func (x *Index) add(s *Schema, hint, parent string) error {
	r := s.Ref()
	if x.visited[r] {
		return nil
	}
	x.visited[r] = true

	name := parent
	obj, err := s.IsObject()
	if err != nil {
		return err
	}
	if obj {
		name, err = x.allocate(s, hint, parent)
		if err != nil {
			return err
		}
	}

	props, err := s.Properties()
	if err != nil {
		return err
	}
	for _, p := range props {
		if err := x.add(p.Schema, p.Name, name); err != nil {
			return err
		}
	}
	items, err := s.Items()
	if err != nil {
		return err
	}
	if items != nil {
		if err := x.add(items, hint+"Item", name); err != nil {
			return err
		}
	}
	ap, err := s.AdditionalProperties()
	if err != nil {
		return err
	}
	if ap != nil {
		if err := x.add(ap, hint+"Value", name); err != nil {
			return err
		}
	}
	return nil
}

func (x *Index) allocate(s *Schema, hint, parent string) (string, error) {
	title, err := s.Title()
	if err != nil {
		return "", err
	}
	base := Pascal(title)
	if base == "" {
		base = Pascal(hint)
	}
	if base == "" {
		base = "Schema"
	}
	name := base
	if x.taken[name] && parent != "" {
		name = base + "Of" + parent
	}
	for i := 2; x.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	x.taken[name] = true
	x.names[s.Ref()] = name
	x.order = append(x.order, s.Ref())
	return name, nil
}

// Pascal converts a title or member name to PascalCase, splitting on
// spaces, dashes, underscores and dots.
func Pascal(s string) string {
	var b strings.Builder
	up := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.':
			up = true
		case up:
			b.WriteRune(unicode.ToUpper(r))
			up = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
