// Package schema is a typed view over resolved fragments for
// OpenAPI-style schema objects, plus an Index that assigns stable
// names to the object schemas of a document graph.
package schema

import (
	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/registry"
)

// Schema wraps a resolved fragment holding a schema object. Accessors
// treat absent fields as zero values and only fail on malformed ones,
// so partially specified schemas read cleanly.
type Schema struct {
	f *registry.Fragment
}

// New wraps f as a Schema.
func New(f *registry.Fragment) *Schema {
	return &Schema{f: f}
}

// Property is one named member of an object schema.
type Property struct {
	Name   string
	Schema *Schema
}

// Ref returns the coordinate of the underlying fragment.
func (s *Schema) Ref() ref.Reference { return s.f.Ref() }

// Fragment returns the underlying fragment.
func (s *Schema) Fragment() *registry.Fragment { return s.f }

// Type returns the "type" field, or "" when unset.
func (s *Schema) Type() (string, error) {
	return s.stringField("type")
}

// Title returns the "title" field, or "" when unset.
func (s *Schema) Title() (string, error) {
	return s.stringField("title")
}

// Description returns the "description" field, or "" when unset.
func (s *Schema) Description() (string, error) {
	return s.stringField("description")
}

// Nullable returns the "nullable" field, defaulting to false. String
// literals like "true" count, matching boolean projection elsewhere.
func (s *Schema) Nullable() (bool, error) {
	c, err := s.field("nullable")
	if err != nil || c == nil {
		return false, err
	}
	return c.AsBool()
}

// Required returns the "required" field as a list of member names.
func (s *Schema) Required() ([]string, error) {
	c, err := s.field("required")
	if err != nil || c == nil {
		return nil, err
	}
	return registry.MapIndexed(c, func(_ int, e *registry.Fragment) (string, error) {
		return e.AsString()
	})
}

// Enum returns the "enum" values.
func (s *Schema) Enum() ([]*ir.Node, error) {
	c, err := s.field("enum")
	if err != nil || c == nil {
		return nil, err
	}
	return registry.MapIndexed(c, func(_ int, e *registry.Fragment) (*ir.Node, error) {
		return e.Node(), nil
	})
}

// Properties returns the object members in declaration order.
func (s *Schema) Properties() ([]Property, error) {
	c, err := s.field("properties")
	if err != nil || c == nil {
		return nil, err
	}
	return registry.Map(c, func(k string, v *registry.Fragment) (Property, error) {
		return Property{Name: k, Schema: New(v)}, nil
	})
}

// Items returns the element schema of an array schema, or nil when
// unset.
func (s *Schema) Items() (*Schema, error) {
	c, err := s.field("items")
	if err != nil || c == nil {
		return nil, err
	}
	return New(c), nil
}

// AdditionalProperties returns the value schema of a map-like object
// schema. The boolean form of the field carries no schema and reads
// as nil.
func (s *Schema) AdditionalProperties() (*Schema, error) {
	c, err := s.field("additionalProperties")
	if err != nil || c == nil {
		return nil, err
	}
	if c.Type() != ir.ObjectType {
		return nil, nil
	}
	return New(c), nil
}

// IsObject reports whether s describes an object: its type says so,
// or it declares properties.
func (s *Schema) IsObject() (bool, error) {
	t, err := s.Type()
	if err != nil {
		return false, err
	}
	if t == "object" {
		return true, nil
	}
	if s.f.Type() != ir.ObjectType {
		return false, nil
	}
	c, err := s.f.Find("properties")
	if err != nil {
		return false, err
	}
	return c != nil, nil
}

func (s *Schema) field(name string) (*registry.Fragment, error) {
	if s.f.Type() != ir.ObjectType {
		return nil, nil
	}
	return s.f.Find(name)
}

func (s *Schema) stringField(name string) (string, error) {
	c, err := s.field(name)
	if err != nil || c == nil {
		return "", err
	}
	return c.AsString()
}
