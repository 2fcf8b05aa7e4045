// Package ir holds the structural value model for loaded documents: a
// closed tagged-variant tree covering the JSON/YAML data model. Objects
// keep their keys in insertion order.
package ir

import "strconv"

type Node struct {
	Type Type

	// Keys and Values are parallel for ObjectType; ArrayType uses
	// Values only.
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

// FromNumber builds a number node from a raw literal, keeping the parsed
// int64 or float64 form when the literal is representable.
func FromNumber(raw string) *Node {
	n := &Node{Type: NumberType, Number: raw}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		n.Int64 = &i
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		n.Float64 = &f
	}
	return n
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// Set appends key=v, replacing the value in place if key is already
// present. Returns the receiver for chaining.
func (n *Node) Set(key string, v *Node) *Node {
	for i, k := range n.Keys {
		if k == key {
			n.Values[i] = v
			return n
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
	return n
}

func (n *Node) Append(vs ...*Node) *Node {
	n.Values = append(n.Values, vs...)
	return n
}

// Get returns the value at key, or nil if n is not an object or has no
// such key.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

// Index returns the i'th element, or nil if n is not an array or i is
// out of range.
func (n *Node) Index(i int) *Node {
	if n == nil || n.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Values)
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:   n.Type,
		String: n.String,
		Bool:   n.Bool,
		Number: n.Number,
	}
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Keys != nil {
		dst.Keys = make([]string, len(n.Keys))
		copy(dst.Keys, n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}
