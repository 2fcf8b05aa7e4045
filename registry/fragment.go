package registry

import (
	"strconv"

	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/ref"
)

// Fragment is a resolved value together with the coordinate it lives
// at. The coordinate is the end of the indirection chain, so a
// Fragment's node is never itself an indirection mapping. Navigation
// methods go back through the owning Registry and follow indirection
// again, so child Fragments are resolved the same way top-level
// lookups are.
type Fragment struct {
	ref  ref.Reference
	node *ir.Node
	reg  *Registry
}

// Ref returns the coordinate of the resolved value.
func (f *Fragment) Ref() ref.Reference { return f.ref }

// Node returns the underlying value.
func (f *Fragment) Node() *ir.Node { return f.node }

// Type returns the kind of the underlying value.
func (f *Fragment) Type() ir.Type { return f.node.Type }

// Equal reports whether f and o name the same coordinate. Distinct
// coordinates holding equal values are not Equal.
func (f *Fragment) Equal(o *Fragment) bool {
	return o != nil && f.ref == o.ref
}

func (f *Fragment) String() string { return f.ref.String() }

// AsString projects f as a string.
func (f *Fragment) AsString() (string, error) {
	if f.node.Type != ir.StringType {
		return "", &TypeMismatchError{Ref: f.ref, Want: ir.StringType, Got: f.node.Type}
	}
	return f.node.String, nil
}

// AsBool projects f as a bool. String values holding a boolean
// literal, such as "true" or "0", parse as their boolean reading.
func (f *Fragment) AsBool() (bool, error) {
	switch f.node.Type {
	case ir.BoolType:
		return f.node.Bool, nil
	case ir.StringType:
		b, err := strconv.ParseBool(f.node.String)
		if err == nil {
			return b, nil
		}
	}
	return false, &TypeMismatchError{Ref: f.ref, Want: ir.BoolType, Got: f.node.Type}
}

// AsInt projects f as an integer.
func (f *Fragment) AsInt() (int64, error) {
	if f.node.Type == ir.NumberType && f.node.Int64 != nil {
		return *f.node.Int64, nil
	}
	return 0, &TypeMismatchError{Ref: f.ref, Want: ir.NumberType, Got: f.node.Type}
}

// AsFloat projects f as a float. Integer values widen.
func (f *Fragment) AsFloat() (float64, error) {
	if f.node.Type == ir.NumberType {
		if f.node.Float64 != nil {
			return *f.node.Float64, nil
		}
		if f.node.Int64 != nil {
			return float64(*f.node.Int64), nil
		}
	}
	return 0, &TypeMismatchError{Ref: f.ref, Want: ir.NumberType, Got: f.node.Type}
}

// IsNull reports whether f holds the null value.
func (f *Fragment) IsNull() bool { return f.node.Type == ir.NullType }

// Keys returns the keys of a mapping in insertion order.
func (f *Fragment) Keys() ([]string, error) {
	if f.node.Type != ir.ObjectType {
		return nil, &TypeMismatchError{Ref: f.ref, Want: ir.ObjectType, Got: f.node.Type}
	}
	keys := make([]string, len(f.node.Keys))
	copy(keys, f.node.Keys)
	return keys, nil
}

// Items returns the elements of a sequence, each resolved through the
// Registry.
func (f *Fragment) Items() ([]*Fragment, error) {
	var items []*Fragment
	err := f.EachIndexed(func(_ int, c *Fragment) error {
		items = append(items, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get descends from f along elems and resolves the result. A missing
// coordinate is an error; use Find when absence is expected.
func (f *Fragment) Get(elems ...string) (*Fragment, error) {
	return f.reg.Get(f.ref.Child(elems...))
}

// Find descends from f along elems and resolves the result, reporting
// absence as (nil, nil).
func (f *Fragment) Find(elems ...string) (*Fragment, error) {
	return f.reg.Find(f.ref.Child(elems...))
}

// At descends into element i of a sequence.
func (f *Fragment) At(i int) (*Fragment, error) {
	return f.Get(strconv.Itoa(i))
}

// Parent resolves the coordinate one segment above f. It returns
// (nil, nil) when f sits at a document root.
func (f *Fragment) Parent() (*Fragment, error) {
	p, ok := f.ref.Parent()
	if !ok {
		return nil, nil
	}
	return f.reg.Get(p)
}

// Each calls fn for every entry of a mapping in insertion order,
// resolving each value through the Registry. A non-nil error from fn
// stops the iteration.
func (f *Fragment) Each(fn func(key string, c *Fragment) error) error {
	if f.node.Type != ir.ObjectType {
		return &TypeMismatchError{Ref: f.ref, Want: ir.ObjectType, Got: f.node.Type}
	}
	for _, k := range f.node.Keys {
		c, err := f.Get(k)
		if err != nil {
			return err
		}
		if err := fn(k, c); err != nil {
			return err
		}
	}
	return nil
}

// EachIndexed calls fn for every element of a sequence in order,
// resolving each element through the Registry. A non-nil error from fn
// stops the iteration.
func (f *Fragment) EachIndexed(fn func(i int, c *Fragment) error) error {
	if f.node.Type != ir.ArrayType {
		return &TypeMismatchError{Ref: f.ref, Want: ir.ArrayType, Got: f.node.Type}
	}
	for i := range f.node.Values {
		c, err := f.At(i)
		if err != nil {
			return err
		}
		if err := fn(i, c); err != nil {
			return err
		}
	}
	return nil
}

// Map applies fn to every entry of a mapping and collects the results
// in insertion order.
func Map[T any](f *Fragment, fn func(key string, c *Fragment) (T, error)) ([]T, error) {
	var out []T
	err := f.Each(func(k string, c *Fragment) error {
		v, err := fn(k, c)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MapIndexed applies fn to every element of a sequence and collects
// the results in order.
func MapIndexed[T any](f *Fragment, fn func(i int, c *Fragment) (T, error)) ([]T, error) {
	var out []T
	err := f.EachIndexed(func(i int, c *Fragment) error {
		v, err := fn(i, c)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
