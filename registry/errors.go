package registry

import (
	"fmt"
	"strings"

	"github.com/signadot/specref/ir"
	"github.com/signadot/specref/ref"
)

// NavigationError reports a malformed descent: walking into a scalar,
// or a sequence indexed by something that is not a non-negative
// integer.
type NavigationError struct {
	Ref     ref.Reference
	Segment string
	Kind    ir.Type
	Message string
}

func (e *NavigationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("cannot descend into %s", strings.ToLower(e.Kind.String()))
	}
	return fmt.Sprintf("navigate %s: %s (segment %q)", e.Ref, msg, e.Segment)
}

// NotFoundError reports that a required coordinate has no value. The
// non-failing lookups report absence as (nil, nil) instead.
type NotFoundError struct {
	Ref ref.Reference
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no value at %s", e.Ref)
}

// TypeMismatchError reports a projection requesting a kind the value
// does not have. It always carries the offending Reference.
type TypeMismatchError struct {
	Ref  ref.Reference
	Want ir.Type
	Got  ir.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", e.Ref, e.Want, e.Got)
}

// CycleError reports a circular indirection chain. Chain holds the
// coordinates on the active resolution path, in visit order; Ref is the
// repeated coordinate.
type CycleError struct {
	Ref   ref.Reference
	Chain []ref.Reference
}

func (e *CycleError) Error() string {
	parts := make([]string, 0, len(e.Chain)+1)
	for _, r := range e.Chain {
		parts = append(parts, r.String())
	}
	parts = append(parts, e.Ref.String())
	return fmt.Sprintf("circular reference: %s", strings.Join(parts, " -> "))
}

// DepthError reports an indirection chain longer than the configured
// bound.
type DepthError struct {
	Ref   ref.Reference
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("reference chain at %s exceeds depth limit %d", e.Ref, e.Limit)
}
