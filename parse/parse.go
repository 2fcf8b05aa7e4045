// Package parse decodes JSON and YAML document bytes into ir nodes,
// preserving object key order.
package parse

import (
	"fmt"

	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
)

// Bytes decodes d according to f.
func Bytes(d []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.JSONFormat:
		return JSON(d)
	case format.YAMLFormat:
		return YAML(d)
	default:
		return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
}

// File decodes d using the format selected by the extension of path.
func File(path string, d []byte) (*ir.Node, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	return Bytes(d, f)
}
