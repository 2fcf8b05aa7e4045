// Package encode renders ir nodes back out as JSON or YAML text.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/specref/format"
	"github.com/signadot/specref/ir"
)

type encOpts struct {
	format  format.Format
	indent  string
	compact bool
}

type EncodeOption func(*encOpts)

func EncodeFormat(f format.Format) EncodeOption {
	return func(o *encOpts) {
		o.format = f
	}
}

// Indent sets the JSON indent unit. Ignored for YAML.
func Indent(s string) EncodeOption {
	return func(o *encOpts) {
		o.indent = s
	}
}

// Compact emits JSON on one line. Ignored for YAML.
func Compact() EncodeOption {
	return func(o *encOpts) {
		o.compact = true
	}
}

func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Bytes(n, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func Bytes(n *ir.Node, opts ...EncodeOption) ([]byte, error) {
	o := &encOpts{format: format.YAMLFormat, indent: "  "}
	for _, f := range opts {
		f(o)
	}
	switch o.format {
	case format.JSONFormat:
		buf := &bytes.Buffer{}
		if err := writeJSON(buf, n, "", o); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case format.YAMLFormat:
		v, err := toYAML(n)
		if err != nil {
			return nil, err
		}
		d, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, o.format)
	}
}

func writeJSON(buf *bytes.Buffer, n *ir.Node, prefix string, o *encOpts) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case ir.NumberType:
		buf.WriteString(numberLiteral(n))
	case ir.StringType:
		d, err := json.Marshal(n.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ir.ArrayType:
		if len(n.Values) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		inner := prefix + o.indent
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if !o.compact {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			if err := writeJSON(buf, v, inner, o); err != nil {
				return err
			}
		}
		if !o.compact {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte(']')
	case ir.ObjectType:
		if len(n.Keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		inner := prefix + o.indent
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if !o.compact {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			kd, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			if !o.compact {
				buf.WriteByte(' ')
			}
			if err := writeJSON(buf, n.Values[i], inner, o); err != nil {
				return err
			}
		}
		if !o.compact {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode type %v", n.Type)
	}
	return nil
}

func numberLiteral(n *ir.Node) string {
	if n.Number != "" {
		return n.Number
	}
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10)
	}
	if n.Float64 != nil {
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	}
	return "0"
}

func toYAML(n *ir.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return n.Bool, nil
	case ir.StringType:
		return n.String, nil
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64, nil
		}
		if n.Float64 != nil {
			return *n.Float64, nil
		}
		return n.Number, nil
	case ir.ArrayType:
		vs := make([]any, len(n.Values))
		for i, v := range n.Values {
			c, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			vs[i] = c
		}
		return vs, nil
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(n.Keys))
		for i, k := range n.Keys {
			c, err := toYAML(n.Values[i])
			if err != nil {
				return nil, err
			}
			ms[i] = yaml.MapItem{Key: k, Value: c}
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("cannot encode type %v", n.Type)
	}
}
