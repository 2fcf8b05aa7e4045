package parse

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/specref/ir"
)

// YAML decodes a single YAML document. Decoding goes through goccy's
// ordered-map mode so object key order survives; anchors, aliases and
// merge keys are expanded by the decoder.
func YAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	n, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return n, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		obj := ir.Object()
		for _, item := range x {
			key, err := yamlKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	case []any:
		arr := &ir.Node{Type: ir.ArrayType}
		for _, item := range x {
			val, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(val)
		}
		return arr, nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x <= 1<<63-1 {
			return ir.FromInt(int64(x)), nil
		}
		return ir.FromNumber(fmt.Sprintf("%d", x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339)), nil
	default:
		return nil, fmt.Errorf("cannot convert %T value", v)
	}
}

func yamlKey(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	case nil:
		return "", fmt.Errorf("null mapping key")
	default:
		return "", fmt.Errorf("cannot use %T as mapping key", v)
	}
}
