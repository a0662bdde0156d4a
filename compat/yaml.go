package compat

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/confval/go-confval/convert"
	"github.com/confval/go-confval/value"
)

// ToYAML renders v as YAML.
func ToYAML(v *value.Value) ([]byte, error) {
	return yaml.Marshal(convert.Native(v))
}

// FromYAML builds a value from YAML.
func FromYAML(data []byte) (*value.Value, error) {
	var x any
	if err := yaml.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return fromYAMLValue(x)
}

func fromYAMLValue(x any) (*value.Value, error) {
	switch t := x.(type) {
	case []any:
		elems := make([]*value.Value, 0, len(t))
		for _, e := range t {
			elem, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return value.FromList(elems), nil
	case map[string]any:
		d := value.NewDict()
		for _, k := range sortedKeys(t) {
			elem, err := fromYAMLValue(t[k])
			if err != nil {
				return nil, err
			}
			d.Put(k, elem)
		}
		return value.FromDict(d), nil
	}
	return convert.FromNative(x)
}
