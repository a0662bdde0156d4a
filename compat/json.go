package compat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/confval/go-confval/convert"
	"github.com/confval/go-confval/value"
)

// ToJSON renders v as JSON.
func ToJSON(v *value.Value) ([]byte, error) {
	return json.Marshal(convert.Native(v))
}

// FromJSON builds a value from JSON. Numbers without a fraction or
// exponent become integers; everything else becomes a real.
func FromJSON(data []byte) (*value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return fromJSONValue(x)
}

func fromJSONValue(x any) (*value.Value, error) {
	switch t := x.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return value.FromInt(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("decoding json number %q: %w", t, err)
		}
		return value.FromReal(f), nil
	case []any:
		elems := make([]*value.Value, 0, len(t))
		for _, e := range t {
			elem, err := fromJSONValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return value.FromList(elems), nil
	case map[string]any:
		d := value.NewDict()
		for _, k := range sortedKeys(t) {
			elem, err := fromJSONValue(t[k])
			if err != nil {
				return nil, err
			}
			d.Put(k, elem)
		}
		return value.FromDict(d), nil
	}
	return convert.FromNative(x)
}

// sortedKeys keeps dictionary construction deterministic when the
// decoder hands back an unordered Go map.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
