package convert

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"time"

	"github.com/confval/go-confval/value"
)

// Native maps v to the plain Go form used by the JSON and YAML bridges:
// nil, bool, int64, float64, string, []any, or map[string]any. Timespans
// and URIs render as strings since neither bridge format has a native
// representation for them. Dictionary insertion order is lost.
func Native(v *value.Value) any {
	switch v.Kind() {
	case value.NoneKind:
		return nil
	case value.BooleanKind:
		return v.Bool()
	case value.IntegerKind:
		return v.Int()
	case value.RealKind:
		return v.Real()
	case value.TimespanKind:
		return v.Timespan().String()
	case value.URIKind:
		if u := v.URI(); u != nil {
			return u.String()
		}
		return ""
	case value.StringKind:
		return v.Str()
	case value.ListKind:
		out := make([]any, 0, len(v.List()))
		for _, elem := range v.List() {
			out = append(out, Native(elem))
		}
		return out
	case value.DictKind:
		out := make(map[string]any, v.Dict().Len())
		for _, e := range v.Dict().Entries() {
			out[e.Key] = Native(e.Val)
		}
		return out
	}
	return nil
}

// FromNative builds a value from plain Go data, the reverse of Native.
// Whole float64 payloads stay reals; they do not fold into integers.
func FromNative(x any) (*value.Value, error) {
	switch t := x.(type) {
	case nil:
		return value.None(), nil
	case *value.Value:
		return t, nil
	case bool:
		return value.FromBool(t), nil
	case int:
		return value.FromInt(int64(t)), nil
	case int8:
		return value.FromInt(int64(t)), nil
	case int16:
		return value.FromInt(int64(t)), nil
	case int32:
		return value.FromInt(int64(t)), nil
	case int64:
		return value.FromInt(t), nil
	case uint:
		return uintValue(uint64(t))
	case uint8:
		return value.FromInt(int64(t)), nil
	case uint16:
		return value.FromInt(int64(t)), nil
	case uint32:
		return value.FromInt(int64(t)), nil
	case uint64:
		return uintValue(t)
	case float32:
		return value.FromReal(float64(t)), nil
	case float64:
		return value.FromReal(t), nil
	case string:
		return value.FromString(t), nil
	case time.Duration:
		return value.FromTimespan(t), nil
	case *url.URL:
		return value.FromURI(t), nil
	case []any:
		elems := make([]*value.Value, 0, len(t))
		for _, x := range t {
			elem, err := FromNative(x)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return value.FromList(elems), nil
	case map[string]any:
		d := value.NewDict()
		for _, k := range sortedKeys(t) {
			elem, err := FromNative(t[k])
			if err != nil {
				return nil, err
			}
			d.Put(k, elem)
		}
		return value.FromDict(d), nil
	}
	return fromNativeReflect(x)
}

func uintValue(n uint64) (*value.Value, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: value %d out of range for integer", ErrConversion, n)
	}
	return value.FromInt(int64(n)), nil
}

// sortedKeys keeps dictionary construction deterministic when the source
// is an unordered Go map.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fromNativeReflect covers typed slices and string-keyed maps, such as
// the []string or map[string]int a caller already has on hand.
func fromNativeReflect(x any) (*value.Value, error) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return value.None(), nil
		}
		return FromNative(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		elems := make([]*value.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := FromNative(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return value.FromList(elems), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keys must be strings, got %s",
				ErrUnsupportedType, rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromNative(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}
