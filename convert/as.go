package convert

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"time"

	"github.com/confval/go-confval/value"
)

// As extracts v as T. Scalar destinations go through the conversion
// matrix with bounds checks for fixed-width types; slices, arrays, and
// maps recurse element-wise and fail fast on the first bad element;
// struct destinations must implement Object.
func As[T any](v *value.Value) (T, error) {
	var res T
	if err := assign(v, &res); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// AsPath extracts the entry at a dotted path inside a dictionary, so
// AsPath[int](v, "scheduler.max-threads") descends two levels.
func AsPath[T any](v *value.Value, path string) (T, error) {
	var zero T
	d, err := ToDict(v)
	if err != nil {
		return zero, err
	}
	child, ok := d.GetPath(path)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNoSuchKey, path)
	}
	return As[T](child)
}

// Holds reports whether v extracts as T.
func Holds[T any](v *value.Value) bool {
	_, err := As[T](v)
	return err == nil
}

// AsSlice extracts v as a []U, converting element-wise.
func AsSlice[U any](v *value.Value) ([]U, error) {
	elems, err := ToList(v)
	if err != nil {
		return nil, err
	}
	out := make([]U, 0, len(elems))
	for _, elem := range elems {
		u, err := As[U](elem)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// AsMap extracts v as a map keyed by string, converting values
// element-wise. Insertion order is lost; use ToDict to keep it.
func AsMap[U any](v *value.Value) (map[string]U, error) {
	d, err := ToDict(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]U, d.Len())
	for _, e := range d.Entries() {
		u, err := As[U](e.Val)
		if err != nil {
			return nil, err
		}
		out[e.Key] = u
	}
	return out, nil
}

// AsMultiMap extracts v as a map from string keys to value groups. A
// dictionary source groups each entry under its key; a list source must
// hold [key, value] pairs and accumulates repeated keys in order.
func AsMultiMap[U any](v *value.Value) (map[string][]U, error) {
	out := make(map[string][]U)
	add := func(key string, val *value.Value) error {
		if u, err := As[U](val); err == nil {
			out[key] = append(out[key], u)
			return nil
		}
		us, err := AsSlice[U](val)
		if err != nil {
			return err
		}
		out[key] = append(out[key], us...)
		return nil
	}
	if v.Kind() == value.ListKind {
		for _, pair := range v.List() {
			elems := pair.List()
			if pair.Kind() != value.ListKind || len(elems) != 2 {
				return nil, noConversion(pair, "key-value pair")
			}
			if err := add(ToString(elems[0]), elems[1]); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	d, err := ToDict(v)
	if err != nil {
		return nil, err
	}
	for _, e := range d.Entries() {
		if err := add(e.Key, e.Val); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// assign fills dst, a non-nil pointer, from v. Common scalar types take
// the fast path; everything else drops to assignReflect.
func assign(v *value.Value, dst any) error {
	switch p := dst.(type) {
	case **value.Value:
		*p = v
	case *bool:
		b, err := ToBoolean(v)
		if err != nil {
			return err
		}
		*p = b
	case *int64:
		n, err := ToInteger(v)
		if err != nil {
			return err
		}
		*p = n
	case *int:
		n, err := boundedInt(v, math.MinInt, math.MaxInt, "int")
		if err != nil {
			return err
		}
		*p = int(n)
	case *int32:
		n, err := boundedInt(v, math.MinInt32, math.MaxInt32, "int32")
		if err != nil {
			return err
		}
		*p = int32(n)
	case *int16:
		n, err := boundedInt(v, math.MinInt16, math.MaxInt16, "int16")
		if err != nil {
			return err
		}
		*p = int16(n)
	case *int8:
		n, err := boundedInt(v, math.MinInt8, math.MaxInt8, "int8")
		if err != nil {
			return err
		}
		*p = int8(n)
	case *uint64:
		n, err := boundedUint(v, math.MaxUint64, "uint64")
		if err != nil {
			return err
		}
		*p = n
	case *uint:
		n, err := boundedUint(v, math.MaxUint, "uint")
		if err != nil {
			return err
		}
		*p = uint(n)
	case *uint32:
		n, err := boundedUint(v, math.MaxUint32, "uint32")
		if err != nil {
			return err
		}
		*p = uint32(n)
	case *uint16:
		n, err := boundedUint(v, math.MaxUint16, "uint16")
		if err != nil {
			return err
		}
		*p = uint16(n)
	case *uint8:
		n, err := boundedUint(v, math.MaxUint8, "uint8")
		if err != nil {
			return err
		}
		*p = uint8(n)
	case *float64:
		f, err := ToReal(v)
		if err != nil {
			return err
		}
		*p = f
	case *float32:
		f, err := ToReal(v)
		if err != nil {
			return err
		}
		if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return outOfRange(v, "float32")
		}
		*p = float32(f)
	case *string:
		*p = ToString(v)
	case *time.Duration:
		d, err := ToTimespan(v)
		if err != nil {
			return err
		}
		*p = d
	case **url.URL:
		u, err := toURI(v)
		if err != nil {
			return err
		}
		*p = u
	case *url.URL:
		u, err := toURI(v)
		if err != nil {
			return err
		}
		*p = *u
	case *[]*value.Value:
		elems, err := ToList(v)
		if err != nil {
			return err
		}
		*p = elems
	case **value.Dict:
		d, err := ToDict(v)
		if err != nil {
			return err
		}
		*p = d
	default:
		if obj, ok := dst.(Object); ok {
			return assignObject(v, obj)
		}
		return assignReflect(v, reflect.ValueOf(dst).Elem())
	}
	return nil
}

func boundedInt(v *value.Value, min, max int64, typ string) (int64, error) {
	n, err := ToInteger(v)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, outOfRange(v, typ)
	}
	return n, nil
}

func boundedUint(v *value.Value, max uint64, typ string) (uint64, error) {
	n, err := ToInteger(v)
	if err != nil {
		return 0, err
	}
	if n < 0 || uint64(n) > max {
		return 0, outOfRange(v, typ)
	}
	return uint64(n), nil
}

// toURI accepts a uri payload directly or parses a string payload; the
// parsed form must carry a scheme so bare words do not pass as URIs.
func toURI(v *value.Value) (*url.URL, error) {
	switch v.Kind() {
	case value.URIKind:
		if u := v.URI(); u != nil {
			return u, nil
		}
		return nil, noStringConversion("", "a uri")
	case value.StringKind:
		u, err := url.Parse(v.Str())
		if err != nil || u.Scheme == "" {
			return nil, noStringConversion(v.Str(), "a uri")
		}
		return u, nil
	}
	return nil, noConversion(v, "uri")
}

var durationType = reflect.TypeOf(time.Duration(0))

// assignReflect handles destinations the fast path misses: named scalar
// types, pointers, slices, arrays, maps, and Object structs. Plain
// structs without the Object contract are rejected rather than walked
// by field reflection.
func assignReflect(v *value.Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		if obj, ok := rv.Interface().(Object); ok {
			return assignObject(v, obj)
		}
		return assignReflect(v, rv.Elem())
	case reflect.Bool:
		b, err := ToBoolean(v)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Type() == durationType {
			d, err := ToTimespan(v)
			if err != nil {
				return err
			}
			rv.SetInt(int64(d))
			return nil
		}
		n, err := ToInteger(v)
		if err != nil {
			return err
		}
		if rv.OverflowInt(n) {
			return outOfRange(v, rv.Type().String())
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := ToInteger(v)
		if err != nil {
			return err
		}
		if n < 0 || rv.OverflowUint(uint64(n)) {
			return outOfRange(v, rv.Type().String())
		}
		rv.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, err := ToReal(v)
		if err != nil {
			return err
		}
		if !math.IsInf(f, 0) && rv.OverflowFloat(f) {
			return outOfRange(v, rv.Type().String())
		}
		rv.SetFloat(f)
	case reflect.String:
		rv.SetString(ToString(v))
	case reflect.Slice:
		elems, err := ToList(v)
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
		for i, elem := range elems {
			if err := assign(elem, out.Index(i).Addr().Interface()); err != nil {
				return err
			}
		}
		rv.Set(out)
	case reflect.Array:
		elems, err := ToList(v)
		if err != nil {
			return err
		}
		if len(elems) != rv.Len() {
			return fmt.Errorf("%w: cannot convert list of size %d to %s",
				ErrConversion, len(elems), rv.Type())
		}
		for i, elem := range elems {
			if err := assign(elem, rv.Index(i).Addr().Interface()); err != nil {
				return err
			}
		}
	case reflect.Map:
		return assignMapReflect(v, rv)
	case reflect.Struct:
		if rv.CanAddr() {
			if obj, ok := rv.Addr().Interface().(Object); ok {
				return assignObject(v, obj)
			}
		}
		return fmt.Errorf("%w: %s does not implement convert.Object",
			ErrUnsupportedType, rv.Type())
	case reflect.Interface:
		if rv.NumMethod() == 0 {
			if n := Native(v); n != nil {
				rv.Set(reflect.ValueOf(n))
			} else {
				rv.Set(reflect.Zero(rv.Type()))
			}
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
	return nil
}

func assignMapReflect(v *value.Value, rv reflect.Value) error {
	typ := rv.Type()
	if typ.Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map keys must be strings, got %s",
			ErrUnsupportedType, typ.Key())
	}
	d, err := ToDict(v)
	if err != nil {
		return err
	}
	out := reflect.MakeMapWithSize(typ, d.Len())
	for _, e := range d.Entries() {
		ev := reflect.New(typ.Elem())
		if err := assign(e.Val, ev.Interface()); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(e.Key).Convert(typ.Key()), ev.Elem())
	}
	rv.Set(out)
	return nil
}
