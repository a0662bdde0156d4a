// Package confval is a dynamic, self-describing configuration value
// type: a tagged union over none, boolean, integer, real, timespan, uri,
// string, list, and dictionary, with a text grammar, a conversion
// matrix, and generic extraction into Go types.
//
// This package re-exports the common entry points; the subpackages hold
// the pieces:
//
//   - value: the tagged union and the ordered dictionary
//   - parse: the text grammar and the command-line dialect
//   - convert: kind conversions and generic extraction
//   - encode: the canonical text form
//   - compat: JSON and YAML bridges
package confval

import (
	"github.com/confval/go-confval/convert"
	"github.com/confval/go-confval/encode"
	"github.com/confval/go-confval/parse"
	"github.com/confval/go-confval/value"
)

// Parse parses configuration text into a value.
func Parse(s string) (*value.Value, error) {
	return parse.Parse(s)
}

// String renders v in canonical form.
func String(v *value.Value) string {
	return encode.String(v)
}

// As extracts v as T.
func As[T any](v *value.Value) (T, error) {
	return convert.As[T](v)
}

// Get extracts the entry at a dotted path inside a dictionary value as T.
func Get[T any](v *value.Value, path string) (T, error) {
	return convert.AsPath[T](v, path)
}

// Holds reports whether v extracts as T.
func Holds[T any](v *value.Value) bool {
	return convert.Holds[T](v)
}

// Put stores a plain Go value at a dotted path inside d, creating
// intermediate dictionaries as needed.
func Put(d *value.Dict, path string, x any) error {
	v, err := convert.FromNative(x)
	if err != nil {
		return err
	}
	d.PutPath(path, v)
	return nil
}
