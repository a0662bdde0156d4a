// Package value defines the dynamic, self-describing configuration value:
// a recursive tagged value over a closed set of kinds (none, boolean,
// integer, real, timespan, uri, string, list, dictionary).
//
// # Usage
//
//	v := value.FromInt(1)
//	v.Append(value.FromInt(2))
//	v.Append(value.FromString("foo"))
//	// v now holds the list [1, 2, "foo"]
//
// Values are plain data: they carry no locks and no I/O. Sharing a Value
// across goroutines requires external synchronization or treating it as
// immutable.
//
// # Related Packages
//
//   - github.com/confval/go-confval/parse - text to Value
//   - github.com/confval/go-confval/encode - Value to canonical text
//   - github.com/confval/go-confval/convert - Value to native Go types
package value
