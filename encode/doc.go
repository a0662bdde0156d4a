// Package encode renders values to their canonical text form.
//
// # Usage
//
//	v, _ := parse.Parse("{a=1,b=2}")
//	s := encode.String(v) // "{a = 1, b = 2}"
//
//	// with ANSI colors
//	err := encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// The rendering is deterministic and side-effect free: the same value always
// produces the same text, and a second parse/stringify pass is stable.
//
// # Related Packages
//
//   - github.com/confval/go-confval/value - the value tree
//   - github.com/confval/go-confval/parse - text to value
package encode
