// Package convert coerces values into native Go types.
//
// The package has two layers. The conversion engine (ToBoolean, ToInteger,
// ToReal, ToTimespan, ToString, ToList, ToDict) implements the per-kind
// conversion matrix: every function is total over the value kinds and
// returns either a typed result or an error wrapping ErrConversion whose
// message names the source and target kinds. The generic extraction adapter
// (As, AsPath, Holds, AsSlice, AsMap, AsMultiMap, As2, As3) maps a value
// into structured destination types with explicit bounds checking for
// fixed-width numerics.
//
// # Usage
//
//	v, _ := parse.Parse("{a=1,b=2}")
//	m, err := convert.AsMap[int](v)        // map[string]int{"a": 1, "b": 2}
//	n, err := convert.AsPath[int16](v, "a") // 1
//
// User-defined composites implement the Object contract rather than relying
// on struct reflection:
//
//	func (p *Point) Fields() []convert.Field {
//	    return []convert.Field{
//	        {Name: "x", Value: &p.X},
//	        {Name: "y", Value: &p.Y},
//	    }
//	}
//
// # Related Packages
//
//   - github.com/confval/go-confval/value - the value tree
//   - github.com/confval/go-confval/parse - string-encoded composites
package convert
