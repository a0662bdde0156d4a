package convert

import (
	"math"
	"strconv"
	"time"

	"github.com/confval/go-confval/encode"
	"github.com/confval/go-confval/parse"
	"github.com/confval/go-confval/value"
)

// ToBoolean coerces v to a bool. Only a boolean value or the exact string
// payloads "true" and "false" convert; in particular integers never do.
func ToBoolean(v *value.Value) (bool, error) {
	switch v.Kind() {
	case value.BooleanKind:
		return v.Bool(), nil
	case value.StringKind:
		switch v.Str() {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, noStringConversion(v.Str(), "a boolean")
	}
	return false, noConversion(v, "boolean")
}

// ToInteger coerces v to an int64. Reals convert only when finite, whole,
// and representable; strings are read as an integer literal first and as a
// real literal second. Booleans never convert.
func ToInteger(v *value.Value) (int64, error) {
	switch v.Kind() {
	case value.IntegerKind:
		return v.Int(), nil
	case value.RealKind:
		return realToInteger(v.Real())
	case value.StringKind:
		s := v.Str()
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return realToInteger(f)
		}
		return 0, noStringConversion(s, "an integer")
	}
	return 0, noConversion(v, "integer")
}

func realToInteger(f float64) (int64, error) {
	// 2^63 converts to float64 exactly; anything at or above it
	// overflows int64, as does anything below -2^63.
	if math.IsNaN(f) || math.IsInf(f, 0) ||
		f != math.Trunc(f) ||
		f >= 9223372036854775808.0 || f < -9223372036854775808.0 {
		return 0, noStringConversion(strconv.FormatFloat(f, 'g', -1, 64), "an integer")
	}
	return int64(f), nil
}

// ToReal coerces v to a float64. Integers widen (possibly losing precision
// past 2^53); strings must parse as a real literal.
func ToReal(v *value.Value) (float64, error) {
	switch v.Kind() {
	case value.RealKind:
		return v.Real(), nil
	case value.IntegerKind:
		return float64(v.Int()), nil
	case value.StringKind:
		if f, err := strconv.ParseFloat(v.Str(), 64); err == nil {
			return f, nil
		}
		return 0, noStringConversion(v.Str(), "a floating point number")
	}
	return 0, noConversion(v, "real")
}

// ToTimespan coerces v to a duration. Strings must carry a unit suffix.
func ToTimespan(v *value.Value) (time.Duration, error) {
	switch v.Kind() {
	case value.TimespanKind:
		return v.Timespan(), nil
	case value.StringKind:
		if d, err := parse.Duration(v.Str()); err == nil {
			return d, nil
		}
		return 0, noStringConversion(v.Str(), "a timespan")
	}
	return 0, noConversion(v, "timespan")
}

// ToString renders v as a string and never fails. String payloads pass
// through unquoted; every other kind renders as its canonical form.
func ToString(v *value.Value) string {
	if v.Kind() == value.StringKind {
		return v.Str()
	}
	return encode.String(v)
}

// ToList coerces v to a list of values. Lists pass through, dictionaries
// flatten to [key, value] pairs, and strings re-parse as a list or
// dictionary literal.
func ToList(v *value.Value) ([]*value.Value, error) {
	switch v.Kind() {
	case value.ListKind:
		return v.List(), nil
	case value.DictKind:
		return dictPairs(v.Dict()), nil
	case value.StringKind:
		s := v.Str()
		if lv, err := parse.List(s); err == nil {
			return lv.List(), nil
		}
		if dv, err := parse.Dict(s); err == nil {
			return dictPairs(dv.Dict()), nil
		}
		return nil, noStringConversion(s, "a list")
	}
	return nil, noConversion(v, "list")
}

func dictPairs(d *value.Dict) []*value.Value {
	pairs := make([]*value.Value, 0, d.Len())
	for _, e := range d.Entries() {
		pairs = append(pairs, value.List(value.FromString(e.Key), e.Val))
	}
	return pairs
}

// ToDict coerces v to a dictionary. Only dictionaries and strings carrying
// a dictionary literal convert.
func ToDict(v *value.Value) (*value.Dict, error) {
	switch v.Kind() {
	case value.DictKind:
		return v.Dict(), nil
	case value.StringKind:
		if dv, err := parse.Dict(v.Str()); err == nil {
			return dv.Dict(), nil
		}
		return nil, noStringConversion(v.Str(), "a dictionary")
	}
	return nil, noConversion(v, "dictionary")
}

// CanConvertToDict reports whether ToDict would succeed.
func CanConvertToDict(v *value.Value) bool {
	switch v.Kind() {
	case value.DictKind:
		return true
	case value.StringKind:
		_, err := parse.Dict(v.Str())
		return err == nil
	}
	return false
}
