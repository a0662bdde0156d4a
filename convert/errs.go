package convert

import (
	"errors"
	"fmt"

	"github.com/confval/go-confval/encode"
	"github.com/confval/go-confval/value"
)

var (
	// ErrConversion wraps every failed coercion.
	ErrConversion = errors.New("conversion failed")

	// ErrNoSuchKey indicates a dotted-path lookup found no entry.
	ErrNoSuchKey = errors.New("no such key")

	// ErrUnsupportedType indicates a destination type the adapter
	// cannot fill.
	ErrUnsupportedType = errors.New("unsupported destination type")
)

// noConversion reports that v's kind has no conversion to the target kind.
func noConversion(v *value.Value, target string) error {
	return fmt.Errorf("%w: cannot convert %s to %s", ErrConversion, v.KindName(), target)
}

// noStringConversion reports that a string payload did not parse as the
// target kind. The payload is quoted so whitespace and empty strings stay
// visible in the message.
func noStringConversion(s, target string) error {
	return fmt.Errorf("%w: cannot convert %s to %s", ErrConversion, encode.Quote(s), target)
}

func outOfRange(v *value.Value, typ string) error {
	return fmt.Errorf("%w: value %s out of range for %s", ErrConversion, encode.String(v), typ)
}
