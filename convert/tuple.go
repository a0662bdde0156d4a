package convert

import (
	"fmt"

	"github.com/confval/go-confval/value"
)

// As2 extracts v as a pair with independently typed slots. The source
// must be a list of exactly two elements.
func As2[A, B any](v *value.Value) (A, B, error) {
	var a A
	var b B
	elems, err := tupleElems(v, 2)
	if err != nil {
		return a, b, err
	}
	if a, err = As[A](elems[0]); err != nil {
		return a, b, err
	}
	if b, err = As[B](elems[1]); err != nil {
		var zero A
		return zero, b, err
	}
	return a, b, nil
}

// As3 extracts v as a triple with independently typed slots.
func As3[A, B, C any](v *value.Value) (A, B, C, error) {
	var a A
	var b B
	var c C
	elems, err := tupleElems(v, 3)
	if err != nil {
		return a, b, c, err
	}
	if a, err = As[A](elems[0]); err != nil {
		return a, b, c, err
	}
	if b, err = As[B](elems[1]); err != nil {
		var zero A
		return zero, b, c, err
	}
	if c, err = As[C](elems[2]); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, c, err
	}
	return a, b, c, nil
}

func tupleElems(v *value.Value, n int) ([]*value.Value, error) {
	elems, err := ToList(v)
	if err != nil {
		return nil, err
	}
	if len(elems) != n {
		return nil, fmt.Errorf("%w: cannot convert list of size %d to a %d-tuple",
			ErrConversion, len(elems), n)
	}
	return elems, nil
}
