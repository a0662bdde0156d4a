package value

import (
	"net/url"
	"time"
)

// Value is a recursive tagged value. The zero Value holds the none kind.
//
// Nested lists and dictionaries are exclusively owned by their parent; the
// tree is acyclic by construction.
type Value struct {
	kind Kind

	b    bool
	i    int64
	f    float64
	d    time.Duration
	u    *url.URL
	s    string
	list []*Value
	dict *Dict
}

func None() *Value {
	return &Value{kind: NoneKind}
}

func FromBool(v bool) *Value {
	return &Value{kind: BooleanKind, b: v}
}

func FromInt(v int64) *Value {
	return &Value{kind: IntegerKind, i: v}
}

func FromReal(v float64) *Value {
	return &Value{kind: RealKind, f: v}
}

func FromTimespan(v time.Duration) *Value {
	return &Value{kind: TimespanKind, d: v}
}

func FromURI(u *url.URL) *Value {
	return &Value{kind: URIKind, u: u}
}

func FromString(v string) *Value {
	return &Value{kind: StringKind, s: v}
}

func FromList(vs []*Value) *Value {
	return &Value{kind: ListKind, list: vs}
}

func FromDict(d *Dict) *Value {
	if d == nil {
		d = NewDict()
	}
	return &Value{kind: DictKind, dict: d}
}

// List builds a list value from the given elements.
func List(vs ...*Value) *Value {
	return FromList(vs)
}

func FromStrings(vs []string) *Value {
	list := make([]*Value, len(vs))
	for i, v := range vs {
		list[i] = FromString(v)
	}
	return FromList(list)
}

func FromInts(vs []int64) *Value {
	list := make([]*Value, len(vs))
	for i, v := range vs {
		list[i] = FromInt(v)
	}
	return FromList(list)
}

func (v *Value) Kind() Kind {
	return v.kind
}

// KindName returns the canonical name of the current discriminant from the
// fixed process-wide kind table.
func (v *Value) KindName() string {
	return v.kind.String()
}

func (v *Value) Bool() bool              { return v.b }
func (v *Value) Int() int64              { return v.i }
func (v *Value) Real() float64           { return v.f }
func (v *Value) Timespan() time.Duration { return v.d }
func (v *Value) URI() *url.URL           { return v.u }
func (v *Value) Str() string             { return v.s }

// List returns the list payload, or nil if the value is not a list.
func (v *Value) List() []*Value {
	if v.kind != ListKind {
		return nil
	}
	return v.list
}

// Dict returns the dictionary payload, or nil if the value is not a
// dictionary.
func (v *Value) Dict() *Dict {
	if v.kind != DictKind {
		return nil
	}
	return v.dict
}

// ConvertToList promotes the value to a list in place. A list stays
// unchanged, a none value becomes the empty list, and any other value
// becomes the sole element of a singleton list.
func (v *Value) ConvertToList() {
	switch v.kind {
	case ListKind:
		// nop
	case NoneKind:
		*v = Value{kind: ListKind}
	default:
		elem := &Value{}
		*elem = *v
		*v = Value{kind: ListKind, list: []*Value{elem}}
	}
}

// AsList promotes the value to a list and returns the element slice.
func (v *Value) AsList() []*Value {
	v.ConvertToList()
	return v.list
}

// AsDict returns the dictionary payload, replacing the value wholesale by
// an empty dictionary first if it holds any other kind. Unlike
// ConvertToList this coercion discards prior content.
func (v *Value) AsDict() *Dict {
	if v.kind != DictKind {
		*v = Value{kind: DictKind, dict: NewDict()}
	}
	return v.dict
}

// Append promotes the value to a list and appends x at the end.
func (v *Value) Append(x *Value) {
	v.ConvertToList()
	v.list = append(v.list, x)
}

// Clone returns a deep copy of the value.
func (v *Value) Clone() *Value {
	res := &Value{}
	*res = *v
	switch v.kind {
	case URIKind:
		if v.u != nil {
			u := *v.u
			res.u = &u
		}
	case ListKind:
		res.list = make([]*Value, len(v.list))
		for i, elem := range v.list {
			res.list[i] = elem.Clone()
		}
	case DictKind:
		res.dict = v.dict.Clone()
	}
	return res
}
