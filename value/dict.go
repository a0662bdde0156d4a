package value

import "strings"

// Dict is an ordered mapping from string keys to values. Keys are unique;
// putting an existing key overwrites its value but keeps its position.
// Iteration order is insertion order.
type Dict struct {
	idx     map[string]int
	entries []Entry
}

type Entry struct {
	Key string
	Val *Value
}

func NewDict() *Dict {
	return &Dict{idx: map[string]int{}}
}

func (d *Dict) Len() int {
	return len(d.entries)
}

func (d *Dict) Put(key string, v *Value) {
	if i, ok := d.idx[key]; ok {
		d.entries[i].Val = v
		return
	}
	d.idx[key] = len(d.entries)
	d.entries = append(d.entries, Entry{Key: key, Val: v})
}

func (d *Dict) Get(key string) (*Value, bool) {
	i, ok := d.idx[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].Val, true
}

func (d *Dict) Keys() []string {
	res := make([]string, len(d.entries))
	for i := range d.entries {
		res[i] = d.entries[i].Key
	}
	return res
}

// Entries returns the entries in insertion order. The slice is shared with
// the dictionary; callers must not append to it.
func (d *Dict) Entries() []Entry {
	return d.entries
}

func (d *Dict) Clone() *Dict {
	res := NewDict()
	for _, e := range d.entries {
		res.Put(e.Key, e.Val.Clone())
	}
	return res
}

// PutPath stores v under a dotted path, creating intermediate dictionaries
// as needed. An intermediate that holds a non-dictionary value is replaced
// by an empty dictionary first.
func (d *Dict) PutPath(path string, v *Value) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		d.Put(head, v)
		return
	}
	sub, ok := d.Get(head)
	if !ok {
		sub = FromDict(NewDict())
		d.Put(head, sub)
	}
	sub.AsDict().PutPath(rest, v)
}

// GetPath resolves a dotted path by descending into nested dictionaries.
func (d *Dict) GetPath(path string) (*Value, bool) {
	head, rest, nested := strings.Cut(path, ".")
	v, ok := d.Get(head)
	if !ok {
		return nil, false
	}
	if !nested {
		return v, true
	}
	sub := v.Dict()
	if sub == nil {
		return nil, false
	}
	return sub.GetPath(rest)
}
