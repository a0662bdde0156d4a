package value

import (
	"testing"
)

func TestKindNames(t *testing.T) {
	want := map[Kind]string{
		NoneKind:     "none",
		BooleanKind:  "boolean",
		IntegerKind:  "integer",
		RealKind:     "real",
		TimespanKind: "timespan",
		URIKind:      "uri",
		StringKind:   "string",
		ListKind:     "list",
		DictKind:     "dictionary",
	}
	for k, name := range want {
		if k.String() != name {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), name)
		}
	}
	if len(Kinds()) != len(want) {
		t.Errorf("Kinds() has %d entries, want %d", len(Kinds()), len(want))
	}
}

func TestZeroValueIsNone(t *testing.T) {
	var v Value
	if v.Kind() != NoneKind {
		t.Errorf("zero value kind = %s", v.KindName())
	}
}

func TestConvertToList(t *testing.T) {
	// A scalar becomes the sole element of a singleton.
	v := FromInt(42)
	v.ConvertToList()
	if v.Kind() != ListKind || len(v.List()) != 1 || v.List()[0].Int() != 42 {
		t.Fatalf("got %v", v)
	}
	// Idempotent: a second promotion changes nothing.
	v.ConvertToList()
	if len(v.List()) != 1 {
		t.Fatalf("second promotion changed the list: %d elements", len(v.List()))
	}

	// None becomes the empty list, not a singleton holding none.
	n := None()
	n.ConvertToList()
	if n.Kind() != ListKind || len(n.List()) != 0 {
		t.Errorf("none promoted to %d elements", len(n.List()))
	}
}

func TestAsDictDiscards(t *testing.T) {
	v := FromInt(42)
	d := v.AsDict()
	if v.Kind() != DictKind || d.Len() != 0 {
		t.Fatalf("got %s with %d entries", v.KindName(), d.Len())
	}
	d.Put("a", FromInt(1))
	// A second coercion keeps the existing dictionary.
	if v.AsDict().Len() != 1 {
		t.Error("second coercion discarded entries")
	}
}

func TestAppend(t *testing.T) {
	v := FromInt(1)
	v.Append(FromInt(2))
	v.Append(FromString("three"))
	if len(v.List()) != 3 {
		t.Fatalf("got %d elements", len(v.List()))
	}
	if v.List()[0].Int() != 1 || v.List()[1].Int() != 2 || v.List()[2].Str() != "three" {
		t.Errorf("order not preserved: %v", v.List())
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := NewDict()
	d.Put("xs", List(FromInt(1), FromInt(2)))
	v := FromDict(d)
	c := v.Clone()
	c.Dict().Put("xs", FromInt(9))
	xs, _ := v.Dict().Get("xs")
	if xs.Kind() != ListKind {
		t.Error("mutating the clone changed the original")
	}
	if !Equal(v.Clone(), v) {
		t.Error("clone not equal to original")
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	d.Put("b", FromInt(1))
	d.Put("a", FromInt(2))
	d.Put("b", FromInt(3)) // overwrite keeps position
	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("keys = %v", keys)
	}
	b, _ := d.Get("b")
	if b.Int() != 3 {
		t.Errorf("b = %d", b.Int())
	}
}

func TestDictPaths(t *testing.T) {
	d := NewDict()
	d.PutPath("p1.x", FromInt(1))
	d.PutPath("p1.y", FromInt(2))
	d.PutPath("flat", FromInt(3))

	p1, ok := d.Get("p1")
	if !ok || p1.Kind() != DictKind || p1.Dict().Len() != 2 {
		t.Fatalf("p1 = %v", p1)
	}
	x, ok := d.GetPath("p1.x")
	if !ok || x.Int() != 1 {
		t.Errorf("p1.x = %v", x)
	}
	if _, ok := d.GetPath("p1.z"); ok {
		t.Error("found missing path p1.z")
	}
	if _, ok := d.GetPath("flat.x"); ok {
		t.Error("descended into a non-dictionary")
	}

	// Writing through a scalar replaces it with a dictionary.
	d.PutPath("flat.x", FromInt(4))
	if v, ok := d.GetPath("flat.x"); !ok || v.Int() != 4 {
		t.Errorf("flat.x = %v", v)
	}
}
