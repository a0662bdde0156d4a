package convert

import (
	"errors"
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/confval/go-confval/parse"
	"github.com/confval/go-confval/value"
)

func mustParse(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestToBoolean(t *testing.T) {
	cases := []struct {
		in   *value.Value
		want bool
		ok   bool
	}{
		{value.FromBool(true), true, true},
		{value.FromBool(false), false, true},
		{value.FromString("true"), true, true},
		{value.FromString("false"), false, true},
		{value.FromString("True"), false, false},
		{value.FromString(" true"), false, false},
		{value.FromInt(1), false, false},
		{value.FromInt(0), false, false},
		{value.FromReal(1), false, false},
		{value.None(), false, false},
		{value.List(value.FromBool(true)), false, false},
	}
	for _, c := range cases {
		got, err := ToBoolean(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ToBoolean(%s): err=%v, want ok=%v", c.in.KindName(), err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ToBoolean: got %v, want %v", got, c.want)
		}
		if !c.ok && !errors.Is(err, ErrConversion) {
			t.Errorf("ToBoolean: error %v does not wrap ErrConversion", err)
		}
	}
}

func TestToInteger(t *testing.T) {
	cases := []struct {
		in   *value.Value
		want int64
		ok   bool
	}{
		{value.FromInt(42), 42, true},
		{value.FromInt(-42), -42, true},
		{value.FromReal(50), 50, true},
		{value.FromReal(-50), -50, true},
		{value.FromReal(50.05), 0, false},
		{value.FromReal(math.NaN()), 0, false},
		{value.FromReal(math.Inf(1)), 0, false},
		{value.FromReal(1e300), 0, false},
		{value.FromReal(9223372036854775808.0), 0, false},
		{value.FromReal(-9223372036854775808.0), math.MinInt64, true},
		{value.FromString("50000"), 50000, true},
		{value.FromString("-123"), -123, true},
		{value.FromString("50.0"), 50, true},
		{value.FromString("5e2"), 500, true},
		{value.FromString("50.05"), 0, false},
		{value.FromString("foo"), 0, false},
		{value.FromString(""), 0, false},
		{value.FromBool(true), 0, false},
		{value.FromBool(false), 0, false},
		{value.FromTimespan(time.Second), 0, false},
		{value.None(), 0, false},
	}
	for _, c := range cases {
		got, err := ToInteger(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ToInteger(%v): err=%v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ToInteger: got %d, want %d", got, c.want)
		}
	}
}

func TestToReal(t *testing.T) {
	cases := []struct {
		in   *value.Value
		want float64
		ok   bool
	}{
		{value.FromReal(50.05), 50.05, true},
		{value.FromInt(50), 50, true},
		{value.FromString("50.05"), 50.05, true},
		{value.FromString("50"), 50, true},
		{value.FromString("1e3"), 1000, true},
		{value.FromString("foo"), 0, false},
		{value.FromBool(true), 0, false},
		{value.None(), 0, false},
	}
	for _, c := range cases {
		got, err := ToReal(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ToReal(%v): err=%v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ToReal: got %v, want %v", got, c.want)
		}
	}
}

func TestToTimespan(t *testing.T) {
	cases := []struct {
		in   *value.Value
		want time.Duration
		ok   bool
	}{
		{value.FromTimespan(42 * time.Second), 42 * time.Second, true},
		{value.FromString("10ms"), 10 * time.Millisecond, true},
		{value.FromString("2min"), 2 * time.Minute, true},
		{value.FromString("10"), 0, false},
		{value.FromString("10msb"), 0, false},
		{value.FromInt(10), 0, false},
		{value.None(), 0, false},
	}
	for _, c := range cases {
		got, err := ToTimespan(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ToTimespan(%v): err=%v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ToTimespan: got %v, want %v", got, c.want)
		}
	}
}

func TestToStringTotal(t *testing.T) {
	cases := []struct {
		in   *value.Value
		want string
	}{
		{value.None(), "null"},
		{value.FromBool(true), "true"},
		{value.FromInt(42), "42"},
		{value.FromReal(50.05), "50.05"},
		{value.FromTimespan(10 * time.Millisecond), "10ms"},
		{value.FromString("hello world"), "hello world"},
		{value.FromString(""), ""},
		{value.List(value.FromInt(1), value.FromInt(2)), "[1, 2]"},
		{mustParse(t, "{a=1,b=2}"), "{a = 1, b = 2}"},
	}
	for _, c := range cases {
		if got := ToString(c.in); got != c.want {
			t.Errorf("ToString: got %q, want %q", got, c.want)
		}
	}
}

func TestToList(t *testing.T) {
	v := mustParse(t, "[1, 2, 3]")
	xs, err := ToList(v)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 3 {
		t.Fatalf("got %d elements, want 3", len(xs))
	}

	// Dictionaries flatten to key-value pairs in insertion order.
	d := mustParse(t, "{a=1,b=2}")
	pairs, err := ToList(d)
	if err != nil {
		t.Fatal(err)
	}
	want := []*value.Value{
		value.List(value.FromString("a"), value.FromInt(1)),
		value.List(value.FromString("b"), value.FromInt(2)),
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if !value.Equal(pairs[i], want[i]) {
			t.Errorf("pair %d: got %v, want %v", i, pairs[i], want[i])
		}
	}

	// A string re-parses as a list or dictionary literal.
	if _, err := ToList(value.FromString("[1, 2]")); err != nil {
		t.Errorf("string list literal: %v", err)
	}
	if _, err := ToList(value.FromString("{a=1}")); err != nil {
		t.Errorf("string dict literal: %v", err)
	}
	if _, err := ToList(value.FromString("1, 2")); err == nil {
		t.Error("string without opening bracket converted to list")
	}
	if _, err := ToList(value.FromInt(1)); err == nil {
		t.Error("integer converted to list")
	}
}

func TestToDict(t *testing.T) {
	d, err := ToDict(mustParse(t, "{a=1}"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Get("a"); !ok {
		t.Error("missing key a")
	}
	if _, err := ToDict(value.FromString("{a=1}")); err != nil {
		t.Errorf("string dict literal: %v", err)
	}
	if _, err := ToDict(value.FromString("a=1")); err == nil {
		t.Error("string without opening brace converted to dict")
	}
	if _, err := ToDict(mustParse(t, "[1, 2]")); err == nil {
		t.Error("list converted to dict")
	}

	if !CanConvertToDict(mustParse(t, "{a=1}")) {
		t.Error("CanConvertToDict(dict) = false")
	}
	if !CanConvertToDict(value.FromString("{a=1}")) {
		t.Error("CanConvertToDict(dict literal) = false")
	}
	if CanConvertToDict(value.FromInt(1)) {
		t.Error("CanConvertToDict(integer) = true")
	}
}

func TestAsScalars(t *testing.T) {
	if got, err := As[int](value.FromInt(42)); err != nil || got != 42 {
		t.Errorf("As[int] = %d, %v", got, err)
	}
	if got, err := As[string](value.FromInt(42)); err != nil || got != "42" {
		t.Errorf("As[string] = %q, %v", got, err)
	}
	if got, err := As[float64](value.FromInt(42)); err != nil || got != 42 {
		t.Errorf("As[float64] = %v, %v", got, err)
	}
	if got, err := As[time.Duration](value.FromString("10ms")); err != nil || got != 10*time.Millisecond {
		t.Errorf("As[time.Duration] = %v, %v", got, err)
	}
	if got, err := As[bool](value.FromString("true")); err != nil || got != true {
		t.Errorf("As[bool] = %v, %v", got, err)
	}
	if _, err := As[bool](value.FromInt(1)); err == nil {
		t.Error("As[bool] accepted an integer")
	}
}

func TestAsBounds(t *testing.T) {
	v := value.FromInt(32768)
	if _, err := As[int16](v); err == nil {
		t.Error("As[int16](32768) succeeded")
	}
	if got, err := As[uint16](v); err != nil || got != 32768 {
		t.Errorf("As[uint16](32768) = %d, %v", got, err)
	}
	if _, err := As[uint16](value.FromInt(65536)); err == nil {
		t.Error("As[uint16](65536) succeeded")
	}
	if _, err := As[uint64](value.FromInt(-1)); err == nil {
		t.Error("As[uint64](-1) succeeded")
	}
	if got, err := As[int8](value.FromInt(-128)); err != nil || got != -128 {
		t.Errorf("As[int8](-128) = %d, %v", got, err)
	}
	if _, err := As[int8](value.FromInt(-129)); err == nil {
		t.Error("As[int8](-129) succeeded")
	}
	if _, err := As[float32](value.FromReal(1.79769e308)); err == nil {
		t.Error("As[float32](1.79769e308) succeeded")
	}
	if got, err := As[float32](value.FromReal(1.5)); err != nil || got != 1.5 {
		t.Errorf("As[float32](1.5) = %v, %v", got, err)
	}
}

func TestAsContainers(t *testing.T) {
	v := mustParse(t, "[1, 2, 3]")
	got, err := As[[]int](v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("As[[]int] (-want +got):\n%s", diff)
	}

	// A single bad element fails the whole extraction.
	if _, err := As[[]int](mustParse(t, `[1, "two", 3]`)); err == nil {
		t.Error("As[[]int] accepted a non-numeric element")
	}

	m, err := AsMap[int](mustParse(t, "{a=1,b=2}"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, m); diff != "" {
		t.Errorf("AsMap[int] (-want +got):\n%s", diff)
	}

	nested, err := As[map[string][]int](mustParse(t, "{a=[1,2],b=[3]}"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string][]int{"a": {1, 2}, "b": {3}}, nested); diff != "" {
		t.Errorf("As[map[string][]int] (-want +got):\n%s", diff)
	}

	var arr [3]int
	arr, err = As[[3]int](v)
	if err != nil || arr != [3]int{1, 2, 3} {
		t.Errorf("As[[3]int] = %v, %v", arr, err)
	}
	if _, err := As[[2]int](v); err == nil {
		t.Error("As[[2]int] accepted a 3-element list")
	}
}

func TestAsMultiMap(t *testing.T) {
	got, err := AsMultiMap[int](mustParse(t, "{a=[1,2],b=3}"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string][]int{"a": {1, 2}, "b": {3}}, got); diff != "" {
		t.Errorf("dict source (-want +got):\n%s", diff)
	}

	// A list of pairs accumulates repeated keys in order.
	got, err = AsMultiMap[int](mustParse(t, `[["a", 1], ["b", 2], ["a", 3]]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string][]int{"a": {1, 3}, "b": {2}}, got); diff != "" {
		t.Errorf("pair source (-want +got):\n%s", diff)
	}

	if _, err := AsMultiMap[int](mustParse(t, `[["a", 1], [2]]`)); err == nil {
		t.Error("accepted a 1-element pair")
	}
}

func TestAsPath(t *testing.T) {
	v := mustParse(t, "{scheduler{max-threads=8}, tag=prod}")
	n, err := AsPath[int](v, "scheduler.max-threads")
	if err != nil || n != 8 {
		t.Fatalf("AsPath = %d, %v", n, err)
	}
	if _, err := AsPath[int](v, "scheduler.missing"); !errors.Is(err, ErrNoSuchKey) {
		t.Errorf("missing path: %v", err)
	}
	if _, err := AsPath[int](v, "tag"); err == nil {
		t.Error("AsPath[int] accepted a non-numeric string")
	}
}

func TestHolds(t *testing.T) {
	if !Holds[int](value.FromString("42")) {
		t.Error("Holds[int] rejected a numeric string")
	}
	if Holds[int](value.FromString("foo")) {
		t.Error("Holds[int] accepted foo")
	}
	if !Holds[string](value.FromInt(42)) {
		t.Error("Holds[string] must hold for every value")
	}
}

func TestTuples(t *testing.T) {
	v := value.List(value.FromInt(42), value.FromString("hello"))
	n, s, err := As2[uint64, string](v)
	if err != nil || n != 42 || s != "hello" {
		t.Fatalf("As2 = %d, %q, %v", n, s, err)
	}
	if _, _, err := As2[string, int](v); err == nil {
		t.Error("As2[string, int] accepted a non-numeric second slot")
	}
	if _, _, err := As2[int, string](mustParse(t, "[1, 2, 3]")); err == nil {
		t.Error("As2 accepted a 3-element list")
	}

	a, b, c, err := As3[int, string, bool](mustParse(t, `[1, "x", true]`))
	if err != nil || a != 1 || b != "x" || c != true {
		t.Fatalf("As3 = %d, %q, %v, %v", a, b, c, err)
	}
}

func TestURIExtraction(t *testing.T) {
	got, err := As[url.URL](mustParse(t, "<https://example.com/a>"))
	if err != nil || got.Host != "example.com" {
		t.Fatalf("got %v, %v", got.String(), err)
	}
	p, err := As[*url.URL](value.FromString("https://example.com"))
	if err != nil || p.Scheme != "https" {
		t.Fatalf("from string: %v, %v", p, err)
	}
	if _, err := As[*url.URL](value.FromString("example.com")); !errors.Is(err, ErrConversion) {
		t.Errorf("scheme-less string: %v", err)
	}
	// a uri value may carry no payload
	if _, err := As[url.URL](value.FromURI(nil)); !errors.Is(err, ErrConversion) {
		t.Errorf("nil payload: %v", err)
	}
	if _, err := As[*url.URL](value.FromURI(nil)); !errors.Is(err, ErrConversion) {
		t.Errorf("nil payload, pointer destination: %v", err)
	}
}
