package value

import (
	"cmp"
	"net/url"
	"strings"
)

// Equal reports structural equality: same kind and recursively equal
// payload. Values of differing kinds are never equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values of differing kinds order by discriminant (the kind table order);
// no numeric relation holds across kinds.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case NoneKind:
		return 0
	case BooleanKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntegerKind:
		return cmp.Compare(a.i, b.i)
	case RealKind:
		return cmp.Compare(a.f, b.f)
	case TimespanKind:
		return cmp.Compare(a.d, b.d)
	case URIKind:
		return strings.Compare(uriString(a.u), uriString(b.u))
	case StringKind:
		return strings.Compare(a.s, b.s)
	case ListKind:
		return compareLists(a.list, b.list)
	case DictKind:
		return compareDicts(a.dict, b.dict)
	}
	return 0
}

func uriString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

func compareLists(a, b []*Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareDicts(a, b *Dict) int {
	n := min(a.Len(), b.Len())
	ae, be := a.Entries(), b.Entries()
	for i := 0; i < n; i++ {
		if c := strings.Compare(ae[i].Key, be[i].Key); c != 0 {
			return c
		}
		if c := Compare(ae[i].Val, be[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
