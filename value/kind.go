package value

// Kind discriminates the payload of a Value. The declaration order is the
// cross-kind ordering used by Compare.
type Kind int

const (
	NoneKind Kind = iota
	BooleanKind
	IntegerKind
	RealKind
	TimespanKind
	URIKind
	StringKind
	ListKind
	DictKind
)

var kindNames = [...]string{
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

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns all kinds in discriminant order.
func Kinds() []Kind {
	res := make([]Kind, len(kindNames))
	for i := range kindNames {
		res[i] = Kind(i)
	}
	return res
}
