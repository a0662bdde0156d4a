package encode

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/confval/go-confval/value"
)

type EncState struct {
	Color func(value.Kind, ColorAttr, string) string
}

// Encode writes the canonical rendering of v to w.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es, false)
}

// String returns the canonical rendering of v.
func String(v *value.Value, opts ...EncodeOption) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = Encode(v, &sb, opts...)
	return sb.String()
}

func encode(v *value.Value, w io.Writer, es *EncState, nested bool) error {
	switch v.Kind() {
	case value.NoneKind:
		return writeColored(w, es, value.NoneKind, ValueColor, "null")
	case value.BooleanKind:
		s := "false"
		if v.Bool() {
			s = "true"
		}
		return writeColored(w, es, value.BooleanKind, ValueColor, s)
	case value.IntegerKind:
		return writeColored(w, es, value.IntegerKind, ValueColor,
			strconv.FormatInt(v.Int(), 10))
	case value.RealKind:
		return writeColored(w, es, value.RealKind, ValueColor,
			strconv.FormatFloat(v.Real(), 'g', -1, 64))
	case value.TimespanKind:
		return writeColored(w, es, value.TimespanKind, ValueColor,
			formatTimespan(v.Timespan()))
	case value.URIKind:
		s := ""
		if v.URI() != nil {
			s = v.URI().String()
		}
		return writeColored(w, es, value.URIKind, ValueColor, s)
	case value.StringKind:
		s := v.Str()
		if nested || NeedsQuote(s) {
			s = Quote(s)
		}
		return writeColored(w, es, value.StringKind, ValueColor, s)
	case value.ListKind:
		return encodeList(v, w, es)
	case value.DictKind:
		return encodeDict(v, w, es)
	}
	return writeColored(w, es, value.NoneKind, ValueColor, "null")
}

func encodeList(v *value.Value, w io.Writer, es *EncState) error {
	elems := v.List()
	if len(elems) == 0 {
		return writeColored(w, es, value.ListKind, SepColor, "[]")
	}
	if err := writeColored(w, es, value.ListKind, SepColor, "["); err != nil {
		return err
	}
	for i, elem := range elems {
		if i > 0 {
			if err := writeColored(w, es, value.ListKind, SepColor, ", "); err != nil {
				return err
			}
		}
		if err := encode(elem, w, es, true); err != nil {
			return err
		}
	}
	return writeColored(w, es, value.ListKind, SepColor, "]")
}

func encodeDict(v *value.Value, w io.Writer, es *EncState) error {
	d := v.Dict()
	if d.Len() == 0 {
		return writeColored(w, es, value.DictKind, SepColor, "{}")
	}
	if err := writeColored(w, es, value.DictKind, SepColor, "{"); err != nil {
		return err
	}
	for i, e := range d.Entries() {
		if i > 0 {
			if err := writeColored(w, es, value.DictKind, SepColor, ", "); err != nil {
				return err
			}
		}
		key := e.Key
		if NeedsQuote(key) {
			key = Quote(key)
		}
		if err := writeColored(w, es, value.DictKind, FieldColor, key); err != nil {
			return err
		}
		if err := writeColored(w, es, value.DictKind, SepColor, " = "); err != nil {
			return err
		}
		if err := encode(e.Val, w, es, true); err != nil {
			return err
		}
	}
	return writeColored(w, es, value.DictKind, SepColor, "}")
}

func writeColored(w io.Writer, es *EncState, k value.Kind, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(k, attr, s)
	}
	_, err := w.Write([]byte(s))
	return err
}

// unit table ordered largest first; rendering picks the largest unit that
// divides the value evenly, falling back to nanoseconds.
var timespanUnits = []struct {
	unit   time.Duration
	suffix string
}{
	{time.Hour, "h"},
	{time.Minute, "min"},
	{time.Second, "s"},
	{time.Millisecond, "ms"},
	{time.Microsecond, "us"},
	{time.Nanosecond, "ns"},
}

func formatTimespan(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	for _, u := range timespanUnits {
		if d%u.unit == 0 {
			return strconv.FormatInt(int64(d/u.unit), 10) + u.suffix
		}
	}
	return strconv.FormatInt(int64(d), 10) + "ns"
}
