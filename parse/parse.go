// Package parse turns configuration text into values.
//
// Parse implements the strict grammar with a fallback that treats
// non-structured input as a literal string. CLI implements the permissive
// dialect used for single command-line option values: outer list brackets
// and dictionary braces are optional, elements are comma- or
// whitespace-separated, and a trailing comma is tolerated.
package parse

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/confval/go-confval/value"
)

// MaxDepth bounds list and dictionary nesting. Deeper input fails with
// ErrDepth instead of exhausting the stack.
const MaxDepth = 256

// Parse parses text into a value. Empty input fails with ErrUnexpectedEOF.
// If the structured parse fails and the first non-whitespace character does
// not announce a structured value (bracket, brace, quote, or digit), the
// entire trimmed input is taken as a literal unescaped string; otherwise the
// structured-parse error is returned.
func Parse(s string) (*value.Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty input", ErrUnexpectedEOF)
	}
	v, err := full(trimmed)
	if err == nil {
		return v, nil
	}
	switch c := trimmed[0]; {
	case c == '[' || c == '{' || c == '"' || c == '\'':
		return nil, err
	case isDigit(c):
		return nil, err
	}
	return value.FromString(trimmed), nil
}

// CLI parses the permissive command-line dialect and returns the parsed
// elements. Outer brackets are optional for lists, and outer braces are
// optional for dictionaries: input shaped like "key = value, ..." parses
// as a single dictionary element. An unmatched closing bracket, or an
// opener with no closer, is an error. Empty input yields no elements.
func CLI(s string) ([]*value.Value, error) {
	p := &parser{in: strings.TrimSpace(s)}
	if p.pairsAhead() {
		v, err := p.entries(false)
		if err != nil {
			return nil, err
		}
		return []*value.Value{v}, nil
	}
	var elems []*value.Value
	for {
		p.skipSpace()
		if p.eof() {
			return elems, nil
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ']', '}':
			return nil, p.unexpected()
		default:
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
	}
}

// List parses s as a list literal. The input must start with an opening
// bracket; the string conversions use this to reject bare scalars.
func List(s string) (*value.Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected '['", ErrUnexpectedCharacter)
	}
	return full(trimmed)
}

// Dict parses s as a dictionary literal. The input must start with an
// opening brace.
func Dict(s string) (*value.Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected '{'", ErrUnexpectedCharacter)
	}
	return full(trimmed)
}

// Duration parses a duration literal such as "10ms". Recognized unit
// suffixes: ns, us, ms, s, min, h.
func Duration(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrUnexpectedEOF)
	}
	v, err := full(trimmed)
	if err != nil {
		return 0, err
	}
	if v.Kind() != value.TimespanKind {
		return 0, fmt.Errorf("%w: expected a unit suffix", ErrUnexpectedCharacter)
	}
	return v.Timespan(), nil
}

func full(s string) (*value.Value, error) {
	p := &parser{in: s}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.trailingAt(p.pos)
	}
	return v, nil
}

var timeUnits = map[string]time.Duration{
	"ns":  time.Nanosecond,
	"us":  time.Microsecond,
	"ms":  time.Millisecond,
	"s":   time.Second,
	"min": time.Minute,
	"h":   time.Hour,
}

type parser struct {
	in    string
	pos   int
	depth int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.in)
}

func (p *parser) peek() byte {
	return p.in[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.in[p.pos]) {
		p.pos++
	}
}

func (p *parser) unexpected() error {
	if p.eof() {
		return fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, p.pos)
	}
	return fmt.Errorf("%w %q at offset %d", ErrUnexpectedCharacter, p.in[p.pos], p.pos)
}

func (p *parser) trailingAt(off int) error {
	return fmt.Errorf("%w at offset %d", ErrTrailingCharacter, off)
}

func (p *parser) value() (*value.Value, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.unexpected()
	}
	switch c := p.peek(); {
	case c == '[':
		return p.list()
	case c == '{':
		return p.dict()
	case c == '"' || c == '\'':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return value.FromString(s), nil
	case c == '<':
		return p.uri()
	case isDigit(c) || c == '-' || c == '+' || c == '.':
		return p.number()
	default:
		return p.bare()
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return fmt.Errorf("%w at offset %d", ErrDepth, p.pos)
	}
	return nil
}

func (p *parser) list() (*value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.pos++ // '['
	var elems []*value.Value
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unexpected()
		}
		if p.peek() == ']' {
			p.pos++
			return value.FromList(elems), nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		p.skipSpace()
		if p.eof() {
			return nil, p.unexpected()
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return value.FromList(elems), nil
		default:
			return nil, p.unexpected()
		}
	}
}

func (p *parser) dict() (*value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.pos++ // '{'
	return p.entries(true)
}

// entries parses dictionary entries. When closed, a '}' ends the
// dictionary and running out of input is an error; otherwise end of
// input ends it and '}' is unexpected.
func (p *parser) entries(closed bool) (*value.Value, error) {
	d := value.NewDict()
	for {
		p.skipSpace()
		if p.eof() {
			if closed {
				return nil, p.unexpected()
			}
			return value.FromDict(d), nil
		}
		if p.peek() == '}' {
			if !closed {
				return nil, p.unexpected()
			}
			p.pos++
			return value.FromDict(d), nil
		}
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.eof() {
			return nil, p.unexpected()
		}
		var v *value.Value
		switch p.peek() {
		case '=':
			p.pos++
			v, err = p.value()
		case '{':
			// "key{...}" shorthand nests a dictionary
			v, err = p.dict()
		default:
			return nil, p.unexpected()
		}
		if err != nil {
			return nil, err
		}
		// dotted keys address nested dictionaries
		d.PutPath(key, v)
		p.skipSpace()
		if p.eof() {
			if closed {
				return nil, p.unexpected()
			}
			return value.FromDict(d), nil
		}
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			if !closed {
				return nil, p.unexpected()
			}
			p.pos++
			return value.FromDict(d), nil
		default:
			return nil, p.unexpected()
		}
	}
}

// pairsAhead reports whether the input starts with a dictionary key
// followed by '=', the shape of a brace-less dictionary.
func (p *parser) pairsAhead() bool {
	save := p.pos
	defer func() { p.pos = save }()
	p.skipSpace()
	if p.eof() {
		return false
	}
	if c := p.peek(); c == '[' || c == '{' {
		return false
	}
	if _, err := p.key(); err != nil {
		return false
	}
	p.skipSpace()
	return !p.eof() && p.peek() == '='
}

func (p *parser) key() (string, error) {
	if c := p.peek(); c == '"' || c == '\'' {
		return p.quoted()
	}
	start := p.pos
	for !p.eof() && isBareChar(p.in[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.unexpected()
	}
	return p.in[start:p.pos], nil
}

func (p *parser) quoted() (string, error) {
	q := p.peek()
	p.pos++
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.unexpected()
		}
		c := p.in[p.pos]
		switch c {
		case q:
			p.pos++
			return sb.String(), nil
		case '\\':
			p.pos++
			if p.eof() {
				return "", p.unexpected()
			}
			switch e := p.in[p.pos]; e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '"', '\'':
				sb.WriteByte(e)
			case 'u':
				if p.pos+4 >= len(p.in) {
					p.pos = len(p.in)
					return "", p.unexpected()
				}
				r, err := strconv.ParseUint(p.in[p.pos+1:p.pos+5], 16, 32)
				if err != nil {
					return "", p.unexpected()
				}
				sb.WriteRune(rune(r))
				p.pos += 4
			default:
				return "", p.unexpected()
			}
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) uri() (*value.Value, error) {
	p.pos++ // '<'
	start := p.pos
	for !p.eof() && p.peek() != '>' {
		p.pos++
	}
	if p.eof() {
		return nil, p.unexpected()
	}
	raw := p.in[start:p.pos]
	p.pos++ // '>'
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid uri %q", ErrUnexpectedCharacter, raw)
	}
	return value.FromURI(u), nil
}

func (p *parser) number() (*value.Value, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.pos++
	}
	digits := 0
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
		digits++
	}
	isReal := false
	if !p.eof() && p.peek() == '.' {
		isReal = true
		p.pos++
		for !p.eof() && isDigit(p.peek()) {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		p.pos = start
		return nil, p.unexpected()
	}
	if !p.eof() && (p.peek() == 'e' || p.peek() == 'E') {
		save := p.pos
		p.pos++
		if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
			p.pos++
		}
		if !p.eof() && isDigit(p.peek()) {
			isReal = true
			for !p.eof() && isDigit(p.peek()) {
				p.pos++
			}
		} else {
			p.pos = save
		}
	}
	text := p.in[start:p.pos]
	sufStart := p.pos
	for !p.eof() && isLetter(p.peek()) {
		p.pos++
	}
	if suffix := p.in[sufStart:p.pos]; suffix != "" {
		unit, ok := timeUnits[suffix]
		if !ok || isReal {
			return nil, p.trailingAt(sufStart)
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, p.trailingAt(sufStart)
		}
		if n > math.MaxInt64/int64(unit) || n < math.MinInt64/int64(unit) {
			return nil, fmt.Errorf("%w: timespan out of range at offset %d", ErrTrailingCharacter, start)
		}
		return value.FromTimespan(time.Duration(n) * unit), nil
	}
	if isReal {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.trailingAt(start)
		}
		return value.FromReal(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// out of int64 range; keep the magnitude as a real
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return nil, p.trailingAt(start)
		}
		return value.FromReal(f), nil
	}
	return value.FromInt(n), nil
}

func (p *parser) bare() (*value.Value, error) {
	start := p.pos
	for !p.eof() && isBareChar(p.in[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, p.unexpected()
	}
	switch tok := p.in[start:p.pos]; tok {
	case "null":
		return value.None(), nil
	case "true":
		return value.FromBool(true), nil
	case "false":
		return value.FromBool(false), nil
	default:
		return value.FromString(tok), nil
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isBareChar(c byte) bool {
	if isSpace(c) {
		return false
	}
	switch c {
	case '[', ']', '{', '}', ',', '=', '"', '\'', '<', '>':
		return false
	}
	return true
}
