package encode

import "fmt"

// NeedsQuote reports whether s must be quoted to be read back as the same
// string: empty strings, keyword lookalikes, strings that scan as numbers
// or durations, and strings containing delimiter or control characters.
func NeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "null", "true", "false":
		return true
	}
	if c := s[0]; c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.' {
		return true
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c < 0x20 || c == 0x7f:
			return true
		case c == ' ' || c == '\t':
			return true
		case c == '[' || c == ']' || c == '{' || c == '}':
			return true
		case c == ',' || c == '=' || c == '"' || c == '\'' || c == '<' || c == '>':
			return true
		}
	}
	return false
}

// Quote renders s double-quoted with quote and control characters escaped.
func Quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\r':
			buf = append(buf, '\\', 'r')
		default:
			if c < 0x20 || c == 0x7f {
				buf = append(buf, []byte(fmt.Sprintf("\\u%04x", c))...)
			} else {
				buf = append(buf, c)
			}
		}
	}
	return string(append(buf, '"'))
}
