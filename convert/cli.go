package convert

import (
	"strings"

	"github.com/confval/go-confval/parse"
	"github.com/confval/go-confval/value"
)

// FromCLI parses a command-line argument and extracts it as T. The
// argument may omit the outer brackets of a list, so "1, 2, 3" fills a
// []int, and the outer braces of a dictionary, so "a=1, b=2" fills a
// map[string]int; a single element also fills a list destination as a
// singleton. A string destination takes the whole argument, unquoting it
// when it is a single quoted literal.
func FromCLI[T any](s string) (T, error) {
	var zero T
	elems, err := parse.CLI(s)
	if err != nil {
		return zero, err
	}
	if _, ok := any(&zero).(*string); ok {
		if len(elems) == 1 && elems[0].Kind() == value.StringKind {
			return As[T](elems[0])
		}
		res := any(&zero).(*string)
		*res = strings.TrimSpace(s)
		return zero, nil
	}
	if len(elems) == 1 {
		if res, err := As[T](elems[0]); err == nil {
			return res, nil
		}
	}
	return As[T](value.FromList(elems))
}
