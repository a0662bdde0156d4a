package parse

import "errors"

// Error codes surfaced to callers. Errors returned by this package wrap
// exactly one of these; callers dispatch with errors.Is.
var (
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrTrailingCharacter   = errors.New("trailing character")

	// ErrDepth reports input nested deeper than MaxDepth.
	ErrDepth = errors.New("max nesting depth exceeded")
)
