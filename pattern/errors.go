package pattern

import "errors"

// Pattern compilation errors.
var (
	ErrEmptyPattern     = errors.New("pattern must not be empty")
	ErrEmptyName        = errors.New("wildcards must be named with a non-empty name")
	ErrInvalidName      = errors.New("the chars '{' and '}' are not allowed in the param name")
	ErrUnterminated     = errors.New("unbalanced braces")
	ErrAdjacent         = errors.New("the wildcards must be separated by at least 1 char")
	ErrCatchAllPosition = errors.New("catch-all routes are only allowed at the end of the path")
	ErrCatchAllSegment  = errors.New("catch-all must take a whole segment")
	ErrInvalidRegex     = errors.New("invalid regular expression")
)
