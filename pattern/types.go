package pattern

import "regexp"

type segmentType uint8

type segment struct {
	value string
	sType segmentType

	// only set for composite segments
	keys    []string
	indexes []int
	regex   *regexp.Regexp
}

// Pattern is a compiled route pattern. It is immutable once compiled and can
// be shared between goroutines.
type Pattern struct {
	raw          string
	alternatives [][]segment
}

type placeholder struct {
	name  string
	expr  string
	start int
	end   int
}
