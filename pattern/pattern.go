package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile parses the given route pattern.
//
// Static text is case folded, since the paths it is matched against are
// already lowercased. Param names are kept as given, and regular expressions
// match case insensitively.
func Compile(raw string) (*Pattern, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPattern
	}

	paths := optionalPaths(raw)
	if len(paths) == 0 {
		paths = append(paths, raw)
	}

	p := &Pattern{
		raw:          raw,
		alternatives: make([][]segment, 0, len(paths)),
	}

	for _, path := range paths {
		segments, err := parseSegments(path, raw)
		if err != nil {
			return nil, err
		}

		p.alternatives = append(p.alternatives, segments)
	}

	return p, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(raw string) *Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.raw
}

// Match tests a canonical path against the pattern. It returns the values of
// the named params, or false if the path does not have the pattern's shape.
// The returned map is freshly allocated on every call.
func (p *Pattern) Match(path string) (map[string]string, bool) {
	parts := splitPath(path)

	for _, segments := range p.alternatives {
		if params, ok := match(segments, parts); ok {
			return params, true
		}
	}

	return nil, false
}

func match(segments []segment, parts []string) (map[string]string, bool) {
	params := make(map[string]string)

	for i, seg := range segments {
		if seg.sType == wildcard {
			// Catch-all takes the rest, even if empty
			params[seg.value] = strings.Join(parts[i:], "/")
			return params, true
		}

		if i >= len(parts) || len(parts[i]) == 0 {
			return nil, false
		}

		switch seg.sType {
		case static:
			if parts[i] != seg.value {
				return nil, false
			}
		case param:
			params[seg.value] = parts[i]
		case composite:
			m := seg.regex.FindStringSubmatch(parts[i])
			if m == nil {
				return nil, false
			}

			for j, key := range seg.keys {
				params[key] = m[seg.indexes[j]]
			}
		default:
			panic("invalid segment type")
		}
	}

	if len(parts) != len(segments) {
		return nil, false
	}

	return params, true
}

func parseSegments(path, fullPath string) ([]segment, error) {
	parts := splitSegments(path)
	segments := make([]segment, 0, len(parts))

	for i, part := range parts {
		seg, err := parseSegment(part, fullPath)
		if err != nil {
			return nil, err
		}

		if seg.sType == wildcard && i != len(parts)-1 {
			return nil, fmt.Errorf("%w in path '%s'", ErrCatchAllPosition, fullPath)
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

func parseSegment(part, fullPath string) (segment, error) {
	switch part[0] {
	case ':', '*':
		if len(part) == 1 {
			return segment{}, fmt.Errorf("%w in path '%s'", ErrEmptyName, fullPath)
		}

		sType := param
		if part[0] == '*' {
			sType = wildcard
		}

		return segment{value: part[1:], sType: sType}, nil
	}

	if strings.ContainsAny(part, "{}") {
		holders, err := findPlaceholders(part, fullPath)
		if err != nil {
			return segment{}, err
		}

		if h := holders[0]; len(holders) == 1 && h.start == 0 && h.end == len(part) {
			switch h.expr {
			case "":
				return segment{value: h.name, sType: param}, nil
			case catchAllExpr:
				return segment{value: h.name, sType: wildcard}, nil
			}
		}

		return compileComposite(part, holders, fullPath)
	}

	return segment{value: strings.ToLower(part), sType: static}, nil
}

// compileComposite builds an anchored regular expression for a segment mixing
// static text and placeholders, e.g. "user_{name}" or "{id:[0-9]+}".
func compileComposite(part string, holders []placeholder, fullPath string) (segment, error) {
	var b strings.Builder

	seg := segment{
		value:   part,
		sType:   composite,
		keys:    make([]string, 0, len(holders)),
		indexes: make([]int, 0, len(holders)),
	}

	b.WriteByte('^')

	last := 0
	for i, h := range holders {
		if h.expr == catchAllExpr {
			return segment{}, fmt.Errorf("%w in path '%s'", ErrCatchAllSegment, fullPath)
		}

		expr := h.expr
		if len(expr) == 0 {
			expr = "[^/]+"
		}

		b.WriteString(regexp.QuoteMeta(strings.ToLower(part[last:h.start])))
		b.WriteString("(?P<" + groupName(i) + ">(?i:" + expr + "))")

		seg.keys = append(seg.keys, h.name)
		last = h.end
	}

	b.WriteString(regexp.QuoteMeta(strings.ToLower(part[last:])))
	b.WriteByte('$')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return segment{}, fmt.Errorf("%w in path '%s': %v", ErrInvalidRegex, fullPath, err)
	}

	seg.regex = re
	for i := range seg.keys {
		seg.indexes = append(seg.indexes, re.SubexpIndex(groupName(i)))
	}

	return seg, nil
}
