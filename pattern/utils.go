// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import (
	"fmt"
	"strconv"
	"strings"

	gstrings "github.com/savsgio/gotils/strings"
)

// matchBrace returns the index of the '}' closing the '{' at open,
// or -1 if it is never closed. Braces nested in regular expressions are
// balanced.
func matchBrace(path string, open int) int {
	depth := 0

	for i := open; i < len(path); i++ {
		switch path[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitSegments splits a pattern into its segments, ignoring slashes nested
// in placeholders and dropping empty segments.
func splitSegments(path string) []string {
	segments := make([]string, 0, strings.Count(path, "/"))
	depth, start := 0, 0

	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				if i > start {
					segments = append(segments, path[start:i])
				}
				start = i + 1
			}
		}
	}

	if start < len(path) {
		segments = append(segments, path[start:])
	}

	return segments
}

// splitPath splits a canonical path into its segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if len(path) == 0 {
		return nil
	}

	return strings.Split(path, "/")
}

// findPlaceholders returns every '{...}' placeholder of a single segment,
// checking the names for invalid characters.
func findPlaceholders(seg, fullPath string) ([]placeholder, error) {
	holders := make([]placeholder, 0, 1)

	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '}':
			return nil, fmt.Errorf("%w in path '%s'", ErrUnterminated, fullPath)
		case '{':
		default:
			continue
		}

		end := matchBrace(seg, i)
		if end == -1 {
			return nil, fmt.Errorf("%w in path '%s'", ErrUnterminated, fullPath)
		}

		name, expr, _ := strings.Cut(seg[i+1:end], ":")

		switch {
		case len(name) == 0:
			return nil, fmt.Errorf("%w in path '%s'", ErrEmptyName, fullPath)
		case strings.ContainsAny(name, "{}"):
			return nil, fmt.Errorf("%w in path '%s'", ErrInvalidName, fullPath)
		case end+1 < len(seg) && seg[end+1] == '{':
			return nil, fmt.Errorf("%w in path '%s'", ErrAdjacent, fullPath)
		}

		holders = append(holders, placeholder{
			name:  name,
			expr:  expr,
			start: i,
			end:   end + 1,
		})

		i = end
	}

	return holders, nil
}

// optionalPaths returns all possible paths when the original path
// has optional arguments, or nil if it has none.
//
//	/show/{name?}/{id?}  ->  /show, /show/{name}, /show/{name}/{id}
//	/a/{x?}/edit         ->  /a, /a/{x}/edit
func optionalPaths(path string) []string {
	var paths []string

	for start := 0; start < len(path); {
		open := strings.IndexByte(path[start:], '{')
		if open == -1 {
			break
		}
		open += start

		end := matchBrace(path, open)
		if end == -1 {
			break
		}

		inner := path[open+1 : end]
		if !strings.HasSuffix(inner, "?") || strings.IndexByte(inner, ':') != -1 {
			start = end + 1
			continue
		}

		// include the path without the optional param
		prefix := strings.TrimSuffix(path[:open], "/")
		if len(prefix) == 0 {
			prefix = "/"
		}
		if !gstrings.Include(paths, prefix) {
			paths = append(paths, prefix)
		}

		path = path[:end-1] + path[end:] // remove '?'
		start = end
	}

	if len(paths) > 0 && !gstrings.Include(paths, path) {
		paths = append(paths, path)
	}

	return paths
}

func groupName(i int) string {
	return "__p" + strconv.Itoa(i)
}
