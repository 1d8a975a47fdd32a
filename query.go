package router

import "strings"

// ParseQueryString parses a raw query string, with or without its leading
// '?', into a key/value map.
//
// Every '?' is dropped, the rest is split on '&' and every parameter on its
// first '='. A parameter without '=' is a flag. When a key repeats, the last
// value wins. Values are not unescaped. The empty string yields a single
// flag for the empty key.
func ParseQueryString(raw string) map[string]Value {
	raw = strings.ReplaceAll(raw, "?", "")

	query := make(map[string]Value, strings.Count(raw, "&")+1)

	for _, parameter := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(parameter, "=")
		if !ok {
			query[key] = FlagValue()
			continue
		}

		query[key] = StringValue(value)
	}

	return query
}
