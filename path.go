package router

import (
	"unicode"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// SanitiseURL cleans up common typos in a URL path and returns its
// canonical form, the only form captures are tested against:
//
//   - lowercased
//   - whitespace stripped anywhere
//   - backslashes turned into forward slashes
//   - runs of slashes collapsed into one
//   - exactly one leading and one trailing slash
//
// Any input yields a canonical path, and canonical paths are returned
// unchanged.
func SanitiseURL(raw string) string {
	if isCanonical(raw) {
		return raw
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteByte('/')
	last := byte('/')

	for _, c := range raw {
		switch {
		case c == '/' || c == '\\':
			if last != '/' {
				buf.WriteByte('/')
				last = '/'
			}
		case isSpace(c):
			// stripped
		case c < utf8.RuneSelf:
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			buf.WriteByte(byte(c))
			last = byte(c)
		default:
			buf.B = utf8.AppendRune(buf.B, unicode.ToLower(c))
			last = 0
		}
	}

	if last != '/' {
		buf.WriteByte('/')
	}

	return buf.String()
}

// isCanonical reports whether path is an ASCII path already in canonical
// form, so the common case does not allocate.
func isCanonical(path string) bool {
	n := len(path)
	if n == 0 || path[0] != '/' || path[n-1] != '/' {
		return false
	}

	for i := 0; i < n; i++ {
		c := path[i]

		switch {
		case c >= utf8.RuneSelf:
			return false
		case 'A' <= c && c <= 'Z':
			return false
		case c == '\\':
			return false
		case c == '/' && i > 0 && path[i-1] == '/':
			return false
		case c == ' ' || ('\t' <= c && c <= '\r'):
			return false
		}
	}

	return true
}

// isSpace reports whether c is stripped as whitespace. It follows the
// Unicode White_Space set except that U+0085 is kept and the byte order
// mark U+FEFF is stripped.
func isSpace(c rune) bool {
	switch c {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}

	return unicode.IsSpace(c)
}
