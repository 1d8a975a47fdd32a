// Package pattern compiles route patterns into matchers for canonical paths.
//
// Supported placeholders:
//
//	/movies/:id/             whole segment param
//	/movies/{id}/            whole segment param
//	/movies/{id:[0-9]+}/     param constrained by a regular expression
//	/user_{name}/            param with a static prefix or suffix
//	/files/*filepath         catch-all, final segment only
//	/files/{filepath:*}      catch-all, final segment only
//	/show/{name?}/{id?}      optional params
//
// Patterns are matched against lowercased paths: static text is lowercased
// when compiled and regular expressions match case insensitively, so
// {code:[A-Z]+} accepts "/abc/".
package pattern

const (
	static segmentType = iota
	param
	composite
	wildcard
)

const catchAllExpr = "*"
