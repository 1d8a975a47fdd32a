package router

import "github.com/navkit/router/pattern"

// Capture is a compiled matcher for a single route pattern.
//
// Test receives a canonical path (see SanitiseURL) and returns a newly
// allocated Request holding the params extracted from the path, or nil if
// the path does not have the pattern's shape. Test must not keep state
// between calls: the router tests many captures against the same path.
type Capture interface {
	Pattern() string
	Test(path string) *Request
}

// CompileFunc compiles a route pattern into a Capture.
type CompileFunc func(pattern string) (Capture, error)

type patternCapture struct {
	p *pattern.Pattern
}

// NewCapture compiles the pattern with the default engine.
// See package pattern for the supported syntax.
func NewCapture(raw string) (Capture, error) {
	p, err := pattern.Compile(raw)
	if err != nil {
		return nil, err
	}

	return &patternCapture{p: p}, nil
}

func (c *patternCapture) Pattern() string {
	return c.p.String()
}

func (c *patternCapture) Test(path string) *Request {
	params, ok := c.p.Match(path)
	if !ok {
		return nil
	}

	return &Request{
		path:   path,
		params: params,
		query:  make(map[string]Value),
	}
}
