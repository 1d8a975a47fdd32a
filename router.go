package router

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Router matches navigation paths against an ordered list of routes.
//
// Routes are tested in registration order and the first one matching wins;
// there is no ranking by specificity.
type Router struct {
	routes   []Route
	captures []Capture
	compile  CompileFunc
}

// Option configures a Router.
type Option func(*Router)

// WithCompiler sets the function used to compile route patterns.
// NewCapture is used by default.
func WithCompiler(fn CompileFunc) Option {
	return func(r *Router) {
		r.compile = fn
	}
}

// New returns a new Router. It must be initialised with Init before use.
func New(opts ...Option) *Router {
	r := &Router{
		compile: NewCapture,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Init registers the given routes, replacing any previous ones. The order
// of descriptors is the matching order.
//
// Either every pattern compiles and all routes are replaced, or an error
// wrapping ErrInvalidRoutes is returned and the router is left untouched.
//
// WARNING: Not concurrency-safe!
func (r *Router) Init(descriptors []Descriptor) error {
	if len(descriptors) == 0 {
		return ErrInvalidRoutes
	}

	routes := make([]Route, len(descriptors))
	captures := make([]Capture, len(descriptors))

	for i, d := range descriptors {
		capture, err := r.compile(d.Pattern)
		if err != nil {
			return fmt.Errorf("%w: route %d '%s': %w", ErrInvalidRoutes, i, d.Pattern, err)
		} else if capture == nil {
			return fmt.Errorf("%w: route %d '%s': no capture", ErrInvalidRoutes, i, d.Pattern)
		}

		routes[i] = newRoute(d)
		captures[i] = capture
	}

	r.routes = routes
	r.captures = captures

	return nil
}

// FindMatchingRoute sanitises path, tests it against every route in order
// and returns a copy of the first route matching, carrying its Request.
//
// The raw query string is stored on the request as given, and its parsed
// values are merged over whatever the capture put in the query.
//
// It returns ErrNotInitialised before Init, ErrInvalidPath if path is not
// valid UTF-8 and ErrNotFound if no route matches.
func (r *Router) FindMatchingRoute(path, queryString string) (Route, error) {
	if len(r.routes) == 0 {
		return Route{}, ErrNotInitialised
	}

	if !utf8.ValidString(path) {
		return Route{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidPath, path)
	}

	path = SanitiseURL(path)

	i, request := r.match(path)
	if request == nil {
		return Route{}, fmt.Errorf("%w for path '%s'", ErrNotFound, path)
	}

	request.mergeQuery(queryString, ParseQueryString(queryString))

	route := r.routes[i]
	route.request = request

	return route, nil
}

// Navigate is like FindMatchingRoute for a navigation target of the form
// "path?query#fragment". The fragment is ignored.
func (r *Router) Navigate(target string) (Route, error) {
	target, _, _ = strings.Cut(target, "#")
	path, queryString, _ := strings.Cut(target, "?")

	return r.FindMatchingRoute(path, queryString)
}

// match returns the index of the first capture matching path and its
// request, or -1 and nil.
func (r *Router) match(path string) (int, *Request) {
	for i, capture := range r.captures {
		if request := capture.Test(path); request != nil {
			return i, request
		}
	}

	return -1, nil
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}

// Patterns returns the registered patterns in matching order.
func (r *Router) Patterns() []string {
	patterns := make([]string, len(r.captures))
	for i, capture := range r.captures {
		patterns[i] = capture.Pattern()
	}

	return patterns
}

// List returns the registered routes in matching order.
func (r *Router) List() []Descriptor {
	descriptors := make([]Descriptor, len(r.routes))
	for i, route := range r.routes {
		descriptors[i] = route.Descriptor()
	}

	return descriptors
}
