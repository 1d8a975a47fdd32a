package router

import "encoding/json"

// Descriptor describes a route to register.
type Descriptor struct {
	// Pattern is the path template, e.g. "/movies/:id/".
	Pattern string `yaml:"pattern" json:"pattern"`

	// View names what the application renders for the route.
	View string `yaml:"view" json:"view,omitempty"`

	// Meta holds any other caller data attached to the route.
	Meta map[string]string `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Route is a registered route. Routes returned by FindMatchingRoute carry the
// Request that matched them and cannot be modified: every accessor returns
// a copy.
type Route struct {
	pattern string
	view    string
	meta    map[string]string
	request *Request
}

func newRoute(d Descriptor) Route {
	return Route{
		pattern: d.Pattern,
		view:    d.View,
		meta:    copyStrings(d.Meta),
	}
}

// Pattern returns the path template of the route.
func (r Route) Pattern() string {
	return r.pattern
}

// View returns the view name of the route.
func (r Route) View() string {
	return r.view
}

// Meta returns the metadata value stored under key.
func (r Route) Meta(key string) (string, bool) {
	v, ok := r.meta[key]
	return v, ok
}

// Metadata returns a copy of all route metadata.
func (r Route) Metadata() map[string]string {
	return copyStrings(r.meta)
}

// Request returns a copy of the request the route was matched with.
// It is nil for routes that did not come out of a match.
func (r Route) Request() *Request {
	if r.request == nil {
		return nil
	}

	req := *r.request
	return &req
}

// Descriptor returns a descriptor equivalent to the one the route was built from.
func (r Route) Descriptor() Descriptor {
	return Descriptor{
		Pattern: r.pattern,
		View:    r.view,
		Meta:    copyStrings(r.meta),
	}
}

// Request is the outcome of a successful match: the path params extracted by
// the pattern plus the parsed query string.
type Request struct {
	path        string
	params      map[string]string
	queryString string
	query       map[string]Value
}

// NewRequest returns a Request for the canonical path with the given params
// and pre-populated query values. Both maps are copied.
// Capture implementations use it to report a match.
func NewRequest(path string, params map[string]string, query map[string]Value) *Request {
	r := &Request{
		path:   path,
		params: make(map[string]string, len(params)),
		query:  make(map[string]Value, len(query)),
	}

	for k, v := range params {
		r.params[k] = v
	}
	for k, v := range query {
		r.query[k] = v
	}

	return r
}

// Path returns the canonical path that was matched.
func (r *Request) Path() string {
	return r.path
}

// Param returns the path param with the given name.
func (r *Request) Param(name string) (string, bool) {
	v, ok := r.params[name]
	return v, ok
}

// Params returns a copy of all path params.
func (r *Request) Params() map[string]string {
	return copyStrings(r.params)
}

// QueryString returns the raw query string, as given to the router.
func (r *Request) QueryString() string {
	return r.queryString
}

// QueryValue returns the query value stored under key.
func (r *Request) QueryValue(key string) (Value, bool) {
	v, ok := r.query[key]
	return v, ok
}

// Query returns a copy of the parsed query. It is never nil.
func (r *Request) Query() map[string]Value {
	query := make(map[string]Value, len(r.query))
	for k, v := range r.query {
		query[k] = v
	}

	return query
}

func (r *Request) mergeQuery(queryString string, query map[string]Value) {
	r.queryString = queryString

	if r.query == nil {
		r.query = make(map[string]Value, len(query))
	}

	for k, v := range query {
		r.query[k] = v
	}
}

// Value is a query parameter value: either a string, or a flag for a key
// given without '='.
type Value struct {
	str  string
	flag bool
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{str: s}
}

// FlagValue returns the Value of a key present without '='.
func FlagValue() Value {
	return Value{flag: true}
}

// IsFlag reports whether the key was given without a value.
func (v Value) IsFlag() bool {
	return v.flag
}

// String returns the value, or "true" for flags.
func (v Value) String() string {
	if v.flag {
		return "true"
	}

	return v.str
}

// MarshalJSON encodes flags as true and everything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.flag {
		return []byte("true"), nil
	}

	return json.Marshal(v.str)
}

func copyStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}

	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}
