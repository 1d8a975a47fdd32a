// Package state holds the navigation state of a client application,
// derived from the routes it matches.
package state

import "github.com/navkit/router"

// Views rendered by the application.
const (
	ViewSearch = "search"
	ViewMovie  = "movie"
)

// Names of the request values FromRoute reads.
const (
	QueryParam = "query"
	MovieParam = "id"
)

// Results is one page of search results.
type Results struct {
	Items        []string
	TotalResults int
}

// State is the current navigation state. It is a value: the With methods
// return updated copies.
type State struct {
	Path        string
	View        string
	Query       string
	Suggestions Results
	Results     Results
	IsFetching  bool
	MovieID     string
}

// FromRoute returns the state for a matched route. The search query is read
// from the QueryParam query value and the movie from the MovieParam path
// param; both are left empty when absent.
func FromRoute(route router.Route) State {
	s := State{
		View: route.View(),
	}

	req := route.Request()
	if req == nil {
		return s
	}

	s.Path = req.Path()
	s.MovieID, _ = req.Param(MovieParam)

	if v, ok := req.QueryValue(QueryParam); ok && !v.IsFlag() {
		s.Query = v.String()
	}

	return s
}

func (s State) IsSearchView() bool {
	return s.View == ViewSearch
}

func (s State) IsMovieView() bool {
	return s.View == ViewMovie
}

func (s State) HasSuggestions() bool {
	return s.Suggestions.TotalResults > 0
}

func (s State) HasResults() bool {
	return s.Results.TotalResults > 0
}

func (s State) HasQuery() bool {
	return s.Query != ""
}

// WithFetching returns a copy of s with the fetching flag set.
func (s State) WithFetching(fetching bool) State {
	s.IsFetching = fetching
	return s
}

// WithResults returns a copy of s holding the given results. Fetching is over.
func (s State) WithResults(results Results) State {
	s.Results = copyResults(results)
	s.IsFetching = false
	return s
}

// WithSuggestions returns a copy of s holding the given suggestions.
func (s State) WithSuggestions(suggestions Results) State {
	s.Suggestions = copyResults(suggestions)
	return s
}

func copyResults(r Results) Results {
	if r.Items != nil {
		r.Items = append([]string(nil), r.Items...)
	}

	return r
}
