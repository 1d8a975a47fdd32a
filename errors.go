package router

import "errors"

// Errors returned by Router. Match them with errors.Is.
var (
	ErrInvalidRoutes  = errors.New("invalid routes")
	ErrInvalidPath    = errors.New("invalid path")
	ErrNotFound       = errors.New("no matching route found")
	ErrNotInitialised = errors.New("router not initialised")
)
