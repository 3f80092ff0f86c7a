package rnav

import (
	"github.com/rohanthewiz/rnav/core/rtr"
)

// Params holds the values bound by parameter segments, in pattern order.
type Params []rtr.Parameter

// Get returns the value bound to name, or "" if the route has no such parameter.
func (p Params) Get(name string) string {
	value, _ := p.Lookup(name)
	return value
}

// Lookup returns the value bound to name and whether it was bound.
func (p Params) Lookup(name string) (string, bool) {
	for _, param := range p {
		if param.Key == name {
			return param.Value, true
		}
	}
	return "", false
}

// Map copies the parameters into a map. It is never nil.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}
	return m
}

// Result is the outcome of resolving one path: either Matched, carrying the
// route's view and parameters, or NotFound.
// Results are built fresh per call and are not shared with the table.
type Result struct {
	Matched bool
	Name    string // route name, empty when not matched
	View    ViewID
	Pattern string
	Path    string // the path that was resolved
	Params  Params
}

// NotFound is the result for a path no route matches.
func NotFound(path string) Result {
	return Result{Path: path}
}

// Param is shorthand for r.Params.Get(name).
func (r Result) Param(name string) string {
	return r.Params.Get(name)
}

// String renders the result for logs and the command line.
func (r Result) String() string {
	if !r.Matched {
		return "NotFound(" + r.Path + ")"
	}

	s := "Matched(" + string(r.View) + ", {"
	for i, param := range r.Params {
		if i > 0 {
			s += ", "
		}
		s += param.Key + ": " + param.Value
	}
	return s + "})"
}
