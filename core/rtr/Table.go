package rtr

import (
	"fmt"
)

// Route is a route definition as handed to NewTable.
type Route[T any] struct {
	Name    string
	Pattern string
	Data    T
}

// compiledRoute is a validated route with its pattern split into segments.
type compiledRoute[T any] struct {
	Route[T]
	segments []segment
	hasParam bool
}

// Table is an ordered, immutable route table with first-match-wins lookup.
// Declaration order is the contract: when two patterns fit the same path,
// the one added first wins.
//
// Literal-only patterns are also indexed by exact path, the same trick rweb
// uses with its hash router in front of the radix tree. The index never
// changes the outcome of a lookup, parametrized routes declared before a
// literal hit are still tried first.
type Table[T any] struct {
	routes  []compiledRoute[T]
	literal map[string]int // literal pattern -> declaration index
	params  []int          // declaration indices of parametrized routes, ascending
	names   map[string]int
}

// NewTable validates and compiles the routes in the order given.
// Any problem fails the whole table with a *ConfigError.
func NewTable[T any](routes ...Route[T]) (*Table[T], error) {
	if len(routes) == 0 {
		return nil, &ConfigError{Kind: ErrEmptyTable, Index: -1, Detail: "at least one route is required"}
	}

	table := &Table[T]{
		routes:  make([]compiledRoute[T], 0, len(routes)),
		literal: make(map[string]int, len(routes)),
		names:   make(map[string]int, len(routes)),
	}
	keys := make(map[string]int, len(routes))

	for i, route := range routes {
		if route.Name == "" {
			return nil, &ConfigError{Kind: ErrEmptyName, Index: i, Pattern: route.Pattern}
		}
		if prev, dup := table.names[route.Name]; dup {
			return nil, &ConfigError{Kind: ErrDuplicateName, Index: i, Route: route.Name, Pattern: route.Pattern,
				Detail: fmt.Sprintf("name already used by route #%d", prev)}
		}

		segments, cfgErr := parsePattern(route.Pattern)
		if cfgErr != nil {
			cfgErr.Index, cfgErr.Route, cfgErr.Pattern = i, route.Name, route.Pattern
			return nil, cfgErr
		}

		key := patternKey(segments)
		if prev, dup := keys[key]; dup {
			return nil, &ConfigError{Kind: ErrDuplicatePattern, Index: i, Route: route.Name, Pattern: route.Pattern,
				Detail: fmt.Sprintf("unreachable, shadowed by %q (route #%d)", routes[prev].Pattern, prev)}
		}
		keys[key] = i

		compiled := compiledRoute[T]{Route: route, segments: segments}
		for _, seg := range segments {
			if seg.isParam {
				compiled.hasParam = true
				break
			}
		}

		if compiled.hasParam {
			table.params = append(table.params, i)
		} else {
			table.literal[route.Pattern] = i
		}

		table.names[route.Name] = i
		table.routes = append(table.routes, compiled)
	}

	return table, nil
}

// Lookup finds the first route matching path and collects its parameters.
// The parameter slice is only allocated when the matched route has parameters.
func (t *Table[T]) Lookup(path string) (Route[T], []Parameter, bool) {
	var params []Parameter

	idx := t.LookupNoAlloc(path, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})
	if idx < 0 {
		return Route[T]{}, nil, false
	}

	return t.routes[idx].Route, params, true
}

// LookupNoAlloc returns the declaration index of the first route matching path,
// or -1. Parameters of the matched route are passed to addParameter in pattern order.
func (t *Table[T]) LookupNoAlloc(path string, addParameter func(key string, value string)) int {
	if t == nil {
		return -1
	}

	// Everything declared at or after a literal hit can be skipped
	limit := len(t.routes)
	hit, isLiteral := t.literal[path]
	if isLiteral {
		limit = hit
	}

	for _, idx := range t.params {
		if idx >= limit {
			break
		}

		route := &t.routes[idx]
		if matchSegments(route.segments, path, nil) {
			matchSegments(route.segments, path, addParameter)
			return idx
		}
	}

	if isLiteral {
		return hit
	}
	return -1
}

// Route returns the route at the given declaration index.
func (t *Table[T]) Route(idx int) Route[T] {
	return t.routes[idx].Route
}

// ByName finds a route by its unique name.
func (t *Table[T]) ByName(name string) (Route[T], bool) {
	idx, ok := t.names[name]
	if !ok {
		return Route[T]{}, false
	}
	return t.routes[idx].Route, true
}

// ParamNames lists the parameter names of the named route in pattern order.
func (t *Table[T]) ParamNames(name string) ([]string, bool) {
	idx, ok := t.names[name]
	if !ok {
		return nil, false
	}

	var names []string
	for _, seg := range t.routes[idx].segments {
		if seg.isParam {
			names = append(names, seg.value)
		}
	}
	return names, true
}

// Len returns the number of routes.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.routes)
}

// Routes returns a copy of the routes in declaration order.
func (t *Table[T]) Routes() []Route[T] {
	routes := make([]Route[T], 0, t.Len())
	if t == nil {
		return routes
	}
	for _, r := range t.routes {
		routes = append(routes, r.Route)
	}
	return routes
}

// ListRoutes returns the routes in declaration order for printing and debugging.
func (t *Table[T]) ListRoutes() (routes []RouteList) {
	if t == nil {
		return
	}
	for _, r := range t.routes {
		routes = append(routes, RouteList{Name: r.Name, Pattern: r.Pattern, HandlerRef: fmt.Sprintf("%v", r.Data)})
	}
	return
}
