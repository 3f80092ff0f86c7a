// Package rnav resolves client-side navigation paths against an ordered route table.
//
// A Table is built once from RouteDefs and never mutated. Resolving a path walks
// the table in declaration order and returns the first route whose pattern fits,
// together with the values bound to its :param segments. An unmatched path is
// a normal NotFound result, never an error; malformed tables fail at build time
// with a *ConfigError.
//
//	table := rnav.MustTable(
//		rnav.RouteDef{Pattern: "/", Name: "home", View: "HomeView"},
//		rnav.RouteDef{Pattern: "/books/:id", Name: "book-detail", View: "BookDetailView"},
//	)
//	res := table.Resolve("/books/42") // res.View == "BookDetailView", res.Params.Get("id") == "42"
package rnav

import (
	"github.com/rohanthewiz/rnav/core/rtr"
)

// ViewID is an opaque reference to a renderable view. The resolver never interprets it.
type ViewID string

// RouteDef declares one route of a table.
type RouteDef struct {
	Pattern string `yaml:"path"`
	Name    string `yaml:"name"`
	View    ViewID `yaml:"view"`
}

// Table is an immutable, ordered route table. Safe for concurrent use.
type Table struct {
	routes *rtr.Table[ViewID]
}

// NewTable validates the definitions and compiles them in declaration order.
// On any problem it returns a nil table and a *ConfigError.
func NewTable(defs ...RouteDef) (*Table, error) {
	routes := make([]rtr.Route[ViewID], 0, len(defs))
	for _, def := range defs {
		routes = append(routes, rtr.Route[ViewID]{Name: def.Name, Pattern: def.Pattern, Data: def.View})
	}

	compiled, err := rtr.NewTable(routes...)
	if err != nil {
		return nil, err
	}
	return &Table{routes: compiled}, nil
}

// MustTable is NewTable for static tables declared in main; it panics on a configuration error.
func MustTable(defs ...RouteDef) *Table {
	table, err := NewTable(defs...)
	if err != nil {
		panic(err)
	}
	return table
}

// Resolve matches path against the table. See Resolve.
func (t *Table) Resolve(path string) Result {
	return Resolve(t, path)
}

// Resolve matches path against table, first match wins.
// The path is expected to be normalized already (see Normalize).
// A nil table resolves every path to NotFound.
func Resolve(table *Table, path string) Result {
	if table == nil {
		return NotFound(path)
	}

	var params Params
	idx := table.routes.LookupNoAlloc(path, func(key string, value string) {
		params = append(params, rtr.Parameter{Key: key, Value: value})
	})
	if idx < 0 {
		return NotFound(path)
	}

	route := table.routes.Route(idx)
	return Result{
		Matched: true,
		Name:    route.Name,
		View:    route.Data,
		Pattern: route.Pattern,
		Path:    path,
		Params:  params,
	}
}

// Len returns the number of routes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.routes.Len()
}

// Routes returns the definitions in declaration order.
func (t *Table) Routes() []RouteDef {
	if t == nil {
		return nil
	}

	routes := t.routes.Routes()
	defs := make([]RouteDef, 0, len(routes))
	for _, r := range routes {
		defs = append(defs, RouteDef{Pattern: r.Pattern, Name: r.Name, View: r.Data})
	}
	return defs
}

// Lookup finds a definition by route name.
func (t *Table) Lookup(name string) (RouteDef, bool) {
	if t == nil {
		return RouteDef{}, false
	}

	r, ok := t.routes.ByName(name)
	if !ok {
		return RouteDef{}, false
	}
	return RouteDef{Pattern: r.Pattern, Name: r.Name, View: r.Data}, true
}

// ListRoutes returns the routes in a printable form.
func (t *Table) ListRoutes() []rtr.RouteList {
	if t == nil {
		return nil
	}
	return t.routes.ListRoutes()
}

// Views returns every distinct view referenced by the table, in first-use order.
func (t *Table) Views() []ViewID {
	var views []ViewID
	seen := make(map[ViewID]struct{}, t.Len())

	for _, def := range t.Routes() {
		if _, ok := seen[def.View]; ok {
			continue
		}
		seen[def.View] = struct{}{}
		views = append(views, def.View)
	}
	return views
}
