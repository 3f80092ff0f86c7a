// Package view maps the view IDs of a route table to concrete constructors.
//
// The registry is checked against the table when it is built, so a route can
// never resolve to a view nobody can construct.
package view

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rnav"
)

// Constructor builds the component for a matched route.
type Constructor func(res rnav.Result) element.Component

// Layout wraps a view component, e.g. in the page shell.
type Layout func(res rnav.Result, body element.Component) element.Component

// Entry binds a view ID to its constructor.
type Entry struct {
	ID  rnav.ViewID
	New Constructor
}

// Options configures a Registry.
type Options struct {
	// NotFound builds the component for unmatched paths. Defaults to a plain "Not Found" page body.
	NotFound Constructor
	// Layout, when set, wraps every component, including the not-found one.
	Layout Layout
}

// Registry is the indirection table from view ID to constructor.
// It is read-only after NewRegistry and safe for concurrent use.
type Registry struct {
	views map[rnav.ViewID]Constructor
	opts  Options
}

// NewRegistry validates entries against table:
// every view of the table needs exactly one constructor and every constructor
// must be used by the table. Problems are reported as a *rnav.ConfigError.
func NewRegistry(table *rnav.Table, opts Options, entries ...Entry) (*Registry, error) {
	views := make(map[rnav.ViewID]Constructor, len(entries))

	for i, entry := range entries {
		if entry.New == nil {
			return nil, &rnav.ConfigError{Kind: rnav.ErrMissingView, Index: i, Detail: "nil constructor for view " + string(entry.ID)}
		}
		if _, dup := views[entry.ID]; dup {
			return nil, &rnav.ConfigError{Kind: rnav.ErrDuplicateView, Index: i, Detail: "view " + string(entry.ID) + " registered twice"}
		}
		views[entry.ID] = entry.New
	}

	used := make(map[rnav.ViewID]struct{}, len(views))
	for i, def := range table.Routes() {
		if _, ok := views[def.View]; !ok {
			return nil, &rnav.ConfigError{Kind: rnav.ErrMissingView, Index: i, Route: def.Name, Pattern: def.Pattern,
				Detail: "no constructor for view " + string(def.View)}
		}
		used[def.View] = struct{}{}
	}

	for i, entry := range entries {
		if _, ok := used[entry.ID]; !ok {
			return nil, &rnav.ConfigError{Kind: rnav.ErrUnknownView, Index: i, Detail: "view " + string(entry.ID) + " is not used by any route"}
		}
	}

	if opts.NotFound == nil {
		opts.NotFound = func(res rnav.Result) element.Component { return NotFoundBody{Path: res.Path} }
	}

	return &Registry{views: views, opts: opts}, nil
}

// Component returns the component for res: the view's for a match, the
// not-found one otherwise. A match on a view the registry does not know
// (a table swapped in after the registry was built) also gets the not-found one.
func (r *Registry) Component(res rnav.Result) element.Component {
	build := r.opts.NotFound
	if res.Matched {
		if ctor, ok := r.views[res.View]; ok {
			build = ctor
		}
	}

	comp := build(res)
	if r.opts.Layout != nil {
		comp = r.opts.Layout(res, comp)
	}
	return comp
}

// Has reports whether a constructor is registered for id.
func (r *Registry) Has(id rnav.ViewID) bool {
	_, ok := r.views[id]
	return ok
}

// Render renders the component for res to HTML.
func (r *Registry) Render(res rnav.Result) string {
	b := element.NewBuilder()
	element.RenderComponents(b, r.Component(res))
	return b.String()
}

// NotFoundBody is the default not-found component.
type NotFoundBody struct {
	Path string
}

func (n NotFoundBody) Render(b *element.Builder) any {
	b.H1().T("Not Found")
	b.P().T("Nothing lives at ", n.Path)
	return nil
}
