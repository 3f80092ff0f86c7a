package main

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rnav"
	"github.com/rohanthewiz/rnav/view"
	"github.com/rohanthewiz/serr"
)

// pageLayout is the page shell shared by every view
type pageLayout struct {
	Title string
	Nav   []navLink
	Body  element.Component
}

type navLink struct {
	Href  string
	Label string
}

func (p pageLayout) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: Georgia, serif; max-width: 860px; margin: 0 auto; padding: 20px; }
				nav a { margin-right: 12px; }
				.muted { color: #666; }
			`),
		),
		b.Body().R(
			b.DivClass("nav").R(
				func() any {
					for _, link := range p.Nav {
						b.A("href", link.Href).T(link.Label)
					}
					return nil
				}(),
			),
			b.Hr(),
			element.RenderComponents(b, p.Body),
		),
	)
	return nil
}

type homePage struct{}

func (homePage) Render(b *element.Builder) any {
	b.H1().T("Library")
	b.P().T("Browse the collection or search the full text of every book.")
	return nil
}

type searchPage struct {
	Action string
}

func (s searchPage) Render(b *element.Builder) any {
	b.H1().T("Search")
	b.Form("method", "GET", "action", s.Action).R(
		b.Label().R(
			b.T("Words: "),
			b.Input("type", "text", "name", "q", "required", "required"),
		),
		b.Button("type", "submit").T("Search"),
	)
	return nil
}

type booksPage struct{}

func (booksPage) Render(b *element.Builder) any {
	b.H1().T("Books")
	b.P().T("All indexed books, ranked by PageRank.")
	return nil
}

type bookDetailPage struct {
	ID   string
	Back string
}

func (d bookDetailPage) Render(b *element.Builder) any {
	b.H1().T("Book ", d.ID)
	b.DivClass("muted").T("Book id: ", d.ID)
	b.P().R(
		b.A("href", d.Back).T("Back to books"),
	)
	return nil
}

type notFoundPage struct {
	Path string
	Home string
}

func (n notFoundPage) Render(b *element.Builder) any {
	b.H1().T("Page not found")
	b.P().T("Nothing here at ", n.Path)
	b.P().R(
		b.A("href", n.Home).T("Go home"),
	)
	return nil
}

// navRoutes are the routes linked from every page, in menu order.
var navRoutes = []struct {
	Name  string
	Label string
}{
	{Name: "home", Label: "Home"},
	{Name: "search", Label: "Search"},
	{Name: "books", Label: "Books"},
}

// newViews builds the view registry for table. Links are produced from route
// names, so they follow the table if its patterns change. A table lacking one
// of the linked route names is rejected.
func newViews(table *rnav.Table, base string) (*view.Registry, error) {
	links := make(map[string]string, len(navRoutes))

	reg, err := view.NewRegistry(table,
		view.Options{
			NotFound: func(res rnav.Result) element.Component {
				return notFoundPage{Path: res.Path, Home: links["home"]}
			},
			Layout: func(res rnav.Result, body element.Component) element.Component {
				title := "Library"
				if res.Matched {
					title += " | " + res.Name
				}
				nav := make([]navLink, 0, len(navRoutes))
				for _, r := range navRoutes {
					nav = append(nav, navLink{Href: links[r.Name], Label: r.Label})
				}
				return pageLayout{Title: title, Nav: nav, Body: body}
			},
		},
		view.Entry{ID: HomeView, New: func(rnav.Result) element.Component { return homePage{} }},
		view.Entry{ID: SearchView, New: func(rnav.Result) element.Component {
			return searchPage{Action: links["search"]}
		}},
		view.Entry{ID: BooksView, New: func(rnav.Result) element.Component { return booksPage{} }},
		view.Entry{ID: BookDetailView, New: func(res rnav.Result) element.Component {
			return bookDetailPage{ID: res.Param("id"), Back: links["books"]}
		}},
	)
	if err != nil {
		return nil, err
	}

	for _, r := range navRoutes {
		path, err := table.Href(r.Name, nil)
		if err != nil {
			return nil, serr.Wrap(err, "building navigation links")
		}
		links[r.Name] = rnav.JoinBase(base, path)
	}

	return reg, nil
}
