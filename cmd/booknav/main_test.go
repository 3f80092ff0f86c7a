package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rnav"
)

func TestBookRoutes(t *testing.T) {
	table, err := rnav.NewTable(bookRoutes()...)
	assert.Nil(t, err)

	assert.Equal(t, table.Resolve("/").String(), "Matched(HomeView, {})")
	assert.Equal(t, table.Resolve("/search").String(), "Matched(SearchView, {})")
	assert.Equal(t, table.Resolve("/books").String(), "Matched(BooksView, {})")
	assert.Equal(t, table.Resolve("/books/42").String(), "Matched(BookDetailView, {id: 42})")
	assert.Equal(t, table.Resolve("/unknown").String(), "NotFound(/unknown)")
}

func TestViewsRender(t *testing.T) {
	table := rnav.MustTable(bookRoutes()...)
	views, err := newViews(table, "/library")
	assert.Nil(t, err)

	html := views.Render(table.Resolve("/books/42"))
	assert.True(t, strings.Contains(html, "Book 42"))
	assert.True(t, strings.Contains(html, `href="/library/books"`))
	assert.True(t, strings.Contains(html, "Library | book-detail"))

	html = views.Render(table.Resolve("/search"))
	assert.True(t, strings.Contains(html, `action="/library/search"`))

	html = views.Render(table.Resolve("/nowhere"))
	assert.True(t, strings.Contains(html, "Page not found"))
}

func TestRunResolve(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--resolve", "/books/42?tab=words", "--resolve", "/unknown"}, &out)
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, len(lines), 2)
	assert.True(t, strings.Contains(lines[0], "Matched(BookDetailView, {id: 42})"))
	assert.True(t, strings.Contains(lines[1], "NotFound(/unknown)"))
}

func TestRunResolveWithRoutesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	doc := `routes:
  - {path: /, name: home, view: HomeView}
  - {path: /find, name: search, view: SearchView}
  - {path: /catalog, name: books, view: BooksView}
  - {path: /catalog/:id, name: book-detail, view: BookDetailView}
`
	assert.Nil(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	err := run([]string{"--routes", path, "--resolve", "/catalog/7", "--resolve", "/books"}, &out)
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, len(lines), 2)
	assert.True(t, strings.Contains(lines[0], "Matched(BookDetailView, {id: 7})"))
	assert.True(t, strings.Contains(lines[1], "NotFound(/books)"))
}

func TestRunRoutesFileMissingViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	doc := "routes:\n  - {path: /, name: home, view: HomeView}\n  - {path: /books/:id, name: book-detail, view: BookDetailView}\n"
	assert.Nil(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	err := run([]string{"--routes", path, "--resolve", "/books/7", "--resolve", "/books"}, &out)

	// The registry refuses constructors the loaded table never uses
	assert.True(t, err != nil)
	assert.True(t, rnav.IsConfigError(err))
	assert.Equal(t, out.Len(), 0)
}

func TestRunRoutesFileMissingNavRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	doc := `routes:
  - {path: /, name: home, view: HomeView}
  - {path: /search, name: search, view: SearchView}
  - {path: /books, name: catalog, view: BooksView}
  - {path: /books/:id, name: book-detail, view: BookDetailView}
`
	assert.Nil(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	err := run([]string{"--routes", path, "--resolve", "/books"}, &out)
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "no route with that name"))
	assert.False(t, rnav.IsConfigError(err))
	assert.Equal(t, out.Len(), 0)
}

func TestNewViewsNeedsNavRoutes(t *testing.T) {
	table := rnav.MustTable(
		rnav.RouteDef{Pattern: "/", Name: "start", View: HomeView},
		rnav.RouteDef{Pattern: "/search", Name: "search", View: SearchView},
		rnav.RouteDef{Pattern: "/books", Name: "books", View: BooksView},
		rnav.RouteDef{Pattern: "/books/:id", Name: "book-detail", View: BookDetailView},
	)

	views, err := newViews(table, "/")
	assert.True(t, err != nil)
	assert.True(t, views == nil)
}

func TestRunBadFlag(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--no-such-flag"}, &out)
	assert.True(t, err != nil)

	err = run([]string{"stray"}, &out)
	assert.True(t, err != nil)
}
