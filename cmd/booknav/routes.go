package main

import (
	"github.com/rohanthewiz/rnav"
)

const (
	HomeView       rnav.ViewID = "HomeView"
	SearchView     rnav.ViewID = "SearchView"
	BooksView      rnav.ViewID = "BooksView"
	BookDetailView rnav.ViewID = "BookDetailView"
)

// bookRoutes is the application's route table. /books must stay ahead of
// /books/:id; declaration order decides between overlapping patterns.
func bookRoutes() []rnav.RouteDef {
	return []rnav.RouteDef{
		{Pattern: "/", Name: "home", View: HomeView},
		{Pattern: "/search", Name: "search", View: SearchView},
		{Pattern: "/books", Name: "books", View: BooksView},
		{Pattern: "/books/:id", Name: "book-detail", View: BookDetailView},
	}
}
