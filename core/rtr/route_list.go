package rtr

// RouteList represents a compiled route for debugging and inspection purposes.
// Tables expose their routes in this form so they can be printed or compared
// without access to the route data type.
//
// Fields:
//   - Name: the unique route name (e.g., "book-detail")
//   - Pattern: the path pattern (e.g., "/books/:id")
//   - HandlerRef: string representation of the route data (for debugging)
type RouteList struct {
	Name       string
	Pattern    string
	HandlerRef string
}
