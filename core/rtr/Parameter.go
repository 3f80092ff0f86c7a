package rtr

// Parameter represents a value captured by a parameter segment of a route pattern.
//
// Example:
//	Pattern: /books/:id/editions/:edition
//	Path:    /books/42/editions/2
//	Result:  []Parameter{{Key: "id", Value: "42"}, {Key: "edition", Value: "2"}}
//
// The slice order follows the pattern, left to right.
type Parameter struct {
	Key   string
	Value string
}
