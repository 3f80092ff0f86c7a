package rtr

import (
	"strconv"
	"strings"
)

// ConfigErrKind classifies a route table configuration problem.
type ConfigErrKind string

const (
	ErrEmptyTable       ConfigErrKind = "empty-table"
	ErrEmptyName        ConfigErrKind = "empty-name"
	ErrEmptyPattern     ConfigErrKind = "empty-pattern"
	ErrMalformedPattern ConfigErrKind = "malformed-pattern"
	ErrEmptySegment     ConfigErrKind = "empty-segment"
	ErrEmptyParam       ConfigErrKind = "empty-param"
	ErrDuplicateParam   ConfigErrKind = "duplicate-param"
	ErrDuplicateName    ConfigErrKind = "duplicate-name"
	ErrDuplicatePattern ConfigErrKind = "duplicate-pattern"
)

// ConfigError is returned when a route table cannot be built.
// A table is never produced alongside a ConfigError.
type ConfigError struct {
	Kind    ConfigErrKind
	Index   int // declaration index of the offending route, -1 when not route specific
	Route   string
	Pattern string
	Detail  string
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("route config: ")
	sb.WriteString(string(e.Kind))

	if e.Index >= 0 {
		sb.WriteString(" at route #")
		sb.WriteString(strconv.Itoa(e.Index))
	}
	if e.Route != "" {
		sb.WriteString(" name=")
		sb.WriteString(strconv.Quote(e.Route))
	}
	if e.Pattern != "" {
		sb.WriteString(" pattern=")
		sb.WriteString(strconv.Quote(e.Pattern))
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}
