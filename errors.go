package rnav

import (
	"errors"

	"github.com/rohanthewiz/rnav/core/rtr"
)

// ConfigError reports a malformed or conflicting route table. It is returned
// at build time only; resolution never fails with an error.
type ConfigError = rtr.ConfigError

// ConfigErrKind classifies a ConfigError.
type ConfigErrKind = rtr.ConfigErrKind

// Kinds raised while building a table.
const (
	ErrEmptyTable       = rtr.ErrEmptyTable
	ErrEmptyName        = rtr.ErrEmptyName
	ErrEmptyPattern     = rtr.ErrEmptyPattern
	ErrMalformedPattern = rtr.ErrMalformedPattern
	ErrEmptySegment     = rtr.ErrEmptySegment
	ErrEmptyParam       = rtr.ErrEmptyParam
	ErrDuplicateParam   = rtr.ErrDuplicateParam
	ErrDuplicateName    = rtr.ErrDuplicateName
	ErrDuplicatePattern = rtr.ErrDuplicatePattern
)

// Kinds raised outside the route table itself, by packages validating against it.
const (
	ErrMissingView   ConfigErrKind = "missing-view"
	ErrDuplicateView ConfigErrKind = "duplicate-view"
	ErrUnknownView   ConfigErrKind = "unknown-view"
	ErrDecode        ConfigErrKind = "decode"
)

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
