package rnav

import (
	"strconv"
	"sync/atomic"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Resolver holds the current route table behind an atomic pointer.
// Resolve never locks; Swap and Rebuild install a whole new table, so readers
// always see either the old table or the new one, never a mix.
type Resolver struct {
	table atomic.Pointer[Table]
}

// NewResolver returns a resolver serving table. A nil table resolves everything to NotFound.
func NewResolver(table *Table) *Resolver {
	r := &Resolver{}
	r.table.Store(table)
	return r
}

// Resolve matches path against the current table.
func (r *Resolver) Resolve(path string) Result {
	return Resolve(r.table.Load(), path)
}

// Table returns the table currently installed.
func (r *Resolver) Table() *Table {
	return r.table.Load()
}

// Swap installs table and returns the one it replaced.
func (r *Resolver) Swap(table *Table) (old *Table) {
	return r.table.Swap(table)
}

// Rebuild builds a table from defs and installs it.
// If the definitions are invalid the current table stays in place and the
// *ConfigError is returned wrapped with context.
func (r *Resolver) Rebuild(defs ...RouteDef) error {
	table, err := NewTable(defs...)
	if err != nil {
		logger.LogErr(err, "route table rebuild rejected, keeping current table")
		return serr.Wrap(err, "route table rebuild")
	}

	old := r.table.Swap(table)
	logger.Info("route table rebuilt", "routes", strconv.Itoa(table.Len()), "previous", strconv.Itoa(old.Len()))
	return nil
}
