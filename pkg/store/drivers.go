// Package store wires the record store implementations into a source.Registry.
package store

import (
	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb/records"
	"github.com/de-tools/growth-scorecard/pkg/store/seed"
)

// NewRegistry registers the memory driver, seeded with windowDays of demo metrics ending at
// the clock's now, and the duckdb driver, whose dsn is the database path.
func NewRegistry(c clock.Clock, windowDays int) (source.Registry, error) {
	c = clock.OrSystem(c)
	registry := source.NewRegistry()

	if err := registry.Register(seed.DriverName, seed.Factory(c.Now, windowDays)); err != nil {
		return nil, err
	}
	if err := registry.Register(duckdb.DriverName, records.Factory); err != nil {
		return nil, err
	}
	return registry, nil
}
