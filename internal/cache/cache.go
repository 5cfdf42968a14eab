// Package cache memoizes compiled mappers per (source, destination) type pair.
//
// The table has two levels, source type then destination type, both sync.Map.
// Inserts are LoadOrStore, so concurrent first requests for the same pair may
// each build a candidate but exactly one is kept and returned to everybody.
// No lock is held while building. Entries are never evicted.
package cache

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"automap/internal/common"
	"automap/internal/executor"
)

// ErrNilType is returned when either side of a pair is nil.
var ErrNilType = errors.New("automap(cache): nil reflect.Type provided")

// BuildFunc produces the mapper for a type pair on a cache miss.
// It must be free of side effects on shared state: its result may be discarded.
type BuildFunc func(src, dst reflect.Type) (*executor.Mapper, error)

// Cache is the process-lifetime mapper table.
type Cache struct {
	build  BuildFunc
	logger *zap.Logger

	// tables maps source reflect.Type to *sync.Map of destination reflect.Type -> *executor.Mapper.
	tables sync.Map

	size     atomic.Int64
	builds   atomic.Int64
	discards atomic.Int64
}

// New creates an empty Cache. A nil logger logs nothing.
func New(build BuildFunc, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Cache{build: build, logger: logger}
}

// GetOrBuild returns the cached mapper for (src, dst), building it on first use.
// Build errors are returned and nothing is cached.
func (c *Cache) GetOrBuild(src, dst reflect.Type) (*executor.Mapper, error) {
	if src == nil || dst == nil {
		return nil, ErrNilType
	}

	inner := c.table(src)
	if m, ok := inner.Load(dst); ok {
		return m.(*executor.Mapper), nil
	}

	built, err := c.build(src, dst)
	c.builds.Add(1)

	if err != nil {
		c.logger.Debug("mapper build failed",
			zap.String("source", common.TypeName(src)),
			zap.String("target", common.TypeName(dst)),
			zap.Error(err),
		)

		return nil, err
	}

	actual, loaded := inner.LoadOrStore(dst, built)
	if loaded {
		c.discards.Add(1)
		c.logger.Debug("discarded redundant mapper build",
			zap.String("source", common.TypeName(src)),
			zap.String("target", common.TypeName(dst)),
		)

		return actual.(*executor.Mapper), nil
	}

	c.size.Add(1)
	c.logger.Debug("mapper cached",
		zap.String("source", common.TypeName(src)),
		zap.String("target", common.TypeName(dst)),
		zap.Int("copy", len(built.Copied())),
		zap.Int("ignore", len(built.Ignored())),
	)

	return built, nil
}

// Lookup returns the cached mapper for (src, dst) without building.
func (c *Cache) Lookup(src, dst reflect.Type) (*executor.Mapper, bool) {
	t, ok := c.tables.Load(src)
	if !ok {
		return nil, false
	}

	m, ok := t.(*sync.Map).Load(dst)
	if !ok {
		return nil, false
	}

	return m.(*executor.Mapper), true
}

// Range calls fn for every cached mapper until fn returns false. Order is unspecified.
func (c *Cache) Range(fn func(m *executor.Mapper) bool) {
	c.tables.Range(func(_, t any) bool {
		next := true

		t.(*sync.Map).Range(func(_, m any) bool {
			next = fn(m.(*executor.Mapper))
			return next
		})

		return next
	})
}

// Len returns the number of cached mappers.
func (c *Cache) Len() int {
	return int(c.size.Load())
}

// Builds returns how many times the build function ran.
func (c *Cache) Builds() int64 {
	return c.builds.Load()
}

// Discards returns how many built mappers lost the insert race.
func (c *Cache) Discards() int64 {
	return c.discards.Load()
}

// table returns the inner table for src, inserting an empty one atomically.
func (c *Cache) table(src reflect.Type) *sync.Map {
	if t, ok := c.tables.Load(src); ok {
		return t.(*sync.Map)
	}

	t, _ := c.tables.LoadOrStore(src, &sync.Map{})

	return t.(*sync.Map)
}
