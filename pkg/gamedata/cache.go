package gamedata

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CacheState is the lifecycle stage of one cache slot.
type CacheState int

const (
	CacheEmpty CacheState = iota
	CachePopulated
	CacheInvalidated
)

func (s CacheState) String() string {
	switch s {
	case CacheEmpty:
		return "empty"
	case CachePopulated:
		return "populated"
	case CacheInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

const (
	tablesFlightKey = "tables"
	traitsFlightKey = "traits"
)

// Cache holds the most recently loaded game tables and trait translations.
// Each slot is either empty, populated with a complete value, or
// invalidated; a partial value is never stored.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu sync.RWMutex

	tables      *GameTableMap
	tablesState CacheState

	traits      TraitLocalesMap
	traitsState CacheState

	flight singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// StoreTables replaces the cached tables with m.
// Returns ErrIncomplete, leaving the cache untouched, if m does not cover
// every table kind for exactly locales.
func (c *Cache) StoreTables(m *GameTableMap, locales []GameLocale) error {
	if err := m.Check(locales); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = m
	c.tablesState = CachePopulated
	return nil
}

// StoreTraits replaces the cached trait translations with m.
// Returns ErrIncomplete, leaving the cache untouched, if m does not hold
// one entry per translated locale.
func (c *Cache) StoreTraits(m TraitLocalesMap, locales []TranslatedLocale) error {
	if err := m.Check(locales); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.traits = m
	c.traitsState = CachePopulated
	return nil
}

// Tables returns the cached tables, if populated.
func (c *Cache) Tables() (*GameTableMap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tables, c.tablesState == CachePopulated
}

// Traits returns the cached trait translations, if populated.
func (c *Cache) Traits() (TraitLocalesMap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.traits, c.traitsState == CachePopulated
}

// TablesState reports the lifecycle stage of the tables slot.
func (c *Cache) TablesState() CacheState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tablesState
}

// TraitsState reports the lifecycle stage of the traits slot.
func (c *Cache) TraitsState() CacheState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.traitsState
}

// Invalidate drops both cached values. Populated slots become invalidated;
// empty slots stay empty.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tablesState == CachePopulated {
		c.tablesState = CacheInvalidated
	}
	c.tables = nil
	if c.traitsState == CachePopulated {
		c.traitsState = CacheInvalidated
	}
	c.traits = nil
}

// LoadTables returns the cached tables or, when the slot is not populated,
// calls load and stores its result. Concurrent callers share a single
// in-flight load, which is not cancelled by the context of the caller that
// started it. A failed load leaves the slot unchanged.
func (c *Cache) LoadTables(ctx context.Context, locales []GameLocale, load func(context.Context) (*GameTableMap, error)) (*GameTableMap, error) {
	if m, ok := c.Tables(); ok {
		return m, nil
	}

	v, err := c.do(ctx, tablesFlightKey, func() (interface{}, error) {
		if m, ok := c.Tables(); ok {
			return m, nil
		}
		m, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if err := c.StoreTables(m, locales); err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*GameTableMap), nil
}

// LoadTraits is LoadTables for the trait translation slot.
func (c *Cache) LoadTraits(ctx context.Context, locales []TranslatedLocale, load func(context.Context) (TraitLocalesMap, error)) (TraitLocalesMap, error) {
	if m, ok := c.Traits(); ok {
		return m, nil
	}

	v, err := c.do(ctx, traitsFlightKey, func() (interface{}, error) {
		if m, ok := c.Traits(); ok {
			return m, nil
		}
		m, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if err := c.StoreTraits(m, locales); err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(TraitLocalesMap), nil
}

// do runs fn under key and stops waiting when ctx is done. The shared load
// keeps running for the other callers and still populates the slot.
func (c *Cache) do(ctx context.Context, key string, fn func() (interface{}, error)) (interface{}, error) {
	ch := c.flight.DoChan(key, fn)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
