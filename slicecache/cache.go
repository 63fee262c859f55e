// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicecache memoizes interpolated slice grids so that cosmetic
// changes (palette, range, display mode) never re-trigger interpolation.
// A Cache is an explicit, injected object: construct one per viewer
// session rather than sharing hidden package state.
package slicecache

import (
	"container/list"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"cogentcore.org/fieldview/griddata"
	"cogentcore.org/fieldview/mesh"
)

// Key identifies one memoized slice: the file, the field within it, and
// the slice index. Everything downstream of the grid (palette, range,
// colorscale mode) is deliberately absent.
type Key struct {
	FileID     string
	Selector   mesh.Selector
	SliceIndex int
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%d", k.FileID, k.Selector, k.SliceIndex)
}

// ComputeFunc produces the grid and stats for a cache miss.
type ComputeFunc func() (*griddata.Grid, *griddata.Stats, error)

type entry struct {
	key   Key
	grid  *griddata.Grid
	stats *griddata.Stats
}

// Cache memoizes (Key) -> (Grid, Stats) with at most one computation per
// key: concurrent callers for the same key await the single in-flight
// computation instead of recomputing, so simultaneously rendered panels
// always observe results from one computation. Entries never expire by
// default; the underlying files are assumed immutable, and a replaced
// file requires an explicit Invalidate. An optional LRU capacity bounds
// growth for long-lived processes.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*list.Element // of *entry
	order    *list.List            // front = most recently used
	capacity int                   // 0 = unbounded
	group    singleflight.Group
}

// Option configures a [Cache].
type Option func(*Cache)

// WithCapacity bounds the cache to n entries with least-recently-used
// eviction. Capacity counts entries, not bytes: grids at a fixed
// resolution are uniform in size, so entry count is a faithful proxy.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		c.capacity = n
	}
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: map[Key]*list.Element{},
		order:   list.New(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetOrCompute returns the memoized grid and stats for key, running
// compute only if no computation for key has succeeded before. The first
// successful computation wins: later calls with different compute
// functions still return the first result. A failed computation is not
// cached, and its error is returned to every caller awaiting it.
func (c *Cache) GetOrCompute(key Key, compute ComputeFunc) (*griddata.Grid, *griddata.Stats, error) {
	if g, s, ok := c.lookup(key); ok {
		return g, s, nil
	}
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// A previous flight may have stored the entry between our
		// lookup and joining the group.
		if g, s, ok := c.lookup(key); ok {
			return &entry{key: key, grid: g, stats: s}, nil
		}
		g, s, err := compute()
		if err != nil {
			return nil, err
		}
		c.store(key, g, s)
		return &entry{key: key, grid: g, stats: s}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	e := v.(*entry)
	return e.grid, e.stats, nil
}

// Invalidate drops every entry for the given file, for when the
// underlying file has been replaced.
func (c *Cache) Invalidate(fileID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, el := range c.entries {
		if k.FileID == fileID {
			c.order.Remove(el)
			delete(c.entries, k)
		}
	}
}

// Remove drops a single entry.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) lookup(key Key) (*griddata.Grid, *griddata.Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return nil, nil, false
	}
	c.order.MoveToFront(el)
	e := el.Value.(*entry)
	return e.grid, e.stats, true
}

func (c *Cache) store(key Key, g *griddata.Grid, s *griddata.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		el.Value = &entry{key: key, grid: g, stats: s}
		return
	}
	c.entries[key] = c.order.PushFront(&entry{key: key, grid: g, stats: s})
	for c.capacity > 0 && len(c.entries) > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
}
