// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texcache keeps per-wall texture results across frames.
//
// The cache has two slots. Segments stores the exposed runs computed by the
// segment engine; Sprites stores the placed sprites derived from them. Each
// slot tracks whether it is dirty and for which walls. RecomputeIfDirty
// refreshes Segments before Sprites, and any segment change marks every
// wall's sprites dirty, because moving one wall can shift the runs and
// corner flags of its neighbors.
//
// Typical frame:
//
//	tc := texcache.New(walls, sprite.NewResolver(catalog, store))
//	tc.MarkAllDirty(texcache.Segments)
//	...
//	tc.Draw(h, func(s sprite.Sprite) { canvas.Draw(s) })
//
// RecomputeIfDirty, Get and Draw must be called from one goroutine.
// MarkDirty and MarkAllDirty may be called from any goroutine, such as an
// asset loader's completion callback.
package texcache

import (
	"iter"
	"log/slog"
	"time"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/segment"
	"github.com/gogpu/walltex/sprite"
)

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger. Defaults to walltex.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// Stats reports recompute activity.
type Stats struct {
	// SegmentPasses counts full segment recomputes.
	SegmentPasses int

	// SpritePasses counts sprite recomputes.
	SpritePasses int

	// SpriteWallsResolved counts walls whose sprites were rebuilt.
	SpriteWallsResolved int

	// LastSpritesAll reports whether the latest sprite pass covered every
	// wall.
	LastSpritesAll bool

	// SegmentWalls and SpriteWalls are the current slot sizes.
	SegmentWalls int
	SpriteWalls  int

	// LastRecompute is the duration of the latest RecomputeIfDirty that did
	// work.
	LastRecompute time.Duration
}

// Cache stores segment and sprite results per wall.
type Cache struct {
	source   walltex.WallSource
	resolver *sprite.Resolver
	logger   *slog.Logger

	segments *slot[walltex.Sides]
	sprites  *slot[sprite.WallSprites]

	stats Stats
}

// New creates an empty, clean cache over source. Call
// MarkAllDirty(Segments) once the walls are in place to fill it.
func New(source walltex.WallSource, resolver *sprite.Resolver, opts ...Option) *Cache {
	c := &Cache{
		source:   source,
		resolver: resolver,
		segments: newSlot[walltex.Sides](),
		sprites:  newSlot[sprite.WallSprites](),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = walltex.Logger()
	}
	return c
}

// Segments returns the cached runs for h.
func (c *Cache) Segments(h walltex.Handle) (walltex.Sides, bool) {
	return c.segments.results.Get(h)
}

// Sprites returns the cached sprites for h.
func (c *Cache) Sprites(h walltex.Handle) (sprite.WallSprites, bool) {
	return c.sprites.results.Get(h)
}

// AllSprites iterates over the cached sprites in handle index order.
func (c *Cache) AllSprites() iter.Seq2[walltex.Handle, sprite.WallSprites] {
	return c.sprites.results.All()
}

// Get returns the cached value of slot for h: a walltex.Sides for
// Segments, a sprite.WallSprites for Sprites. Stale handles miss.
func (c *Cache) Get(s Slot, h walltex.Handle) (any, bool) {
	switch s {
	case Segments:
		return c.Segments(h)
	case Sprites:
		return c.Sprites(h)
	default:
		return nil, false
	}
}

// MarkDirty records that the given walls of slot s changed.
// Marks accumulate until the next RecomputeIfDirty.
func (c *Cache) MarkDirty(s Slot, handles ...walltex.Handle) {
	switch s {
	case Segments:
		c.segments.mark(handles)
	case Sprites:
		c.sprites.mark(handles)
	}
}

// MarkAllDirty records that every wall of slot s changed.
func (c *Cache) MarkAllDirty(s Slot) {
	switch s {
	case Segments:
		c.segments.markAll()
	case Sprites:
		c.sprites.markAll()
	}
}

// Pending returns the current dirty state of slot s.
func (c *Cache) Pending(s Slot) Pending {
	switch s {
	case Segments:
		return c.segments.snapshot()
	case Sprites:
		return c.sprites.snapshot()
	default:
		return Pending{}
	}
}

// RecomputeIfDirty refreshes dirty slots, segments first. It reports whether
// any slot was recomputed.
func (c *Cache) RecomputeIfDirty() bool {
	start := time.Now()
	worked := false

	if p := c.segments.take(); p.Dirty {
		c.recomputeSegments()
		c.sprites.markAll()
		worked = true
	}
	if p := c.sprites.take(); p.Dirty {
		c.recomputeSprites(p)
		worked = true
	}

	if worked {
		c.stats.LastRecompute = time.Since(start)
	}
	return worked
}

// recomputeSegments replaces the segments slot with a fresh sweep over all
// live walls.
func (c *Cache) recomputeSegments() {
	runs := segment.ComputeWallRuns(c.source.Walls())

	c.segments.results.Clear()
	for h, sides := range runs {
		c.segments.results.Set(h, sides)
	}
	c.stats.SegmentPasses++
	c.logger.Debug("texcache: segments recomputed", "walls", len(runs))
}

func (c *Cache) recomputeSprites(p Pending) {
	n := 0
	if p.All {
		c.sprites.results.Clear()
		for _, w := range c.source.Walls() {
			sides, ok := c.segments.results.Get(w.Handle)
			if !ok {
				continue
			}
			c.sprites.results.Set(w.Handle, c.resolver.Place(w, sides))
			n++
		}
	} else {
		for _, h := range p.Handles {
			w, ok := walltex.Resolve(c.source, h)
			if !ok {
				c.sprites.results.Delete(h)
				continue
			}
			sides, ok := c.segments.results.Get(h)
			if !ok {
				c.sprites.results.Delete(h)
				continue
			}
			c.sprites.results.Set(h, c.resolver.Place(w, sides))
			n++
		}
	}

	c.stats.SpritePasses++
	c.stats.SpriteWallsResolved += n
	c.stats.LastSpritesAll = p.All
	c.logger.Debug("texcache: sprites recomputed", "all", p.All, "walls", n)
}

// Draw brings the cache up to date and calls fn for each sprite of h,
// bottom edge first. It does nothing if h has no sprites.
func (c *Cache) Draw(h walltex.Handle, fn func(sprite.Sprite)) {
	c.RecomputeIfDirty()

	ws, ok := c.Sprites(h)
	if !ok {
		return
	}
	for _, s := range ws.Bottom {
		fn(s)
	}
	for _, s := range ws.Top {
		fn(s)
	}
}

// Stats returns recompute counters and current slot sizes.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.SegmentWalls = c.segments.results.Len()
	s.SpriteWalls = c.sprites.results.Len()
	return s
}
