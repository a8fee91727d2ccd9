// Package cache provides a generic keyed store that creates each entry
// exactly once.
//
// It backs the texture asset registry: every asset key maps to exactly one
// image handle, created on first request and kept for the life of the
// store. Handles are never evicted, so a sprite pass that needs more
// textures than some bound never drops a handle it is still waiting on.
//
//	c := cache.New[string, *Image]()
//	img, created := c.GetOrCreate(key, func() *Image { return newImage(key) })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
