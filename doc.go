// Package walltex computes decorative texture sprites for the exposed edges
// of rectangular walls.
//
// # Overview
//
// Walls are axis-aligned rectangles placed on a shared plane. Where walls
// overlap, the covered portion of a wall's top or bottom edge is hidden and
// must not receive a texture. walltex finds the exposed portions of each edge
// (runs), decides whether a run may carry end caps at its corners, and turns
// runs into positioned sprites using a material catalog.
//
// # Architecture
//
// The module is organized leaf-first:
//   - walltex: shared vocabulary (Rect, Wall, Handle, Run, Side) and logging
//   - segment: sweep-line engine over a coordinate-compressed interval tree
//   - material: read-only catalog of per-material sprite parts
//   - assets: asynchronous texture loading with readiness tracking
//   - sprite: resolves a run and a material into sprite descriptors
//   - texcache: two-slot cache (segments, sprites) with dirty tracking
//   - changes: maps wall attribute changes and undo/redo actions to
//     cache invalidation
//
// # Coordinate System
//
// Plane coordinates follow the host editor:
//   - X increases right
//   - Y increases down, so a wall's top edge is at Y and its bottom at Y+H
//
// # Frame Model
//
// All computation happens synchronously on the frame thread. The host calls
// texcache.Cache.RecomputeIfDirty once per frame (or uses Cache.Draw, which
// does it for you) before reading sprites. Texture loading is the only
// asynchronous part; a finished load marks every wall's sprites dirty.
package walltex

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
