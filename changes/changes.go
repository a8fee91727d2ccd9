// Package changes maps wall property edits to texture cache invalidation.
//
// Edits to x, y, w or h move wall edges and dirty the segments slot; edits
// to m change the material and dirty only the sprites slot. Everything else
// is ignored. Hosts that keep an undo log of assignment strings such as
//
//	es[12].pm.x = 40; es[12].pm.w = 80;
//
// can wrap it in a History so that undo and redo invalidate the cache
// without the host tracking the edits itself.
package changes

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/texcache"
)

// Effect is what a property edit invalidates.
type Effect uint8

const (
	// None means the edit does not affect wall textures.
	None Effect = iota
	// Geometry means the wall's rectangle changed.
	Geometry
	// Material means the wall's material changed.
	Material
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case None:
		return "none"
	case Geometry:
		return "geometry"
	case Material:
		return "material"
	default:
		return fmt.Sprintf("Effect(%d)", uint8(e))
	}
}

// Classify returns the effect of editing attribute attr.
func Classify(attr string) Effect {
	switch attr {
	case "x", "y", "w", "h":
		return Geometry
	case "m":
		return Material
	default:
		return None
	}
}

// Change is one edited attribute of one wall.
type Change struct {
	Wall walltex.Handle
	Attr string
}

// Invalidator receives dirty marks. *texcache.Cache implements it.
type Invalidator interface {
	MarkDirty(s texcache.Slot, handles ...walltex.Handle)
}

// Detector forwards classified changes to an Invalidator.
type Detector struct {
	cache  Invalidator
	source walltex.WallSource
	logger *slog.Logger
}

// NewDetector creates a detector. source resolves entity indexes found in
// action strings.
func NewDetector(cache Invalidator, source walltex.WallSource) *Detector {
	return &Detector{cache: cache, source: source, logger: walltex.Logger()}
}

// Notify marks the cache dirty for changes and returns the strongest effect.
//
// If any change moves a wall, the walls with geometry changes are marked in
// the segments slot; the cache then refreshes every wall's sprites anyway.
// Otherwise walls with material changes are marked in the sprites slot.
func (d *Detector) Notify(changes ...Change) Effect {
	var geometry, material []walltex.Handle
	for _, c := range changes {
		switch Classify(c.Attr) {
		case Geometry:
			geometry = append(geometry, c.Wall)
		case Material:
			material = append(material, c.Wall)
		}
	}

	switch {
	case len(geometry) > 0:
		d.cache.MarkDirty(texcache.Segments, geometry...)
		d.logger.Debug("changes: geometry edit", "walls", len(geometry))
		return Geometry
	case len(material) > 0:
		d.cache.MarkDirty(texcache.Sprites, material...)
		d.logger.Debug("changes: material edit", "walls", len(material))
		return Material
	default:
		return None
	}
}

// NotifyAction parses an action string and notifies its changes.
func (d *Detector) NotifyAction(action string) Effect {
	return d.Notify(ParseAction(d.source, action)...)
}

var assignRE = regexp.MustCompile(`es\[(\d+)\]\.pm\.([xywhm])\s*=`)

// ParseAction extracts wall property assignments from an action string.
// Entity indexes that src does not resolve to a wall are skipped.
func ParseAction(src walltex.WallSource, action string) []Change {
	var out []Change
	for _, m := range assignRE.FindAllStringSubmatch(action, -1) {
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		w, ok := src.Lookup(index)
		if !ok {
			continue
		}
		out = append(out, Change{Wall: w.Handle, Attr: m[2]})
	}
	return out
}
