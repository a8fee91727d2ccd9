// Package material holds the read-only catalog that maps material ids to
// the sprite parts drawn along wall edges.
//
// A catalog is usually loaded from JSON:
//
//	{
//	  "brick": {
//	    "sprites": {
//	      "top":    {"mid": {"sprite": "brick_top"}, "left": {"sprite": "brick_cap_l", "offsetY": -4}},
//	      "bottom": {"mid": {"sprite": "brick_bottom", "widthAdjustment": 2}}
//	    }
//	  }
//	}
package material

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/gogpu/walltex"
)

// exampleID is a documentation entry in catalog files and never a real
// material.
const exampleID = "example"

// ErrEmptyCatalog is returned when catalog data is empty.
var ErrEmptyCatalog = errors.New("material: empty catalog data")

// Part is one sprite piece of a material edge.
type Part struct {
	// Sprite is the texture asset key.
	Sprite string

	// OffsetX and OffsetY shift the sprite from its anchor, in plane units.
	OffsetX, OffsetY float64

	// WidthAdjustment is added to the run width for tiling pieces.
	WidthAdjustment float64

	// RequiresCorner restricts an end cap to runs whose corner is free.
	RequiresCorner bool
}

// partJSON mirrors Part with optional fields.
type partJSON struct {
	Sprite          string   `json:"sprite"`
	OffsetX         *float64 `json:"offsetX"`
	OffsetY         *float64 `json:"offsetY"`
	WidthAdjustment *float64 `json:"widthAdjustment"`
	RequiresCorner  *bool    `json:"requiresCorner"`
}

// UnmarshalJSON decodes a part, applying defaults for missing fields:
// zero offsets, zero width adjustment and RequiresCorner true.
func (p *Part) UnmarshalJSON(data []byte) error {
	var raw partJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Part{Sprite: raw.Sprite, RequiresCorner: true}
	if raw.OffsetX != nil {
		p.OffsetX = *raw.OffsetX
	}
	if raw.OffsetY != nil {
		p.OffsetY = *raw.OffsetY
	}
	if raw.WidthAdjustment != nil {
		p.WidthAdjustment = *raw.WidthAdjustment
	}
	if raw.RequiresCorner != nil {
		p.RequiresCorner = *raw.RequiresCorner
	}
	return nil
}

// PartsSpec lists the pieces drawn along one edge. Any piece may be nil.
type PartsSpec struct {
	Mid   *Part `json:"mid"`
	Left  *Part `json:"left"`
	Right *Part `json:"right"`
}

// Sprites holds the pieces for both edges.
type Sprites struct {
	Top    *PartsSpec `json:"top"`
	Bottom *PartsSpec `json:"bottom"`
}

// Material describes how a wall material is decorated.
type Material struct {
	Sprites Sprites `json:"sprites"`
}

// Catalog is an immutable set of materials keyed by id.
// It is safe for concurrent reads.
type Catalog struct {
	materials map[string]Material
}

// NewCatalog creates a catalog from materials. The map is copied.
func NewCatalog(materials map[string]Material) *Catalog {
	c := &Catalog{materials: maps.Clone(materials)}
	if c.materials == nil {
		c.materials = make(map[string]Material)
	}
	delete(c.materials, exampleID)
	return c
}

// ParseCatalog decodes a JSON catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCatalog
	}
	var materials map[string]Material
	if err := json.Unmarshal(data, &materials); err != nil {
		return nil, fmt.Errorf("material: decode catalog: %w", err)
	}
	return NewCatalog(materials), nil
}

// LoadCatalog reads and decodes a JSON catalog from r.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("material: read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// Lookup returns the material with the given id.
func (c *Catalog) Lookup(id string) (Material, bool) {
	if c == nil {
		return Material{}, false
	}
	m, ok := c.materials[id]
	return m, ok
}

// Parts returns the pieces of material id for side. It returns nil if the
// material is unknown or defines nothing for that side.
func (c *Catalog) Parts(id string, side walltex.Side) *PartsSpec {
	m, ok := c.Lookup(id)
	if !ok {
		return nil
	}
	if side == walltex.Bottom {
		return m.Sprites.Bottom
	}
	return m.Sprites.Top
}

// IDs returns the material ids in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.materials))
}

// Len returns the number of materials.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.materials)
}

// SpriteKeys returns the distinct asset keys referenced by the catalog, in
// sorted order. Hosts use it to preload textures.
func (c *Catalog) SpriteKeys() []string {
	if c == nil {
		return nil
	}
	keys := make(map[string]struct{})
	for _, m := range c.materials {
		for _, spec := range []*PartsSpec{m.Sprites.Top, m.Sprites.Bottom} {
			if spec == nil {
				continue
			}
			for _, p := range []*Part{spec.Mid, spec.Left, spec.Right} {
				if p != nil && p.Sprite != "" {
					keys[p.Sprite] = struct{}{}
				}
			}
		}
	}
	return slices.Sorted(maps.Keys(keys))
}
