// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/assets"
	"github.com/gogpu/walltex/material"
)

// MinCapRunWidth is the narrowest run that receives corner-requiring caps.
const MinCapRunWidth = 20

// ImageSource hands out texture handles by asset key.
// *assets.Store implements it.
type ImageSource interface {
	Image(key string) *assets.Image
}

// Sprite is one texture placement.
type Sprite struct {
	Image *assets.Image

	// X and Y locate the sprite's top-left corner.
	X, Y float64

	// Tiling sprites repeat the image horizontally across Width.
	// Fixed sprites draw the image once at its natural size.
	Tiling bool
	Width  float64
}

// Bounds returns the area covered by the sprite.
func (s Sprite) Bounds() walltex.Rect {
	if s.Image == nil {
		return walltex.Rect{X: s.X, Y: s.Y}
	}
	w := float64(s.Image.Width())
	if s.Tiling {
		w = s.Width
	}
	return walltex.Rect{X: s.X, Y: s.Y, W: w, H: float64(s.Image.Height())}
}

// WallSprites holds the absolute sprites of both edges of a wall.
type WallSprites struct {
	Top    []Sprite
	Bottom []Sprite
}

// Len returns the total number of sprites.
func (w WallSprites) Len() int {
	return len(w.Top) + len(w.Bottom)
}

// Resolver assembles sprites from a material catalog.
type Resolver struct {
	catalog *material.Catalog
	images  ImageSource
}

// NewResolver creates a resolver. A nil catalog resolves no sprites.
func NewResolver(catalog *material.Catalog, images ImageSource) *Resolver {
	return &Resolver{catalog: catalog, images: images}
}

// Resolve returns the sprites for one run of a wall edge, ordered middle,
// left cap, right cap. X is relative to the run start and Y to the edge.
// Bottom sprites hang above the edge by their image height.
func (r *Resolver) Resolve(run walltex.Run, materialID string, side walltex.Side) []Sprite {
	parts := r.catalog.Parts(materialID, side)
	if parts == nil {
		return nil
	}
	width := run.Width()

	var out []Sprite
	if p := parts.Mid; p != nil {
		if img := r.image(p.Sprite); img != nil {
			out = append(out, Sprite{
				Image:  img,
				X:      p.OffsetX,
				Y:      edgeY(p, img, side),
				Tiling: true,
				Width:  width + p.WidthAdjustment,
			})
		}
	}
	if p := parts.Left; p != nil && capAllowed(p, run.HasLeftCorner, width) {
		if img := r.image(p.Sprite); img != nil {
			out = append(out, Sprite{Image: img, X: p.OffsetX, Y: edgeY(p, img, side)})
		}
	}
	if p := parts.Right; p != nil && capAllowed(p, run.HasRightCorner, width) {
		if img := r.image(p.Sprite); img != nil {
			out = append(out, Sprite{
				Image: img,
				X:     p.OffsetX + width - float64(img.Width()),
				Y:     edgeY(p, img, side),
			})
		}
	}
	return out
}

// Place resolves every run of a wall and moves the sprites to absolute
// coordinates: top sprites hang from the wall's top edge and bottom sprites
// from its bottom edge.
func (r *Resolver) Place(w walltex.Wall, sides walltex.Sides) WallSprites {
	return WallSprites{
		Top:    r.placeSide(w, sides.Top, walltex.Top, w.Rect.Y),
		Bottom: r.placeSide(w, sides.Bottom, walltex.Bottom, w.Rect.Bottom()),
	}
}

func (r *Resolver) placeSide(w walltex.Wall, runs []walltex.Run, side walltex.Side, edge float64) []Sprite {
	var out []Sprite
	for _, run := range runs {
		for _, s := range r.Resolve(run, w.Material, side) {
			s.X += run.Start
			s.Y += edge
			out = append(out, s)
		}
	}
	return out
}

// image returns the loaded image for key, or nil.
func (r *Resolver) image(key string) *assets.Image {
	if r.images == nil {
		return nil
	}
	img := r.images.Image(key)
	if img == nil || !img.Loaded() {
		return nil
	}
	return img
}

func capAllowed(p *material.Part, corner bool, runWidth float64) bool {
	return (corner && runWidth >= MinCapRunWidth) || !p.RequiresCorner
}

func edgeY(p *material.Part, img *assets.Image, side walltex.Side) float64 {
	if side == walltex.Bottom {
		return p.OffsetY - float64(img.Height())
	}
	return p.OffsetY
}
