package sprite

import (
	"image"
	"testing"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/assets"
	"github.com/gogpu/walltex/material"
)

// fakeImages serves preloaded images by key; unknown keys report pending.
type fakeImages map[string]*assets.Image

func (f fakeImages) Image(key string) *assets.Image {
	return f[key]
}

func loaded(key string, w, h int) *assets.Image {
	return assets.NewImage(key, image.NewRGBA(image.Rect(0, 0, w, h)))
}

func testCatalog(t *testing.T) *material.Catalog {
	t.Helper()
	cat, err := material.ParseCatalog([]byte(`{
		"plain": {"sprites": {"top": {"mid": {"sprite": "plain_top"}}}},
		"brick": {"sprites": {
			"top": {
				"mid":   {"sprite": "brick_top", "offsetY": -6},
				"left":  {"sprite": "brick_cap", "offsetX": -2},
				"right": {"sprite": "brick_cap", "offsetX": 2}
			},
			"bottom": {
				"mid":  {"sprite": "brick_bottom", "widthAdjustment": 4},
				"left": {"sprite": "brick_cap", "requiresCorner": false}
			}
		}},
		"ghost": {"sprites": {"top": {"mid": {"sprite": "not_loaded"}}}}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func testImages() fakeImages {
	return fakeImages{
		"plain_top":    loaded("plain_top", 10, 4),
		"brick_top":    loaded("brick_top", 10, 8),
		"brick_bottom": loaded("brick_bottom", 10, 6),
		"brick_cap":    loaded("brick_cap", 5, 12),
		"not_loaded":   &assets.Image{},
	}
}

func TestResolveMidOnly(t *testing.T) {
	r := NewResolver(testCatalog(t), testImages())

	got := r.Resolve(walltex.Run{Start: 0, End: 30, HasLeftCorner: true, HasRightCorner: true}, "plain", walltex.Top)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	s := got[0]
	if !s.Tiling || s.X != 0 || s.Y != 0 || s.Width != 30 {
		t.Errorf("sprite = %+v, want tiling at (0,0) width 30", s)
	}
	if s.Image.Key() != "plain_top" {
		t.Errorf("image = %q, want plain_top", s.Image.Key())
	}
}

func TestResolveCapThreshold(t *testing.T) {
	r := NewResolver(testCatalog(t), testImages())

	tests := []struct {
		name      string
		run       walltex.Run
		wantCount int
	}{
		{"width 19 no caps", walltex.Run{Start: 0, End: 19, HasLeftCorner: true, HasRightCorner: true}, 1},
		{"width 20 both caps", walltex.Run{Start: 0, End: 20, HasLeftCorner: true, HasRightCorner: true}, 3},
		{"left corner only", walltex.Run{Start: 10, End: 50, HasLeftCorner: true}, 2},
		{"no corners", walltex.Run{Start: 10, End: 50}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.run, "brick", walltex.Top)
			if len(got) != tt.wantCount {
				t.Errorf("len = %d, want %d (%+v)", len(got), tt.wantCount, got)
			}
		})
	}
}

func TestResolvePositions(t *testing.T) {
	r := NewResolver(testCatalog(t), testImages())
	run := walltex.Run{Start: 100, End: 140, HasLeftCorner: true, HasRightCorner: true}

	top := r.Resolve(run, "brick", walltex.Top)
	if len(top) != 3 {
		t.Fatalf("top len = %d, want 3", len(top))
	}
	want := []Sprite{
		{X: 0, Y: -6, Tiling: true, Width: 40},
		{X: -2, Y: 0},
		{X: 2 + 40 - 5, Y: 0},
	}
	for i, w := range want {
		g := top[i]
		if g.X != w.X || g.Y != w.Y || g.Tiling != w.Tiling || g.Width != w.Width {
			t.Errorf("top[%d] = {X:%v Y:%v Tiling:%v Width:%v}, want %+v", i, g.X, g.Y, g.Tiling, g.Width, w)
		}
	}

	// Bottom pieces sit above the edge by their image height. The left cap
	// does not require a corner.
	bottom := r.Resolve(walltex.Run{Start: 0, End: 10}, "brick", walltex.Bottom)
	if len(bottom) != 2 {
		t.Fatalf("bottom len = %d, want 2", len(bottom))
	}
	if g := bottom[0]; !g.Tiling || g.Y != -6 || g.Width != 14 {
		t.Errorf("bottom mid = %+v, want tiling y=-6 width=14", g)
	}
	if g := bottom[1]; g.Tiling || g.X != 0 || g.Y != -12 {
		t.Errorf("bottom left = %+v, want fixed at (0,-12)", g)
	}
}

func TestResolveMissing(t *testing.T) {
	run := walltex.Run{Start: 0, End: 40, HasLeftCorner: true, HasRightCorner: true}

	tests := []struct {
		name     string
		resolver *Resolver
		material string
		side     walltex.Side
	}{
		{"unknown material", NewResolver(testCatalog(t), testImages()), "lava", walltex.Top},
		{"missing side", NewResolver(testCatalog(t), testImages()), "plain", walltex.Bottom},
		{"image pending", NewResolver(testCatalog(t), testImages()), "ghost", walltex.Top},
		{"image unknown", NewResolver(testCatalog(t), fakeImages{}), "plain", walltex.Top},
		{"nil catalog", NewResolver(nil, testImages()), "plain", walltex.Top},
		{"nil images", NewResolver(testCatalog(t), nil), "plain", walltex.Top},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resolver.Resolve(run, tt.material, tt.side); len(got) != 0 {
				t.Errorf("Resolve() = %+v, want none", got)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	r := NewResolver(testCatalog(t), testImages())
	w := walltex.Wall{
		Handle:   walltex.Handle{Index: 3},
		Rect:     walltex.Rect{X: 50, Y: 20, W: 25, H: 10},
		Material: "brick",
	}
	sides := walltex.Sides{
		Top:    []walltex.Run{{Start: 50, End: 80}},
		Bottom: []walltex.Run{{Start: 50, End: 60}, {Start: 70, End: 80}},
	}

	got := r.Place(w, sides)
	if len(got.Top) != 1 || len(got.Bottom) != 4 || got.Len() != 5 {
		t.Fatalf("Place() top=%d bottom=%d, want 1 and 4", len(got.Top), len(got.Bottom))
	}
	if s := got.Top[0]; s.X != 50 || s.Y != 14 || s.Width != 30 {
		t.Errorf("top mid = {X:%v Y:%v Width:%v}, want {50 14 30}", s.X, s.Y, s.Width)
	}
	if s := got.Bottom[2]; s.X != 70 || s.Y != 24 || s.Width != 14 {
		t.Errorf("second bottom mid = {X:%v Y:%v Width:%v}, want {70 24 14}", s.X, s.Y, s.Width)
	}
	if s := got.Bottom[3]; s.X != 70 || s.Y != 18 {
		t.Errorf("second bottom cap = {X:%v Y:%v}, want {70 18}", s.X, s.Y)
	}
}

func TestSpriteBounds(t *testing.T) {
	img := loaded("k", 8, 3)
	tests := []struct {
		s    Sprite
		want walltex.Rect
	}{
		{Sprite{Image: img, X: 1, Y: 2}, walltex.Rect{X: 1, Y: 2, W: 8, H: 3}},
		{Sprite{Image: img, X: 1, Y: 2, Tiling: true, Width: 40}, walltex.Rect{X: 1, Y: 2, W: 40, H: 3}},
		{Sprite{X: 5, Y: 6}, walltex.Rect{X: 5, Y: 6}},
	}
	for _, tt := range tests {
		if got := tt.s.Bounds(); got != tt.want {
			t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
		}
	}
}
