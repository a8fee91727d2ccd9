package main

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/assets"
	"github.com/gogpu/walltex/material"
	"github.com/gogpu/walltex/sprite"
	"github.com/gogpu/walltex/texcache"
)

func TestParseScene(t *testing.T) {
	walls, err := parseScene(strings.NewReader(`{"walls": [
		{"x": 0, "y": 0, "w": 25, "h": 10, "m": "plain"},
		{"x": 5, "y": 2, "w": 10, "h": 5}
	]}`))
	if err != nil {
		t.Fatalf("parseScene() error = %v", err)
	}
	if len(walls) != 2 {
		t.Fatalf("len = %d, want 2", len(walls))
	}
	if w := walls[1]; w.Handle.Index != 1 || w.Rect != (walltex.Rect{X: 5, Y: 2, W: 10, H: 5}) || w.Material != "" {
		t.Errorf("walls[1] = %+v", w)
	}

	if _, err := parseScene(strings.NewReader(`{"walls": [`)); err == nil {
		t.Error("parseScene(truncated) error = nil")
	}
}

type images map[string]*assets.Image

func (m images) Image(key string) *assets.Image { return m[key] }

func TestReport(t *testing.T) {
	walls := walltex.WallList{
		{Handle: walltex.Handle{Index: 0}, Rect: walltex.Rect{W: 25, H: 10}, Material: "plain"},
		{Handle: walltex.Handle{Index: 1}, Rect: walltex.Rect{X: 5, Y: 2, W: 10, H: 5}, Material: "plain"},
	}
	cat := material.NewCatalog(map[string]material.Material{
		"plain": {Sprites: material.Sprites{Top: &material.PartsSpec{Mid: &material.Part{Sprite: "plain_top", RequiresCorner: true}}}},
	})
	imgs := images{"plain_top": assets.NewImage("plain_top", image.NewRGBA(image.Rect(0, 0, 10, 3)))}

	tc := texcache.New(walls, sprite.NewResolver(cat, imgs))
	tc.MarkAllDirty(texcache.Segments)
	tc.RecomputeIfDirty()

	var buf bytes.Buffer
	report(&buf, walls, tc)
	out := buf.String()

	for _, want := range []string{
		"L[0,30)R",
		"plain_top@(0,0)*30",
		"covered",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if got := countSprites(tc); got != 1 {
		t.Errorf("countSprites() = %d, want 1", got)
	}
}
