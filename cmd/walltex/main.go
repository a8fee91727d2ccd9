// Command walltex computes the wall textures of a scene and prints the
// exposed runs and sprites of every wall.
//
// Usage:
//
//	walltex -scene scene.json -catalog materials.json -assets ./textures
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/assets"
	"github.com/gogpu/walltex/material"
	"github.com/gogpu/walltex/sprite"
	"github.com/gogpu/walltex/texcache"
)

func main() {
	var (
		scenePath   = flag.String("scene", "scene.json", "scene file")
		catalogPath = flag.String("catalog", "materials.json", "material catalog file")
		assetDir    = flag.String("assets", "textures", "texture directory")
		assetURL    = flag.String("url", "", "texture base URL (overrides -assets)")
		ext         = flag.String("ext", assets.DefaultExtension, "texture file extension")
		workers     = flag.Int("workers", 4, "concurrent texture loads")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		walltex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	walls, err := readScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	catalog, err := readCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var fetcher assets.Fetcher = assets.DirFetcher(os.DirFS(*assetDir))
	if *assetURL != "" {
		fetcher = &assets.HTTPFetcher{BaseURL: *assetURL}
	}

	var tc *texcache.Cache
	store := assets.NewStore(fetcher,
		assets.WithWorkers(*workers),
		assets.WithExtension(*ext),
		assets.WithOnLoad(func(*assets.Image) { tc.MarkAllDirty(texcache.Sprites) }),
	)
	defer store.Close()

	tc = texcache.New(walls, sprite.NewResolver(catalog, store))
	store.Preload(catalog.SpriteKeys()...)
	store.Wait()

	tc.MarkAllDirty(texcache.Segments)
	tc.RecomputeIfDirty()

	report(os.Stdout, walls, tc)

	pending, loaded, failed := store.Counts()
	st := tc.Stats()
	as := store.Stats()
	log.Printf("%d walls, %d exposed, %d sprites; textures: %d loaded, %d failed, %d pending (%d requests, %d fetched); recompute %v\n",
		len(walls), st.SegmentWalls, countSprites(tc), loaded, failed, pending, as.Hits+as.Misses, as.Misses, st.LastRecompute)
}

func readScene(path string) (walltex.WallList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseScene(f)
}

func readCatalog(path string) (*material.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return material.LoadCatalog(f)
}

func report(out io.Writer, walls walltex.WallList, tc *texcache.Cache) {
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "WALL\tMATERIAL\tSIDE\tRUNS\tSPRITES")
	for _, w := range walls {
		sides, ok := tc.Segments(w.Handle)
		if !ok {
			fmt.Fprintf(tw, "%v\t%s\t-\tcovered\t\n", w.Handle, w.Material)
			continue
		}
		ws, _ := tc.Sprites(w.Handle)
		for _, side := range []walltex.Side{walltex.Top, walltex.Bottom} {
			list := ws.Top
			if side == walltex.Bottom {
				list = ws.Bottom
			}
			fmt.Fprintf(tw, "%v\t%s\t%v\t%s\t%s\n",
				w.Handle, w.Material, side, formatRuns(sides.Get(side)), formatSprites(list))
		}
	}
	_ = tw.Flush()
}

// formatRuns renders runs as "[start,end)" with L/R marking free corners.
func formatRuns(runs []walltex.Run) string {
	if len(runs) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.HasLeftCorner {
			b.WriteByte('L')
		}
		fmt.Fprintf(&b, "[%g,%g)", r.Start, r.End)
		if r.HasRightCorner {
			b.WriteByte('R')
		}
	}
	return b.String()
}

func formatSprites(list []sprite.Sprite) string {
	if len(list) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, sp := range list {
		if i > 0 {
			b.WriteByte(' ')
		}
		r := sp.Bounds()
		fmt.Fprintf(&b, "%s@(%g,%g)", sp.Image.Key(), r.X, r.Y)
		if sp.Tiling {
			fmt.Fprintf(&b, "*%g", r.W)
		}
	}
	return b.String()
}

func countSprites(tc *texcache.Cache) int {
	n := 0
	for _, ws := range tc.AllSprites() {
		n += ws.Len()
	}
	return n
}
