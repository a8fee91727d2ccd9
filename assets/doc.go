// Package assets loads wall texture images.
//
// A Store hands out one *Image per asset key. The first request for a key
// returns a pending image immediately and schedules a fetch and decode on a
// worker pool; the image reports Loaded once decoding succeeds. Sprites
// whose image is not loaded yet are simply left out, so the host wires the
// store's on-load callback to mark every wall's sprites dirty:
//
//	var tc *texcache.Cache
//	store := assets.NewStore(assets.DirFetcher(os.DirFS("textures")),
//	    assets.WithOnLoad(func(*assets.Image) { tc.MarkAllDirty(texcache.Sprites) }))
//	defer store.Close()
//
// Textures are WebP files named "<key>.webp" by default; PNG is also
// decoded. Failed loads are logged and never retried.
package assets
