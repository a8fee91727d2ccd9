package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG
	"sync/atomic"

	_ "golang.org/x/image/webp" // register WebP
)

// Image errors.
var (
	// ErrEmptyData is returned when asset data is empty.
	ErrEmptyData = errors.New("assets: empty data")

	// ErrClosed is recorded on images requested after the store was closed.
	ErrClosed = errors.New("assets: store closed")
)

// State is the loading state of an Image.
type State uint32

// Loading states.
const (
	Pending State = iota
	Loaded
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint32(s))
	}
}

// Image is a texture handle. Its dimensions and pixels are valid only once
// Loaded reports true.
//
// Image is safe for concurrent use: the loader writes the fields before
// publishing the state, and readers check the state first.
type Image struct {
	key   string
	state atomic.Uint32

	img    image.Image
	width  int
	height int
	err    error
}

// NewImage returns an already loaded image for key. Hosts use it for
// textures they decode themselves.
func NewImage(key string, img image.Image) *Image {
	i := &Image{key: key}
	i.complete(img)
	return i
}

// Key returns the asset key.
func (i *Image) Key() string { return i.key }

// State returns the current loading state.
func (i *Image) State() State { return State(i.state.Load()) }

// Loaded reports whether the image is ready to draw.
func (i *Image) Loaded() bool { return i.State() == Loaded }

// Width returns the image width, or 0 if not loaded.
func (i *Image) Width() int {
	if !i.Loaded() {
		return 0
	}
	return i.width
}

// Height returns the image height, or 0 if not loaded.
func (i *Image) Height() int {
	if !i.Loaded() {
		return 0
	}
	return i.height
}

// Image returns the decoded image, or nil if not loaded.
func (i *Image) Image() image.Image {
	if !i.Loaded() {
		return nil
	}
	return i.img
}

// Err returns the load error of a failed image.
func (i *Image) Err() error {
	if i.State() != Failed {
		return nil
	}
	return i.err
}

func (i *Image) complete(img image.Image) {
	b := img.Bounds()
	i.img = img
	i.width = b.Dx()
	i.height = b.Dy()
	i.state.Store(uint32(Loaded))
}

func (i *Image) fail(err error) {
	i.err = err
	i.state.Store(uint32(Failed))
}

// Decode decodes a WebP or PNG image, auto-detecting the format.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	return img, nil
}
