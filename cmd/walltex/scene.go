package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/walltex"
)

// sceneFile is the on-disk scene format:
//
//	{"walls": [{"x": 0, "y": 0, "w": 120, "h": 20, "m": "brick"}]}
//
// A wall's handle index is its position in the list.
type sceneFile struct {
	Walls []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		W float64 `json:"w"`
		H float64 `json:"h"`
		M string  `json:"m"`
	} `json:"walls"`
}

func parseScene(r io.Reader) (walltex.WallList, error) {
	var f sceneFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	walls := make(walltex.WallList, 0, len(f.Walls))
	for i, w := range f.Walls {
		walls = append(walls, walltex.Wall{
			Handle:   walltex.Handle{Index: uint32(i)},
			Rect:     walltex.Rect{X: w.X, Y: w.Y, W: w.W, H: w.H},
			Material: w.M,
		})
	}
	return walls, nil
}
