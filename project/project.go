// Package project loads a YAML project fixture into gml.MemoryAssets.
// GameMaker's binary .gmk/.gm81 project format is treated as an external
// collaborator and left unimplemented; this is the minimal in-repo
// stand-in that cmd/gslengine loads. It reads objects, sprites and
// instance placements only: scripts and object event tables are not part
// of the fixture format.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/isgasho/gsl8engine/gml"
)

// Document is the on-disk shape of a project fixture.
type Document struct {
	Objects []ObjectDoc `yaml:"objects"`
	Sprites []SpriteDoc `yaml:"sprites"`
}

// ObjectDoc describes one object asset and the instances to spawn for it.
type ObjectDoc struct {
	ID         int32  `yaml:"id"`
	Name       string `yaml:"name"`
	Parent     int32  `yaml:"parent"`
	Sprite     int32  `yaml:"sprite"`
	Solid      bool   `yaml:"solid"`
	Visible    bool   `yaml:"visible"`
	Persistent bool   `yaml:"persistent"`
	Depth      int32  `yaml:"depth"`
	Instances  []struct {
		X Real `yaml:"x"`
		Y Real `yaml:"y"`
	} `yaml:"instances"`
}

// SpriteDoc describes one sprite asset's geometry.
type SpriteDoc struct {
	ID         int32 `yaml:"id"`
	Width      int32 `yaml:"width"`
	Height     int32 `yaml:"height"`
	OriginX    int32 `yaml:"origin_x"`
	OriginY    int32 `yaml:"origin_y"`
	BboxLeft   int32 `yaml:"bbox_left"`
	BboxTop    int32 `yaml:"bbox_top"`
	BboxRight  int32 `yaml:"bbox_right"`
	BboxBottom int32 `yaml:"bbox_bottom"`
	FrameCount int32 `yaml:"frame_count"`
}

// Real is a plain float64 in the fixture format; the engine's gml.Real
// (a float64 wrapper with GSL rounding rules) is constructed from it once
// loaded.
type Real = float64

// Placement is one instance to spawn once the engine is constructed.
type Placement struct {
	ObjectID int32
	X, Y     Real
}

// Load reads a YAML project fixture, returning ready-to-use assets and the
// instance placements the caller should spawn.
func Load(path string) (*gml.MemoryAssets, []Placement, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("project: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("project: parse %s: %w", path, err)
	}

	assets := gml.NewMemoryAssets()
	var placements []Placement
	for _, o := range doc.Objects {
		assets.AddObject(o.ID, &gml.Object{
			Name:       o.Name,
			Parent:     o.Parent,
			Sprite:     o.Sprite,
			Solid:      o.Solid,
			Visible:    o.Visible,
			Persistent: o.Persistent,
			Depth:      o.Depth,
		})
		for _, p := range o.Instances {
			placements = append(placements, Placement{ObjectID: o.ID, X: p.X, Y: p.Y})
		}
	}
	for _, s := range doc.Sprites {
		assets.AddSprite(s.ID, &gml.Sprite{
			Width:      s.Width,
			Height:     s.Height,
			OriginX:    s.OriginX,
			OriginY:    s.OriginY,
			BboxLeft:   s.BboxLeft,
			BboxTop:    s.BboxTop,
			BboxRight:  s.BboxRight,
			BboxBottom: s.BboxBottom,
			FrameCount: s.FrameCount,
		})
	}
	return assets, placements, nil
}
