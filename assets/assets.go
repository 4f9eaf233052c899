package assets

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

//go:embed levels
var assetFS embed.FS

// unitsPerPixel converts Tiled pixel coordinates to world units. Levels
// are authored top-down: Tiled X maps to world X, Tiled Y to world Z.
const unitsPerPixel = 1.0 / 32.0

// BoxSpawn is one rectangle from the level, extruded into a 3D box.
type BoxSpawn struct {
	X, Z      float64 // center, world units
	W, D      float64 // footprint, world units
	Elevation float64 // bottom face height
	Height    float64 // extrusion

	// Floating platforms bob vertically around their elevation.
	Floating  bool
	Amplitude float64
	Period    float64
}

// Level is the parsed world geometry plus the player spawn point.
type Level struct {
	Name   string
	Floors []BoxSpawn
	Boxes  []BoxSpawn

	SpawnX, SpawnZ float64
}

// MustLoadLevels loads every .tmx level in the embedded levels directory.
func MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levels = append(levels, MustLoadLevel(filepath.Join("levels", entry.Name())))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}
	return levels
}

// MustLoadLevel parses a TMX file into world geometry. Object rectangles
// become boxes; custom properties control extrusion and platform motion.
func MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{Name: levelPath}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Floor":
			for _, o := range og.Objects {
				level.Floors = append(level.Floors, boxFromObject(o))
			}
		case "Obstacles":
			for _, o := range og.Objects {
				level.Boxes = append(level.Boxes, boxFromObject(o))
			}
		case "Platforms":
			for _, o := range og.Objects {
				box := boxFromObject(o)
				box.Floating = true
				box.Amplitude = o.Properties.GetFloat("amplitude")
				box.Period = o.Properties.GetFloat("period")
				if box.Period <= 0 {
					box.Period = 4
				}
				level.Boxes = append(level.Boxes, box)
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.SpawnX = o.X * unitsPerPixel
				level.SpawnZ = o.Y * unitsPerPixel
			}
		}
	}

	return level
}

func boxFromObject(o *tiled.Object) BoxSpawn {
	box := BoxSpawn{
		X:         (o.X + o.Width/2) * unitsPerPixel,
		Z:         (o.Y + o.Height/2) * unitsPerPixel,
		W:         o.Width * unitsPerPixel,
		D:         o.Height * unitsPerPixel,
		Elevation: o.Properties.GetFloat("elevation"),
		Height:    o.Properties.GetFloat("height"),
	}
	if box.Height <= 0 {
		box.Height = 1
	}
	return box
}
