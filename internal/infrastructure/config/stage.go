package config

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

// TileMappingConfig assigns a collision layer to a tile character
type TileMappingConfig struct {
	Layer string `json:"layer"`
}

// SolidRect is one collision rectangle in stage pixels (Y down)
type SolidRect struct {
	X, Y, W, H float64
	Layer      string
}

// Stage is the collision geometry of a loaded stage
type Stage struct {
	Name   string
	Width  int
	Height int
	Solids []SolidRect
	SpawnX float64
	SpawnY float64
}

// Layers returns the distinct collision layer names in the stage
func (s *Stage) Layers() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range s.Solids {
		if _, ok := seen[r.Layer]; ok {
			continue
		}
		seen[r.Layer] = struct{}{}
		names = append(names, r.Layer)
	}
	sort.Strings(names)
	return names
}

// BuildStage converts ASCII collision rows into collision rectangles.
// Characters without a mapping are empty space.
func BuildStage(cfg *StageConfig) (*Stage, error) {
	ts := cfg.Size.TileSize
	if ts <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive", cfg.ID)
	}

	stage := &Stage{
		Name:   cfg.Name,
		Width:  cfg.Size.Width,
		Height: cfg.Size.Height,
		SpawnX: float64(cfg.PlayerSpawn.X),
		SpawnY: float64(cfg.PlayerSpawn.Y),
	}
	if stage.Name == "" {
		stage.Name = cfg.ID
	}

	cols := cfg.Size.Width / ts
	for y, row := range cfg.Layers.Collision {
		x := -1
		for _, char := range row {
			x++
			if x >= cols {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok || mapping.Layer == "" {
				continue
			}
			stage.Solids = append(stage.Solids, SolidRect{
				X:     float64(x * ts),
				Y:     float64(y * ts),
				W:     float64(ts),
				H:     float64(ts),
				Layer: mapping.Layer,
			})
		}
	}

	return stage, nil
}

// spawnGroup is the TMX object group holding the player spawn point
const spawnGroup = "PlayerSpawn"

// LoadTMXStage parses a Tiled map. Every non-empty tile of a tile layer
// becomes a collision rectangle on the layer of the same name.
func LoadTMXStage(fsys fs.FS, path string) (*Stage, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	stage, err := stageFromMap(m)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	return stage, nil
}

func stageFromMap(m *tiled.Map) (*Stage, error) {
	stage := &Stage{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	if m.Properties != nil {
		stage.Name = m.Properties.GetString("name")
	}

	tw := float64(m.TileWidth)
	th := float64(m.TileHeight)
	for _, layer := range m.Layers {
		// Infinite maps store chunks instead of a full grid
		if len(layer.Tiles) != m.Width*m.Height {
			return nil, fmt.Errorf("layer %q has %d tiles, want %dx%d", layer.Name, len(layer.Tiles), m.Width, m.Height)
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				stage.Solids = append(stage.Solids, SolidRect{
					X:     float64(x) * tw,
					Y:     float64(y) * th,
					W:     tw,
					H:     th,
					Layer: layer.Name,
				})
			}
		}
	}

	for _, og := range m.ObjectGroups {
		if og.Name != spawnGroup || len(og.Objects) == 0 {
			continue
		}
		stage.SpawnX = og.Objects[0].X
		stage.SpawnY = og.Objects[0].Y
		break
	}

	return stage, nil
}
