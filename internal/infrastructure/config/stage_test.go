package config

import (
	"testing"

	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStage(t *testing.T) {
	cfg := &StageConfig{
		ID:          "mini",
		Size:        StageSizeConfig{Width: 64, Height: 32, TileSize: 16},
		PlayerSpawn: PositionConfig{X: 20, Y: 16},
		Layers: LayersConfig{Collision: []string{
			"  =  ",
			"####",
		}},
		TileMapping: map[string]TileMappingConfig{
			"#": {Layer: "Ground"},
			"=": {Layer: "Ledge"},
		},
	}

	stage, err := BuildStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, "mini", stage.Name, "name falls back to ID")
	assert.Equal(t, 20.0, stage.SpawnX)
	require.Len(t, stage.Solids, 5)
	assert.Equal(t, SolidRect{X: 32, Y: 0, W: 16, H: 16, Layer: "Ledge"}, stage.Solids[0])
	assert.Equal(t, SolidRect{X: 0, Y: 16, W: 16, H: 16, Layer: "Ground"}, stage.Solids[1])
	assert.Equal(t, []string{"Ground", "Ledge"}, stage.Layers())
}

func TestBuildStage_IgnoresColumnsPastWidth(t *testing.T) {
	cfg := &StageConfig{
		ID:          "narrow",
		Size:        StageSizeConfig{Width: 32, Height: 16, TileSize: 16},
		Layers:      LayersConfig{Collision: []string{"####"}},
		TileMapping: map[string]TileMappingConfig{"#": {Layer: "Ground"}},
	}

	stage, err := BuildStage(cfg)
	require.NoError(t, err)
	assert.Len(t, stage.Solids, 2)
}

func TestBuildStage_MultiByteMapping(t *testing.T) {
	cfg := &StageConfig{
		ID:     "runes",
		Size:   StageSizeConfig{Width: 64, Height: 16, TileSize: 16},
		Layers: LayersConfig{Collision: []string{"▓ ▓#"}},
		TileMapping: map[string]TileMappingConfig{
			"▓": {Layer: "Ledge"},
			"#": {Layer: "Ground"},
		},
	}

	stage, err := BuildStage(cfg)
	require.NoError(t, err)

	require.Len(t, stage.Solids, 3)
	assert.Equal(t, SolidRect{X: 0, Y: 0, W: 16, H: 16, Layer: "Ledge"}, stage.Solids[0])
	assert.Equal(t, SolidRect{X: 32, Y: 0, W: 16, H: 16, Layer: "Ledge"}, stage.Solids[1])
	assert.Equal(t, SolidRect{X: 48, Y: 0, W: 16, H: 16, Layer: "Ground"}, stage.Solids[2])
}

// createTestMap creates a 2x2 map of 16px tiles with one layer
func createTestMap(tiles []*tiled.LayerTile) *tiled.Map {
	return &tiled.Map{
		Width:      2,
		Height:     2,
		TileWidth:  16,
		TileHeight: 16,
		Layers:     []*tiled.Layer{{Name: "Ground", Tiles: tiles}},
	}
}

func TestStageFromMap(t *testing.T) {
	empty := &tiled.LayerTile{Nil: true}
	m := createTestMap([]*tiled.LayerTile{empty, {ID: 1}, nil, {ID: 1}})

	stage, err := stageFromMap(m)
	require.NoError(t, err)

	assert.Empty(t, stage.Name, "no properties")
	assert.Equal(t, 32, stage.Width)
	assert.Equal(t, []SolidRect{
		{X: 16, Y: 0, W: 16, H: 16, Layer: "Ground"},
		{X: 16, Y: 16, W: 16, H: 16, Layer: "Ground"},
	}, stage.Solids)
}

func TestStageFromMap_ShortLayer(t *testing.T) {
	m := createTestMap([]*tiled.LayerTile{{ID: 1}})

	var err error
	assert.NotPanics(t, func() {
		_, err = stageFromMap(m)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `layer "Ground" has 1 tiles`)
}

func TestBuildStage_BadTileSize(t *testing.T) {
	_, err := BuildStage(&StageConfig{ID: "bad"})
	assert.Error(t, err)
}

func TestCharacterConfig_Validate(t *testing.T) {
	cfg := DefaultCharacter()
	assert.NoError(t, cfg.Validate())

	zero := DefaultCharacter()
	zero.MoveSpeed = 0
	zero.TurnDuration = 0
	zero.JumpImpulse = 0
	assert.NoError(t, zero.Validate(), "zero tunables degrade instead of failing")

	bad := DefaultCharacter()
	bad.TurnDuration = -1
	bad.GroundProbe.HalfExtents.Y = -2
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turnDuration")
	assert.Contains(t, err.Error(), "halfExtents")
}

func TestWorldConfig_Validate(t *testing.T) {
	w := DefaultGame().World
	assert.NoError(t, w.Validate())

	w.MaxFixedSteps = 0
	w.Body.Mass = 0
	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxFixedSteps")
	assert.Contains(t, err.Error(), "mass")
}
