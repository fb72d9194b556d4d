package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/turnabout/internal/application/replay"
	"github.com/younwookim/turnabout/internal/application/state"
	"github.com/younwookim/turnabout/internal/domain/entity"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    flags
		wantErr bool
	}{
		{"defaults", nil, flags{stage: "demo"}, false},
		{"record", []string{"-record", "out.json", "-stage", "tiled"}, flags{stage: "tiled", record: "out.json"}, false},
		{"watch with config", []string{"-config", "cfg", "-watch", "-v"}, flags{configDir: "cfg", stage: "demo", watch: true, verbose: true}, false},
		{"watch without config", []string{"-watch"}, flags{}, true},
		{"unknown flag", []string{"-nope"}, flags{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLoader_Embedded(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Character.MoveSpeed)

	for _, name := range []string{"demo", "tiled"} {
		stage, err := loader.LoadStage(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, stage.Solids, name)
	}
}

func writeReplay(t *testing.T, data replay.ReplayData) string {
	t.Helper()
	rec := replay.NewRecorder(data.Stage)
	for _, f := range data.Frames {
		rec.RecordFrame(f.DT, f.Axes, f.Pressed)
	}
	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(path))
	return path
}

func TestRunReplay(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	data := replay.CreateTestReplayData(60, 1.0/60.0, "Horizontal", -1)
	data.Stage = "demo"
	path := writeReplay(t, data)

	snap, err := runReplay(context.Background(), loader, path, "tiled")
	require.NoError(t, err)

	assert.Equal(t, state.StateReplayDone, snap.State)
	assert.Equal(t, uint64(60), snap.Frame)
	assert.Equal(t, entity.FacingLeft, snap.Facing)
	assert.False(t, snap.Turning)
}

func TestRunReplay_MissingFile(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	_, err = runReplay(context.Background(), loader, filepath.Join(t.TempDir(), "nope.json"), "demo")

	assert.Error(t, err)
}

func TestRunReplay_UnknownStage(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	data := replay.CreateTestReplayData(5, 1.0/60.0, "Horizontal", 0)
	data.Stage = "missing"
	path := writeReplay(t, data)

	_, err = runReplay(context.Background(), loader, path, "demo")

	assert.Error(t, err)
}
