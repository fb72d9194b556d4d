package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/younwookim/turnabout/internal/application/replay"
	"github.com/younwookim/turnabout/internal/application/scene/playing"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
)

// runReplay plays a recording without a window. The recording's stage wins
// over fallbackStage.
func runReplay(ctx context.Context, loader *config.Loader, path, fallbackStage string) (playing.Snapshot, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return playing.Snapshot{}, err
	}
	if data.Version != replay.Version {
		return playing.Snapshot{}, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, replay.Version)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return playing.Snapshot{}, fmt.Errorf("failed to load config: %w", err)
	}

	stageName := data.Stage
	if stageName == "" {
		stageName = fallbackStage
	}
	stage, err := loader.LoadStage(stageName)
	if err != nil {
		return playing.Snapshot{}, fmt.Errorf("failed to load stage: %w", err)
	}

	replayer := replay.NewReplayer(*data)
	scene, err := playing.New(cfg.Game, cfg.Character, stage, playing.Options{
		StageName: stageName,
		Replay:    replayer,
	})
	if err != nil {
		return playing.Snapshot{}, err
	}

	slog.Info("replaying", "file", path, "stage", stageName, "frames", replayer.TotalFrames(), "recorded", data.StartTime)
	snap, err := scene.RunReplay(ctx)
	if err != nil {
		return snap, err
	}
	slog.Info("replay result", "snapshot", snap)
	return snap, nil
}
