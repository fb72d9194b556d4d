package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/turnabout/internal/application/game"
	"github.com/younwookim/turnabout/internal/application/scene/playing"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
)

// flags holds the parsed command line
type flags struct {
	configDir string
	stage     string
	record    string
	replay    string
	watch     bool
	verbose   bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.StringVar(&f.configDir, "config", "", "Config directory (default: embedded configs)")
	fset.StringVar(&f.stage, "stage", "demo", "Stage name under <config>/stages")
	fset.StringVar(&f.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&f.replay, "replay", "", "Replay a recording headlessly and log the final state")
	fset.BoolVar(&f.watch, "watch", false, "Reload character.yaml from -config when it changes")
	fset.BoolVar(&f.verbose, "v", false, "Verbose logging")
	if err := fset.Parse(args); err != nil {
		return flags{}, err
	}
	if f.watch && f.configDir == "" {
		return flags{}, fmt.Errorf("-watch needs -config")
	}
	return f, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// newLoader returns a loader over dir, or over the embedded configs when
// dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	setupLogging(f.verbose)

	loader, err := newLoader(f.configDir)
	if err != nil {
		slog.Error("failed to open configs", "err", err)
		os.Exit(1)
	}

	if f.replay != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := runReplay(ctx, loader, f.replay, f.stage); err != nil {
			slog.Error("replay failed", "file", f.replay, "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(loader, f); err != nil {
		slog.Error("game exited with error", "err", err)
		os.Exit(1)
	}
}

func run(loader *config.Loader, f flags) error {
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	stage, err := loader.LoadStage(f.stage)
	if err != nil {
		return fmt.Errorf("failed to load stage: %w", err)
	}
	slog.Info("stage loaded", "stage", stage.Name, "solids", len(stage.Solids), "layers", stage.Layers())

	opts := playing.Options{
		StageName:  f.stage,
		RecordPath: f.record,
		Loader:     loader,
	}

	if f.watch {
		watcher, err := config.NewWatcher(f.configDir)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", f.configDir, err)
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors {
				slog.Warn("config watcher error", "err", err)
			}
		}()
		opts.ConfigEvents = watcher.Events
		slog.Info("watching config", "dir", f.configDir)
	}

	scene, err := playing.New(cfg.Game, cfg.Character, stage, opts)
	if err != nil {
		return err
	}

	display := cfg.Game.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(scene.DT())

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Turnabout")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	scene.OnExit()
	return err
}
