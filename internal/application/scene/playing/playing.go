// Package playing provides the main gameplay scene.
package playing

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/turnabout/internal/application/game"
	"github.com/younwookim/turnabout/internal/application/replay"
	"github.com/younwookim/turnabout/internal/application/scene"
	"github.com/younwookim/turnabout/internal/application/state"
	"github.com/younwookim/turnabout/internal/domain/character"
	"github.com/younwookim/turnabout/internal/domain/entity"
	"github.com/younwookim/turnabout/internal/infrastructure/animation"
	"github.com/younwookim/turnabout/internal/infrastructure/config"
	"github.com/younwookim/turnabout/internal/infrastructure/input"
	"github.com/younwookim/turnabout/internal/infrastructure/physics"
)

// fallMargin is how far below the stage a body may drop before respawning
const fallMargin = 64

// Options configures optional scene behaviour
type Options struct {
	// StageName is stored in recordings
	StageName string
	// RecordPath enables input recording when not empty
	RecordPath string
	// Replay drives the scene from recorded input instead of the keyboard
	Replay *replay.Replayer
	// ConfigEvents delivers changed config file paths; Loader rereads them
	ConfigEvents <-chan string
	Loader       *config.Loader
}

// Playing is the main gameplay scene
type Playing struct {
	config    *config.GameConfig
	charCfg   *config.CharacterConfig
	stage     *config.Stage
	state     state.GameState
	screenW   int
	screenH   int
	dt        float64
	scheduler *game.Scheduler

	world *physics.World
	body  *physics.Body
	anim  *animation.Animator
	ctrl  *character.Controller

	// Input: live keyboard/gamepad or a replay, seen through tap
	live     *input.Source
	replayer *replay.Replayer
	tap      *tap

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
	stageName      string

	// Hot reload
	configEvents <-chan string
	loader       *config.Loader
}

// New creates a new Playing scene on stage. With opts.Replay set the scene
// starts in the replaying state and never reads live input.
func New(cfg *config.GameConfig, charCfg *config.CharacterConfig, stage *config.Stage, opts Options) (*Playing, error) {
	if err := character.CheckConfig(charCfg); err != nil {
		return nil, fmt.Errorf("invalid character config: %w", err)
	}

	p := &Playing{
		config:         cfg,
		charCfg:        charCfg,
		stage:          stage,
		state:          state.StatePlaying,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             1.0 / float64(cfg.Display.Framerate),
		scheduler:      game.NewScheduler(cfg.World.FixedStep, cfg.World.MaxFixedSteps),
		world:          physics.NewWorld(cfg.World, stage),
		replayer:       opts.Replay,
		recordFilename: opts.RecordPath,
		stageName:      opts.StageName,
		configEvents:   opts.ConfigEvents,
		loader:         opts.Loader,
	}
	if p.stageName == "" {
		p.stageName = stage.Name
	}

	var src character.InputSource
	if p.replayer != nil {
		p.state = state.StateReplaying
		src = p.replayer
	} else {
		live, err := input.New(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to create input source: %w", err)
		}
		p.live = live
		src = live
	}
	p.tap = newTap(src)

	p.body = p.world.NewBody(stage.SpawnX, stage.SpawnY)
	p.spawnCharacter()

	// Initialize recorder if recording is enabled
	if p.recordFilename != "" && p.replayer == nil {
		p.recorder = replay.NewRecorder(p.stageName)
		slog.Info("recording enabled", "file", p.recordFilename, "stage", p.stageName)
	}

	return p, nil
}

// spawnCharacter builds a fresh animator and controller around the body
func (p *Playing) spawnCharacter() {
	p.anim = animation.New(animation.Params{
		Moving:   character.ParamMoving,
		Grounded: character.ParamGrounded,
		Action:   character.ParamAction,
	}, p.config.Anim.ActionClip)

	p.ctrl = character.New(character.Deps{
		Input:     p.tap,
		Body:      p.body,
		Probe:     p.world,
		Anim:      p.anim,
		Transform: p.body,
	}, p.charCfg)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.drainConfigEvents()

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateReplaying:
		p.updateReplaying()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
		return
	}

	p.live.Poll(dt)
	p.step(dt)

	// Record what the controller read this frame
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, p.tap.axes, p.tap.pressed)
	}
}

func (p *Playing) updateReplaying() {
	dt, ok := p.replayer.Next()
	if !ok {
		p.state = state.StateReplayDone
		slog.Info("replay finished", "frames", p.replayer.TotalFrames(), "snapshot", p.Snapshot())
		return
	}
	p.step(dt)
}

// step runs one frame: controller decisions, fixed physics ticks, then the
// animator so it sees this frame's parameters
func (p *Playing) step(dt float64) {
	p.tap.reset()
	p.scheduler.Advance(dt, simulation{ctrl: p.ctrl, world: p.world})
	p.anim.Advance(dt)

	_, y, _, _ := p.body.Rect()
	if y > float64(p.stage.Height+fallMargin) {
		slog.Info("character fell out of the stage, respawning", "y", y)
		p.body.Teleport(p.stage.SpawnX, p.stage.SpawnY)
	}
}

// RunReplay advances a replaying scene until its frames run out or ctx is
// done, and returns the final snapshot
func (p *Playing) RunReplay(ctx context.Context) (Snapshot, error) {
	if p.replayer == nil {
		return Snapshot{}, fmt.Errorf("scene is not replaying")
	}
	for p.state == state.StateReplaying {
		if err := ctx.Err(); err != nil {
			return p.Snapshot(), fmt.Errorf("replay interrupted at frame %d: %w", p.replayer.CurrentFrame(), err)
		}
		if _, err := p.Update(0); err != nil {
			return p.Snapshot(), err
		}
	}
	return p.Snapshot(), nil
}

// drainConfigEvents applies pending config file changes without blocking
func (p *Playing) drainConfigEvents() {
	if p.configEvents == nil {
		return
	}
	for {
		select {
		case name, ok := <-p.configEvents:
			if !ok {
				p.configEvents = nil
				return
			}
			if filepath.Base(name) != config.CharacterFile {
				slog.Debug("config change ignored", "file", name)
				continue
			}
			p.reloadCharacter()
		default:
			return
		}
	}
}

// reloadCharacter rereads character.yaml; a bad file keeps the old tunables
func (p *Playing) reloadCharacter() {
	if p.loader == nil {
		return
	}
	cfg, err := p.loader.LoadCharacter()
	if err == nil {
		err = character.CheckConfig(cfg)
	}
	if err != nil {
		slog.Warn("character config reload failed", "err", err)
		return
	}
	p.charCfg = cfg
	p.ctrl.SetConfig(cfg)
	slog.Info("character config reloaded",
		"moveSpeed", cfg.MoveSpeed,
		"jumpImpulse", cfg.JumpImpulse,
		"turnDuration", cfg.TurnDuration,
		"turnEasing", cfg.TurnEasing)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		slog.Error("failed to save recording", "file", filename, "err", err)
	} else {
		slog.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.body.Teleport(p.stage.SpawnX, p.stage.SpawnY)
	p.body.SetRotation(entity.Identity)
	p.scheduler.Reset()
	p.spawnCharacter()
	p.state = state.StatePlaying

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.stageName)
		slog.Info("recording restarted", "file", p.recordFilename)
	}
}

// Snapshot returns the character state after the last frame
func (p *Playing) Snapshot() Snapshot {
	rot := p.body.Rotation()
	return Snapshot{
		Frame:    p.scheduler.Frames(),
		Steps:    p.scheduler.Steps(),
		State:    p.state,
		Position: p.body.Position(),
		Velocity: p.body.Velocity(),
		Facing:   p.ctrl.Facing(),
		Yaw:      rot.Yaw(),
		Turning:  p.ctrl.Turn().Active(),
		Grounded: p.ctrl.Grounded(),
		Anim:     p.anim.State(),
	}
}

// State returns the scene's run state
func (p *Playing) State() state.GameState {
	return p.state
}

// DT returns the frame time implied by the configured framerate
func (p *Playing) DT() float64 {
	return p.dt
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
