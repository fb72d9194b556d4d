package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/turnabout/internal/application/state"
	"github.com/younwookim/turnabout/internal/infrastructure/animation"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorSolid   = color.RGBA{80, 80, 100, 255}
	colorOther   = color.RGBA{60, 100, 80, 255}
	colorProbeOn = color.RGBA{100, 220, 100, 128}
	colorProbe   = color.RGBA{200, 200, 100, 128}
	colorFront   = color.RGBA{255, 255, 255, 255}
)

// animColors tints the character by animation state
var animColors = map[animation.State]color.RGBA{
	animation.StateIdle:     {100, 200, 100, 255},
	animation.StateRun:      {100, 180, 230, 255},
	animation.StateAirborne: {230, 200, 90, 255},
	animation.StateAction:   {230, 90, 90, 255},
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawStage(screen, camX, camY)
	p.drawCharacter(screen, camX, camY)
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.drawProbe(screen, camX, camY)
	}

	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayDone:
		p.drawOverlay(screen, "REPLAY FINISHED")
	}
}

// camera centres on the body, clamped to stage bounds
func (p *Playing) camera() (float64, float64) {
	x, y, w, h := p.body.Rect()
	camX := x + w/2 - float64(p.screenW)/2
	camY := y + h/2 - float64(p.screenH)/2

	maxCamX := float64(p.stage.Width - p.screenW)
	maxCamY := float64(p.stage.Height - p.screenH)
	camX = math.Max(0, math.Min(camX, maxCamX))
	camY = math.Max(0, math.Min(camY, maxCamY))
	return math.Floor(camX), math.Floor(camY)
}

func (p *Playing) drawStage(screen *ebiten.Image, camX, camY float64) {
	sw, sh := float64(p.screenW), float64(p.screenH)
	for _, r := range p.stage.Solids {
		x, y := r.X-camX, r.Y-camY
		if x+r.W < 0 || y+r.H < 0 || x > sw || y > sh {
			continue
		}
		c := colorOther
		if r.Layer == p.charCfg.GroundProbe.Layer {
			c = colorSolid
		}
		ebitenutil.DrawRect(screen, x, y, r.W, r.H, c)
	}
}

// drawCharacter draws the body box squashed by the turn: the visible width
// is the box width times |cos(yaw)|, and a marker shows which side is front
func (p *Playing) drawCharacter(screen *ebiten.Image, camX, camY float64) {
	x, y, w, h := p.body.Rect()
	x -= camX
	y -= camY

	yawRad := p.body.Rotation().Yaw() * math.Pi / 180
	cos := math.Cos(yawRad)
	vw := math.Max(2, w*math.Abs(cos))
	cx := x + w/2

	c, ok := animColors[p.anim.State()]
	if !ok {
		c = animColors[animation.StateIdle]
	}
	ebitenutil.DrawRect(screen, cx-vw/2, y, vw, h, c)

	// Front marker
	front := cx + vw/2 - 2
	if cos < 0 {
		front = cx - vw/2
	}
	ebitenutil.DrawRect(screen, front, y+4, 2, 4, colorFront)
}

func (p *Playing) drawProbe(screen *ebiten.Image, camX, camY float64) {
	probe := p.charCfg.GroundProbe
	feet := p.body.Position().Add(probe.Anchor)
	he := probe.HalfExtents.Abs()

	c := colorProbe
	if p.ctrl.Grounded() {
		c = colorProbeOn
	}
	// World Y is up; screen Y is down
	ebitenutil.DrawRect(screen, feet.X-he.X-camX, -feet.Y-he.Y-camY, 2*he.X, 2*he.Y, c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	s := p.Snapshot()
	status := fmt.Sprintf("%s | %s | facing %s yaw %.0f | grounded %t | %s",
		p.stageName, s.State, s.Facing, s.Yaw, s.Grounded, s.Anim)
	if p.recorder != nil {
		status += fmt.Sprintf(" | REC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrintAt(screen, status, 4, p.screenH-16)

	// Controls
	debugText := "A/D: Move | Space/W: Jump | E: Action | R: Restart | Tab: Probe | ESC: Pause"
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}
