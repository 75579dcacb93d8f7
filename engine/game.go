// Package engine owns the per-frame synchronization loop: it integrates
// movement input into the observer, refreshes every object's transform
// parameters, and draws each object before advancing to the next, so a
// draw can never observe a half-written snapshot.
package engine

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/vashkar/lightdrift/audio"
	"github.com/vashkar/lightdrift/config"
	"github.com/vashkar/lightdrift/input"
	"github.com/vashkar/lightdrift/render"
	"github.com/vashkar/lightdrift/scene"
	"github.com/vashkar/lightdrift/vmath"
)

// Sky gradient, deep violet fading to near-black at the horizon line
var (
	skyTop    = vmath.Vec3{X: 0.05, Y: 0.03, Z: 0.12}
	skyBottom = vmath.Vec3{X: 0.01, Y: 0.01, Z: 0.03}
)

// Game wires the scene, the render pipeline, input parsing and audio cues
// into one tick-driven loop. Two states: unlocked (movement and look input
// ignored) and locked (observer responds). All mutation happens on the
// tick goroutine
type Game struct {
	screen tcell.Screen
	scn    *scene.Scene
	fb     *render.Framebuffer
	pipe   *render.Pipeline
	parser *input.Machine
	keys   *input.KeyState
	cues   *audio.Player
	cfg    config.Config
	log    zerolog.Logger
	clock  TimeProvider

	locked   bool
	lastTick time.Time

	// FPS accounting for the HUD
	frames  int
	fps     float64
	fpsMark time.Time
}

// New assembles a game. screen may be nil in tests that never present
func New(screen tcell.Screen, scn *scene.Scene, cues *audio.Player,
	cfg config.Config, log zerolog.Logger, clock TimeProvider) *Game {

	cols, rows := 80, 24
	if screen != nil {
		cols, rows = screen.Size()
	}
	fb := render.NewFramebuffer(cols, rows)
	g := &Game{
		screen:  screen,
		scn:     scn,
		fb:      fb,
		pipe:    render.NewPipeline(fb),
		parser:  input.NewMachine(),
		keys:    input.NewKeyState(cfg.KeyHold),
		cues:    cues,
		cfg:     cfg,
		log:     log,
		clock:   clock,
		fpsMark: clock.Now(),
	}
	g.scn.Observer.SetBeta(cfg.Beta)
	return g
}

// Locked reports the capture-lock state
func (g *Game) Locked() bool {
	return g.locked
}

// Tick runs one frame of the synchronization loop with elapsed time dt.
// Callable directly with synthetic dt and injected key presses; it touches
// the framebuffer but never the terminal
func (g *Game) Tick(dt float64, now time.Time) {
	obs := g.scn.Observer

	if g.locked {
		forward, right := g.keys.Axes(now)
		if forward != 0 || right != 0 {
			if forward != 0 && right != 0 {
				forward *= math.Sqrt2 / 2
				right *= math.Sqrt2 / 2
			}
			step := g.cfg.MoveSpeed * dt
			obs.MoveRelative(forward*step, right*step)
		}
	}

	g.fb.Clear(skyTop, skyBottom)

	// Snapshot then draw, object by object: the ordering guarantee that
	// keeps every draw consistent with exactly one observer state
	for _, o := range g.scn.Objects {
		o.RefreshParams(obs, g.scn.Light)
		g.pipe.DrawObject(o)
	}
}

// Present blits the framebuffer and HUD to the terminal
func (g *Game) Present(now time.Time) {
	if g.screen == nil {
		return
	}
	render.Blit(g.screen, g.fb)

	g.frames++
	if elapsed := now.Sub(g.fpsMark); elapsed >= time.Second {
		g.fps = float64(g.frames) / elapsed.Seconds()
		g.frames = 0
		g.fpsMark = now
		g.log.Debug().Float64("fps", g.fps).Float64("beta", g.scn.Observer.Beta()).Msg("frame rate")
	}

	cols, _ := g.screen.Size()
	render.DrawHUD(g.screen, cols, g.scn.Observer.Beta(), g.locked, g.fps)
	g.screen.Show()
}

// HandleEvent parses and applies one terminal event. Returns false when
// the viewer should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	return g.apply(g.parser.Process(ev, g.locked))
}

func (g *Game) apply(it *input.Intent) bool {
	if it == nil {
		return true
	}
	obs := g.scn.Observer

	switch it.Type {
	case input.IntentQuit:
		return false

	case input.IntentLock:
		if !g.locked {
			g.locked = true
			g.keys.Reset()
			g.cues.LockCue(true)
			g.log.Info().Msg("capture locked")
		}

	case input.IntentRelease:
		if g.locked {
			g.locked = false
			g.keys.Reset()
			g.cues.LockCue(false)
			g.log.Info().Msg("capture released")
		}

	case input.IntentMove:
		// Unlocked state ignores translation input entirely
		if g.locked {
			g.keys.Press(it.Action, g.clock.Now())
		}

	case input.IntentSpeedUp:
		obs.StepBeta(1)
		g.cues.SpeedBlip(obs.Beta())
		g.log.Debug().Float64("beta", obs.Beta()).Msg("speed stepped up")

	case input.IntentSpeedDown:
		obs.StepBeta(-1)
		g.cues.SpeedBlip(obs.Beta())
		g.log.Debug().Float64("beta", obs.Beta()).Msg("speed stepped down")

	case input.IntentLook:
		if g.locked {
			sens := g.cfg.MouseSensitivity
			obs.Look(float64(it.DX)*sens, -float64(it.DY)*sens)
		}

	case input.IntentResize:
		if g.screen != nil {
			g.screen.Sync()
			cols, rows := g.screen.Size()
			g.fb.Resize(cols, rows)
			g.log.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
		}
	}
	return true
}
