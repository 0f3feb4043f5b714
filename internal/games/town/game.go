// Package town hosts the town simulation as a registered game: it turns
// terminal input into simulation intents and draws the world into a
// character screen.
package town

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ceon-town/internal/config"
	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
	"github.com/vovakirdan/ceon-town/internal/registry"
)

// ID is the registry key of the town game.
const ID = "town"

const (
	hudRows    = 1 // top status bar
	statusRows = 1 // bottom prompt line
	viewTop    = hudRows

	minScreenW = 40
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// eventLog receives simulation events. Discards unless SetEventLogger is called.
var eventLog = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetEventLogger routes simulation events to l. A nil logger restores the default.
func SetEventLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	eventLog = l
}

// Game adapts sim.World to the registry.Game interface.
type Game struct {
	world   *sim.World
	cfg     config.TownConfig
	runtime core.RuntimeConfig

	// Terminals report key repeats, not key state, so each axis keeps
	// moving for a short window after its last press.
	moveX, moveY axis

	pointerX, pointerY int
	hasPointer         bool

	runStart int // world time of the current run's start
	tooSmall bool

	preset config.DifficultyPreset // overrides difficultyPreset when set
}

// New creates a town game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ceon Town"
}

// Reset loads the tuning and builds a fresh world from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTown(configPath)
	if err != nil {
		eventLog.Warn("falling back to default town config", "err", err)
		cfg = config.DefaultTownConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	config.ApplyTownPreset(&cfg, preset)

	g.cfg = cfg
	g.runtime = runtime
	g.world = sim.New(cfg, runtime.Seed, g.viewport(runtime.ScreenW, runtime.ScreenH))
	g.moveX, g.moveY = axis{}, axis{}
	g.hasPointer = false
	g.runStart = 0
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	eventLog.Info("town ready", "seed", runtime.Seed, "difficulty", preset)
}

// SetDifficulty picks the preset for this game only; SSH sessions use it
// so that one player's choice does not leak into another's session.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// Resize adapts the camera to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w < minScreenW || h < minScreenH
	if g.world != nil {
		g.world.Viewport = g.viewport(w, h)
	}
}

// World exposes the simulation for tests and tools.
func (g *Game) World() *sim.World {
	return g.world
}

// viewport returns the visible world area for a terminal of w×h cells.
func (g *Game) viewport(w, h int) core.Vec {
	rows := max(0, h-hudRows-statusRows)
	return core.V(float64(w)*g.cfg.Viewport.CellWidth, float64(rows)*g.cfg.Viewport.CellHeight)
}

func (g *Game) viewRows() int {
	return max(0, g.runtime.ScreenH-hudRows-statusRows)
}

// Step translates one frame of input and advances the world by a tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	w := g.world

	if in.HasPointer {
		g.pointerX, g.pointerY, g.hasPointer = in.PointerX, in.PointerY, true
	}

	started, dead, open := w.Started, w.Player.Dead, w.ModalOpen()
	switch {
	case !started:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionInteract) {
			w.Enqueue(sim.StartCommand{})
		}
	case dead:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			w.Enqueue(sim.RespawnCommand{})
		}
	case open:
		if in.Has(core.ActionConfirm) {
			if _, ok := w.ActiveWeaponForBuilding(w.OpenBuilding); ok {
				w.Enqueue(sim.EquipCommand{BuildingID: w.OpenBuilding})
			}
		}
		if in.Has(core.ActionBack) || in.Has(core.ActionInteract) {
			w.Enqueue(sim.CloseBuildingCommand{})
		}
	case w.Paused:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			w.Enqueue(sim.PauseCommand{Paused: false})
		}
	default:
		if in.Has(core.ActionPause) {
			w.Enqueue(sim.PauseCommand{Paused: true})
		}
	}

	intent := sim.Intent{
		Move: sim.DirectionOf(g.moveX.update(in, core.ActionLeft, core.ActionRight), g.moveY.update(in, core.ActionUp, core.ActionDown)),
	}
	if started && !dead && !open && !w.Paused {
		intent.Interact = in.Has(core.ActionInteract) || in.Has(core.ActionConfirm)
		intent.Fire = in.Has(core.ActionFire)
		intent.Pointer = g.aim()
	}

	for _, e := range w.Step(intent) {
		if _, ok := e.(sim.PlayerRespawned); ok {
			g.runStart = w.Time
		}
		logEvent(e)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current run's score and status.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	w := g.world
	return core.GameState{
		Score:    w.Score,
		Level:    w.Wave,
		Kills:    w.Kills,
		Ticks:    w.Time - g.runStart,
		GameOver: w.Player.Dead,
		Paused:   w.Paused,
	}
}
