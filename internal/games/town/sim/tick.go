package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ceon-town/internal/config"
	"github.com/vovakirdan/ceon-town/internal/core"
)

const (
	diagonalFactor = 0.707
	frameStep      = 0.15
)

// World is the whole simulation state. It is owned by a single goroutine;
// hosts read it between ticks and change it only through Enqueue.
type World struct {
	cfg           config.TownConfig
	rng           *rand.Rand
	startBuilding string

	Map *Map

	Player       Player
	Enemies      []Enemy
	Projectiles  []Projectile
	Particles    []Particle
	Spawn        WeaponSpawn
	Notification *Notification

	Camera   core.Vec
	Viewport core.Vec // visible area in world units
	near     int      // index into Map.Buildings, -1 if none

	Score int
	Kills int
	Wave  int
	// WaveTimer counts ticks since the last timed wave.
	WaveTimer int
	// Time counts simulated ticks since the run started.
	Time int

	Started      bool
	Paused       bool
	OpenBuilding string // building whose dialog is open, "" if none

	commands    []Command
	events      []Event
	nextEnemyID int
}

// New creates a world on the default town map. The seed drives every
// random choice made during play.
func New(cfg config.TownConfig, seed int64, viewport core.Vec) *World {
	return NewWithMap(cfg, seed, viewport, DefaultMap())
}

// NewWithMap creates a world on a custom map.
func NewWithMap(cfg config.TownConfig, seed int64, viewport core.Vec, m *Map) *World {
	w := &World{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		Map:      m,
		Viewport: viewport,
		near:     -1,
	}
	w.startBuilding = cfg.Weapons.StartBuilding
	if _, ok := m.Building(w.startBuilding); !ok && len(m.Buildings) > 0 {
		w.startBuilding = m.Buildings[0].ID
	}
	w.resetPlayer()
	w.updateCamera()
	w.updateNearBuilding()
	return w
}

// Config returns the tuning the world was built with.
func (w *World) Config() config.TownConfig {
	return w.cfg
}

func (w *World) resetPlayer() {
	w.Player = Player{
		Pos:   core.V(float64(w.cfg.Player.StartTileX*TileSize), float64(w.cfg.Player.StartTileY*TileSize)),
		Speed: w.cfg.Player.Speed,
		HP:    w.cfg.Player.MaxHP,
		MaxHP: w.cfg.Player.MaxHP,
	}
}

// Enqueue schedules a command for the start of the next tick.
func (w *World) Enqueue(c Command) {
	w.commands = append(w.commands, c)
}

// Step advances the world by one tick and returns the events it produced.
// Nothing advances before the run is started or while the player is dead,
// but queued commands are always applied.
func (w *World) Step(in Intent) []Event {
	w.applyCommands()
	if w.Started && !w.Player.Dead {
		w.handleIntent(in)
		w.advance(in.Move)
	}
	out := w.events
	w.events = nil
	return out
}

// ModalOpen reports whether a building dialog is open.
func (w *World) ModalOpen() bool {
	return w.OpenBuilding != ""
}

// frozen is true while player movement and spawning are suspended.
func (w *World) frozen() bool {
	return w.ModalOpen() || w.Paused
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) notify(text string, life int) {
	w.Notification = &Notification{Text: text, Life: life}
}

func (w *World) applyCommands() {
	cmds := w.commands
	w.commands = nil
	for _, c := range cmds {
		switch c := c.(type) {
		case StartCommand:
			w.Started = true
		case EquipCommand:
			w.equip(c.BuildingID)
		case CloseBuildingCommand:
			if w.OpenBuilding != "" {
				w.emit(BuildingLeft{BuildingID: w.OpenBuilding})
				w.OpenBuilding = ""
			}
		case PauseCommand:
			w.Paused = c.Paused
		case RespawnCommand:
			if w.Player.Dead {
				w.respawn()
			}
		}
	}
}

func (w *World) handleIntent(in Intent) {
	if in.Interact && !w.ModalOpen() {
		if b, ok := w.NearBuilding(); ok {
			w.OpenBuilding = b.ID
			weapon, _ := w.ActiveWeaponForBuilding(b.ID)
			w.emit(BuildingEntered{BuildingID: b.ID, Weapon: weapon})
		}
	}
	if in.Fire && !w.frozen() {
		w.fire(in.Pointer)
	}
}

// advance runs the ordered per-tick pass.
func (w *World) advance(move Direction) {
	w.Time++
	frozen := w.frozen()

	if !frozen {
		w.movePlayer(move)
	}
	w.updateCamera()
	w.updateNearBuilding()

	p := &w.Player
	p.FireCooldown = dec(p.FireCooldown)
	p.Invincible = dec(p.Invincible)
	w.Spawn.Cooldown = dec(w.Spawn.Cooldown)

	if !frozen {
		w.directSpawns()
	}
	if !w.updateEnemies() {
		return
	}
	w.updateProjectiles()
	w.updateParticles()
	w.updateNotification()
}

func (w *World) movePlayer(move Direction) {
	dx, dy := move.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}

	p := &w.Player
	from := p.Pos
	to := from.Add(core.V(dx*p.Speed, dy*p.Speed))
	switch {
	case w.Map.PlayerCanMoveTo(to):
		p.Pos = to
	case w.Map.PlayerCanMoveTo(core.V(to.X, from.Y)):
		p.Pos.X = to.X
	case w.Map.PlayerCanMoveTo(core.V(from.X, to.Y)):
		p.Pos.Y = to.Y
	}
	if p.Pos == from {
		return
	}

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			p.Facing = FacingRight
		} else {
			p.Facing = FacingLeft
		}
	} else {
		if dy > 0 {
			p.Facing = FacingDown
		} else {
			p.Facing = FacingUp
		}
	}
	p.Frame += frameStep
}

func (w *World) updateCamera() {
	c := w.Player.Center()
	w.Camera = core.V(
		core.ClampF(c.X-w.Viewport.X/2, 0, MapWidth-w.Viewport.X),
		core.ClampF(c.Y-w.Viewport.Y/2, 0, MapHeight-w.Viewport.Y),
	)
}

func (w *World) updateNearBuilding() {
	w.near = -1
	c := w.Player.Center()
	for i, b := range w.Map.Buildings {
		if c.Dist(b.Center()) < b.InteractRange() {
			w.near = i
			return
		}
	}
}

// NearBuilding returns the building the player can enter, as of the last tick.
// Buildings are checked in declaration order, so the first in range wins.
func (w *World) NearBuilding() (Building, bool) {
	if w.near < 0 || w.near >= len(w.Map.Buildings) {
		return Building{}, false
	}
	return w.Map.Buildings[w.near], true
}

func (w *World) updateParticles() {
	for i := len(w.Particles) - 1; i >= 0; i-- {
		pt := &w.Particles[i]
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Vel = pt.Vel.Scale(particleDrag)
		pt.Life = dec(pt.Life)
		if pt.Life == 0 {
			w.Particles = append(w.Particles[:i], w.Particles[i+1:]...)
		}
	}
}

func (w *World) updateNotification() {
	if w.Notification == nil {
		return
	}
	w.Notification.Life = dec(w.Notification.Life)
	if w.Notification.Life == 0 {
		w.Notification = nil
	}
}

func (w *World) respawn() {
	w.resetPlayer()
	w.Player.Invincible = w.cfg.Player.RespawnInvincibility
	w.Enemies = nil
	w.Projectiles = nil
	w.Particles = nil
	w.Score = 0
	w.Kills = 0
	w.Wave = 0
	w.WaveTimer = 0
	w.OpenBuilding = ""
	w.Spawn = WeaponSpawn{}
	w.spawnWeapon(w.startBuilding, true)
	w.updateCamera()
	w.updateNearBuilding()
	w.emit(PlayerRespawned{})
}

// WaveBanner reports whether the "wave incoming" banner should show.
func (w *World) WaveBanner() bool {
	return w.Wave > 0 && w.WaveTimer < w.cfg.Waves.BannerTicks
}
