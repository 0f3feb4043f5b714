package sim

import "github.com/vovakirdan/ceon-town/internal/core"

// Event is something the simulation reports to its host after a tick.
type Event interface {
	simEvent()
}

// WaveStarted is emitted when a wave spawns.
type WaveStarted struct {
	Wave  int
	Count int
}

func (WaveStarted) simEvent() {}

// WeaponAppeared is emitted when a weapon is placed with an announcement.
type WeaponAppeared struct {
	BuildingID string
	Label      string
	Weapon     WeaponKind
}

func (WeaponAppeared) simEvent() {}

// WeaponCollected is emitted when the player equips the pickup.
type WeaponCollected struct {
	BuildingID string
	Weapon     WeaponKind
}

func (WeaponCollected) simEvent() {}

// WeaponDepleted is emitted when an empty weapon is taken away.
type WeaponDepleted struct {
	Weapon WeaponKind
}

func (WeaponDepleted) simEvent() {}

// ShotFired is emitted for every accepted fire intent.
type ShotFired struct {
	Weapon   WeaponKind
	AmmoLeft int
}

func (ShotFired) simEvent() {}

// EnemyHit is emitted when a projectile damages an enemy.
type EnemyHit struct {
	Kind   EnemyKind
	Damage int
	HPLeft int
}

func (EnemyHit) simEvent() {}

// EnemyKilled is emitted when an enemy is removed.
type EnemyKilled struct {
	ID    int
	Kind  EnemyKind
	Pos   core.Vec
	Score int // points awarded
	Total int // score after the award
}

func (EnemyKilled) simEvent() {}

// PlayerDamaged is emitted on every contact hit.
type PlayerDamaged struct {
	By     EnemyKind
	Damage int
	HPLeft int
}

func (PlayerDamaged) simEvent() {}

// PlayerDied is emitted once when hp reaches zero.
type PlayerDied struct {
	Score int
	Wave  int
	Kills int
	Ticks int
}

func (PlayerDied) simEvent() {}

// PlayerRespawned is emitted after a respawn command resets the run.
type PlayerRespawned struct{}

func (PlayerRespawned) simEvent() {}

// BuildingEntered is emitted when the player opens a building.
// Weapon is WeaponNone when the building holds no pickup.
type BuildingEntered struct {
	BuildingID string
	Weapon     WeaponKind
}

func (BuildingEntered) simEvent() {}

// BuildingLeft is emitted when the building dialog closes.
type BuildingLeft struct {
	BuildingID string
}

func (BuildingLeft) simEvent() {}

// Command is an external request, applied at the start of the next tick.
type Command interface {
	simCommand()
}

// StartCommand leaves the welcome screen.
type StartCommand struct{}

func (StartCommand) simCommand() {}

// EquipCommand picks up the weapon waiting in a building.
// Ignored unless that building holds an uncollected weapon.
type EquipCommand struct {
	BuildingID string
}

func (EquipCommand) simCommand() {}

// CloseBuildingCommand closes the open building dialog.
type CloseBuildingCommand struct{}

func (CloseBuildingCommand) simCommand() {}

// PauseCommand sets the pause flag. A paused world behaves like one with
// an open dialog.
type PauseCommand struct {
	Paused bool
}

func (PauseCommand) simCommand() {}

// RespawnCommand restarts the run after death.
type RespawnCommand struct{}

func (RespawnCommand) simCommand() {}
