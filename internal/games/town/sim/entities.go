package sim

import "github.com/vovakirdan/ceon-town/internal/core"

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingDown Facing = iota
	FacingRight
	FacingUp
	FacingLeft
)

// Unit returns a unit vector pointing where the player faces.
func (f Facing) Unit() core.Vec {
	switch f {
	case FacingRight:
		return core.V(1, 0)
	case FacingUp:
		return core.V(0, -1)
	case FacingLeft:
		return core.V(-1, 0)
	default:
		return core.V(0, 1)
	}
}

// Player is the single controllable actor. Pos is the top-left corner of
// a TileSize footprint.
type Player struct {
	Pos          core.Vec
	Facing       Facing
	Frame        float64 // walk animation phase
	Speed        float64
	HP, MaxHP    int
	Weapon       WeaponKind
	Ammo         int
	FireCooldown int
	Invincible   int
	Dead         bool
}

// Center returns the middle of the player's footprint.
func (p Player) Center() core.Vec {
	return p.Pos.Add(core.V(TileSize/2, TileSize/2))
}

// Enemy is a live hostile. Pos is its center.
type Enemy struct {
	ID                int // unique per world, from 1
	Kind              EnemyKind
	Pos               core.Vec
	HP, MaxHP         int
	Speed             float64
	Damage            int
	AttackCooldown    int
	MaxAttackCooldown int
	PatrolAngle       float64
	PatrolTimer       int
	HitFlash          int
}

// Projectile is a shot in flight. Visual fields are copied from the
// weapon at fire time.
type Projectile struct {
	Pos, Vel   core.Vec
	Damage     int
	Size       float64
	Color      core.Color
	Glyph      rune
	Life       int
	FromPlayer bool
}

// Particle is a short-lived cosmetic dot.
type Particle struct {
	Pos, Vel core.Vec
	Life     int
	Color    core.Color
	Size     float64
}

// WeaponSpawn tracks the one weapon pickup in town.
// An empty BuildingID means nothing has been placed yet.
type WeaponSpawn struct {
	BuildingID string
	Weapon     WeaponKind
	Collected  bool
	Cooldown   int
}

// Notification is the transient pickup banner.
type Notification struct {
	Text string
	Life int
}

// Direction is an 8-way movement intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

// Delta returns the unnormalized axis components of the direction.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirUpRight:
		return 1, -1
	case DirRight:
		return 1, 0
	case DirDownRight:
		return 1, 1
	case DirDown:
		return 0, 1
	case DirDownLeft:
		return -1, 1
	case DirLeft:
		return -1, 0
	case DirUpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// DirectionOf combines axis inputs (-1, 0 or 1 each) into a Direction.
func DirectionOf(dx, dy int) Direction {
	switch {
	case dx == 0 && dy < 0:
		return DirUp
	case dx > 0 && dy < 0:
		return DirUpRight
	case dx > 0 && dy == 0:
		return DirRight
	case dx > 0 && dy > 0:
		return DirDownRight
	case dx == 0 && dy > 0:
		return DirDown
	case dx < 0 && dy > 0:
		return DirDownLeft
	case dx < 0 && dy == 0:
		return DirLeft
	case dx < 0 && dy < 0:
		return DirUpLeft
	default:
		return DirNone
	}
}

// Intent is the input for one tick. Fire and Interact are edge-triggered;
// Pointer is the aim target in viewport coordinates (world units relative
// to the camera).
type Intent struct {
	Move     Direction
	Fire     bool
	Interact bool
	Pointer  core.Vec
}

func dec(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}
