package sim

import "github.com/vovakirdan/ceon-town/internal/core"

// ActorKind selects the collision rules for CanOccupy.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorEnemy
	ActorProjectile
)

// playerMargin insets the player probe from its tile-sized footprint.
const playerMargin = 8

// CanOccupy reports whether an actor may stand at pos.
//
// For the player pos is the top-left of its tile footprint and radius is
// ignored. For enemies pos is the center and radius the collision radius.
// Projectiles are points. Buildings and the map edge block everyone;
// water only blocks the player.
func (m *Map) CanOccupy(pos core.Vec, kind ActorKind, radius float64) bool {
	switch kind {
	case ActorPlayer:
		return m.PlayerCanMoveTo(pos)
	case ActorEnemy:
		return InBounds(pos) && !m.EnemyCollidesBuilding(pos, radius)
	case ActorProjectile:
		return InBounds(pos) && !m.InsideBuilding(pos)
	default:
		return false
	}
}

// InBounds reports whether p lies within the map, edges included.
func InBounds(p core.Vec) bool {
	return p.X >= 0 && p.X <= MapWidth && p.Y >= 0 && p.Y <= MapHeight
}

// PlayerCanMoveTo tests the inset probe rectangle of a player whose
// footprint starts at pos. Buildings are tested as rectangles, water only
// at the four probe corners, so the player can clip a water tile edge
// diagonally but never a building.
func (m *Map) PlayerCanMoveTo(pos core.Vec) bool {
	left := pos.X + playerMargin
	right := pos.X + TileSize - playerMargin
	top := pos.Y + playerMargin
	bottom := pos.Y + TileSize - playerMargin

	if left < 0 || right > MapWidth || top < 0 || bottom > MapHeight {
		return false
	}

	for _, b := range m.Buildings {
		bl, bt, br, bb := b.Bounds()
		if right > bl && left < br && bottom > bt && top < bb {
			return false
		}
	}

	corners := [4]core.Vec{{X: left, Y: top}, {X: right, Y: top}, {X: left, Y: bottom}, {X: right, Y: bottom}}
	for _, c := range corners {
		t := TileOf(c)
		if m.IsWater(t.X, t.Y) {
			return false
		}
	}
	return true
}

// EnemyCollidesBuilding tests a square of half-width radius around p against every building.
func (m *Map) EnemyCollidesBuilding(p core.Vec, radius float64) bool {
	for _, b := range m.Buildings {
		bl, bt, br, bb := b.Bounds()
		if p.X+radius > bl && p.X-radius < br && p.Y+radius > bt && p.Y-radius < bb {
			return true
		}
	}
	return false
}

// InsideBuilding reports whether p is strictly inside any building.
func (m *Map) InsideBuilding(p core.Vec) bool {
	_, ok := m.BuildingAt(p)
	return ok
}
