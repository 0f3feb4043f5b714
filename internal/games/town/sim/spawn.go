package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ceon-town/internal/core"
)

// maxSpawnAttempts bounds the retries for one enemy position. The stock map
// never gets close. After that the spawn ring is swept for a free point.
const maxSpawnAttempts = 64

// directSpawns runs the weapon and wave timers. Not called while frozen.
func (w *World) directSpawns() {
	p := &w.Player

	if w.Spawn.BuildingID == "" {
		w.spawnWeapon(w.startBuilding, true)
	}
	if w.Spawn.Collected && p.Weapon != WeaponNone && p.Ammo <= 0 {
		spent := p.Weapon
		w.spawnWeapon("", false)
		p.Weapon = WeaponNone
		w.emit(WeaponDepleted{Weapon: spent})
	}

	w.WaveTimer++
	if w.WaveTimer >= w.cfg.Waves.Interval && len(w.Enemies) < w.cfg.Waves.MaxAlive {
		w.spawnWave()
		w.WaveTimer = 0
	}
	if w.Wave == 0 && w.Time > w.cfg.Waves.FirstDelay {
		w.spawnWave()
	}
}

// spawnWeapon places a random weapon. With force set it goes to that
// building, otherwise to a random building other than the previous host.
// Silent placements do not announce themselves.
func (w *World) spawnWeapon(force string, silent bool) {
	var b Building
	if force != "" {
		var ok bool
		if b, ok = w.Map.Building(force); !ok {
			return
		}
	} else {
		candidates := make([]Building, 0, len(w.Map.Buildings))
		for _, c := range w.Map.Buildings {
			if c.ID != w.Spawn.BuildingID {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			candidates = w.Map.Buildings
		}
		if len(candidates) == 0 {
			return
		}
		b = candidates[w.rng.Intn(len(candidates))]
	}

	kind := Weapons[w.rng.Intn(len(Weapons))]
	w.Spawn = WeaponSpawn{
		BuildingID: b.ID,
		Weapon:     kind,
		Cooldown:   w.cfg.Weapons.RespawnCooldown,
	}

	if w.Started && !silent {
		w.notify(fmt.Sprintf("%s appeared at %s!", kind.Def().Name, b.Label), w.cfg.Weapons.AppearNotice)
		w.emit(WeaponAppeared{BuildingID: b.ID, Label: b.Label, Weapon: kind})
	}
}

// ActiveWeaponForBuilding returns the uncollected weapon waiting in a building.
func (w *World) ActiveWeaponForBuilding(id string) (WeaponKind, bool) {
	if id == "" || w.Spawn.BuildingID != id || w.Spawn.Collected {
		return WeaponNone, false
	}
	return w.Spawn.Weapon, true
}

func (w *World) equip(buildingID string) {
	kind, ok := w.ActiveWeaponForBuilding(buildingID)
	if !ok || w.Player.Dead {
		return
	}
	def := kind.Def()
	w.Player.Weapon = kind
	w.Player.Ammo = def.Ammo
	w.Spawn.Collected = true
	w.notify(fmt.Sprintf("Picked up %s!", def.Name), w.cfg.Weapons.PickupNotice)
	w.emit(WeaponCollected{BuildingID: buildingID, Weapon: kind})
}

// WaveSize returns how many enemies wave n spawns.
func (w *World) WaveSize(n int) int {
	return w.cfg.Waves.BaseSize + int(math.Floor(float64(n)*w.cfg.Waves.SizePerWave))
}

// enemyPool returns how many enemy kinds wave n may draw from.
func enemyPool(n int) int {
	return min(len(Enemies), 1+n/2)
}

func (w *World) spawnWave() {
	w.Wave++
	count := w.WaveSize(w.Wave)
	pool := enemyPool(w.Wave)
	target := w.Player.Center()

	for spawned, attempts := 0, 0; spawned < count; {
		kind := Enemies[w.rng.Intn(pool)]
		pos := w.edgePosition()
		if w.spawnBlocked(pos) {
			if attempts < maxSpawnAttempts {
				attempts++
				continue
			}
			if free, ok := w.freeEdgePosition(); ok {
				pos = free
			}
		}
		attempts = 0
		w.nextEnemyID++

		def := kind.Def()
		hp := def.HP + w.Wave*w.cfg.Waves.HPPerWave
		w.Enemies = append(w.Enemies, Enemy{
			ID:                w.nextEnemyID,
			Kind:              kind,
			Pos:               pos,
			HP:                hp,
			MaxHP:             hp,
			Speed:             def.Speed + float64(w.Wave)*w.cfg.Waves.SpeedPerWave,
			Damage:            def.Damage,
			MaxAttackCooldown: def.AttackCooldown,
			PatrolAngle:       target.Sub(pos).Angle() + (w.rng.Float64()-0.5)*0.5,
		})
		spawned++
	}

	w.emit(WaveStarted{Wave: w.Wave, Count: count})
}

// edgePosition picks a point two tiles in from a random map edge.
func (w *World) edgePosition() core.Vec {
	const inset = 2 * TileSize
	switch w.rng.Intn(4) {
	case 0:
		return core.V(inset+w.rng.Float64()*(MapWidth-2*inset), inset)
	case 1:
		return core.V(MapWidth-inset, inset+w.rng.Float64()*(MapHeight-2*inset))
	case 2:
		return core.V(inset+w.rng.Float64()*(MapWidth-2*inset), MapHeight-inset)
	default:
		return core.V(inset, inset+w.rng.Float64()*(MapHeight-2*inset))
	}
}

// freeEdgePosition sweeps the spawn ring for an unblocked point, starting
// at a random spot. It fails only when buildings cover the whole ring.
func (w *World) freeEdgePosition() (core.Vec, bool) {
	ring := edgeRing()
	start := w.rng.Intn(len(ring))
	for i := range ring {
		if p := ring[(start+i)%len(ring)]; !w.spawnBlocked(p) {
			return p, true
		}
	}
	return core.Vec{}, false
}

// edgeRing lists spawn points every half tile along the four spawn edges.
func edgeRing() []core.Vec {
	const (
		inset = 2 * TileSize
		step  = TileSize / 2
	)
	var ring []core.Vec
	for x := float64(inset); x <= MapWidth-inset; x += step {
		ring = append(ring, core.V(x, inset), core.V(x, MapHeight-inset))
	}
	for y := float64(inset + step); y < MapHeight-inset; y += step {
		ring = append(ring, core.V(inset, y), core.V(MapWidth-inset, y))
	}
	return ring
}

// spawnBlocked reports whether p falls within a tile of any building.
func (w *World) spawnBlocked(p core.Vec) bool {
	for _, b := range w.Map.Buildings {
		l := float64((b.X - 1) * TileSize)
		r := float64((b.X + b.W + 1) * TileSize)
		t := float64((b.Y - 1) * TileSize)
		bt := float64((b.Y + b.H + 1) * TileSize)
		if p.X > l && p.X < r && p.Y > t && p.Y < bt {
			return true
		}
	}
	return false
}
