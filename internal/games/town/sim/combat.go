package sim

import (
	"math"

	"github.com/vovakirdan/ceon-town/internal/core"
)

const (
	enemyHitFlash = 8
	particleDrag  = 0.95
	sparkLife     = 15
)

// fire shoots the equipped weapon toward a pointer given in viewport
// coordinates. Ignored without a weapon, without ammo, or on cooldown.
func (w *World) fire(pointer core.Vec) {
	p := &w.Player
	if p.Weapon == WeaponNone || p.Ammo <= 0 || p.FireCooldown > 0 {
		return
	}

	def := p.Weapon.Def()
	p.FireCooldown = def.FireRate
	p.Ammo = max(0, p.Ammo-1)

	origin := p.Center()
	angle := w.Camera.Add(pointer).Sub(origin).Angle()
	w.Projectiles = append(w.Projectiles, Projectile{
		Pos:        origin,
		Vel:        core.Polar(angle, def.Speed),
		Damage:     def.Damage,
		Size:       def.ProjectileSize,
		Color:      def.Color,
		Glyph:      def.Glyph,
		Life:       w.cfg.Weapons.ProjectileLife,
		FromPlayer: true,
	})

	cos, sin := math.Cos(angle), math.Sin(angle)
	for range 4 {
		vx := cos*(3+w.rng.Float64()*3) + (w.rng.Float64()-0.5)*2
		vy := sin*(3+w.rng.Float64()*3) + (w.rng.Float64()-0.5)*2
		w.Particles = append(w.Particles, Particle{
			Pos:   origin,
			Vel:   core.V(vx, vy),
			Life:  10 + int(w.rng.Float64()*10),
			Color: def.Color,
			Size:  2 + w.rng.Float64()*2,
		})
	}

	w.emit(ShotFired{Weapon: p.Weapon, AmmoLeft: p.Ammo})
}

// updateEnemies runs AI and contact attacks, last enemy first. It returns
// false if the player died, in which case the rest of the tick is skipped.
// While paused only the enemy timers run. While a building is open every
// enemy patrols, so nothing chases or attacks the player inside.
func (w *World) updateEnemies() bool {
	p := &w.Player
	target := p.Center()

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]
		def := e.Kind.Def()

		e.HitFlash = dec(e.HitFlash)
		e.AttackCooldown = dec(e.AttackCooldown)
		if w.Paused {
			continue
		}

		// Contact range is measured before the enemy moves.
		dist := target.Dist(e.Pos)
		if w.ModalOpen() || dist >= def.AggroRange {
			w.patrol(e, def, target)
			continue
		}

		w.chase(e, def, target)
		if dist < def.Size+w.cfg.Enemies.ContactReach && e.AttackCooldown <= 0 && p.Invincible <= 0 {
			if w.hitPlayer(e) {
				return false
			}
		}
	}
	return true
}

// chase steps straight at the target, sliding along one axis when a building is in the way.
func (w *World) chase(e *Enemy, def EnemyDef, target core.Vec) {
	radius := def.Size * 0.5
	to := e.Pos.Add(core.Polar(target.Sub(e.Pos).Angle(), e.Speed))
	switch {
	case w.Map.CanOccupy(to, ActorEnemy, radius):
		e.Pos = to
	case w.Map.CanOccupy(core.V(to.X, e.Pos.Y), ActorEnemy, radius):
		e.Pos.X = to.X
	case w.Map.CanOccupy(core.V(e.Pos.X, to.Y), ActorEnemy, radius):
		e.Pos.Y = to.Y
	}
}

// patrol drifts along the patrol angle, periodically re-aiming near the player.
func (w *World) patrol(e *Enemy, def EnemyDef, target core.Vec) {
	e.PatrolTimer++
	if e.PatrolTimer > w.cfg.Enemies.PatrolRedirect {
		e.PatrolAngle = target.Sub(e.Pos).Angle() + (w.rng.Float64()-0.5)*1.2
		e.PatrolTimer = 0
	}

	to := e.Pos.Add(core.Polar(e.PatrolAngle, e.Speed*w.cfg.Enemies.PatrolSpeedFactor))
	inside := to.X > TileSize && to.X < MapWidth-TileSize && to.Y > TileSize && to.Y < MapHeight-TileSize
	if !inside {
		center := core.V(MapWidth/2, MapHeight/2)
		e.PatrolAngle = center.Sub(e.Pos).Angle() + (w.rng.Float64()-0.5)*0.5
		return
	}
	if w.Map.CanOccupy(to, ActorEnemy, def.Size*0.5) {
		e.Pos = to
	} else {
		e.PatrolAngle += math.Pi / 2
	}
}

// hitPlayer applies one contact hit and reports whether it was fatal.
func (w *World) hitPlayer(e *Enemy) bool {
	p := &w.Player
	p.HP -= e.Damage
	e.AttackCooldown = e.MaxAttackCooldown
	w.emit(PlayerDamaged{By: e.Kind, Damage: e.Damage, HPLeft: max(0, p.HP)})
	if p.HP > 0 {
		return false
	}
	p.HP = 0
	p.Dead = true
	w.emit(PlayerDied{Score: w.Score, Wave: w.Wave, Kills: w.Kills, Ticks: w.Time})
	return true
}

// updateProjectiles moves shots and resolves what they hit, last shot first.
func (w *World) updateProjectiles() {
	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		pr := &w.Projectiles[i]
		pr.Pos = pr.Pos.Add(pr.Vel)
		pr.Life--

		if pr.Life <= 0 || !InBounds(pr.Pos) {
			w.removeProjectile(i)
			continue
		}
		if w.Map.InsideBuilding(pr.Pos) {
			w.sparks(pr.Pos)
			w.removeProjectile(i)
			continue
		}
		if pr.FromPlayer {
			w.resolveHit(i)
		}
	}
}

// resolveHit applies projectile i to the first overlapping enemy, scanning
// from the back of the list. A projectile hits at most one enemy.
func (w *World) resolveHit(i int) {
	pr := w.Projectiles[i]
	for j := len(w.Enemies) - 1; j >= 0; j-- {
		e := &w.Enemies[j]
		def := e.Kind.Def()
		if pr.Pos.Dist(e.Pos) >= def.Size+pr.Size {
			continue
		}

		e.HP -= pr.Damage
		e.HitFlash = enemyHitFlash
		for range 6 {
			w.Particles = append(w.Particles, Particle{
				Pos:   pr.Pos,
				Vel:   core.V((w.rng.Float64()-0.5)*5, (w.rng.Float64()-0.5)*5),
				Life:  20 + int(w.rng.Float64()*10),
				Color: def.Color,
				Size:  2 + w.rng.Float64()*3,
			})
		}
		w.removeProjectile(i)
		w.emit(EnemyHit{Kind: e.Kind, Damage: pr.Damage, HPLeft: max(0, e.HP)})

		if e.HP <= 0 {
			w.explode(e.Pos, def.Color)
			w.Score += def.Score
			w.Kills++
			w.emit(EnemyKilled{ID: e.ID, Kind: e.Kind, Pos: e.Pos, Score: def.Score, Total: w.Score})
			w.Enemies = append(w.Enemies[:j], w.Enemies[j+1:]...)
		}
		return
	}
}

func (w *World) removeProjectile(i int) {
	w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
}

func (w *World) sparks(at core.Vec) {
	for range 3 {
		w.Particles = append(w.Particles, Particle{
			Pos:   at,
			Vel:   core.V((w.rng.Float64()-0.5)*4, (w.rng.Float64()-0.5)*4),
			Life:  sparkLife,
			Color: core.ColorBrightWhite,
			Size:  2,
		})
	}
}

func (w *World) explode(at core.Vec, color core.Color) {
	for range 15 {
		angle := w.rng.Float64() * math.Pi * 2
		speed := 1 + w.rng.Float64()*4
		w.Particles = append(w.Particles, Particle{
			Pos:   at,
			Vel:   core.Polar(angle, speed),
			Life:  30 + int(w.rng.Float64()*20),
			Color: color,
			Size:  3 + w.rng.Float64()*4,
		})
	}
}
