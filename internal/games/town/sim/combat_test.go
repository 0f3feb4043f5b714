package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/ceon-town/internal/core"
)

// quiet is far from the player and from every building.
var quiet = core.V(200, 200)

func TestProjectileExpiresBeforeHitCheck(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Paused = true
	w.Enemies = []Enemy{testEnemy(EnemyBug, quiet)}
	w.Projectiles = []Projectile{{Pos: quiet, Damage: 20, Size: 5, Life: 1, FromPlayer: true}}

	events := w.Step(Intent{})

	if len(w.Projectiles) != 0 {
		t.Fatal("projectile with life 1 should be removed")
	}
	if w.Enemies[0].HP != 30 {
		t.Errorf("expired projectile dealt damage: hp = %d", w.Enemies[0].HP)
	}
	if hasEvent[EnemyHit](events) {
		t.Error("expired projectile should not report a hit")
	}
}

func TestTwoHitsKillBug(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Paused = true
	w.Enemies = []Enemy{testEnemy(EnemyBug, quiet)}
	shot := Projectile{Pos: quiet, Damage: 20, Size: 5, Life: 10, FromPlayer: true}

	w.Projectiles = []Projectile{shot}
	w.Step(Intent{})

	if len(w.Projectiles) != 0 {
		t.Fatal("projectile should be consumed by the hit")
	}
	if w.Enemies[0].HP != 10 || w.Enemies[0].HitFlash != enemyHitFlash {
		t.Fatalf("after first hit: hp=%d flash=%d", w.Enemies[0].HP, w.Enemies[0].HitFlash)
	}
	if len(w.Particles) != 6 {
		t.Errorf("expected 6 hit particles, got %d", len(w.Particles))
	}

	w.Projectiles = []Projectile{shot}
	w.Particles = nil
	events := w.Step(Intent{})

	if len(w.Enemies) != 0 {
		t.Fatal("bug should be removed")
	}
	if w.Score != 10 || w.Kills != 1 {
		t.Errorf("score=%d kills=%d, expected 10 and 1", w.Score, w.Kills)
	}
	if len(w.Particles) != 6+15 {
		t.Errorf("expected hit and death particles, got %d", len(w.Particles))
	}
	var killed *EnemyKilled
	for _, e := range events {
		if k, ok := e.(EnemyKilled); ok {
			killed = &k
		}
	}
	if killed == nil || killed.Kind != EnemyBug || killed.Score != 10 || killed.Total != 10 {
		t.Errorf("unexpected kill event %+v", killed)
	}
}

func TestProjectileHitsLastEnemyFirst(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Paused = true
	w.Enemies = []Enemy{testEnemy(EnemyTechDebt, quiet), testEnemy(EnemyTechDebt, quiet)}
	w.Projectiles = []Projectile{{Pos: quiet, Damage: 20, Size: 5, Life: 10, FromPlayer: true}}

	w.Step(Intent{})

	if w.Enemies[0].HP != 100 {
		t.Errorf("first enemy should be untouched, hp = %d", w.Enemies[0].HP)
	}
	if w.Enemies[1].HP != 80 {
		t.Errorf("last enemy should take the hit, hp = %d", w.Enemies[1].HP)
	}
}

func TestProjectileStopsAtBuilding(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Paused = true
	w.Enemies = []Enemy{testEnemy(EnemyTechDebt, core.V(1000, 812))}
	w.Projectiles = []Projectile{{Pos: core.V(1000, 820), Vel: core.V(0, -8), Damage: 20, Size: 5, Life: 10, FromPlayer: true}}

	w.Step(Intent{})

	if len(w.Projectiles) != 0 {
		t.Fatal("projectile should be absorbed by the building")
	}
	if len(w.Particles) != 3 {
		t.Errorf("expected 3 sparks, got %d", len(w.Particles))
	}
	if w.Enemies[0].HP != 100 {
		t.Error("building hit must not damage enemies behind it")
	}
}

func TestProjectileLeavesMap(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Projectiles = []Projectile{{Pos: core.V(2, 500), Vel: core.V(-5, 0), Life: 50, FromPlayer: true}}

	w.Step(Intent{})

	if len(w.Projectiles) != 0 {
		t.Error("projectile outside the map should be removed")
	}
}

func TestContactDamageAndCooldown(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Enemies = []Enemy{testEnemy(EnemyTechDebt, w.Player.Center())}

	events := w.Step(Intent{})

	if w.Player.HP != 70 {
		t.Fatalf("hp = %d, expected 70", w.Player.HP)
	}
	if w.Enemies[0].AttackCooldown != 75 {
		t.Errorf("cooldown = %d, expected 75", w.Enemies[0].AttackCooldown)
	}
	if !hasEvent[PlayerDamaged](events) {
		t.Error("expected PlayerDamaged event")
	}

	for tick := 2; tick <= 75; tick++ {
		w.Step(Intent{})
		if w.Player.HP != 70 {
			t.Fatalf("second hit landed early on tick %d", tick)
		}
	}

	w.Step(Intent{})
	if w.Player.HP != 40 {
		t.Errorf("hp = %d after cooldown expired, expected 40", w.Player.HP)
	}
}

func TestInvinciblePlayerTakesNoDamage(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Player.Invincible = 10
	w.Enemies = []Enemy{testEnemy(EnemyBug, w.Player.Center())}

	w.Step(Intent{})

	if w.Player.HP != w.Player.MaxHP {
		t.Errorf("invincible player lost hp: %d", w.Player.HP)
	}
	if w.Player.Invincible != 9 {
		t.Errorf("Invincible = %d, expected 9", w.Player.Invincible)
	}
}

func TestDeathTruncatesTick(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Player.HP = 10
	w.Enemies = []Enemy{testEnemy(EnemyBug, w.Player.Center())}
	shotAt := core.V(100, 1000)
	w.Projectiles = []Projectile{{Pos: shotAt, Vel: core.V(1, 0), Life: 50, FromPlayer: true}}
	w.Particles = []Particle{{Pos: shotAt, Life: 5}}

	events := w.Step(Intent{})

	if !w.Player.Dead || w.Player.HP != 0 {
		t.Fatalf("player should be dead with hp clamped, got dead=%v hp=%d", w.Player.Dead, w.Player.HP)
	}
	if w.Projectiles[0].Pos != shotAt || w.Particles[0].Life != 5 {
		t.Error("projectiles and particles should not advance on the tick the player dies")
	}
	if !hasEvent[PlayerDied](events) {
		t.Error("expected PlayerDied event")
	}

	ticks := w.Time
	w.Step(Intent{Move: DirLeft})
	if w.Time != ticks {
		t.Error("a dead world should not advance")
	}
}

func TestFireRules(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Step(Intent{})
	right := w.Player.Center().Sub(w.Camera).Add(core.V(100, 0))

	w.Step(Intent{Fire: true, Pointer: right})
	if len(w.Projectiles) != 0 {
		t.Fatal("firing without a weapon should do nothing")
	}

	w.Player.Weapon = WeaponKeyboard
	w.Player.Ammo = 2
	events := w.Step(Intent{Fire: true, Pointer: right})

	if len(w.Projectiles) != 1 {
		t.Fatalf("expected one projectile, got %d", len(w.Projectiles))
	}
	pr := w.Projectiles[0]
	if pr.Vel.X != 8 || math.Abs(pr.Vel.Y) > 1e-9 {
		t.Errorf("projectile velocity = %v, expected {8 0}", pr.Vel)
	}
	if pr.Damage != 20 || pr.Size != 5 || pr.Color != WeaponKeyboard.Def().Color || pr.Life != w.cfg.Weapons.ProjectileLife-1 {
		t.Errorf("projectile = %+v", pr)
	}
	if len(w.Particles) != 4 {
		t.Errorf("expected 4 muzzle particles, got %d", len(w.Particles))
	}
	if w.Player.Ammo != 1 || w.Player.FireCooldown != 17 {
		t.Errorf("ammo=%d cooldown=%d, expected 1 and 17", w.Player.Ammo, w.Player.FireCooldown)
	}
	if !hasEvent[ShotFired](events) {
		t.Error("expected ShotFired event")
	}

	w.Step(Intent{Fire: true, Pointer: right})
	if len(w.Projectiles) != 1 {
		t.Error("cooldown should block the next shot")
	}

	w.Player.FireCooldown = 0
	w.Step(Intent{Fire: true, Pointer: right})
	w.Player.FireCooldown = 0
	w.Step(Intent{Fire: true, Pointer: right})
	if w.Player.Ammo != 0 {
		t.Errorf("ammo = %d, expected 0", w.Player.Ammo)
	}
	if len(w.Projectiles) != 2 {
		t.Errorf("empty weapon fired: %d projectiles", len(w.Projectiles))
	}
}

func TestEnemySlidesAlongBuilding(t *testing.T) {
	w := newTestWorld(t, 1)
	// Just under the south wall of home, with the player up and to the left.
	start := core.V(960, 826.5)
	w.Player.Pos = core.V(766, 676)
	w.Enemies = []Enemy{testEnemy(EnemyBug, start)}

	w.Step(Intent{})

	e := w.Enemies[0]
	if e.Pos.Y != start.Y {
		t.Errorf("enemy moved into the wall: y = %v", e.Pos.Y)
	}
	if e.Pos.X >= start.X {
		t.Errorf("enemy should slide west along the wall, x = %v", e.Pos.X)
	}
}

func TestPatrolTurnsAwayFromEdge(t *testing.T) {
	w := newTestWorld(t, 1)
	e := testEnemy(EnemyBug, core.V(TileSize+0.5, 700))
	e.PatrolAngle = math.Pi // heading west, out of the interior
	w.Enemies = []Enemy{e}

	w.Step(Intent{})

	got := w.Enemies[0]
	if got.Pos != e.Pos {
		t.Errorf("enemy should not step past the soft boundary, moved to %v", got.Pos)
	}
	if math.Cos(got.PatrolAngle) <= 0 {
		t.Errorf("patrol angle %v should point back toward the center", got.PatrolAngle)
	}
}

func TestPatrolTurnsAtBuilding(t *testing.T) {
	w := newTestWorld(t, 1)
	// Heading east into palvelumuotoilu, out of aggro range.
	e := testEnemy(EnemyLegacyCode, core.V(226.8, 300))
	e.PatrolAngle = 0
	w.Enemies = []Enemy{e}

	w.Step(Intent{})

	got := w.Enemies[0]
	if got.Pos != e.Pos {
		t.Errorf("enemy walked into a building: %v", got.Pos)
	}
	if math.Abs(got.PatrolAngle-math.Pi/2) > 1e-9 {
		t.Errorf("patrol angle = %v, expected a quarter turn", got.PatrolAngle)
	}
}
