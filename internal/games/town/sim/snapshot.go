package sim

import (
	"fmt"
	"hash/fnv"
	"slices"

	"github.com/vovakirdan/ceon-town/internal/core"
)

// Snapshot is a read-only copy of the world taken between ticks.
// Slices are copies; mutating them does not affect the world.
type Snapshot struct {
	Time         int
	Started      bool
	Paused       bool
	OpenBuilding string
	Player       Player
	Enemies      []Enemy
	Projectiles  []Projectile
	Particles    []Particle
	Spawn        WeaponSpawn
	Notification Notification // zero when none is showing
	Score        int
	Kills        int
	Wave         int
	WaveTimer    int
	WaveBanner   bool
	Camera       core.Vec
	NearBuilding string // "" when none is in range
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Time:         w.Time,
		Started:      w.Started,
		Paused:       w.Paused,
		OpenBuilding: w.OpenBuilding,
		Player:       w.Player,
		Enemies:      slices.Clone(w.Enemies),
		Projectiles:  slices.Clone(w.Projectiles),
		Particles:    slices.Clone(w.Particles),
		Spawn:        w.Spawn,
		Score:        w.Score,
		Kills:        w.Kills,
		Wave:         w.Wave,
		WaveTimer:    w.WaveTimer,
		WaveBanner:   w.WaveBanner(),
		Camera:       w.Camera,
	}
	if w.Notification != nil {
		s.Notification = *w.Notification
	}
	if b, ok := w.NearBuilding(); ok {
		s.NearBuilding = b.ID
	}
	return s
}

// Hash fingerprints the gameplay-relevant state. Two worlds fed the same
// seed and intents hash the same after every tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	p := s.Player
	fmt.Fprintf(h, "t%d s%d k%d w%d/%d|", s.Time, s.Score, s.Kills, s.Wave, s.WaveTimer)
	fmt.Fprintf(h, "p%.6f,%.6f %d %d/%d %d %d %d %d %t|",
		p.Pos.X, p.Pos.Y, p.Facing, p.HP, p.MaxHP, p.Weapon, p.Ammo, p.FireCooldown, p.Invincible, p.Dead)
	fmt.Fprintf(h, "ws%s %d %t %d|", s.Spawn.BuildingID, s.Spawn.Weapon, s.Spawn.Collected, s.Spawn.Cooldown)
	for _, e := range s.Enemies {
		fmt.Fprintf(h, "e%d %.6f,%.6f %d/%d %d %.6f %d|",
			e.Kind, e.Pos.X, e.Pos.Y, e.HP, e.MaxHP, e.AttackCooldown, e.PatrolAngle, e.PatrolTimer)
	}
	for _, pr := range s.Projectiles {
		fmt.Fprintf(h, "b%.6f,%.6f %d|", pr.Pos.X, pr.Pos.Y, pr.Life)
	}
	fmt.Fprintf(h, "fx%d", len(s.Particles))
	return h.Sum64()
}
