package sim

import (
	"testing"

	"github.com/vovakirdan/ceon-town/internal/config"
	"github.com/vovakirdan/ceon-town/internal/core"
)

// blockMap has a single building covering tiles (5,5)-(10,9).
func blockMap() *Map {
	return NewMap([]Building{{ID: "block", Label: "Block", X: 5, Y: 5, W: 6, H: 5}}, TreeSeed)
}

func TestPlayerBlockedByBuilding(t *testing.T) {
	m := blockMap()
	w := NewWithMap(config.DefaultTownConfig(), 1, core.V(960, 576), m)
	w.Started = true

	// Probe right edge touches the building's left wall.
	start := core.V(5*TileSize-TileSize+playerMargin, 6*TileSize)
	w.Player.Pos = start

	w.Step(Intent{Move: DirRight})

	if w.Player.Pos != start {
		t.Errorf("player moved into building: %v -> %v", start, w.Player.Pos)
	}
	if w.Player.Facing != FacingDown || w.Player.Frame != 0 {
		t.Errorf("facing/frame should not change when blocked, got %v/%v", w.Player.Facing, w.Player.Frame)
	}
}

func TestPlayerSlidesAlongBuilding(t *testing.T) {
	m := blockMap()
	w := NewWithMap(config.DefaultTownConfig(), 1, core.V(960, 576), m)
	w.Started = true

	start := core.V(5*TileSize-TileSize+playerMargin, 6*TileSize)
	w.Player.Pos = start

	w.Step(Intent{Move: DirDownRight})

	if w.Player.Pos.X != start.X {
		t.Errorf("x should be blocked, got %v", w.Player.Pos.X)
	}
	if w.Player.Pos.Y <= start.Y {
		t.Errorf("y should slide down, got %v", w.Player.Pos.Y)
	}
	if w.Player.Facing != FacingDown {
		t.Errorf("diagonal movement should face vertically, got %v", w.Player.Facing)
	}
}

func TestPlayerCanMoveTo(t *testing.T) {
	m := blockMap()

	tests := []struct {
		name string
		pos  core.Vec
		want bool
	}{
		{"open ground", core.V(100, 100), true},
		{"map origin", core.V(0, 0), true},
		{"probe past left edge", core.V(-9, 100), false},
		{"probe past bottom edge", core.V(100, MapHeight-TileSize+playerMargin+1), false},
		{"probe touching wall", core.V(5*TileSize-TileSize+playerMargin, 6*TileSize), true},
		{"probe overlapping wall", core.V(5*TileSize-TileSize+playerMargin+0.5, 6*TileSize), false},
		{"inside building", core.V(6*TileSize, 6*TileSize), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.PlayerCanMoveTo(tc.pos); got != tc.want {
				t.Errorf("PlayerCanMoveTo(%v) = %v, expected %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestWaterBlocksOnlyPlayer(t *testing.T) {
	m := DefaultMap()
	tileOrigin := core.V(36*TileSize, 14*TileSize)
	tileCenter := tileOrigin.Add(core.V(TileSize/2, TileSize/2))

	if m.CanOccupy(tileOrigin, ActorPlayer, 0) {
		t.Error("player should not stand in water")
	}
	if !m.CanOccupy(tileCenter, ActorEnemy, 10) {
		t.Error("enemies should cross water")
	}
	if !m.CanOccupy(tileCenter, ActorProjectile, 0) {
		t.Error("projectiles should fly over water")
	}
}

func TestCanOccupyBounds(t *testing.T) {
	m := DefaultMap()

	tests := []struct {
		name string
		pos  core.Vec
		kind ActorKind
		want bool
	}{
		{"enemy left of map", core.V(-1, 100), ActorEnemy, false},
		{"enemy on edge", core.V(0, 100), ActorEnemy, true},
		{"projectile below map", core.V(100, MapHeight+1), ActorProjectile, false},
		{"projectile in building", core.V(900, 700), ActorProjectile, false},
		{"enemy grazing building", core.V(17*TileSize-5, 700), ActorEnemy, false},
		{"enemy clear of building", core.V(17*TileSize-11, 700), ActorEnemy, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.CanOccupy(tc.pos, tc.kind, 10); got != tc.want {
				t.Errorf("CanOccupy(%v, %v) = %v, expected %v", tc.pos, tc.kind, got, tc.want)
			}
		})
	}
}
