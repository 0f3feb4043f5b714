// Package config provides YAML-based tuning for the town simulation
// and the difficulty presets layered on top of it.
package config

import (
	"errors"
	"fmt"
)

// TownConfig contains all tuning for the town game.
type TownConfig struct {
	Player   PlayerConfig      `yaml:"player"`
	Waves    WaveConfig        `yaml:"waves"`
	Weapons  WeaponSpawnConfig `yaml:"weapons"`
	Enemies  EnemyConfig       `yaml:"enemies"`
	Viewport ViewportConfig    `yaml:"viewport"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed                float64 `yaml:"speed"`
	MaxHP                int     `yaml:"max_hp"`
	StartTileX           int     `yaml:"start_tile_x"`
	StartTileY           int     `yaml:"start_tile_y"`
	RespawnInvincibility int     `yaml:"respawn_invincibility"` // ticks
}

// WaveConfig defines when waves arrive and how they scale.
type WaveConfig struct {
	FirstDelay   int     `yaml:"first_delay"` // ticks before the first wave
	Interval     int     `yaml:"interval"`    // ticks between waves
	MaxAlive     int     `yaml:"max_alive"`   // a timed wave waits while this many enemies live
	BaseSize     int     `yaml:"base_size"`
	SizePerWave  float64 `yaml:"size_per_wave"`
	HPPerWave    int     `yaml:"hp_per_wave"`
	SpeedPerWave float64 `yaml:"speed_per_wave"`
	BannerTicks  int     `yaml:"banner_ticks"` // how long the "wave incoming" banner shows
}

// WeaponSpawnConfig defines the weapon pickup cycle and projectile lifetime.
type WeaponSpawnConfig struct {
	StartBuilding   string `yaml:"start_building"`
	RespawnCooldown int    `yaml:"respawn_cooldown"`
	ProjectileLife  int    `yaml:"projectile_life"`
	AppearNotice    int    `yaml:"appear_notice"` // notification lifetime, ticks
	PickupNotice    int    `yaml:"pickup_notice"`
}

// EnemyConfig defines shared enemy behavior.
type EnemyConfig struct {
	PatrolRedirect    int     `yaml:"patrol_redirect"` // ticks between patrol re-aims
	PatrolSpeedFactor float64 `yaml:"patrol_speed_factor"`
	ContactReach      float64 `yaml:"contact_reach"` // added to enemy size for melee range
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate reports the first setting that would break the simulation.
func (c TownConfig) Validate() error {
	var errs []error
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed))
	}
	if c.Player.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("player.max_hp must be positive, got %d", c.Player.MaxHP))
	}
	if c.Waves.Interval <= 0 {
		errs = append(errs, fmt.Errorf("waves.interval must be positive, got %d", c.Waves.Interval))
	}
	if c.Waves.BaseSize < 0 || c.Waves.SizePerWave < 0 {
		errs = append(errs, errors.New("waves.base_size and waves.size_per_wave must not be negative"))
	}
	if c.Weapons.StartBuilding == "" {
		errs = append(errs, errors.New("weapons.start_building must be set"))
	}
	if c.Weapons.ProjectileLife <= 0 {
		errs = append(errs, fmt.Errorf("weapons.projectile_life must be positive, got %d", c.Weapons.ProjectileLife))
	}
	if c.Enemies.PatrolRedirect <= 0 {
		errs = append(errs, fmt.Errorf("enemies.patrol_redirect must be positive, got %d", c.Enemies.PatrolRedirect))
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		errs = append(errs, errors.New("viewport cell size must be positive"))
	}
	return errors.Join(errs...)
}
