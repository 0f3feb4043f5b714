package config

import (
	_ "embed"
)

//go:embed defaults/town.yaml
var defaultTownYAML []byte

// DefaultTownConfig returns the built-in town tuning.
func DefaultTownConfig() TownConfig {
	return TownConfig{
		Player: PlayerConfig{
			Speed:                3.5,
			MaxHP:                100,
			StartTileX:           20,
			StartTileY:           18,
			RespawnInvincibility: 120,
		},
		Waves: WaveConfig{
			FirstDelay:   120,
			Interval:     600,
			MaxAlive:     5,
			BaseSize:     3,
			SizePerWave:  1.5,
			HPPerWave:    3,
			SpeedPerWave: 0.05,
			BannerTicks:  120,
		},
		Weapons: WeaponSpawnConfig{
			StartBuilding:   "home",
			RespawnCooldown: 600,
			ProjectileLife:  120,
			AppearNotice:    180,
			PickupNotice:    120,
		},
		Enemies: EnemyConfig{
			PatrolRedirect:    90,
			PatrolSpeedFactor: 0.6,
			ContactReach:      20,
		},
		Viewport: ViewportConfig{
			CellWidth:  12,
			CellHeight: 24,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "town":
		return defaultTownYAML
	default:
		return nil
	}
}
