package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyPresets lists the presets from easiest to hardest.
var DifficultyPresets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyTownPreset adjusts wave growth and player toughness for a preset.
// Normal leaves the loaded values untouched.
func ApplyTownPreset(cfg *TownConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = cfg.Player.MaxHP * 3 / 2
		cfg.Waves.Interval = cfg.Waves.Interval * 6 / 5
		cfg.Waves.HPPerWave = max(1, cfg.Waves.HPPerWave*2/3)
		cfg.Waves.SpeedPerWave *= 0.6
	case DifficultyHard:
		cfg.Player.MaxHP = max(1, cfg.Player.MaxHP*4/5)
		cfg.Waves.Interval = cfg.Waves.Interval * 4 / 5
		cfg.Waves.MaxAlive += 3
		cfg.Waves.HPPerWave *= 2
		cfg.Waves.SpeedPerWave *= 1.6
	}
}
