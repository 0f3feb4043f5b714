package town

import "github.com/vovakirdan/ceon-town/internal/games/town/sim"

// logEvent writes one simulation event to the event logger.
// Per-shot and per-hit events go to debug level.
func logEvent(e sim.Event) {
	switch e := e.(type) {
	case sim.WaveStarted:
		eventLog.Info("wave started", "wave", e.Wave, "enemies", e.Count)
	case sim.WeaponAppeared:
		eventLog.Info("weapon appeared", "weapon", e.Weapon, "building", e.BuildingID)
	case sim.WeaponCollected:
		eventLog.Info("weapon collected", "weapon", e.Weapon, "building", e.BuildingID)
	case sim.WeaponDepleted:
		eventLog.Info("weapon depleted", "weapon", e.Weapon)
	case sim.ShotFired:
		eventLog.Debug("shot fired", "weapon", e.Weapon, "ammo", e.AmmoLeft)
	case sim.EnemyHit:
		eventLog.Debug("enemy hit", "enemy", e.Kind, "damage", e.Damage, "hp", e.HPLeft)
	case sim.EnemyKilled:
		eventLog.Info("enemy killed", "id", e.ID, "enemy", e.Kind, "points", e.Score, "score", e.Total)
	case sim.PlayerDamaged:
		eventLog.Debug("player damaged", "by", e.By, "damage", e.Damage, "hp", e.HPLeft)
	case sim.PlayerDied:
		eventLog.Warn("player died", "score", e.Score, "wave", e.Wave, "kills", e.Kills, "ticks", e.Ticks)
	case sim.PlayerRespawned:
		eventLog.Info("player respawned")
	case sim.BuildingEntered:
		eventLog.Debug("building entered", "building", e.BuildingID, "weapon", e.Weapon)
	case sim.BuildingLeft:
		eventLog.Debug("building left", "building", e.BuildingID)
	}
}
