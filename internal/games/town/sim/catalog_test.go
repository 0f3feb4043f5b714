package sim

import "testing"

func TestWeaponCatalog(t *testing.T) {
	tests := []struct {
		kind                   WeaponKind
		key                    string
		damage, fireRate, ammo int
		speed, size            float64
	}{
		{WeaponKeyboard, "keyboard", 20, 18, 30, 8, 5},
		{WeaponCoffee, "coffee", 35, 30, 15, 6, 7},
		{WeaponCode, "code", 15, 8, 50, 12, 4},
		{WeaponDebug, "debug", 50, 40, 8, 10, 9},
		{WeaponAgile, "agile", 25, 22, 20, 7, 6},
	}

	if len(Weapons) != len(tests) {
		t.Fatalf("len(Weapons) = %d, expected %d", len(Weapons), len(tests))
	}
	for i, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if Weapons[i] != tc.kind {
				t.Errorf("Weapons[%d] = %v, expected %v", i, Weapons[i], tc.kind)
			}
			d := tc.kind.Def()
			if d.Key != tc.key || d.Damage != tc.damage || d.FireRate != tc.fireRate ||
				d.Ammo != tc.ammo || d.Speed != tc.speed || d.ProjectileSize != tc.size {
				t.Errorf("Def() = %+v", d)
			}
			parsed, err := ParseWeaponKind(tc.key)
			if err != nil || parsed != tc.kind {
				t.Errorf("ParseWeaponKind(%q) = %v, %v", tc.key, parsed, err)
			}
		})
	}

	if WeaponNone.Def().Ammo != 0 || WeaponNone.String() != "none" {
		t.Error("WeaponNone should have an empty def")
	}
	if _, err := ParseWeaponKind("banhammer"); err == nil {
		t.Error("expected error for unknown weapon")
	}
}

func TestEnemyCatalog(t *testing.T) {
	tests := []struct {
		kind                        EnemyKind
		key                         string
		hp, damage, score, cooldown int
		speed, size, aggro          float64
	}{
		{EnemyBug, "bug", 30, 10, 10, 60, 1.5, 20, 250},
		{EnemyLegacyCode, "legacyCode", 60, 20, 25, 90, 0.8, 26, 200},
		{EnemyTechDebt, "techDebt", 100, 30, 50, 75, 1.0, 30, 300},
		{EnemyNullPointer, "nullPointer", 20, 15, 15, 40, 3.0, 16, 350},
	}

	for i, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if Enemies[i] != tc.kind {
				t.Errorf("Enemies[%d] = %v, expected %v", i, Enemies[i], tc.kind)
			}
			d := tc.kind.Def()
			if d.HP != tc.hp || d.Damage != tc.damage || d.Score != tc.score || d.AttackCooldown != tc.cooldown ||
				d.Speed != tc.speed || d.Size != tc.size || d.AggroRange != tc.aggro {
				t.Errorf("Def() = %+v", d)
			}
			if k, err := ParseEnemyKind(tc.key); err != nil || k != tc.kind {
				t.Errorf("ParseEnemyKind(%q) = %v, %v", tc.key, k, err)
			}
		})
	}
}

func TestEnemyPoolGrowsWithWave(t *testing.T) {
	expected := map[int]int{1: 1, 2: 2, 3: 2, 4: 3, 5: 3, 6: 4, 7: 4, 20: 4}
	prev := 0
	for wave := 1; wave <= 20; wave++ {
		got := enemyPool(wave)
		if want, ok := expected[wave]; ok && got != want {
			t.Errorf("enemyPool(%d) = %d, expected %d", wave, got, want)
		}
		if got < prev {
			t.Errorf("enemyPool shrank at wave %d: %d < %d", wave, got, prev)
		}
		prev = got
	}
}
