package sim

import (
	"fmt"

	"github.com/vovakirdan/ceon-town/internal/core"
)

// WeaponKind identifies a weapon. WeaponNone means no weapon.
type WeaponKind int

const (
	WeaponNone WeaponKind = iota
	WeaponKeyboard
	WeaponCoffee
	WeaponCode
	WeaponDebug
	WeaponAgile
)

// Weapons lists every real weapon in catalog order.
var Weapons = []WeaponKind{WeaponKeyboard, WeaponCoffee, WeaponCode, WeaponDebug, WeaponAgile}

// WeaponDef holds the static stats of a weapon.
type WeaponDef struct {
	Key            string
	Name           string
	Description    string
	Damage         int
	Speed          float64 // projectile speed, units per tick
	FireRate       int     // cooldown between shots, ticks
	Ammo           int
	Color          core.Color
	ProjectileSize float64
	Glyph          rune
}

// Def returns the weapon's stats. WeaponNone has a zero def.
func (k WeaponKind) Def() WeaponDef {
	switch k {
	case WeaponNone:
		return WeaponDef{}
	case WeaponKeyboard:
		return WeaponDef{
			Key: "keyboard", Name: "Mechanical Keyboard",
			Description: "Throws keycaps! Fast but light damage.",
			Damage:      20, Speed: 8, FireRate: 18, Ammo: 30,
			Color: core.ColorSky, ProjectileSize: 5, Glyph: '▪',
		}
	case WeaponCoffee:
		return WeaponDef{
			Key: "coffee", Name: "Hot Coffee Cannon",
			Description: "Scalding hot coffee. Powerful!",
			Damage:      35, Speed: 6, FireRate: 30, Ammo: 15,
			Color: core.ColorBrown, ProjectileSize: 7, Glyph: '●',
		}
	case WeaponCode:
		return WeaponDef{
			Key: "code", Name: "Code Blaster",
			Description: "Rapid fire code snippets.",
			Damage:      15, Speed: 12, FireRate: 8, Ammo: 50,
			Color: core.ColorBrightCyan, ProjectileSize: 4, Glyph: '}',
		}
	case WeaponDebug:
		return WeaponDef{
			Key: "debug", Name: "Debugger Ray",
			Description: "The ultimate bug killer.",
			Damage:      50, Speed: 10, FireRate: 40, Ammo: 8,
			Color: core.ColorOrange, ProjectileSize: 9, Glyph: '◆',
		}
	case WeaponAgile:
		return WeaponDef{
			Key: "agile", Name: "Agile Boomerang",
			Description: "Sprint-powered throwing weapon.",
			Damage:      25, Speed: 7, FireRate: 22, Ammo: 20,
			Color: core.ColorBrightGreen, ProjectileSize: 6, Glyph: '↻',
		}
	default:
		panic(fmt.Sprintf("sim: unknown weapon kind %d", int(k)))
	}
}

// String returns the catalog key.
func (k WeaponKind) String() string {
	if k == WeaponNone {
		return "none"
	}
	return k.Def().Key
}

// ParseWeaponKind resolves a catalog key.
func ParseWeaponKind(key string) (WeaponKind, error) {
	for _, k := range Weapons {
		if k.Def().Key == key {
			return k, nil
		}
	}
	return WeaponNone, fmt.Errorf("sim: unknown weapon %q", key)
}

// EnemyKind identifies an enemy type.
type EnemyKind int

const (
	EnemyBug EnemyKind = iota
	EnemyLegacyCode
	EnemyTechDebt
	EnemyNullPointer
)

// Enemies lists every enemy type in unlock order. Early waves draw only
// from a prefix of this list.
var Enemies = []EnemyKind{EnemyBug, EnemyLegacyCode, EnemyTechDebt, EnemyNullPointer}

// EnemyDef holds the base stats of an enemy type before wave scaling.
type EnemyDef struct {
	Key            string
	Name           string
	HP             int
	Speed          float64
	Damage         int
	Size           float64
	Score          int
	AggroRange     float64
	AttackCooldown int
	Color          core.Color
	BodyColor      core.Color
	Glyph          rune
}

// Def returns the base stats for the enemy type.
func (k EnemyKind) Def() EnemyDef {
	switch k {
	case EnemyBug:
		return EnemyDef{
			Key: "bug", Name: "Bug",
			HP: 30, Speed: 1.5, Damage: 10, Size: 20, Score: 10,
			AggroRange: 250, AttackCooldown: 60,
			Color: core.ColorBrightRed, BodyColor: core.ColorRed, Glyph: 'ж',
		}
	case EnemyLegacyCode:
		return EnemyDef{
			Key: "legacyCode", Name: "Legacy Code",
			HP: 60, Speed: 0.8, Damage: 20, Size: 26, Score: 25,
			AggroRange: 200, AttackCooldown: 90,
			Color: core.ColorMagenta, BodyColor: core.ColorPurple, Glyph: 'Ѭ',
		}
	case EnemyTechDebt:
		return EnemyDef{
			Key: "techDebt", Name: "Tech Debt",
			HP: 100, Speed: 1.0, Damage: 30, Size: 30, Score: 50,
			AggroRange: 300, AttackCooldown: 75,
			Color: core.ColorOrange, BodyColor: core.ColorBrightYellow, Glyph: '$',
		}
	case EnemyNullPointer:
		return EnemyDef{
			Key: "nullPointer", Name: "NullPointer",
			HP: 20, Speed: 3.0, Damage: 15, Size: 16, Score: 15,
			AggroRange: 350, AttackCooldown: 40,
			Color: core.ColorCyan, BodyColor: core.ColorBlue, Glyph: 'Ø',
		}
	default:
		panic(fmt.Sprintf("sim: unknown enemy kind %d", int(k)))
	}
}

// String returns the catalog key.
func (k EnemyKind) String() string {
	return k.Def().Key
}

// ParseEnemyKind resolves a catalog key.
func ParseEnemyKind(key string) (EnemyKind, error) {
	for _, k := range Enemies {
		if k.Def().Key == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("sim: unknown enemy %q", key)
}
