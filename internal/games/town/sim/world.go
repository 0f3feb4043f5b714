// Package sim is the fixed-tick simulation behind the town game: map
// geometry and collision, the weapon and enemy catalog, the spawn director,
// combat and the ordered per-tick update. It knows nothing about terminals.
package sim

import (
	"github.com/vovakirdan/ceon-town/internal/core"
)

// Map dimensions. Positions are world units; a tile is TileSize units square.
const (
	TileSize  = 48
	MapCols   = 40
	MapRows   = 30
	MapWidth  = MapCols * TileSize
	MapHeight = MapRows * TileSize
)

// The path cross is centered on this tile.
const (
	crossCol = 20
	crossRow = 14
)

// TreeSeed fixes the decoration layout so every run sees the same town.
const TreeSeed = 42

const treeAttempts = 80

// Tile is a grid coordinate.
type Tile struct {
	X, Y int
}

// TileOf returns the tile containing a world position.
func TileOf(p core.Vec) Tile {
	return Tile{X: floorDiv(p.X), Y: floorDiv(p.Y)}
}

func floorDiv(v float64) int {
	t := int(v / TileSize)
	if v < 0 && float64(t)*TileSize != v {
		t--
	}
	return t
}

// Building is a solid rectangle in tile units that the player can enter.
type Building struct {
	ID        string
	Label     string
	X, Y      int // top-left tile
	W, H      int
	Color     core.Color
	RoofColor core.Color
	Blurb     []string
}

// Bounds returns the building rectangle in world units.
func (b Building) Bounds() (left, top, right, bottom float64) {
	return float64(b.X * TileSize), float64(b.Y * TileSize),
		float64((b.X + b.W) * TileSize), float64((b.Y + b.H) * TileSize)
}

// Center returns the building center in world units.
func (b Building) Center() core.Vec {
	return core.V((float64(b.X)+float64(b.W)/2)*TileSize, (float64(b.Y)+float64(b.H)/2)*TileSize)
}

// InteractRange is how close the player center must be to the building
// center for the building to count as near.
func (b Building) InteractRange() float64 {
	return float64(max(b.W, b.H)) * TileSize * 0.8
}

// paddedContains reports whether a tile lies in the footprint grown by one tile on every side.
func (b Building) paddedContains(tx, ty int) bool {
	return tx >= b.X-1 && tx <= b.X+b.W && ty >= b.Y-1 && ty <= b.Y+b.H
}

// Tree is a decorative tree on a grass tile.
type Tree struct {
	Tile Tile
	Size float64
}

// HomeBuildingID is where the first weapon of every run appears.
const HomeBuildingID = "home"

// DefaultBuildings returns the town buildings in declaration order.
// Order matters: the nearest-building query returns the first match.
func DefaultBuildings() []Building {
	return []Building{
		{
			ID: HomeBuildingID, Label: "Ceon HQ", X: 17, Y: 12, W: 6, H: 5,
			Color: core.ColorBlue, RoofColor: core.ColorSky,
			Blurb: []string{
				"Welcome to the new Ceon.",
				"We design, build and run digital services.",
				"Look around town: every building is one of our crafts.",
			},
		},
		{
			ID: "palvelumuotoilu", Label: "Palvelumuotoilu", X: 5, Y: 5, W: 5, H: 4,
			Color: core.ColorPurple, RoofColor: core.ColorBrightMagenta,
			Blurb: []string{
				"Service design.",
				"We start from the people who use the service",
				"and shape it until it works for them.",
			},
		},
		{
			ID: "ohjelmistokehitys", Label: "Ohjelmistokehitys", X: 28, Y: 5, W: 6, H: 4,
			Color: core.ColorOrange, RoofColor: core.ColorBrightYellow,
			Blurb: []string{
				"Software development.",
				"Web, mobile and backend systems,",
				"built in small steps and shipped often.",
			},
		},
		{
			ID: "yllapito", Label: "Ylläpito", X: 5, Y: 21, W: 5, H: 4,
			Color: core.ColorDarkGreen, RoofColor: core.ColorBrightGreen,
			Blurb: []string{
				"Maintenance.",
				"Monitoring, updates and on-call care",
				"for the services we and others have built.",
			},
		},
		{
			ID: "yhteystiedot", Label: "Yhteystiedot", X: 29, Y: 21, W: 5, H: 4,
			Color: core.ColorRed, RoofColor: core.ColorBrightRed,
			Blurb: []string{
				"Contact.",
				"Drop by the office or send us a message,",
				"we answer every one.",
			},
		},
	}
}

// Map is the static town layout. It is immutable once built.
type Map struct {
	Buildings []Building
	Trees     []Tree

	paths map[Tile]struct{}
	water map[Tile]struct{}
}

// DefaultMap builds the standard town.
func DefaultMap() *Map {
	return NewMap(DefaultBuildings(), TreeSeed)
}

// NewMap lays out paths, water and trees around the given buildings.
// The result depends only on its arguments.
func NewMap(buildings []Building, treeSeed uint32) *Map {
	m := &Map{
		Buildings: buildings,
		paths:     make(map[Tile]struct{}),
		water:     make(map[Tile]struct{}),
	}
	m.layPaths()
	m.layWater()
	m.plantTrees(treeSeed)
	return m
}

func (m *Map) layPaths() {
	band := func(x, y int, horizontal bool) {
		for d := -1; d <= 1; d++ {
			if horizontal {
				m.paths[Tile{x, y + d}] = struct{}{}
			} else {
				m.paths[Tile{x + d, y}] = struct{}{}
			}
		}
	}

	for x := 2; x < MapCols-2; x++ {
		band(x, crossRow, true)
	}
	for y := 2; y < MapRows-2; y++ {
		band(crossCol, y, false)
	}

	for _, b := range m.Buildings {
		col := b.X + b.W/2
		if b.Y < crossRow {
			for y := b.Y + b.H; y <= crossRow+1; y++ {
				band(col, y, false)
			}
		} else {
			for y := crossRow - 1; y <= b.Y-1; y++ {
				band(col, y, false)
			}
		}
		for x := min(col, crossCol); x <= max(col, crossCol); x++ {
			band(x, crossRow, true)
		}
	}
}

func (m *Map) layWater() {
	pond := func(x0, x1, y0, y1 int) {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				if !m.IsOccupied(x, y) {
					m.water[Tile{x, y}] = struct{}{}
				}
			}
		}
	}
	pond(34, 37, 13, 16)
	pond(1, 3, 13, 15)
}

func (m *Map) plantTrees(seed uint32) {
	rng := newMulberry32(seed)
	for i := 0; i < treeAttempts; i++ {
		tx := int(rng.Float64() * MapCols)
		ty := int(rng.Float64() * MapRows)
		if m.IsOccupied(tx, ty) || m.IsPath(tx, ty) {
			continue
		}
		m.Trees = append(m.Trees, Tree{Tile: Tile{tx, ty}, Size: 0.7 + rng.Float64()*0.5})
	}
}

// IsPath reports whether a tile is paved.
func (m *Map) IsPath(tx, ty int) bool {
	_, ok := m.paths[Tile{tx, ty}]
	return ok
}

// IsWater reports whether a tile is water.
func (m *Map) IsWater(tx, ty int) bool {
	_, ok := m.water[Tile{tx, ty}]
	return ok
}

// IsOccupied reports whether a tile is inside any building's padded footprint.
func (m *Map) IsOccupied(tx, ty int) bool {
	for _, b := range m.Buildings {
		if b.paddedContains(tx, ty) {
			return true
		}
	}
	return false
}

// Building looks a building up by ID.
func (m *Map) Building(id string) (Building, bool) {
	for _, b := range m.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}

// BuildingAt returns the building whose interior strictly contains p.
func (m *Map) BuildingAt(p core.Vec) (Building, bool) {
	for _, b := range m.Buildings {
		l, t, r, bt := b.Bounds()
		if p.X > l && p.X < r && p.Y > t && p.Y < bt {
			return b, true
		}
	}
	return Building{}, false
}

// PathTiles returns the number of paved tiles.
func (m *Map) PathTiles() int {
	return len(m.paths)
}

// WaterTiles returns the number of water tiles.
func (m *Map) WaterTiles() int {
	return len(m.water)
}
