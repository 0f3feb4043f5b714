package town

import (
	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
)

// MapScreen draws the whole town one cell per tile, with a legend of
// building labels below the grid.
func MapScreen(m *sim.Map) *core.Screen {
	legend := len(m.Buildings) + 1
	dst := core.NewScreen(sim.MapCols, sim.MapRows+legend)

	for ty := range sim.MapRows {
		for tx := range sim.MapCols {
			switch {
			case m.IsWater(tx, ty):
				dst.SetColored(tx, ty, '≈', core.ColorBlue)
			case m.IsPath(tx, ty):
				dst.SetColored(tx, ty, '·', core.ColorBrown)
			}
		}
	}
	for _, t := range m.Trees {
		dst.SetColored(t.Tile.X, t.Tile.Y, '♣', core.ColorGreen)
	}

	for i, b := range m.Buildings {
		mark := rune('A' + i)
		dst.DrawRect(core.NewRect(b.X, b.Y, b.W, b.H), '█', b.Color)
		dst.DrawHLine(b.X, b.Y, b.W, '▀', b.RoofColor)
		dst.SetColored(b.X+b.W/2, b.Y+b.H/2, mark, core.ColorBrightWhite)

		y := sim.MapRows + 1 + i
		dst.SetColored(0, y, mark, b.RoofColor)
		dst.DrawTextColored(2, y, fitText(b.Label, sim.MapCols-2), core.ColorWhite)
	}

	return dst
}
