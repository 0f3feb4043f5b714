package town

import (
	"math"

	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
)

// signpost is a direction sign planted on a tile.
type signpost struct {
	tile  sim.Tile
	text  string
	color core.Color
}

var signposts = []signpost{
	{sim.Tile{X: 14, Y: 11}, "← Palvelumuotoilu", core.ColorBrightMagenta},
	{sim.Tile{X: 24, Y: 11}, "Ohjelmistokehitys →", core.ColorOrange},
	{sim.Tile{X: 14, Y: 17}, "← Ylläpito", core.ColorBrightGreen},
	{sim.Tile{X: 24, Y: 17}, "Yhteystiedot →", core.ColorBrightRed},
}

var lampPosts = []sim.Tile{
	{X: 16, Y: 13}, {X: 24, Y: 13},
	{X: 16, Y: 15}, {X: 24, Y: 15},
	{X: 8, Y: 13}, {X: 32, Y: 13},
	{X: 20, Y: 8}, {X: 20, Y: 20},
}

// drawDecor draws the lamps and signposts along the main roads.
func (g *Game) drawDecor(v view) {
	tick := float64(g.world.Time)

	for _, l := range lampPosts {
		x, y := v.cell(core.V(float64(l.X*sim.TileSize+sim.TileSize/2), float64(l.Y*sim.TileSize)))
		c := core.ColorYellow
		if math.Sin(tick*0.03+float64(l.X)) > 0 {
			c = core.ColorBrightYellow
		}
		v.set(x, y, '¤', c)
		v.set(x, y+1, '│', core.ColorGray)
	}

	for _, s := range signposts {
		x, y := v.cell(core.V(float64(s.tile.X*sim.TileSize+sim.TileSize/2), float64(s.tile.Y*sim.TileSize)))
		text := []rune(s.text)
		v.set(x-len(text)/2-1, y, '▌', s.color)
		v.text(x-len(text)/2, y, string(text), core.ColorBrightWhite)
		v.set(x, y+1, '│', core.ColorBrown)
	}
}
