package town

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
)

// view maps world coordinates to screen cells inside the play area.
type view struct {
	dst    *core.Screen
	cam    core.Vec
	cw, ch float64
	rows   int
}

func (g *Game) newView(dst *core.Screen) view {
	return view{
		dst:  dst,
		cam:  g.world.Camera,
		cw:   g.cfg.Viewport.CellWidth,
		ch:   g.cfg.Viewport.CellHeight,
		rows: max(0, dst.Height()-hudRows-statusRows),
	}
}

// cell returns the screen cell containing world point p.
func (v view) cell(p core.Vec) (x, y int) {
	x = int(math.Floor((p.X - v.cam.X) / v.cw))
	y = int(math.Floor((p.Y-v.cam.Y)/v.ch)) + viewTop
	return x, y
}

// set draws a cell, clipped to the play area.
func (v view) set(x, y int, r rune, c core.Color) {
	if y < viewTop || y >= viewTop+v.rows {
		return
	}
	v.dst.SetColored(x, y, r, c)
}

func (v view) plot(p core.Vec, r rune, c core.Color) {
	x, y := v.cell(p)
	v.set(x, y, r, c)
}

func (v view) text(x, y int, s string, c core.Color) {
	for i, r := range []rune(s) {
		v.set(x+i, y, r, c)
	}
}

// Render draws the world, HUD and any open overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	if g.tooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.newView(dst)
	g.drawGround(v)
	g.drawDecor(v)
	for _, t := range g.world.Map.Trees {
		drawTree(v, t)
	}
	for _, b := range g.world.Map.Buildings {
		g.drawBuilding(v, b)
	}
	g.drawParticles(v)
	g.drawProjectiles(v)
	g.drawEnemies(v)
	g.drawPlayer(v)
	g.drawCrosshair(v)
	g.drawMinimap(dst, v)

	g.drawHUD(dst)
	g.drawStatus(dst)
	g.drawNotification(dst, v)
	g.drawWaveBanner(dst, v)
	g.drawOverlay(dst)
}

// drawGround fills the play area with grass, paths and water.
func (g *Game) drawGround(v view) {
	m := g.world.Map
	for cy := range v.rows {
		for cx := range v.dst.Width() {
			wx := v.cam.X + (float64(cx)+0.5)*v.cw
			wy := v.cam.Y + (float64(cy)+0.5)*v.ch
			if wx >= sim.MapWidth || wy >= sim.MapHeight {
				continue
			}
			t := sim.TileOf(core.V(wx, wy))
			// Absolute cell indices keep the pattern fixed while the camera scrolls.
			gx, gy := int(wx/v.cw), int(wy/v.ch)
			y := cy + viewTop

			switch {
			case m.IsWater(t.X, t.Y):
				r := '≈'
				if (gx+gy+g.world.Time/20)%3 == 0 {
					r = '~'
				}
				v.set(cx, y, r, core.ColorBlue)
			case m.IsPath(t.X, t.Y):
				v.set(cx, y, '·', core.ColorBrown)
			case (gx*7+gy*13)%5 == 0:
				v.set(cx, y, '"', core.ColorDarkGreen)
			}
		}
	}
}

func drawTree(v view, t sim.Tree) {
	ox := float64(t.Tile.X * sim.TileSize)
	oy := float64(t.Tile.Y * sim.TileSize)
	x, y := v.cell(core.V(ox+sim.TileSize/2, oy+sim.TileSize/4))

	v.set(x, y, '♣', core.ColorGreen)
	if t.Size >= 1 {
		v.set(x-1, y, '♣', core.ColorDarkGreen)
		v.set(x+1, y, '♣', core.ColorDarkGreen)
	}
	v.set(x, y+1, '╿', core.ColorBrown)
}

func (g *Game) drawBuilding(v view, b sim.Building) {
	l, t, r, bt := b.Bounds()
	x0, y0 := v.cell(core.V(l, t))
	x1, y1 := v.cell(core.V(r-1, bt-1))
	tick := float64(g.world.Time)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if y == y0 {
				v.set(x, y, '▀', b.RoofColor)
			} else {
				v.set(x, y, '█', b.Color)
			}
		}
	}

	for wr, y := 0, y0+3; y < y1-1; wr, y = wr+1, y+2 {
		for wc, x := 0, x0+2; x < x1-1; wc, x = wc+1, x+3 {
			c := core.ColorYellow
			if math.Sin(tick*0.02+float64(wr)*1.5+float64(wc)*2.3) > 0 {
				c = core.ColorBrightYellow
			}
			v.set(x, y, '▪', c)
		}
	}

	mid := (x0 + x1) / 2
	v.set(mid, y1, '▒', core.ColorBrown)
	v.set(mid+1, y1, '▒', core.ColorBrown)

	label := []rune(fitText(b.Label, x1-x0-1))
	v.text(x0+(x1-x0+1-len(label))/2, y0+1, string(label), core.ColorBrightWhite)

	if kind, ok := g.world.ActiveWeaponForBuilding(b.ID); ok {
		def := kind.Def()
		by := y0 - 1
		if math.Sin(tick*0.06) > 0 {
			by--
		}
		v.set(mid, by, def.Glyph, def.Color)
		if (g.world.Time/8)%2 == 0 {
			v.set(mid-1, by, '*', core.ColorBrightYellow)
			v.set(mid+1, by, '*', core.ColorBrightYellow)
		}
	}
}

func (g *Game) drawParticles(v view) {
	for _, p := range g.world.Particles {
		r := '·'
		switch {
		case p.Life < 5:
		case p.Size > 4:
			r = '*'
		case p.Size > 2.5:
			r = '•'
		}
		v.plot(p.Pos, r, p.Color)
	}
}

func (g *Game) drawProjectiles(v view) {
	for _, p := range g.world.Projectiles {
		v.plot(p.Pos, p.Glyph, p.Color)
	}
}

// hpBars are eighth-block glyphs for tiny health bars.
var hpBars = []rune("▁▂▃▄▅▆▇█")

func (g *Game) drawEnemies(v view) {
	for _, e := range g.world.Enemies {
		def := e.Kind.Def()
		x, y := v.cell(e.Pos)

		color := def.Color
		if e.HitFlash > 0 {
			color = core.ColorBrightWhite
		}
		if def.Size >= 24 {
			v.set(x-1, y, '▐', def.BodyColor)
			v.set(x+1, y, '▌', def.BodyColor)
		}
		v.set(x, y, def.Glyph, color)

		if e.HP < e.MaxHP {
			frac := float64(max(0, e.HP)) / float64(e.MaxHP)
			bar := hpBars[min(len(hpBars)-1, int(frac*float64(len(hpBars))))]
			c := core.ColorGreen
			if frac <= 0.3 {
				c = core.ColorRed
			}
			v.set(x, y-1, bar, c)
		}
	}
}

// handOffsets place the held weapon next to the player, indexed by sim.Facing.
var handOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

func (g *Game) drawPlayer(v view) {
	p := g.world.Player
	if p.Invincible > 0 && (p.Invincible/4)%2 == 0 {
		return
	}
	x, y := v.cell(p.Center())

	name := "Vierailija"
	v.text(x-len(name)/2, y-2, name, core.ColorSky)
	v.set(x, y, '@', core.ColorBrightWhite)
	if p.Weapon != sim.WeaponNone {
		off := handOffsets[p.Facing]
		v.set(x+off[0], y+off[1], p.Weapon.Def().Glyph, p.Weapon.Def().Color)
	}
}

func (g *Game) drawCrosshair(v view) {
	w := g.world
	p := w.Player
	if !g.hasPointer || p.Weapon == sim.WeaponNone || p.Dead || w.ModalOpen() {
		return
	}
	c := p.Weapon.Def().Color
	if p.Ammo <= 0 {
		c = core.ColorGray
	}
	v.set(g.pointerX, g.pointerY, '+', c)
}

// Minimap geometry: each cell covers minimapTilesX×minimapTilesY tiles.
const (
	minimapTilesX = 2
	minimapTilesY = 3
	minimapW      = sim.MapCols / minimapTilesX
	minimapH      = sim.MapRows / minimapTilesY
)

// drawMinimap draws an overview of the whole town in the top-right corner.
func (g *Game) drawMinimap(dst *core.Screen, v view) {
	if dst.Width() < 70 || v.rows < minimapH+4 {
		return
	}
	w := g.world
	box := core.NewRect(dst.Width()-minimapW-3, viewTop, minimapW+2, minimapH+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	ox, oy := box.X+1, box.Y+1

	for my := range minimapH {
		for mx := range minimapW {
			tx, ty := mx*minimapTilesX, my*minimapTilesY+1
			center := core.V(float64(tx*sim.TileSize+sim.TileSize/2), float64(ty*sim.TileSize+sim.TileSize/2))
			if b, ok := w.Map.BuildingAt(center); ok {
				c := b.Color
				if _, active := w.ActiveWeaponForBuilding(b.ID); active && (w.Time/15)%2 == 0 {
					c = core.ColorBrightYellow
				}
				dst.SetColored(ox+mx, oy+my, '█', c)
				continue
			}
			switch {
			case w.Map.IsWater(tx, ty):
				dst.SetColored(ox+mx, oy+my, '≈', core.ColorBlue)
			case w.Map.IsPath(tx, ty):
				dst.SetColored(ox+mx, oy+my, '·', core.ColorBrown)
			}
		}
	}

	toMini := func(p core.Vec) (int, int) {
		mx := core.Clamp(int(p.X/(minimapTilesX*sim.TileSize)), 0, minimapW-1)
		my := core.Clamp(int(p.Y/(minimapTilesY*sim.TileSize)), 0, minimapH-1)
		return ox + mx, oy + my
	}
	for _, e := range w.Enemies {
		x, y := toMini(e.Pos)
		dst.SetColored(x, y, '•', e.Kind.Def().Color)
	}
	x, y := toMini(w.Player.Center())
	dst.SetColored(x, y, '@', core.ColorBrightWhite)
}

// fitText truncates s to at most n runes.
func fitText(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
