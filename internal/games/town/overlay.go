package town

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
)

// hudWriter lays out HUD segments left to right on one row.
type hudWriter struct {
	dst *core.Screen
	x   int
	y   int
}

func (h *hudWriter) put(s string, c core.Color) {
	h.dst.DrawTextColored(h.x, h.y, s, c)
	h.x += utf8.RuneCountInString(s)
}

func (h *hudWriter) sep() {
	h.put(" │ ", core.ColorDarkGray)
}

// drawHUD draws health, weapon, score, wave and kills on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	p := w.Player
	h := hudWriter{dst: dst, x: 1}

	const barLen = 10
	pct := float64(max(0, p.HP)) / float64(p.MaxHP)
	filled := int(math.Ceil(pct * barLen))
	barColor := core.ColorGreen
	switch {
	case pct <= 0.25:
		barColor = core.ColorRed
	case pct <= 0.5:
		barColor = core.ColorYellow
	}
	h.put("♥ ", core.ColorBrightRed)
	h.put(strings.Repeat("█", filled), barColor)
	h.put(strings.Repeat("░", barLen-filled), core.ColorDarkGray)
	h.put(fmt.Sprintf(" %d", max(0, p.HP)), core.ColorWhite)
	h.sep()

	if p.Weapon == sim.WeaponNone {
		h.put("No weapon: visit a building!", core.ColorGray)
	} else {
		def := p.Weapon.Def()
		h.put(string(def.Glyph)+" "+def.Name, def.Color)
		ammoColor := core.ColorWhite
		if p.Ammo == 0 {
			ammoColor = core.ColorRed
		}
		h.put(fmt.Sprintf(" %d/%d", p.Ammo, def.Ammo), ammoColor)
	}
	h.sep()
	h.put(fmt.Sprintf("Score %d", w.Score), core.ColorBrightYellow)
	h.sep()
	h.put(fmt.Sprintf("Wave %d", w.Wave), core.ColorBrightRed)
	h.sep()
	h.put(fmt.Sprintf("Kills %d", w.Kills), core.ColorWhite)

	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	secs := (w.Time - g.runStart) / rate
	clock := fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	if x := dst.Width() - len(clock) - 1; x > h.x {
		dst.DrawTextColored(x, 0, clock, core.ColorGray)
	}
}

// drawStatus draws the interact prompt or the key help on the bottom row.
func (g *Game) drawStatus(dst *core.Screen) {
	w := g.world
	y := dst.Height() - 1
	if b, ok := w.NearBuilding(); ok && w.Started && !w.Player.Dead && !w.ModalOpen() {
		text := "Press E to enter " + b.Label
		if kind, ok := w.ActiveWeaponForBuilding(b.ID); ok {
			text += fmt.Sprintf(" (%c weapon inside!)", kind.Def().Glyph)
		}
		dst.DrawTextCenteredColored(y, fitText(text, dst.Width()), core.ColorBrightYellow)
		return
	}
	help := "WASD move · SPACE/click fire · E enter · P pause · Q quit"
	dst.DrawTextCenteredColored(y, fitText(help, dst.Width()), core.ColorGray)
}

func (g *Game) drawNotification(dst *core.Screen, v view) {
	n := g.world.Notification
	if n == nil {
		return
	}
	c := core.ColorSky
	if n.Life < 30 {
		c = core.ColorGray
	}
	dst.DrawTextCenteredColored(viewTop+v.rows/3, fitText(n.Text, dst.Width()), c)
}

func (g *Game) drawWaveBanner(dst *core.Screen, v view) {
	w := g.world
	if !w.WaveBanner() || v.rows < 4 {
		return
	}
	c := core.ColorBrightRed
	if w.WaveTimer > w.Config().Waves.BannerTicks*2/3 {
		c = core.ColorRed
	}
	dst.DrawTextCenteredColored(viewTop+1, fmt.Sprintf("Wave %d", w.Wave), c)
	dst.DrawTextCenteredColored(viewTop+2, fmt.Sprintf("%d enemies incoming!", len(w.Enemies)), core.ColorGray)
}

// panelLine is one row of text inside a panel.
type panelLine struct {
	text   string
	color  core.Color
	center bool
}

func centered(text string, c core.Color) panelLine {
	return panelLine{text: text, color: c, center: true}
}

func plain(text string, c core.Color) panelLine {
	return panelLine{text: text, color: c}
}

// drawPanel draws a cleared, bordered box in the middle of the screen with a
// title row followed by lines.
func drawPanel(dst *core.Screen, title string, border core.Color, lines []panelLine) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l.text))
	}
	width = min(width+4, dst.Width())
	height := min(len(lines)+4, dst.Height())
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, border)
	inner := width - 4
	dst.DrawTextCenteredColored(box.Y+1, fitText(title, inner), core.ColorBrightWhite)

	for i, l := range lines {
		y := box.Y + 3 + i
		if y >= box.Bottom()-1 {
			break
		}
		text := fitText(l.text, inner)
		x := box.X + 2
		if l.center {
			x = box.X + (width-utf8.RuneCountInString(text))/2
		}
		dst.DrawTextColored(x, y, text, l.color)
	}
}

// drawOverlay draws whichever full-screen panel the run state calls for.
func (g *Game) drawOverlay(dst *core.Screen) {
	w := g.world
	switch {
	case !w.Started:
		drawPanel(dst, "CEON TOWN", core.ColorSky, welcomeLines)
	case w.Player.Dead:
		drawPanel(dst, "YOU DIED", core.ColorRed, []panelLine{
			centered(fmt.Sprintf("Score: %d", w.Score), core.ColorBrightYellow),
			centered(fmt.Sprintf("Wave %d · Kills %d", w.Wave, w.Kills), core.ColorWhite),
			{},
			centered("Press R to respawn", core.ColorBrightGreen),
			centered("ESC to leave", core.ColorGray),
		})
	case w.ModalOpen():
		if b, ok := w.Map.Building(w.OpenBuilding); ok {
			drawPanel(dst, b.Label, b.RoofColor, g.buildingLines(b))
		}
	case w.Paused:
		drawPanel(dst, "PAUSED", core.ColorYellow, []panelLine{
			centered("Press P to resume", core.ColorWhite),
		})
	}
}

var welcomeLines = []panelLine{
	centered("Welcome to the new Ceon.", core.ColorBrightWhite),
	{},
	plain("Walk around town and enter our buildings to see what we do.", core.ColorWhite),
	plain("Weapons turn up in the buildings. Bugs, legacy code, tech", core.ColorWhite),
	plain("debt and null pointers come for you in waves.", core.ColorWhite),
	{},
	plain("WASD / arrows   move        E / Enter   enter a building", core.ColorGray),
	plain("Space / click   fire        P           pause", core.ColorGray),
	plain("Esc             close       Q           quit", core.ColorGray),
	{},
	centered("Press ENTER to start", core.ColorBrightYellow),
}

// buildingLines builds the dialog body for b, including the weapon card
// when b hosts the pickup.
func (g *Game) buildingLines(b sim.Building) []panelLine {
	w := g.world
	lines := make([]panelLine, 0, len(b.Blurb)+7)
	for _, s := range b.Blurb {
		lines = append(lines, plain(s, core.ColorWhite))
	}

	kind, active := w.ActiveWeaponForBuilding(b.ID)
	taken := w.Spawn.BuildingID == b.ID && w.Spawn.Collected
	if !active && taken {
		kind = w.Spawn.Weapon
	}
	if active || taken {
		def := kind.Def()
		lines = append(lines,
			panelLine{},
			plain(fmt.Sprintf("%c %s", def.Glyph, def.Name), def.Color),
			plain(def.Description, core.ColorGray),
			plain(fmt.Sprintf("Damage: %d | Ammo: %d | Fire rate: %d/s",
				def.Damage, def.Ammo, int(math.Round(60/float64(def.FireRate)))), core.ColorGray),
		)
		if active {
			lines = append(lines, centered("[ENTER] Pick up!", core.ColorBrightYellow))
		} else {
			lines = append(lines, centered("Equipped!", core.ColorBrightGreen))
		}
	}

	return append(lines, panelLine{}, centered("[ESC] Close", core.ColorGray))
}
