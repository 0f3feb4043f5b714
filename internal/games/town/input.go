package town

import (
	"github.com/vovakirdan/ceon-town/internal/core"
)

// moveHold is how many ticks a single key press keeps the player walking.
// It bridges the gap between terminal key repeats.
const moveHold = 12

// aimReach is how far ahead of the player a keyboard shot is aimed.
const aimReach = 100

// axis tracks one movement axis across frames.
type axis struct {
	dir   int
	ticks int
}

// update folds this frame's presses into the held direction and returns it.
// Pressing both keys of an axis cancels it.
func (a *axis) update(in core.InputFrame, neg, pos core.Action) int {
	pressed := 0
	if in.Has(neg) {
		pressed--
	}
	if in.Has(pos) {
		pressed++
	}

	switch {
	case in.Has(neg) || in.Has(pos):
		a.dir, a.ticks = pressed, moveHold
	case a.ticks > 0:
		a.ticks--
		if a.ticks == 0 {
			a.dir = 0
		}
	}
	return a.dir
}

// aim returns the shot target in viewport coordinates: the mouse cell when
// the terminal reports one inside the view, otherwise a point ahead of the
// player along its facing.
func (g *Game) aim() core.Vec {
	if g.hasPointer && g.pointerY >= viewTop && g.pointerY < viewTop+g.viewRows() {
		return core.V(
			(float64(g.pointerX)+0.5)*g.cfg.Viewport.CellWidth,
			(float64(g.pointerY-viewTop)+0.5)*g.cfg.Viewport.CellHeight,
		)
	}
	p := g.world.Player
	return p.Center().Sub(g.world.Camera).Add(p.Facing.Unit().Scale(aimReach))
}
