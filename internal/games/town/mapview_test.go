package town

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
)

func TestMapScreen(t *testing.T) {
	m := sim.DefaultMap()
	dst := MapScreen(m)

	if dst.Width() != sim.MapCols || dst.Height() != sim.MapRows+len(m.Buildings)+1 {
		t.Fatalf("map screen is %dx%d", dst.Width(), dst.Height())
	}
	for i, b := range m.Buildings {
		mark := rune('A' + i)
		if got := dst.Get(b.X+b.W/2, b.Y+b.H/2); got != mark {
			t.Errorf("%s marked %q, expected %q", b.ID, got, mark)
		}
		if row := dst.Row(sim.MapRows + 1 + i); !strings.Contains(row, string(mark)+" "+b.Label[:min(len(b.Label), 10)]) {
			t.Errorf("legend row %q missing %s", row, b.Label)
		}
	}

	out := dst.String()
	for _, r := range []rune{'≈', '·', '♣'} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("map has no %q", r)
		}
	}
}
