package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/registry"
	"github.com/vovakirdan/ceon-town/internal/storage"
)

// fakeGame counts ticks and lets tests drive its state.
type fakeGame struct {
	state  core.GameState
	resets int
	last   core.InputFrame
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }

type resizableGame struct {
	*fakeGame
	w, h int
}

func (g *resizableGame) Resize(w, h int) { g.w, g.h = w, h }

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g registry.Game, store *storage.Store) Model {
	m := NewModel(g, store, testConfig, "tester", nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestDeathIsRecordedOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := newTestModel(g, store)

	m = tick(t, m)
	g.state.Score, g.state.Level, g.state.Kills, g.state.GameOver = 30, 2, 3, true
	m = tick(t, m)
	m = tick(t, m)

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 1 || scores[0].Score != 30 || scores[0].Wave != 2 || scores[0].Kills != 3 {
		t.Fatalf("expected one score of 30 at wave 2, got %+v", scores)
	}
	runs, _ := store.RecentRuns("fake", 10)
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	if r := runs[0]; r.Player != "tester" || r.Seed != 7 || r.Ticks != 2 || r.EndReason != storage.EndDied {
		t.Errorf("unexpected run %+v", r)
	}

	// Respawn, then die again without scoring.
	g.state = core.GameState{}
	m = tick(t, m)
	g.state.GameOver = true
	tick(t, m)

	if runs, _ := store.RecentRuns("fake", 10); len(runs) != 2 {
		t.Errorf("second death should be a second run, got %d", len(runs))
	}
	if scores, _ := store.TopScores("fake", 10); len(scores) != 1 {
		t.Errorf("a zero score should not enter the table, got %d scores", len(scores))
	}
}

func TestQuitRecordsRun(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := newTestModel(g, store)

	m = tick(t, m)
	g.state.Score = 20
	m = tick(t, m)
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	runs, _ := store.RecentRuns("fake", 10)
	if len(runs) != 1 || runs[0].EndReason != storage.EndQuit || runs[0].Score != 20 {
		t.Errorf("expected a quit run with score 20, got %+v", runs)
	}
	if scores, _ := store.TopScores("fake", 10); len(scores) != 0 {
		t.Error("quitting should not enter the high score table")
	}
}

func TestQuitBeforeFirstTickRecordsNothing(t *testing.T) {
	store := openStore(t)
	m := newTestModel(&fakeGame{}, store)

	update(t, m, runeKey('q'))

	if runs, _ := store.RecentRuns("fake", 10); len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestEscOnDeathLeavesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc while alive belongs to the game")
	}
	m = tick(t, m)
	if !g.last.Has(core.ActionBack) {
		t.Error("esc should reach the game as Back")
	}

	g.state.GameOver = true
	m = tick(t, m)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() || cmd == nil {
		t.Error("esc on the death screen should leave a standalone game")
	}
}

func TestInputReachesGameOnce(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, runeKey(' '))
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion})
	m = tick(t, m)

	if !g.last.Has(core.ActionFire) || g.last.PointerX != 3 || g.last.PointerY != 4 {
		t.Fatalf("frame lost input: %+v", g.last)
	}

	tick(t, m)
	if g.last.Has(core.ActionFire) {
		t.Error("key actions should last one tick")
	}
	if !g.last.HasPointer {
		t.Error("pointer should stick between ticks")
	}
}

func TestResize(t *testing.T) {
	t.Run("resizer keeps the run", func(t *testing.T) {
		g := &resizableGame{fakeGame: &fakeGame{}}
		m := newTestModel(g, nil)

		m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if g.w != 100 || g.h != 30 {
			t.Errorf("Resize got %dx%d", g.w, g.h)
		}
		if g.resets != 1 {
			t.Errorf("resets = %d, expected only the initial one", g.resets)
		}
		if m.screen.Width() != 100 {
			t.Error("screen not resized")
		}
	})

	t.Run("other games restart", func(t *testing.T) {
		g := &fakeGame{}
		m := newTestModel(g, nil)

		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if g.resets != 2 {
			t.Errorf("resets = %d, expected 2", g.resets)
		}
	})
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorSky)
	s.DrawTextColored(0, 1, "d", core.ColorBrown)
	s.DrawTextColored(1, 1, "ef", core.ColorDarkGray)

	out := RenderScreen(s)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, want := range []string{"abc", "d", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	for _, c := range []core.Color{core.ColorBrown, core.ColorPurple, core.ColorDarkGreen, core.ColorDarkGray, core.ColorSky} {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	if !colorStyles[core.ColorBrightWhite].GetBold() || colorStyles[core.ColorGray].GetBold() {
		t.Error("only emphasized colors should be bold")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / defaultTickRate},
		{-5, time.Second / defaultTickRate},
	}

	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
