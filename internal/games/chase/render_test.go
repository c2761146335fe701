package chase

import (
	"strings"
	"testing"

	"github.com/vovakirdan/queenchase/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newTestGame(21)
	g.Step(frameAt(0))

	screen := core.NewScreen(80, 26)
	g.Render(screen)
	out := screen.String()

	if !strings.HasPrefix(screen.Row(0), " Queen Chase | ") {
		t.Errorf("HUD should open with the title and a separator: %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, GoalChar) {
		t.Error("goal not drawn")
	}

	lay, ok := newLayout(80, 26, g.cfg.Display)
	if !ok {
		t.Fatal("80x26 should fit the board")
	}
	sx, sy := lay.project(StartX, StartY)
	if screen.Get(sx, sy) != PlayerChar {
		t.Errorf("player expected at (%d, %d), found %q", sx, sy, screen.Get(sx, sy))
	}
	gx, gy := lay.project(GoalX, GoalY)
	if gy >= sy || gx <= sx {
		t.Errorf("goal (%d, %d) should be up and right of the start (%d, %d)", gx, gy, sx, sy)
	}
}

func TestRenderPitIsBlank(t *testing.T) {
	g := newTestGame(22)
	g.Step(frameAt(0))
	g.st.Walls.Clear()
	g.st.Pits.Set(Cell{5, 5})

	screen := core.NewScreen(80, 26)
	g.Render(screen)

	lay, _ := newLayout(80, 26, g.cfg.Display)
	r := lay.cellRect(Cell{5, 5})
	if got := screen.Get(r.X+1, r.Y); got != ' ' {
		t.Errorf("pit cell rendered as %q, expected blank", got)
	}
	floor := lay.cellRect(Cell{5, 6})
	if got := screen.Get(floor.X+1, floor.Y); got != FloorChar {
		t.Errorf("floor cell rendered as %q, expected %q", got, FloorChar)
	}
}

func TestRenderTopViewIsFlat(t *testing.T) {
	g := newTestGame(23)
	g.Step(frameAt(0, press(core.ActionCameraTop)))

	screen := core.NewScreen(80, 26)
	g.Render(screen)

	if strings.ContainsRune(screen.String(), FloorChar) {
		t.Error("top view should use the flat floor glyph")
	}
}

func TestRenderSmallScreenShrinksCells(t *testing.T) {
	g := newTestGame(24)
	g.Step(frameAt(0))

	screen := core.NewScreen(40, 16)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("board should still render with smaller cells")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(25)
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected a too-small overlay:\n%s", screen.String())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(26)
	g.Step(frameAt(0))
	g.Step(frameAt(1, press(core.ActionPause)))

	screen := core.NewScreen(80, 26)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused overlay missing")
	}

	g.Step(frameAt(2, press(core.ActionPause)))
	g.st.Player.State = Falling
	g.Render(screen)
	if !strings.Contains(screen.String(), "fell into a pit") {
		t.Error("fall overlay missing")
	}
}
