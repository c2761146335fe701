package chase

import (
	"testing"

	"github.com/vovakirdan/queenchase/internal/core"
)

func TestResolvePit(t *testing.T) {
	pit := Cell{3, 4}
	x, y := pit.Origin()

	tests := []struct {
		name string
		pos  core.Vec3
		fall bool
	}{
		{"inside", core.V3(x+0.75, y+1, FloorElevation), true},
		{"on left edge", core.V3(x, y+1, FloorElevation), false},
		{"on far edge", core.V3(x+0.75, y+CellDepth, FloorElevation), false},
		{"outside", core.V3(x-0.5, y+1, FloorElevation), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := NewSimulationState()
			st.Pits.Set(pit)
			st.Player.Pos = tc.pos

			events := Resolve(st)

			if got := st.Player.State == Falling; got != tc.fall {
				t.Fatalf("falling = %v, expected %v", got, tc.fall)
			}
			if hasEvent(events, core.EventFell) != tc.fall {
				t.Errorf("Fell event = %v, expected %v", hasEvent(events, core.EventFell), tc.fall)
			}
		})
	}
}

func TestResolveFallReportedOnce(t *testing.T) {
	st := NewSimulationState()
	pit := Cell{3, 4}
	st.Pits.Set(pit)
	x, y := pit.Origin()
	st.Player.Pos = core.V3(x+0.75, y+1, FloorElevation)

	Resolve(st)
	if events := Resolve(st); len(events) != 0 {
		t.Errorf("second Resolve() returned %v, expected no events", events)
	}
}

func TestResolveWallPushBack(t *testing.T) {
	wall := Cell{2, 2}
	x, y := wall.Origin()
	cx, cy := x+0.75, y+0.1

	tests := []struct {
		name   string
		height float64
		pos    core.Vec3
		want   core.Vec3
	}{
		{"from left", 1, core.V3(cx-0.5, cy, 6.5), core.V3(cx-1.25, cy, 6.5)},
		{"from right", 1, core.V3(cx+0.5, cy+0.3, 6.5), core.V3(cx+1.25, cy+0.3, 6.5)},
		{"from below on centre line", 1, core.V3(cx, cy-1, 6.5), core.V3(cx, cy-1.5, 6.5)},
		{"from above on centre line", 1, core.V3(cx, cy+1, 6.5), core.V3(cx, cy+1.5, 6.5)},
		{"out of reach", 1, core.V3(cx-1.3, cy, 6.5), core.V3(cx-1.3, cy, 6.5)},
		{"flat wall", 0, core.V3(cx-0.5, cy, 6.5), core.V3(cx-0.5, cy, 6.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := NewSimulationState()
			st.Walls.Set(wall)
			st.WallHeight = tc.height
			st.Player.Pos = tc.pos

			Resolve(st)

			if !vecNear(st.Player.Pos, tc.want) {
				t.Errorf("position = %+v, expected %+v", st.Player.Pos, tc.want)
			}
		})
	}
}

func TestWallHoldsPlayerApproachingFromLeft(t *testing.T) {
	wall := Cell{4, 2}
	x, y := wall.Origin()
	cx, cy := x+0.75, y+0.1

	for _, speed := range []int{0, 1, 3} {
		st := NewSimulationState()
		st.Walls.Set(wall)
		st.WallHeight = WallMaxHeight / 2
		st.Player.Pos = core.V3(cx-3, cy, FloorElevation)
		st.Intent = Intent{Dir: DirRight, Speed: speed}

		for tick := 0; tick < 120; tick++ {
			Integrate(&st.Player, &st.Intent)
			Resolve(st)
			if st.Player.Pos.X > cx-wallHalfX+eps {
				t.Fatalf("speed %d, tick %d: px = %v entered the wall (limit %v)",
					speed, tick, st.Player.Pos.X, cx-wallHalfX)
			}
		}
		if !core.NearlyEqual(st.Player.Pos.X, cx-wallHalfX, eps) {
			t.Errorf("speed %d: player should rest against the wall, px = %v", speed, st.Player.Pos.X)
		}
	}
}

func TestResolveWallKeepsPlayerOnBoard(t *testing.T) {
	st := NewSimulationState()
	wall := Cell{9, 4}
	st.Walls.Set(wall)
	st.WallHeight = 2
	_, y := wall.Origin()
	st.Player.Pos = core.V3(MaxX, y+0.1, FloorElevation)

	Resolve(st)

	if st.Player.Pos.X > MaxX {
		t.Errorf("push-back moved the player off the board: px = %v", st.Player.Pos.X)
	}
}

func TestCheckGoal(t *testing.T) {
	st := NewSimulationState()

	st.Player.Pos = core.V3(6, 9, FloorElevation)
	if len(CheckGoal(st)) != 0 || st.Outcome != Playing {
		t.Fatal("px == 6 must not reach the goal")
	}

	st.Player.Pos = core.V3(6.5, 8.5, FloorElevation)
	events := CheckGoal(st)
	if !hasEvent(events, core.EventWon) || st.Outcome != Won {
		t.Fatal("expected the victory edge")
	}

	for i := 0; i < 10; i++ {
		if len(CheckGoal(st)) != 0 {
			t.Fatal("victory reported more than once")
		}
	}
	if st.WinTicks != 11 {
		t.Errorf("WinTicks = %d, expected 11", st.WinTicks)
	}
}
