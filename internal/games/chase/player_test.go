package chase

import (
	"testing"

	"github.com/vovakirdan/queenchase/internal/core"
)

const eps = 1e-9

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name   string
		start  core.Vec3
		dir    Direction
		speed  int
		jump   bool
		want   core.Vec3
		jumpOn bool // jump flag still pending afterwards
	}{
		{"slow up", core.V3(0, 0, 6.5), DirUp, 0, false, core.V3(0, 0.1, 6.5), false},
		{"fast up", core.V3(0, 0, 6.5), DirUp, 1, false, core.V3(0, 0.2, 6.5), false},
		{"negative speed is slow", core.V3(0, 0, 6.5), DirDown, -3, false, core.V3(0, -0.1, 6.5), false},
		{"right", core.V3(0, 0, 6.5), DirRight, 0, false, core.V3(0.1, 0, 6.5), false},
		{"left", core.V3(0, 0, 6.5), DirLeft, 0, false, core.V3(-0.1, 0, 6.5), false},
		{"up at bound", core.V3(0, 9.5, 6.5), DirUp, 0, false, core.V3(0, 9.5, 6.5), false},
		{"down at bound", core.V3(0, -10, 6.5), DirDown, 0, false, core.V3(0, -10, 6.5), false},
		{"right at bound", core.V3(7, 0, 6.5), DirRight, 0, false, core.V3(7, 0, 6.5), false},
		{"left at bound", core.V3(-7.5, 0, 6.5), DirLeft, 0, false, core.V3(-7.5, 0, 6.5), false},
		{"jump up", core.V3(0, 0, 6.5), DirUp, 0, true, core.V3(0, 3.1, 6.5), false},
		{"jump down", core.V3(0, 0, 6.5), DirDown, 0, true, core.V3(0, -3.1, 6.5), false},
		{"jump right", core.V3(0, 0, 6.5), DirRight, 0, true, core.V3(3.1, 0, 6.5), false},
		{"jump left", core.V3(0, 0, 6.5), DirLeft, 0, true, core.V3(-3.1, 0, 6.5), false},
		{"jump up past threshold", core.V3(0, 6, 6.5), DirUp, 0, true, core.V3(0, 6.1, 6.5), true},
		{"jump right past threshold", core.V3(4, 0, 6.5), DirRight, 0, true, core.V3(4.1, 0, 6.5), true},
		{"no direction", core.V3(1, 1, 6.5), DirNone, 0, false, core.V3(1, 1, 6.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{Pos: tc.start}
			in := Intent{Dir: tc.dir, Speed: tc.speed}
			in.Jump[tc.dir] = tc.jump

			Integrate(&p, &in)

			if !vecNear(p.Pos, tc.want) {
				t.Errorf("position = %+v, expected %+v", p.Pos, tc.want)
			}
			if in.Jump[tc.dir] != tc.jumpOn {
				t.Errorf("jump pending = %v, expected %v", in.Jump[tc.dir], tc.jumpOn)
			}
		})
	}
}

func TestIntegrateFrozenWhileFalling(t *testing.T) {
	p := Player{Pos: core.V3(0, 0, 3), State: Falling}
	in := Intent{Dir: DirRight}
	Integrate(&p, &in)
	if p.Pos != core.V3(0, 0, 3) {
		t.Errorf("falling player moved to %+v", p.Pos)
	}
}

func TestIntegrateBoundsOvershoot(t *testing.T) {
	p := startPlayer()
	in := Intent{Dir: DirRight, Speed: 1}
	for i := 0; i < 500; i++ {
		Integrate(&p, &in)
	}
	if p.Pos.X > MaxX+FastStep+eps {
		t.Errorf("px = %v overshoots %v by more than one step", p.Pos.X, MaxX)
	}

	in.Dir = DirUp
	for i := 0; i < 500; i++ {
		Integrate(&p, &in)
	}
	if p.Pos.Y > MaxY+FastStep+eps {
		t.Errorf("py = %v overshoots %v by more than one step", p.Pos.Y, MaxY)
	}
}

func TestSink(t *testing.T) {
	p := Player{Pos: core.V3(0, 0, 0.25), State: Falling}

	Sink(&p)
	if !core.NearlyEqual(p.Pos.Z, 0.15, eps) {
		t.Errorf("pz = %v, expected 0.15", p.Pos.Z)
	}
	Sink(&p)
	Sink(&p)
	if p.Pos.Z != 0 {
		t.Errorf("pz = %v, expected floor at 0", p.Pos.Z)
	}

	alive := Player{Pos: core.V3(0, 0, FloorElevation)}
	Sink(&alive)
	if alive.Pos.Z != FloorElevation {
		t.Error("alive player must not sink")
	}
}

func vecNear(a, b core.Vec3) bool {
	return core.NearlyEqual(a.X, b.X, eps) && core.NearlyEqual(a.Y, b.Y, eps) && core.NearlyEqual(a.Z, b.Z, eps)
}
