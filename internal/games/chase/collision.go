package chase

import (
	"math"

	"github.com/vovakirdan/queenchase/internal/core"
)

// Resolve applies pit lethality and wall push-back to the player.
// A Fell event is returned on the tick the player drops into a pit.
func Resolve(st *SimulationState) []core.Event {
	p := &st.Player
	if p.State != Alive {
		return nil
	}

	for _, c := range st.Pits.Cells() {
		if c.Box().ContainsStrict(p.Pos.X, p.Pos.Y) {
			p.State = Falling
			return []core.Event{{Kind: core.EventFell}}
		}
	}

	if st.WallHeight > 0 {
		for _, c := range st.Walls.Cells() {
			pushBack(p, c)
		}
	}
	return nil
}

// pushBack moves the player out of a wall cell to the side it approached from.
// The horizontal check runs first; the vertical check sees its result and
// uses a narrower lateral tolerance.
func pushBack(p *Player, c Cell) {
	x, y := c.Origin()
	cx, cy := x+wallCenterDX, y+wallCenterDY
	dx, dy := math.Abs(p.Pos.X-cx), math.Abs(p.Pos.Y-cy)

	if dx < wallHalfX && dy < wallHalfY {
		switch {
		case p.Pos.X < cx:
			p.Pos.X = cx - wallHalfX
		case p.Pos.X > cx:
			p.Pos.X = cx + wallHalfX
		}
		dx = math.Abs(p.Pos.X - cx)
	}
	if dy < wallHalfY && dx < wallReachNarrow {
		switch {
		case p.Pos.Y < cy:
			p.Pos.Y = cy - wallHalfY
		case p.Pos.Y > cy:
			p.Pos.Y = cy + wallHalfY
		}
	}

	p.Pos.X = core.ClampF(p.Pos.X, MinX, MaxX)
	p.Pos.Y = core.ClampF(p.Pos.Y, MinY, MaxY)
}

// CheckGoal counts ticks spent past the goal threshold and reports the
// victory edge exactly once per episode.
func CheckGoal(st *SimulationState) []core.Event {
	p := st.Player.Pos
	if p.X <= goalReachX || p.Y <= goalReachY {
		return nil
	}
	st.WinTicks++
	if st.WinTicks == 1 {
		st.Outcome = Won
		return []core.Event{{Kind: core.EventWon}}
	}
	return nil
}
