package chase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/queenchase/internal/config"
	"github.com/vovakirdan/queenchase/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = 'K'
	PlayerFallChar = 'k'
	PlayerDownChar = 'x'
	GoalChar       = 'Q'
	FloorFlatChar  = '·'
	FloorChar      = '░'
	WallFlatChar   = '#'
)

// hudRows is the height of the status bar above the board.
const hudRows = 2

var (
	wallLevels = []rune("▁▂▃▄▅▆▇█")
	spinFrames = []rune("◐◓◑◒")
)

// layout places the board on screen. Cell (i, j) occupies the rectangle at
// column x0+i*cw and row y0+(GridSize-1-j)*ch, so j grows upward.
type layout struct {
	x0, y0 int
	cw, ch int
}

// newLayout fits the board below the HUD, shrinking cells from the
// configured size when the screen is too small. ok is false when even the
// smallest cells do not fit.
func newLayout(w, h int, d config.DisplayConfig) (layout, bool) {
	cw := min(d.CellWidth, (w-2)/GridSize)
	ch := min(d.CellHeight, (h-hudRows-2)/GridSize)
	if cw < 2 || ch < 1 {
		return layout{}, false
	}
	boardW := GridSize*cw + 2
	boardH := GridSize*ch + 2
	return layout{
		x0: (w-boardW)/2 + 1,
		y0: hudRows + (h-hudRows-boardH)/2 + 1,
		cw: cw,
		ch: ch,
	}, true
}

func (l layout) cellRect(c Cell) core.Rect {
	return core.NewRect(l.x0+c.I*l.cw, l.y0+(GridSize-1-c.J)*l.ch, l.cw, l.ch)
}

// project maps a world point on the board to a screen position.
func (l layout) project(x, y float64) (sx, sy int) {
	fx := (x - originX) / CellWidth * float64(l.cw)
	fy := (y - originY) / CellDepth * float64(l.ch)
	sx = core.Clamp(int(math.Floor(fx)), 0, GridSize*l.cw-1)
	sy = core.Clamp(int(math.Floor(fy)), 0, GridSize*l.ch-1)
	return l.x0 + sx, l.y0 + GridSize*l.ch - 1 - sy
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	f := g.Frame()

	g.renderHUD(dst, f)

	lay, ok := newLayout(dst.Width(), dst.Height(), g.cfg.Display)
	if !ok {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(lay.x0-1, lay.y0-1, GridSize*lay.cw+2, GridSize*lay.ch+2), core.ColorGray)
	renderBoard(dst, f, lay)
	renderGoal(dst, f.Goal, lay)
	renderPlayer(dst, f.Player, lay)

	switch {
	case f.Outcome == Won:
		renderOverlay(dst, "The King reached the Queen!", "N: new game  Q: quit")
	case f.Paused:
		renderOverlay(dst, "Paused", "Esc to continue")
	case f.Player.State == Falling:
		renderOverlay(dst, "You fell into a pit", "R: revive  N: new game")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, f Frame) {
	speed := "slow"
	if f.Fast {
		speed = "fast"
	}
	arrow := '▲'
	if f.WallPhase == WallFalling {
		arrow = '▼'
	}
	hud := fmt.Sprintf(" %s | %.1fs  Speed: %s (%+d)  Walls: %c %.2f  Pits in: %.0fs  View: %s",
		g.title, f.Elapsed.Seconds(), speed, f.Speed, arrow, f.WallHeight,
		math.Ceil(f.NextPits.Seconds()), f.Camera.Preset)
	dst.DrawText(0, 0, hud)

	if g.cfg.Difficulty.Preset != "" {
		tag := fmt.Sprintf("%s/stride %d ", g.cfg.Difficulty.Preset, f.WallStride)
		if x := dst.Width() - len(tag); x > len([]rune(hud)) {
			dst.DrawTextColored(x, 0, tag, core.ColorGray)
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws floor, pits and walls. The top view is flat; the other
// views show wall relief, and the player-relative views add a crosshair
// through the player's row and column.
func renderBoard(dst *core.Screen, f Frame, lay layout) {
	flat := f.Camera.Preset == CameraTop
	crosshair := f.Camera.Preset == CameraPlayer || f.Camera.Preset == CameraBehind
	pc, onBoard := f.Player.Cell()

	for i := range f.Cells {
		for _, v := range f.Cells[i] {
			r := lay.cellRect(v.Cell)
			switch {
			case !v.Visible:
				dst.DrawRect(r, ' ', core.ColorDefault)
			case v.Wall && v.Pos.Z > 0:
				dst.DrawRect(r, wallGlyph(v.Pos.Z, flat), wallColor(v.Pos.Z))
			default:
				glyph, color := FloorChar, core.ColorDarkGray
				if flat {
					glyph = FloorFlatChar
				}
				switch {
				case v.Cell.Reserved():
					color = core.ColorGreen
				case crosshair && onBoard && (v.Cell.I == pc.I || v.Cell.J == pc.J):
					color = core.ColorTeal
				}
				dst.DrawRect(r, glyph, color)
			}
		}
	}
}

func wallGlyph(height float64, flat bool) rune {
	if flat {
		return WallFlatChar
	}
	idx := int(height / WallMaxHeight * float64(len(wallLevels)-1))
	return wallLevels[core.Clamp(idx, 0, len(wallLevels)-1)]
}

func wallColor(height float64) core.Color {
	if height >= WallMaxHeight*0.75 {
		return core.ColorBrightRed
	}
	return core.ColorOrange
}

func renderGoal(dst *core.Screen, goal GoalView, lay layout) {
	if !goal.Visible {
		return
	}
	sx, sy := lay.project(goal.Pos.X, goal.Pos.Y)
	dst.SetColored(sx, sy, GoalChar, core.ColorMagenta)
	if goal.Spinning {
		frame := int(goal.Spin/90) % len(spinFrames)
		dst.SetColored(sx+1, sy, spinFrames[frame], core.ColorMagenta)
	}
}

func renderPlayer(dst *core.Screen, p Player, lay layout) {
	sx, sy := lay.project(p.Pos.X, p.Pos.Y)
	switch {
	case p.State == Alive:
		dst.SetColored(sx, sy, PlayerChar, core.ColorBrightWhite)
	case p.Pos.Z > 0:
		dst.SetColored(sx, sy, PlayerFallChar, core.ColorYellow)
	default:
		dst.SetColored(sx, sy, PlayerDownChar, core.ColorRed)
	}
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
