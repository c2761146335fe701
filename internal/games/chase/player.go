package chase

// Integrate moves an alive player one step along the active intent.
// Bounds are checked before stepping, so the player may end a step just past
// a bound by less than one step. A pending jump in the active direction adds
// JumpDistance and is consumed.
func Integrate(p *Player, in *Intent) {
	if p.State != Alive || in.Dir == DirNone {
		return
	}
	step := SlowStep
	if in.Fast() {
		step = FastStep
	}

	switch in.Dir {
	case DirUp:
		if p.Pos.Y < MaxY {
			p.Pos.Y += step
			if in.consumeJump(DirUp, p.Pos.Y < jumpUpBelow) {
				p.Pos.Y += JumpDistance
			}
		}
	case DirDown:
		if p.Pos.Y > MinY {
			p.Pos.Y -= step
			if in.consumeJump(DirDown, p.Pos.Y > jumpDownAbove) {
				p.Pos.Y -= JumpDistance
			}
		}
	case DirRight:
		if p.Pos.X < MaxX {
			p.Pos.X += step
			if in.consumeJump(DirRight, p.Pos.X < jumpRightBelow) {
				p.Pos.X += JumpDistance
			}
		}
	case DirLeft:
		if p.Pos.X > MinX {
			p.Pos.X -= step
			if in.consumeJump(DirLeft, p.Pos.X > jumpLeftAbove) {
				p.Pos.X -= JumpDistance
			}
		}
	}
}

// Sink lowers a falling player toward the pit floor.
func Sink(p *Player) {
	if p.State != Falling || p.Pos.Z <= 0 {
		return
	}
	p.Pos.Z -= SinkRate
	if p.Pos.Z < 0 {
		p.Pos.Z = 0
	}
}
