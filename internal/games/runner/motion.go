package runner

import "github.com/vovakirdan/neatza-runners/internal/config"

// animCycle is the number of animation frames in a run cycle.
const animCycle = 4

// ShiftLane moves the target lane by dir (-1 or +1).
// Shifts that would leave [0, laneCount-1] are ignored.
func (p *Player) ShiftLane(dir int, laneCount int) bool {
	if dir == 0 {
		return false
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}

	next := p.TargetLane + dir
	if next < 0 || next >= laneCount {
		return false
	}
	p.TargetLane = next
	return true
}

// Jump starts a jump with the current jump impulse.
// Only a grounded player that is not sliding can jump.
func (p *Player) Jump() bool {
	if !p.Grounded() {
		return false
	}
	p.Jumping = true
	p.VelY = p.JumpImpulse
	return true
}

// Slide starts a slide lasting the given number of frames.
// Only a grounded player that is not jumping can slide.
func (p *Player) Slide(frames int) bool {
	if !p.Grounded() {
		return false
	}
	p.Sliding = true
	p.SlideTimer = frames
	return true
}

// tick advances the player's motion by one frame and reports whether the
// player landed from a jump during it.
func (p *Player) tick(lanes config.LaneConfig, worldW float64, pc config.PlayerConfig) (landed bool) {
	// Ease toward the target lane center. The player counts as being in the
	// target lane immediately.
	targetX := lanes.Center(p.TargetLane, worldW)
	p.X += (targetX - p.X) * pc.LaneEasing
	p.Lane = p.TargetLane
	p.Tilt = (targetX - p.X) * pc.TiltFactor

	if p.Jumping {
		p.VelY += pc.Gravity
		p.Y += p.VelY
		if p.Y >= p.GroundY {
			p.Y = p.GroundY
			p.VelY = 0
			p.Jumping = false
			landed = true
		}
	}

	if p.Sliding {
		p.SlideTimer--
		if p.SlideTimer <= 0 {
			p.SlideTimer = 0
			p.Sliding = false
		}
	}

	p.animTimer++
	if p.animTimer >= pc.AnimFrames {
		p.animTimer = 0
		p.AnimFrame = (p.AnimFrame + 1) % animCycle
	}

	return landed
}

// resetSize restores the configured hit-box and jump impulse.
func (p *Player) resetSize(pc config.PlayerConfig) {
	p.Width = pc.Width
	p.Height = pc.Height
	p.JumpImpulse = pc.JumpImpulse
}

// newPlayer returns a player standing in the middle lane.
func newPlayer(cfg config.RunnerConfig) Player {
	mid := cfg.Lanes.Count / 2
	p := Player{
		Lane:       mid,
		TargetLane: mid,
		X:          cfg.Lanes.Center(mid, cfg.World.Width),
		GroundY:    cfg.World.Height - cfg.Player.GroundOffset,
	}
	p.Y = p.GroundY
	p.resetSize(cfg.Player)
	return p
}
