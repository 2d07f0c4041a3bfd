package runner

import (
	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
)

// Collides reports whether an obstacle hits the player.
//
// Collision is lane based: only an obstacle in the player's target lane can
// hit, so side-by-side near misses never count. A jump above the clearance
// height or any slide passes the obstacle. Otherwise the vertical extents are
// compared, with the obstacle trimmed by the margin on top and bottom and the
// player's top lowered while sliding.
func Collides(p Player, o Obstacle, c config.CollisionConfig, groundY float64) bool {
	if o.Lane != p.TargetLane {
		return false
	}
	if p.Jumping && p.Y < groundY-c.JumpClearance {
		return false
	}
	if p.Sliding {
		return false
	}

	return playerSpan(p, c).Overlaps(o.Box().Vertical().Shrink(c.Margin))
}

// playerSpan returns the vertical extent of the player's hit-box.
func playerSpan(p Player, c config.CollisionConfig) core.Span {
	s := p.Box().Vertical()
	if p.Sliding {
		s.Min = p.Y + p.Height*c.SlideProfile
	}
	return s
}
