package runner

import (
	"math"

	"github.com/vovakirdan/neatza-runners/internal/config"
)

// Autopilot is a simple lane-dodging driver used by headless runs.
// It only reads snapshots, so it never reaches into the simulation.
type Autopilot struct {
	cfg       config.RunnerConfig
	lookahead float64 // How far above the player obstacles are considered
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	return &Autopilot{cfg: cfg, lookahead: 220}
}

// Decide returns the intents for the next tick.
// It moves to the nearest clear lane when the current one is blocked, and
// jumps when no lane is clear in time.
func (a *Autopilot) Decide(s Snapshot) Intents {
	p := s.Player
	if s.Phase != PhasePlaying {
		return Intents{}
	}

	threat := a.threat(s, p.TargetLane)
	if threat == math.Inf(1) {
		return Intents{Lane: a.chaseCoins(s)}
	}

	for _, dir := range []int{-1, 1} {
		lane := p.TargetLane + dir
		if lane < 0 || lane >= a.cfg.Lanes.Count {
			continue
		}
		if a.threat(s, lane) > threat {
			return Intents{Lane: dir}
		}
	}

	// Boxed in: jump once the obstacle is close enough to clear.
	if threat < p.Height+s.Speed*8 {
		return Intents{Jump: true}
	}
	return Intents{}
}

// threat returns the distance to the nearest obstacle ahead in a lane,
// or +Inf when the lane is clear within the lookahead.
func (a *Autopilot) threat(s Snapshot, lane int) float64 {
	nearest := math.Inf(1)
	top := s.Player.Y - s.Player.Height/2
	for _, o := range s.Obstacles {
		if o.Lane != lane {
			continue
		}
		gap := top - (o.Y + o.Height/2)
		if gap < -s.Player.Height || gap > a.lookahead {
			continue
		}
		nearest = math.Min(nearest, gap)
	}
	return nearest
}

// chaseCoins steers toward the lane holding the closest coin, if clear.
func (a *Autopilot) chaseCoins(s Snapshot) int {
	p := s.Player
	best, bestDist := p.TargetLane, math.Inf(1)
	for _, c := range s.Coins {
		if c.Y > p.Y {
			continue
		}
		d := p.Y - c.Y
		if d >= bestDist {
			continue
		}
		lane := a.laneOf(c.X)
		if lane != p.TargetLane && a.threat(s, lane) != math.Inf(1) {
			continue
		}
		best, bestDist = lane, d
	}

	switch {
	case best < p.TargetLane:
		return -1
	case best > p.TargetLane:
		return 1
	default:
		return 0
	}
}

func (a *Autopilot) laneOf(x float64) int {
	lanes := a.cfg.Lanes
	lane := int(math.Floor((x - lanes.Start(a.cfg.World.Width)) / lanes.Width))
	return max(0, min(lanes.Count-1, lane))
}
