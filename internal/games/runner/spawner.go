package runner

import (
	"math"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
)

// RNG is the random source of the simulation. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// ObstaclePicker chooses obstacle types without repeating the previous one.
// The zero value is ready to use.
type ObstaclePicker struct {
	last    int
	started bool
}

// Next returns an index into a palette of n entries, uniformly among the
// entries other than the one returned last. A palette of one always repeats.
func (p *ObstaclePicker) Next(rng RNG, n int) int {
	if n <= 1 {
		p.last, p.started = 0, true
		return 0
	}

	var idx int
	if !p.started || p.last >= n {
		idx = rng.Intn(n)
	} else {
		// Draw from n-1 slots and skip over the last pick.
		idx = rng.Intn(n - 1)
		if idx >= p.last {
			idx++
		}
	}

	p.last, p.started = idx, true
	return idx
}

// bagOrder is the canonical fill order of the power-up bag.
var bagOrder = [PowerUpCount]PowerUpType{
	PowerUpMagnet, PowerUpShield, PowerUpDouble, PowerUpSuperJump,
	PowerUpRocket, PowerUpShrink, PowerUpFreeze, PowerUpBomb,
}

// PowerUpBag is a shuffle bag over all power-up types.
// The zero value is an empty bag that fills on first draw.
type PowerUpBag struct {
	items []PowerUpType
	last  PowerUpType
	drawn bool
}

// Next pops the next power-up type, refilling and reshuffling when empty.
func (b *PowerUpBag) Next(rng RNG) PowerUpType {
	if len(b.items) == 0 {
		b.refill(rng)
	}

	t := b.items[len(b.items)-1]
	b.items = b.items[:len(b.items)-1]
	b.last, b.drawn = t, true
	return t
}

// Len returns the number of types left before the next refill.
func (b *PowerUpBag) Len() int {
	return len(b.items)
}

func (b *PowerUpBag) refill(rng RNG) {
	b.items = append(b.items[:0], bagOrder[:]...)

	// Fisher-Yates
	for i := len(b.items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		b.items[i], b.items[j] = b.items[j], b.items[i]
	}

	// No duplicate across the bag boundary.
	top := len(b.items) - 1
	if b.drawn && b.items[top] == b.last {
		b.items[top], b.items[0] = b.items[0], b.items[top]
	}
}

// CoinPattern is the spatial layout of a coin run.
type CoinPattern int

const (
	PatternLine CoinPattern = iota
	PatternArc
	PatternDiamond
	patternCount
)

// String returns the pattern name.
func (p CoinPattern) String() string {
	switch p {
	case PatternLine:
		return "line"
	case PatternArc:
		return "arc"
	case PatternDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// coinRun lays out n coins of a pattern in the lane centered on laneX.
// Coins start above the visible area and trail upward.
func coinRun(pattern CoinPattern, n int, laneX float64, sc config.SpawnerConfig) []core.Vec {
	out := make([]core.Vec, n)
	mid := float64(n) / 2

	for i := range out {
		x := laneX
		y := sc.CoinStartY - float64(i)*sc.CoinSpacing

		switch pattern {
		case PatternArc:
			x += math.Sin(float64(i)*sc.ArcStep) * sc.ArcAmplitude
		case PatternDiamond:
			offset := (1 - math.Abs(float64(i)-mid)/mid) * sc.DiamondWidth
			if i%2 == 0 {
				x += offset
			} else {
				x -= offset
			}
		}

		out[i] = core.Vec{X: x, Y: y}
	}
	return out
}

// spawnObstacle adds one obstacle from the palette in a random lane.
func (e *Engine) spawnObstacle(w *World) {
	if len(w.Palette) == 0 {
		return
	}
	ch := w.Palette[w.picker.Next(e.rng, len(w.Palette))]
	lane := e.rng.Intn(e.cfg.Lanes.Count)

	scale := 1.0
	if w.Active.Is(PowerUpShrink) {
		scale = e.cfg.Effects.EnlargeFactor
	}

	w.Obstacles = append(w.Obstacles, Obstacle{
		Character: ch,
		Lane:      lane,
		X:         e.cfg.Lanes.Center(lane, e.cfg.World.Width),
		Y:         -ch.Height,
		Width:     math.Round(ch.Width * scale),
		Height:    math.Round(ch.Height * scale),
	})
}

// spawnCoins adds a run of coins in one random lane.
func (e *Engine) spawnCoins(w *World) {
	sc := e.cfg.Spawner
	lane := e.rng.Intn(e.cfg.Lanes.Count)
	pattern := CoinPattern(e.rng.Intn(int(patternCount)))
	n := sc.CoinMinRun + e.rng.Intn(sc.CoinMaxRun-sc.CoinMinRun+1)

	for _, pos := range coinRun(pattern, n, e.cfg.Lanes.Center(lane, e.cfg.World.Width), sc) {
		w.Coins = append(w.Coins, Coin{
			X:         pos.X,
			Y:         pos.Y,
			Radius:    e.cfg.Pickups.CoinRadius,
			BobOffset: e.rng.Float64() * 2 * math.Pi,
		})
	}
}

// spawnPowerUp adds the next power-up from the bag in a random lane.
func (e *Engine) spawnPowerUp(w *World) {
	lane := e.rng.Intn(e.cfg.Lanes.Count)
	t := w.bag.Next(e.rng)

	w.PowerUps = append(w.PowerUps, PowerUpPickup{
		X:         e.cfg.Lanes.Center(lane, e.cfg.World.Width),
		Y:         e.cfg.Spawner.PowerUpStartY,
		Lane:      lane,
		Type:      t,
		Radius:    e.cfg.Pickups.PowerUpRadius,
		BobOffset: e.rng.Float64() * 2 * math.Pi,
	})
}

// spawn runs the three cadence checks of a tick.
func (e *Engine) spawn(w *World) {
	if w.Frame%e.diff.ObstaclePeriod(w.Stats.Distance) == 0 {
		e.spawnObstacle(w)
	}
	if w.Frame%e.cfg.Spawner.CoinPeriod == 0 {
		e.spawnCoins(w)
	}
	if w.Frame%e.cfg.Spawner.PowerUpPeriod == 0 {
		e.spawnPowerUp(w)
	}
}
