package runner

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

// Intents are the player commands captured before a tick.
type Intents struct {
	Lane  int  // Lane shifts, negative is left
	Jump  bool
	Slide bool
}

// Death burst: rounds of two particles in the character color and one red.
const deathRounds = 30

// Engine advances Worlds one fixed tick at a time.
// It owns the random source, so a fixed seed replays a run exactly.
type Engine struct {
	cfg   config.RunnerConfig
	diff  *config.DifficultyManager
	rng   RNG
	hooks Hooks
	log   *log.Logger
}

// NewEngine creates an engine for the given configuration.
func NewEngine(cfg config.RunnerConfig, rng RNG, hooks Hooks) *Engine {
	return &Engine{
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg),
		rng:   rng,
		hooks: hooks,
		log:   hooks.logger(),
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// NewWorld starts a run with the given player character. The obstacle
// palette is every other registered character.
func (e *Engine) NewWorld(ch registry.Character) *World {
	w := &World{}
	e.Reset(w, ch, registry.Palette(ch.ID))
	return w
}

// Reset puts w in the initial state of a new run and loads the profile.
func (e *Engine) Reset(w *World, ch registry.Character, palette []registry.Character) {
	*w = World{
		Phase:     PhasePlaying,
		Character: ch,
		Palette:   palette,
		Player:    newPlayer(e.cfg),
		Speed:     e.diff.StartSpeed(),
	}

	if pr := e.hooks.Profile; pr != nil {
		if hs, err := pr.LoadHighScore(); err != nil {
			e.log.Warn("could not load high score", "error", err)
		} else {
			w.Stats.HighScore = hs
		}
		if tc, err := pr.LoadTotalCoins(); err != nil {
			e.log.Warn("could not load total coins", "error", err)
		} else {
			w.Stats.TotalCoins = tc
		}
	}
}

// Step advances the world by one tick.
func (e *Engine) Step(w *World, in Intents) {
	e.decayAmbient(w)
	if !w.Playing() {
		return
	}

	e.applyIntents(w, in)

	// Progress
	w.Frame++
	w.Stats.Distance += w.Speed
	w.Stats.Score = int(math.Floor(w.Stats.Distance / 10))
	if w.Speed < e.cfg.World.MaxSpeed && !w.Active.Active() {
		w.Speed = e.diff.ClampSpeed(w.Speed + e.diff.SpeedIncrease())
	}

	p := &w.Player
	if p.tick(e.cfg.Lanes, e.cfg.World.Width, e.cfg.Player) {
		e.emit(w, p.X, p.GroundY+p.Height/2, colorDust, 3)
	}

	e.tickPowerUps(w)
	e.spawn(w)

	if e.updateObstacles(w) {
		return
	}
	e.updateCoins(w)
	e.updatePowerUps(w)
	updateParticles(w)
}

func (e *Engine) applyIntents(w *World, in Intents) {
	p := &w.Player
	dir := 1
	if in.Lane < 0 {
		dir = -1
	}
	for i := 0; i < core.Abs(in.Lane); i++ {
		p.ShiftLane(dir, e.cfg.Lanes.Count)
	}

	feetY := p.GroundY + p.Height/2
	if in.Jump && p.Jump() {
		e.emit(w, p.X, feetY, w.Character.Color, 5)
	}
	if in.Slide && p.Slide(e.cfg.Player.SlideFrames) {
		e.emit(w, p.X, feetY, colorSlide, 3)
	}
}

func (e *Engine) decayAmbient(w *World) {
	a := e.cfg.Ambient
	if w.Ambient.Shake > 0 {
		w.Ambient.Shake *= a.ShakeDecay
	}
	if w.Ambient.Shake < a.ShakeCutoff {
		w.Ambient.Shake = 0
	}
	if w.Ambient.Flash > 0 {
		w.Ambient.Flash *= a.FlashDecay
	}
	if w.Ambient.Flash < a.FlashCutoff {
		w.Ambient.Flash = 0
	}
}

// offScreen reports whether y is past the bottom cull line.
func (e *Engine) offScreen(y float64) bool {
	return y > e.cfg.World.Height+e.cfg.World.CullMargin
}

// updateObstacles scrolls and culls obstacles and reports whether one hit
// the player, ending the run.
func (e *Engine) updateObstacles(w *World) bool {
	kept := w.Obstacles[:0]
	var killer Obstacle
	hit := false

	for _, o := range w.Obstacles {
		o.Y += w.Speed
		if e.offScreen(o.Y) {
			continue
		}
		kept = append(kept, o)
		if !hit && !w.Player.Invincible &&
			Collides(w.Player, o, e.cfg.Collision, w.Player.GroundY) {
			killer, hit = o, true
		}
	}
	w.Obstacles = kept

	if !hit {
		return false
	}
	e.gameOver(w, killer)
	return true
}

func (e *Engine) updateCoins(w *World) {
	pk := e.cfg.Pickups
	p := &w.Player
	magnet := w.Active.Is(PowerUpMagnet)

	value := 1
	if w.Active.Is(PowerUpDouble) {
		value = e.cfg.Effects.DoubleCoinValue
	}

	kept := w.Coins[:0]
	for _, c := range w.Coins {
		c.Sparkle += 0.1

		dx, dy := p.X-c.X, p.Y-c.Y
		if magnet && math.Hypot(dx, dy) < pk.MagnetRadius {
			// Captured coins follow the player instead of the road.
			c.X += dx * pk.MagnetPull
			c.Y += dy * pk.MagnetPull
		} else {
			c.Y += w.Speed
			if e.offScreen(c.Y) {
				continue
			}
		}

		reachY := p.Y
		if p.Sliding {
			reachY += pk.SlideCollectOffset
		}
		if math.Hypot(p.X-c.X, reachY-c.Y) < pk.CoinCollectRadius {
			w.Stats.Coins += value
			e.emit(w, c.X, c.Y, colorSpark, coinBurst)
			continue
		}
		kept = append(kept, c)
	}
	w.Coins = kept
}

func (e *Engine) updatePowerUps(w *World) {
	p := &w.Player
	var collected []PowerUpPickup

	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		pu.Y += w.Speed
		pu.Glow += 0.05
		if e.offScreen(pu.Y) {
			continue
		}
		if math.Hypot(p.X-pu.X, p.Y-pu.Y) < e.cfg.Pickups.PowerUpCollectRadius {
			collected = append(collected, pu)
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept

	for _, pu := range collected {
		e.apply(w, pu.Type)
		e.emit(w, pu.X, pu.Y, colorPickup, collectBurst)
	}
}

// gameOver ends the run: it reports the death, sets off the ambient
// feedback and persists the profile.
func (e *Engine) gameOver(w *World, killer Obstacle) {
	p := w.Player
	if e.hooks.Deaths != nil {
		e.hooks.Deaths.ReportDeath(DeathReport{
			Frame:     w.Frame,
			Score:     w.Stats.Score,
			Distance:  w.Stats.Distance,
			Character: w.Character.ID,
			Killer:    killer,
			Player:    p,
			Obstacles: append([]Obstacle(nil), w.Obstacles...),
		})
	}

	w.Phase = PhaseGameOver
	w.Ambient.Shake = e.cfg.Ambient.DeathShake
	w.Ambient.Flash = e.cfg.Ambient.DeathFlash

	for i := 0; i < deathRounds; i++ {
		e.emit(w, p.X, p.Y, w.Character.Color, 2)
		e.emit(w, p.X, p.Y, colorBlood, 1)
	}

	if w.Stats.Score > w.Stats.HighScore {
		w.Stats.HighScore = w.Stats.Score
		if pr := e.hooks.Profile; pr != nil {
			if err := pr.SaveHighScore(w.Stats.HighScore); err != nil {
				e.log.Warn("could not save high score", "error", err)
			}
		}
	}

	w.Stats.TotalCoins += w.Stats.Coins
	if pr := e.hooks.Profile; pr != nil {
		if err := pr.AddCoins(w.Stats.Coins); err != nil {
			e.log.Warn("could not save total coins", "error", err)
		}
	}
}
