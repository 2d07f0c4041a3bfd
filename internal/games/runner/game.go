package runner

import (
	"math/rand"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

// Game adapts the simulation to the platform's frame loop: it turns input
// frames into intents, handles pause and restart, and renders snapshots.
type Game struct {
	cfg       config.RunnerConfig
	character registry.Character
	hooks     Hooks
	runtime   core.RuntimeConfig

	engine *Engine
	world  *World
	paused bool
}

// New creates a game for the given player character.
func New(cfg config.RunnerConfig, ch registry.Character, hooks Hooks) *Game {
	return &Game{
		cfg:       cfg,
		character: ch,
		hooks:     hooks,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neatza Runners"
}

// Character returns the player character.
func (g *Game) Character() registry.Character {
	return g.character
}

// Reset starts a new run seeded from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.engine = NewEngine(g.cfg, rand.New(rand.NewSource(rc.Seed)), g.hooks)
	g.world = g.engine.NewWorld(g.character)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(g.runtime)
	}

	if !g.world.Playing() {
		if in.Has(core.ActionRestart) {
			g.runtime.Seed++
			g.Reset(g.runtime)
			return core.StepResult{State: g.State()}
		}
		// Ambient feedback keeps fading after the run.
		g.engine.Step(g.world, Intents{})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.Step(g.world, IntentsFrom(in))
	return core.StepResult{State: g.State()}
}

// IntentsFrom maps platform actions to runner intents.
func IntentsFrom(in core.InputFrame) Intents {
	var it Intents
	if in.Has(core.ActionLeft) {
		it.Lane--
	}
	if in.Has(core.ActionRight) {
		it.Lane++
	}
	it.Jump = in.Has(core.ActionJump)
	it.Slide = in.Has(core.ActionSlide)
	return it
}

// Snapshot returns a read-only copy of the current world.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	view := NewView(g.cfg, dst.Width(), dst.Height())
	view.Draw(dst, g.world.Snapshot(), g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.world.Stats.Score,
		Coins:     g.world.Stats.Coins,
		Distance:  int(g.world.Stats.Distance),
		HighScore: g.world.Stats.HighScore,
		GameOver:  !g.world.Playing(),
		Paused:    g.paused,
	}
}
