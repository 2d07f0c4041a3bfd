package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

// quietConfig returns the default config with spawning effectively disabled.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.ObstacleBasePeriod = 1 << 30
	cfg.Spawner.ObstacleMinPeriod = 1 << 30
	cfg.Spawner.CoinPeriod = 1 << 30
	cfg.Spawner.PowerUpPeriod = 1 << 30
	return cfg
}

func newTestEngine(t *testing.T, cfg config.RunnerConfig, hooks Hooks) (*Engine, *World) {
	t.Helper()
	ch, err := registry.Get("dani")
	if err != nil {
		t.Fatalf("registry.Get(dani): %v", err)
	}
	e := NewEngine(cfg, rand.New(rand.NewSource(42)), hooks)
	return e, e.NewWorld(ch)
}

// placeKiller puts an obstacle in the player's lane that reaches the player
// on the next tick.
func placeKiller(w *World) {
	ch := w.Palette[0]
	w.Obstacles = append(w.Obstacles, Obstacle{
		Character: ch,
		Lane:      w.Player.TargetLane,
		X:         w.Player.X,
		Y:         w.Player.Y - w.Speed,
		Width:     ch.Width,
		Height:    ch.Height,
	})
}

// deathRecorder collects death reports.
type deathRecorder struct {
	reports []DeathReport
}

func (d *deathRecorder) ReportDeath(r DeathReport) {
	d.reports = append(d.reports, r)
}
