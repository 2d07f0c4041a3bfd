package runner

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/neatza-runners/internal/config"
)

func TestNewRunResets(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	profile := &MemoryProfile{HighScore: 120, TotalCoins: 40}
	e, w := newTestEngine(t, cfg, Hooks{Profile: profile})

	for i := 0; i < 300; i++ {
		e.Step(w, Intents{Lane: 1 - i%3})
	}
	w.Stats.Coins = 9

	e.Reset(w, w.Character, w.Palette)

	if w.Stats.Distance != 0 || w.Stats.Coins != 0 || w.Stats.Score != 0 {
		t.Errorf("run stats not reset: %+v", w.Stats)
	}
	if w.Speed != cfg.World.BaseSpeed {
		t.Errorf("expected base speed %v, got %v", cfg.World.BaseSpeed, w.Speed)
	}
	if w.Stats.HighScore != 120 || w.Stats.TotalCoins != 40 {
		t.Errorf("profile not loaded: %+v", w.Stats)
	}
	if len(w.Obstacles)+len(w.Coins)+len(w.PowerUps)+len(w.Particles) != 0 {
		t.Error("entity pools not cleared")
	}
	if w.Player.TargetLane != 1 || w.Player.Y != w.Player.GroundY {
		t.Errorf("player not reset: %+v", w.Player)
	}
	if !w.Playing() {
		t.Error("expected playing phase")
	}
}

func TestDistanceAndScoreAccumulate(t *testing.T) {
	cfg := quietConfig()
	e, w := newTestEngine(t, cfg, Hooks{})

	distance, speed := 0.0, cfg.World.BaseSpeed
	const ticks = 5000
	for i := 0; i < ticks; i++ {
		e.Step(w, Intents{})
		distance += speed
		if speed < cfg.World.MaxSpeed {
			speed = math.Min(cfg.World.MaxSpeed, speed+cfg.World.SpeedIncrease)
		}
	}

	if w.Frame != ticks {
		t.Errorf("expected frame %d, got %d", ticks, w.Frame)
	}
	if math.Abs(w.Stats.Distance-distance) > 1e-6 {
		t.Errorf("expected distance %v, got %v", distance, w.Stats.Distance)
	}
	if w.Stats.Score != int(math.Floor(w.Stats.Distance/10)) {
		t.Errorf("score %d does not match distance %v", w.Stats.Score, w.Stats.Distance)
	}
	if math.Abs(w.Speed-speed) > 1e-9 {
		t.Errorf("expected speed %v, got %v", speed, w.Speed)
	}
}

func TestSpeedCapped(t *testing.T) {
	cfg := quietConfig()
	cfg.World.SpeedIncrease = 1
	e, w := newTestEngine(t, cfg, Hooks{})

	for i := 0; i < 50; i++ {
		e.Step(w, Intents{})
		if w.Speed > cfg.World.MaxSpeed {
			t.Fatalf("speed %v exceeds max", w.Speed)
		}
	}
	if w.Speed != cfg.World.MaxSpeed {
		t.Errorf("expected max speed, got %v", w.Speed)
	}
}

func TestSpeedRaisedToBase(t *testing.T) {
	cfg := quietConfig()
	e, w := newTestEngine(t, cfg, Hooks{})
	w.Speed = 1

	e.Step(w, Intents{})
	if w.Speed != cfg.World.BaseSpeed {
		t.Errorf("expected speed clamped to base %v, got %v", cfg.World.BaseSpeed, w.Speed)
	}
}

func TestSpeedHeldDuringPowerUp(t *testing.T) {
	e, w := newTestEngine(t, quietConfig(), Hooks{})
	e.apply(w, PowerUpDouble)
	speed := w.Speed

	for i := 0; i < 100; i++ {
		e.Step(w, Intents{})
	}
	if w.Speed != speed {
		t.Errorf("speed changed under power-up: %v -> %v", speed, w.Speed)
	}
}

func TestMagnetPullsCoins(t *testing.T) {
	cfg := quietConfig()
	e, w := newTestEngine(t, cfg, Hooks{})
	e.apply(w, PowerUpMagnet)

	p := w.Player
	w.Coins = []Coin{{X: p.X + 60, Y: p.Y - 110, Radius: 10}}
	dist := func() float64 {
		c := w.Coins[0]
		return math.Hypot(w.Player.X-c.X, w.Player.Y-c.Y)
	}
	if dist() >= cfg.Pickups.MagnetRadius {
		t.Fatal("coin should start inside the magnet radius")
	}

	prev := dist()
	for w.Active.Active() && len(w.Coins) > 0 {
		e.Step(w, Intents{})
		if len(w.Coins) == 0 {
			break
		}
		if d := dist(); d >= prev {
			t.Fatalf("frame %d: distance did not decrease: %v -> %v", w.Frame, prev, d)
		} else {
			prev = d
		}
	}
	if w.Stats.Coins != 1 {
		t.Errorf("expected the coin to be collected, coins=%d", w.Stats.Coins)
	}
}

func TestMagnetIgnoresFarCoins(t *testing.T) {
	cfg := quietConfig()
	e, w := newTestEngine(t, cfg, Hooks{})
	e.apply(w, PowerUpMagnet)

	w.Coins = []Coin{{X: 100, Y: 0, Radius: 10}}
	e.Step(w, Intents{})
	if c := w.Coins[0]; c.X != 100 || c.Y != w.Speed {
		t.Errorf("far coin should only scroll, got (%v, %v)", c.X, c.Y)
	}
}

func TestCoinValue(t *testing.T) {
	tests := []struct {
		name  string
		power PowerUpType
		apply bool
		want  int
	}{
		{"normal", 0, false, 1},
		{"x2", PowerUpDouble, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, w := newTestEngine(t, quietConfig(), Hooks{})
			if tt.apply {
				e.apply(w, tt.power)
			}
			w.Coins = []Coin{{X: w.Player.X, Y: w.Player.Y - w.Speed, Radius: 10}}
			e.Step(w, Intents{})
			if w.Stats.Coins != tt.want {
				t.Errorf("expected %d coins, got %d", tt.want, w.Stats.Coins)
			}
			if len(w.Coins) != 0 || len(w.Snapshot().Coins) != 0 {
				t.Error("collected coin should leave the world in the same tick")
			}
		})
	}
}

func TestEntitiesCulled(t *testing.T) {
	cfg := quietConfig()
	e, w := newTestEngine(t, cfg, Hooks{})

	bottom := cfg.World.Height + cfg.World.CullMargin
	w.Obstacles = []Obstacle{{Lane: 0, X: 100, Y: bottom, Width: 45, Height: 45}}
	w.Coins = []Coin{{X: 100, Y: bottom}}
	w.PowerUps = []PowerUpPickup{{X: 100, Y: bottom, Lane: 0}}

	e.Step(w, Intents{})
	if len(w.Obstacles)+len(w.Coins)+len(w.PowerUps) != 0 {
		t.Errorf("off-screen entities not culled: %d/%d/%d", len(w.Obstacles), len(w.Coins), len(w.PowerUps))
	}
}

func TestCollisionEndsRun(t *testing.T) {
	deaths := &deathRecorder{}
	e, w := newTestEngine(t, quietConfig(), Hooks{Deaths: deaths})
	placeKiller(w)
	w.Obstacles = append(w.Obstacles, Obstacle{Character: w.Palette[1], Lane: 0, X: 100, Y: 200, Width: 45, Height: 45})

	e.Step(w, Intents{})

	if w.Playing() {
		t.Fatal("expected game over")
	}
	if len(deaths.reports) != 1 {
		t.Fatalf("expected one death report, got %d", len(deaths.reports))
	}
	r := deaths.reports[0]
	if r.Killer.Lane != w.Player.TargetLane || r.Killer.Character.ID != w.Palette[0].ID {
		t.Errorf("unexpected killer %+v", r.Killer)
	}
	if len(r.Obstacles) != 2 || r.Character != "dani" {
		t.Errorf("report missing context: %+v", r)
	}
	if w.Ambient.Shake != 15 || w.Ambient.Flash != 0.8 {
		t.Errorf("expected death feedback, got %+v", w.Ambient)
	}
	if len(w.Particles) != deathRounds*3 {
		t.Errorf("expected %d death particles, got %d", deathRounds*3, len(w.Particles))
	}

	// The finished world stays put, only ambient feedback fades.
	frame, particles := w.Frame, len(w.Particles)
	e.Step(w, Intents{Jump: true})
	if w.Frame != frame || len(w.Particles) != particles {
		t.Error("simulation advanced after game over")
	}
	if math.Abs(w.Ambient.Shake-15*0.9) > 1e-9 || math.Abs(w.Ambient.Flash-0.8*0.95) > 1e-9 {
		t.Errorf("ambient did not decay: %+v", w.Ambient)
	}
}

func TestInvincibleSkipsCollision(t *testing.T) {
	e, w := newTestEngine(t, quietConfig(), Hooks{})
	e.apply(w, PowerUpShield)
	placeKiller(w)

	e.Step(w, Intents{})
	if !w.Playing() {
		t.Error("shielded player should survive")
	}
}

func TestHighScorePersistence(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		distance float64
		want     int
	}{
		{"beaten", 100, 5000, 500},
		{"not beaten", 1000, 5000, 1000},
		{"equal is not beaten", 500, 4994, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &MemoryProfile{HighScore: tt.stored, TotalCoins: 10}
			e, w := newTestEngine(t, quietConfig(), Hooks{Profile: profile})
			w.Stats.Distance = tt.distance
			w.Stats.Coins = 7
			placeKiller(w)

			e.Step(w, Intents{})
			if w.Playing() {
				t.Fatal("expected game over")
			}
			if profile.HighScore != tt.want {
				t.Errorf("stored high score %d, want %d", profile.HighScore, tt.want)
			}
			if w.Stats.HighScore != tt.want {
				t.Errorf("world high score %d, want %d", w.Stats.HighScore, tt.want)
			}
			if profile.TotalCoins != 17 {
				t.Errorf("expected total coins 17, got %d", profile.TotalCoins)
			}
		})
	}
}

func TestGameOverAddsRunCoinsToSharedProfile(t *testing.T) {
	profile := &MemoryProfile{TotalCoins: 10}
	e, w := newTestEngine(t, quietConfig(), Hooks{Profile: profile})
	// Another session banks coins and a better score meanwhile
	profile.TotalCoins = 30
	profile.HighScore = 900
	w.Stats.Distance = 5000
	w.Stats.Coins = 7
	placeKiller(w)

	e.Step(w, Intents{})
	if w.Playing() {
		t.Fatal("expected game over")
	}
	if profile.TotalCoins != 37 {
		t.Errorf("expected the run's coins added to 30, got %d", profile.TotalCoins)
	}
	if profile.HighScore != 900 {
		t.Errorf("expected the other session's best to stay, got %d", profile.HighScore)
	}
}

func TestProfileFailuresIgnored(t *testing.T) {
	profile := &MemoryProfile{Err: errors.New("disk full")}
	e, w := newTestEngine(t, quietConfig(), Hooks{Profile: profile})
	w.Stats.Distance = 5000
	placeKiller(w)

	e.Step(w, Intents{})
	if w.Playing() {
		t.Fatal("expected game over")
	}
	if w.Stats.HighScore != w.Stats.Score {
		t.Errorf("in-memory high score should still update, got %d", w.Stats.HighScore)
	}
}

func TestIntentsApplied(t *testing.T) {
	e, w := newTestEngine(t, quietConfig(), Hooks{})

	e.Step(w, Intents{Lane: -1, Jump: true, Slide: true})
	if w.Player.TargetLane != 0 {
		t.Errorf("expected lane 0, got %d", w.Player.TargetLane)
	}
	if !w.Player.Jumping || w.Player.Sliding {
		t.Errorf("jump should win over slide in the same tick: %+v", w.Player)
	}
	if len(w.Particles) != 5 {
		t.Errorf("expected 5 jump particles, got %d", len(w.Particles))
	}
}

func TestParticlesExpire(t *testing.T) {
	e, w := newTestEngine(t, quietConfig(), Hooks{})
	e.emit(w, 100, 100, w.Character.Color, 20)

	for i := 0; i < int(particleLife+particleLifeVar)+1; i++ {
		e.Step(w, Intents{})
	}
	if len(w.Particles) != 0 {
		t.Errorf("expected particles to expire, %d left", len(w.Particles))
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	e, w := newTestEngine(t, quietConfig(), Hooks{})
	w.Coins = []Coin{{X: 1, Y: 1}}
	s := w.Snapshot()

	e.Step(w, Intents{})
	w.Coins[0].X = 99

	if s.Coins[0].X != 1 || s.Frame != 0 {
		t.Error("snapshot shares state with the world")
	}
}
