package config

import "math"

// DifficultyManager derives the progression curves of a run from distance.
type DifficultyManager struct {
	world        WorldConfig
	spawner      SpawnerConfig
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg RunnerConfig) *DifficultyManager {
	return &DifficultyManager{
		world:        cfg.World,
		spawner:      cfg.Spawner,
		cfg:          cfg.Difficulty,
		initialLevel: clampF(cfg.Difficulty.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) at the given distance.
func (d *DifficultyManager) Level(distance float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	progress := clampF(distance/d.world.RampDistance, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StartSpeed returns the world speed at the beginning of a run.
func (d *DifficultyManager) StartSpeed() float64 {
	return d.lerpSpeed(d.initialLevel)
}

// SpeedIncrease returns the per-tick speed gain, zero when progression is off.
func (d *DifficultyManager) SpeedIncrease() float64 {
	if !d.IsEnabled() {
		return 0
	}
	return d.world.SpeedIncrease
}

// CurveSpeed returns the speed the normal progression would have reached
// at the given distance. Used to resume after speed-overriding effects.
func (d *DifficultyManager) CurveSpeed(distance float64) float64 {
	return d.lerpSpeed(d.Level(distance))
}

// ClampSpeed bounds a speed to [BaseSpeed, MaxSpeed].
func (d *DifficultyManager) ClampSpeed(speed float64) float64 {
	return clampF(speed, d.world.BaseSpeed, d.world.MaxSpeed)
}

// ObstaclePeriod returns the number of frames between obstacle spawns.
// The period shrinks by one frame every ObstaclePeriodStep units of distance
// down to ObstacleMinPeriod.
func (d *DifficultyManager) ObstaclePeriod(distance float64) int {
	effective := distance
	if !d.IsEnabled() {
		effective = d.initialLevel * d.world.RampDistance
	}
	reduction := int(math.Floor(effective / d.spawner.ObstaclePeriodStep))
	period := d.spawner.ObstacleBasePeriod - reduction
	if period < d.spawner.ObstacleMinPeriod {
		period = d.spawner.ObstacleMinPeriod
	}
	return period
}

func (d *DifficultyManager) lerpSpeed(level float64) float64 {
	return d.world.BaseSpeed + (d.world.MaxSpeed-d.world.BaseSpeed)*level
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
