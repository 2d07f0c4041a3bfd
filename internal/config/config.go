// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

// RunnerConfig contains every tunable of the runner simulation.
// Distances are in world units of a WorldConfig.Width x WorldConfig.Height
// playfield, durations are in frames.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Lanes      LaneConfig       `yaml:"lanes"`
	Player     PlayerConfig     `yaml:"player"`
	Collision  CollisionConfig  `yaml:"collision"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Pickups    PickupConfig     `yaml:"pickups"`
	PowerUps   PowerUpDurations `yaml:"powerups"`
	Effects    EffectConfig     `yaml:"effects"`
	Ambient    AmbientConfig    `yaml:"ambient"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield and the world speed curve.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BaseSpeed     float64 `yaml:"base_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedIncrease float64 `yaml:"speed_increase"` // Added every tick while no power-up is active
	RampDistance  float64 `yaml:"ramp_distance"`  // Distance at which the curve reaches max speed
	CullMargin    float64 `yaml:"cull_margin"`    // Entities below Height+CullMargin are removed
}

// LaneConfig defines the lane layout.
type LaneConfig struct {
	Count int     `yaml:"count"`
	Width float64 `yaml:"width"`
}

// Start returns the x-coordinate of the left edge of the first lane.
func (l LaneConfig) Start(worldW float64) float64 {
	return (worldW - float64(l.Count)*l.Width) / 2
}

// Center returns the x-coordinate of the center of the given lane.
func (l LaneConfig) Center(lane int, worldW float64) float64 {
	return l.Start(worldW) + l.Width*(float64(lane)+0.5)
}

// PlayerConfig defines player size and motion physics.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	ShrunkWidth      float64 `yaml:"shrunk_width"`
	ShrunkHeight     float64 `yaml:"shrunk_height"`
	GroundOffset     float64 `yaml:"ground_offset"` // Ground y is World.Height - GroundOffset
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	SuperJumpImpulse float64 `yaml:"super_jump_impulse"`
	SlideFrames      int     `yaml:"slide_frames"`
	LaneEasing       float64 `yaml:"lane_easing"` // Fraction of the remaining distance covered per tick
	TiltFactor       float64 `yaml:"tilt_factor"`
	AnimFrames       int     `yaml:"anim_frames"` // Ticks between animation frames
}

// CollisionConfig defines the forgiving obstacle hit-box.
type CollisionConfig struct {
	Margin        float64 `yaml:"margin"`         // Trimmed from the obstacle top and bottom
	SlideProfile  float64 `yaml:"slide_profile"`  // Fraction of player height the top drops while sliding
	JumpClearance float64 `yaml:"jump_clearance"` // Height above ground that clears obstacles
}

// SpawnerConfig defines spawn cadences and coin patterns.
type SpawnerConfig struct {
	ObstacleBasePeriod int     `yaml:"obstacle_base_period"`
	ObstacleMinPeriod  int     `yaml:"obstacle_min_period"`
	ObstaclePeriodStep float64 `yaml:"obstacle_period_step"` // Distance per frame of period reduction
	CoinPeriod         int     `yaml:"coin_period"`
	PowerUpPeriod      int     `yaml:"powerup_period"`
	CoinMinRun         int     `yaml:"coin_min_run"`
	CoinMaxRun         int     `yaml:"coin_max_run"`
	CoinSpacing        float64 `yaml:"coin_spacing"`
	CoinStartY         float64 `yaml:"coin_start_y"`
	PowerUpStartY      float64 `yaml:"powerup_start_y"`
	ArcAmplitude       float64 `yaml:"arc_amplitude"`
	ArcStep            float64 `yaml:"arc_step"`
	DiamondWidth       float64 `yaml:"diamond_width"`
}

// PickupConfig defines coin and power-up pickup geometry.
type PickupConfig struct {
	CoinRadius           float64 `yaml:"coin_radius"`
	CoinCollectRadius    float64 `yaml:"coin_collect_radius"`
	SlideCollectOffset   float64 `yaml:"slide_collect_offset"`
	PowerUpRadius        float64 `yaml:"powerup_radius"`
	PowerUpCollectRadius float64 `yaml:"powerup_collect_radius"`
	MagnetRadius         float64 `yaml:"magnet_radius"`
	MagnetPull           float64 `yaml:"magnet_pull"`
}

// PowerUpDurations holds each power-up's duration in frames.
type PowerUpDurations struct {
	Shield    int `yaml:"shield"`
	Magnet    int `yaml:"magnet"`
	Double    int `yaml:"x2"`
	Rocket    int `yaml:"rocket"`
	Shrink    int `yaml:"shrink"`
	Freeze    int `yaml:"freeze"`
	Bomb      int `yaml:"bomba"`
	SuperJump int `yaml:"super_salt"`
}

// EffectConfig defines the magnitude of power-up effects.
type EffectConfig struct {
	RocketBoost     float64 `yaml:"rocket_boost"`
	FreezeFactor    float64 `yaml:"freeze_factor"`
	FreezeFloor     float64 `yaml:"freeze_floor"`
	EnlargeFactor   float64 `yaml:"enlarge_factor"`
	DoubleCoinValue int     `yaml:"double_coin_value"`
	PickupFlash     float64 `yaml:"pickup_flash"`
	BombShake       float64 `yaml:"bomb_shake"`
	BombFlash       float64 `yaml:"bomb_flash"`
}

// AmbientConfig defines screen shake and flash feedback.
type AmbientConfig struct {
	ShakeDecay  float64 `yaml:"shake_decay"`
	ShakeCutoff float64 `yaml:"shake_cutoff"`
	FlashDecay  float64 `yaml:"flash_decay"`
	FlashCutoff float64 `yaml:"flash_cutoff"`
	DeathShake  float64 `yaml:"death_shake"`
	DeathFlash  float64 `yaml:"death_flash"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = base speed, 1.0 = max speed
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines what drives difficulty.
type ProgressionConfig struct {
	Type string `yaml:"type"` // "distance" or "none"
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
