package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of DefaultRunnerConfig, so a user file only needs
// the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML over the hard-coded defaults and validates it.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config back to YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg RunnerConfig) error {
	var errs []error

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if cfg.World.BaseSpeed <= 0 {
		errs = append(errs, errors.New("world.base_speed must be positive"))
	}
	if cfg.World.MaxSpeed < cfg.World.BaseSpeed {
		errs = append(errs, errors.New("world.max_speed must not be below base_speed"))
	}
	if cfg.World.RampDistance <= 0 {
		errs = append(errs, errors.New("world.ramp_distance must be positive"))
	}
	if cfg.Lanes.Count < 1 || cfg.Lanes.Width <= 0 {
		errs = append(errs, errors.New("lanes need a positive count and width"))
	}
	if cfg.Player.LaneEasing <= 0 || cfg.Player.LaneEasing > 1 {
		errs = append(errs, errors.New("player.lane_easing must be in (0, 1]"))
	}
	if cfg.Player.JumpImpulse >= 0 || cfg.Player.SuperJumpImpulse >= 0 {
		errs = append(errs, errors.New("jump impulses must be negative (upward)"))
	}
	if cfg.Player.SlideFrames <= 0 {
		errs = append(errs, errors.New("player.slide_frames must be positive"))
	}
	if cfg.Player.AnimFrames <= 0 {
		errs = append(errs, errors.New("player.anim_frames must be positive"))
	}
	if cfg.Spawner.ObstacleBasePeriod <= 0 || cfg.Spawner.ObstacleMinPeriod <= 0 ||
		cfg.Spawner.CoinPeriod <= 0 || cfg.Spawner.PowerUpPeriod <= 0 {
		errs = append(errs, errors.New("spawn periods must be positive"))
	}
	if cfg.Spawner.ObstaclePeriodStep <= 0 {
		errs = append(errs, errors.New("spawner.obstacle_period_step must be positive"))
	}
	if cfg.Spawner.CoinMinRun < 1 || cfg.Spawner.CoinMaxRun < cfg.Spawner.CoinMinRun {
		errs = append(errs, errors.New("coin run bounds must satisfy 1 <= min <= max"))
	}
	if cfg.Pickups.MagnetPull <= 0 {
		errs = append(errs, errors.New("pickups.magnet_pull must be positive"))
	}
	d := cfg.PowerUps
	for _, v := range []int{d.Shield, d.Magnet, d.Double, d.Rocket, d.Shrink, d.Freeze, d.Bomb, d.SuperJump} {
		if v <= 0 {
			errs = append(errs, errors.New("power-up durations must be positive"))
			break
		}
	}
	if cfg.Difficulty.InitialLevel < 0 || cfg.Difficulty.InitialLevel > 1 {
		errs = append(errs, errors.New("difficulty.initial_level must be in [0, 1]"))
	}
	switch cfg.Difficulty.Progression.Type {
	case "distance", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q must be distance or none", cfg.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Easy runs get a longer breather between obstacles
	if preset == DifficultyEasy {
		cfg.Spawner.ObstacleMinPeriod = max(cfg.Spawner.ObstacleMinPeriod, 50)
	}
}
