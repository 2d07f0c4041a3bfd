package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is the last fallback of LoadRunner.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:         400,
			Height:        700,
			BaseSpeed:     6,
			MaxSpeed:      14,
			SpeedIncrease: 0.002,
			RampDistance:  10000,
			CullMargin:    50,
		},
		Lanes: LaneConfig{
			Count: 3,
			Width: 100,
		},
		Player: PlayerConfig{
			Width:            40,
			Height:           60,
			ShrunkWidth:      25,
			ShrunkHeight:     40,
			GroundOffset:     160,
			Gravity:          0.7,
			JumpImpulse:      -14,
			SuperJumpImpulse: -22,
			SlideFrames:      30,
			LaneEasing:       0.2,
			TiltFactor:       0.05,
			AnimFrames:       7,
		},
		Collision: CollisionConfig{
			Margin:        10,
			SlideProfile:  0.3,
			JumpClearance: 30,
		},
		Spawner: SpawnerConfig{
			ObstacleBasePeriod: 80,
			ObstacleMinPeriod:  40,
			ObstaclePeriodStep: 500,
			CoinPeriod:         60,
			PowerUpPeriod:      400,
			CoinMinRun:         4,
			CoinMaxRun:         7,
			CoinSpacing:        40,
			CoinStartY:         -50,
			PowerUpStartY:      -40,
			ArcAmplitude:       30,
			ArcStep:            0.5,
			DiamondWidth:       40,
		},
		Pickups: PickupConfig{
			CoinRadius:           10,
			CoinCollectRadius:    30,
			SlideCollectOffset:   15,
			PowerUpRadius:        18,
			PowerUpCollectRadius: 35,
			MagnetRadius:         150,
			MagnetPull:           0.1,
		},
		PowerUps: PowerUpDurations{
			Shield:    300, // 5s
			Magnet:    300,
			Double:    300,
			Rocket:    180, // 3s
			Shrink:    300,
			Freeze:    180,
			Bomb:      60, // instant, display only
			SuperJump: 300,
		},
		Effects: EffectConfig{
			RocketBoost:     4,
			FreezeFactor:    0.3,
			FreezeFloor:     2,
			EnlargeFactor:   1.5,
			DoubleCoinValue: 2,
			PickupFlash:     0.3,
			BombShake:       8,
			BombFlash:       0.4,
		},
		Ambient: AmbientConfig{
			ShakeDecay:  0.9,
			ShakeCutoff: 0.1,
			FlashDecay:  0.95,
			FlashCutoff: 0.01,
			DeathShake:  15,
			DeathFlash:  0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "distance",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `neatza config`
// style dumps or as a template for user configs.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
