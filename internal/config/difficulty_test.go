package config

import (
	"math"
	"testing"
)

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultRunnerConfig()
	d := NewDifficultyManager(cfg)

	if d.StartSpeed() != cfg.World.BaseSpeed {
		t.Errorf("expected start speed %v, got %v", cfg.World.BaseSpeed, d.StartSpeed())
	}
	if d.Level(0) != 0 || d.Level(cfg.World.RampDistance) != 1 || d.Level(1e9) != 1 {
		t.Error("level should ramp from 0 to 1 over the ramp distance")
	}

	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 6},
		{5000, 10},
		{10000, 14},
		{50000, 14},
	}
	for _, tt := range tests {
		if got := d.CurveSpeed(tt.distance); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CurveSpeed(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestObstaclePeriod(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig())

	tests := []struct {
		distance float64
		want     int
	}{
		{0, 80},
		{499, 80},
		{500, 79},
		{5000, 70},
		{20000, 40},
		{1e6, 40},
	}
	for _, tt := range tests {
		if got := d.ObstaclePeriod(tt.distance); got != tt.want {
			t.Errorf("ObstaclePeriod(%v) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

func TestFixedDifficulty(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	cfg.Difficulty.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Fatal("fixed preset should disable progression")
	}
	if d.SpeedIncrease() != 0 {
		t.Errorf("expected no speed increase, got %v", d.SpeedIncrease())
	}
	if got := d.StartSpeed(); got != 10 {
		t.Errorf("expected start speed 10 at level 0.5, got %v", got)
	}
	if d.ObstaclePeriod(0) != d.ObstaclePeriod(1e6) {
		t.Error("obstacle period should not change with distance")
	}
	if got := d.ObstaclePeriod(0); got != 70 {
		t.Errorf("expected period 70 at level 0.5, got %d", got)
	}
}

func TestHardPresetStartsFaster(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	d := NewDifficultyManager(cfg)

	if d.StartSpeed() <= cfg.World.BaseSpeed {
		t.Errorf("hard start speed %v should exceed base", d.StartSpeed())
	}
	if got := d.ClampSpeed(100); got != cfg.World.MaxSpeed {
		t.Errorf("ClampSpeed(100) = %v", got)
	}
}
