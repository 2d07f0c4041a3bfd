// Package runner implements the Neatza three-lane endless runner.
// The simulation is a fixed-step function over a single World aggregate:
// Engine.Step consumes the intents captured before the tick and mutates the
// world, the renderer reads a Snapshot afterwards.
package runner

import (
	"slices"

	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

// Phase is the run state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Player is the runner controlled by the intents.
type Player struct {
	Lane       int     // Lane the player counts as occupying
	TargetLane int     // Lane the player is easing toward
	X, Y       float64 // Center position
	VelY       float64
	GroundY    float64 // Y of the center when standing

	Jumping         bool
	Sliding         bool
	SlideTimer      int
	Invincible      bool
	InvincibleTimer int

	Width, Height float64 // Hit-box, mutable under shrink
	JumpImpulse   float64 // Mutable under super jump

	Tilt      float64
	AnimFrame int
	animTimer int
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Grounded reports whether the player stands on the ground and is free to act.
func (p Player) Grounded() bool {
	return !p.Jumping && !p.Sliding
}

// Obstacle is a character from the palette running at the player.
type Obstacle struct {
	Character     registry.Character
	Lane          int
	X, Y          float64
	Width, Height float64
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Coin is a collectible worth one coin, two under x2.
type Coin struct {
	X, Y      float64
	Radius    float64
	BobOffset float64 // Cosmetic phase
	Sparkle   float64 // Cosmetic phase
}

// PowerUpPickup is a power-up lying on the road.
type PowerUpPickup struct {
	X, Y      float64
	Lane      int
	Type      PowerUpType
	Radius    float64
	BobOffset float64
	Glow      float64
}

// ActivePowerUp is the single running power-up. The zero value is inactive.
type ActivePowerUp struct {
	Type      PowerUpType
	Remaining int // Frames left
	Total     int // Frames at activation
}

// Active reports whether a power-up is running.
func (a ActivePowerUp) Active() bool {
	return a.Remaining > 0
}

// Is reports whether the given power-up type is the running one.
func (a ActivePowerUp) Is(t PowerUpType) bool {
	return a.Active() && a.Type == t
}

// Fraction returns the remaining share of the power-up, 0 when inactive.
func (a ActivePowerUp) Fraction() float64 {
	if !a.Active() || a.Total == 0 {
		return 0
	}
	return float64(a.Remaining) / float64(a.Total)
}

// Particle is a cosmetic spark with no gameplay effect.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   core.Color
	Size    float64
}

// RunStats holds run progress and the persisted profile values.
type RunStats struct {
	Distance   float64
	Score      int
	Coins      int // Collected this run
	TotalCoins int // Persisted across runs
	HighScore  int // Persisted across runs
}

// Ambient holds screen feedback magnitudes that decay every tick.
type Ambient struct {
	Shake float64
	Flash float64
}

// World is the whole mutable state of a run.
type World struct {
	Phase     Phase
	Character registry.Character   // Player character
	Palette   []registry.Character // Obstacle types, never contains Character

	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	PowerUps  []PowerUpPickup
	Particles []Particle
	Active    ActivePowerUp

	Stats   RunStats
	Ambient Ambient
	Speed   float64
	Frame   int

	picker ObstaclePicker
	bag    PowerUpBag
}

// Playing reports whether the run is still active.
func (w *World) Playing() bool {
	return w.Phase == PhasePlaying
}

// Snapshot is a read-only copy of the world for rendering.
// It shares no memory with the World it was taken from.
type Snapshot struct {
	Phase     Phase
	Character registry.Character
	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	PowerUps  []PowerUpPickup
	Particles []Particle
	Active    ActivePowerUp
	Stats     RunStats
	Ambient   Ambient
	Speed     float64
	Frame     int
}

// Snapshot returns a deep copy of everything a renderer needs.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Phase:     w.Phase,
		Character: w.Character,
		Player:    w.Player,
		Obstacles: slices.Clone(w.Obstacles),
		Coins:     slices.Clone(w.Coins),
		PowerUps:  slices.Clone(w.PowerUps),
		Particles: slices.Clone(w.Particles),
		Active:    w.Active,
		Stats:     w.Stats,
		Ambient:   w.Ambient,
		Speed:     w.Speed,
		Frame:     w.Frame,
	}
}
