package runner

import (
	"math"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
)

// PowerUpType identifies one of the power-ups.
type PowerUpType int

const (
	PowerUpShield PowerUpType = iota
	PowerUpMagnet
	PowerUpDouble
	PowerUpRocket
	PowerUpShrink
	PowerUpFreeze
	PowerUpBomb
	PowerUpSuperJump
	PowerUpCount // sentinel
)

// PowerUpInfo is the static description of a power-up type.
type PowerUpInfo struct {
	ID     string // Stable identifier, also the config key
	Name   string // HUD label
	Symbol rune
	Color  core.Color
}

var powerUpInfo = [PowerUpCount]PowerUpInfo{
	PowerUpShield:    {ID: "shield", Name: "Scut", Symbol: 'S', Color: core.ColorCyan},
	PowerUpMagnet:    {ID: "magnet", Name: "Magnet", Symbol: 'M', Color: core.ColorMagenta},
	PowerUpDouble:    {ID: "x2", Name: "x2 Coins", Symbol: '2', Color: core.ColorGold},
	PowerUpRocket:    {ID: "rocket", Name: "Racheta", Symbol: 'R', Color: core.ColorOrange},
	PowerUpShrink:    {ID: "shrink", Name: "Micsorare", Symbol: 'm', Color: core.ColorBrightBlue},
	PowerUpFreeze:    {ID: "freeze", Name: "Inghetare", Symbol: '*', Color: core.ColorBrightCyan},
	PowerUpBomb:      {ID: "bomba", Name: "Bomba!", Symbol: 'B', Color: core.ColorBrightRed},
	PowerUpSuperJump: {ID: "super_salt", Name: "Super Salt", Symbol: '^', Color: core.ColorBrightGreen},
}

// Info returns the static description of the type.
func (t PowerUpType) Info() PowerUpInfo {
	if t < 0 || t >= PowerUpCount {
		return PowerUpInfo{ID: "unknown", Name: "?", Symbol: '?'}
	}
	return powerUpInfo[t]
}

// String returns the power-up identifier.
func (t PowerUpType) String() string {
	return t.Info().ID
}

// Duration returns the configured duration of the type in frames.
func (t PowerUpType) Duration(d config.PowerUpDurations) int {
	switch t {
	case PowerUpShield:
		return d.Shield
	case PowerUpMagnet:
		return d.Magnet
	case PowerUpDouble:
		return d.Double
	case PowerUpRocket:
		return d.Rocket
	case PowerUpShrink:
		return d.Shrink
	case PowerUpFreeze:
		return d.Freeze
	case PowerUpBomb:
		return d.Bomb
	case PowerUpSuperJump:
		return d.SuperJump
	default:
		return 0
	}
}

// ParsePowerUp looks up a power-up type by identifier.
func ParsePowerUp(id string) (PowerUpType, bool) {
	for t := PowerUpType(0); t < PowerUpCount; t++ {
		if powerUpInfo[t].ID == id {
			return t, true
		}
	}
	return 0, false
}

// Particle colors used by effects.
const (
	colorPickup  = core.ColorMint
	colorBlast   = core.ColorOrange
	colorSpark   = core.ColorGold
	colorDust    = core.ColorGray
	colorSlide   = core.ColorWhite
	colorBlood   = core.ColorRed
	pickupBurst  = 15
	blastBurst   = 15
	sparkBurst   = 8
	collectBurst = 10
	coinBurst    = 5
)

// Grant activates a power-up as if the player had picked it up.
// Ignored once the run is over.
func (e *Engine) Grant(w *World, t PowerUpType) {
	if !w.Playing() || t < 0 || t >= PowerUpCount {
		return
	}
	e.apply(w, t)
}

// apply activates a power-up, overwriting any running one without
// reverting its effect.
func (e *Engine) apply(w *World, t PowerUpType) {
	d := t.Duration(e.cfg.PowerUps)
	w.Active = ActivePowerUp{Type: t, Remaining: d, Total: d}
	fx := e.cfg.Effects
	p := &w.Player

	switch t {
	case PowerUpShield:
		p.Invincible = true
		p.InvincibleTimer = d
	case PowerUpMagnet, PowerUpDouble:
		// Continuous, read from w.Active while it runs.
	case PowerUpRocket:
		w.Speed = e.cfg.World.MaxSpeed + fx.RocketBoost
	case PowerUpShrink:
		p.Width = e.cfg.Player.ShrunkWidth
		p.Height = e.cfg.Player.ShrunkHeight
		for i := range w.Obstacles {
			w.Obstacles[i].Width = math.Round(w.Obstacles[i].Width * fx.EnlargeFactor)
			w.Obstacles[i].Height = math.Round(w.Obstacles[i].Height * fx.EnlargeFactor)
		}
	case PowerUpFreeze:
		w.Speed = math.Max(fx.FreezeFloor, w.Speed*fx.FreezeFactor)
	case PowerUpBomb:
		for _, o := range w.Obstacles {
			e.emit(w, o.X, o.Y, colorBlast, blastBurst)
			e.emit(w, o.X, o.Y, colorSpark, sparkBurst)
		}
		w.Obstacles = w.Obstacles[:0]
		w.Ambient.Shake = fx.BombShake
		w.Ambient.Flash = fx.BombFlash
	case PowerUpSuperJump:
		p.JumpImpulse = e.cfg.Player.SuperJumpImpulse
	}

	w.Ambient.Flash = math.Max(w.Ambient.Flash, fx.PickupFlash)
	e.emit(w, p.X, p.Y, colorPickup, pickupBurst)
}

// expire ends the running power-up. Every expiry restores the player's
// hit-box and jump impulse and puts speed back on the distance curve, so a
// power-up overwritten mid-effect is still undone here.
func (e *Engine) expire(w *World) {
	w.Player.resetSize(e.cfg.Player)
	w.Speed = e.diff.CurveSpeed(w.Stats.Distance)
	w.Active = ActivePowerUp{}
}

// tickPowerUps counts down invincibility and the running power-up.
func (e *Engine) tickPowerUps(w *World) {
	p := &w.Player
	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.InvincibleTimer = 0
			p.Invincible = false
		}
	}

	if w.Active.Active() {
		w.Active.Remaining--
		if w.Active.Remaining <= 0 {
			e.expire(w)
		}
	}
}
