package runner

import "github.com/vovakirdan/neatza-runners/internal/core"

// Particle physics.
const (
	particleSpread  = 6.0
	particleLift    = 2.0
	particleGravity = 0.1
	particleLife    = 30.0
	particleLifeVar = 20.0
	particleMaxLife = 50.0
	particleSize    = 2.0
	particleSizeVar = 4.0
)

// emit adds count particles bursting from (x, y).
func (e *Engine) emit(w *World, x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		w.Particles = append(w.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      (e.rng.Float64() - 0.5) * particleSpread,
			VY:      (e.rng.Float64()-0.5)*particleSpread - particleLift,
			Life:    particleLife + e.rng.Float64()*particleLifeVar,
			MaxLife: particleMaxLife,
			Color:   c,
			Size:    particleSize + e.rng.Float64()*particleSizeVar,
		})
	}
}

// updateParticles moves particles and drops the dead ones in place.
func updateParticles(w *World) {
	alive := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	w.Particles = alive
}

// Fade returns the particle's remaining life as a fraction of MaxLife.
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}
