package game

import (
	"math/rand"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
)

// Particle is a purely cosmetic burst fragment in fractional cell
// coordinates. Only the renderer looks at particles; the simulation never
// reads them back.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// EmitParticles sprays a burst from the center of a cell
func (s *Session) EmitParticles(cell Point, count int) {
	for i := 0; i < count; i++ {
		s.Particles = append(s.Particles, Particle{
			X:    float64(cell.X) + 0.5,
			Y:    float64(cell.Y) + 0.5,
			VX:   (rand.Float64() - 0.5) * 0.3,
			VY:   (rand.Float64() - 0.5) * 0.3,
			Life: config.ParticleLife,
		})
	}
}

// updateParticles advances fragments and retires expired ones
func (s *Session) updateParticles() {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	s.Particles = kept
}
