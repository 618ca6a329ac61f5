package sim

import "math"

type ParticleKind uint8

const (
	ParticleSpark  ParticleKind = iota // eat burst
	ParticleDebris                     // death burst
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Life    float64 // seconds remaining, MaxLife-Age
	MaxLife float64
	Age     float64
	Size    int

	Kind ParticleKind
}

// ParticleSystem holds short-lived debris in logical pixel space.
// Order is not preserved across updates.
type ParticleSystem struct {
	P    []Particle
	cell int
	rng  *Rand
}

func NewParticleSystem(cell int, rng *Rand) *ParticleSystem {
	if rng == nil {
		rng = NewRand(1)
	}
	return &ParticleSystem{cell: cell, rng: rng}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

// Burst spawns count particles at the centre of origin, flying out in
// random directions.
func (ps *ParticleSystem) Burst(origin Point, count int, kind ParticleKind) {
	half := float64(ps.cell) / 2
	cx := float64(origin.X*ps.cell) + half
	cy := float64(origin.Y*ps.cell) + half
	r := ps.rng
	for range count {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(ParticleMinSpeed, ParticleMaxSpeed)
		life := r.RangeF(ParticleMinLife, ParticleMaxLife)
		ps.P = append(ps.P, Particle{
			X: cx, Y: cy,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Life: life, MaxLife: life,
			Size: r.Range(ParticleMinSize, ParticleMaxSize),
			Kind: kind,
		})
	}
}

// expiryEpsilon absorbs rounding in the summed frame times, so a particle
// of lifetime L is gone on the call where the elapsed time reaches L.
const expiryEpsilon = 1e-9

// Update ages every particle by dt and integrates the survivors: gravity,
// then position, then drag. That order is fixed.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Age += dt
		if p.Age >= p.MaxLife-expiryEpsilon {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.Life = p.MaxLife - p.Age
		p.VY += ParticleGravity * ParticleGravityDamping * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= ParticleDrag
		p.VY *= ParticleDrag
		i++
	}
}
