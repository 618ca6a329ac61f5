package sim

import (
	"math"
	"testing"
)

func TestBurstSpawnsAtCellCentre(t *testing.T) {
	ps := NewParticleSystem(DefaultCell, NewRand(3))
	ps.Burst(Point{21, 14}, EatBurst, ParticleSpark)

	if ps.Len() != EatBurst {
		t.Fatalf("expected %d particles, got %d", EatBurst, ps.Len())
	}
	for i, p := range ps.P {
		if p.X != 301 || p.Y != 203 {
			t.Errorf("particle %d: expected origin (301,203), got (%v,%v)", i, p.X, p.Y)
		}
		spd := math.Hypot(p.VX, p.VY)
		if spd < ParticleMinSpeed-1e-9 || spd >= ParticleMaxSpeed+1e-9 {
			t.Errorf("particle %d: speed %v outside [%v,%v)", i, spd, ParticleMinSpeed, ParticleMaxSpeed)
		}
		if p.Life < ParticleMinLife || p.Life >= ParticleMaxLife {
			t.Errorf("particle %d: life %v outside [%v,%v)", i, p.Life, ParticleMinLife, ParticleMaxLife)
		}
		if p.MaxLife != p.Life {
			t.Errorf("particle %d: expected max life %v, got %v", i, p.Life, p.MaxLife)
		}
		if p.Size < ParticleMinSize || p.Size > ParticleMaxSize {
			t.Errorf("particle %d: size %d outside [%d,%d]", i, p.Size, ParticleMinSize, ParticleMaxSize)
		}
		if p.Kind != ParticleSpark {
			t.Errorf("particle %d: expected spark, got %v", i, p.Kind)
		}
	}
}

func TestUpdateAppliesGravityThenMotionThenDrag(t *testing.T) {
	ps := NewParticleSystem(DefaultCell, nil)
	ps.P = append(ps.P, Particle{X: 0, Y: 0, VX: 10, VY: 0, Life: 1, MaxLife: 1, Size: 1})

	ps.Update(0.5)

	p := ps.P[0]
	vy := ParticleGravity * ParticleGravityDamping * 0.5 // 60
	checks := []struct {
		name      string
		got, want float64
	}{
		{"life", p.Life, 0.5},
		{"x", p.X, 5},
		{"y", p.Y, vy * 0.5},
		{"vx", p.VX, 10 * ParticleDrag},
		{"vy", p.VY, vy * ParticleDrag},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestParticleExpiresWhenLifetimeElapsed(t *testing.T) {
	tests := []struct {
		name      string
		life, dt  float64
		expiresOn int
	}{
		{"exact", 0.75, 0.25, 3},
		{"partial", 0.7, 0.25, 3},
		{"single frame", 0.6, 1, 1},
		{"tenths", 0.6, 0.1, 6},
		{"twentieths", 0.6, 0.05, 12},
		{"sixtieth frames", 0.6, 1.0 / 60, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewParticleSystem(DefaultCell, nil)
			ps.P = append(ps.P, Particle{Life: tt.life, MaxLife: tt.life, Size: 1})
			for call := 1; call <= tt.expiresOn; call++ {
				ps.Update(tt.dt)
				alive := ps.Len() == 1
				if call < tt.expiresOn && !alive {
					t.Fatalf("particle gone early on call %d", call)
				}
				if call == tt.expiresOn && alive {
					t.Fatalf("particle still alive on call %d", call)
				}
			}
		})
	}
}

func TestUpdateRemovesOnlyExpired(t *testing.T) {
	ps := NewParticleSystem(DefaultCell, nil)
	for _, life := range []float64{0.1, 0.9, 0.2, 0.8, 0.05} {
		ps.P = append(ps.P, Particle{Life: life, MaxLife: life, Size: 1})
	}
	ps.Update(0.25)
	if ps.Len() != 2 {
		t.Fatalf("expected 2 survivors, got %d", ps.Len())
	}
	for _, p := range ps.P {
		if p.Life <= 0 {
			t.Errorf("expired particle kept: %+v", p)
		}
	}
}

func TestUpdateIgnoresNonPositiveDt(t *testing.T) {
	ps := NewParticleSystem(DefaultCell, nil)
	ps.P = append(ps.P, Particle{X: 1, Y: 2, VX: 3, VY: 4, Life: 0.5, MaxLife: 0.5, Size: 2})
	before := ps.P[0]
	ps.Update(0)
	ps.Update(-1)
	if ps.P[0] != before {
		t.Errorf("expected particle untouched, got %+v", ps.P[0])
	}
}

func TestClearEmptiesSystem(t *testing.T) {
	ps := NewParticleSystem(DefaultCell, NewRand(5))
	ps.Burst(Point{1, 1}, DeathBurst, ParticleDebris)
	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("expected no particles, got %d", ps.Len())
	}
}
