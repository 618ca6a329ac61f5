package sim

import "fmt"

// Grid defaults (cells and logical pixels per cell).
const (
	DefaultGridW = 40
	DefaultGridH = 28
	DefaultCell  = 14
)

// Timing.
const (
	DefaultStepsPerSecond = 7.5
	MaxFrameDelta         = 0.1 // seconds; longer frames are clamped
)

// Snake rules.
const (
	StartLength     = 4
	FoodScore       = 10
	FoodGrowth      = 2
	MaxFoodAttempts = 100
)

// FoodFallback is used when random placement runs out of attempts.
// It is not checked against the snake.
var FoodFallback = Point{X: 0, Y: 0}

// Particles.
const (
	EatBurst   = 18
	DeathBurst = 36

	ParticleGravity        = 240.0
	ParticleGravityDamping = 0.5
	ParticleDrag           = 0.98
	ParticleMinSpeed       = 30.0
	ParticleMaxSpeed       = 150.0
	ParticleMinLife        = 0.6
	ParticleMaxLife        = 1.0
	ParticleMinSize        = 1
	ParticleMaxSize        = 3
)

// Config sizes the board and sets the simulation rate.
type Config struct {
	GridW, GridH   int
	Cell           int
	StepsPerSecond float64
}

func DefaultConfig() Config {
	return Config{
		GridW:          DefaultGridW,
		GridH:          DefaultGridH,
		Cell:           DefaultCell,
		StepsPerSecond: DefaultStepsPerSecond,
	}
}

// Validate reports whether the starting snake fits and the rate is usable.
func (c Config) Validate() error {
	if c.GridW/2 < StartLength-1 {
		return fmt.Errorf("grid width %d too small for a %d-segment snake", c.GridW, StartLength)
	}
	if c.GridH < 1 {
		return fmt.Errorf("grid height %d must be positive", c.GridH)
	}
	if c.Cell < 1 {
		return fmt.Errorf("cell size %d must be positive", c.Cell)
	}
	if !(c.StepsPerSecond > 0) {
		return fmt.Errorf("steps per second %v must be positive", c.StepsPerSecond)
	}
	return nil
}

// RasterSize is the logical render surface in pixels.
func (c Config) RasterSize() (int, int) {
	return c.GridW * c.Cell, c.GridH * c.Cell
}
