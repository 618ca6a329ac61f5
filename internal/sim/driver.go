package sim

import "math"

// Driver turns variable frame times into whole simulation steps at a fixed
// rate. The fractional remainder is the interpolation factor for rendering.
type Driver struct {
	StepsPerSecond float64
	MaxFrame       float64

	progress float64
}

func NewDriver(stepsPerSecond float64) Driver {
	return Driver{StepsPerSecond: stepsPerSecond, MaxFrame: MaxFrameDelta}
}

// Clamp bounds a frame delta to [0, MaxFrame]. NaN becomes 0.
func (d *Driver) Clamp(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if d.MaxFrame > 0 && dt > d.MaxFrame {
		return d.MaxFrame
	}
	return dt
}

// Advance accumulates dt and calls step once per whole step owed. step
// reports whether the game is still playing afterwards; once it says no the
// remaining whole steps are dropped for this frame. Returns the number of
// step calls.
func (d *Driver) Advance(dt float64, step func() bool) int {
	d.progress += d.Clamp(dt) * d.StepsPerSecond
	steps := 0
	for d.progress >= 1 {
		d.progress--
		steps++
		if !step() {
			d.progress -= math.Floor(d.progress)
			break
		}
	}
	return steps
}

// Alpha is the progress toward the next step, in [0, 1).
func (d *Driver) Alpha() float64 { return d.progress }

func (d *Driver) Reset() { d.progress = 0 }
