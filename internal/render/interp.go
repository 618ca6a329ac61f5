package render

import "gridsnake/internal/sim"

// Interpolate returns the on-screen cell position of segment i at progress
// alpha between the previous and current bodies. A segment with no previous
// entry (just grown) sits at its current cell.
func Interpolate(prev, cur []sim.Point, i int, alpha float64) (float64, float64) {
	to := cur[i]
	from := to
	if i < len(prev) {
		from = prev[i]
	}
	alpha = min(max(alpha, 0), 1)
	x := float64(from.X) + float64(to.X-from.X)*alpha
	y := float64(from.Y) + float64(to.Y-from.Y)*alpha
	return x, y
}
