package core

import "math"

// NormalizeDegrees maps any angle into [0,360)
func NormalizeDegrees(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -0 and values that round to 360 collapse to 0
	if a == 0 || a >= 360 {
		return 0
	}
	return a
}

// SnapDegrees rounds deg to the nearest multiple of step and normalizes
func SnapDegrees(deg, step float64) float64 {
	if step <= 0 {
		return NormalizeDegrees(deg)
	}
	return NormalizeDegrees(math.Round(deg/step) * step)
}

// ShortestDelta returns the signed difference to - from wrapped into (-180,180]
func ShortestDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
