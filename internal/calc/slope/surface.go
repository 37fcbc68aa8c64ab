package slope

import "math"

// SurfaceY returns the ground elevation at x for a two-segment slope profile:
// flat crest at y=H behind the crown, straight face from (0,H) down to the toe
// at (L,0) with L = H/tan(beta), flat ground at y=0 beyond the toe.
func SurfaceY(x, heightM, betaDeg float64) float64 {
	beta := betaDeg * math.Pi / 180.0
	run := heightM / math.Tan(beta)
	if x < 0 {
		return heightM
	}
	if x <= run {
		return heightM - (heightM/run)*x
	}
	return 0.0
}

func slopeRun(heightM, betaDeg float64) float64 {
	return heightM / math.Tan(betaDeg*math.Pi/180.0)
}
