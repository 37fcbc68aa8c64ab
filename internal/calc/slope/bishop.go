package slope

import "math"

const (
	driveEps = 1e-9
	fsSeed   = 1.5
)

// bishopFS computes the factor of safety for one slice set with the
// simplified Bishop fixed-point iteration:
//
//	FS' = sum( (c*l + W*tan(phi)) / (1 + tan(phi)*tan(alpha)/FS) ) / sum(W*sin(alpha))
//
// Homogeneous soil, no pore pressure. If the iteration budget runs out the
// last estimate is returned rather than rejected. With phi = 0 every
// denominator is 1 and the first pass already yields the closed form
// sum(c*l)/sum(W*sin(alpha)).
func bishopFS(slices []Slice, cKPa, phiDeg float64, maxIter int, tol float64) (float64, rejection) {
	tanPhi := math.Tan(phiDeg * math.Pi / 180.0)

	drive := 0.0
	for _, s := range slices {
		drive += s.WeightKN * math.Sin(s.Alpha)
	}
	if drive <= driveEps {
		return 0, rejectNoDrive
	}

	fs := fsSeed
	for i := 0; i < maxIter; i++ {
		resist := 0.0
		for _, s := range slices {
			resist += (cKPa*s.BaseLenM + s.WeightKN*tanPhi) / (1.0 + tanPhi*math.Tan(s.Alpha)/fs)
		}
		next := resist / drive
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= 0 {
			return 0, rejectDiverged
		}
		if math.Abs(next-fs) < tol {
			return next, rejectNone
		}
		fs = next
	}
	return fs, rejectNone
}
