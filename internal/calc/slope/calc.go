package slope

import (
	"fmt"
)

type Input struct {
	HeightM     float64 `json:"height_m"`
	BetaDeg     float64 `json:"beta_deg"`
	CohesionKPa float64 `json:"c_kpa"`
	PhiDeg      float64 `json:"phi_deg"`
	GammaKNM3   float64 `json:"gamma_kn_m3"`

	NSlices int     `json:"n_slices"`
	XcMinM  float64 `json:"xc_min_m"`
	XcMaxM  float64 `json:"xc_max_m"`
	YcMinM  float64 `json:"yc_min_m"`
	YcMaxM  float64 `json:"yc_max_m"`
	RMinM   float64 `json:"r_min_m"`
	RMaxM   float64 `json:"r_max_m"`
	NXc     int     `json:"n_xc"`
	NYc     int     `json:"n_yc"`
	NR      int     `json:"n_r"`
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
}

type Result struct {
	Found     bool    `json:"found"`
	FS        float64 `json:"fs"`
	XcM       float64 `json:"xc_m"`
	YcM       float64 `json:"yc_m"`
	RM        float64 `json:"r_m"`
	Evaluated int     `json:"evaluated"`
	Accepted  int     `json:"accepted"`
	Notes     string  `json:"notes"`
}

// DefaultBounds suggests a center/radius search window scaled to the slope
// size (at H=10 m, beta=45 it reproduces the classic xc [-10,25],
// yc [-20,5], R [8,40] window).
func DefaultBounds(heightM, betaDeg float64) (xcMin, xcMax, ycMin, ycMax, rMin, rMax float64) {
	run := slopeRun(heightM, betaDeg)
	return -heightM, run + 1.5*heightM,
		-2.0 * heightM, 0.5 * heightM,
		0.8 * heightM, 4.0 * heightM
}

// Calculate validates the input, fills defaults for zero-valued optional
// fields and runs the critical-surface grid search. A grid that accepts no
// candidate is a legitimate outcome (Found=false), not an error.
func Calculate(in Input) (Result, error) {
	if in.HeightM <= 0 {
		return Result{}, fmt.Errorf("invalid slope height")
	}
	if in.BetaDeg <= 0 || in.BetaDeg >= 90 {
		return Result{}, fmt.Errorf("invalid slope angle")
	}
	if in.CohesionKPa < 0 {
		return Result{}, fmt.Errorf("invalid cohesion")
	}
	if in.PhiDeg < 0 || in.PhiDeg >= 90 {
		return Result{}, fmt.Errorf("invalid friction angle")
	}
	if in.GammaKNM3 <= 0 {
		return Result{}, fmt.Errorf("invalid unit weight")
	}

	if in.NSlices == 0 {
		in.NSlices = 25
	}
	if in.NSlices < 10 {
		return Result{}, fmt.Errorf("at least 10 slices required")
	}
	if in.MaxIter == 0 {
		in.MaxIter = 60
	}
	if in.MaxIter < 0 {
		return Result{}, fmt.Errorf("invalid iteration limit")
	}
	if in.Tol == 0 {
		in.Tol = 1e-4
	}
	if in.Tol < 0 {
		return Result{}, fmt.Errorf("invalid tolerance")
	}
	if in.NXc == 0 {
		in.NXc = 18
	}
	if in.NYc == 0 {
		in.NYc = 14
	}
	if in.NR == 0 {
		in.NR = 14
	}
	if in.NXc < 1 || in.NYc < 1 || in.NR < 1 {
		return Result{}, fmt.Errorf("invalid grid counts")
	}

	// All-zero window means the caller wants the recommended one.
	if in.XcMinM == 0 && in.XcMaxM == 0 && in.YcMinM == 0 && in.YcMaxM == 0 &&
		in.RMinM == 0 && in.RMaxM == 0 {
		in.XcMinM, in.XcMaxM, in.YcMinM, in.YcMaxM, in.RMinM, in.RMaxM =
			DefaultBounds(in.HeightM, in.BetaDeg)
	}
	if in.XcMinM > in.XcMaxM {
		return Result{}, fmt.Errorf("invalid xc range")
	}
	if in.YcMinM > in.YcMaxM {
		return Result{}, fmt.Errorf("invalid yc range")
	}
	if in.RMinM <= 0 || in.RMinM > in.RMaxM {
		return Result{}, fmt.Errorf("invalid radius range")
	}

	best, fs, found, evaluated, accepted := searchCritical(in)
	res := Result{
		Found:     found,
		Evaluated: evaluated,
		Accepted:  accepted,
		Notes:     "Simplified Bishop LEM, homogeneous soil, no pore pressure (u=0).",
	}
	if found {
		res.FS = fs
		res.XcM = best.xc
		res.YcM = best.yc
		res.RM = best.r
	} else {
		res.Notes = "No valid slip circle in the search window."
	}
	return res, nil
}
