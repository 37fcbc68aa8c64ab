package refine

import (
	"fmt"

	slope "Geoslope/internal/calc/slope"
)

type Result struct {
	Coarse  slope.Result `json:"coarse"`
	Refined slope.Result `json:"refined"`
	Final   slope.Result `json:"final"`
	Notes   string       `json:"notes"`
}

// Calculate runs the grid search twice: once over the caller's window, then
// over a window one coarse grid step wide around the best circle. The final
// result is whichever pass found the lower FS.
func Calculate(in slope.Input) (Result, error) {
	coarse, err := slope.Calculate(in)
	if err != nil {
		return Result{}, err
	}
	if !coarse.Found {
		return Result{
			Coarse: coarse,
			Final:  coarse,
			Notes:  "Coarse pass found no valid circle; nothing to refine.",
		}, nil
	}

	zoom := in
	zoom.XcMinM, zoom.XcMaxM = window(coarse.XcM, in.XcMinM, in.XcMaxM, in.NXc)
	zoom.YcMinM, zoom.YcMaxM = window(coarse.YcM, in.YcMinM, in.YcMaxM, in.NYc)
	zoom.RMinM, zoom.RMaxM = window(coarse.RM, in.RMinM, in.RMaxM, in.NR)
	if zoom.RMinM <= 0 {
		zoom.RMinM = coarse.RM / 2.0
	}

	// A collapsed axis holds a single coordinate; keeping the caller's
	// count would re-evaluate the same circle across it.
	if zoom.XcMinM == zoom.XcMaxM {
		zoom.NXc = 1
	}
	if zoom.YcMinM == zoom.YcMaxM {
		zoom.NYc = 1
	}
	if zoom.RMinM == zoom.RMaxM {
		zoom.NR = 1
	}

	refined, err := slope.Calculate(zoom)
	if err != nil {
		return Result{}, fmt.Errorf("refine pass: %w", err)
	}

	final := coarse
	if refined.Found && refined.FS < coarse.FS {
		final = refined
	}
	return Result{
		Coarse:  coarse,
		Refined: refined,
		Final:   final,
		Notes:   "Two-pass search: coarse window, then one grid step around the best circle.",
	}, nil
}

// window centers a new search interval on a coarse optimum, one coarse grid
// step to each side. A single-point axis stays a single point.
func window(center, min, max float64, n int) (lo, hi float64) {
	if n <= 1 || max <= min {
		return center, center
	}
	step := (max - min) / float64(n-1)
	return center - step, center + step
}
