package recommend

import (
	"fmt"

	slope "Geoslope/internal/calc/slope"
)

type SearchWindowInput struct {
	HeightM float64 `json:"height_m"`
	BetaDeg float64 `json:"beta_deg"`
}

type SearchWindowResult struct {
	XcMinM  float64 `json:"xc_min_m"`
	XcMaxM  float64 `json:"xc_max_m"`
	YcMinM  float64 `json:"yc_min_m"`
	YcMaxM  float64 `json:"yc_max_m"`
	RMinM   float64 `json:"r_min_m"`
	RMaxM   float64 `json:"r_max_m"`
	NXc     int     `json:"n_xc"`
	NYc     int     `json:"n_yc"`
	NR      int     `json:"n_r"`
	NSlices int     `json:"n_slices"`
	Notes   string  `json:"notes"`
}

// SearchWindow suggests circle-center and radius bounds scaled to the slope
// size, with the usual grid densities.
func SearchWindow(in SearchWindowInput) (SearchWindowResult, error) {
	if in.HeightM <= 0 {
		return SearchWindowResult{}, fmt.Errorf("invalid slope height")
	}
	if in.BetaDeg <= 0 || in.BetaDeg >= 90 {
		return SearchWindowResult{}, fmt.Errorf("invalid slope angle")
	}
	xcMin, xcMax, ycMin, ycMax, rMin, rMax := slope.DefaultBounds(in.HeightM, in.BetaDeg)
	return SearchWindowResult{
		XcMinM:  xcMin,
		XcMaxM:  xcMax,
		YcMinM:  ycMin,
		YcMaxM:  ycMax,
		RMinM:   rMin,
		RMaxM:   rMax,
		NXc:     18,
		NYc:     14,
		NR:      14,
		NSlices: 25,
		Notes:   "Search window scaled to slope height and run.",
	}, nil
}
