package reactions

import "fmt"

type LoadType string

const (
	LoadPoint LoadType = "point"
	LoadUDL   LoadType = "udl"
)

type Input struct {
	LoadType  LoadType `json:"load_type"`
	SpanM     float64  `json:"span_m"`
	PointKN   float64  `json:"point_kn"`
	PointPosM float64  `json:"point_pos_m"`
	UDLKNM    float64  `json:"udl_kn_m"`
}

type Result struct {
	RaKN    float64 `json:"ra_kn"`
	RbKN    float64 `json:"rb_kn"`
	TotalKN float64 `json:"total_kn"`
	Notes   string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("invalid span")
	}
	switch in.LoadType {
	case LoadPoint:
		if in.PointKN <= 0 {
			return Result{}, fmt.Errorf("invalid point load")
		}
		if in.PointPosM < 0 || in.PointPosM > in.SpanM {
			return Result{}, fmt.Errorf("point load outside the span")
		}
		// Moment about A: Rb*L = P*a
		rb := in.PointKN * in.PointPosM / in.SpanM
		ra := in.PointKN - rb
		return Result{
			RaKN:    ra,
			RbKN:    rb,
			TotalKN: in.PointKN,
			Notes:   "Simply supported beam, single point load.",
		}, nil
	case LoadUDL:
		if in.UDLKNM <= 0 {
			return Result{}, fmt.Errorf("invalid distributed load")
		}
		total := in.UDLKNM * in.SpanM
		return Result{
			RaKN:    total / 2.0,
			RbKN:    total / 2.0,
			TotalKN: total,
			Notes:   "Simply supported beam, uniform load over the full span.",
		}, nil
	default:
		return Result{}, fmt.Errorf("invalid load type")
	}
}
