package batch

import (
	"fmt"

	slope "Geoslope/internal/calc/slope"
)

type SlopeBatchInput struct {
	Items []slope.Input `json:"items"`
}

type SlopeBatchResult struct {
	Results []slope.Result `json:"results"`
}

func CalculateSlope(in SlopeBatchInput) (SlopeBatchResult, error) {
	if len(in.Items) == 0 {
		return SlopeBatchResult{}, fmt.Errorf("no items")
	}
	out := SlopeBatchResult{Results: make([]slope.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := slope.Calculate(item)
		if err != nil {
			return SlopeBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
