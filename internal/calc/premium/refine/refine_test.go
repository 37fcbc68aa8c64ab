package refine_test

import (
	"testing"

	refine "Geoslope/internal/calc/premium/refine"
	slope "Geoslope/internal/calc/slope"

	"github.com/stretchr/testify/require"
)

func slopeCase() slope.Input {
	return slope.Input{
		HeightM:     10,
		BetaDeg:     45,
		CohesionKPa: 10,
		PhiDeg:      30,
		GammaKNM3:   18,
		NSlices:     25,
		XcMinM:      -10,
		XcMaxM:      25,
		YcMinM:      -20,
		YcMaxM:      5,
		RMinM:       8,
		RMaxM:       40,
		NXc:         7,
		NYc:         5,
		NR:          5,
	}
}

func TestRefineNeverWorsens(t *testing.T) {
	res, err := refine.Calculate(slopeCase())
	require.NoError(t, err)
	require.True(t, res.Coarse.Found)
	require.True(t, res.Final.Found)
	require.LessOrEqual(t, res.Final.FS, res.Coarse.FS+1e-9)
}

func TestRefineNothingFound(t *testing.T) {
	in := slopeCase()
	in.HeightM = 50
	in.RMinM, in.RMaxM = 0.1, 0.5

	res, err := refine.Calculate(in)
	require.NoError(t, err)
	require.False(t, res.Coarse.Found)
	require.False(t, res.Final.Found)
	require.Zero(t, res.Refined.Evaluated)
}

func TestRefineCollapsedAxesEvaluateOnce(t *testing.T) {
	// Zero bounds and counts: the coarse pass runs the recommended window,
	// but every zoom axis collapses to the best coordinate, so the second
	// pass must cost a single evaluation instead of a full grid.
	in := slope.Input{
		HeightM:     10,
		BetaDeg:     45,
		CohesionKPa: 10,
		PhiDeg:      30,
		GammaKNM3:   18,
	}

	res, err := refine.Calculate(in)
	require.NoError(t, err)
	require.True(t, res.Coarse.Found)
	require.Equal(t, 1, res.Refined.Evaluated)
	require.True(t, res.Refined.Found)
	require.Equal(t, res.Coarse.XcM, res.Refined.XcM)
	require.Equal(t, res.Coarse.YcM, res.Refined.YcM)
	require.Equal(t, res.Coarse.RM, res.Refined.RM)
}

func TestRefineValidation(t *testing.T) {
	in := slopeCase()
	in.GammaKNM3 = -1
	_, err := refine.Calculate(in)
	require.Error(t, err)
}
