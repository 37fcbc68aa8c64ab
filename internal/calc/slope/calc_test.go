package slope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
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
		NXc:         14,
		NYc:         10,
		NR:          10,
	}
}

func TestCalculateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero height", func(in *Input) { in.HeightM = 0 }},
		{"negative height", func(in *Input) { in.HeightM = -3 }},
		{"flat slope", func(in *Input) { in.BetaDeg = 0 }},
		{"vertical slope", func(in *Input) { in.BetaDeg = 90 }},
		{"negative cohesion", func(in *Input) { in.CohesionKPa = -1 }},
		{"phi out of range", func(in *Input) { in.PhiDeg = 90 }},
		{"zero unit weight", func(in *Input) { in.GammaKNM3 = 0 }},
		{"too few slices", func(in *Input) { in.NSlices = 9 }},
		{"inverted xc range", func(in *Input) { in.XcMinM, in.XcMaxM = 25, -10 }},
		{"inverted yc range", func(in *Input) { in.YcMinM, in.YcMaxM = 5, -20 }},
		{"non-positive radius", func(in *Input) { in.RMinM = 0; in.RMaxM = 40 }},
		{"inverted radius range", func(in *Input) { in.RMinM, in.RMaxM = 40, 8 }},
		{"negative grid count", func(in *Input) { in.NXc = -2 }},
		{"negative iteration limit", func(in *Input) { in.MaxIter = -1 }},
		{"negative tolerance", func(in *Input) { in.Tol = -1e-4 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			_, err := Calculate(in)
			require.Error(t, err)
		})
	}
}

func TestCalculateEndToEnd(t *testing.T) {
	res, err := Calculate(baseInput())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Greater(t, res.FS, 0.0)
	require.Equal(t, 14*10*10, res.Evaluated)
	require.Greater(t, res.Accepted, 0)
	require.GreaterOrEqual(t, res.RM, 8.0)
	require.LessOrEqual(t, res.RM, 40.0)
}

func TestCalculateIdempotent(t *testing.T) {
	first, err := Calculate(baseInput())
	require.NoError(t, err)
	second, err := Calculate(baseInput())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCalculateRefinementNeverWorsens(t *testing.T) {
	coarse := baseInput()
	coarse.NXc, coarse.NYc, coarse.NR = 7, 5, 5

	// Doubling density keeps every coarse grid point, so the minimum can
	// only stay or drop.
	fine := coarse
	fine.NXc, fine.NYc, fine.NR = 13, 9, 9

	coarseRes, err := Calculate(coarse)
	require.NoError(t, err)
	require.True(t, coarseRes.Found)

	fineRes, err := Calculate(fine)
	require.NoError(t, err)
	require.True(t, fineRes.Found)

	require.LessOrEqual(t, fineRes.FS, coarseRes.FS+1e-9)
}

func TestCalculateDegenerateRadiiFindNothing(t *testing.T) {
	in := Input{
		HeightM:     50,
		BetaDeg:     45,
		CohesionKPa: 10,
		PhiDeg:      30,
		GammaKNM3:   18,
		NSlices:     25,
		XcMinM:      -10,
		XcMaxM:      60,
		YcMinM:      -20,
		YcMaxM:      20,
		RMinM:       0.1,
		RMaxM:       0.5,
		NXc:         6,
		NYc:         6,
		NR:          5,
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Zero(t, res.Accepted)
	require.Equal(t, 6*6*5, res.Evaluated)
}

func TestCalculateDefaultWindow(t *testing.T) {
	// All-zero bounds pull in the recommended window scaled to the slope.
	in := Input{
		HeightM:     10,
		BetaDeg:     45,
		CohesionKPa: 10,
		PhiDeg:      30,
		GammaKNM3:   18,
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	require.Equal(t, 18*14*14, res.Evaluated)
	require.True(t, res.Found)
}

func TestDefaultBounds(t *testing.T) {
	xcMin, xcMax, ycMin, ycMax, rMin, rMax := DefaultBounds(10, 45)
	require.InDelta(t, -10, xcMin, 1e-9)
	require.InDelta(t, 25, xcMax, 1e-6)
	require.InDelta(t, -20, ycMin, 1e-9)
	require.InDelta(t, 5, ycMax, 1e-9)
	require.InDelta(t, 8, rMin, 1e-9)
	require.InDelta(t, 40, rMax, 1e-9)
}
