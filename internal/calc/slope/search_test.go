package slope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	require.Equal(t, []float64{5}, linspace(5, 9, 1))
	require.Equal(t, []float64{2, 2}, linspace(2, 2, 2))

	vals := linspace(0, 10, 5)
	require.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, vals)
}

func TestGridEnumerationOrder(t *testing.T) {
	g := grid{
		xcs: []float64{1, 2},
		ycs: []float64{3, 4},
		rs:  []float64{5, 6},
	}
	require.Equal(t, 8, g.size())

	// xc outer, yc middle, R inner, each ascending.
	want := []trialCircle{
		{1, 3, 5}, {1, 3, 6},
		{1, 4, 5}, {1, 4, 6},
		{2, 3, 5}, {2, 3, 6},
		{2, 4, 5}, {2, 4, 6},
	}
	for i, w := range want {
		require.Equal(t, w, g.circle(i), "index %d", i)
	}
}

func TestSearchCriticalFindsDeepCircle(t *testing.T) {
	in := Input{
		HeightM:     10,
		BetaDeg:     45,
		CohesionKPa: 10,
		PhiDeg:      30,
		GammaKNM3:   18,
		NSlices:     25,
		XcMinM:      -10,
		XcMaxM:      -10,
		YcMinM:      -20,
		YcMaxM:      -20,
		RMinM:       40,
		RMaxM:       40,
		NXc:         1,
		NYc:         1,
		NR:          1,
		MaxIter:     60,
		Tol:         1e-4,
	}
	best, fs, found, evaluated, accepted := searchCritical(in)
	require.True(t, found)
	require.Equal(t, 1, evaluated)
	require.Equal(t, 1, accepted)
	require.Equal(t, trialCircle{-10, -20, 40}, best)
	require.Greater(t, fs, 0.0)
}
