package slope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSlices(t *testing.T) []Slice {
	t.Helper()
	slices, rej := buildSlices(trialCircle{xc: -10, yc: -20, r: 40}, 10, 45, 18, 25)
	require.Equal(t, rejectNone, rej)
	return slices
}

func TestBishopPurelyCohesiveClosedForm(t *testing.T) {
	slices := testSlices(t)

	drive := 0.0
	cohesive := 0.0
	for _, s := range slices {
		drive += s.WeightKN * math.Sin(s.Alpha)
		cohesive += 10.0 * s.BaseLenM
	}
	require.Greater(t, drive, 0.0)
	want := cohesive / drive

	// With phi=0 every denominator is 1, so the result must match the
	// closed form regardless of the iteration budget.
	for _, maxIter := range []int{1, 2, 60} {
		fs, rej := bishopFS(slices, 10.0, 0, maxIter, 1e-4)
		require.Equal(t, rejectNone, rej)
		require.InDelta(t, want, fs, 1e-12)
	}
}

func TestBishopFrictionalConverges(t *testing.T) {
	slices := testSlices(t)

	fs, rej := bishopFS(slices, 10.0, 30.0, 60, 1e-4)
	require.Equal(t, rejectNone, rej)
	require.Greater(t, fs, 0.0)

	// Deterministic: same slices, same answer.
	fs2, rej2 := bishopFS(slices, 10.0, 30.0, 60, 1e-4)
	require.Equal(t, rejectNone, rej2)
	require.Equal(t, fs, fs2)
}

func TestBishopRejectsZeroDrive(t *testing.T) {
	// Symmetric slices: driving contributions cancel exactly.
	slices := []Slice{
		{WidthM: 1, HeightM: 2, WeightKN: 36, Alpha: 0.3, BaseLenM: 1.05},
		{WidthM: 1, HeightM: 2, WeightKN: 36, Alpha: -0.3, BaseLenM: 1.05},
	}

	fs, rej := bishopFS(slices, 10.0, 30.0, 60, 1e-4)
	require.Equal(t, rejectNoDrive, rej)
	require.Zero(t, fs)
}

func TestBishopRejectsNegativeDenominator(t *testing.T) {
	// A heavy driving slice against a steeply back-tilted one flips a
	// Bishop denominator negative, pushing the next estimate below zero.
	slices := []Slice{
		{WidthM: 1, HeightM: 2.8, WeightKN: 50, Alpha: 0.5, BaseLenM: 1.14},
		{WidthM: 1, HeightM: 0.3, WeightKN: 5, Alpha: -1.4, BaseLenM: 5.9},
	}

	fs, rej := bishopFS(slices, 10.0, 30.0, 60, 1e-4)
	require.Equal(t, rejectDiverged, rej)
	require.Zero(t, fs)
}

func TestBishopExhaustedIterationsReturnsLastEstimate(t *testing.T) {
	slices := testSlices(t)

	// An absurdly tight tolerance never converges; the loop must still
	// terminate and hand back its last estimate.
	fs, rej := bishopFS(slices, 10.0, 30.0, 5, 0)
	require.Equal(t, rejectNone, rej)
	require.Greater(t, fs, 0.0)
}
