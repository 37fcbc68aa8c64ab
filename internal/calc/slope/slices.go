package slope

import "math"

// rejection marks a trial circle as unusable. Rejections are expected and
// common during a grid search; they are never surfaced as errors.
type rejection int

const (
	rejectNone            rejection = iota
	rejectNoArc                     // lower arc never enters the soil mass
	rejectSparse                    // too few samples inside the mass
	rejectNarrow                    // sliding span narrower than the minimum
	rejectThinSlice                 // slice height not positive
	rejectVerticalTangent           // slip surface vertical at a slice midpoint
	rejectNoDrive                   // no net driving moment about the center
	rejectDiverged                  // FS iteration left the physical range
)

type trialCircle struct {
	xc, yc, r float64
}

// Slice is one vertical subdivision of the sliding mass above the slip arc.
// Slices live only for the duration of one trial-circle evaluation.
type Slice struct {
	XMidM    float64
	WidthM   float64
	HeightM  float64
	WeightKN float64 // per unit out-of-plane thickness
	Alpha    float64 // base inclination, radians
	BaseLenM float64
}

const (
	surfaceSamples  = 600
	minArcSamples   = 10
	minSpanM        = 0.2
	minSliceHeightM = 0.01
	tangentEps      = 1e-8
)

// buildSlices intersects the lower arc of a trial circle with the ground
// surface and partitions the sliding span into nSlices equal slices.
// Any failed check rejects the whole circle; a partial set is never returned.
func buildSlices(c trialCircle, heightM, betaDeg, gammaKNM3 float64, nSlices int) ([]Slice, rejection) {
	run := slopeRun(heightM, betaDeg)
	xMin := -0.5 * run
	xMax := 1.5 * run

	// Lower arc: y = yc - sqrt(R^2 - (x-xc)^2). Sample the bracket around the
	// slope and keep the x where the arc exists and sits below the surface.
	var xL, xR float64
	inside := 0
	for i := 0; i < surfaceSamples; i++ {
		x := xMin + (xMax-xMin)*float64(i)/float64(surfaceSamples-1)
		d := c.r*c.r - (x-c.xc)*(x-c.xc)
		if d < 0 {
			continue
		}
		yLower := c.yc - math.Sqrt(d)
		if yLower > SurfaceY(x, heightM, betaDeg) {
			continue
		}
		if inside == 0 {
			xL = x
		}
		xR = x
		inside++
	}
	if inside == 0 {
		return nil, rejectNoArc
	}
	if inside < minArcSamples {
		return nil, rejectSparse
	}
	if xR-xL < minSpanM {
		return nil, rejectNarrow
	}

	width := (xR - xL) / float64(nSlices)
	slices := make([]Slice, 0, nSlices)
	for i := 0; i < nSlices; i++ {
		xm := xL + (float64(i)+0.5)*width
		s, rej := sliceAt(c, xm, width, heightM, betaDeg, gammaKNM3)
		if rej != rejectNone {
			return nil, rej
		}
		slices = append(slices, s)
	}
	return slices, rejectNone
}

// sliceAt builds the slice whose midpoint is xm, or rejects the circle.
func sliceAt(c trialCircle, xm, width, heightM, betaDeg, gammaKNM3 float64) (Slice, rejection) {
	d := c.r*c.r - (xm-c.xc)*(xm-c.xc)
	if d < 0 {
		return Slice{}, rejectNoArc
	}
	ySlip := c.yc - math.Sqrt(d)
	h := SurfaceY(xm, heightM, betaDeg) - ySlip
	if h <= minSliceHeightM {
		return Slice{}, rejectThinSlice
	}

	// Implicit differentiation of the circle: dy/dx = -(x-xc)/(y-yc).
	denom := ySlip - c.yc
	if math.Abs(denom) < tangentEps {
		return Slice{}, rejectVerticalTangent
	}
	alpha := math.Atan(-(xm - c.xc) / denom)

	return Slice{
		XMidM:    xm,
		WidthM:   width,
		HeightM:  h,
		WeightKN: gammaKNM3 * h * width,
		Alpha:    alpha,
		BaseLenM: width / math.Cos(alpha),
	}, rejectNone
}
