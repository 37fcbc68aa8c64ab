package slope

// grid is the Cartesian product of the three center/radius axes, addressed by
// a single flat index so candidate generation stays separate from evaluation.
// Decoding order: xc outer, yc middle, R inner, each ascending.
type grid struct {
	xcs, ycs, rs []float64
}

func newGrid(in Input) grid {
	return grid{
		xcs: linspace(in.XcMinM, in.XcMaxM, in.NXc),
		ycs: linspace(in.YcMinM, in.YcMaxM, in.NYc),
		rs:  linspace(in.RMinM, in.RMaxM, in.NR),
	}
}

func (g grid) size() int {
	return len(g.xcs) * len(g.ycs) * len(g.rs)
}

func (g grid) circle(i int) trialCircle {
	nR := len(g.rs)
	nYc := len(g.ycs)
	return trialCircle{
		xc: g.xcs[i/(nYc*nR)],
		yc: g.ycs[(i/nR)%nYc],
		r:  g.rs[i%nR],
	}
}

func linspace(min, max float64, n int) []float64 {
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = min
		return vals
	}
	step := (max - min) / float64(n-1)
	for i := range vals {
		vals[i] = min + step*float64(i)
	}
	return vals
}

// evaluate runs one trial circle through geometry and solver. Every
// evaluation is independent; nothing is shared between candidates.
func evaluate(c trialCircle, in Input) (float64, rejection) {
	slices, rej := buildSlices(c, in.HeightM, in.BetaDeg, in.GammaKNM3, in.NSlices)
	if rej != rejectNone {
		return 0, rej
	}
	return bishopFS(slices, in.CohesionKPa, in.PhiDeg, in.MaxIter, in.Tol)
}

// searchCritical reduces the whole grid to the minimum-FS candidate.
// A strict less-than keeps the first circle found on exact FS ties.
func searchCritical(in Input) (best trialCircle, bestFS float64, found bool, evaluated, accepted int) {
	g := newGrid(in)
	for i := 0; i < g.size(); i++ {
		c := g.circle(i)
		evaluated++
		fs, rej := evaluate(c, in)
		if rej != rejectNone {
			continue
		}
		accepted++
		if !found || fs < bestFS {
			best = c
			bestFS = fs
			found = true
		}
	}
	return best, bestFS, found, evaluated, accepted
}
