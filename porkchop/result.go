package porkchop

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result holds the three metrics of a grid, row major: cell (i, j) is at i*NumArrival+j.
type Result struct {
	NumDeparture int
	NumArrival   int
	C3           []float64
	DepartureDV  []float64
	TotalDV      []float64
}

// NewResult returns a result of the provided dimensions with every cell set to fill.
func NewResult(numDeparture, numArrival int, fill float64) *Result {
	n := numDeparture * numArrival
	r := &Result{
		NumDeparture: numDeparture,
		NumArrival:   numArrival,
		C3:           make([]float64, n),
		DepartureDV:  make([]float64, n),
		TotalDV:      make([]float64, n),
	}
	for _, s := range [][]float64{r.C3, r.DepartureDV, r.TotalDV} {
		for k := range s {
			s[k] = fill
		}
	}
	return r
}

// Index returns the flat index of cell (i, j).
func (r *Result) Index(i, j int) int {
	return i*r.NumArrival + j
}

// At returns cell (i, j).
func (r *Result) At(i, j int) Cell {
	k := r.Index(i, j)
	return Cell{C3: r.C3[k], DepartureDV: r.DepartureDV[k], TotalDV: r.TotalDV[k]}
}

func (r *Result) set(i, j int, c Cell) {
	k := r.Index(i, j)
	r.C3[k], r.DepartureDV[k], r.TotalDV[k] = c.C3, c.DepartureDV, c.TotalDV
}

// Optimum returns the cell of minimum total Δv. Negative (unevaluated) and NaN cells are ignored
// and ties keep the first cell in row major order. ok is false if no cell qualifies.
func (r *Result) Optimum() (i, j int, ok bool) {
	best := math.Inf(1)
	bestK := -1
	for k, v := range r.TotalDV {
		if v < 0 || math.IsNaN(v) {
			continue
		}
		if bestK < 0 || v < best {
			best, bestK = v, k
		}
	}
	if bestK < 0 {
		return 0, 0, false
	}
	return bestK / r.NumArrival, bestK % r.NumArrival, true
}

// Summary describes the distribution of the total Δv over a grid.
type Summary struct {
	Cells       int
	Evaluated   int // Solved and under the Δv ceiling.
	Clamped     int // At the Δv ceiling, infeasible cells included.
	Unevaluated int
	Invalid     int // NaN
	MinTotalDV  float64
	MeanTotalDV float64
	StdTotalDV  float64 // NaN unless two cells or more were evaluated.
}

// Summary classifies every cell against the limits the grid was computed with.
func (r *Result) Summary(l Limits) Summary {
	s := Summary{Cells: len(r.TotalDV)}
	var evaluated []float64
	for _, v := range r.TotalDV {
		switch {
		case math.IsNaN(v):
			s.Invalid++
		case v == l.Unevaluated:
			s.Unevaluated++
		case v >= l.MaxDV:
			s.Clamped++
		default:
			evaluated = append(evaluated, v)
		}
	}
	s.Evaluated = len(evaluated)
	if s.Evaluated == 0 {
		s.MinTotalDV, s.MeanTotalDV, s.StdTotalDV = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.MinTotalDV = floats.Min(evaluated)
	if s.Evaluated == 1 {
		s.MeanTotalDV, s.StdTotalDV = evaluated[0], math.NaN()
		return s
	}
	s.MeanTotalDV, s.StdTotalDV = stat.MeanStdDev(evaluated, nil)
	return s
}

// TOFDays returns the time of flight of every cell in days, in the layout of the result.
func (r *Result) TOFDays(req Request) []float64 {
	tof := make([]float64, r.NumDeparture*r.NumArrival)
	for i := 0; i < r.NumDeparture; i++ {
		for j := 0; j < r.NumArrival; j++ {
			tof[r.Index(i, j)] = req.Arrival.Epochs[j] - req.Departure.Epochs[i]
		}
	}
	return tof
}
