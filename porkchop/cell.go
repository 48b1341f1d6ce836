package porkchop

import (
	"math"

	"github.com/hydrogendeuteride/lambert"
)

// Outcome is what happened to one grid cell.
type Outcome uint8

const (
	// Infeasible cells arrive before departure or under Limits.MinTOF and hold the ceilings.
	Infeasible Outcome = iota
	// Skipped cells are under Limits.SkipBelow and hold the unevaluated marker.
	Skipped
	// Evaluated cells were solved on both branches.
	Evaluated
)

func (o Outcome) String() string {
	switch o {
	case Infeasible:
		return "infeasible"
	case Skipped:
		return "skipped"
	case Evaluated:
		return "evaluated"
	default:
		panic("unknown outcome")
	}
}

// Path is the branch kept for an evaluated cell.
type Path uint8

const (
	// NoPath means neither branch produced a comparable total Δv (both NaN).
	NoPath Path = iota
	ShortPath
	LongPath
)

func (p Path) String() string {
	switch p {
	case NoPath:
		return "none"
	case ShortPath:
		return "short"
	case LongPath:
		return "long"
	default:
		panic("unknown path")
	}
}

// Cell holds the three metrics of one grid cell.
type Cell struct {
	C3          float64 // km²/s²
	DepartureDV float64 // km/s
	TotalDV     float64 // km/s
}

// clamp returns ceiling if it is less than v, v otherwise. A NaN v is returned as is.
func clamp(v, ceiling float64) float64 {
	if ceiling < v {
		return ceiling
	}
	return v
}

func (l Limits) ceilings() Cell {
	return Cell{C3: l.MaxC3, DepartureDV: l.MaxDV, TotalDV: l.MaxDV}
}

func (l Limits) unevaluated() Cell {
	return Cell{C3: l.Unevaluated, DepartureDV: l.Unevaluated, TotalDV: l.Unevaluated}
}

// classify returns whether the cell must be solved, and its outcome if not.
func (l Limits) classify(depT, arrT float64) (Outcome, bool) {
	tof := arrT - depT
	if arrT <= depT || tof < l.MinTOF {
		return Infeasible, false
	}
	if tof < l.SkipBelow {
		return Skipped, false
	}
	return Evaluated, true
}

// solve evaluates both branches of a feasible cell and keeps the one of lower total Δv.
func (e *Evaluator) solve(req *Request, i, j int, tof float64) (Cell, Path) {
	r1, v1 := req.Departure.Position(i), req.Departure.Velocity(i)
	r2, v2 := req.Arrival.Position(j), req.Arrival.Velocity(j)
	best := Cell{C3: e.Limits.MaxC3, DepartureDV: e.Limits.MaxDV, TotalDV: math.Inf(1)}
	path := NoPath
	for _, p := range [...]Path{ShortPath, LongPath} {
		t := lambert.Transfer{Mu: req.Mu, R1: r1, R2: r2, TOF: tof, Prograde: e.Prograde, ShortPath: p == ShortPath}
		sol := lambert.Battin(t, e.Solver)
		vInfDep := sol.V1.Sub(v1).Norm()
		vInfArr := v2.Sub(sol.V2).Norm()
		c3 := clamp(vInfDep*vInfDep, e.Limits.MaxC3)
		dv1 := req.DepartureOrbit.escape(c3)
		total := dv1 + req.ArrivalOrbit.escape(vInfArr*vInfArr)
		if total < best.TotalDV {
			best = Cell{C3: c3, DepartureDV: dv1, TotalDV: total}
			path = p
		}
	}
	return Cell{
		C3:          clamp(best.C3, e.Limits.MaxC3),
		DepartureDV: clamp(best.DepartureDV, e.Limits.MaxDV),
		TotalDV:     clamp(best.TotalDV, e.Limits.MaxDV),
	}, path
}

// tally counts the outcomes of a part of the grid.
type tally struct {
	outcomes [3]int
	paths    [3]int
}

func (t *tally) add(o tally) {
	for k := range t.outcomes {
		t.outcomes[k] += o.outcomes[k]
	}
	for k := range t.paths {
		t.paths[k] += o.paths[k]
	}
}
